package plans

import "gorm.io/gorm"

// ForPlan returns a GORM scope matching catalog rows whose allowed_plans
// column contains any tag the given plan resolves to.
func ForPlan(plan string) func(db *gorm.DB) *gorm.DB {
	allowed := Allowed(plan)
	return func(db *gorm.DB) *gorm.DB {
		cond := db.Session(&gorm.Session{NewDB: true})
		for i, tag := range allowed {
			if i == 0 {
				cond = cond.Where("allowed_plans LIKE ?", "%"+tag+"%")
			} else {
				cond = cond.Or("allowed_plans LIKE ?", "%"+tag+"%")
			}
		}
		return db.Where(cond)
	}
}
