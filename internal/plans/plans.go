package plans

import "strings"

// Plan tiers, lowest to highest. Each tier includes the content of every
// tier below it.
const (
	Basic    = "basic"
	Advanced = "advanced"
	Premium  = "premium"
)

// Allowed maps a user's plan to the plans whose content they may see.
// Unrecognized plans resolve to {basic}: dirty plan data degrades to the
// lowest tier instead of locking the user out.
func Allowed(plan string) []string {
	switch plan {
	case Premium:
		return []string{Basic, Advanced, Premium}
	case Advanced:
		return []string{Basic, Advanced}
	default:
		return []string{Basic}
	}
}

// IsValid reports whether plan is a known tier.
func IsValid(plan string) bool {
	return plan == Basic || plan == Advanced || plan == Premium
}

// HasAccess reports whether a catalog item tagged with the comma-joined
// allowedPlans list is visible to a user on userPlan: any tag in the user's
// resolved set grants access.
func HasAccess(allowedPlans, userPlan string) bool {
	for _, tag := range Allowed(userPlan) {
		if strings.Contains(allowedPlans, tag) {
			return true
		}
	}
	return false
}

// Contains reports whether plan is literally one of the comma-joined tags.
// Used for single-item access checks, which test the caller's own plan
// rather than the resolved hierarchy.
func Contains(allowedPlans, plan string) bool {
	for _, tag := range strings.Split(allowedPlans, ",") {
		if strings.TrimSpace(tag) == plan {
			return true
		}
	}
	return false
}
