package plans

import "sort"

// restrictedBuckets maps post taxonomy buckets (chapter, menu or submenu
// values) to the minimum plan required to read them. Enforced server-side;
// the client menu gating alone is not trusted.
var restrictedBuckets = map[string]string{
	"strategies": Premium,
	"vip":        Premium,
}

// BucketAccessible reports whether a user on userPlan may read posts in the
// named taxonomy bucket. Unrestricted buckets are open to every plan.
func BucketAccessible(bucket, userPlan string) bool {
	required, ok := restrictedBuckets[bucket]
	if !ok {
		return true
	}
	for _, tag := range Allowed(userPlan) {
		if tag == required {
			return true
		}
	}
	return false
}

// RestrictedFor returns the bucket names a user on userPlan may not read,
// sorted for deterministic query building.
func RestrictedFor(userPlan string) []string {
	var blocked []string
	for bucket := range restrictedBuckets {
		if !BucketAccessible(bucket, userPlan) {
			blocked = append(blocked, bucket)
		}
	}
	sort.Strings(blocked)
	return blocked
}
