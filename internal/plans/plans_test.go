package plans

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedHierarchy(t *testing.T) {
	assert.Equal(t, []string{Basic}, Allowed(Basic))
	assert.Equal(t, []string{Basic, Advanced}, Allowed(Advanced))
	assert.Equal(t, []string{Basic, Advanced, Premium}, Allowed(Premium))
}

func TestAllowedMonotonic(t *testing.T) {
	basic := Allowed(Basic)
	advanced := Allowed(Advanced)
	premium := Allowed(Premium)

	assert.Subset(t, advanced, basic)
	assert.Subset(t, premium, advanced)
}

func TestAllowedUnknownPlanDefaultsToBasic(t *testing.T) {
	for _, plan := range []string{"", "gold", "PREMIUM", "enterprise", "basic "} {
		assert.Equal(t, []string{Basic}, Allowed(plan), "plan=%q", plan)
	}
}

func TestHasAccess(t *testing.T) {
	// "basic,premium" is visible to advanced users: their resolved set
	// includes basic even though it lacks premium.
	assert.True(t, HasAccess("basic,premium", Advanced))

	assert.True(t, HasAccess("basic", Basic))
	assert.False(t, HasAccess("premium", Basic))
	assert.False(t, HasAccess("advanced,premium", Basic))
	assert.True(t, HasAccess("premium", Premium))
	assert.True(t, HasAccess("basic,advanced,premium", "unknown"))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("basic,premium", Premium))
	assert.True(t, Contains("basic, premium", Premium))
	assert.False(t, Contains("basic,advanced", Premium))
	assert.False(t, Contains("", Basic))
}

func TestBucketAccessible(t *testing.T) {
	assert.False(t, BucketAccessible("strategies", Basic))
	assert.False(t, BucketAccessible("vip", Advanced))
	assert.True(t, BucketAccessible("strategies", Premium))
	assert.True(t, BucketAccessible("fundamentals", Basic))
	assert.False(t, BucketAccessible("vip", "unknown"))
}
