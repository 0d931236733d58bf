package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSeededNames(t *testing.T) {
	r := New(DefaultSynonyms())

	tests := []struct {
		raw       string
		canonical string
	}{
		{"user_type", "user_type"},
		{"UserType", "user_type"},     // snake_case lands on the canonical
		{"ID_of_user", "user_id"},     // synonym-table spelling
		{"time_now", "current_time"},  // synonym-table spelling
		{"USERSTATUS", "user_status"}, // case-insensitive synonym match
	}
	for _, tt := range tests {
		res := r.Resolve(tt.raw)
		assert.Equal(t, ResolutionKnown, res.Kind, tt.raw)
		assert.Equal(t, tt.canonical, res.Canonical, tt.raw)
	}
}

func TestResolveFirstSightRegisters(t *testing.T) {
	r := New(nil)

	res := r.Resolve("userStatuz")
	assert.Equal(t, ResolutionNew, res.Kind)
	assert.Equal(t, "user_statuz", res.Canonical)
	assert.True(t, r.Known("user_statuz"))

	// same name again is simply known
	assert.Equal(t, ResolutionKnown, r.Resolve("userStatuz").Kind)
}

func TestResolveTypoNearRegisteredName(t *testing.T) {
	r := New(DefaultSynonyms())

	res := r.Resolve("userStatuz")
	require.Equal(t, ResolutionTypo, res.Kind)
	assert.Equal(t, "user_status", res.Nearest)

	// a typo is not registered as a declaration
	assert.False(t, r.Known("user_statuz"))
}

func TestResolveGrowthThenTypo(t *testing.T) {
	r := New(nil)

	require.Equal(t, ResolutionNew, r.Resolve("deliveryWindow").Kind)

	res := r.Resolve("deliveryWindoe")
	assert.Equal(t, ResolutionTypo, res.Kind)
	assert.Equal(t, "delivery_window", res.Nearest)
}

func TestResolveShortNamesNeverTypos(t *testing.T) {
	r := New(nil)

	require.Equal(t, ResolutionNew, r.Resolve("abc").Kind)
	// one edit away, but too short to be typo-matched
	assert.Equal(t, ResolutionNew, r.Resolve("abd").Kind)
}

func TestResolveDistantNameIsDeclaration(t *testing.T) {
	r := New(nil)

	require.Equal(t, ResolutionNew, r.Resolve("user_status").Kind)
	assert.Equal(t, ResolutionNew, r.Resolve("shipping_address").Kind)
}

func TestNames(t *testing.T) {
	r := New(nil)
	r.Resolve("beta_value")
	r.Resolve("alpha_value")
	assert.Equal(t, []string{"alpha_value", "beta_value"}, r.Names())
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"user_status", "user_status", 0},
		{"user_status", "user_statuz", 1},
		{"user_status", "uset_status", 1},
		{"kitten", "sitting", 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, levenshtein(tt.a, tt.b), "%s vs %s", tt.a, tt.b)
	}
}
