package policies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"envsnap/internal/types"
)

func TestDefaultPolicyMembership(t *testing.T) {
	policy := NewRestorePolicy(DefaultPolicy())

	assert.True(t, policy.IsCore("utils"))
	assert.True(t, policy.IsCore("stats"))
	assert.False(t, policy.IsCore("jsonlite"))

	url, ok := policy.AlternateURL("OhdsiRTools", "1.7.0")
	require.True(t, ok)
	assert.Equal(t, "https://ohdsi.github.io/drat/src/contrib/OhdsiRTools_1.7.0.tar.gz", url)

	_, ok = policy.AlternateURL("jsonlite", "1.6")
	assert.False(t, ok)
}

func TestRestorePolicyMatchesExactCase(t *testing.T) {
	policy := NewRestorePolicy(types.RestorePolicy{
		CorePackages: []string{"Matrix"},
	})
	assert.True(t, policy.IsCore("Matrix"))
	assert.False(t, policy.IsCore("matrix"))
}
