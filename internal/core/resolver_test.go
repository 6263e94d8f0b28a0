package core

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"envsnap/internal/types"
)

type fakeMetadata struct {
	deps     map[string]types.DeclaredDependencies
	versions map[string]string
	runtime  string
}

func (f fakeMetadata) DeclaredDependencies(name string) (types.DeclaredDependencies, error) {
	declared, ok := f.deps[name]
	if !ok {
		return types.DeclaredDependencies{}, fmt.Errorf("unknown package %s", name)
	}
	return declared, nil
}

func (f fakeMetadata) InstalledVersion(name string) (string, error) {
	version, ok := f.versions[name]
	if !ok {
		return "", fmt.Errorf("unknown package %s", name)
	}
	return version, nil
}

func (f fakeMetadata) IsInstalled(name string) bool {
	_, ok := f.versions[name]
	return ok
}

func (f fakeMetadata) RuntimeVersion() (string, error) {
	return f.runtime, nil
}

func TestResolveDiamondKeepsMaxLevel(t *testing.T) {
	// root -> a -> b -> x and root -> x: x is reached at levels 0 and 2.
	metadata := fakeMetadata{
		deps: map[string]types.DeclaredDependencies{
			"root": {Mandatory: []string{"a"}, Imported: []string{"x"}},
			"a":    {Imported: []string{"b"}},
			"b":    {Mandatory: []string{"x"}},
			"x":    {},
		},
	}
	resolver := NewDependencyResolver(metadata)
	entries, err := resolver.Resolve(t.Context(), "root")
	require.NoError(t, err)

	want := []types.DependencyEntry{
		{Name: "x", Level: 2},
		{Name: "b", Level: 1},
		{Name: "a", Level: 0},
	}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Fatalf("unexpected closure (-want +got):\n%s", diff)
	}
}

func TestResolveNoDuplicates(t *testing.T) {
	metadata := fakeMetadata{
		deps: map[string]types.DeclaredDependencies{
			"root":   {Mandatory: []string{"a", "b"}},
			"a":      {Imported: []string{"shared"}},
			"b":      {Imported: []string{"shared"}},
			"shared": {},
		},
	}
	resolver := NewDependencyResolver(metadata)
	entries, err := resolver.Resolve(t.Context(), "root")
	require.NoError(t, err)

	seen := map[string]int{}
	for _, entry := range entries {
		seen[entry.Name]++
	}
	for name, count := range seen {
		assert.Equal(t, 1, count, "duplicate entry for %s", name)
	}
	assert.Len(t, entries, 3)
}

func TestResolveExcludesSuggestedAndRuntime(t *testing.T) {
	// "maybe" is only suggested and may depend back on the root; it
	// must not be traversed. The runtime never becomes an entry.
	metadata := fakeMetadata{
		deps: map[string]types.DeclaredDependencies{
			"root": {
				Mandatory: []string{"R", "a"},
				Suggested: []string{"maybe"},
			},
			"a": {Mandatory: []string{"R"}},
		},
	}
	resolver := NewDependencyResolver(metadata)
	entries, err := resolver.Resolve(t.Context(), "root")
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].Name)
}

func TestResolveOmitsRoot(t *testing.T) {
	metadata := fakeMetadata{
		deps: map[string]types.DeclaredDependencies{
			"root": {Mandatory: []string{"a"}},
			"a":    {},
		},
	}
	resolver := NewDependencyResolver(metadata)
	entries, err := resolver.Resolve(t.Context(), "root")
	require.NoError(t, err)
	for _, entry := range entries {
		assert.NotEqual(t, "root", entry.Name)
	}
}

func TestResolvePropagatesLookupFailure(t *testing.T) {
	metadata := fakeMetadata{
		deps: map[string]types.DeclaredDependencies{
			"root": {Mandatory: []string{"missing"}},
		},
	}
	resolver := NewDependencyResolver(metadata)
	_, err := resolver.Resolve(t.Context(), "root")
	require.Error(t, err)
}
