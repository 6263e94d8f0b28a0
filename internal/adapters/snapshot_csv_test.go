package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"envsnap/internal/types"
)

func TestSnapshotCSVPreservesOrder(t *testing.T) {
	snapshot := types.Snapshot{Entries: []types.SnapshotEntry{
		{Package: "R", Version: "4.0.0"},
		{Package: "leaf", Version: "1.6"},
		{Package: "mid", Version: "2.1.0"},
		{Package: "study", Version: "1.7.0"},
	}}
	path := filepath.Join(t.TempDir(), "out", "snapshot.csv")

	adapter := NewSnapshotCSVAdapter()
	require.NoError(t, adapter.Save(snapshot, path))

	loaded, err := adapter.Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(snapshot, loaded); diff != "" {
		t.Fatalf("snapshot changed across save/load (-want +got):\n%s", diff)
	}

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "package,version\nR,4.0.0\nleaf,1.6\nmid,2.1.0\nstudy,1.7.0\n", string(content))
}

func TestSnapshotCSVLoadMissingFile(t *testing.T) {
	adapter := NewSnapshotCSVAdapter()
	_, err := adapter.Load(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
}

func TestSnapshotCSVLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("just,three,columns\n"), 0644))

	adapter := NewSnapshotCSVAdapter()
	_, err := adapter.Load(path)
	require.Error(t, err)
}
