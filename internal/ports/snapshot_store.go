package ports

import (
	"context"

	"envsnap/internal/types"
)

// SnapshotWriterPort persists a snapshot as an ordered tabular file
// with package and version columns.
type SnapshotWriterPort interface {
	Save(snapshot types.Snapshot, path string) error
}

// SnapshotReaderPort loads a snapshot, preserving row order.
type SnapshotReaderPort interface {
	Load(path string) (types.Snapshot, error)
}

// SnapshotFetcherPort retrieves a snapshot file published at a
// repository slug (owner/repo[/subpath]) on a fixed branch.
type SnapshotFetcherPort interface {
	Fetch(ctx context.Context, slug string) (types.Snapshot, error)
}
