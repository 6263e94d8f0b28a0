package ports

import (
	"context"

	"envsnap/internal/types"
)

// InstallerPort installs one exact package version. It never resolves
// dependencies: the snapshot order guarantees they were handled by
// earlier entries. For SourceAlternate the URL argument carries the
// archive location; for SourcePrimary it is empty.
type InstallerPort interface {
	InstallExact(ctx context.Context, name string, version string, source types.SourceHint, url string) error
}
