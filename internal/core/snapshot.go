package core

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"envsnap/internal/ports"
	"envsnap/internal/types"
)

// SnapshotBuilder captures the current environment into an ordered
// snapshot: runtime version first, the root package last, and the
// root's dependency closure in between sorted deepest-first.
type SnapshotBuilder struct {
	Metadata ports.MetadataPort
	Resolver DependencyResolver
}

func NewSnapshotBuilder(metadata ports.MetadataPort) SnapshotBuilder {
	return SnapshotBuilder{
		Metadata: metadata,
		Resolver: NewDependencyResolver(metadata),
	}
}

// Build resolves rootPackage's closure and records the installed
// version of every member plus the root itself. Any package that
// cannot be located aborts the build; no partial snapshot is returned.
func (b SnapshotBuilder) Build(ctx context.Context, rootPackage string) (types.Snapshot, error) {
	dependencies, err := b.Resolver.Resolve(ctx, rootPackage)
	if err != nil {
		return types.Snapshot{}, err
	}
	runtime, err := b.Metadata.RuntimeVersion()
	if err != nil {
		return types.Snapshot{}, err
	}
	entries := make([]types.SnapshotEntry, 0, len(dependencies)+2)
	entries = append(entries, types.SnapshotEntry{
		Package: types.RuntimePackage,
		Version: runtime,
	})
	for _, dependency := range dependencies {
		version, err := b.Metadata.InstalledVersion(dependency.Name)
		if err != nil {
			return types.Snapshot{}, packageNotFound(dependency.Name, err)
		}
		entries = append(entries, types.SnapshotEntry{
			Package: dependency.Name,
			Version: version,
		})
	}
	rootVersion, err := b.Metadata.InstalledVersion(rootPackage)
	if err != nil {
		return types.Snapshot{}, packageNotFound(rootPackage, err)
	}
	entries = append(entries, types.SnapshotEntry{
		Package: rootPackage,
		Version: rootVersion,
	})
	log.Ctx(ctx).Info().
		Str("root", rootPackage).
		Int("entries", len(entries)).
		Msg("snapshot built")
	return types.Snapshot{Entries: entries}, nil
}

func packageNotFound(name string, cause error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("package not found: %s", name)).
		WithCause(cause)
}
