package core

import (
	"context"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"envsnap/internal/ports"
	"envsnap/internal/types"
)

// DependencyResolver walks a package's declared dependency graph and
// produces the deduplicated, leveled closure used to order a snapshot.
//
// Only the mandatory and imported categories are traversed. Suggested
// dependencies are excluded on purpose: they are allowed to depend
// back on the root, and skipping the category is what keeps the walk
// finite. The mandatory/imported subgraph is assumed acyclic; a cycle
// there will not terminate.
type DependencyResolver struct {
	Metadata ports.MetadataPort
}

func NewDependencyResolver(metadata ports.MetadataPort) DependencyResolver {
	return DependencyResolver{Metadata: metadata}
}

// Resolve returns every transitive dependency of rootPackage, one
// entry per name, each carrying the maximum depth at which it was
// reached. The root itself is not included. Entries are returned
// sorted by descending level, ties by name, so callers get a stable
// install-before-use ordering.
func (r DependencyResolver) Resolve(ctx context.Context, rootPackage string) ([]types.DependencyEntry, error) {
	if r.Metadata == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("resolver requires a metadata port")
	}
	levels := map[string]int{}
	if err := r.walk(ctx, rootPackage, 0, levels); err != nil {
		return nil, err
	}
	entries := make([]types.DependencyEntry, 0, len(levels))
	for name, level := range levels {
		entries = append(entries, types.DependencyEntry{Name: name, Level: level})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Level != entries[j].Level {
			return entries[i].Level > entries[j].Level
		}
		return entries[i].Name < entries[j].Name
	})
	log.Ctx(ctx).Debug().
		Str("root", rootPackage).
		Int("dependencies", len(entries)).
		Msg("closure resolved")
	return entries, nil
}

func (r DependencyResolver) walk(ctx context.Context, name string, depth int, levels map[string]int) error {
	declared, err := r.Metadata.DeclaredDependencies(name)
	if err != nil {
		return err
	}
	children := make([]string, 0, len(declared.Mandatory)+len(declared.Imported))
	children = append(children, declared.Mandatory...)
	children = append(children, declared.Imported...)
	for _, child := range children {
		// The runtime shows up in declared lists but is never an
		// installable dependency.
		if child == types.RuntimePackage {
			continue
		}
		if known, ok := levels[child]; !ok || depth > known {
			levels[child] = depth
		}
		if err := r.walk(ctx, child, depth+1, levels); err != nil {
			return err
		}
	}
	return nil
}
