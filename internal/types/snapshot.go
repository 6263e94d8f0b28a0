package types

// RuntimePackage is the synthetic snapshot row recording the version of
// the R runtime itself. It is never a resolvable dependency.
const RuntimePackage = "R"

// DependencyEntry is one package discovered during closure resolution.
// Level is the maximum depth at which the package was reached from the
// root: direct dependencies of the root are level 0, their dependencies
// level 1, and so on. When the same package is reached through several
// paths only the deepest level is kept, so that sorting by descending
// level installs a package before anything that depends on it.
type DependencyEntry struct {
	Name  string
	Level int
}

// SnapshotEntry is one row of a snapshot: a package pinned to the exact
// version string observed at capture time.
type SnapshotEntry struct {
	Package string
	Version string
}

// Snapshot is an ordered, immutable record of an environment. Row
// order is a contract: the first row is the runtime version, the last
// row is the root package, and everything in between is sorted
// deepest-level-first.
type Snapshot struct {
	Entries []SnapshotEntry
}

// Runtime returns the recorded runtime version, or "" for an empty
// snapshot.
func (s Snapshot) Runtime() string {
	if len(s.Entries) == 0 {
		return ""
	}
	if s.Entries[0].Package != RuntimePackage {
		return ""
	}
	return s.Entries[0].Version
}

// DeclaredDependencies are the dependency categories a package
// declares. Suggested packages are recorded but never traversed: a
// suggested package may depend back on the root, and excluding the
// category is what keeps the walk cycle-free.
type DeclaredDependencies struct {
	Mandatory []string
	Imported  []string
	Suggested []string
}
