package ports

// PolicyPort exposes the restore exception sets as membership queries.
type PolicyPort interface {
	// IsCore reports whether a package ships with the runtime and must
	// never be installed independently.
	IsCore(name string) bool

	// AlternateURL returns the alternate-registry archive URL for a
	// package pinned at version, or ok=false when the package is served
	// by the primary registry.
	AlternateURL(name string, version string) (string, bool)
}
