package ports

import "envsnap/internal/types"

// MetadataPort answers questions about the live package environment.
// Restore re-queries it per snapshot entry rather than caching, since
// each install mutates the environment it describes.
type MetadataPort interface {
	// DeclaredDependencies returns the dependency categories a package
	// declares. Fails with a not-found error when the package is not
	// present in the environment.
	DeclaredDependencies(name string) (types.DeclaredDependencies, error)

	// InstalledVersion returns the installed version string of a
	// package, or a not-found error.
	InstalledVersion(name string) (string, error)

	// IsInstalled reports whether a package is currently installed.
	IsInstalled(name string) bool

	// RuntimeVersion returns the version string of the runtime itself.
	RuntimeVersion() (string, error)
}
