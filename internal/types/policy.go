package types

// RestorePolicy configures the two exception sets the restore engine
// consults plus the alternate registry location. It is loadable from a
// yaml file so the sets stay data, not code.
type RestorePolicy struct {
	// CorePackages ship with the runtime and cannot be installed
	// independently; the engine always skips them.
	CorePackages []string `yaml:"core_packages"`
	// AlternatePackages are not published on the primary registry and
	// are fetched as source archives from AlternateBaseURL.
	AlternatePackages []string `yaml:"alternate_packages"`
	AlternateBaseURL  string   `yaml:"alternate_base_url"`
}
