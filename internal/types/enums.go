package types

// RestoreDecision is the per-entry outcome of the restore engine.
type RestoreDecision string

const (
	DecisionSkipCore             RestoreDecision = "skip-core"
	DecisionSkipUpToDate         RestoreDecision = "skip-up-to-date"
	DecisionSkipCompatibleNewer  RestoreDecision = "skip-compatible-newer"
	DecisionInstallFromAlternate RestoreDecision = "install-alternate"
	DecisionInstallFromPrimary   RestoreDecision = "install-primary"
)

// SourceHint tells the installer where a pinned version comes from.
type SourceHint string

const (
	// SourcePrimary means the primary registry, built from source.
	SourcePrimary SourceHint = "primary"
	// SourceAlternate means a direct archive URL on the alternate
	// registry of the form <base>/<name>_<version>.tar.gz.
	SourceAlternate SourceHint = "alternate"
)
