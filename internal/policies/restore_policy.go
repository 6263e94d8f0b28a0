package policies

import (
	"fmt"

	"envsnap/internal/types"
)

// DefaultPolicy mirrors the sets the tool ships with: the packages
// bundled with a base R installation, and the OHDSI packages that are
// published on the drat registry instead of CRAN.
func DefaultPolicy() types.RestorePolicy {
	return types.RestorePolicy{
		CorePackages: []string{
			"base", "compiler", "datasets", "graphics", "grDevices",
			"grid", "methods", "parallel", "splines", "stats", "stats4",
			"tcltk", "tools", "utils",
		},
		AlternatePackages: []string{
			"BigKnn", "CaseControl", "CaseCrossover", "CohortMethod",
			"Cyclops", "DatabaseConnector", "EmpiricalCalibration",
			"FeatureExtraction", "IcTemporalPatternDiscovery",
			"MethodEvaluation", "OhdsiRTools", "OhdsiSharing",
			"PatientLevelPrediction", "SelfControlledCaseSeries",
			"SelfControlledCohort", "SqlRender",
		},
		AlternateBaseURL: "https://ohdsi.github.io/drat/src/contrib",
	}
}

// RestorePolicy is the compiled, query-ready form of a
// types.RestorePolicy: membership maps instead of slices.
type RestorePolicy struct {
	baseURL   string
	core      map[string]struct{}
	alternate map[string]struct{}
}

func NewRestorePolicy(config types.RestorePolicy) RestorePolicy {
	policy := RestorePolicy{
		baseURL:   config.AlternateBaseURL,
		core:      map[string]struct{}{},
		alternate: map[string]struct{}{},
	}
	for _, name := range config.CorePackages {
		policy.core[name] = struct{}{}
	}
	for _, name := range config.AlternatePackages {
		policy.alternate[name] = struct{}{}
	}
	return policy
}

func (p RestorePolicy) IsCore(name string) bool {
	_, ok := p.core[name]
	return ok
}

// AlternateURL builds the source archive URL for a package served by
// the alternate registry: <base>/<name>_<version>.tar.gz.
func (p RestorePolicy) AlternateURL(name string, version string) (string, bool) {
	if _, ok := p.alternate[name]; !ok {
		return "", false
	}
	return fmt.Sprintf("%s/%s_%s.tar.gz", p.baseURL, name, version), true
}
