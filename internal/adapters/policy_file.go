package adapters

import (
	"context"
	"fmt"
	"os"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"envsnap/internal/policies"
	"envsnap/internal/types"
)

// PolicyFileAdapter loads the restore policy from a yaml file, falling
// back to the built-in defaults when no path is given.
type PolicyFileAdapter struct{}

func NewPolicyFileAdapter() PolicyFileAdapter {
	return PolicyFileAdapter{}
}

func (a PolicyFileAdapter) Load(ctx context.Context, path string) (types.RestorePolicy, error) {
	if path == "" {
		return policies.DefaultPolicy(), nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return types.RestorePolicy{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to read policy file").
			WithCause(err)
	}
	var policy types.RestorePolicy
	if err := yaml.Unmarshal(content, &policy); err != nil {
		return types.RestorePolicy{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse policy file").
			WithCause(err)
	}
	if err := validatePolicy(ctx, policy); err != nil {
		return types.RestorePolicy{}, err
	}
	return policy, nil
}

func validatePolicy(ctx context.Context, policy types.RestorePolicy) error {
	if len(policy.AlternatePackages) > 0 {
		assert.NotEmpty(ctx, policy.AlternateBaseURL, "alternate_base_url must be set when alternate_packages is non-empty")
	}
	core := map[string]struct{}{}
	for _, name := range policy.CorePackages {
		core[name] = struct{}{}
	}
	for _, name := range policy.AlternatePackages {
		if _, ok := core[name]; ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("package %s cannot be both core and alternate-registry", name))
		}
	}
	return nil
}
