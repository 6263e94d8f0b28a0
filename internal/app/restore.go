package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"envsnap/internal/core"
	"envsnap/internal/policies"
	"envsnap/internal/types"
)

func (s Service) Restore(ctx context.Context, req RestoreRequest) (RestoreResult, error) {
	if len(req.LibraryDirs) == 0 {
		return RestoreResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one library directory is required")
	}
	snapshot, err := s.loadSnapshot(ctx, req)
	if err != nil {
		return RestoreResult{}, err
	}
	policyConfig, err := s.PolicyLoader.Load(ctx, strings.TrimSpace(req.PolicyPath))
	if err != nil {
		return RestoreResult{}, err
	}

	engine := core.NewRestoreEngine(
		s.metadataFor(req.LibraryDirs, strings.TrimSpace(req.RuntimeVersion)),
		s.NewInstaller(req.LibraryDirs[0], req.Repos),
		policies.NewRestorePolicy(policyConfig),
	)
	if s.Clock != nil {
		engine.Clock = s.Clock
	}
	report, err := engine.Restore(ctx, snapshot, core.RestoreOptions{
		StopOnMismatch: req.StopOnMismatch,
		Strict:         req.Strict,
		SkipLast:       req.SkipLast,
	})
	if err != nil {
		return RestoreResult{}, err
	}
	return RestoreResult{
		Decisions: report.Decisions,
		Installs:  countInstalls(report.Decisions),
		Elapsed:   report.Elapsed,
	}, nil
}

func (s Service) loadSnapshot(ctx context.Context, req RestoreRequest) (types.Snapshot, error) {
	path := strings.TrimSpace(req.SnapshotPath)
	slug := strings.TrimSpace(req.RemoteSlug)
	switch {
	case path != "" && slug != "":
		return types.Snapshot{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("snapshot path and remote location are mutually exclusive")
	case path != "":
		return s.SnapshotReader.Load(path)
	case slug != "":
		return s.SnapshotFetch.Fetch(ctx, slug)
	default:
		return types.Snapshot{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("a snapshot path or remote location is required")
	}
}

func countInstalls(decisions []core.EntryDecision) int {
	installs := 0
	for _, decision := range decisions {
		switch decision.Decision {
		case types.DecisionInstallFromPrimary, types.DecisionInstallFromAlternate:
			installs++
		}
	}
	return installs
}
