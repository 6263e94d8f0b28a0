package core

import (
	"context"
	"fmt"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"envsnap/internal/ports"
	"envsnap/internal/types"
)

// RestoreOptions tune how strictly a snapshot is reapplied.
type RestoreOptions struct {
	// StopOnMismatch fails the restore when the live runtime version
	// differs from the snapshot's recorded one; otherwise the mismatch
	// is only a warning.
	StopOnMismatch bool
	// Strict disables the newer-compatible skip: every entry that is
	// not exactly up to date gets reinstalled at its pinned version.
	Strict bool
	// SkipLast drops the final snapshot row, typically the root study
	// package that is installed manually.
	SkipLast bool
}

// EntryDecision records what the engine decided for one snapshot row.
type EntryDecision struct {
	Package  string
	Version  string
	Decision types.RestoreDecision
}

// RestoreReport summarizes a completed restore.
type RestoreReport struct {
	Decisions []EntryDecision
	Elapsed   time.Duration
}

// RestoreEngine replays a snapshot against the live environment. It
// walks entries in snapshot order (already deepest-first), decides per
// entry whether to skip or install, and delegates installs to the
// installer port one blocking call at a time. The environment is
// re-queried for every entry since each install mutates it. A failed
// install halts the restore; completed installs are not rolled back.
type RestoreEngine struct {
	Metadata  ports.MetadataPort
	Installer ports.InstallerPort
	Policy    ports.PolicyPort
	Clock     func() time.Time
}

func NewRestoreEngine(metadata ports.MetadataPort, installer ports.InstallerPort, policy ports.PolicyPort) RestoreEngine {
	return RestoreEngine{
		Metadata:  metadata,
		Installer: installer,
		Policy:    policy,
		Clock:     time.Now,
	}
}

func (e RestoreEngine) Restore(ctx context.Context, snapshot types.Snapshot, opts RestoreOptions) (RestoreReport, error) {
	if e.Metadata == nil || e.Installer == nil || e.Policy == nil {
		return RestoreReport{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("restore engine requires metadata, installer, and policy ports")
	}
	started := e.Clock()

	entries, err := e.checkRuntime(ctx, snapshot, opts)
	if err != nil {
		return RestoreReport{}, err
	}
	if opts.SkipLast && len(entries) > 0 {
		last := entries[len(entries)-1]
		entries = entries[:len(entries)-1]
		log.Ctx(ctx).Info().
			Str("package", last.Package).
			Msg("skipping final snapshot entry")
	}

	report := RestoreReport{}
	for _, entry := range entries {
		decision, err := e.decide(entry, opts)
		if err != nil {
			return RestoreReport{}, err
		}
		log.Ctx(ctx).Info().
			Str("package", entry.Package).
			Str("version", entry.Version).
			Str("decision", string(decision)).
			Msg("restore decision")
		report.Decisions = append(report.Decisions, EntryDecision{
			Package:  entry.Package,
			Version:  entry.Version,
			Decision: decision,
		})
		if err := e.apply(ctx, entry, decision); err != nil {
			return RestoreReport{}, err
		}
	}

	report.Elapsed = e.Clock().Sub(started)
	log.Ctx(ctx).Info().
		Int("entries", len(report.Decisions)).
		Dur("elapsed", report.Elapsed).
		Msg("restore complete")
	return report, nil
}

// checkRuntime validates the recorded runtime version against the live
// one and strips the runtime row from the entries to process.
func (e RestoreEngine) checkRuntime(ctx context.Context, snapshot types.Snapshot, opts RestoreOptions) ([]types.SnapshotEntry, error) {
	entries := snapshot.Entries
	if len(entries) == 0 || entries[0].Package != types.RuntimePackage {
		return entries, nil
	}
	recorded := entries[0].Version
	entries = entries[1:]
	live, err := e.Metadata.RuntimeVersion()
	if err != nil {
		return nil, err
	}
	if recorded == live {
		return entries, nil
	}
	if opts.StopOnMismatch {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("runtime version mismatch: snapshot %s, current %s", recorded, live))
	}
	log.Ctx(ctx).Warn().
		Str("snapshot", recorded).
		Str("current", live).
		Msg("runtime version differs from snapshot")
	return entries, nil
}

func (e RestoreEngine) decide(entry types.SnapshotEntry, opts RestoreOptions) (types.RestoreDecision, error) {
	if e.Policy.IsCore(entry.Package) {
		return types.DecisionSkipCore, nil
	}
	if e.Metadata.IsInstalled(entry.Package) {
		installed, err := e.Metadata.InstalledVersion(entry.Package)
		if err != nil {
			return "", err
		}
		if installed == entry.Version {
			return types.DecisionSkipUpToDate, nil
		}
		if !opts.Strict {
			// A malformed version string means "not compatible", not a
			// failed restore.
			newer, err := IsNewerCompatible(installed, entry.Version)
			if err == nil && newer {
				return types.DecisionSkipCompatibleNewer, nil
			}
		}
	}
	if _, ok := e.Policy.AlternateURL(entry.Package, entry.Version); ok {
		return types.DecisionInstallFromAlternate, nil
	}
	return types.DecisionInstallFromPrimary, nil
}

func (e RestoreEngine) apply(ctx context.Context, entry types.SnapshotEntry, decision types.RestoreDecision) error {
	switch decision {
	case types.DecisionInstallFromPrimary:
		return e.install(ctx, entry, types.SourcePrimary, "")
	case types.DecisionInstallFromAlternate:
		url, _ := e.Policy.AlternateURL(entry.Package, entry.Version)
		return e.install(ctx, entry, types.SourceAlternate, url)
	default:
		return nil
	}
}

func (e RestoreEngine) install(ctx context.Context, entry types.SnapshotEntry, source types.SourceHint, url string) error {
	if err := e.Installer.InstallExact(ctx, entry.Package, entry.Version, source, url); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("install failed: %s %s", entry.Package, entry.Version)).
			WithCause(err)
	}
	return nil
}
