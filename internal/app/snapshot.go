package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"envsnap/internal/core"
)

func (s Service) Snapshot(ctx context.Context, req SnapshotRequest) (SnapshotResult, error) {
	rootPackage := strings.TrimSpace(req.RootPackage)
	if rootPackage == "" {
		return SnapshotResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("root package is required")
	}
	outputPath := strings.TrimSpace(req.OutputPath)
	if outputPath == "" {
		return SnapshotResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output path is required")
	}
	if len(req.LibraryDirs) == 0 {
		return SnapshotResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one library directory is required")
	}

	builder := core.NewSnapshotBuilder(s.metadataFor(req.LibraryDirs, strings.TrimSpace(req.RuntimeVersion)))
	snapshot, err := builder.Build(ctx, rootPackage)
	if err != nil {
		return SnapshotResult{}, err
	}
	if err := s.SnapshotWriter.Save(snapshot, outputPath); err != nil {
		return SnapshotResult{}, err
	}
	log.Ctx(ctx).Info().
		Str("path", outputPath).
		Int("entries", len(snapshot.Entries)).
		Msg("snapshot saved")
	return SnapshotResult{
		OutputPath: outputPath,
		Entries:    len(snapshot.Entries),
	}, nil
}
