package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"envsnap/internal/app"
)

type snapshotOptions struct {
	Root           string
	Library        []string
	Output         string
	RuntimeVersion string
}

func newSnapshotCommand() *cobra.Command {
	opts := snapshotOptions{}
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Record the package versions backing a root package",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSnapshot(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Root, "root", "", "Root package to snapshot")
	cmd.Flags().StringSliceVar(&opts.Library, "library", nil, "Library director(y/ies) to scan")
	cmd.Flags().StringVar(&opts.Output, "output", "snapshot.csv", "Snapshot file path")
	cmd.Flags().StringVar(&opts.RuntimeVersion, "runtime-version", "", "R version to record (skips probing Rscript)")

	_ = viper.BindPFlag("root", cmd.Flags().Lookup("root"))
	_ = viper.BindPFlag("library", cmd.Flags().Lookup("library"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("runtime_version", cmd.Flags().Lookup("runtime-version"))

	return cmd
}

func runSnapshot(ctx context.Context, cmd *cobra.Command, opts snapshotOptions) error {
	service := app.NewService()
	result, err := service.Snapshot(ctx, app.SnapshotRequest{
		RootPackage:    resolveString(cmd, opts.Root, "root", "root"),
		LibraryDirs:    resolveStrings(cmd, opts.Library, "library", "library"),
		OutputPath:     resolveString(cmd, opts.Output, "output", "output"),
		RuntimeVersion: resolveString(cmd, opts.RuntimeVersion, "runtime_version", "runtime-version"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("snapshot written to %s (%d entries)\n", result.OutputPath, result.Entries)
	return nil
}
