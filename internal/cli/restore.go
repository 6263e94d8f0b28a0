package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"envsnap/internal/app"
)

type restoreOptions struct {
	Snapshot       string
	Remote         string
	Library        []string
	Policy         string
	Repos          string
	RuntimeVersion string
	StopOnMismatch bool
	Strict         bool
	SkipLast       bool
}

func newRestoreCommand() *cobra.Command {
	opts := restoreOptions{}
	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Reinstall the pinned package versions from a snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRestore(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Snapshot, "snapshot", "", "Local snapshot file path")
	cmd.Flags().StringVar(&opts.Remote, "remote", "", "Published snapshot location (owner/repo[/subpath])")
	cmd.Flags().StringSliceVar(&opts.Library, "library", nil, "Library director(y/ies); the first receives installs")
	cmd.Flags().StringVar(&opts.Policy, "policy", "", "Restore policy file (defaults built in)")
	cmd.Flags().StringVar(&opts.Repos, "repos", "", "Primary registry URL")
	cmd.Flags().StringVar(&opts.RuntimeVersion, "runtime-version", "", "Live R version to compare against (skips probing Rscript)")
	cmd.Flags().BoolVar(&opts.StopOnMismatch, "stop-on-mismatch", false, "Fail when the runtime version differs from the snapshot")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Reinstall unless the installed version is exactly the pinned one")
	cmd.Flags().BoolVar(&opts.SkipLast, "skip-last", false, "Skip the final snapshot entry (the root package)")

	_ = viper.BindPFlag("snapshot", cmd.Flags().Lookup("snapshot"))
	_ = viper.BindPFlag("remote", cmd.Flags().Lookup("remote"))
	_ = viper.BindPFlag("library", cmd.Flags().Lookup("library"))
	_ = viper.BindPFlag("policy", cmd.Flags().Lookup("policy"))
	_ = viper.BindPFlag("repos", cmd.Flags().Lookup("repos"))
	_ = viper.BindPFlag("runtime_version", cmd.Flags().Lookup("runtime-version"))
	_ = viper.BindPFlag("stop_on_mismatch", cmd.Flags().Lookup("stop-on-mismatch"))
	_ = viper.BindPFlag("strict", cmd.Flags().Lookup("strict"))
	_ = viper.BindPFlag("skip_last", cmd.Flags().Lookup("skip-last"))

	return cmd
}

func runRestore(ctx context.Context, cmd *cobra.Command, opts restoreOptions) error {
	service := app.NewService()
	result, err := service.Restore(ctx, app.RestoreRequest{
		SnapshotPath:   resolveString(cmd, opts.Snapshot, "snapshot", "snapshot"),
		RemoteSlug:     resolveString(cmd, opts.Remote, "remote", "remote"),
		LibraryDirs:    resolveStrings(cmd, opts.Library, "library", "library"),
		PolicyPath:     resolveString(cmd, opts.Policy, "policy", "policy"),
		Repos:          resolveString(cmd, opts.Repos, "repos", "repos"),
		RuntimeVersion: resolveString(cmd, opts.RuntimeVersion, "runtime_version", "runtime-version"),
		StopOnMismatch: resolveBool(cmd, opts.StopOnMismatch, "stop_on_mismatch", "stop-on-mismatch"),
		Strict:         resolveBool(cmd, opts.Strict, "strict", "strict"),
		SkipLast:       resolveBool(cmd, opts.SkipLast, "skip_last", "skip-last"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("restored %d entries (%d installed) in %s\n",
		len(result.Decisions), result.Installs, result.Elapsed.Round(time.Millisecond))
	return nil
}
