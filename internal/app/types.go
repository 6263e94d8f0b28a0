package app

import (
	"time"

	"envsnap/internal/core"
)

type SnapshotRequest struct {
	RootPackage string
	LibraryDirs []string
	OutputPath  string
	// RuntimeVersion, when set, bypasses probing the R toolchain.
	RuntimeVersion string
}

type SnapshotResult struct {
	OutputPath string
	Entries    int
}

type RestoreRequest struct {
	// SnapshotPath is a local snapshot file. Mutually exclusive with
	// RemoteSlug.
	SnapshotPath string
	// RemoteSlug addresses a published snapshot as owner/repo[/subpath].
	RemoteSlug  string
	LibraryDirs []string
	PolicyPath  string
	Repos       string
	// RuntimeVersion, when set, bypasses probing the R toolchain.
	RuntimeVersion string

	StopOnMismatch bool
	Strict         bool
	SkipLast       bool
}

type RestoreResult struct {
	Decisions []core.EntryDecision
	Installs  int
	Elapsed   time.Duration
}
