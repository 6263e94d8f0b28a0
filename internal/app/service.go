package app

import (
	"time"

	"envsnap/internal/adapters"
	"envsnap/internal/ports"
)

// Service wires the adapters behind the snapshot and restore
// operations. Fields are ports so tests can substitute fakes.
type Service struct {
	SnapshotWriter ports.SnapshotWriterPort
	SnapshotReader ports.SnapshotReaderPort
	SnapshotFetch  ports.SnapshotFetcherPort
	PolicyLoader   adapters.PolicyFileAdapter
	Clock          func() time.Time

	// NewMetadata builds the metadata port for a set of library
	// directories; NewInstaller the installer for a target library and
	// registry. Indirection keeps the per-request configuration out of
	// the service itself.
	NewMetadata  func(roots []string) ports.MetadataPort
	NewInstaller func(library string, repos string) ports.InstallerPort
}

func NewService() Service {
	csv := adapters.NewSnapshotCSVAdapter()
	return Service{
		SnapshotWriter: csv,
		SnapshotReader: csv,
		SnapshotFetch:  adapters.NewSnapshotRemoteAdapter(),
		PolicyLoader:   adapters.NewPolicyFileAdapter(),
		Clock:          time.Now,
		NewMetadata: func(roots []string) ports.MetadataPort {
			return adapters.NewLibraryDirAdapter(roots...)
		},
		NewInstaller: func(library string, repos string) ports.InstallerPort {
			return adapters.NewRInstallerAdapter(library, repos)
		},
	}
}
