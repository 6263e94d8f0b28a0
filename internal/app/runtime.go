package app

import "envsnap/internal/ports"

// runtimeOverride pins the reported runtime version, bypassing the
// toolchain probe of the wrapped metadata port.
type runtimeOverride struct {
	ports.MetadataPort
	version string
}

func (r runtimeOverride) RuntimeVersion() (string, error) {
	return r.version, nil
}

func (s Service) metadataFor(roots []string, runtimeVersion string) ports.MetadataPort {
	metadata := s.NewMetadata(roots)
	if runtimeVersion == "" {
		return metadata
	}
	return runtimeOverride{MetadataPort: metadata, version: runtimeVersion}
}
