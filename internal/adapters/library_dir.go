package adapters

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"envsnap/internal/shared"
	"envsnap/internal/types"
)

// LibraryDirAdapter answers metadata queries by reading the
// DESCRIPTION files of packages installed under one or more R library
// directories, searched in order. The runtime version is probed by
// invoking Rscript; tests override RuntimeProbe.
type LibraryDirAdapter struct {
	Roots        []string
	RuntimeProbe func() (string, error)
}

func NewLibraryDirAdapter(roots ...string) LibraryDirAdapter {
	return LibraryDirAdapter{
		Roots:        roots,
		RuntimeProbe: probeRuntimeVersion,
	}
}

func (a LibraryDirAdapter) DeclaredDependencies(name string) (types.DeclaredDependencies, error) {
	description, err := a.load(name)
	if err != nil {
		return types.DeclaredDependencies{}, err
	}
	return types.DeclaredDependencies{
		Mandatory: description.packageList("Depends"),
		Imported:  description.packageList("Imports"),
		Suggested: description.packageList("Suggests"),
	}, nil
}

func (a LibraryDirAdapter) InstalledVersion(name string) (string, error) {
	description, err := a.load(name)
	if err != nil {
		return "", err
	}
	version := description.field("Version")
	if version == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("package not found: %s has no Version field", name))
	}
	return version, nil
}

func (a LibraryDirAdapter) IsInstalled(name string) bool {
	_, err := a.load(name)
	return err == nil
}

func (a LibraryDirAdapter) RuntimeVersion() (string, error) {
	return a.RuntimeProbe()
}

func (a LibraryDirAdapter) load(name string) (descriptionFile, error) {
	for _, root := range a.Roots {
		path := filepath.Join(root, name, "DESCRIPTION")
		content, err := os.ReadFile(path)
		if err == nil {
			return parseDescription(string(content)), nil
		}
		if !os.IsNotExist(err) {
			return descriptionFile{}, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("failed to read %s", path)).
				WithCause(err)
		}
	}
	return descriptionFile{}, errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("package not found: %s", name))
}

func probeRuntimeVersion() (string, error) {
	cmd := exec.Command("Rscript", "-e", "cat(as.character(getRversion()))")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to query R version").
			WithCause(shared.CommandError(output, err))
	}
	return string(output), nil
}
