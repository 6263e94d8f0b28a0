package adapters

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"envsnap/internal/shared"
	"envsnap/internal/types"
)

// RInstallerAdapter installs one exact package version by shelling out
// to Rscript. Dependency resolution is always disabled: snapshot order
// guarantees dependencies were installed by earlier entries.
type RInstallerAdapter struct {
	// Library is the target library directory; empty installs into the
	// default library.
	Library string
	// Repos is the primary registry URL used for pinned installs.
	Repos string
}

func NewRInstallerAdapter(library string, repos string) RInstallerAdapter {
	if repos == "" {
		repos = "https://cloud.r-project.org"
	}
	return RInstallerAdapter{Library: library, Repos: repos}
}

func (a RInstallerAdapter) InstallExact(ctx context.Context, name string, version string, source types.SourceHint, url string) error {
	script, err := a.installScript(name, version, source, url)
	if err != nil {
		return err
	}
	cmd := exec.CommandContext(ctx, "Rscript", "-e", script)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("install failed: %s %s", name, version)).
			WithCause(shared.CommandError(output, err))
	}
	return nil
}

func (a RInstallerAdapter) installScript(name string, version string, source types.SourceHint, url string) (string, error) {
	switch source {
	case types.SourceAlternate:
		return fmt.Sprintf(
			"install.packages(%q, repos = NULL, type = \"source\"%s)",
			url, a.libArg(),
		), nil
	case types.SourcePrimary:
		return fmt.Sprintf(
			"remotes::install_version(%q, version = %q, repos = %q, upgrade = \"never\", dependencies = FALSE%s)",
			name, version, a.Repos, a.libArg(),
		), nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown source hint %q", source))
	}
}

func (a RInstallerAdapter) libArg() string {
	if a.Library == "" {
		return ""
	}
	return fmt.Sprintf(", lib = %q", a.Library)
}
