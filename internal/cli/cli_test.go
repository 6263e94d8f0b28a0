package cli

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
)

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()
	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	for _, name := range []string{"snapshot", "restore"} {
		assert.Contains(t, names, name, "missing subcommand: %s", name)
	}
}

func TestRootCommandVersion(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "dev", root.Version)
}

func TestSnapshotCommandFlags(t *testing.T) {
	cmd := newSnapshotCommand()
	for _, name := range []string{"root", "library", "output", "runtime-version"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag: %s", name)
	}
}

func TestRestoreCommandFlags(t *testing.T) {
	cmd := newRestoreCommand()
	flags := []string{
		"snapshot", "remote", "library", "policy", "repos",
		"runtime-version", "stop-on-mismatch", "strict", "skip-last",
	}
	for _, name := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag: %s", name)
	}
}

func TestExitCodeForError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{errbuilder.New().WithCode(errbuilder.CodeInvalidArgument).WithMsg("bad flag"), 2},
		{errbuilder.New().WithCode(errbuilder.CodeFailedPrecondition).WithMsg("runtime version mismatch: snapshot 4.0.0, current 4.1.0"), 3},
		{errbuilder.New().WithCode(errbuilder.CodeInternal).WithMsg("install failed: jsonlite 1.6"), 4},
		{errbuilder.New().WithCode(errbuilder.CodeNotFound).WithMsg("package not found: gone"), 5},
		{assert.AnError, 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, exitCodeForError(tc.err), "err=%v", tc.err)
	}
}
