package git

import (
	"bytes"
	"context"
	"os/exec"
)

// CommandRunner abstracts invocation of the git executable.
// This abstraction allows tests to substitute a fake runner without
// needing a real repository.
type CommandRunner interface {
	// Run executes git with the given arguments in dir (or the process's
	// working directory when dir is empty) and returns captured stdout,
	// stderr, and the wait error (non-nil for a non-zero exit).
	Run(ctx context.Context, dir string, args ...string) (stdout, stderr string, err error)
}

// CLIRunner runs the git executable as a subprocess.
type CLIRunner struct{}

// Run executes the git command and waits for it to finish.
func (CLIRunner) Run(ctx context.Context, dir string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// Compile-time interface conformance check.
var _ CommandRunner = CLIRunner{}
