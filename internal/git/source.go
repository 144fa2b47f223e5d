package git

import "context"

// Source provides the repository queries used by the change-impact pipeline.
// Two implementations exist: CLISource shells out to the git executable,
// GoGitSource answers the same queries in-process via go-git.
type Source interface {
	// RepoRoot resolves the top-level directory of the working tree
	// containing dir (or the process's working directory when dir is empty).
	RepoRoot(ctx context.Context, dir string) (string, error)

	// ChangedFiles lists the files changed between the merge base of
	// baseRef and HEAD, and HEAD itself (three-dot diff). Paths are
	// relative to the repository root, in diff order, with blank entries
	// removed.
	ChangedFiles(ctx context.Context, baseRef, repoRoot string) ([]string, error)
}

// Compile-time interface conformance checks.
var (
	_ Source = (*CLISource)(nil)
	_ Source = (*GoGitSource)(nil)
)
