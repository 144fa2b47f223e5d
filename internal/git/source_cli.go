package git

import (
	"context"
	"strings"
)

// CLISource answers repository queries by running the git executable.
type CLISource struct {
	Runner CommandRunner
}

// NewCLISource creates a CLISource backed by the real git executable.
func NewCLISource() *CLISource {
	return &CLISource{Runner: CLIRunner{}}
}

// RepoRoot resolves the repository root via `git rev-parse --show-toplevel`.
func (s *CLISource) RepoRoot(ctx context.Context, dir string) (string, error) {
	stdout, _, err := s.Runner.Run(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", &NotARepositoryError{Dir: dir}
	}
	return strings.TrimSpace(stdout), nil
}

// ChangedFiles lists changed files via `git diff --name-only base...HEAD`.
func (s *CLISource) ChangedFiles(ctx context.Context, baseRef, repoRoot string) ([]string, error) {
	stdout, stderr, err := s.Runner.Run(ctx, repoRoot, "diff", "--name-only", baseRef+"...HEAD")
	if err != nil {
		detail := strings.TrimSpace(stderr)
		if strings.Contains(detail, "unknown revision") || strings.Contains(detail, "not a git repository") {
			return nil, &UnresolvableRefError{Ref: baseRef, Detail: detail}
		}
		return nil, &DiffError{Detail: detail}
	}

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	files := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			files = append(files, line)
		}
	}
	return files, nil
}
