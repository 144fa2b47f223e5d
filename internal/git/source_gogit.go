package git

import (
	"context"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/format/diff"
)

// GoGitSource answers repository queries in-process via go-git, without
// spawning the git executable. The three-dot semantics match the CLI
// source: changes are computed from the merge base of the base ref and
// HEAD up to HEAD.
type GoGitSource struct{}

// NewGoGitSource creates a GoGitSource.
func NewGoGitSource() *GoGitSource {
	return &GoGitSource{}
}

// RepoRoot resolves the repository root by walking up from dir looking
// for a .git directory.
func (s *GoGitSource) RepoRoot(_ context.Context, dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", &NotARepositoryError{Dir: dir}
	}
	wt, err := repo.Worktree()
	if err != nil {
		// Bare repository: no working tree to resolve.
		return "", &NotARepositoryError{Dir: dir}
	}
	return filepath.Abs(wt.Filesystem.Root())
}

// ChangedFiles computes the merge-base diff between baseRef and HEAD.
func (s *GoGitSource) ChangedFiles(_ context.Context, baseRef, repoRoot string) ([]string, error) {
	if repoRoot == "" {
		repoRoot = "."
	}
	repo, err := gogit.PlainOpenWithOptions(repoRoot, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, &NotARepositoryError{Dir: repoRoot}
	}

	baseHash, err := repo.ResolveRevision(plumbing.Revision(baseRef))
	if err != nil {
		return nil, &UnresolvableRefError{Ref: baseRef, Detail: err.Error()}
	}
	baseCommit, err := repo.CommitObject(*baseHash)
	if err != nil {
		return nil, &UnresolvableRefError{Ref: baseRef, Detail: err.Error()}
	}

	headRef, err := repo.Head()
	if err != nil {
		return nil, &DiffError{Detail: err.Error()}
	}
	headCommit, err := repo.CommitObject(headRef.Hash())
	if err != nil {
		return nil, &DiffError{Detail: err.Error()}
	}

	from := baseCommit
	if bases, err := baseCommit.MergeBase(headCommit); err == nil && len(bases) > 0 {
		from = bases[0]
	}

	patch, err := from.Patch(headCommit)
	if err != nil {
		return nil, &DiffError{Detail: err.Error()}
	}

	var files []string
	for _, filePatch := range patch.FilePatches() {
		if path := patchPath(filePatch); path != "" {
			files = append(files, path)
		}
	}
	return files, nil
}

// patchPath picks the reported path for a file patch, preferring the
// post-image side so renames surface under their new name.
func patchPath(fp diff.FilePatch) string {
	from, to := fp.Files()
	switch {
	case to != nil:
		return to.Path()
	case from != nil:
		return from.Path()
	default:
		return ""
	}
}
