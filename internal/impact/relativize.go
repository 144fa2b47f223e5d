// Package impact classifies changed files against the workspace package
// registry: path relativization, trigger escalation, and longest-prefix
// package attribution. Everything in this package is pure computation;
// degenerate inputs yield well-defined outputs, never errors.
package impact

import (
	"path/filepath"
	"strings"
)

// Relativize rewrites repository-root-relative paths into
// workspace-root-relative ones. Files outside the workspace subtree are
// dropped; a file naming the workspace root itself becomes ".". When the
// workspace root is not a descendant of the repository root nothing can
// be relevant, so the result is empty. Order of surviving entries
// matches input order.
func Relativize(changedFiles []string, repoRoot, workspaceRoot string) []string {
	repoAbs := canonical(repoRoot)
	wsAbs := canonical(workspaceRoot)

	if wsAbs == repoAbs {
		return changedFiles
	}

	rel, err := filepath.Rel(repoAbs, wsAbs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil
	}

	prefix := filepath.ToSlash(rel)
	result := make([]string, 0, len(changedFiles))
	for _, f := range changedFiles {
		switch {
		case strings.HasPrefix(f, prefix+"/"):
			result = append(result, f[len(prefix)+1:])
		case f == prefix:
			// The workspace root entry itself was touched (e.g. a rename).
			result = append(result, ".")
		}
	}
	return result
}

func canonical(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
