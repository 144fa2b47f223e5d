package graph

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pelletier/go-toml/v2"
)

// pyproject is the subset of pyproject.toml the loader reads.
type pyproject struct {
	Project struct {
		Name string `toml:"name"`
	} `toml:"project"`
	Tool struct {
		UV struct {
			Workspace struct {
				Members []string `toml:"members"`
				Exclude []string `toml:"exclude"`
			} `toml:"workspace"`
		} `toml:"uv"`
	} `toml:"tool"`
}

// Load builds the package registry for a uv workspace rooted at
// workspaceRoot. Member globs from [tool.uv.workspace] are expanded
// relative to the workspace root; each member directory containing a
// pyproject.toml contributes one package. The root project itself, when
// named, becomes the virtual root package with source path ".".
//
// The registry is not validated for internal consistency; duplicate
// names overwrite earlier entries.
func Load(workspaceRoot string) (map[string]Package, error) {
	root, err := parsePyproject(filepath.Join(workspaceRoot, "pyproject.toml"))
	if err != nil {
		return nil, err
	}

	packages := make(map[string]Package)
	if root.Project.Name != "" {
		packages[root.Project.Name] = Package{Name: root.Project.Name, SourcePath: "."}
	}

	fsys := os.DirFS(workspaceRoot)
	for _, pattern := range root.Tool.UV.Workspace.Members {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid workspace member pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if excluded(match, root.Tool.UV.Workspace.Exclude) {
				continue
			}

			manifest := filepath.Join(workspaceRoot, filepath.FromSlash(match), "pyproject.toml")
			if _, err := os.Stat(manifest); err != nil {
				// Glob hits that are not package directories (plain files,
				// dirs without a manifest) are skipped.
				continue
			}

			member, err := parsePyproject(manifest)
			if err != nil {
				return nil, err
			}
			if member.Project.Name == "" {
				return nil, fmt.Errorf("workspace member %q has no [project] name", match)
			}

			packages[member.Project.Name] = Package{
				Name:       member.Project.Name,
				SourcePath: match,
			}
		}
	}

	return packages, nil
}

func parsePyproject(path string) (*pyproject, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var p pyproject
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &p, nil
}

func excluded(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, path); ok {
			return true
		}
	}
	return false
}
