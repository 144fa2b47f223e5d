package impact

import (
	"sort"
	"strings"

	"difftrace/internal/graph"
)

// DefaultRootTriggers returns the default set of workspace-root file names
// whose modification affects every package.
func DefaultRootTriggers() map[string]struct{} {
	return map[string]struct{}{
		"pyproject.toml": {},
		"uv.lock":        {},
	}
}

// DefaultDirTriggers returns the default path prefixes whose modification
// affects every package.
func DefaultDirTriggers() []string {
	return []string{".github/"}
}

// Options configures trigger matching for MapImpact. A nil set means
// "use the defaults"; a non-nil empty set disables that trigger category.
type Options struct {
	RootTriggers map[string]struct{}
	DirTriggers  []string
}

// Impact is the result of mapping changed files onto the package registry.
// The two fields are independent: TestAll being set does not stop direct
// attribution of the remaining files.
type Impact struct {
	Packages map[string]struct{}
	TestAll  bool
}

// PackageNames returns the directly-changed package names, sorted.
func (im Impact) PackageNames() []string {
	names := make([]string, 0, len(im.Packages))
	for name := range im.Packages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MapImpact classifies workspace-relative changed paths. Per file, in
// order: an exact root-trigger match or a dir-trigger prefix match sets
// TestAll (and excludes the file from attribution); otherwise the file is
// attributed to the package with the longest source path that prefixes
// it. The virtual root package never matches, and a file matching no
// package is silently unattributed.
func MapImpact(changedFiles []string, packages map[string]graph.Package, opts Options) Impact {
	rootTriggers := opts.RootTriggers
	if rootTriggers == nil {
		rootTriggers = DefaultRootTriggers()
	}
	dirTriggers := opts.DirTriggers
	if dirTriggers == nil {
		dirTriggers = DefaultDirTriggers()
	}

	// Longest source path first so a nested package wins over its ancestor.
	sorted := make([]graph.Package, 0, len(packages))
	for _, pkg := range packages {
		sorted = append(sorted, pkg)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i].SourcePath) != len(sorted[j].SourcePath) {
			return len(sorted[i].SourcePath) > len(sorted[j].SourcePath)
		}
		return sorted[i].SourcePath < sorted[j].SourcePath
	})

	result := Impact{Packages: make(map[string]struct{})}

	for _, file := range changedFiles {
		if _, ok := rootTriggers[file]; ok {
			result.TestAll = true
			continue
		}
		if matchesDirTrigger(file, dirTriggers) {
			result.TestAll = true
			continue
		}

		for _, pkg := range sorted {
			if pkg.IsRoot() {
				continue
			}
			if strings.HasPrefix(file, pkg.SourcePath+"/") {
				result.Packages[pkg.Name] = struct{}{}
				break
			}
		}
	}

	return result
}

func matchesDirTrigger(file string, triggers []string) bool {
	for _, trigger := range triggers {
		if strings.HasPrefix(file, trigger) {
			return true
		}
	}
	return false
}
