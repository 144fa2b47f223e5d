package impact

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter applies include/exclude glob patterns to changed paths.
// Exclude patterns win; an empty include list accepts everything.
func Filter(paths []string, include, exclude []string) []string {
	if len(include) == 0 && len(exclude) == 0 {
		return paths
	}

	result := make([]string, 0, len(paths))
	for _, path := range paths {
		if matchesFilters(path, include, exclude) {
			result = append(result, path)
		}
	}
	return result
}

func matchesFilters(path string, include, exclude []string) bool {
	path = strings.ReplaceAll(path, "\\", "/")

	for _, pattern := range exclude {
		if matched, _ := doublestar.Match(pattern, path); matched {
			return false
		}
	}

	if len(include) == 0 {
		return true
	}

	for _, pattern := range include {
		if matched, _ := doublestar.Match(pattern, path); matched {
			return true
		}
	}
	return false
}
