// Package graph holds the workspace package registry consumed by the
// impact mapper: a mapping from package name to its declared source path.
package graph

// Package describes a single workspace package.
type Package struct {
	Name       string `json:"name"`
	SourcePath string `json:"source_path"` // workspace-root-relative; "." denotes the workspace root itself
}

// IsRoot reports whether this is the virtual root package. The root
// package owns the workspace root directory and is never a target for
// direct file attribution.
func (p Package) IsRoot() bool {
	return p.SourcePath == "."
}
