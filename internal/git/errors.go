package git

import "fmt"

// NotARepositoryError indicates the working directory is not inside a git
// working tree.
type NotARepositoryError struct {
	Dir string
}

func (e *NotARepositoryError) Error() string {
	return "not a git repository. Run difftrace from within a git repo"
}

// UnresolvableRefError indicates the base ref could not be resolved against
// the repository.
type UnresolvableRefError struct {
	Ref    string
	Detail string
}

func (e *UnresolvableRefError) Error() string {
	return fmt.Sprintf("could not resolve ref %q. Does the branch/ref exist? Try 'git fetch' or pass a valid ref", e.Ref)
}

// DiffError indicates the diff query failed for a reason other than an
// unresolvable ref. Detail carries the diagnostic text verbatim.
type DiffError struct {
	Detail string
}

func (e *DiffError) Error() string {
	return "git diff failed: " + e.Detail
}
