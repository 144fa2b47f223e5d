package git

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// initTestRepo creates a repository with a base commit touching base.txt and
// a head commit touching changed.txt, returning the repo dir and the base
// commit hash.
func initTestRepo(t *testing.T) (string, string) {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree: %v", err)
	}

	sig := &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()}

	if err := os.WriteFile(filepath.Join(dir, "base.txt"), []byte("base\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := wt.Add("base.txt"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	base, err := wt.Commit("base", &gogit.CommitOptions{Author: sig})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "changed.txt"), []byte("changed\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := wt.Add("changed.txt"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := wt.Commit("change", &gogit.CommitOptions{Author: sig}); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	return dir, base.String()
}

func TestGoGitSource_RepoRoot_FromSubdirectory(t *testing.T) {
	dir, _ := initTestRepo(t)

	sub := filepath.Join(dir, "nested", "deep")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	src := NewGoGitSource()
	root, err := src.RepoRoot(context.Background(), sub)
	if err != nil {
		t.Fatalf("RepoRoot: %v", err)
	}

	wantRoot, _ := filepath.EvalSymlinks(dir)
	gotRoot, _ := filepath.EvalSymlinks(root)
	if gotRoot != wantRoot {
		t.Errorf("RepoRoot = %q, expected %q", gotRoot, wantRoot)
	}
}

func TestGoGitSource_RepoRoot_NotARepository(t *testing.T) {
	src := NewGoGitSource()
	_, err := src.RepoRoot(context.Background(), t.TempDir())
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var notRepo *NotARepositoryError
	if !errors.As(err, &notRepo) {
		t.Fatalf("error = %T, expected *NotARepositoryError", err)
	}
}

func TestGoGitSource_ChangedFiles_SinceBase(t *testing.T) {
	dir, base := initTestRepo(t)

	src := NewGoGitSource()
	files, err := src.ChangedFiles(context.Background(), base, dir)
	if err != nil {
		t.Fatalf("ChangedFiles: %v", err)
	}
	if !reflect.DeepEqual(files, []string{"changed.txt"}) {
		t.Errorf("files = %v, expected [changed.txt]", files)
	}
}

func TestGoGitSource_ChangedFiles_UnresolvableRef(t *testing.T) {
	dir, _ := initTestRepo(t)

	src := NewGoGitSource()
	_, err := src.ChangedFiles(context.Background(), "no-such-ref", dir)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var unresolvable *UnresolvableRefError
	if !errors.As(err, &unresolvable) {
		t.Fatalf("error = %T, expected *UnresolvableRefError", err)
	}
	if unresolvable.Ref != "no-such-ref" {
		t.Errorf("Ref = %q, expected %q", unresolvable.Ref, "no-such-ref")
	}
}
