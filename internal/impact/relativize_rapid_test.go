package impact

import (
	"fmt"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// --- Generators ---

func genRelPath() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		depth := rapid.IntRange(1, 4).Draw(t, "depth")
		segments := make([]string, depth)
		for i := 0; i < depth; i++ {
			segments[i] = rapid.StringMatching(`[a-z][a-z0-9_]{0,7}`).Draw(t, fmt.Sprintf("seg%d", i))
		}
		return strings.Join(segments, "/")
	})
}

func genRelPaths() *rapid.Generator[[]string] {
	return rapid.SliceOfN(genRelPath(), 0, 20)
}

// --- Property Tests ---

func TestRapidRelativize_IdentityOnEqualRoots(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		files := genRelPaths().Draw(t, "files")

		got := Relativize(files, "/repo", "/repo")

		if len(got) != len(files) {
			t.Fatalf("identity changed length: %d vs %d", len(got), len(files))
		}
		for i := range files {
			if got[i] != files[i] {
				t.Fatalf("identity changed entry %d: %q vs %q", i, got[i], files[i])
			}
		}
	})
}

func TestRapidRelativize_NeverGrows(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		files := genRelPaths().Draw(t, "files")
		prefix := genRelPath().Draw(t, "prefix")

		got := Relativize(files, "/repo", "/repo/"+prefix)

		if len(got) > len(files) {
			t.Fatalf("output longer than input: %d > %d", len(got), len(files))
		}
	})
}

func TestRapidRelativize_StripsPrefixExactly(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		prefix := genRelPath().Draw(t, "prefix")
		rests := genRelPaths().Draw(t, "rests")

		files := make([]string, len(rests))
		for i, rest := range rests {
			files[i] = prefix + "/" + rest
		}

		got := Relativize(files, "/repo", "/repo/"+prefix)

		if len(got) != len(rests) {
			t.Fatalf("got %d entries, expected %d", len(got), len(rests))
		}
		for i, rest := range rests {
			if got[i] != rest {
				t.Fatalf("entry %d = %q, expected %q", i, got[i], rest)
			}
		}
	})
}

func TestRapidRelativize_OutputsAreWorkspaceRelative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		files := genRelPaths().Draw(t, "files")
		prefix := genRelPath().Draw(t, "prefix")

		inputs := make(map[string]struct{}, len(files))
		for _, f := range files {
			inputs[f] = struct{}{}
		}

		got := Relativize(files, "/repo", "/repo/"+prefix)

		for _, f := range got {
			if strings.HasPrefix(f, "/") {
				t.Fatalf("output %q starts with /", f)
			}
			// Every output corresponds to an input under the prefix.
			original := prefix + "/" + f
			if f == "." {
				original = prefix
			}
			if _, ok := inputs[original]; !ok {
				t.Fatalf("output %q has no matching input %q", f, original)
			}
		}
	})
}
