package status_test

import (
	"path/filepath"
	"testing"

	"github.com/jmgilman/go/exec"
	"github.com/stretchr/testify/require"
)

// goBuild compiles the program in dir and returns the compiler output.
func goBuild(t *testing.T, dir string) (string, bool) {
	t.Helper()

	out := filepath.Join(t.TempDir(), "prog")
	res, err := exec.New().
		WithInheritEnv().
		Run("go", "build", "-o", out, "./"+filepath.ToSlash(dir))
	if res == nil {
		t.Skipf("go toolchain not available: %v", err)
	}
	return res.Combined, err == nil
}

// TestCompileRejections checks that misuse of the erasure and factory APIs
// is a build error rather than a runtime one.
func TestCompileRejections(t *testing.T) {
	if testing.Short() {
		t.Skip("compiles programs with the go toolchain")
	}

	if out, ok := goBuild(t, filepath.Join("testdata", "accepted")); !ok {
		t.Skipf("control program does not build in this environment:\n%s", out)
	}

	tests := []struct {
		name string
		dir  string
		want string
	}{
		{"erase non-trivial value", "erase_string", "does not satisfy status.Trivial"},
		{"erase composite value", "erase_wide_array", "does not satisfy status.Trivial"},
		{"relocate without marker", "relocate_unmarked", "missing method MoveRelocating"},
		{"make from non-maker", "make_non_maker", "missing method MakeStatusCode"},
		{"errored erasure of non-trivial value", "errored_of_string", "does not satisfy status.Trivial"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, ok := goBuild(t, filepath.Join("testdata", "rejected", tt.dir))
			require.False(t, ok, "program built but should not have")
			require.Contains(t, out, tt.want)
		})
	}
}
