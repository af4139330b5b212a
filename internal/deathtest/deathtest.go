// Package deathtest runs test code that is expected to terminate the process.
//
// The test binary re-executes itself restricted to the calling test, with an
// environment variable telling the child to run the fatal code path. The
// parent inspects the child's exit code and standard error.
package deathtest

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/jmgilman/go/exec"
	"github.com/stretchr/testify/require"
)

// EnvKey names the environment variable that marks the child process. Its
// value is the name of the test the child runs.
const EnvKey = "STATUS_DEATHTEST"

// Result describes how the child process ended.
type Result struct {
	ExitCode int
	Stderr   string
}

// Run executes fn in a child copy of the test binary. In the child, fn runs
// and the process exits with status 0 if fn returns. In the parent, Run
// returns once the child has ended.
func Run(t *testing.T, fn func()) Result {
	t.Helper()

	if os.Getenv(EnvKey) == t.Name() {
		fn()
		os.Exit(0)
	}

	res, err := exec.New().
		WithInheritEnv().
		WithEnv(map[string]string{EnvKey: t.Name()}).
		Run(os.Args[0], "-test.run="+runPattern(t.Name()), "-test.count=1")
	if res == nil {
		require.NoError(t, err, "failed to start child test process")
	}
	return Result{ExitCode: res.ExitCode, Stderr: res.Stderr}
}

// RequireExit runs fn in a child process and fails the test unless the child
// exits with want.
func RequireExit(t *testing.T, want int, fn func()) Result {
	t.Helper()

	res := Run(t, fn)
	require.Equal(t, want, res.ExitCode, "unexpected exit status; stderr:\n%s", res.Stderr)
	return res
}

// runPattern builds a -test.run pattern matching exactly the named test,
// including its subtest path.
func runPattern(name string) string {
	parts := strings.Split(name, "/")
	for i, p := range parts {
		parts[i] = "^" + regexp.QuoteMeta(p) + "$"
	}
	return strings.Join(parts, "/")
}
