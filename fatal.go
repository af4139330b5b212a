package status

import (
	"os"
	"runtime/debug"
)

// ExitCodeInvariant is the exit status of a process that tried to build an
// errored status code from a successful one. It matches the status shells
// report for an aborted process.
const ExitCodeInvariant = 134

// check terminates the process if c is a success.
func check(c Code) {
	if !c.Success() {
		return
	}
	logger().Error("errored status code constructed from a successful status code",
		"domain", c.Domain().Name(),
		"message", c.Message(),
		"stack", string(debug.Stack()),
	)
	os.Exit(ExitCodeInvariant)
}
