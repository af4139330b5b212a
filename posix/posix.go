//go:build unix

// Package posix provides the status domain of POSIX errno values.
package posix

import (
	"errors"
	"syscall"

	"github.com/jmgilman/go/status"
	"golang.org/x/sys/unix"
)

// Domain is the status domain of errno values.
var Domain = status.NewDomain[unix.Errno]("posix", semantics{},
	status.WithUUID("a9c2b1f4-0d2e-4c8a-9f61-2b7de3a04c55"))

func init() {
	status.RegisterFactory(func(e syscall.Errno) status.Code {
		return Domain.Code(e)
	})
}

// New returns the status code of errno e. Errno 0 is success.
func New(e unix.Errno) status.StatusCode[unix.Errno] {
	return Domain.Code(e)
}

// Errored returns the errored status code of errno e. The process terminates
// if e is 0.
func Errored(e unix.Errno) status.ErroredStatusCode[unix.Errno] {
	return Domain.Errored(e)
}

// Erased returns the erased status code of errno e.
func Erased(e unix.Errno) status.ErasedCode {
	return status.Erase(New(e))
}

// FromError returns the status code of the first errno in err's chain, as
// found in *os.PathError, *os.SyscallError and similar wrappers.
func FromError(err error) (status.StatusCode[unix.Errno], bool) {
	var e syscall.Errno
	if !errors.As(err, &e) {
		return status.StatusCode[unix.Errno]{}, false
	}
	return New(e), true
}

// Name returns the symbolic name of e, such as "ENOENT". It returns an empty
// string for unknown values.
func Name(e unix.Errno) string {
	return unix.ErrnoName(e)
}

type semantics struct{}

func (semantics) Message(e unix.Errno) string {
	if e == 0 {
		return "success"
	}
	return e.Error()
}

func (semantics) Success(e unix.Errno) bool {
	return e == 0
}

func (semantics) Generic(e unix.Errno) status.Errc {
	if e == 0 {
		return status.ErrcSuccess
	}
	if g, ok := errnoToErrc[e]; ok {
		return g
	}
	return status.ErrcUnknown
}

func (semantics) FormatValue(e unix.Errno) string {
	if name := unix.ErrnoName(e); name != "" {
		return name
	}
	return e.Error()
}
