// Package platform exposes the platform error codes of
// github.com/jmgilman/go/errors as a status domain.
//
// Platform codes are strings, so they cannot be erased; they are the example
// of a domain that only exists in typed form. They are still equivalent to
// erased codes of other domains through their generic decoding.
package platform

import (
	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/status"
)

// CodeOK is the success value of the platform domain.
const CodeOK errors.ErrorCode = "OK"

// Domain is the status domain of platform error codes.
var Domain = status.NewDomain[errors.ErrorCode]("platform", semantics{},
	status.WithUUID("3c6f1e0a-7b2d-4e59-a8c4-d15f9b02e7a3"))

func init() {
	status.RegisterFactory(func(c errors.ErrorCode) status.Code {
		return Domain.Code(c)
	})
	status.RegisterFactory(func(e errors.PlatformError) status.Code {
		return Domain.Code(e.Code())
	})
}

// New returns the status code of platform code c.
func New(c errors.ErrorCode) status.StatusCode[errors.ErrorCode] {
	return Domain.Code(c)
}

// Errored returns the errored status code of platform code c. The process
// terminates if c is CodeOK.
func Errored(c errors.ErrorCode) status.ErroredStatusCode[errors.ErrorCode] {
	return Domain.Errored(c)
}

type semantics struct{}

func (semantics) Message(c errors.ErrorCode) string {
	if msg, ok := descriptions[c]; ok {
		return msg
	}
	return string(c)
}

func (semantics) Success(c errors.ErrorCode) bool {
	return c == CodeOK
}

func (semantics) Generic(c errors.ErrorCode) status.Errc {
	if g, ok := toGeneric[c]; ok {
		return g
	}
	return status.ErrcUnknown
}

func (semantics) Default() errors.ErrorCode {
	return CodeOK
}

func (semantics) FormatValue(c errors.ErrorCode) string {
	return string(c)
}
