package platform

import (
	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/status"
)

// CodeOf returns the platform code that represents c. Platform codes are
// returned as they are; codes of other domains go through their generic
// decoding. Returns CodeOK for successes and CodeUnknown for empty codes.
func CodeOf(c status.Code) errors.ErrorCode {
	if c == nil || c.Empty() {
		return errors.CodeUnknown
	}
	if v, ok := Domain.ValueOf(c); ok {
		return v
	}
	if c.Success() {
		return CodeOK
	}
	return FromGeneric(c.Generic())
}

// ToError converts a failed status code to a PlatformError carrying the
// code's message. Returns nil for successes and empty codes.
//
// Example:
//
//	if c := posix.New(errno); c.Failure() {
//	    return platform.ToError(c)
//	}
func ToError(c status.Code) errors.PlatformError {
	if c == nil || !c.Failure() {
		return nil
	}
	return errors.New(CodeOf(c), c.Message())
}

// Wrap wraps err in a PlatformError whose code is derived from the first
// status code in err's chain. Errors without a status code are wrapped with
// CodeUnknown. Returns nil if err is nil.
func Wrap(err error, message string) errors.PlatformError {
	if err == nil {
		return nil
	}
	code := errors.CodeUnknown
	if c, ok := status.FromError(err); ok {
		code = CodeOf(c)
	}
	return errors.Wrap(err, code, message)
}

// Classification returns the retry classification of c. Platform codes use
// the platform defaults; other domains are retryable when their generic
// condition is.
func Classification(c status.Code) errors.ErrorClassification {
	if v, ok := Domain.ValueOf(c); ok {
		return errors.New(v, "").Classification()
	}
	if c != nil && c.Generic().Retryable() {
		return errors.ClassificationRetryable
	}
	return errors.ClassificationPermanent
}

// IsRetryable reports whether c is classified as retryable.
func IsRetryable(c status.Code) bool {
	return Classification(c).IsRetryable()
}
