package status

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target. Errored codes
// in the chain match any target that converts to an equivalent code.
//
// Example:
//
//	if status.Is(err, posix.Errored(unix.ENOENT)) {
//	    // Handle missing file from any domain that means the same thing
//	}
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// AsCode converts the first convertible error in err's chain to a status
// code. It is FromError under the name the rest of the helpers use.
//
// Example:
//
//	if c, ok := status.AsCode(err); ok && c.Equivalent(status.Generic.Code(status.ErrcTimedOut)) {
//	    // Retry
//	}
func AsCode(err error) (Code, bool) {
	return FromError(err)
}

// GenericOf returns the generic condition of err, or ErrcUnknown if err is
// nil or has no conversion to a status code.
func GenericOf(err error) Errc {
	c, ok := FromError(err)
	if !ok {
		return ErrcUnknown
	}
	return c.Generic()
}

// IsRetryable reports whether err decodes to a generic condition that is
// usually transient. Returns false for nil and unconvertible errors.
func IsRetryable(err error) bool {
	return GenericOf(err).Retryable()
}

// IntValue returns the value of c as an integer when its domain's value type
// is an integer kind. It lets domains compare against codes of other domains
// without knowing their value types.
func IntValue(c Code) (int64, bool) {
	d := domainOf(c)
	if d == nil {
		return 0, false
	}
	return d.int64Value(c)
}

// ValueString returns the domain's machine-facing rendering of c's value.
func ValueString(c Code) string {
	d := domainOf(c)
	if d == nil {
		return ""
	}
	return d.formatValue(c)
}
