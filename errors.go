package status

import (
	platformerrors "github.com/jmgilman/go/errors"
)

// Registration and decoding failures. Status codes themselves never produce
// these; they are returned by the few operations that accept untrusted input
// or change process-wide state.
var (
	// ErrDuplicateDomain is returned when a domain ID is registered twice.
	ErrDuplicateDomain = platformerrors.New(platformerrors.CodeAlreadyExists, "domain already registered")

	// ErrReservedID is returned when a domain asks for the ID reserved for empty codes.
	ErrReservedID = platformerrors.New(platformerrors.CodeInvalidInput, "domain ID 0 is reserved")

	// ErrNilSemantics is returned when a domain is defined without semantics.
	ErrNilSemantics = platformerrors.New(platformerrors.CodeInvalidInput, "domain semantics are nil")

	// ErrNotRelocatable is returned when a Relocatable value type does not fit an erased payload.
	ErrNotRelocatable = platformerrors.New(platformerrors.CodeInvalidInput, "value type cannot be relocated into an erased payload")

	// ErrUnknownDomain is returned when decoding an erased code whose domain is not registered.
	ErrUnknownDomain = platformerrors.New(platformerrors.CodeNotFound, "unknown status domain")

	// ErrNotErasable is returned when decoding an erased code for a domain whose values cannot be erased.
	ErrNotErasable = platformerrors.New(platformerrors.CodeInvalidInput, "status domain values cannot be erased")

	// ErrInvalidEncoding is returned when an erased code's binary form has the wrong size.
	ErrInvalidEncoding = platformerrors.New(platformerrors.CodeInvalidInput, "invalid erased status code encoding")
)
