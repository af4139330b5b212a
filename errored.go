package status

import "encoding/json"

// ErroredStatusCode is a status code that is guaranteed never to be a
// success. The guarantee is checked once, when the value is constructed: if
// the wrapped code reports success the process terminates. There is no way
// to modify an ErroredStatusCode afterwards, so copies keep the guarantee.
//
// ErroredStatusCode implements error, which makes it a natural return type
// for functions that must report a failure from a specific domain.
type ErroredStatusCode[V comparable] struct {
	code StatusCode[V]
}

var (
	_ Code  = ErroredStatusCode[int]{}
	_ error = ErroredStatusCode[int]{}
)

func (ErroredStatusCode[V]) isStatusCode() {}

// NewErrored wraps c, terminating the process if c is a success.
func NewErrored[V comparable](c StatusCode[V]) ErroredStatusCode[V] {
	e := ErroredStatusCode[V]{code: c}
	check(c)
	return e
}

// ErroredFromErased recovers a typed errored code from an erased one. It
// reports false if e does not belong to d, and terminates the process if e
// is a success.
func ErroredFromErased[V comparable](e ErasedCode, d *TypedDomain[V]) (ErroredStatusCode[V], bool) {
	c, ok := Unerase(e, d)
	if !ok {
		return ErroredStatusCode[V]{}, false
	}
	return NewErrored(c), true
}

// MakeErrored converts v through its MakeStatusCode method and wraps the
// result, terminating the process if it is a success.
func MakeErrored[V comparable, T Maker[V]](v T) ErroredStatusCode[V] {
	return NewErrored(v.MakeStatusCode())
}

// Code returns a copy of the wrapped status code.
func (e ErroredStatusCode[V]) Code() StatusCode[V] { return e.code }

// Domain returns the domain of the code, or nil if the code is empty.
func (e ErroredStatusCode[V]) Domain() Domain { return e.code.Domain() }

// TypedDomain returns the domain of the code with its value type intact.
func (e ErroredStatusCode[V]) TypedDomain() *TypedDomain[V] { return e.code.domain }

// Value returns the domain-specific value.
func (e ErroredStatusCode[V]) Value() V { return e.code.value }

// Empty reports whether the code has no domain.
func (e ErroredStatusCode[V]) Empty() bool { return e.code.Empty() }

// Success always reports false.
func (e ErroredStatusCode[V]) Success() bool { return false }

// Failure reports whether the code represents failure. It is false only for
// the empty code.
func (e ErroredStatusCode[V]) Failure() bool { return e.code.Failure() }

// Message renders the code for humans.
func (e ErroredStatusCode[V]) Message() string { return e.code.Message() }

// Generic decodes the code to the portable generic representation.
func (e ErroredStatusCode[V]) Generic() Errc { return e.code.Generic() }

// Equivalent reports whether the code means the same thing as other.
func (e ErroredStatusCode[V]) Equivalent(other Code) bool { return Equivalent(e, other) }

// String renders the code as "domain: message".
func (e ErroredStatusCode[V]) String() string { return render(e) }

// Error implements error.
func (e ErroredStatusCode[V]) Error() string { return render(e) }

// Is lets errors.Is match any error that converts to an equivalent status code.
func (e ErroredStatusCode[V]) Is(target error) bool { return isEquivalentError(e, target) }

// MarshalJSON encodes the code as a Response.
func (e ErroredStatusCode[V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToJSON(e))
}

// ErroredCode is the erased form of ErroredStatusCode: a fixed-layout status
// code that is guaranteed never to be a success.
type ErroredCode struct {
	code ErasedCode
}

var (
	_ Code  = ErroredCode{}
	_ error = ErroredCode{}
)

func (ErroredCode) isStatusCode() {}

// NewErroredCode wraps e, terminating the process if e is a success.
func NewErroredCode(e ErasedCode) ErroredCode {
	out := ErroredCode{code: e}
	check(e)
	return out
}

// ErroredOf erases c and wraps the result, terminating the process if c is a
// success.
func ErroredOf[V Trivial](c StatusCode[V]) ErroredCode {
	return NewErroredCode(Erase(c))
}

// ErroredRelocated relocates c into an erased payload and wraps the result,
// terminating the process if c is a success.
func ErroredRelocated[V Relocatable](c StatusCode[V]) ErroredCode {
	return NewErroredCode(Relocate(c))
}

// EraseErrored erases an errored status code. The source was validated when
// it was built, so the result is not checked again.
func EraseErrored[V Trivial](e ErroredStatusCode[V]) ErroredCode {
	return ErroredCode{code: Erase(e.code)}
}

// MakeErroredCode converts v through its MakeStatusCode method, erases the
// result and wraps it, terminating the process if it is a success.
func MakeErroredCode[V Trivial, T Maker[V]](v T) ErroredCode {
	return ErroredOf(v.MakeStatusCode())
}

// Code returns a copy of the wrapped erased code.
func (e ErroredCode) Code() ErasedCode { return e.code }

// Domain returns the domain of the code, or nil if the code is empty.
func (e ErroredCode) Domain() Domain { return e.code.Domain() }

// Value returns a copy of the raw payload bytes.
func (e ErroredCode) Value() [PayloadSize]byte { return e.code.Payload() }

// Empty reports whether the code has no domain.
func (e ErroredCode) Empty() bool { return e.code.Empty() }

// Success always reports false.
func (e ErroredCode) Success() bool { return false }

// Failure reports whether the code represents failure. It is false only for
// the empty code.
func (e ErroredCode) Failure() bool { return e.code.Failure() }

// Message renders the code for humans.
func (e ErroredCode) Message() string { return e.code.Message() }

// Generic decodes the code to the portable generic representation.
func (e ErroredCode) Generic() Errc { return e.code.Generic() }

// Equivalent reports whether the code means the same thing as other.
func (e ErroredCode) Equivalent(other Code) bool { return Equivalent(e, other) }

// String renders the code as "domain: message".
func (e ErroredCode) String() string { return render(e) }

// Error implements error.
func (e ErroredCode) Error() string { return render(e) }

// Is lets errors.Is match any error that converts to an equivalent status code.
func (e ErroredCode) Is(target error) bool { return isEquivalentError(e, target) }

// MarshalJSON encodes the code as a Response.
func (e ErroredCode) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToJSON(e))
}

func isEquivalentError(c Code, target error) bool {
	other, ok := From(target)
	return ok && Equivalent(c, other)
}
