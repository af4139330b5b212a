package status

import "encoding/json"

const emptyMessage = "(empty)"

// Code is the domain-agnostic view shared by every status code form:
// StatusCode, ErasedCode, ErroredStatusCode and ErroredCode.
//
// The interface is sealed; new kinds of codes are made by defining domains,
// not by implementing Code.
type Code interface {
	// Domain returns the domain of the code, or nil if the code is empty.
	Domain() Domain

	// Empty reports whether the code has no domain.
	Empty() bool

	// Success reports whether the code represents success. Empty codes are
	// neither successes nor failures.
	Success() bool

	// Failure reports whether the code represents failure.
	Failure() bool

	// Message renders the code for humans.
	Message() string

	// Generic decodes the code to the portable generic representation.
	Generic() Errc

	// Equivalent reports whether the code means the same thing as other.
	Equivalent(other Code) bool

	// String renders the code as "domain: message".
	String() string

	isStatusCode()
}

// StatusCode is a domain-bound status value.
//
// The zero StatusCode is empty: it has no domain and is neither a success
// nor a failure. StatusCode values are plain data and may be copied freely.
type StatusCode[V comparable] struct {
	domain *TypedDomain[V]
	value  V
}

var (
	_ Code = StatusCode[int]{}
	_ Code = (*StatusCode[int])(nil)
)

func (StatusCode[V]) isStatusCode() {}

// Domain returns the domain of the code, or nil if the code is empty.
func (c StatusCode[V]) Domain() Domain {
	if c.domain == nil {
		return nil
	}
	return c.domain
}

// TypedDomain returns the domain of the code with its value type intact.
func (c StatusCode[V]) TypedDomain() *TypedDomain[V] {
	return c.domain
}

// Value returns the domain-specific value.
func (c StatusCode[V]) Value() V {
	return c.value
}

// Empty reports whether the code has no domain.
func (c StatusCode[V]) Empty() bool {
	return c.domain == nil
}

// Success reports whether the code represents success.
func (c StatusCode[V]) Success() bool {
	return c.domain != nil && c.domain.sem.Success(c.value)
}

// Failure reports whether the code represents failure.
func (c StatusCode[V]) Failure() bool {
	return c.domain != nil && !c.domain.sem.Success(c.value)
}

// Message renders the code for humans.
func (c StatusCode[V]) Message() string {
	if c.domain == nil {
		return emptyMessage
	}
	return c.domain.sem.Message(c.value)
}

// Generic decodes the code to the portable generic representation.
func (c StatusCode[V]) Generic() Errc {
	if c.domain == nil {
		return ErrcUnknown
	}
	return c.domain.genericOf(c.value)
}

// Equivalent reports whether the code means the same thing as other,
// possibly across domains.
func (c StatusCode[V]) Equivalent(other Code) bool {
	return Equivalent(c, other)
}

// StrictlyEqual reports whether other has the same domain and the same value.
// Unlike Equivalent it never consults domain semantics.
func (c StatusCode[V]) StrictlyEqual(other StatusCode[V]) bool {
	if c.domain == nil || other.domain == nil {
		return c.domain == nil && other.domain == nil && c.value == other.value
	}
	return SameDomain(c.domain, other.domain) && c.domain.sameValue(c.value, other.value)
}

// Clear resets the code to empty.
func (c *StatusCode[V]) Clear() {
	*c = StatusCode[V]{}
}

// String renders the code as "domain: message".
func (c StatusCode[V]) String() string {
	return render(c)
}

// MarshalJSON encodes the code as a Response.
func (c StatusCode[V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToJSON(c))
}

func render(c Code) string {
	d := domainOf(c)
	if d == nil {
		return emptyMessage
	}
	return d.Name() + ": " + c.Message()
}
