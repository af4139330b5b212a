package status

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
)

// ErasedCode is a status code whose value type is no longer statically known.
// It stores the value inline in a fixed PayloadSize buffer next to its domain,
// so it has the same layout whatever domain produced it. Message, Success,
// Generic and Equivalent still dispatch to the originating domain.
//
// ErasedCode values are created with Erase or Relocate, which only accept
// value types that can be moved by copying their bits.
type ErasedCode struct {
	domain  Domain
	payload payload
}

var (
	_ Code = ErasedCode{}
	_ Code = (*ErasedCode)(nil)
)

func (ErasedCode) isStatusCode() {}

// Erase converts a status code whose value is a trivially copyable scalar.
// The value is bit-copied into the payload.
func Erase[V Trivial](c StatusCode[V]) ErasedCode {
	return erase(c)
}

// Relocate converts a status code whose value is a composite, pointer-free
// type that declared itself Relocatable. The value is moved into the payload
// by bit copy; its size was checked when the domain was created.
func Relocate[V Relocatable](c StatusCode[V]) ErasedCode {
	return erase(c)
}

func erase[V comparable](c StatusCode[V]) ErasedCode {
	if c.domain == nil {
		return ErasedCode{}
	}
	return ErasedCode{
		domain:  c.domain,
		payload: storePayload(c.value),
	}
}

// Unerase recovers the typed code from e. It reports false if e does not
// belong to d.
func Unerase[V comparable](e ErasedCode, d *TypedDomain[V]) (StatusCode[V], bool) {
	v, ok := d.ValueOf(e)
	if !ok {
		return StatusCode[V]{}, false
	}
	return d.Code(v), true
}

// Domain returns the domain of the code, or nil if the code is empty.
func (e ErasedCode) Domain() Domain {
	return e.domain
}

// Empty reports whether the code has no domain.
func (e ErasedCode) Empty() bool {
	return e.domain == nil
}

// Success reports whether the code represents success.
func (e ErasedCode) Success() bool {
	if e.domain == nil {
		return false
	}
	ok, valid := e.domain.success(e)
	return valid && ok
}

// Failure reports whether the code represents failure.
func (e ErasedCode) Failure() bool {
	if e.domain == nil {
		return false
	}
	ok, valid := e.domain.success(e)
	return valid && !ok
}

// Message renders the code for humans.
func (e ErasedCode) Message() string {
	if e.domain == nil {
		return emptyMessage
	}
	return e.domain.message(e)
}

// Generic decodes the code to the portable generic representation.
func (e ErasedCode) Generic() Errc {
	if e.domain == nil {
		return ErrcUnknown
	}
	return e.domain.generic(e)
}

// Equivalent reports whether the code means the same thing as other.
func (e ErasedCode) Equivalent(other Code) bool {
	return Equivalent(e, other)
}

// Payload returns a copy of the raw payload bytes.
func (e ErasedCode) Payload() [PayloadSize]byte {
	var out [PayloadSize]byte
	for i, w := range e.payload {
		binary.NativeEndian.PutUint64(out[i*8:], w)
	}
	return out
}

// Clear resets the code to empty.
func (e *ErasedCode) Clear() {
	*e = ErasedCode{}
}

// String renders the code as "domain: message".
func (e ErasedCode) String() string {
	return render(e)
}

// MarshalJSON encodes the code as a Response.
func (e ErasedCode) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToJSON(e))
}

// MarshalBinary encodes the code in its fixed ErasedSize form: the domain ID
// in big-endian order followed by the payload in native byte order. Empty
// codes encode with domain ID 0.
func (e ErasedCode) MarshalBinary() ([]byte, error) {
	buf := make([]byte, ErasedSize)
	if e.domain != nil {
		binary.BigEndian.PutUint64(buf[:8], uint64(e.domain.ID()))
	}
	for i, w := range e.payload {
		binary.NativeEndian.PutUint64(buf[8+i*8:], w)
	}
	return buf, nil
}

// UnmarshalBinary decodes the form produced by MarshalBinary. The domain must
// already be registered in this process.
func (e *ErasedCode) UnmarshalBinary(data []byte) error {
	if len(data) != ErasedSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidEncoding, len(data), ErasedSize)
	}

	id := DomainID(binary.BigEndian.Uint64(data[:8]))
	if id == 0 {
		*e = ErasedCode{}
		return nil
	}

	d, ok := LookupDomain(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownDomain, id)
	}
	if !d.Erasable() {
		return fmt.Errorf("%w: %s", ErrNotErasable, d.Name())
	}

	var p payload
	for i := range p {
		p[i] = binary.NativeEndian.Uint64(data[8+i*8:])
	}
	if !d.validPayload(&p) {
		return fmt.Errorf("%w: malformed payload for %s", ErrInvalidEncoding, d.Name())
	}
	*e = ErasedCode{domain: d, payload: p}
	return nil
}
