package status

import (
	"fmt"
)

// DomainID identifies a domain. Two codes belong to the same domain exactly
// when their domain IDs are equal; names are informational only.
type DomainID uint64

// String renders the ID as a fixed-width hexadecimal number.
func (id DomainID) String() string {
	return fmt.Sprintf("0x%016x", uint64(id))
}

// Domain is the type-erased view of an error category. Every status code
// carries a Domain and dispatches message, success, decoding and equivalence
// through it, whether or not its static value type is still known.
//
// Domains are created with NewDomain or DefineDomain and live for the rest of
// the process. They are immutable once created and safe for concurrent use.
type Domain interface {
	// ID returns the identity of the domain.
	ID() DomainID

	// Name returns the human-readable name of the domain.
	Name() string

	// String returns the name of the domain.
	String() string

	// Erasable reports whether codes of this domain can be stored in an ErasedCode.
	Erasable() bool

	message(c Code) string
	success(c Code) (ok, valid bool)
	generic(c Code) Errc
	equivalent(self, other Code) bool
	formatValue(c Code) string
	int64Value(c Code) (int64, bool)
	validPayload(p *payload) bool
}

// Semantics supplies the meaning of a domain's values. Implementations must
// be stateless or immutable: they are shared by every code of the domain.
type Semantics[V comparable] interface {
	// Message renders v for humans.
	Message(v V) string

	// Success reports whether v represents success.
	Success(v V) bool
}

// GenericDecoder is an optional Semantics capability decoding a value to the
// portable generic representation used for cross-domain comparison. Values
// without a generic meaning decode to ErrcUnknown.
type GenericDecoder[V comparable] interface {
	Generic(v V) Errc
}

// Equivalencer is an optional Semantics capability declaring extra semantic
// equalities between v and codes of other domains. It must not call
// Equivalent on other, directly or indirectly.
type Equivalencer[V comparable] interface {
	Equivalent(v V, other Code) bool
}

// Defaulter is an optional Semantics capability naming the value a default
// constructed code of the domain holds.
type Defaulter[V comparable] interface {
	Default() V
}

// ValueFormatter is an optional Semantics capability rendering a value for
// machine-facing output such as JSON. Without it values are printed with %v.
type ValueFormatter[V comparable] interface {
	FormatValue(v V) string
}

// TypedDomain is a domain whose values have the static type V.
type TypedDomain[V comparable] struct {
	id        DomainID
	name      string
	sem       Semantics[V]
	decoder   GenericDecoder[V]
	hook      Equivalencer[V]
	defaulter Defaulter[V]
	formatter ValueFormatter[V]
	layout    layout
}

var _ Domain = (*TypedDomain[int])(nil)

// NewDomain creates and registers a domain, panicking if the registration is
// invalid. It is meant for package-level variables, where a failure is a
// programming error that should stop the program before it starts.
//
// Example:
//
//	var FileErrors = status.NewDomain[FileErr]("file_errors", fileSemantics{},
//	    status.WithUUID("5f2b9a8e-33c1-4d6a-9b0e-7c1d2e3f4a5b"))
func NewDomain[V comparable](name string, sem Semantics[V], opts ...DomainOption) *TypedDomain[V] {
	d, err := DefineDomain(name, sem, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// DefineDomain creates and registers a domain. It fails if the ID is already
// registered, or if V declares itself Relocatable but cannot be erased.
func DefineDomain[V comparable](name string, sem Semantics[V], opts ...DomainOption) (*TypedDomain[V], error) {
	if sem == nil {
		return nil, fmt.Errorf("domain %q: %w", name, ErrNilSemantics)
	}

	cfg := newDomainConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	d := &TypedDomain[V]{
		name:   name,
		sem:    sem,
		layout: inspectLayout[V](),
	}
	d.decoder, _ = sem.(GenericDecoder[V])
	d.hook, _ = sem.(Equivalencer[V])
	d.defaulter, _ = sem.(Defaulter[V])
	d.formatter, _ = sem.(ValueFormatter[V])

	var zero V
	if _, ok := any(zero).(relocatable); ok && !d.layout.erasable {
		return nil, fmt.Errorf("domain %q: %w: %s", name, ErrNotRelocatable, d.layout.reason)
	}

	if err := registry.add(d, cfg); err != nil {
		return nil, err
	}

	logger().Debug("status domain registered",
		"domain", name,
		"id", d.id.String(),
		"value_type", d.layout.typ.String(),
		"erasable", d.layout.erasable,
	)
	return d, nil
}

// ID returns the identity of the domain.
func (d *TypedDomain[V]) ID() DomainID { return d.id }

// Name returns the human-readable name of the domain.
func (d *TypedDomain[V]) Name() string { return d.name }

// String returns the name of the domain.
func (d *TypedDomain[V]) String() string { return d.name }

// Erasable reports whether V can be stored in an ErasedCode.
func (d *TypedDomain[V]) Erasable() bool { return d.layout.erasable }

func (d *TypedDomain[V]) setID(id DomainID) { d.id = id }

// Code constructs a status code of this domain holding v.
func (d *TypedDomain[V]) Code(v V) StatusCode[V] {
	return StatusCode[V]{domain: d, value: v}
}

// Default constructs a status code holding the domain's default value, or
// the zero V when the domain does not define one.
func (d *TypedDomain[V]) Default() StatusCode[V] {
	var v V
	if d.defaulter != nil {
		v = d.defaulter.Default()
	}
	return d.Code(v)
}

// Errored constructs an errored status code of this domain holding v. The
// process terminates if v represents success.
func (d *TypedDomain[V]) Errored(v V) ErroredStatusCode[V] {
	return NewErrored(d.Code(v))
}

// ValueOf extracts the value of a code belonging to this domain, whatever its
// static form. It reports false when c belongs to another domain or is empty.
func (d *TypedDomain[V]) ValueOf(c Code) (V, bool) {
	var zero V
	if isNilCode(c) || !SameDomain(c.Domain(), d) {
		return zero, false
	}

	switch x := c.(type) {
	case StatusCode[V]:
		return x.value, true
	case *StatusCode[V]:
		return x.value, true
	case ErroredStatusCode[V]:
		return x.code.value, true
	case *ErroredStatusCode[V]:
		return x.code.value, true
	case ErasedCode:
		return unerasePayload[V](d, &x)
	case *ErasedCode:
		return unerasePayload[V](d, x)
	case ErroredCode:
		return unerasePayload[V](d, &x.code)
	case *ErroredCode:
		return unerasePayload[V](d, &x.code)
	}
	return zero, false
}

func unerasePayload[V comparable](d *TypedDomain[V], e *ErasedCode) (V, bool) {
	if !d.layout.erasable {
		var zero V
		return zero, false
	}
	return loadPayload[V](&e.payload), true
}

func (d *TypedDomain[V]) message(c Code) string {
	v, ok := d.ValueOf(c)
	if !ok {
		return emptyMessage
	}
	return d.sem.Message(v)
}

func (d *TypedDomain[V]) success(c Code) (ok, valid bool) {
	v, valid := d.ValueOf(c)
	if !valid {
		return false, false
	}
	return d.sem.Success(v), true
}

func (d *TypedDomain[V]) generic(c Code) Errc {
	v, ok := d.ValueOf(c)
	if !ok {
		return ErrcUnknown
	}
	return d.genericOf(v)
}

func (d *TypedDomain[V]) genericOf(v V) Errc {
	if d.decoder == nil {
		return ErrcUnknown
	}
	return d.decoder.Generic(v)
}

// equivalent is the domain's half of the equivalence protocol: it answers
// whether self, a code of this domain, means the same thing as other.
func (d *TypedDomain[V]) equivalent(self, other Code) bool {
	v, ok := d.ValueOf(self)
	if !ok || isNilCode(other) {
		return false
	}

	if d.hook != nil && d.hook.Equivalent(v, other) {
		return true
	}

	od := other.Domain()
	switch {
	case od == nil:
		return false
	case SameDomain(od, d):
		ov, ok := d.ValueOf(other)
		return ok && d.sameValue(v, ov)
	case SameDomain(od, Generic):
		g := d.genericOf(v)
		ov, ok := Generic.ValueOf(other)
		return ok && g != ErrcUnknown && g == ov
	}
	return false
}

// sameValue compares values by their bits when the layout allows it, so NaN
// equals itself and -0 differs from +0.
func (d *TypedDomain[V]) sameValue(a, b V) bool {
	if d.layout.bitwise {
		return storePayload(a) == storePayload(b)
	}
	return a == b
}

func (d *TypedDomain[V]) validPayload(p *payload) bool {
	return d.layout.erasable && d.layout.validPayload(p)
}

func (d *TypedDomain[V]) formatValue(c Code) string {
	v, ok := d.ValueOf(c)
	if !ok {
		return ""
	}
	if d.formatter != nil {
		return d.formatter.FormatValue(v)
	}
	return fmt.Sprintf("%v", v)
}

func (d *TypedDomain[V]) int64Value(c Code) (int64, bool) {
	if !d.layout.integer {
		return 0, false
	}
	v, ok := d.ValueOf(c)
	if !ok {
		return 0, false
	}
	return d.layout.int64Of(v), true
}
