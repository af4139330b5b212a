package status

import (
	"fmt"
	"reflect"
	"unsafe"
)

// PayloadSize is the number of payload bytes an ErasedCode carries inline.
// Every module exchanging erased codes must be built with the same value.
const PayloadSize = 16

// ErasedSize is the size of the binary form of an ErasedCode: an 8-byte
// domain ID followed by PayloadSize payload bytes.
const ErasedSize = 8 + PayloadSize

const (
	payloadWords = PayloadSize / 8
	payloadAlign = 8
)

// Every Trivial type must fit the payload.
var _ [PayloadSize - unsafe.Sizeof(complex128(0))]struct{}

// payload is the inline storage of an erased code. It is word-typed so that
// any value stored in it is 8-byte aligned.
type payload [payloadWords]uint64

// Trivial is the set of value types that may be erased by bit copy. All of
// them are free of pointers and fit within PayloadSize.
type Trivial interface {
	~bool |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Relocatable is implemented by composite value types whose bit pattern alone
// defines their state. The marker method opts a type into erasure by bit move;
// the layout itself is verified once, when the owning domain is created.
type Relocatable interface {
	comparable
	MoveRelocating()
}

type relocatable interface {
	MoveRelocating()
}

func storePayload[V any](v V) payload {
	var p payload
	*(*V)(unsafe.Pointer(&p)) = v
	return p
}

func loadPayload[V any](p *payload) V {
	return *(*V)(unsafe.Pointer(p))
}

// layout records what a domain's value type looks like in memory.
type layout struct {
	typ      reflect.Type
	size     uintptr
	erasable bool
	reason   string
	integer  bool
	unsigned bool

	// bitwise is set when every byte of a value is significant, so values
	// can be compared through their payload bits instead of ==.
	bitwise bool

	// bools holds the byte offset of every bool in an erasable value.
	bools []uintptr
}

func inspectLayout[V any]() layout {
	t := reflect.TypeFor[V]()
	l := layout{
		typ:  t,
		size: t.Size(),
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		l.integer = true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		l.integer = true
		l.unsigned = true
	}

	switch {
	case !pointerFree(t):
		l.reason = fmt.Sprintf("%s contains pointers", t)
	case t.Size() > PayloadSize:
		l.reason = fmt.Sprintf("%s is %d bytes, payload holds %d", t, t.Size(), PayloadSize)
	case t.Align() > payloadAlign:
		l.reason = fmt.Sprintf("%s requires %d-byte alignment", t, t.Align())
	default:
		l.erasable = true
		l.bitwise = packed(t)
		l.bools = boolOffsets(t, 0, nil)
	}
	return l
}

// packed reports whether t has no padding bytes, recursively.
func packed(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Array:
		return t.Len() == 0 || packed(t.Elem())
	case reflect.Struct:
		var sum uintptr
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !packed(f.Type) {
				return false
			}
			sum += f.Type.Size()
		}
		return sum == t.Size()
	default:
		return true
	}
}

func boolOffsets(t reflect.Type, base uintptr, out []uintptr) []uintptr {
	switch t.Kind() {
	case reflect.Bool:
		out = append(out, base)
	case reflect.Array:
		for i := 0; i < t.Len(); i++ {
			out = boolOffsets(t.Elem(), base+uintptr(i)*t.Elem().Size(), out)
		}
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			out = boolOffsets(f.Type, base+f.Offset, out)
		}
	}
	return out
}

// validPayload reports whether p holds a well-formed value: every bool byte
// must be 0 or 1.
func (l layout) validPayload(p *payload) bool {
	b := (*[PayloadSize]byte)(unsafe.Pointer(p))
	for _, off := range l.bools {
		if b[off] > 1 {
			return false
		}
	}
	return true
}

// pointerFree reports whether values of t can live in memory the garbage
// collector does not scan.
func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || pointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// int64Of converts an integer-kinded value to int64. The caller checks
// layout.integer first.
func (l layout) int64Of(v any) int64 {
	rv := reflect.ValueOf(v)
	if l.unsigned {
		return int64(rv.Uint()) //nolint:gosec // errno-style codes fit
	}
	return rv.Int()
}
