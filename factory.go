package status

import (
	"fmt"
	"reflect"
	"sync"
)

// Maker is implemented by types that convert themselves to a status code of
// domain value type V. It is the compile-time discoverable factory: Make,
// MakeErrored and EquivalentTo only accept types that implement it.
type Maker[V comparable] interface {
	MakeStatusCode() StatusCode[V]
}

// Make converts v to a status code through its MakeStatusCode method.
//
// Example:
//
//	c := status.Make[status.Errc](status.ErrcTimedOut)
func Make[V comparable, T Maker[V]](v T) StatusCode[V] {
	return v.MakeStatusCode()
}

// factoryRegistry is the type-keyed table of conversions for types that do
// not implement Maker, typically because they belong to another package.
type factoryRegistry struct {
	mu     sync.RWMutex
	byType map[reflect.Type]func(any) Code
	ifaces []ifaceFactory
}

type ifaceFactory struct {
	typ reflect.Type
	fn  func(any) Code
}

var factories = &factoryRegistry{
	byType: make(map[reflect.Type]func(any) Code),
}

const makerName = "MakeStatusCode"

var codeType = reflect.TypeFor[Code]()

// RegisterFactory makes values of type T convertible to status codes by From,
// FromError and EquivalentValue. If T is an interface type, fn also serves
// every concrete type implementing it that has no factory of its own.
//
// Factories are meant to be registered from init functions. Registering a
// second factory for the same type panics.
func RegisterFactory[T any](fn func(T) Code) {
	t := reflect.TypeFor[T]()
	wrapped := func(v any) Code { return fn(v.(T)) }

	factories.mu.Lock()
	defer factories.mu.Unlock()

	if _, ok := factories.byType[t]; ok {
		panic(fmt.Sprintf("status: factory for %s already registered", t))
	}
	factories.byType[t] = wrapped
	if t.Kind() == reflect.Interface {
		factories.ifaces = append(factories.ifaces, ifaceFactory{typ: t, fn: wrapped})
	}
}

func (r *factoryRegistry) lookup(t reflect.Type) (func(any) Code, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if fn, ok := r.byType[t]; ok {
		return fn, true
	}
	for _, f := range r.ifaces {
		if t.Implements(f.typ) {
			return f.fn, true
		}
	}
	return nil, false
}

// From converts v to a status code. Codes are returned as they are; other
// values are converted through a registered factory or their MakeStatusCode
// method, in that order. It reports false if no conversion exists, the
// conversion produced no code, or v is a nil code pointer.
func From(v any) (Code, bool) {
	if v == nil {
		return nil, false
	}
	if c, ok := v.(Code); ok {
		if isNilCode(c) {
			return nil, false
		}
		return c, true
	}

	t := reflect.TypeOf(v)
	if fn, ok := factories.lookup(t); ok {
		c := fn(v)
		return c, c != nil
	}

	m := reflect.ValueOf(v).MethodByName(makerName)
	if !m.IsValid() {
		return nil, false
	}
	mt := m.Type()
	if mt.NumIn() != 0 || mt.NumOut() != 1 || !mt.Out(0).Implements(codeType) {
		return nil, false
	}
	c, ok := m.Call(nil)[0].Interface().(Code)
	return c, ok
}

// FromError converts the first error in err's tree that has a conversion.
// The tree is walked depth first, following Unwrap() error and
// Unwrap() []error.
func FromError(err error) (Code, bool) {
	if err == nil {
		return nil, false
	}
	if c, ok := From(err); ok {
		return c, true
	}

	switch x := err.(type) {
	case interface{ Unwrap() error }:
		return FromError(x.Unwrap())
	case interface{ Unwrap() []error }:
		for _, e := range x.Unwrap() {
			if c, ok := FromError(e); ok {
				return c, true
			}
		}
	}
	return nil, false
}
