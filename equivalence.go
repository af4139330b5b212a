package status

import "reflect"

// Equivalent reports whether a and b mean the same thing.
//
// Each domain gets to answer for its own code, first against the other code
// as-is and then against the other code's generic decoding. Because both
// orders are always tried the relation is symmetric, whatever the individual
// domains implement. Two empty codes are equivalent; an empty and a non-empty
// code are not.
func Equivalent(a, b Code) bool {
	da, db := domainOf(a), domainOf(b)
	if da == nil || db == nil {
		return da == nil && db == nil
	}

	if da.equivalent(a, b) || db.equivalent(b, a) {
		return true
	}

	if g := b.Generic(); g != ErrcUnknown && da.equivalent(a, Generic.Code(g)) {
		return true
	}
	if g := a.Generic(); g != ErrcUnknown && db.equivalent(b, Generic.Code(g)) {
		return true
	}
	return false
}

// NotEquivalent is the negation of Equivalent.
func NotEquivalent(a, b Code) bool {
	return !Equivalent(a, b)
}

// EquivalentTo reports whether c is equivalent to the status code v converts
// to through its MakeStatusCode method.
func EquivalentTo[V comparable, T Maker[V]](c Code, v T) bool {
	return Equivalent(c, v.MakeStatusCode())
}

// EquivalentValue reports whether c is equivalent to the status code v
// converts to through From. Values with no known conversion are never
// equivalent.
func EquivalentValue(c Code, v any) bool {
	other, ok := From(v)
	if !ok {
		return false
	}
	return Equivalent(c, other)
}

// domainOf returns the domain of c, or nil when c is nil, a nil pointer or
// empty.
func domainOf(c Code) Domain {
	if isNilCode(c) {
		return nil
	}
	return c.Domain()
}

func isNilCode(c Code) bool {
	if c == nil {
		return true
	}
	rv := reflect.ValueOf(c)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
