package catalog

import (
	"strconv"

	"github.com/jmgilman/go/status"
)

// Value is the value type of every table domain.
type Value int32

type entry struct {
	name        string
	message     string
	success     bool
	generic     status.Errc
	equivalents []EquivalentSpec
}

// table is the Semantics of a table domain. It is built once and never
// modified afterwards.
type table struct {
	domain  string
	entries map[Value]entry
	byName  map[string]Value
}

func (t *table) Message(v Value) string {
	if e, ok := t.entries[v]; ok {
		return e.message
	}
	return "unknown " + t.domain + " code " + strconv.Itoa(int(v))
}

func (t *table) Success(v Value) bool {
	return t.entries[v].success
}

func (t *table) Generic(v Value) status.Errc {
	e, ok := t.entries[v]
	if !ok {
		return status.ErrcUnknown
	}
	return e.generic
}

func (t *table) Equivalent(v Value, other status.Code) bool {
	e, ok := t.entries[v]
	if !ok || len(e.equivalents) == 0 {
		return false
	}
	od := other.Domain()
	if od == nil {
		return false
	}
	ov, ok := status.IntValue(other)
	if !ok {
		return false
	}
	for _, eq := range e.equivalents {
		if eq.Domain == od.Name() && eq.Value == ov {
			return true
		}
	}
	return false
}

func (t *table) FormatValue(v Value) string {
	if e, ok := t.entries[v]; ok {
		return e.name
	}
	return strconv.Itoa(int(v))
}
