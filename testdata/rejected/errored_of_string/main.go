package main

import "github.com/jmgilman/go/status"

type sem struct{}

func (sem) Message(v string) string { return v }
func (sem) Success(v string) bool   { return v == "" }

var names = status.NewDomain[string]("names", sem{})

func main() {
	_ = status.ErroredOf(names.Code("boom"))
}
