package main

import "github.com/jmgilman/go/status"

type digest [4]uint64

type sem struct{}

func (sem) Message(v digest) string { return "digest" }
func (sem) Success(v digest) bool   { return v == digest{} }

var digests = status.NewDomain[digest]("digests", sem{})

func main() {
	_ = status.Erase(digests.Code(digest{1}))
}
