package main

import "github.com/jmgilman/go/status"

type point struct {
	X, Y int32
}

type sem struct{}

func (sem) Message(v point) string { return "point" }
func (sem) Success(v point) bool   { return v == point{} }

var points = status.NewDomain[point]("points", sem{})

func main() {
	_ = status.Relocate(points.Code(point{1, 2}))
}
