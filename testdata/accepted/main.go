package main

import (
	"fmt"

	"github.com/jmgilman/go/status"
)

type point struct {
	X, Y int32
}

func (point) MoveRelocating() {}

type sem struct{}

func (sem) Message(v point) string { return fmt.Sprint(v) }
func (sem) Success(v point) bool   { return v == point{} }

var points = status.NewDomain[point]("points", sem{})

func main() {
	fmt.Println(status.Relocate(points.Code(point{1, 2})))
	fmt.Println(status.Erase(status.Generic.Code(status.ErrcTimedOut)))
	fmt.Println(status.Make[status.Errc](status.ErrcInterrupted))
}
