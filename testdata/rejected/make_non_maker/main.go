package main

import "github.com/jmgilman/go/status"

type plain int

func main() {
	_ = status.Make[status.Errc](plain(1))
}
