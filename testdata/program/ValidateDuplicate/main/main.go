//go:build genrep

package main

import "github.com/sublee/genrep"

type User struct {
	Name string
}

var (
	UserRep  = genrep.Record[User]()
	UserRep2 = genrep.Record[User]()
)

func main() {
	panic("genrep will fail")
}
