//go:build genrep

package main

import (
	"fmt"

	"github.com/sublee/genrep"
	"github.com/sublee/genrep/pkg/generic"
)

type User struct {
	Name string
	Age  int
}

var UserRep = genrep.Record[User]()

func main() {
	u := User{Name: "alice", Age: 30}
	rep := UserRep.To(u)

	// Output: User(Name: "alice", Age: 30)
	fmt.Println(generic.Format(rep))

	// Output: true true
	fmt.Println(UserRep.From(rep) == u, generic.Equal(rep, UserRep.To(u)))
}
