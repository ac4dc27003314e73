//go:build genrep

package main

import (
	"fmt"

	"github.com/sublee/genrep"
	"github.com/sublee/genrep/pkg/generic"
)

type Address struct {
	City string
	Zip  string
}

type User struct {
	Name string
	Home Address
}

var (
	AddressRep = genrep.Record[Address]()
	UserRep    = genrep.Record[User]()
)

func main() {
	u := User{Name: "bob", Home: Address{City: "Seoul", Zip: "04524"}}
	rep := UserRep.To(u)

	// Output: User(Name: "bob", Home: Address(City: "Seoul", Zip: "04524"))
	fmt.Println(generic.Format(rep))

	// Rebuilding goes through the sibling Iso as well.
	fmt.Println(UserRep.From(rep).Home.City)
}
