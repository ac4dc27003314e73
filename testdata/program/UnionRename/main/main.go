//go:build genrep

package main

import (
	"fmt"

	"github.com/sublee/genrep"
	"github.com/sublee/genrep/pkg/generic"
)

type Pet interface{ isPet() }

type Dog struct{}

type Cat struct{}

func (Dog) isPet() {}

func (Cat) isPet() {}

var PetRep = genrep.Union[Pet](genrep.Rename("Dog", "Puppy"))

func main() {
	// Output: Pet.Puppy()
	fmt.Println(generic.FormatWith(PetRep.Meta, PetRep.To(Dog{})))

	// Output: Pet.Cat()
	fmt.Println(generic.FormatWith(PetRep.Meta, PetRep.To(Cat{})))
}
