//go:build genrep

package main

import (
	"fmt"

	"example.com/UnionCasesBySample/impl"
	"github.com/sublee/genrep"
	"github.com/sublee/genrep/pkg/generic"
)

type Shape interface{ Kind() string }

var ShapeRep = genrep.Union[Shape](genrep.CasesBySample(impl.Circle{}))

func main() {
	rep := ShapeRep.To(impl.Square{S: 2})

	// Output: Shape.Square(S: 2)
	fmt.Println(generic.FormatWith(ShapeRep.Meta, rep))
	fmt.Println(ShapeRep.From(rep).Kind())
}
