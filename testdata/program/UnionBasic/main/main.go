//go:build genrep

package main

import (
	"fmt"

	"github.com/sublee/genrep"
	"github.com/sublee/genrep/pkg/generic"
)

type Shape interface{ isShape() }

type Circle struct {
	Radius float64
}

type Square struct {
	Side float64
}

func (Circle) isShape() {}

func (Square) isShape() {}

var ShapeRep = genrep.Union[Shape]()

func main() {
	rep := ShapeRep.To(Circle{Radius: 1.5})

	// The case name is recovered from the metadata.
	fmt.Println(generic.FormatWith(ShapeRep.Meta, rep))
	fmt.Println(generic.Format(rep))

	fmt.Println(ShapeRep.From(rep) == Shape(Circle{Radius: 1.5}))

	rep = ShapeRep.To(Square{Side: 2})
	fmt.Println(generic.FormatWith(ShapeRep.Meta, rep))
}
