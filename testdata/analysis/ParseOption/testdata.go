//go:build genrep

package testdata

import "github.com/sublee/genrep"

type Point struct {
	X int `coord:"x"`
	Y int `coord:"y"`
}

var PointRep = genrep.Record[Point](
	genrep.Tag(""), // want `tag key must not be empty`
	genrep.Tag("coord"),
	genrep.Tag("coord"),    // want `genrep.Tag already configured`
	genrep.Rename("", "x"), // want `old label must not be empty`
)

type Shape interface{ isShape() }

type Circle struct{ Radius float64 }

func (Circle) isShape() {}

type notShape struct{}

var ShapeRep = genrep.Union[Shape](
	genrep.CasesBySample(nil),        // want `cannot use nil as sample`
	genrep.CasesBySample(notShape{}), // want `notShape does not implement Shape`
	genrep.CasesBySample(Circle{}),
	genrep.CasesBySample(Circle{}), // want `genrep.CasesBySample already configured`
)
