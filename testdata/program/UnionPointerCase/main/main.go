//go:build genrep

package main

import (
	"fmt"

	"github.com/sublee/genrep"
	"github.com/sublee/genrep/pkg/generic"
)

type Event interface{ isEvent() }

type Clicked struct {
	X int
	Y int
}

type Closed struct{}

func (*Clicked) isEvent() {}

func (Closed) isEvent() {}

var EventRep = genrep.Union[Event]()

func main() {
	rep := EventRep.To(&Clicked{X: 3, Y: 4})

	// Output: Event.Clicked(X: 3, Y: 4)
	fmt.Println(generic.FormatWith(EventRep.Meta, rep))

	// A pointer case rebuilds as a pointer.
	fmt.Println(EventRep.From(rep).(*Clicked).Y)
}
