//go:build genrep

package main

import (
	"fmt"

	"github.com/sublee/genrep"
	"github.com/sublee/genrep/pkg/generic"
)

type Signal interface{ isSignal() }

type Start struct{}

type Stop struct{}

func (Start) isSignal() {}

func (Stop) isSignal() {}

var SignalRep = genrep.Union[Signal]()

func main() {
	rep := SignalRep.To(Stop{})

	// Output: Signal.Stop()
	fmt.Println(generic.FormatWith(SignalRep.Meta, rep))
	fmt.Println(SignalRep.From(rep) == Signal(Stop{}))

	fmt.Println(generic.Equal(rep, SignalRep.To(Start{})))
}
