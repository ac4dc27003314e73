//go:build genrep

package main

import (
	"fmt"

	"github.com/sublee/genrep"
	"github.com/sublee/genrep/pkg/generic"
)

type Unit struct{}

type Marked struct {
	_ struct{}
	N int
}

var (
	UnitRep   = genrep.Record[Unit]()
	MarkedRep = genrep.Record[Marked]()
)

func main() {
	// Output: Unit()
	fmt.Println(generic.Format(UnitRep.To(Unit{})))

	// Blank fields carry no storage, so only N remains.
	rep := MarkedRep.To(Marked{N: 7})
	fmt.Println(generic.Format(rep))
	fmt.Println(MarkedRep.From(rep).N)
}
