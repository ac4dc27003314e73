//go:build genrep

package main

import (
	"fmt"

	"github.com/sublee/genrep"
	"github.com/sublee/genrep/pkg/generic"
)

type Tagged interface{ isTagged() }

type Label struct {
	Text string
}

type Note struct {
	Label
	Body string
}

func (Note) isTagged() {}

var TaggedRep = genrep.Union[Tagged]()

func main() {
	rep := TaggedRep.To(Note{Label: Label{Text: "hi"}, Body: "b"})

	// The embedded field stays unlabeled in the payload chain.
	fmt.Println(generic.FormatWith(TaggedRep.Meta, rep))

	n := TaggedRep.From(rep).(Note)
	fmt.Println(n.Text, n.Body)
}
