//go:build genrep

package testdata

import "github.com/sublee/genrep"

type Size struct {
	W, H int // want `unsupported member shape: cannot represent 2 fields declared at once; declare each field separately`
}

var SizeRep = genrep.Record[Size]()

type Login struct {
	User string `form:"name"`
	Name string `form:"name"` // want `unsupported member shape: duplicate label "name" for field Login.Name`
}

var LoginRep = genrep.Record[Login](genrep.Tag("form"))

type Word interface{ isWord() }

type Noun struct{ Text string }

func (Noun) isWord() {}

type Verb string // want `unsupported member shape: case Verb of Word must be a struct type`

func (Verb) isWord() {}

var WordRep = genrep.Union[Word]()
