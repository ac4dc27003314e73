//go:build genrep

package testdata

import "github.com/sublee/genrep"

type Num int

type Txt string

type Open interface{}

var (
	NumRep  = genrep.Record[Num]()  // want `unsupported declaration kind: genrep.Record requires a named struct type, not Num`
	TxtRep  = genrep.Union[Txt]()   // want `unsupported declaration kind: genrep.Union requires a named interface type, not Txt`
	OpenRep = genrep.Union[Open]()  // want `unsupported declaration kind: Open has no methods; an open interface cannot define a closed sum`
)
