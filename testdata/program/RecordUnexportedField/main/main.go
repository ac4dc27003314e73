//go:build genrep

package main

import (
	"example.com/RecordUnexportedField/sub"
	"github.com/sublee/genrep"
)

var SecretRep = genrep.Record[sub.Secret]()

func main() {
	panic("genrep will fail")
}
