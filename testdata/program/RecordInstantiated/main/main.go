//go:build genrep

package main

import (
	"fmt"

	"github.com/sublee/genrep"
	"github.com/sublee/genrep/pkg/generic"
)

type Pair[T any] struct {
	First  T
	Second T
}

var PairRep = genrep.Record[Pair[int]]()

func main() {
	rep := PairRep.To(Pair[int]{First: 1, Second: 2})

	// Output: Pair(First: 1, Second: 2)
	fmt.Println(generic.Format(rep))
	fmt.Println(PairRep.From(rep).Second)
}
