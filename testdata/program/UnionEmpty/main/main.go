//go:build genrep

package main

import (
	"fmt"

	"github.com/sublee/genrep"
	"github.com/sublee/genrep/pkg/generic"
)

// Void has no cases at all, so its representation chain is just Nothing and
// its conversion functions are unreachable.
type Void interface{ isVoid() }

var VoidRep = genrep.Union[Void]()

func main() {
	// Output: Void()
	fmt.Println(generic.Format(VoidRep.Meta))
}
