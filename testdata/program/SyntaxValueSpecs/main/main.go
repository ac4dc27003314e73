//go:build genrep

package main

import (
	"fmt"

	"github.com/sublee/genrep"
	"github.com/sublee/genrep/pkg/generic"
)

type Task struct {
	Title string
}

// Directive vars may share a block with ordinary vars. Only the directives
// are rewritten; their neighbors survive as they are.
var (
	greeting = "hello"
	TaskRep  = genrep.Record[Task]()
	farewell = "goodbye"
)

func main() {
	fmt.Println(greeting)
	fmt.Println(generic.Format(TaskRep.To(Task{Title: "write"})))
	fmt.Println(farewell)
}
