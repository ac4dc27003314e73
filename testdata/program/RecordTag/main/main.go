//go:build genrep

package main

import (
	"fmt"

	"github.com/sublee/genrep"
	"github.com/sublee/genrep/pkg/generic"
)

type Post struct {
	ID    int    `json:"id"`
	Title string `json:"title,omitempty"`
	Body  string
}

var PostRep = genrep.Record[Post](
	genrep.Tag("json"),
	genrep.Rename("Body", "content"),
)

func main() {
	// Labels live in the metadata; leaf values there stay zero.
	for label := range generic.Leaves(PostRep.Meta) {
		fmt.Println(label)
	}

	p := Post{ID: 7, Title: "genrep", Body: "derive all the things"}
	fmt.Println(generic.Format(PostRep.To(p)))
}
