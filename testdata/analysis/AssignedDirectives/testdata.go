//go:build genrep

package testdata

import "github.com/sublee/genrep"

type User struct {
	Name string `db:"name"`
}

var tag = genrep.Tag("db") // want `cannot assign Tag to variable`

func asis[T any](v T) T { return v }

var UserRep = genrep.Record[User](
	tag, // want `option must be inlined, not assigned to variable`

	asis(genrep.Rename("Name", "username")), // want `option must be genrep directive`

	genrep.Tag("db"),                    // ok
	(genrep.Rename("Name", "username")), // ok
)

var _ = genrep.Record[User]() // want `cannot assign representation to blank identifier`
