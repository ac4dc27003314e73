package testdata

import "github.com/sublee/genrep" // want `file must have "//go:build genrep" constraint when importing genrep`

type User struct {
	Name string
}

var UserRep = genrep.Record[User]()
