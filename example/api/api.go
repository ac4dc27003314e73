// Package api models the events a genrep-using service exchanges.
package api

type Event interface{ Kind() string }

type Created struct {
	ID   string
	Name string
}

type Deleted struct {
	ID string
}

func (Created) Kind() string { return "created" }

func (Deleted) Kind() string { return "deleted" }
