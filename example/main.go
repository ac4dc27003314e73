//go:build genrep

package main

import (
	"fmt"

	"example.com/genrepexample/api"
	"github.com/sublee/genrep"
	"github.com/sublee/genrep/pkg/generic"
)

type Plan struct {
	Name  string `json:"name"`
	Seats int    `json:"seats"`
}

type Account struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Plan  Plan   `json:"plan"`
}

var (
	PlanRep    = genrep.Record[Plan](genrep.Tag("json"))
	AccountRep = genrep.Record[Account](genrep.Tag("json"))
	EventRep   = genrep.Union[api.Event](genrep.CasesBySample(api.Created{}))
)

func main() {
	acct := Account{ID: "a1", Email: "a@example.com", Plan: Plan{Name: "pro", Seats: 3}}
	rep := AccountRep.To(acct)

	// Output: Account(id: "a1", email: "a@example.com", plan: Plan(name: "pro", seats: 3))
	fmt.Println(generic.Format(rep))

	// Output:
	//	id = a1
	//	email = a@example.com
	//	name = pro
	//	seats = 3
	for label, leaf := range generic.Leaves(rep) {
		fmt.Println(label, "=", leaf)
	}

	// Output: Event.Created(ID: "e7", Name: "signup")
	ev := EventRep.To(api.Created{ID: "e7", Name: "signup"})
	fmt.Println(generic.FormatWith(EventRep.Meta, ev))

	// Output: true
	fmt.Println(generic.Equal(rep, AccountRep.To(acct)))
}
