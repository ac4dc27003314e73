// Package derive implements the structural derivation engine: it folds
// annotated struct and interface types into their canonical generic
// representation and writes the isomorphism code connecting the two.
package derive

import (
	"errors"
	"go/token"

	"github.com/sublee/genrep/internal/codefmt"
	"github.com/sublee/genrep/internal/genrep/parse"
	"github.com/sublee/genrep/internal/typeinfo"
	"github.com/sublee/genrep/pkg/genreperrors"
)

// Derived is a single derivation: the canonical shape of one directive's
// target type plus everything needed to write its generated code.
type Derived struct {
	p   *parse.Parser
	dir *parse.Directive
	reg *typeinfo.Registry[*Derived]

	// members is set for records, cases for unions.
	members []Member
	cases   []Case

	// Claimed names in the generated file.
	aliasRep  string
	aliasMeta string // unused when the metadata type matches aliasRep
	funcTo    string
	funcFrom  string
}

// Pos implements [codefmt.Poser] with the directive's position.
func (d *Derived) Pos() token.Pos { return d.dir.Pos() }

// Directive returns the directive this derivation was created for.
func (d *Derived) Directive() *parse.Directive { return d.dir }

// New validates the directive's target and creates an unbuilt [Derived]. It
// registers the derivation so that sibling directives can fold members of
// this type into its canonical shape. Call [Derived.Build] once every
// directive of the package is registered.
func New(p *parse.Parser, dir *parse.Directive, ns codefmt.NS, reg *typeinfo.Registry[*Derived]) (*Derived, error) {
	target := dir.Target

	if target.IsGeneric() {
		return nil, codefmt.Reject(p, dir, genreperrors.ErrUnsupportedDeclarationKind,
			"cannot derive representation for generic type %t", target)
	}

	switch {
	case dir.Record:
		if !target.IsNamed() || !target.IsStruct() {
			return nil, codefmt.Reject(p, dir, genreperrors.ErrUnsupportedDeclarationKind,
				"genrep.Record requires a named struct type, not %t", target)
		}

	case dir.Union:
		if !target.IsNamed() || !target.IsInterface() {
			return nil, codefmt.Reject(p, dir, genreperrors.ErrUnsupportedDeclarationKind,
				"genrep.Union requires a named interface type, not %t", target)
		}
		if target.Interface.NumMethods() == 0 {
			return nil, codefmt.Reject(p, dir, genreperrors.ErrUnsupportedDeclarationKind,
				"%t has no methods; an open interface cannot define a closed sum", target)
		}
	}

	d := &Derived{p: p, dir: dir, reg: reg}

	// Alias names follow the target's own case so unexported targets keep
	// unexported aliases.
	name := target.Named.Obj().Name()
	d.aliasRep = ns.Name(name + "Repr")
	d.aliasMeta = ns.Name(name + "Meta")
	d.funcTo = ns.Name("genrep_" + dir.Name + "_to")
	d.funcFrom = ns.Name("genrep_" + dir.Name + "_from")

	reg.Put(target, d)
	return d, nil
}

// Build extracts the members or cases of the target type and links sibling
// derivations. All derivation errors are reported here.
func (d *Derived) Build() error {
	var err error
	switch {
	case d.dir.Record:
		d.members, err = d.extractMembers(d.dir.Target, false)
	case d.dir.Union:
		d.cases, err = d.extractCases()
	}
	if err != nil {
		return err
	}

	return d.checkCycle(nil)
}

// checkCycle rejects recursive derivations. A member folding to its own
// canonical shape again would make the canonical type expression infinite.
func (d *Derived) checkCycle(trail []*Derived) error {
	for _, seen := range trail {
		if seen == d {
			return codefmt.Reject(d.p, d.dir, genreperrors.ErrUnsupportedPattern,
				"recursive derivation of %t cannot fold to a finite representation", d.dir.Target)
		}
	}
	trail = append(trail, d)

	var errs error
	for _, m := range d.members {
		if m.Sub != nil {
			errs = errors.Join(errs, m.Sub.checkCycle(trail))
		}
	}
	for _, c := range d.cases {
		for _, m := range c.Members {
			if m.Sub != nil {
				errs = errors.Join(errs, m.Sub.checkCycle(trail))
			}
		}
	}
	return errs
}
