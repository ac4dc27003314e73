package derive

import (
	"errors"
	"go/ast"
	"go/token"
	"go/types"
	"slices"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/sublee/genrep/internal/codefmt"
	"github.com/sublee/genrep/internal/typeinfo"
	"github.com/sublee/genrep/pkg/genreperrors"
)

// Case is one case of a sum: a named struct or pointer-to-struct type
// implementing the union interface.
type Case struct {
	// Name is the implementation's type name.
	Name string

	// Label is the metadata name after renames.
	Label string

	// Type is the implementing type as asserted, possibly a pointer.
	Type typeinfo.Type

	// Members is the case's payload, extracted from the struct fields.
	Members []Member

	Pos token.Pos
}

// extractCases discovers the cases of the union interface in declaration
// order. By default the interface's own package is scanned; CasesBySample
// points the scan at the sample's package instead. Zero cases is a permitted
// degenerate sum.
func (d *Derived) extractCases() ([]Case, error) {
	p := d.p
	cfg := d.dir.Config
	iface := d.dir.Target.Interface

	scanPkg := cfg.CasesPkg
	if scanPkg == nil {
		scanPkg = d.dir.Target.Pkg()
	}

	var errs error
	byLabel := linkedhashmap.New()
	var cases []Case

	for _, obj := range d.typeNamesInOrder(scanPkg) {
		t := typeinfo.TypeOf(obj.Type())
		if t.IsInterface() || t.IsGeneric() || !t.IsNamed() {
			continue
		}

		var impl typeinfo.Type
		switch {
		case types.AssertableTo(iface, t.Named):
			impl = t
		case types.AssertableTo(iface, t.Ref().Pointer):
			impl = t.Ref()
		default:
			continue
		}

		if !t.IsStruct() {
			errs = errors.Join(errs, codefmt.Reject(p, codefmt.Pos(obj.Pos()), genreperrors.ErrUnsupportedMemberShape,
				"case %t of %t must be a struct type", t, d.dir.Target))
			continue
		}

		members, err := d.extractMembers(t, true)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		c := Case{
			Name:    obj.Name(),
			Label:   cfg.Rename(obj.Name()),
			Type:    impl,
			Members: members,
			Pos:     obj.Pos(),
		}

		if old, ok := byLabel.Get(c.Label); ok {
			errs = errors.Join(errs, codefmt.Reject(p, codefmt.Pos(obj.Pos()), genreperrors.ErrUnsupportedMemberShape,
				`duplicate label %q for case %s
	previously used by %s`, c.Label, c.Name, old.(Case).Name))
			continue
		}
		byLabel.Put(c.Label, c)

		cases = append(cases, c)
	}

	if errs != nil {
		return nil, errs
	}
	return cases, nil
}

// typeNamesInOrder lists the type names declared in pkg in declaration order.
// The current package is walked through its syntax; other packages fall back
// to scope objects sorted by position, because scope names are alphabetical.
func (d *Derived) typeNamesInOrder(pkg *types.Package) []*types.TypeName {
	var objs []*types.TypeName

	if pkg == d.p.Pkg().Types {
		for _, file := range d.p.Pkg().Syntax {
			for _, decl := range file.Decls {
				gen, ok := decl.(*ast.GenDecl)
				if !ok || gen.Tok != token.TYPE {
					continue
				}
				for _, spec := range gen.Specs {
					ts, ok := spec.(*ast.TypeSpec)
					if !ok {
						continue
					}
					if obj, ok := d.p.Pkg().TypesInfo.Defs[ts.Name].(*types.TypeName); ok {
						objs = append(objs, obj)
					}
				}
			}
		}
		return objs
	}

	scope := pkg.Scope()
	for _, name := range scope.Names() {
		if obj, ok := scope.Lookup(name).(*types.TypeName); ok {
			objs = append(objs, obj)
		}
	}
	slices.SortFunc(objs, func(a, b *types.TypeName) int {
		return int(a.Pos() - b.Pos())
	})
	return objs
}
