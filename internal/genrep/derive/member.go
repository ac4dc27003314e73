package derive

import (
	"errors"
	"go/ast"
	"go/token"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/sublee/genrep/internal/codefmt"
	"github.com/sublee/genrep/internal/typeinfo"
	"github.com/sublee/genrep/pkg/genreperrors"
)

// Member is one stored field of a product or of a case payload.
type Member struct {
	// Name is the field name used to access the value on the concrete type.
	Name string

	// Label is the metadata name after tag lookup and renames. Empty for an
	// unlabeled member; only embedded fields of case payloads are unlabeled.
	Label   string
	Labeled bool

	Type typeinfo.Type
	Pos  token.Pos

	// Sub is the sibling derivation for the member type, when the same
	// package derives it too. A non-nil Sub makes the member fold to the
	// sibling's canonical type instead of a bare leaf.
	Sub *Derived
}

// extractMembers extracts the stored fields of a struct type in declaration
// order. Case payloads allow embedded fields as unlabeled members; products
// reject them.
func (d *Derived) extractMembers(t typeinfo.Type, payload bool) ([]Member, error) {
	p := d.p
	cfg := d.dir.Config

	var errs error
	if err := d.checkFieldSpecs(t); err != nil {
		errs = errors.Join(errs, err)
	}

	local := t.Pkg() == p.Pkg().Types

	byLabel := linkedhashmap.New()
	var members []Member

	st := t.Struct
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		if f.Name() == "_" {
			// No accessible storage, nothing to represent.
			continue
		}

		ft := typeinfo.TypeOf(f.Type())
		if ft.IsInvalid() {
			errs = errors.Join(errs, codefmt.Reject(p, codefmt.Pos(f.Pos()), genreperrors.ErrMissingTypeAnnotation,
				"cannot resolve type of field %t.%s", t, f.Name()))
			continue
		}

		if !f.Exported() && !local {
			errs = errors.Join(errs, codefmt.Reject(p, codefmt.Pos(f.Pos()), genreperrors.ErrUnsupportedPattern,
				"unexported field %t.%s is unreachable from package %s", t, f.Name(), p.Pkg().Name))
			continue
		}

		m := Member{
			Name: f.Name(),
			Type: ft,
			Pos:  f.Pos(),
		}

		if f.Embedded() {
			if !payload {
				errs = errors.Join(errs, codefmt.Reject(p, codefmt.Pos(f.Pos()), genreperrors.ErrUnsupportedPattern,
					"embedded field %t.%s is not representable", t, f.Name()))
				continue
			}
			// Embedded payload fields stay unlabeled.
			members = append(members, m)
			continue
		}

		m.Labeled = true
		m.Label = cfg.Label(f.Name(), st.Tag(i))

		if old, ok := byLabel.Get(m.Label); ok {
			errs = errors.Join(errs, codefmt.Reject(p, codefmt.Pos(f.Pos()), genreperrors.ErrUnsupportedMemberShape,
				`duplicate label %q for field %t.%s
	previously used by %t.%s`, m.Label, t, f.Name(), t, old.(Member).Name))
			continue
		}
		byLabel.Put(m.Label, m)

		members = append(members, m)
	}

	if errs != nil {
		return nil, errs
	}

	// Link sibling derivations last so that labels stay untouched by errors
	// above.
	for i := range members {
		if sub, ok := d.reg.Get(members[i].Type); ok {
			members[i].Sub = sub
		}
	}
	return members, nil
}

// checkFieldSpecs rejects field specs that declare several names at once,
// like "X, Y string". They collapse to indistinguishable members after
// derivation, so they are not representable. Only locally declared types have
// syntax to check.
func (d *Derived) checkFieldSpecs(t typeinfo.Type) error {
	st := d.findStructType(t)
	if st == nil {
		return nil
	}

	var errs error
	for _, field := range st.Fields.List {
		if len(field.Names) > 1 {
			errs = errors.Join(errs, codefmt.Reject(d.p, field, genreperrors.ErrUnsupportedMemberShape,
				"cannot represent %d fields declared at once; declare each field separately", len(field.Names)))
		}
	}
	return errs
}

// findStructType finds the struct AST node declaring the given type in the
// current package. It returns nil for types declared elsewhere.
func (d *Derived) findStructType(t typeinfo.Type) *ast.StructType {
	if !t.IsNamed() {
		return nil
	}
	pos := t.Named.Obj().Pos()

	for _, file := range d.p.Pkg().Syntax {
		if file.FileStart > pos || pos > file.FileEnd {
			continue
		}
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}
			for _, spec := range gen.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok || ts.Name.Pos() != pos {
					continue
				}
				if st, ok := ts.Type.(*ast.StructType); ok {
					return st
				}
				return nil
			}
		}
	}
	return nil
}
