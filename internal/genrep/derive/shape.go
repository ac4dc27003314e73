package derive

import (
	"github.com/sublee/genrep/internal/codefmt"
)

const genericPath = "github.com/sublee/genrep/pkg/generic"

func (d *Derived) generic(w *codefmt.Writer) string {
	return w.Import(genericPath, "generic")
}

// repExpr returns the canonical type expression of the derivation: the
// right-nested fold of its members or cases.
func (d *Derived) repExpr(w *codefmt.Writer) string {
	gen := d.generic(w)
	if d.dir.Record {
		return w.Sprintf("%s.Record[%s]", gen, d.payloadExpr(w, d.members, false))
	}
	return w.Sprintf("%s.Union[%s]", gen, d.choiceExpr(w, 0))
}

// metaExpr returns the type of the metadata constant. For a union the choice
// chain is replaced by a Cons chain of Case descriptors so that every case
// name is present at once; a record reuses its canonical type unless a union
// is nested somewhere inside.
func (d *Derived) metaExpr(w *codefmt.Writer) string {
	gen := d.generic(w)
	if d.dir.Record {
		return w.Sprintf("%s.Record[%s]", gen, d.payloadExpr(w, d.members, true))
	}

	return w.Sprintf("%s.Union[%s]", gen, d.metaConsExpr(w, 0))
}

// metaDiffers reports whether the metadata type differs from the canonical
// type. It does for every union, and for every record that folds a union in
// somewhere.
func (d *Derived) metaDiffers() bool {
	if d.dir.Union {
		return true
	}
	for _, m := range d.members {
		if m.Sub != nil && m.Sub.metaDiffers() {
			return true
		}
	}
	return false
}

// repName returns the alias name of the canonical type.
func (d *Derived) repName() string { return d.aliasRep }

// metaName returns the alias name of the metadata type.
func (d *Derived) metaName() string {
	if d.metaDiffers() {
		return d.aliasMeta
	}
	return d.aliasRep
}

// payloadExpr folds members into a Cons chain type expression, seeded with
// Empty. meta switches nested derivations to their metadata types.
func (d *Derived) payloadExpr(w *codefmt.Writer, members []Member, meta bool) string {
	gen := d.generic(w)
	expr := w.Sprintf("%s.Empty", gen)
	for i := len(members) - 1; i >= 0; i-- {
		expr = w.Sprintf("%s.Cons[%s, %s]", gen, d.headExpr(w, members[i], meta), expr)
	}
	return expr
}

// headExpr returns the type expression of one member: a Field wrapper for
// labeled members, the bare type for unlabeled ones, and the sibling alias
// for nested derivations.
func (d *Derived) headExpr(w *codefmt.Writer, m Member, meta bool) string {
	gen := d.generic(w)

	if m.Sub != nil {
		alias := m.Sub.repName()
		if meta {
			alias = m.Sub.metaName()
		}
		if m.Labeled {
			return w.Sprintf("%s.Field[%s]", gen, alias)
		}
		return alias
	}

	if m.Labeled {
		return w.Sprintf("%s.Field[%t]", gen, m.Type)
	}
	return w.Sprintf("%t", m.Type)
}

// choiceExpr folds the cases from index i on into a Choice chain type
// expression, seeded with Nothing.
func (d *Derived) choiceExpr(w *codefmt.Writer, i int) string {
	gen := d.generic(w)
	if i == len(d.cases) {
		return w.Sprintf("%s.Nothing", gen)
	}
	payload := d.payloadExpr(w, d.cases[i].Members, false)
	return w.Sprintf("%s.Choice[%s, %s]", gen, payload, d.choiceExpr(w, i+1))
}
