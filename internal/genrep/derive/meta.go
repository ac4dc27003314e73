package derive

import (
	"github.com/sublee/genrep/internal/codefmt"
)

// metaLiteral builds the metadata constant: the canonical shape with every
// name set and every leaf zero. A record's metadata is walkable in lockstep
// with To's output; a union's metadata pairs Cons depth i with value Choice
// depth i.
func (d *Derived) metaLiteral(w *codefmt.Writer) string {
	tname := d.dir.Target.Named.Obj().Name()

	if d.dir.Record {
		return w.Sprintf("%s{\nTypeName: %q,\nFields: %s,\n}",
			d.metaName(), tname, d.consLiteral(w, d.members, true, ""))
	}

	gen := d.generic(w)
	cases := w.Sprintf("%s.Empty{}", gen)
	for i := len(d.cases) - 1; i >= 0; i-- {
		c := d.cases[i]
		caseLit := w.Sprintf("%s.Case[%s]{Name: %q, Fields: %s}",
			gen, d.payloadExpr(w, c.Members, true), c.Label, d.consLiteral(w, c.Members, true, ""))
		cases = w.Sprintf("%s{\nHead: %s,\nTail: %s,\n}", d.metaConsExpr(w, i), caseLit, cases)
	}

	return w.Sprintf("%s{\nTypeName: %q,\nCases: %s,\n}", d.metaName(), tname, cases)
}

// metaConsExpr folds the case descriptors from index i on into a Cons chain
// type expression, seeded with Empty.
func (d *Derived) metaConsExpr(w *codefmt.Writer, i int) string {
	gen := d.generic(w)
	if i == len(d.cases) {
		return w.Sprintf("%s.Empty", gen)
	}
	payload := d.payloadExpr(w, d.cases[i].Members, true)
	return w.Sprintf("%s.Cons[%s.Case[%s], %s]", gen, gen, payload, d.metaConsExpr(w, i+1))
}
