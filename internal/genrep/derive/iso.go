package derive

import (
	"strings"

	"github.com/sublee/genrep/internal/codefmt"
)

// WriteDefineCode writes the generated declarations for this derivation: the
// canonical type alias, the metadata alias when it differs, the Iso var, and
// the To/From functions behind it.
func (d *Derived) WriteDefineCode(w *codefmt.Writer) {
	gen := d.generic(w)
	target := d.dir.Target

	w.Printf("// %s is the canonical representation of %t.\n", d.aliasRep, target)
	w.Printf("type %s = %s\n\n", d.aliasRep, d.repExpr(w))

	if d.metaDiffers() {
		w.Printf("// %s is the shape of the name metadata of %t.\n", d.aliasMeta, target)
		w.Printf("type %s = %s\n\n", d.aliasMeta, d.metaExpr(w))
	}

	// Keep the directive's own doc comment on the var.
	if d.dir.Doc != nil {
		for _, c := range d.dir.Doc.List {
			w.Printf("%s\n", c.Text)
		}
	}
	w.Printf("var %s = %s.Iso[%t, %s, %s]{\n", d.dir.Name, gen, target, d.repName(), d.metaName())
	w.Printf("To: %s,\n", d.funcTo)
	w.Printf("From: %s,\n", d.funcFrom)
	w.Printf("Meta: %s,\n", d.metaLiteral(w))
	w.Printf("}\n\n")

	d.writeToCode(w)
	w.Printf("\n")
	d.writeFromCode(w)
}

// writeToCode writes the function converting the concrete type into its
// canonical value.
func (d *Derived) writeToCode(w *codefmt.Writer) {
	target := d.dir.Target
	tname := w.Sprintf("%t", target)

	varX := w.Name("x")
	w.Printf("func %s(%s %t) %s {\n", d.funcTo, varX, target, d.repName())

	switch {
	case d.dir.Record:
		w.Printf("return %s{\n", d.repName())
		w.Printf("TypeName: %q,\n", target.Named.Obj().Name())
		w.Printf("Fields: %s,\n", d.consLiteral(w, d.members, false, varX))
		w.Printf("}\n")

	case len(d.cases) == 0:
		// No constructor can produce a value of a zero-case sum.
		w.Printf("panic(%q)\n", "genrep: "+tname+" has no cases")

	default:
		// Bind the switched value only when a case reads payload fields from
		// it; an unused binding would not compile.
		varV := varX
		bind := false
		for _, c := range d.cases {
			if len(c.Members) != 0 {
				bind = true
			}
		}
		if bind {
			varV = w.Name("v")
			w.Printf("switch %s := %s.(type) {\n", varV, varX)
		} else {
			w.Printf("switch %s.(type) {\n", varX)
		}
		for i, c := range d.cases {
			w.Printf("case %t:\n", c.Type)
			w.Printf("return %s{\n", d.repName())
			w.Printf("TypeName: %q,\n", target.Named.Obj().Name())
			w.Printf("Cases: %s,\n", d.choiceLiteral(w, i, varV))
			w.Printf("}\n")
		}
		w.Printf("}\n")
		varFmt := w.Import("fmt", "fmt")
		w.Printf("panic(%s.Sprintf(%q, %s))\n", varFmt, "genrep: %T is not a case of "+tname, varX)
	}

	w.Printf("}\n")
}

// writeFromCode writes the function rebuilding the concrete type from its
// canonical value.
func (d *Derived) writeFromCode(w *codefmt.Writer) {
	target := d.dir.Target
	tname := w.Sprintf("%t", target)

	varRep := w.Name("rep")
	w.Printf("func %s(%s %s) %t {\n", d.funcFrom, varRep, d.repName(), target)

	switch {
	case d.dir.Record:
		w.Printf("return %t{\n", target)
		for i, m := range d.members {
			w.Printf("%s: %s,\n", m.Name, d.memberAccess(w, m, varRep+".Fields", i))
		}
		w.Printf("}\n")

	case len(d.cases) == 0:
		w.Printf("panic(%q)\n", "genrep: "+tname+" has no cases")

	default:
		chain := varRep + ".Cases"
		for _, c := range d.cases {
			varC := w.Name("c")
			w.Printf("%s := %s\n", varC, chain)
			w.Printf("if %s.Here() {\n", varC)

			base := c.Type.Deref()
			amp := ""
			if c.Type.IsPointer() {
				amp = "&"
			}

			if len(c.Members) == 0 {
				w.Printf("return %s%t{}\n", amp, base)
			} else {
				varP := w.Name("p")
				w.Printf("%s := %s.This()\n", varP, varC)
				w.Printf("return %s%t{\n", amp, base)
				for i, m := range c.Members {
					w.Printf("%s: %s,\n", m.Name, d.memberAccess(w, m, varP, i))
				}
				w.Printf("}\n")
			}

			w.Printf("}\n")
			chain = varC + ".Rest()"
		}
		// Unreachable: the choice chain always selects a case before Nothing.
		w.Printf("panic(%q)\n", "genrep: no case selected for "+tname)
	}

	w.Printf("}\n")
}

// memberAccess returns the read expression for member i of a Cons chain
// rooted at base: i Tail hops, one Head, and Value for labeled members.
// Nested derivations rebuild through the sibling Iso.
func (d *Derived) memberAccess(w *codefmt.Writer, m Member, base string, i int) string {
	path := base + strings.Repeat(".Tail", i) + ".Head"
	if m.Labeled {
		path += ".Value"
	}
	if m.Sub != nil {
		return w.Sprintf("%s.From(%s)", m.Sub.dir.Name, path)
	}
	return path
}

// consLiteral builds the composite literal of a member chain. With meta set,
// leaf values stay zero and nested derivations contribute their metadata;
// otherwise leaf values are read from varX.
func (d *Derived) consLiteral(w *codefmt.Writer, members []Member, meta bool, varX string) string {
	gen := d.generic(w)
	if len(members) == 0 {
		return w.Sprintf("%s.Empty{}", gen)
	}
	return w.Sprintf("%s{\nHead: %s,\nTail: %s,\n}",
		d.payloadExpr(w, members, meta),
		d.headLiteral(w, members[0], meta, varX),
		d.consLiteral(w, members[1:], meta, varX))
}

// headLiteral builds the literal of one member of a Cons chain.
func (d *Derived) headLiteral(w *codefmt.Writer, m Member, meta bool, varX string) string {
	var value string
	switch {
	case meta && m.Sub != nil:
		value = m.Sub.dir.Name + ".Meta"
	case meta:
		// Zero leaf; names only.
	case m.Sub != nil:
		value = w.Sprintf("%s.To(%s.%s)", m.Sub.dir.Name, varX, m.Name)
	default:
		value = varX + "." + m.Name
	}

	if m.Labeled {
		if value == "" {
			return w.Sprintf("%s{Name: %q}", d.headExpr(w, m, meta), m.Label)
		}
		return w.Sprintf("%s{Name: %q, Value: %s}", d.headExpr(w, m, meta), m.Label, value)
	}
	if value == "" {
		return w.Sprintf("*new(%t)", m.Type)
	}
	return value
}

// choiceLiteral builds the choice chain selecting case i: the payload wrapped
// in This at depth i under i Rest layers.
func (d *Derived) choiceLiteral(w *codefmt.Writer, i int, varX string) string {
	gen := d.generic(w)

	expr := w.Sprintf("%s.This[%s, %s](%s)",
		gen,
		d.payloadExpr(w, d.cases[i].Members, false),
		d.choiceExpr(w, i+1),
		d.consLiteral(w, d.cases[i].Members, false, varX))

	for j := i - 1; j >= 0; j-- {
		expr = w.Sprintf("%s.Rest[%s, %s](%s)",
			gen,
			d.payloadExpr(w, d.cases[j].Members, false),
			d.choiceExpr(w, j+1),
			expr)
	}
	return expr
}
