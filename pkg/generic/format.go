package generic

import (
	"fmt"
	"strings"
)

// Format renders a canonical value as a single line, recovering labels from
// the value itself without inspecting the original type:
//
//	User(Foo: "hello", Bar: 42)
//
// Leaves are rendered with %#v. Unlabeled payload members render without a
// label and an empty product renders as "Name()". Case names are not stored
// in a sum value; use [FormatWith] to recover them from metadata.
func Format(v any) string {
	var b strings.Builder
	format(&b, v)
	return b.String()
}

// FormatWith renders a canonical sum value with its case name by walking the
// value and the metadata constant in lockstep: metadata chain depth i
// describes value choice depth i.
//
//	Shape.Circle(Radius: 1.5)
//
// For products FormatWith is equivalent to [Format].
func FormatWith(meta, v any) string {
	mw, okM := meta.(Wrapper)
	vw, okV := v.(Wrapper)
	if !okM || !okV {
		return Format(v)
	}

	name, cases := vw.Unwrap()
	choice, ok := cases.(Chooser)
	if !ok {
		return Format(v)
	}
	_, caseMetas := mw.Unwrap()

	var b strings.Builder
	b.WriteString(name)

	payload, caseMeta := selectCase(choice, caseMetas)
	if caseMeta != nil {
		caseName, _ := caseMeta.Get()
		b.WriteString(".")
		b.WriteString(caseName)
	}

	b.WriteString("(")
	format(&b, payload)
	b.WriteString(")")
	return b.String()
}

// selectCase walks a choice chain and a metadata chain together and returns
// the selected payload with its case descriptor.
func selectCase(choice Chooser, caseMetas any) (any, Labeled) {
	for {
		var caseMeta Labeled
		if l, ok := caseMetas.(Lister); ok {
			head, tail := l.Uncons()
			caseMeta, _ = head.(Labeled)
			caseMetas = tail
		}

		inner, here := choice.Either()
		if here {
			return inner, caseMeta
		}

		next, ok := inner.(Chooser)
		if !ok {
			// Exhausted chain; unreachable for values built by This/Rest.
			return inner, nil
		}
		choice = next
	}
}

func format(b *strings.Builder, v any) {
	switch v := v.(type) {
	case Empty, Nothing:
		// Nothing to render; the surrounding wrapper prints the parentheses.

	case Lister:
		head, tail := v.Uncons()
		format(b, head)
		if _, ok := tail.(Empty); !ok {
			b.WriteString(", ")
			format(b, tail)
		}

	case Labeled:
		name, value := v.Get()
		b.WriteString(name)
		b.WriteString(": ")
		format(b, value)

	case Chooser:
		inner, _ := v.Either()
		format(b, inner)

	case Wrapper:
		name, members := v.Unwrap()
		b.WriteString(name)
		b.WriteString("(")
		format(b, unwrapChoice(members))
		b.WriteString(")")

	default:
		fmt.Fprintf(b, "%#v", v)
	}
}

// unwrapChoice follows a choice chain down to the selected payload so that a
// sum value renders its payload like a product.
func unwrapChoice(members any) any {
	for {
		c, ok := members.(Chooser)
		if !ok {
			return members
		}
		inner, here := c.Either()
		if here {
			return inner
		}
		members = inner
	}
}
