package generic

import "iter"

// Leaves yields every leaf of a canonical value together with its label. The
// label is the enclosing [Field] name, or "" for unlabeled payload members.
// Leaves are yielded in declaration order; a sum value yields only the leaves
// of its selected case.
func Leaves(v any) iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		leaves(v, "", yield)
	}
}

func leaves(v any, label string, yield func(string, any) bool) bool {
	switch v := v.(type) {
	case Empty, Nothing:
		return true

	case Lister:
		head, tail := v.Uncons()
		if !leaves(head, "", yield) {
			return false
		}
		return leaves(tail, "", yield)

	case Labeled:
		name, value := v.Get()
		return leaves(value, name, yield)

	case Chooser:
		inner, _ := v.Either()
		return leaves(inner, label, yield)

	case Wrapper:
		_, members := v.Unwrap()
		return leaves(members, "", yield)
	}

	return yield(label, v)
}
