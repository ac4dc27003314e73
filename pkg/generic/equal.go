package generic

// Equal reports whether two canonical values are structurally equal. Both
// values are walked in lockstep, one branch per container shape. Leaves are
// compared with ==, so every leaf type must be comparable; values produced by
// a generated [Iso] from comparable Go types always are.
//
// Values of different shapes are never equal.
func Equal(a, b any) bool {
	switch a := a.(type) {
	case Empty:
		_, ok := b.(Empty)
		return ok

	case Nothing:
		_, ok := b.(Nothing)
		return ok

	case Lister:
		l, ok := b.(Lister)
		if !ok {
			return false
		}
		aHead, aTail := a.Uncons()
		bHead, bTail := l.Uncons()
		return Equal(aHead, bHead) && Equal(aTail, bTail)

	case Labeled:
		l, ok := b.(Labeled)
		if !ok {
			return false
		}
		aName, aValue := a.Get()
		bName, bValue := l.Get()
		return aName == bName && Equal(aValue, bValue)

	case Chooser:
		c, ok := b.(Chooser)
		if !ok {
			return false
		}
		aV, aHere := a.Either()
		bV, bHere := c.Either()
		return aHere == bHere && Equal(aV, bV)

	case Wrapper:
		w, ok := b.(Wrapper)
		if !ok {
			return false
		}
		aName, aMembers := a.Unwrap()
		bName, bMembers := w.Unwrap()
		return aName == bName && Equal(aMembers, bMembers)
	}

	return a == b
}
