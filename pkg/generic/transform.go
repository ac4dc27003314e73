package generic

// Transformable rebuilds a canonical value with its leaves rewritten. Every
// container implements it by recursing into its components and asserting the
// results back to their static types, so a transform preserves the value's
// canonical shape exactly.
//
// fn receives each leaf and must return a value of the same dynamic type;
// returning a different type panics on the reassembling type assertion.
type Transformable interface {
	Transform(fn func(leaf any) any) any
}

// Transform rewrites every leaf of a canonical value through fn and returns
// the rebuilt value. Non-container values are themselves leaves. This is the
// editing primitive: convert with [Iso.To], transform, convert back with
// [Iso.From].
func Transform(v any, fn func(leaf any) any) any {
	if t, ok := v.(Transformable); ok {
		return t.Transform(fn)
	}
	return fn(v)
}

func (e Empty) Transform(func(any) any) any { return e }

func (n Nothing) Transform(func(any) any) any { return n }

func (c Cons[H, T]) Transform(fn func(any) any) any {
	c.Head = Transform(c.Head, fn).(H)
	c.Tail = Transform(c.Tail, fn).(T)
	return c
}

func (f Field[T]) Transform(fn func(any) any) any {
	f.Value = Transform(f.Value, fn).(T)
	return f
}

func (c Choice[L, R]) Transform(fn func(any) any) any {
	if c.here {
		c.this = Transform(c.this, fn).(L)
	} else {
		c.rest = Transform(c.rest, fn).(R)
	}
	return c
}

func (r Record[F]) Transform(fn func(any) any) any {
	r.Fields = Transform(r.Fields, fn).(F)
	return r
}

func (u Union[C]) Transform(fn func(any) any) any {
	u.Cases = Transform(u.Cases, fn).(C)
	return u
}

func (c Case[P]) Transform(fn func(any) any) any {
	c.Fields = Transform(c.Fields, fn).(P)
	return c
}
