// Package generic defines the canonical container vocabulary that Genrep
// derives every annotated type into, together with generic algorithms written
// once against that vocabulary.
//
// A product type maps to a right-nested pair-list of its fields:
//
//	type User struct {
//		Foo string
//		Bar int
//	}
//
//	// canonical type:
//	generic.Record[generic.Cons[generic.Field[string],
//		generic.Cons[generic.Field[int], generic.Empty]]]
//
// A sum type maps to a right-nested chain of binary choices, one layer per
// case, each carrying the case's payload as its own pair-list:
//
//	type Shape interface{ isShape() }
//	type Circle struct{ Radius float64 }
//	type Square struct{ Side float64 }
//
//	// canonical type:
//	generic.Union[generic.Choice[generic.Cons[generic.Field[float64], generic.Empty],
//		generic.Choice[generic.Cons[generic.Field[float64], generic.Empty],
//			generic.Nothing]]]
//
// Canonical values are immutable snapshots with plain value semantics. They
// are produced by [Iso.To], consumed by [Iso.From], and never shared.
//
// Each container exposes a structural probe ([Lister], [Labeled], [Chooser],
// [Wrapper]) so that generic algorithms dispatch on shape, not on concrete
// types. Adding a new capability means one implementation per container kind;
// see [Equal], [Format], and [Transform] for the shipped ones.
package generic

// Value is the loosely-typed stand-in for a canonical value. Directive
// declarations use it before code generation fixes the concrete shape.
type Value = any

// Empty marks the end of a product chain. A product with no stored fields
// derives to Empty alone.
type Empty struct{}

// Cons is one field of a product plus the rest of the chain. Head is a
// [Field] for labeled members or a bare value for unlabeled ones; Tail is
// another Cons or [Empty]. The chain order is the declaration order.
type Cons[H, T any] struct {
	Head H
	Tail T
}

// Field is a labeled leaf value within a product. The name is fixed at
// derivation time.
type Field[T any] struct {
	Name  string
	Value T
}

// Nothing marks an exhausted choice chain. It only appears as the fold seed;
// a value of a non-empty sum never reaches it.
type Nothing struct{}

// Choice selects between this case's payload and the remaining cases. Use
// [This] and [Rest] to construct one; a Choice holds exactly one side.
type Choice[L, R any] struct {
	this L
	rest R
	here bool
}

// This constructs a Choice holding the payload of the case at this position.
func This[L, R any](payload L) Choice[L, R] {
	return Choice[L, R]{this: payload, here: true}
}

// Rest constructs a Choice passing through to the remaining cases.
func Rest[L, R any](rest R) Choice[L, R] {
	return Choice[L, R]{rest: rest}
}

// Here reports whether the choice holds this case's payload.
func (c Choice[L, R]) Here() bool { return c.here }

// This returns this case's payload. The zero L is returned when the choice
// passes through.
func (c Choice[L, R]) This() L { return c.this }

// Rest returns the remaining-cases chain. The zero R is returned when the
// choice holds this case.
func (c Choice[L, R]) Rest() R { return c.rest }

// Record is the canonical form of a full product type. TypeName equals the
// declaring type's name and Fields is the Cons chain of its members.
type Record[F any] struct {
	TypeName string
	Fields   F
}

// Union is the canonical form of a full sum type. TypeName equals the
// declaring type's name. In a canonical value Cases is the Choice chain; in
// the metadata constant it is a Cons chain of [Case] descriptors instead, so
// that every case name is present at once.
type Union[C any] struct {
	TypeName string
	Cases    C
}

// Case describes one sum-type case in metadata: its name and the product
// metadata of its payload. Metadata chain depth i describes value choice
// depth i.
type Case[P any] struct {
	Name   string
	Fields P
}

// Iso is the bidirectional conversion between a concrete type T and its
// canonical representation R, plus the metadata constant of type M. For
// products M is R itself; for sums M replaces the choice chain with a [Case]
// chain. Both directions are total: from(to(v)) == v and to(from(c)) == c.
//
// Iso values are produced by the Genrep generator; see the genrep package.
type Iso[T, R, M any] struct {
	To   func(T) R
	From func(R) T
	Meta M
}

// Structural probes. Every container implements exactly one of them, and
// generic algorithms are written as one branch per probe plus a leaf default.
type (
	// Lister is implemented by [Cons]: one element and the rest.
	Lister interface{ Uncons() (head, tail any) }

	// Labeled is implemented by [Field] and [Case]: a named payload.
	Labeled interface{ Get() (name string, value any) }

	// Chooser is implemented by [Choice]: either this case's payload or the
	// chain of remaining cases.
	Chooser interface{ Either() (v any, here bool) }

	// Wrapper is implemented by [Record] and [Union]: a type name and the
	// member chain.
	Wrapper interface{ Unwrap() (name string, members any) }
)

func (c Cons[H, T]) Uncons() (any, any) { return c.Head, c.Tail }

func (f Field[T]) Get() (string, any) { return f.Name, f.Value }

func (c Case[P]) Get() (string, any) { return c.Name, c.Fields }

func (c Choice[L, R]) Either() (any, bool) {
	if c.here {
		return c.this, true
	}
	return c.rest, false
}

func (r Record[F]) Unwrap() (string, any) { return r.TypeName, r.Fields }

func (u Union[C]) Unwrap() (string, any) { return u.TypeName, u.Cases }
