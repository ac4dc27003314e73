// Package genrep provides directives for structural representation code
// generation.
//
// Genrep derives a canonical representation for your types. Declare a
// derivation with a type and its configuration once, and the generator
// produces an isomorphism between the type and a generic representation
// built from the containers in [github.com/sublee/genrep/pkg/generic].
// Generic algorithms written once against those containers then work for
// every derived type without reflection.
//
// To start with Genrep, add a build constraint to files containing Genrep
// directives:
//
//	//go:build genrep
//
// Derivations can be declared with Genrep directives. Struct types derive
// with [Record] and interface types with [Union]. A record becomes a chain
// of its fields and a union becomes a chain of binary choices over its
// cases:
//
//	// source:
//	var UserRep = genrep.Record[User]()
//
//	// generated: (simplified)
//	type UserRepr = generic.Record[generic.Cons[generic.Field[string], generic.Empty]]
//	var UserRep = generic.Iso[User, UserRepr, UserRepr]{
//		To:   func(x User) UserRepr { ... },
//		From: func(r UserRepr) User { ... },
//		Meta: UserRepr{...},
//	}
//
// After declaring derivations, run the genrep command. It will generate
// genrep_gen.go for your package:
//
//	go run github.com/sublee/genrep/cmd/genrep
//
// # Configurations
//
// Field labels default to the field names. [Tag] reads labels from a struct
// tag key instead, and [Rename] replaces a specific label:
//
//	// source:
//	var UserRep = genrep.Record[User](
//		genrep.Tag("json"),
//		genrep.Rename("id", "identifier"),
//	)
//
// By default, Genrep discovers union cases from the package that defines
// the interface. When the implementations live elsewhere, point at them
// with [CasesBySample]:
//
//	// source:
//	var EventRep = genrep.Union[Event](
//		genrep.CasesBySample(impls.Clicked{}),
//	)
//
// # Nested derivations
//
// When a field or case payload has its own derivation in the same package,
// the parent folds it recursively. The nested type contributes its
// representation instead of appearing as an opaque leaf:
//
//	// source:
//	var (
//		AddressRep = genrep.Record[Address]()
//		UserRep    = genrep.Record[User]() // User has an Address field
//	)
//
// Here UserRep's To and From call AddressRep's, and UserRepr contains
// AddressRepr where the Address field used to be.
package genrep

import "github.com/sublee/genrep/pkg/generic"

type (
	canUseFor interface{ canUseFor() }
	yes       interface{ canUseFor }
	no        interface{ canUseFor }

	// option for [Record]
	recordOption interface{ recordOption() yes }

	// option for [Union]
	unionOption interface{ unionOption() yes }
)

// Record directive derives a representation for a struct type:
//
//	// source:
//	var UserRep = genrep.Record[User]()
//
// The target type is declared as a type parameter. The variable that holds
// the directive is rewritten to the actual isomorphism when Genrep
// generates code. The generated To folds a value into a [generic.Record]
// of its fields in declaration order, and From rebuilds the value.
//
// Fields are labeled by name unless [Tag] or [Rename] says otherwise.
// Blank fields are skipped. Embedded fields and unexported fields of types
// from other packages are rejected at generation time.
func Record[T any](opts ...recordOption) generic.Iso[T, generic.Value, generic.Value] {
	panic("genrep: not generated")
}

// Union directive derives a representation for an interface type:
//
//	// source:
//	var EventRep = genrep.Union[Event]()
//
// The target type is declared as a type parameter. The variable that holds
// the directive is rewritten to the actual isomorphism when Genrep
// generates code. The generated To dispatches on the dynamic type with a
// type switch and injects the payload into a chain of [generic.Choice],
// and From walks the chain back to the selected case.
//
// Cases are the concrete types in the interface's package that implement
// it, in declaration order. Use [CasesBySample] to discover cases from
// another package instead. Interfaces with no methods are rejected since
// every type would be a case.
func Union[T any](opts ...unionOption) generic.Iso[T, generic.Value, generic.Value] {
	panic("genrep: not generated")
}

// Option configures how representations are derived. The type parameters
// of [Option] indicate which directives accept the option. For example,
// Option[yes, no] is accepted by [Record] but not [Union].
type Option[Record, Union canUseFor] interface {
	recordOption() Record
	unionOption() Union
}

// Tag reads field labels from the given struct tag key instead of the
// field names. Fields without the tag keep their names. A tag value of "-"
// is ignored rather than skipping the field:
//
//	// source:
//	type User struct {
//		ID   int    `json:"id"`
//		Name string `json:"name,omitempty"`
//	}
//	var UserRep = genrep.Record[User](genrep.Tag("json"))
//
// Here the labels become "id" and "name". Only the part before the first
// comma is used. The key must be non-empty and can be configured once per
// directive.
func Tag(key string) Option[yes, no] {
	panic("genrep: not generated")
}

// Rename replaces a label with another. For [Record] it applies to field
// labels after [Tag]; for [Union] it applies to case names:
//
//	// source:
//	var UserRep = genrep.Record[User](
//		genrep.Rename("ID", "identifier"),
//	)
//
// When this option is specified multiple times, all of them are applied in
// order.
func Rename(old, new string) Option[yes, yes] {
	panic("genrep: not generated")
}

// CasesBySample discovers union cases from the package of the given sample
// value instead of the package that defines the interface.
//
// When implementations are declared in a package different from where the
// interface itself is defined, this option allows Genrep to locate them:
//
//	// source:
//	var EventRep = genrep.Union[Event](
//		genrep.CasesBySample(impls.Clicked{}),
//	)
//
// The sample must be non-nil and assertable to the target interface. It
// can be configured once per directive.
func CasesBySample(sample any) Option[no, yes] {
	panic("genrep: not generated")
}
