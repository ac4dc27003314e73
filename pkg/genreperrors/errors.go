// Package genreperrors defines the failure kinds Genrep reports when a type
// declaration cannot be derived. Every derivation error wraps exactly one of
// these sentinels, so callers can classify failures with [errors.Is] without
// parsing messages.
//
// All of them are generation-time errors: once a type derives successfully,
// its conversion functions are total and never fail at runtime.
package genreperrors

import "errors"

var (
	// ErrUnsupportedDeclarationKind reports a derivation target that is
	// neither a named struct nor a named interface with methods, or is a
	// generic type.
	ErrUnsupportedDeclarationKind = errors.New("unsupported declaration kind")

	// ErrUnsupportedMemberShape reports a member declaration that binds
	// several names at once, a duplicate member label, or a sum case that is
	// not a struct type.
	ErrUnsupportedMemberShape = errors.New("unsupported member shape")

	// ErrUnsupportedPattern reports a member that is not a plain named
	// field, such as an embedded field of a product type or an unexported
	// field of a type declared in another package.
	ErrUnsupportedPattern = errors.New("unsupported pattern")

	// ErrMissingTypeAnnotation reports a member whose type cannot be
	// resolved from the declaration.
	ErrMissingTypeAnnotation = errors.New("missing type annotation")
)
