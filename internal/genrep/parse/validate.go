package parse

import (
	"errors"
	"go/ast"
	"strings"

	"github.com/sublee/genrep/internal/codefmt"
)

// Validate checks for usages outside expected paths. It collects all errors
// instead of stopping at the first error.
//
// Most validation rules are implemented in the expected paths by narrow
// parsing functions. But some rules need to be checked globally. That's what
// this function does.
func (p *Parser) Validate() error {
	var errs error
	for _, file := range p.Pkg().Syntax {
		errs = errors.Join(errs, p.validateConstraint(file))
		errs = errors.Join(errs, p.validateAssignedDirectives(file))
	}
	return errs
}

// validateConstraint checks if files importing "github.com/sublee/genrep" have
// "//go:build genrep" constraint.
func (p *Parser) validateConstraint(file *ast.File) error {
	// Find genrep import
	var genrepImport *ast.ImportSpec
	for _, imp := range file.Imports {
		if IsGenrepImport(strings.Trim(imp.Path.Value, `"`)) {
			genrepImport = imp
			break
		}
	}
	if genrepImport == nil {
		return nil // No genrep import found
	}

	// Check for "//go:build genrep" constraint
	if hasGoBuildGenrep(file) {
		return nil // Constraint satisfied
	}

	// This file imports genrep but has no "//go:build genrep" constraint
	return codefmt.Errorf(p, genrepImport, `file must have "//go:build genrep" constraint when importing genrep`)
}

// validateAssignedDirectives checks illegal assignments of Genrep directives.
//
// Only derivation directives are allowed to be assigned to variables. Other
// directives, for example options, cannot be assigned. This is to prevent
// remaining Genrep import after code generation.
func (p *Parser) validateAssignedDirectives(file *ast.File) error {
	if !hasGoBuildGenrep(file) {
		return nil
	}

	var errs error
	ast.Inspect(file, func(node ast.Node) bool {
		switch node := node.(type) {
		case *ast.ValueSpec, *ast.AssignStmt:
			ast.Inspect(node, func(node ast.Node) bool {
				call, ok := node.(*ast.CallExpr)
				if !ok {
					return true
				}

				directive, ok := p.GetDirective(call)
				if !ok {
					return true
				}

				// Derivations can be assigned to variables.
				switch directive {
				case "Record", "Union":
					return false
				}

				// Other directives cannot.
				err := codefmt.Errorf(p, call, "cannot assign %s to variable", directive)
				errs = errors.Join(errs, err)
				return false
			})
			return false
		}
		return true
	})
	return errs
}
