package parse

import (
	"fmt"
	"go/ast"
	"go/build/constraint"
	"strings"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"
)

func IsGenrepImport(path string) bool {
	// Source code from "wire/internal/wire/parse.go".
	const vendorPart = "vendor/"
	if i := strings.LastIndex(path, vendorPart); i != -1 && (i == 0 || path[i-1] == '/') {
		path = path[i+len(vendorPart):]
	}
	return path == "github.com/sublee/genrep"
}

// Parser parses an AST of the underlying package to collect genrep
// derivation directives.
type Parser struct{ pkg *packages.Package }

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser].
func New(pkg *packages.Package) (*Parser, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("need pkg name")
	}
	if pkg.PkgPath == "" {
		return nil, fmt.Errorf("need pkg path")
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("need pkg types")
	}
	if pkg.Fset == nil {
		return nil, fmt.Errorf("need pkg fset")
	}
	if pkg.Syntax == nil {
		return nil, fmt.Errorf("need pkg syntax")
	}
	if pkg.TypesInfo == nil {
		return nil, fmt.Errorf("need pkg types info")
	}
	return &Parser{pkg: pkg}, nil
}

func (p *Parser) IsNil(expr ast.Expr) bool {
	expr = ast.Unparen(expr)

	// nil
	if id, ok := expr.(*ast.Ident); ok {
		if id.Name == "nil" {
			return true
		}
	}

	// T(nil)
	if call, ok := expr.(*ast.CallExpr); ok {
		fun := ast.Unparen(call.Fun)
		if !call.Ellipsis.IsValid() && len(call.Args) == 1 {
			switch fun.(type) {
			case *ast.ArrayType, *ast.StructType, *ast.FuncType, *ast.InterfaceType, *ast.MapType, *ast.ChanType:
				return p.IsNil(call.Args[0])
			}
		}
	}

	return false
}

// GetDirective returns the name of the Genrep directive function if the call
// expression is a Genrep directive. Otherwise, it returns false.
func (p *Parser) GetDirective(call *ast.CallExpr) (string, bool) {
	callee := typeutil.Callee(p.Pkg().TypesInfo, call)
	if callee == nil {
		return "", false
	}

	pkg := callee.Pkg()
	if pkg == nil {
		// Built-in functions like panic()
		return "", false
	}

	if !IsGenrepImport(pkg.Path()) {
		// Not Genrep function
		return "", false
	}

	return callee.Name(), true
}

// IsDirective checks if the call expression is a Genrep directive with the
// given name. If name is empty, it checks if the call is any Genrep directive.
func (p *Parser) IsDirective(call *ast.CallExpr, name string) bool {
	calleeName, ok := p.GetDirective(call)
	if !ok {
		return false
	}

	if name == "" {
		// Any genrep directive
		return true
	}

	return calleeName == name
}

// GenrepGoFiles returns the Go files that have a "//go:build genrep"
// constraint.
func (p *Parser) GenrepGoFiles() []*ast.File {
	var files []*ast.File
	for _, file := range p.Pkg().Syntax {
		if hasGoBuildGenrep(file) {
			files = append(files, file)
		}
	}
	return files
}

// hasGoBuildGenrep checks if the file has a "//go:build genrep" constraint.
func hasGoBuildGenrep(file *ast.File) bool {
	ok := false
	for _, group := range file.Comments {
		for _, comment := range group.List {
			if constraint.IsGoBuild(comment.Text) {
				expr, _ := constraint.Parse(comment.Text)
				expr.Eval(func(tag string) bool {
					if tag == "genrep" {
						ok = true
					}
					return true
				})
			}
		}
	}
	return ok
}
