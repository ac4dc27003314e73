package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"iter"
	"strings"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"

	"github.com/sublee/genrep/internal/codefmt"
	"github.com/sublee/genrep/internal/typeinfo"
)

// Directive represents a genrep derivation defined by genrep.Record or
// genrep.Union.
type Directive struct {
	Name   string
	Target typeinfo.Type
	Config Config

	Record bool
	Union  bool

	pkg *packages.Package
	pos token.Pos

	Doc     *ast.CommentGroup
	Comment *ast.CommentGroup
}

// Pkg returns the package where the directive is called. Directive implements
// [codefmt.Pkger] by this method.
func (d Directive) Pkg() *packages.Package { return d.pkg }

// Pos returns the token position where the directive is called. Directive
// implements [codefmt.Poser] by this method.
func (d Directive) Pos() token.Pos { return d.pos }

// String returns a string representation of the directive. For example,
// "genrep.Record[User]".
func (d Directive) String() string {
	var buf strings.Builder
	switch {
	case d.Record:
		buf.WriteString("genrep.Record")
	case d.Union:
		buf.WriteString("genrep.Union")
	}
	codefmt.Fprintf(d, &buf, "[%t]", d.Target)
	return buf.String()
}

// ParseDirectives parses all [Directive]s from the AST.
func (p *Parser) ParseDirectives() ([]*Directive, error) {
	var errs error
	var dirs []*Directive

	seen := typeinfo.NewRegistry[*Directive]()

	for _, file := range p.GenrepGoFiles() {
		for dir, err := range p.parseDirectivesInFile(file) {
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}

			if old, ok := seen.Get(dir.Target); ok {
				errs = errors.Join(errs, codefmt.Errorf(p, codefmt.Pos(dir.pos), `duplicate derivation for %t
	previous declaration at %b`, dir.Target, old))
				continue
			}
			seen.Put(dir.Target, dir)

			dirs = append(dirs, dir)
		}
	}

	if errs != nil {
		return nil, errs
	}
	return dirs, nil
}

// parseDirectivesInFile parses and yields [Directive]s in the given file.
func (p *Parser) parseDirectivesInFile(file *ast.File) iter.Seq2[*Directive, error] {
	return func(yield func(*Directive, error) bool) {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}

			for _, spec := range gen.Specs {
				val, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}

				if len(val.Names) != len(val.Values) {
					// Directives return exactly one value. The assignment
					// like this is invalid:
					// a, b := genrep.Record[Foo](...)
					continue
				}

				for i := range val.Values {
					call, ok := val.Values[i].(*ast.CallExpr)
					if !ok {
						continue
					}

					if !p.isDirective(call) {
						continue
					}

					id := val.Names[i]
					dir, err := p.parseDirective(id, call, val.Doc, val.Comment)
					if err != nil {
						if !yield(nil, err) {
							return
						}
						continue
					}

					if !yield(dir, nil) {
						return
					}
				}
			}
		}
	}
}

// isDirective checks if the given call expression is a derivation directive
// call, either genrep.Record or genrep.Union.
func (p *Parser) isDirective(call *ast.CallExpr) bool {
	if call == nil {
		return false
	}

	callee := typeutil.Callee(p.Pkg().TypesInfo, call)
	if callee == nil || callee.Pkg() == nil {
		return false
	}

	if !IsGenrepImport(callee.Pkg().Path()) {
		return false
	}

	switch callee.Name() {
	case "Record", "Union":
		return true
	}
	return false
}

// parseDirective parses a [Directive] from the given AST nodes.
func (p *Parser) parseDirective(id *ast.Ident, call *ast.CallExpr, doc, comment *ast.CommentGroup) (*Directive, error) {
	dir := &Directive{
		pkg:     p.Pkg(),
		pos:     call.Pos(),
		Doc:     doc,
		Comment: comment,
	}

	if id != nil && id.Name == "_" {
		return nil, codefmt.Errorf(p, id, "cannot assign representation to blank identifier")
	}
	dir.Name = id.Name

	idx, ok := ast.Unparen(call.Fun).(*ast.IndexExpr)
	if !ok {
		// Unreachable as long as the directive signatures have no value
		// parameter mentioning T, so the type argument cannot be inferred.
		return nil, codefmt.Errorf(p, call, "type argument must be explicit")
	}

	target := typeinfo.TypeOf(p.Pkg().TypesInfo.TypeOf(idx.Index))
	if target.IsInvalid() {
		return nil, codefmt.Errorf(p, idx.Index, "cannot resolve type %c", idx.Index)
	}
	dir.Target = target

	callee := typeutil.Callee(p.Pkg().TypesInfo, call)
	switch callee.Name() {
	case "Record":
		dir.Record = true
	case "Union":
		dir.Union = true
	default:
		panic(codefmt.Errorf(p, callee, "unexpected genrep function: %o", callee))
	}

	if err := p.ParseConfig(&dir.Config, dir, call.Args); err != nil {
		return nil, err
	}

	return dir, nil
}
