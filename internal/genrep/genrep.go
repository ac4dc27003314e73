package genrepinternal

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/printer"
	"go/token"
	"io"
	"maps"
	"path/filepath"
	"slices"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/genrep/internal/codefmt"
	"github.com/sublee/genrep/internal/genrep/derive"
	"github.com/sublee/genrep/internal/genrep/parse"
	"github.com/sublee/genrep/internal/typeinfo"
)

// Genrep generates representation code for the target package. Call [Build]
// and then [Generate] to get the generated code. All potential errors are
// returned by [Build]. Once [Build] succeeds, [Generate] never fails.
type Genrep struct {
	p   *parse.Parser
	ns  codefmt.NS
	buf *bytes.Buffer
	w   *codefmt.Writer

	reg      *typeinfo.Registry[*derive.Derived]
	deriveds map[token.Pos]*derive.Derived
}

// New creates a new [Genrep] for the given package. If the package does not
// satisfy the requirements, an error is returned. The package must have its
// Syntax, Types and TypesInfo. And it must not have any errors.
func New(pkg *packages.Package) (*Genrep, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	return &Genrep{
		p:        parser,
		ns:       codefmt.NewNS(pkg.Types.Scope()),
		buf:      &buf,
		w:        codefmt.NewWriter(&buf, pkg),
		reg:      typeinfo.NewRegistry[*derive.Derived](),
		deriveds: make(map[token.Pos]*derive.Derived),
	}, nil
}

// Build prepares code generation by parsing directives and deriving canonical
// shapes. All potential errors are returned by this method. It must be called
// before [Generate].
func (g *Genrep) Build() error {
	errs := g.p.Validate()

	dirs, err := g.p.ParseDirectives()
	errs = errors.Join(errs, err)
	if errs != nil {
		return errs
	}
	if len(dirs) == 0 {
		// No derivation directives found
		return nil
	}

	// Register every derivation before building any, so that members whose
	// type is derived by a sibling directive fold to the sibling's canonical
	// shape regardless of declaration order.
	var ds []*derive.Derived
	for _, dir := range dirs {
		d, err := derive.New(g.p, dir, g.ns, g.reg)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		ds = append(ds, d)
	}
	if errs != nil {
		return errs
	}

	for _, d := range ds {
		if err := d.Build(); err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		g.deriveds[d.Pos()] = d
	}
	return errs
}

// Generate generates representation code for the package. It must be called
// after [Build] succeeds.
func (g *Genrep) Generate() []byte {
	g.writeDeriveCode()
	g.mergeCode()
	return g.frameCode()
}

// writeDeriveCode writes the declarations of every derivation in source
// order.
func (g *Genrep) writeDeriveCode() {
	if len(g.deriveds) == 0 {
		return
	}

	g.w.Printf("// genrep: derived representations\n\n")

	ds := slices.Collect(maps.Values(g.deriveds))
	slices.SortFunc(ds, func(a, b *derive.Derived) int {
		if a.Pos() < b.Pos() {
			return -1
		}
		if a.Pos() > b.Pos() {
			return 1
		}
		return 0
	})

	for _, d := range ds {
		local := maps.Clone(g.ns)
		w := g.w.WithNS(local)
		d.WriteDefineCode(w)
		g.w.Printf("\n")
	}
}

// mergeCode copies non-genrep code from the source files that tagged with
// "//go:build genrep". It erases genrep directives to remove any references
// to the genrep package.
func (g *Genrep) mergeCode() {
	for _, file := range g.p.GenrepGoFiles() {
		name := filepath.Base(g.p.Pkg().Fset.File(file.Pos()).Name())
		first := true

		for _, decl := range file.Decls {
			if gen, ok := decl.(*ast.GenDecl); ok {
				if gen.Tok == token.IMPORT {
					// Skip import declarations in files. Required imports will
					// be collected from their usage, and then rewritten as an
					// import declaration group.
					continue
				}
			}

			if first {
				fmt.Fprintf(g.buf, "// %s:\n\n", name)
				first = false
			}

			// Erase derivation directives; their vars are redeclared by the
			// generated code.
			decl = astutil.Apply(decl, func(c *astutil.Cursor) bool {
				spec, ok := c.Node().(*ast.ValueSpec)
				if !ok {
					return true
				}

				// Find non-genrep values
				var names []*ast.Ident
				var values []ast.Expr
				for i := range spec.Names {
					if i >= len(spec.Values) {
						names = append(names, spec.Names[i])
						continue
					}

					if _, ok := g.deriveds[spec.Values[i].Pos()]; !ok {
						names = append(names, spec.Names[i])
						values = append(values, spec.Values[i])
					}
				}

				if len(names) == 0 {
					// Input:  var ( a = genrep.Record[Foo]() )
					// Output: var ()
					c.Delete()
				} else {
					// Input:  var ( a, b = genrep.Record[Foo](), 42 )
					// Output: var ( b = 42 )
					c.Replace(&ast.ValueSpec{
						Doc:     spec.Doc,
						Names:   names,
						Type:    spec.Type,
						Values:  values,
						Comment: spec.Comment,
					})
				}

				return false
			}, nil).(ast.Decl)

			// Skip empty declarations
			if gen, ok := decl.(*ast.GenDecl); ok {
				if len(gen.Specs) == 0 {
					continue
				}
			}

			// Prevent import name conflicts when merging multiple files into one
			decl = codefmt.RewriteImports(g.w, decl)

			// Write rewritten declaration code
			printer.Fprint(g.buf, g.p.Pkg().Fset, &printer.CommentedNode{
				Node:     decl,
				Comments: file.Comments,
			})
			fmt.Fprintf(g.buf, "\n\n")
		}
	}
}

func (g *Genrep) frameCode() []byte {
	// Prepend header code
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "//go:build !genrep\n")
	fmt.Fprintf(&buf, "// Code generated by github.com/sublee/genrep%s. DO NOT EDIT.\n", versionSuffix)
	fmt.Fprintf(&buf, "package %s\n", g.p.Pkg().Name)

	if len(g.w.Imports()) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for alias, imp := range g.w.Imports() {
			// Check for remaining genrep import
			if imp.Path() == "github.com/sublee/genrep" {
				fmt.Println("genrep import remains")
			}

			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", alias, imp.Path())
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path())
			}
		}
		fmt.Fprintf(&buf, ")\n")
	}

	_, _ = io.Copy(&buf, g.buf)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}
