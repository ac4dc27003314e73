package codefmt

import (
	"go/ast"
	"go/token"
	"go/types"
	"io"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"
)

// Writer writes generated code while collecting the imports the written code
// needs. Every package referenced through [Writer.Printf], [Writer.Sprintf],
// or [Writer.Import] ends up in [Writer.Imports].
type Writer struct {
	w       io.Writer
	pkg     *packages.Package
	fmt     Formatter
	imports map[string]Import
	ns      NS
}

// NewWriter creates a [Writer] without a namespace. Use [Writer.WithNS] to
// attach one before claiming names.
func NewWriter(w io.Writer, pkg *packages.Package) *Writer {
	return &Writer{
		w:       w,
		pkg:     pkg,
		fmt:     New(pkg),
		imports: make(map[string]Import),
	}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	return w.w.Write(p)
}

// Printf writes a formatted string through [Formatter.Fprintf], recording
// the imports its arguments refer to.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	w.importArgs(args...)
	return w.fmt.Fprintf(w.w, format, args...)
}

// Sprintf formats through [Formatter.Sprintf], recording the imports its
// arguments refer to.
func (w *Writer) Sprintf(format string, args ...any) string {
	w.importArgs(args...)
	return w.fmt.Sprintf(format, args...)
}

// Name claims a unique name in the writer's namespace.
func (w *Writer) Name(name string) string {
	return w.ns.Name(name)
}

// WithNS copies the writer with ns as its namespace. The copy shares the
// import set, so names and imports stay consistent across scopes.
func (w *Writer) WithNS(ns NS) *Writer {
	copied := *w
	copied.ns = ns
	return &copied
}

type Import struct {
	// The package to import.
	*types.Package

	// HasAlias indicates that the import needs an alias clause.
	HasAlias bool
}

// Imports returns every import recorded so far, keyed by local name.
func (w *Writer) Imports() map[string]Import {
	return w.imports
}

// importAST records the packages referenced anywhere in the node.
func (w *Writer) importAST(node ast.Node) {
	astutil.Apply(node, func(c *astutil.Cursor) bool {
		if id, ok := c.Node().(*ast.Ident); ok {
			w.importType(w.pkg.TypesInfo.TypeOf(id))
			w.importObj(w.pkg.TypesInfo.ObjectOf(id))
		}
		return true
	}, nil)
}

// importType records the defining packages of every named type reachable
// from typ.
func (w *Writer) importType(typ types.Type) {
	switch typ := typ.(type) {
	case *types.Pointer:
		w.importType(typ.Elem())
	case *types.Slice:
		w.importType(typ.Elem())
	case *types.Array:
		w.importType(typ.Elem())
	case *types.Map:
		w.importType(typ.Key())
		w.importType(typ.Elem())
	case *types.Named:
		w.importObj(typ.Obj())
	}
}

// importObj records the defining package of obj.
func (w *Writer) importObj(obj types.Object) {
	if obj == nil {
		return
	}

	pkg := obj.Pkg()
	if pkg == nil {
		// Built-in objects have no package.
		return
	}
	if w.pkg.PkgPath == pkg.Path() {
		// The written code lives in this package already.
		return
	}

	for name := range DisambiguateName(pkg.Name()) {
		prev, ok := w.imports[name]
		if ok && prev.Package == pkg {
			return
		}
		if !ok && w.pkg.Types.Scope().Lookup(name) == nil {
			w.imports[name] = Import{Package: pkg, HasAlias: name != pkg.Name()}
			pkg.SetName(name)
			return
		}
	}
}

// Import records an import of path under the given name, renaming on
// conflict, and returns the local name to qualify with.
//
//	gen := w.Import("github.com/sublee/genrep/pkg/generic", "generic")
//	w.Printf("%s.Empty{}", gen)
func (w *Writer) Import(path, name string) string {
	var pkgName string
	for _, imp := range w.pkg.Types.Imports() {
		if imp.Path() == path {
			pkgName = imp.Name()
			break
		}
	}

	if name == "" {
		name = pkgName
	}
	pkg := types.NewPackage(path, name)

	for name := range DisambiguateName(name) {
		prev, ok := w.imports[name]
		if ok && prev.Path() == path {
			return name
		}
		if !ok && w.pkg.Types.Scope().Lookup(name) == nil {
			w.imports[name] = Import{Package: pkg, HasAlias: name != pkgName}
			pkg.SetName(name)
			return name
		}
	}

	panic("unreachable")
}

func (w *Writer) importArgs(args ...any) {
	for _, arg := range args {
		switch arg := arg.(type) {
		case ast.Expr:
			w.importAST(arg)
		case types.Object:
			w.importObj(arg)
		case types.Type:
			w.importType(arg)

		case Exprer:
			w.importAST(arg.Expr())
		case Objecter:
			w.importObj(arg.Object())
		case Typer:
			w.importType(arg.Type())
		}
	}
}

// RewriteImports rewrites package qualifiers in node so that every reference
// resolves through the writer's import set, renaming where the original
// qualifier would collide.
func RewriteImports[T ast.Node](w *Writer, node T) T {
	return astutil.Apply(node, func(c *astutil.Cursor) bool {
		switch node := c.Node().(type) {

		// Unqualified identifiers, such as "Println" without the "fmt." prefix
		case *ast.Ident:
			obj := w.pkg.TypesInfo.ObjectOf(node)
			if obj == nil {
				return false
			}

			pkg := obj.Pkg()
			if pkg == nil || pkg.Path() == w.pkg.PkgPath || obj.Parent() != pkg.Scope() {
				return true
			}

			newPkgName := w.Import(pkg.Path(), pkg.Name())
			c.Replace(&ast.SelectorExpr{
				X: &ast.Ident{
					NamePos: node.NamePos,
					Name:    newPkgName,
				},
				Sel: &ast.Ident{
					NamePos: node.NamePos + token.Pos(len(newPkgName)+1),
					Name:    node.Name,
					Obj:     node.Obj,
				},
			})
			return false

		// Qualified identifiers, such as "fmt.Println"
		case *ast.SelectorExpr:
			pkgIdent, ok := node.X.(*ast.Ident)
			if !ok {
				return true
			}

			pkgName, ok := w.pkg.TypesInfo.ObjectOf(pkgIdent).(*types.PkgName)
			if !ok {
				// The qualifier is a value, not a package name.
				return true
			}

			pkg := pkgName.Imported()
			newPkgName := w.Import(pkg.Path(), pkg.Name())
			c.Replace(&ast.SelectorExpr{
				X: &ast.Ident{
					NamePos: pkgIdent.NamePos,
					Name:    newPkgName,
					Obj:     pkgIdent.Obj,
				},
				Sel: &ast.Ident{
					NamePos: pkgIdent.NamePos + token.Pos(len(pkgIdent.Name)+1),
					Name:    node.Sel.Name,
					Obj:     node.Sel.Obj,
				},
			})
			return false
		}

		return true
	}, nil).(T)
}
