package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"go/types"
	"reflect"
	"strings"

	"golang.org/x/tools/go/types/typeutil"

	"github.com/sublee/genrep/internal/codefmt"
	"github.com/sublee/genrep/internal/typeinfo"
)

// Config holds the parsed options of a directive.
type Config struct {
	// TagKey names the struct tag whose value overrides field labels. Empty
	// when genrep.Tag is not given.
	TagKey string

	// Renames are (old, new) label replacements, applied in order after the
	// tag lookup.
	Renames [][2]string

	// CasesPkg is the package to scan for case types. Nil means the package
	// declaring the union interface itself.
	CasesPkg *types.Package
	CasesAt  token.Pos
}

// Label resolves the metadata label for a field: the struct tag value wins
// when configured, then renames apply in order.
func (cfg Config) Label(name, tag string) string {
	label := name
	if cfg.TagKey != "" {
		if v, _, _ := strings.Cut(reflect.StructTag(tag).Get(cfg.TagKey), ","); v != "" && v != "-" {
			label = v
		}
	}
	return cfg.Rename(label)
}

// Rename applies the configured renames to a label in order.
func (cfg Config) Rename(label string) string {
	for _, r := range cfg.Renames {
		if label == r[0] {
			label = r[1]
		}
	}
	return label
}

// ParseConfig parses the option arguments of a directive into cfg.
func (p *Parser) ParseConfig(cfg *Config, dir *Directive, args []ast.Expr) error {
	var errs error
	for _, arg := range args {
		if _, ok := arg.(*ast.Ident); ok {
			err := codefmt.Errorf(p, arg, "option must be inlined, not assigned to variable")
			errs = errors.Join(errs, err)
			continue
		}

		call, ok := ast.Unparen(arg).(*ast.CallExpr)
		if !ok {
			// Probably, this case is unreachable because every option type is
			// unexported. The only way to create a valid option is to call an
			// option directive function, or assign it to a variable. The
			// latter one is caught above.
			err := codefmt.Errorf(p, arg, "cannot use %c as option", arg)
			errs = errors.Join(errs, err)
			continue
		}

		if err := p.ParseOption(cfg, dir, call); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	return errs
}

func (p *Parser) ParseOption(cfg *Config, dir *Directive, call *ast.CallExpr) error {
	callee := typeutil.Callee(p.Pkg().TypesInfo, call)
	if callee == nil || callee.Pkg() == nil || !IsGenrepImport(callee.Pkg().Path()) {
		return codefmt.Errorf(p, call, "option must be genrep directive")
	}

	name := callee.Name()
	switch name {
	case "Tag":
		return p.ParseOptionTag(cfg, call)
	case "Rename":
		return p.ParseOptionRename(cfg, call)
	case "CasesBySample":
		return p.ParseOptionCasesBySample(cfg, dir, call)
	}

	return codefmt.Errorf(p, call.Fun, "%s is not supported option", name)
}

func (p *Parser) ParseOptionTag(c *Config, call *ast.CallExpr) error {
	expr, err := needArgs1(p, call)
	if err != nil {
		return err
	}

	key, err := parseStringArg(p, expr)
	if err != nil {
		return err
	}

	if key == "" {
		return codefmt.Errorf(p, expr, "tag key must not be empty")
	}

	if c.TagKey != "" {
		return codefmt.Errorf(p, call, "genrep.Tag already configured")
	}

	c.TagKey = key
	return nil
}

func (p *Parser) ParseOptionRename(c *Config, call *ast.CallExpr) error {
	old, new, err := parseArgs2(p, call)
	if err != nil {
		return err
	}

	if old == "" {
		return codefmt.Errorf(p, call, "old label must not be empty")
	}

	c.Renames = append(c.Renames, [2]string{old, new})
	return nil
}

func (p *Parser) ParseOptionCasesBySample(c *Config, dir *Directive, call *ast.CallExpr) error {
	expr, err := needArgs1(p, call)
	if err != nil {
		return err
	}

	if c.CasesPkg != nil {
		return codefmt.Errorf(p, call, "genrep.CasesBySample already configured")
	}

	if p.IsNil(expr) {
		return codefmt.Errorf(p, expr, "cannot use nil as sample")
	}

	t := typeinfo.TypeOf(p.Pkg().TypesInfo.TypeOf(expr))
	if t.IsInvalid() {
		return codefmt.Errorf(p, expr, "cannot resolve type of %c", expr)
	}

	if dir.Target.IsInterface() && !types.AssertableTo(dir.Target.Interface, t.Type()) {
		return codefmt.Errorf(p, expr, "%t does not implement %t", t, dir.Target)
	}

	pkg := t.Deref().Pkg()
	if pkg == nil {
		return codefmt.Errorf(p, expr, "%t belongs to no package", t)
	}

	c.CasesPkg = pkg
	c.CasesAt = call.Pos()
	return nil
}
