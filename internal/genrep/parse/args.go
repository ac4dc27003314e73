package parse

import (
	"errors"
	"go/ast"
	"go/constant"

	"github.com/sublee/genrep/internal/codefmt"
)

func parseStringArg(p *Parser, expr ast.Expr) (string, error) {
	tv := p.Pkg().TypesInfo.Types[expr]
	if tv.Value == nil || tv.Value.Kind() != constant.String {
		return "", codefmt.Errorf(p, expr, "%c is not string constant", expr)
	}
	return constant.StringVal(tv.Value), nil
}

func parseArgs2(p *Parser, call *ast.CallExpr) (string, string, error) {
	expr1, expr2, err := needArgs2(p, call)
	if err != nil {
		return "", "", err
	}

	var errs error

	v1, err := parseStringArg(p, expr1)
	errs = errors.Join(errs, err)

	v2, err := parseStringArg(p, expr2)
	errs = errors.Join(errs, err)

	return v1, v2, errs
}

func needArgs1(p *Parser, call *ast.CallExpr) (ast.Expr, error) {
	if len(call.Args) != 1 {
		return nil, codefmt.Errorf(p, call, "need 1 parameter")
	}
	return call.Args[0], nil
}

func needArgs2(p *Parser, call *ast.CallExpr) (ast.Expr, ast.Expr, error) {
	if len(call.Args) != 2 {
		return nil, nil, codefmt.Errorf(p, call, "need 2 parameters")
	}
	return call.Args[0], call.Args[1], nil
}
