// golangcilintgenrep package provides a plugin for golangci-lint to integrate
// the Genrep analyzer. To build a custom golangci-lint binary with this
// plugin, use the following command at this package's directory:
//
//	golangci-lint custom
//
// Now you will have a golangci-lint-genrep binary that you can use to lint
// your Go code with the Genrep analyzer.
package golangcilintgenrep

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/sublee/genrep/pkg/genrepanalysis"
)

func init() {
	register.Plugin("genrep", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return GenrepLinter{}, nil
}

type GenrepLinter struct{}

func (GenrepLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{genrepanalysis.Analyzer}, nil
}

func (GenrepLinter) GetLoadMode() string {
	return register.LoadModeSyntax
}
