package codefmt

import (
	"fmt"
	"go/token"
	"go/types"
	"iter"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NS tracks the identifiers already claimed in one scope of generated code.
type NS map[string]struct{}

// NewNS creates a namespace seeded with every name declared in scope, so
// generated identifiers never shadow package-level declarations.
func NewNS(scope *types.Scope) NS {
	ns := make(NS, scope.Len())
	for _, name := range scope.Names() {
		ns.Reserve(name)
	}
	return ns
}

// Reserve claims a name. It returns false if the name was already taken.
func (ns NS) Reserve(name string) bool {
	if _, ok := ns[name]; ok {
		return false
	}
	ns[name] = struct{}{}
	return true
}

// Name normalizes name into an identifier, claims it, and returns it. A taken
// name gets a numbering suffix. A nil namespace normalizes without claiming.
//
// Panics if the name is empty.
func (ns NS) Name(name string) string {
	name = NormalizeName(name)
	if token.Lookup(name).IsKeyword() {
		// "type" cannot appear as an identifier in generated code.
		name += "_"
	}
	if ns == nil {
		return name
	}
	for name := range DisambiguateName(name) {
		if ns.Reserve(name) {
			return name
		}
	}
	panic("unreachable")
}

var titleCaser = cases.Title(language.English)

// NormalizeName strips the runes an identifier cannot contain and camel-joins
// the remaining chunks. The first chunk keeps its case, so exported stays
// exported and unexported stays unexported.
func NormalizeName(name string) string {
	if name == "" {
		panic("empty name")
	}

	isIdentRune := func(r rune) bool {
		return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9' || r == '_'
	}

	chunks := strings.FieldsFunc(name, func(r rune) bool { return !isIdentRune(r) })
	for i := 1; i < len(chunks); i++ {
		chunks[i] = titleCaser.String(chunks[i])
	}
	return strings.Join(chunks, "")
}

// DisambiguateName yields name itself, then numbered variants of it.
func DisambiguateName(name string) iter.Seq[string] {
	if name == "" {
		panic("empty name")
	}

	// "answer42" numbers as "answer42_2", not "answer422".
	sep := ""
	if last := name[len(name)-1]; '0' <= last && last <= '9' {
		sep = "_"
	}

	return func(yield func(string) bool) {
		if !yield(name) {
			return
		}
		for i := 2; ; i++ {
			if !yield(fmt.Sprintf("%s%s%d", name, sep, i)) {
				return
			}
		}
	}
}
