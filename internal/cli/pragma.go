package cli

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/ailang-lang/ailang/internal/frontend"
	"github.com/ailang-lang/ailang/internal/lexer"
)

// versionPragma is the TAG comment that pins a source file to a language
// version range, e.g. //TAG: requires-ailang >=0.4.
const versionPragma = "requires-ailang"

// checkPragmas validates version pragmas in a token stream against the
// language version this front end implements.
func checkPragmas(tokens []lexer.Token) []lexer.Diagnostic {
	current, err := semver.NewVersion(frontend.LanguageVersion)
	if err != nil {
		panic(fmt.Sprintf("bad built-in language version %q: %v", frontend.LanguageVersion, err))
	}

	var diags []lexer.Diagnostic
	for _, tok := range tokens {
		if tok.Type != lexer.TokenTagComment {
			continue
		}
		name, rest, found := strings.Cut(tok.Literal, " ")
		if name != versionPragma {
			continue
		}
		if !found || strings.TrimSpace(rest) == "" {
			diags = append(diags, lexer.Diagnostic{
				Line:     tok.Pos.Line,
				Column:   tok.Pos.Column,
				Message:  fmt.Sprintf("%s pragma is missing a version constraint", versionPragma),
				Severity: lexer.SeverityError,
			})
			continue
		}
		constraint, err := semver.NewConstraint(strings.TrimSpace(rest))
		if err != nil {
			diags = append(diags, lexer.Diagnostic{
				Line:     tok.Pos.Line,
				Column:   tok.Pos.Column,
				Message:  fmt.Sprintf("Invalid version constraint %q: %v", strings.TrimSpace(rest), err),
				Severity: lexer.SeverityError,
			})
			continue
		}
		if !constraint.Check(current) {
			diags = append(diags, lexer.Diagnostic{
				Line:     tok.Pos.Line,
				Column:   tok.Pos.Column,
				Message:  fmt.Sprintf("File requires AILang %s but this front end implements %s", strings.TrimSpace(rest), frontend.LanguageVersion),
				Severity: lexer.SeverityError,
			})
		}
	}
	return diags
}
