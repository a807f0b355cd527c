// Package token contains the closed set of token kinds the lexer can
// produce, and the regular expression each kind is matched against.
package token

import "regexp"

// Kind identifies the tag of a single token.
type Kind string

// The closed set of token kinds the lexer ever produces.
const (
	Identifier    Kind = "Identifier"
	Constant      Kind = "Constant"
	IntKeyword    Kind = "IntKeyword"
	VoidKeyword   Kind = "VoidKeyword"
	ReturnKeyword Kind = "ReturnKeyword"
	OpenParen     Kind = "OpenParen"
	CloseParen    Kind = "CloseParen"
	OpenBrace     Kind = "OpenBrace"
	CloseBrace    Kind = "CloseBrace"
	Semicolon     Kind = "Semicolon"
	Tilde         Kind = "Tilde"
	Hyphen        Kind = "Hyphen"
	TwoHyphens    Kind = "TwoHyphens"
)

// Token is a single lexed unit: a Kind, plus the matched lexeme when the
// Kind is Identifier or Constant. Data is empty for every other kind.
type Token struct {
	Kind Kind
	Data string
}

// HasData reports whether this Kind carries a lexeme payload.
func HasData(k Kind) bool {
	return k == Identifier || k == Constant
}

// Pattern is one token kind's anchored, pre-compiled regular expression.
type Pattern struct {
	Kind   Kind
	Static bool
	Regexp *regexp.Regexp
}

var patterns = buildPatterns()

// Patterns returns the full list of token patterns, each compiled exactly
// once per process (not freshly per lexer call - see the Design Note on
// the historical implementation's per-call regex construction).
func Patterns() []Pattern {
	return patterns
}

func buildPatterns() []Pattern {
	raw := []struct {
		kind Kind
		expr string
	}{
		{Identifier, `[A-Za-z_]\w*\b`},
		{Constant, `[0-9]+\b`},
		{IntKeyword, `int\b`},
		{VoidKeyword, `void\b`},
		{ReturnKeyword, `return\b`},
		{OpenParen, `\(`},
		{CloseParen, `\)`},
		{OpenBrace, `\{`},
		{CloseBrace, `\}`},
		{Semicolon, `;`},
		{Tilde, `~`},
		{Hyphen, `-`},
		{TwoHyphens, `--`},
	}

	out := make([]Pattern, 0, len(raw))
	for _, r := range raw {
		out = append(out, Pattern{
			Kind:   r.kind,
			Static: !HasData(r.kind),
			Regexp: regexp.MustCompile(`\A(?:` + r.expr + `)`),
		})
	}
	return out
}
