// Package lexer turns preprocessed C source text into an ordered token
// stream, via longest-match regular expression scanning with a fixed
// disambiguation policy (see Lex).
package lexer

import (
	"regexp"

	"github.com/Moe-/c-compiler/cerrors"
	"github.com/Moe-/c-compiler/token"
)

var whitespace = regexp.MustCompile(`\A\s+`)

// Lex tokenizes the entirety of src, in source order.  It fails with a
// cerrors.BadToken error at the first position where no token pattern
// matches.
func Lex(src string) ([]token.Token, error) {
	patterns := token.Patterns()
	tokens := make([]token.Token, 0)

	for len(src) > 0 {
		if m := whitespace.FindString(src); m != "" {
			src = src[len(m):]
			continue
		}

		tok, rest, err := next(src, patterns)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		src = rest
	}

	return tokens, nil
}

// candidate is a single pattern's match against the remaining input,
// carried alongside the fields disambiguate needs to break ties.
type candidate struct {
	kind   token.Kind
	static bool
	text   string
}

// next finds and returns the single best-matching token starting at
// position 0 of src, alongside the remainder of src after consuming it.
func next(src string, patterns []token.Pattern) (token.Token, string, error) {
	var candidates []candidate

	for _, p := range patterns {
		if m := p.Regexp.FindString(src); m != "" {
			candidates = append(candidates, candidate{kind: p.Kind, static: p.Static, text: m})
		}
	}

	if len(candidates) == 0 {
		return token.Token{}, "", cerrors.New(cerrors.BadToken,
			"no token pattern matches %q", preview(src))
	}

	best := disambiguate(candidates)

	tok := token.Token{Kind: best.kind}
	if token.HasData(best.kind) {
		tok.Data = best.text
	}
	return tok, src[len(best.text):], nil
}

// disambiguate picks the winning candidate among those that matched at the
// same starting position.  Candidates are compared on (len + 1 if static
// else len): the longer match wins outright, and a tie between a static
// (keyword/punctuation) candidate and a dynamic (Identifier/Constant)
// candidate is broken in favor of the static one.  This makes "int" win
// against Identifier, and "--" win against a lone Hyphen, without an
// explicit keyword table consulted ahead of lexing.
func disambiguate(candidates []candidate) candidate {
	best := candidates[0]
	bestWeight := weight(best)

	for _, c := range candidates[1:] {
		if w := weight(c); w > bestWeight {
			best = c
			bestWeight = w
		}
	}
	return best
}

func weight(c candidate) int {
	w := len(c.text)
	if c.static {
		w++
	}
	return w
}

// preview trims the offending input to a short, readable prefix for error
// messages.
func preview(src string) string {
	const max = 20
	if len(src) <= max {
		return src
	}
	return src[:max] + "..."
}
