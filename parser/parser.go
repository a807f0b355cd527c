// Package parser is a recursive-descent parser over the token stream
// produced by lexer.Lex, building the source AST defined in package ast.
//
//	program  := function EOF
//	function := "int" Identifier "(" "void" ")" "{" statement "}"
//	statement:= "return" exp ";"
//	exp      := Constant-tok
//	          | unop exp
//	          | "(" exp ")"
//	unop     := "-" | "~"
package parser

import (
	"math"
	"strconv"

	"github.com/Moe-/c-compiler/ast"
	"github.com/Moe-/c-compiler/cerrors"
	"github.com/Moe-/c-compiler/token"
)

// parser holds the remaining, not-yet-consumed token stream.
type parser struct {
	tokens []token.Token
}

// Parse consumes tokens front-to-back and returns the source AST rooted at
// ast.Program.  Any token left over once the top-level function has been
// parsed is a TrailingInput error.
func Parse(tokens []token.Token) (*ast.Program, error) {
	p := &parser{tokens: tokens}

	fn, err := p.function()
	if err != nil {
		return nil, err
	}
	if len(p.tokens) > 0 {
		return nil, cerrors.New(cerrors.TrailingInput,
			"%d token(s) remain after the top-level function", len(p.tokens))
	}

	return &ast.Program{Function: fn}, nil
}

// peekKind reports the Kind of the next unconsumed token, or "" if the
// stream is exhausted.
func (p *parser) peekKind() token.Kind {
	if len(p.tokens) == 0 {
		return ""
	}
	return p.tokens[0].Kind
}

// pop removes and returns the next token, failing with MissingToken if the
// stream is already exhausted.
func (p *parser) pop(expected token.Kind) (token.Token, error) {
	if len(p.tokens) == 0 {
		return token.Token{}, cerrors.New(cerrors.MissingToken,
			"expected %s but the token stream was exhausted", expected)
	}
	tok := p.tokens[0]
	p.tokens = p.tokens[1:]
	return tok, nil
}

// expect pops the next token and verifies it has the given Kind.
func (p *parser) expect(expected token.Kind) (token.Token, error) {
	tok, err := p.pop(expected)
	if err != nil {
		return token.Token{}, err
	}
	if tok.Kind != expected {
		return token.Token{}, cerrors.New(cerrors.BadToken,
			"expected %s but found %s", expected, tok.Kind)
	}
	return tok, nil
}

func (p *parser) function() (*ast.Function, error) {
	if _, err := p.expect(token.IntKeyword); err != nil {
		return nil, err
	}
	name, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.OpenParen); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.VoidKeyword); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.CloseParen); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.OpenBrace); err != nil {
		return nil, err
	}
	stmt, err := p.statement()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.CloseBrace); err != nil {
		return nil, err
	}

	return &ast.Function{Name: name.Data, Body: stmt}, nil
}

func (p *parser) statement() (*ast.Return, error) {
	if _, err := p.expect(token.ReturnKeyword); err != nil {
		return nil, err
	}
	e, err := p.exp()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return &ast.Return{Value: e}, nil
}

func (p *parser) exp() (ast.Expr, error) {
	switch p.peekKind() {
	case token.Constant:
		return p.constant()

	case token.Hyphen:
		if _, err := p.pop(token.Hyphen); err != nil {
			return nil, err
		}
		operand, err := p.exp()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: ast.Negate, Operand: operand}, nil

	case token.Tilde:
		if _, err := p.pop(token.Tilde); err != nil {
			return nil, err
		}
		operand, err := p.exp()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: ast.Complement, Operand: operand}, nil

	case token.OpenParen:
		if _, err := p.pop(token.OpenParen); err != nil {
			return nil, err
		}
		inner, err := p.exp()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.CloseParen); err != nil {
			return nil, err
		}
		return inner, nil

	default:
		found := p.peekKind()
		if found == "" {
			return nil, cerrors.New(cerrors.MissingToken,
				"expected an expression but the token stream was exhausted")
		}
		return nil, cerrors.New(cerrors.UnknownExpression,
			"token %s does not start an expression", found)
	}
}

func (p *parser) constant() (*ast.Constant, error) {
	tok, err := p.expect(token.Constant)
	if err != nil {
		return nil, err
	}
	n, err := strconv.ParseInt(tok.Data, 10, 64)
	if err != nil || n < math.MinInt32 || n > math.MaxInt32 {
		return nil, cerrors.New(cerrors.BadIntegerLiteral,
			"%q does not fit in a 32-bit signed integer", tok.Data)
	}
	return &ast.Constant{Value: int32(n)}, nil
}
