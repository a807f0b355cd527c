package compiler

import (
	"strings"
	"testing"

	"github.com/Moe-/c-compiler/cerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// We try to compile several bogus programs and check the failure lands in
// the stage and Kind we expect.
func TestBogusInput(t *testing.T) {

	tests := []struct {
		name   string
		source string
		kind   cerrors.Kind
	}{
		{"empty program", "", cerrors.MissingToken},
		{"bad token", "int main(void) { return 3 $; }", cerrors.BadToken},
		{"two hyphens is not a unary operator", "int main(void) { return --1; }", cerrors.UnknownExpression},
		{"trailing input", "int main(void) { return 2; } extra", cerrors.TrailingInput},
		{"overflowing literal", "int main(void) { return 99999999999; }", cerrors.BadIntegerLiteral},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := New(test.source)
			_, err := c.Compile()
			require.Error(t, err)
			assert.Equal(t, test.kind, cerrors.KindOf(err))
		})
	}
}

// Test some valid programs compile all the way to assembly text.
func TestValidPrograms(t *testing.T) {

	tests := []string{
		"int main(void) { return 2; }",
		"int main(void) { return -2; }",
		"int main(void) { return ~(-2); }",
		"int main(void) { return ~~~5; }",
		"int main(void) { return (((-(~1))));}",
	}

	for _, test := range tests {
		c := New(test)

		res, err := c.Compile()
		require.NoError(t, err)
		assert.NotEmpty(t, res.Tokens)
		assert.NotNil(t, res.AST)
		assert.NotNil(t, res.IR)
		assert.NotNil(t, res.Assembly)
		assert.NotEmpty(t, res.Output)
	}
}

// Test actually outputting some valid programs.
//
// This test covers the full range: lex, parse, lower, codegen, emit.
// It doesn't compare against a golden file — that would be a pain to keep
// in sync — so it just checks rough shape.
func TestValidOutput(t *testing.T) {

	tests := []string{
		"int main(void) { return 2; }",
		"int main(void) { return -2; }",
		"int main(void) { return ~(-2); }",
	}

	for _, test := range tests {
		c := New(test)

		res, err := c.Compile()
		require.NoError(t, err)

		if !strings.Contains(res.Output, "main") {
			t.Errorf("generated assembly for %q looked bogus, missing a main label", test)
		}
		if !strings.Contains(res.Output, "ret") {
			t.Errorf("generated assembly for %q looked bogus, missing a ret", test)
		}
	}
}

// StopAfter halts the pipeline at the requested stage and leaves later
// Result fields at their zero value.
func TestStopAfterHaltsPipeline(t *testing.T) {
	c := New("int main(void) { return ~2; }")
	c.SetStopAfter(StopAfterTacky)

	res, err := c.Compile()
	require.NoError(t, err)

	assert.NotEmpty(t, res.Tokens)
	assert.NotNil(t, res.AST)
	assert.NotNil(t, res.IR)
	assert.Nil(t, res.Assembly)
	assert.Empty(t, res.Output)
}
