// Package compiler orchestrates the four pipeline stages (lexer, parser,
// interm, asm) behind a single Compiler type.
//
// Grounded on the teacher's compiler.Compiler: a New / SetDebug / Compile
// public surface, with everything else kept an implementation detail. The
// teacher's single Compile() pass is generalized here into four
// independently-stoppable stages (see Stage) since this spec, unlike the
// teacher's, requires exposing a boundary after each one.
package compiler

import (
	"github.com/Moe-/c-compiler/ast"
	"github.com/Moe-/c-compiler/asm"
	"github.com/Moe-/c-compiler/clog"
	"github.com/Moe-/c-compiler/interm"
	"github.com/Moe-/c-compiler/ir"
	"github.com/Moe-/c-compiler/lexer"
	"github.com/Moe-/c-compiler/parser"
	"github.com/Moe-/c-compiler/token"
)

// Stage names an early-stop point in the pipeline.  The CLI flags --lex,
// --parse, --tacky, and --codegen each select one of these; with none
// given, the pipeline runs to completion (StopNever).
type Stage int

// The stages a caller may halt after.
const (
	StopNever Stage = iota
	StopAfterLex
	StopAfterParse
	StopAfterTacky
	StopAfterCodegen
)

// Result holds whichever stage outputs were produced before the pipeline
// stopped, either because StopAfter said so or because it ran to
// completion.  Only the fields up to and including the reached stage are
// populated.
type Result struct {
	Tokens   []token.Token
	AST      *ast.Program
	IR       *ir.Program
	Assembly *asm.Program
	Output   string
}

// Compiler holds the configuration for a single compilation.  Each
// Compiler owns its own ir.Context (allocated fresh inside Compile), so
// compiling two translation units concurrently on two Compiler values
// never shares temporary-name state; see the Design Note on the historical
// global counter.
type Compiler struct {
	source    string
	debug     bool
	stopAfter Stage
	log       *clog.Logger
}

// New creates a Compiler for the given (already-preprocessed) source text.
func New(source string) *Compiler {
	return &Compiler{source: source, stopAfter: StopNever, log: clog.Default(false)}
}

// SetDebug changes whether stage-transition diagnostics are logged.
func (c *Compiler) SetDebug(val bool) {
	c.debug = val
	c.log = clog.Default(val)
}

// SetLogger overrides the destination for stage-transition diagnostics.
func (c *Compiler) SetLogger(l *clog.Logger) {
	c.log = l
}

// SetStopAfter selects the stage to halt after; StopNever runs the full
// pipeline.
func (c *Compiler) SetStopAfter(stage Stage) {
	c.stopAfter = stage
}

// Compile runs the pipeline up to (and including) c.stopAfter, returning
// whichever stage outputs were produced.  The first stage to fail aborts
// the remainder of the pipeline and its error is returned verbatim.
func (c *Compiler) Compile() (*Result, error) {
	res := &Result{}

	tokens, err := lexer.Lex(c.source)
	if err != nil {
		return res, err
	}
	res.Tokens = tokens
	c.log.Debug("lexed %d token(s)", len(tokens))
	if c.stopAfter == StopAfterLex {
		return res, nil
	}

	prog, err := parser.Parse(tokens)
	if err != nil {
		return res, err
	}
	res.AST = prog
	c.log.Debug("parsed function %q", prog.Function.Name)
	if c.stopAfter == StopAfterParse {
		return res, nil
	}

	irProg := interm.Lower(ir.NewContext(), prog)
	res.IR = irProg
	c.log.Debug("lowered to %d IR instruction(s)", len(irProg.Function.Body))
	if c.stopAfter == StopAfterTacky {
		return res, nil
	}

	asmProg := asm.Convert(irProg)
	sm := asm.PseudoToStack(asmProg)
	asm.Fixup(asmProg, sm)
	res.Assembly = asmProg
	c.log.Debug("assigned %d stack slot(s)", sm.Size())
	if c.stopAfter == StopAfterCodegen {
		return res, nil
	}

	out, err := asm.Emit(asmProg)
	if err != nil {
		return res, err
	}
	res.Output = out
	c.log.Debug("emitted %d byte(s) of assembly", len(out))

	return res, nil
}
