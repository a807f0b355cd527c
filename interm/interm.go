// Package interm lowers the source AST (package ast) into the three-address
// IR (package ir): "intermediate generation" in spec terms.
//
// Grounded on the historical Rust implementation's two mutually recursive
// passes (create_intermediate / create_functions): a structural pass that
// walks Program -> Function, and an expression-lowering pass that flattens
// nested unary expressions by binding each one to a fresh temporary.
package interm

import (
	"github.com/Moe-/c-compiler/ast"
	"github.com/Moe-/c-compiler/ir"
)

// Lower converts a source AST into the three-address IR, allocating fresh
// temporaries from ctx in lowering order.
func Lower(ctx *ir.Context, prog *ast.Program) *ir.Program {
	return &ir.Program{Function: lowerFunction(ctx, prog.Function)}
}

func lowerFunction(ctx *ir.Context, fn *ast.Function) *ir.Function {
	body := make([]ir.Instruction, 0, 4)
	lowerReturn(ctx, fn.Body, &body)
	return &ir.Function{Name: fn.Name, Body: body}
}

// lowerReturn appends the instructions needed to compute ret.Value, then
// the trailing ir.Return itself, to body.
func lowerReturn(ctx *ir.Context, ret *ast.Return, body *[]ir.Instruction) {
	operand := lowerExpr(ctx, ret.Value, body)
	*body = append(*body, &ir.Return{Value: operand})
}

// lowerExpr lowers a single expression to an operand usable directly as an
// instruction source, appending whatever instructions were needed to
// compute it to body.  Exactly one fresh temporary is allocated per
// non-constant unary node.
func lowerExpr(ctx *ir.Context, e ast.Expr, body *[]ir.Instruction) ir.Operand {
	switch n := e.(type) {
	case *ast.Constant:
		return &ir.Constant{Value: n.Value}

	case *ast.Unary:
		src := lowerExpr(ctx, n.Operand, body)
		dst := ctx.Fresh()

		switch n.Op {
		case ast.Negate:
			*body = append(*body, &ir.Negate{Src: src, Dst: dst})
		case ast.Complement:
			*body = append(*body, &ir.Complement{Src: src, Dst: dst})
		}
		return dst

	default:
		// Unreachable: ast.Expr has exactly these two implementations.
		panic("interm: unhandled ast.Expr implementation")
	}
}
