package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Moe-/c-compiler/ir"
)

func compileIR(fn *ir.Function) *Program {
	return Convert(&ir.Program{Function: fn})
}

func TestConvertReturnConstant(t *testing.T) {
	prog := compileIR(&ir.Function{
		Name: "main",
		Body: []ir.Instruction{&ir.Return{Value: &ir.Constant{Value: 2}}},
	})

	require.Len(t, prog.Function.Body, 2)
	mov, ok := prog.Function.Body[0].(*Mov)
	require.True(t, ok)
	assert.Equal(t, &Imm{Value: 2}, mov.Src)
	assert.Equal(t, &Register{Name: AX}, mov.Dst)

	_, ok = prog.Function.Body[1].(*Ret)
	assert.True(t, ok)
}

func TestPseudoToStackAssignsSequentialOffsets(t *testing.T) {
	prog := compileIR(&ir.Function{
		Name: "main",
		Body: []ir.Instruction{
			&ir.Negate{Src: &ir.Constant{Value: 2}, Dst: &ir.Var{Name: "temp.1"}},
			&ir.Complement{Src: &ir.Var{Name: "temp.1"}, Dst: &ir.Var{Name: "temp.2"}},
			&ir.Return{Value: &ir.Var{Name: "temp.2"}},
		},
	})

	sm := PseudoToStack(prog)
	assert.Equal(t, 2, sm.Size())
	assert.Equal(t, int64(-4), sm.Offset("temp.1"))
	assert.Equal(t, int64(-8), sm.Offset("temp.2"))

	for _, instr := range prog.Function.Body {
		walkOperands(t, instr, func(op Operand) {
			_, isPseudo := op.(*Pseudo)
			assert.False(t, isPseudo, "no Pseudo should remain")
		})
	}
}

func TestPseudoToStackIsIdempotent(t *testing.T) {
	prog := compileIR(&ir.Function{
		Name: "main",
		Body: []ir.Instruction{
			&ir.Negate{Src: &ir.Constant{Value: 2}, Dst: &ir.Var{Name: "temp.1"}},
			&ir.Return{Value: &ir.Var{Name: "temp.1"}},
		},
	})

	first := PseudoToStack(prog)
	require.Equal(t, 1, first.Size())

	second := PseudoToStack(prog)
	assert.Equal(t, 0, second.Size(), "re-running should find nothing left to assign")

	mov := prog.Function.Body[0].(*Mov)
	assert.Equal(t, &Stack{Offset: -4}, mov.Dst)
}

func TestFixupSplitsStackToStackMov(t *testing.T) {
	prog := compileIR(&ir.Function{
		Name: "main",
		Body: []ir.Instruction{
			&ir.Negate{Src: &ir.Constant{Value: 2}, Dst: &ir.Var{Name: "temp.1"}},
			&ir.Complement{Src: &ir.Var{Name: "temp.1"}, Dst: &ir.Var{Name: "temp.2"}},
			&ir.Return{Value: &ir.Var{Name: "temp.2"}},
		},
	})

	sm := PseudoToStack(prog)
	Fixup(prog, sm)

	alloc, ok := prog.Function.Body[0].(*AllocateStack)
	require.True(t, ok)
	assert.EqualValues(t, 8, alloc.Size)

	for _, instr := range prog.Function.Body {
		if mov, ok := instr.(*Mov); ok {
			_, srcStack := mov.Src.(*Stack)
			_, dstStack := mov.Dst.(*Stack)
			assert.False(t, srcStack && dstStack, "no Mov should have both operands on the stack")
		}
	}
}

func TestFixupFrameSizeIsZeroWithNoTemporaries(t *testing.T) {
	prog := compileIR(&ir.Function{
		Name: "main",
		Body: []ir.Instruction{&ir.Return{Value: &ir.Constant{Value: 2}}},
	})

	sm := PseudoToStack(prog)
	Fixup(prog, sm)

	alloc := prog.Function.Body[0].(*AllocateStack)
	assert.EqualValues(t, 0, alloc.Size)
}

func TestFixupIsGuardedAgainstDoubleInvocation(t *testing.T) {
	prog := compileIR(&ir.Function{
		Name: "main",
		Body: []ir.Instruction{
			&ir.Negate{Src: &ir.Constant{Value: 2}, Dst: &ir.Var{Name: "temp.1"}},
			&ir.Return{Value: &ir.Var{Name: "temp.1"}},
		},
	})

	sm := PseudoToStack(prog)
	Fixup(prog, sm)
	firstLen := len(prog.Function.Body)

	Fixup(prog, sm)
	assert.Len(t, prog.Function.Body, firstLen, "a second Fixup must not prepend another AllocateStack")
}

func TestEmitProducesScenarioTwoAssembly(t *testing.T) {
	prog := compileIR(&ir.Function{
		Name: "main",
		Body: []ir.Instruction{
			&ir.Negate{Src: &ir.Constant{Value: 2}, Dst: &ir.Var{Name: "temp.1"}},
			&ir.Return{Value: &ir.Var{Name: "temp.1"}},
		},
	})

	sm := PseudoToStack(prog)
	Fixup(prog, sm)

	out, err := Emit(prog)
	require.NoError(t, err)

	assert.Contains(t, out, "subq $4, %rsp")
	assert.Contains(t, out, "movl $2, -4(%rbp)")
	assert.Contains(t, out, "negl -4(%rbp)")
	assert.Contains(t, out, "movl -4(%rbp), %eax")
	assert.Contains(t, out, "popq %rbp")
}

func walkOperands(t *testing.T, instr Instruction, f func(Operand)) {
	t.Helper()
	switch n := instr.(type) {
	case *Mov:
		f(n.Src)
		f(n.Dst)
	case *Neg:
		f(n.Operand)
	case *Not:
		f(n.Operand)
	}
}
