package asm

import (
	"fmt"
	"strings"

	"github.com/Moe-/c-compiler/cerrors"
)

// Emit serializes prog to AT&T-syntax x86-64 assembly text, after Convert,
// PseudoToStack, and Fixup have all run.
func Emit(prog *Program) (string, error) {
	fn, err := emitFunction(prog.Function)
	if err != nil {
		return "", err
	}
	return fn + gnuStackNote, nil
}

func emitFunction(fn *Function) (string, error) {
	var body strings.Builder
	for _, instr := range fn.Body {
		text, err := emitInstruction(instr)
		if err != nil {
			return "", err
		}
		body.WriteString(text)
	}

	return fmt.Sprintf("    .globl %s\n%s:\n    pushq %%rbp\n    movq %%rsp, %%rbp\n%s",
		fn.Name, fn.Name, body.String()), nil
}

func emitInstruction(instr Instruction) (string, error) {
	switch n := instr.(type) {
	case *Mov:
		src, err := emitOperand(n.Src)
		if err != nil {
			return "", err
		}
		dst, err := emitOperand(n.Dst)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("    movl %s, %s\n", src, dst), nil

	case *Neg:
		operand, err := emitOperand(n.Operand)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("    negl %s\n", operand), nil

	case *Not:
		operand, err := emitOperand(n.Operand)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("    notl %s\n", operand), nil

	case *Ret:
		return "    movq %rbp, %rsp\n    popq %rbp\n    ret\n", nil

	case *AllocateStack:
		return fmt.Sprintf("    subq $%d, %%rsp\n", n.Size), nil

	default:
		return "", cerrors.New(cerrors.UnexpectedAsmShape,
			"instruction %T has no emission rule", instr)
	}
}

func emitOperand(op Operand) (string, error) {
	switch n := op.(type) {
	case *Imm:
		return fmt.Sprintf("$%d", n.Value), nil

	case *Register:
		switch n.Name {
		case AX:
			return "%eax", nil
		case R10:
			return "%r10d", nil
		}
		return "", cerrors.New(cerrors.UnexpectedAsmShape, "unknown register %d", n.Name)

	case *Stack:
		return fmt.Sprintf("%d(%%rbp)", n.Offset), nil

	case *Pseudo:
		// Reachable only if Emit runs before PseudoToStack - a pipeline
		// ordering bug, not a malformed program.
		return "", cerrors.New(cerrors.StackTooEarly,
			"pseudo-temporary %q reached the emitter unresolved", n.Name)

	default:
		return "", cerrors.New(cerrors.UnexpectedAsmShape,
			"operand %T has no emission rule", op)
	}
}
