package asm

import "github.com/Moe-/c-compiler/ir"

// Convert lowers the three-address IR into the assembly IR.  Every
// instruction that the IR represents as a single three-address op becomes
// a short instruction sequence here (see genInstruction); sequences are
// flattened into their enclosing Function body rather than nested.
func Convert(prog *ir.Program) *Program {
	return &Program{Function: convertFunction(prog.Function)}
}

func convertFunction(fn *ir.Function) *Function {
	body := make([]Instruction, 0, len(fn.Body)*2)
	for _, instr := range fn.Body {
		body = append(body, genInstruction(instr)...)
	}
	return &Function{Name: fn.Name, Body: body}
}

// genInstruction lowers one IR instruction to the (possibly multi-op)
// assembly sequence that implements it.
func genInstruction(instr ir.Instruction) []Instruction {
	switch n := instr.(type) {
	case *ir.Return:
		return []Instruction{
			&Mov{Src: convertOperand(n.Value), Dst: &Register{Name: AX}},
			&Ret{},
		}

	case *ir.Negate:
		dst := convertOperand(n.Dst)
		return []Instruction{
			&Mov{Src: convertOperand(n.Src), Dst: dst},
			&Neg{Operand: dst},
		}

	case *ir.Complement:
		dst := convertOperand(n.Dst)
		return []Instruction{
			&Mov{Src: convertOperand(n.Src), Dst: dst},
			&Not{Operand: dst},
		}

	default:
		// Unreachable: ir.Instruction has exactly these three
		// implementations.
		panic("asm: unhandled ir.Instruction implementation")
	}
}

func convertOperand(op ir.Operand) Operand {
	switch n := op.(type) {
	case *ir.Constant:
		return &Imm{Value: n.Value}
	case *ir.Var:
		return &Pseudo{Name: n.Name}
	default:
		// Unreachable: ir.Operand has exactly these two implementations.
		panic("asm: unhandled ir.Operand implementation")
	}
}
