package asm

// PseudoToStack replaces every Pseudo operand in prog's function body with
// a Stack operand, assigning each distinct temporary name a unique,
// first-use-ordered offset.  It mutates the instructions in place.
//
// This pass is naturally idempotent: a Stack operand it finds already in
// place (e.g. because it is run on its own output a second time) is left
// untouched, so re-running it is a documented no-op rather than an error.
func PseudoToStack(prog *Program) *StackMap {
	sm := NewStackMap()
	for _, instr := range prog.Function.Body {
		rewriteInstruction(instr, sm)
	}
	return sm
}

func rewriteInstruction(instr Instruction, sm *StackMap) {
	switch n := instr.(type) {
	case *Mov:
		n.Src = resolve(n.Src, sm)
		n.Dst = resolve(n.Dst, sm)
	case *Neg:
		n.Operand = resolve(n.Operand, sm)
	case *Not:
		n.Operand = resolve(n.Operand, sm)
	case *Ret, *AllocateStack:
		// No operands to rewrite.
	}
}

// resolve replaces a Pseudo with its assigned Stack slot.  Any other
// operand (including a Stack left over from a prior run) passes through
// unchanged.
func resolve(op Operand, sm *StackMap) Operand {
	if p, ok := op.(*Pseudo); ok {
		return &Stack{Offset: sm.Offset(p.Name)}
	}
	return op
}
