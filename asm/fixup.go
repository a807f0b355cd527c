package asm

// Fixup prepends the function's stack-allocation prologue and splits any
// illegal memory-to-memory Mov into two instructions via the R10 scratch
// register.
//
// It is guarded against double invocation (see the Design Note on the
// historical implementation's non-idempotent AllocateStack prepending): if
// the body already begins with an AllocateStack, Fixup does nothing.
func Fixup(prog *Program, sm *StackMap) {
	fn := prog.Function

	if len(fn.Body) > 0 {
		if _, already := fn.Body[0].(*AllocateStack); already {
			return
		}
	}

	frame := int64(sm.Size()) * 4
	body := make([]Instruction, 0, len(fn.Body)+1+len(fn.Body))
	body = append(body, &AllocateStack{Size: frame})

	for i := 0; i < len(fn.Body); i++ {
		instr := fn.Body[i]

		mov, ok := instr.(*Mov)
		if !ok {
			body = append(body, instr)
			continue
		}

		srcStack, srcIsStack := mov.Src.(*Stack)
		dstStack, dstIsStack := mov.Dst.(*Stack)
		if !srcIsStack || !dstIsStack {
			body = append(body, instr)
			continue
		}

		scratch := &Register{Name: R10}
		body = append(body,
			&Mov{Src: srcStack, Dst: scratch},
			&Mov{Src: scratch, Dst: dstStack},
		)
	}

	fn.Body = body
}
