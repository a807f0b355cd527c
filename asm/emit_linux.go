//go:build linux

package asm

// gnuStackNote marks the stack non-executable.  The external assembler
// adds it implicitly on most platforms, but we emit it ourselves to match
// the reference toolchain's output exactly; see the Design Note on this
// being the core's only OS-conditional behavior.
const gnuStackNote = "    .section .note.GNU-stack,\"\",@progbits\n"
