//go:build !linux

package asm

// gnuStackNote is empty on non-Linux targets: the GNU-stack note section is
// a Linux/ELF convention, and this is the core's only OS-conditional
// behavior (see the Design Note on the historical implementation's runtime
// platform check).
const gnuStackNote = ""
