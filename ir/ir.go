// Package ir defines the three-address intermediate form that package
// interm lowers the source AST into: a Program wrapping one Function, whose
// body is a straight-line sequence of instructions over constants and
// named temporaries.
package ir

import "fmt"

// Operand is either a Constant or a Var: anything usable directly as the
// source of an instruction.
type Operand interface {
	operand()
}

// Constant is an immediate integer value.
type Constant struct {
	Value int32
}

// Var names a temporary, e.g. "temp.1".
type Var struct {
	Name string
}

func (*Constant) operand() {}
func (*Var) operand()      {}

// Instruction is one of Return, Negate, or Complement - the only three
// instruction shapes an IR function body ever contains.
type Instruction interface {
	instruction()
}

// Return yields Value as the function's result.
type Return struct {
	Value Operand
}

// Negate computes -Src and stores it in Dst.
type Negate struct {
	Src Operand
	Dst *Var
}

// Complement computes ~Src and stores it in Dst.
type Complement struct {
	Src Operand
	Dst *Var
}

func (*Return) instruction()     {}
func (*Negate) instruction()     {}
func (*Complement) instruction() {}

// Function is a single function's lowered body.
type Function struct {
	Name string
	Body []Instruction
}

// Program is the root of the lowered form: exactly one Function.
type Program struct {
	Function *Function
}

// Context supplies fresh temporary names for a single compilation.  It is
// deliberately not package-level mutable state (per the Design Note on the
// historical "static mut TEMPORARY_COUNT"): a caller compiling two
// translation units concurrently, each with its own *Context, never shares
// a counter between them.
type Context struct {
	counter uint32
}

// NewContext returns a Context whose first Fresh() call yields "temp.1".
func NewContext() *Context {
	return &Context{}
}

// Fresh allocates and returns the next temporary in allocation order.
func (c *Context) Fresh() *Var {
	c.counter++
	return &Var{Name: fmt.Sprintf("temp.%d", c.counter)}
}
