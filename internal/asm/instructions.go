package asm

import "fmt"

// Instruction is a three-address operation over virtual registers. The
// register file is unbounded; x0 always holds zero.
type Instruction interface {
	instruction()
	String() string
}

// Addi: rd := rs + imm
type Addi struct {
	Rd, Rs string
	Imm    int64
}

func (i Addi) instruction()   {}
func (i Addi) String() string { return fmt.Sprintf("addi %s, %s, %d", i.Rd, i.Rs, i.Imm) }

// Add: rd := rs + rt
type Add struct {
	Rd, Rs, Rt string
}

func (i Add) instruction()   {}
func (i Add) String() string { return fmt.Sprintf("add %s, %s, %s", i.Rd, i.Rs, i.Rt) }

// Sub: rd := rs - rt
type Sub struct {
	Rd, Rs, Rt string
}

func (i Sub) instruction()   {}
func (i Sub) String() string { return fmt.Sprintf("sub %s, %s, %s", i.Rd, i.Rs, i.Rt) }

// Mul: rd := rs * rt
type Mul struct {
	Rd, Rs, Rt string
}

func (i Mul) instruction()   {}
func (i Mul) String() string { return fmt.Sprintf("mul %s, %s, %s", i.Rd, i.Rs, i.Rt) }

// Div: rd := rs / rt (integer quotient)
type Div struct {
	Rd, Rs, Rt string
}

func (i Div) instruction()   {}
func (i Div) String() string { return fmt.Sprintf("div %s, %s, %s", i.Rd, i.Rs, i.Rt) }

// Slt: rd := (rs < rt) ? 1 : 0
type Slt struct {
	Rd, Rs, Rt string
}

func (i Slt) instruction()   {}
func (i Slt) String() string { return fmt.Sprintf("slt %s, %s, %s", i.Rd, i.Rs, i.Rt) }

// Slti: rd := (rs < imm) ? 1 : 0
type Slti struct {
	Rd, Rs string
	Imm    int64
}

func (i Slti) instruction()   {}
func (i Slti) String() string { return fmt.Sprintf("slti %s, %s, %d", i.Rd, i.Rs, i.Imm) }

// Xor: rd := rs ^ rt
type Xor struct {
	Rd, Rs, Rt string
}

func (i Xor) instruction()   {}
func (i Xor) String() string { return fmt.Sprintf("xor %s, %s, %s", i.Rd, i.Rs, i.Rt) }
