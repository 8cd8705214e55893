package asm

import (
	"strings"

	"github.com/google/uuid"
)

// Program is the instruction sink the code generator appends into. It is
// a plain ordered list; how it is serialized (listing, file, database)
// is the caller's concern.
type Program struct {
	ID    uuid.UUID
	Insts []Instruction
}

func NewProgram() *Program {
	return &Program{ID: uuid.New()}
}

// Append adds one instruction to the end of the program.
func (p *Program) Append(inst Instruction) {
	p.Insts = append(p.Insts, inst)
}

func (p *Program) Len() int {
	return len(p.Insts)
}

// String renders the assembler listing, one instruction per line.
func (p *Program) String() string {
	var sb strings.Builder
	for _, inst := range p.Insts {
		sb.WriteString(inst.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
