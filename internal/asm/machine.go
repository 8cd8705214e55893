package asm

import (
	"fmt"

	"github.com/funvibe/minml/internal/config"
)

// Machine is a reference executor for straight-line programs: an
// unbounded register file and nothing else. It models the abstract
// target, not real hardware — in particular the quotient rounds toward
// negative infinity, matching the source language.
type Machine struct {
	regs map[string]int64
}

func NewMachine() *Machine {
	return &Machine{regs: make(map[string]int64)}
}

// Run executes every instruction in order.
func (m *Machine) Run(p *Program) error {
	for _, inst := range p.Insts {
		if err := m.step(inst); err != nil {
			return err
		}
	}
	return nil
}

func (m *Machine) step(inst Instruction) error {
	switch i := inst.(type) {
	case Addi:
		m.set(i.Rd, m.Get(i.Rs)+i.Imm)
	case Add:
		m.set(i.Rd, m.Get(i.Rs)+m.Get(i.Rt))
	case Sub:
		m.set(i.Rd, m.Get(i.Rs)-m.Get(i.Rt))
	case Mul:
		m.set(i.Rd, m.Get(i.Rs)*m.Get(i.Rt))
	case Div:
		divisor := m.Get(i.Rt)
		if divisor == 0 {
			return fmt.Errorf("division by zero in %s", inst)
		}
		a := m.Get(i.Rs)
		q := a / divisor
		if a%divisor != 0 && (a < 0) != (divisor < 0) {
			q--
		}
		m.set(i.Rd, q)
	case Slt:
		m.set(i.Rd, boolToInt(m.Get(i.Rs) < m.Get(i.Rt)))
	case Slti:
		m.set(i.Rd, boolToInt(m.Get(i.Rs) < i.Imm))
	case Xor:
		m.set(i.Rd, m.Get(i.Rs)^m.Get(i.Rt))
	default:
		return fmt.Errorf("unknown instruction %T", inst)
	}
	return nil
}

// Get reads a register; registers never written read as zero.
func (m *Machine) Get(reg string) int64 {
	if reg == config.ZeroRegister {
		return 0
	}
	return m.regs[reg]
}

func (m *Machine) set(reg string, val int64) {
	if reg == config.ZeroRegister {
		return
	}
	m.regs[reg] = val
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
