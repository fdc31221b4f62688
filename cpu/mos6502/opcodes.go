package mos6502

func init() {
	addLoadStore()
	addTransfersAndStack()
	addLogical()
	addArithmetic()
	addIncDecShift()
	addJumpsAndBranches()
	addFlagsAndSystem()
}

func addLoadStore() {
	loads := []struct {
		opcode uint8
		mode   Mode
		length uint8
		reg    func(c *CPU) *uint8
	}{
		{LDA_IMM, Immediate, 2, func(c *CPU) *uint8 { return &c.A }},
		{LDA_ZP, ZeroPage, 2, func(c *CPU) *uint8 { return &c.A }},
		{LDA_ZPX, ZeroPageX, 2, func(c *CPU) *uint8 { return &c.A }},
		{LDA_ABS, Absolute, 3, func(c *CPU) *uint8 { return &c.A }},
		{LDA_ABX, AbsoluteX, 3, func(c *CPU) *uint8 { return &c.A }},
		{LDA_ABY, AbsoluteY, 3, func(c *CPU) *uint8 { return &c.A }},
		{LDA_INX, IndirectX, 2, func(c *CPU) *uint8 { return &c.A }},
		{LDA_INY, IndirectY, 2, func(c *CPU) *uint8 { return &c.A }},

		{LDX_IMM, Immediate, 2, func(c *CPU) *uint8 { return &c.X }},
		{LDX_ZP, ZeroPage, 2, func(c *CPU) *uint8 { return &c.X }},
		{LDX_ZPY, ZeroPageY, 2, func(c *CPU) *uint8 { return &c.X }},
		{LDX_ABS, Absolute, 3, func(c *CPU) *uint8 { return &c.X }},
		{LDX_ABY, AbsoluteY, 3, func(c *CPU) *uint8 { return &c.X }},

		{LDY_IMM, Immediate, 2, func(c *CPU) *uint8 { return &c.Y }},
		{LDY_ZP, ZeroPage, 2, func(c *CPU) *uint8 { return &c.Y }},
		{LDY_ZPX, ZeroPageX, 2, func(c *CPU) *uint8 { return &c.Y }},
		{LDY_ABS, Absolute, 3, func(c *CPU) *uint8 { return &c.Y }},
		{LDY_ABX, AbsoluteX, 3, func(c *CPU) *uint8 { return &c.Y }},
	}
	names := map[uint8]string{
		LDA_IMM: "LDA", LDA_ZP: "LDA", LDA_ZPX: "LDA", LDA_ABS: "LDA", LDA_ABX: "LDA", LDA_ABY: "LDA", LDA_INX: "LDA", LDA_INY: "LDA",
		LDX_IMM: "LDX", LDX_ZP: "LDX", LDX_ZPY: "LDX", LDX_ABS: "LDX", LDX_ABY: "LDX",
		LDY_IMM: "LDY", LDY_ZP: "LDY", LDY_ZPX: "LDY", LDY_ABS: "LDY", LDY_ABX: "LDY",
	}
	descriptions := map[string]string{
		"LDA": "Load the accumulator from memory.",
		"LDX": "Load the X register from memory.",
		"LDY": "Load the Y register from memory.",
	}
	for _, l := range loads {
		l := l
		name := names[l.opcode]
		add6502(l.opcode, Entry{
			Mnemonic:    name,
			Mode:        l.mode,
			Length:      l.length,
			Description: descriptions[name],
			Exec: func(c *CPU) {
				reg := l.reg(c)
				*reg = c.operand(l.mode)
				c.SR.SetZN(*reg)
			}})
	}

	stores := []struct {
		opcode uint8
		mode   Mode
		length uint8
		name   string
		reg    func(c *CPU) uint8
	}{
		{STA_ZP, ZeroPage, 2, "STA", func(c *CPU) uint8 { return c.A }},
		{STA_ZPX, ZeroPageX, 2, "STA", func(c *CPU) uint8 { return c.A }},
		{STA_ABS, Absolute, 3, "STA", func(c *CPU) uint8 { return c.A }},
		{STA_ABX, AbsoluteX, 3, "STA", func(c *CPU) uint8 { return c.A }},
		{STA_ABY, AbsoluteY, 3, "STA", func(c *CPU) uint8 { return c.A }},
		{STA_INX, IndirectX, 2, "STA", func(c *CPU) uint8 { return c.A }},
		{STA_INY, IndirectY, 2, "STA", func(c *CPU) uint8 { return c.A }},
		{STX_ZP, ZeroPage, 2, "STX", func(c *CPU) uint8 { return c.X }},
		{STX_ZPY, ZeroPageY, 2, "STX", func(c *CPU) uint8 { return c.X }},
		{STX_ABS, Absolute, 3, "STX", func(c *CPU) uint8 { return c.X }},
		{STY_ZP, ZeroPage, 2, "STY", func(c *CPU) uint8 { return c.Y }},
		{STY_ZPX, ZeroPageX, 2, "STY", func(c *CPU) uint8 { return c.Y }},
		{STY_ABS, Absolute, 3, "STY", func(c *CPU) uint8 { return c.Y }},
	}
	storeDescriptions := map[string]string{
		"STA": "Store the accumulator to memory.",
		"STX": "Store the X register to memory.",
		"STY": "Store the Y register to memory.",
	}
	for _, s := range stores {
		s := s
		add6502(s.opcode, Entry{
			Mnemonic:    s.name,
			Mode:        s.mode,
			Length:      s.length,
			Description: storeDescriptions[s.name],
			Exec: func(c *CPU) {
				c.storeAt(s.mode, s.reg(c))
			}})
	}
}

func addTransfersAndStack() {
	add6502(TAX, Entry{Mnemonic: "TAX", Mode: Implied, Length: 1,
		Description: "Transfer the accumulator to X.",
		Exec:        func(c *CPU) { c.X = c.A; c.SR.SetZN(c.X) }})
	add6502(TAY, Entry{Mnemonic: "TAY", Mode: Implied, Length: 1,
		Description: "Transfer the accumulator to Y.",
		Exec:        func(c *CPU) { c.Y = c.A; c.SR.SetZN(c.Y) }})
	add6502(TXA, Entry{Mnemonic: "TXA", Mode: Implied, Length: 1,
		Description: "Transfer X to the accumulator.",
		Exec:        func(c *CPU) { c.A = c.X; c.SR.SetZN(c.A) }})
	add6502(TYA, Entry{Mnemonic: "TYA", Mode: Implied, Length: 1,
		Description: "Transfer Y to the accumulator.",
		Exec:        func(c *CPU) { c.A = c.Y; c.SR.SetZN(c.A) }})
	add6502(TSX, Entry{Mnemonic: "TSX", Mode: Implied, Length: 1,
		Description: "Transfer the stack pointer to X.",
		Exec:        func(c *CPU) { c.X = c.SP; c.SR.SetZN(c.X) }})
	add6502(TXS, Entry{Mnemonic: "TXS", Mode: Implied, Length: 1,
		Description: "Transfer X to the stack pointer.",
		Exec:        func(c *CPU) { c.SP = c.X }})

	add6502(PHA, Entry{Mnemonic: "PHA", Mode: Implied, Length: 1,
		Description: "Push the accumulator onto the stack.",
		Exec:        func(c *CPU) { c.push8(c.A) }})
	add6502(PHP, Entry{Mnemonic: "PHP", Mode: Implied, Length: 1,
		Description: "Push the status register onto the stack, with B and U set.",
		Exec:        func(c *CPU) { c.push8(c.SR.PushByte()) }})
	add6502(PLA, Entry{Mnemonic: "PLA", Mode: Implied, Length: 1,
		Description: "Pull the accumulator from the stack.",
		Exec:        func(c *CPU) { c.A = c.pop8(); c.SR.SetZN(c.A) }})
	add6502(PLP, Entry{Mnemonic: "PLP", Mode: Implied, Length: 1,
		Description: "Pull the status register from the stack, discarding B and U.",
		Exec:        func(c *CPU) { c.SR.SetFromPull(c.pop8()) }})
}

func addLogical() {
	type fam struct {
		opcode uint8
		mode   Mode
		length uint8
	}
	apply := func(name, description string, fams []fam, op func(c *CPU, v uint8)) {
		for _, f := range fams {
			f := f
			add6502(f.opcode, Entry{
				Mnemonic:    name,
				Mode:        f.mode,
				Length:      f.length,
				Description: description,
				Exec: func(c *CPU) {
					op(c, c.operand(f.mode))
				}})
		}
	}
	apply("AND", "AND memory with the accumulator.", []fam{
		{AND_IMM, Immediate, 2}, {AND_ZP, ZeroPage, 2}, {AND_ZPX, ZeroPageX, 2},
		{AND_ABS, Absolute, 3}, {AND_ABX, AbsoluteX, 3}, {AND_ABY, AbsoluteY, 3},
		{AND_INX, IndirectX, 2}, {AND_INY, IndirectY, 2},
	}, func(c *CPU, v uint8) { c.A &= v; c.SR.SetZN(c.A) })

	apply("EOR", "Exclusive-OR memory with the accumulator.", []fam{
		{EOR_IMM, Immediate, 2}, {EOR_ZP, ZeroPage, 2}, {EOR_ZPX, ZeroPageX, 2},
		{EOR_ABS, Absolute, 3}, {EOR_ABX, AbsoluteX, 3}, {EOR_ABY, AbsoluteY, 3},
		{EOR_INX, IndirectX, 2}, {EOR_INY, IndirectY, 2},
	}, func(c *CPU, v uint8) { c.A ^= v; c.SR.SetZN(c.A) })

	apply("ORA", "OR memory with the accumulator.", []fam{
		{ORA_IMM, Immediate, 2}, {ORA_ZP, ZeroPage, 2}, {ORA_ZPX, ZeroPageX, 2},
		{ORA_ABS, Absolute, 3}, {ORA_ABX, AbsoluteX, 3}, {ORA_ABY, AbsoluteY, 3},
		{ORA_INX, IndirectX, 2}, {ORA_INY, IndirectY, 2},
	}, func(c *CPU, v uint8) { c.A |= v; c.SR.SetZN(c.A) })

	bitOp := func(c *CPU, v uint8) {
		c.SR.SetZero(c.A&v == 0)
		c.SR.SetNegative(v&0x80 != 0)
		c.SR.SetOverflow(v&0x40 != 0)
	}
	add6502(BIT_ZP, Entry{Mnemonic: "BIT", Mode: ZeroPage, Length: 2,
		Description: "Test accumulator bits against memory, setting Z, N, and V from the operand.",
		Exec:        func(c *CPU) { bitOp(c, c.operand(ZeroPage)) }})
	add6502(BIT_ABS, Entry{Mnemonic: "BIT", Mode: Absolute, Length: 3,
		Description: "Test accumulator bits against memory, setting Z, N, and V from the operand.",
		Exec:        func(c *CPU) { bitOp(c, c.operand(Absolute)) }})
}

func addArithmetic() {
	type fam struct {
		opcode uint8
		mode   Mode
		length uint8
	}
	adcFams := []fam{
		{ADC_IMM, Immediate, 2}, {ADC_ZP, ZeroPage, 2}, {ADC_ZPX, ZeroPageX, 2},
		{ADC_ABS, Absolute, 3}, {ADC_ABX, AbsoluteX, 3}, {ADC_ABY, AbsoluteY, 3},
		{ADC_INX, IndirectX, 2}, {ADC_INY, IndirectY, 2},
	}
	for _, f := range adcFams {
		f := f
		add6502(f.opcode, Entry{Mnemonic: "ADC", Mode: f.mode, Length: f.length,
			Description: "Add memory and carry to the accumulator.",
			Exec:        func(c *CPU) { c.adc(c.operand(f.mode)) }})
	}
	sbcFams := []fam{
		{SBC_IMM, Immediate, 2}, {SBC_ZP, ZeroPage, 2}, {SBC_ZPX, ZeroPageX, 2},
		{SBC_ABS, Absolute, 3}, {SBC_ABX, AbsoluteX, 3}, {SBC_ABY, AbsoluteY, 3},
		{SBC_INX, IndirectX, 2}, {SBC_INY, IndirectY, 2},
	}
	for _, f := range sbcFams {
		f := f
		add6502(f.opcode, Entry{Mnemonic: "SBC", Mode: f.mode, Length: f.length,
			Description: "Subtract memory and borrow from the accumulator.",
			Exec:        func(c *CPU) { c.sbc(c.operand(f.mode)) }})
	}
	cmpFams := []fam{
		{CMP_IMM, Immediate, 2}, {CMP_ZP, ZeroPage, 2}, {CMP_ZPX, ZeroPageX, 2},
		{CMP_ABS, Absolute, 3}, {CMP_ABX, AbsoluteX, 3}, {CMP_ABY, AbsoluteY, 3},
		{CMP_INX, IndirectX, 2}, {CMP_INY, IndirectY, 2},
	}
	for _, f := range cmpFams {
		f := f
		add6502(f.opcode, Entry{Mnemonic: "CMP", Mode: f.mode, Length: f.length,
			Description: "Compare the accumulator with memory.",
			Exec:        func(c *CPU) { c.compare(c.A, c.operand(f.mode)) }})
	}
	cpxFams := []fam{{CPX_IMM, Immediate, 2}, {CPX_ZP, ZeroPage, 2}, {CPX_ABS, Absolute, 3}}
	for _, f := range cpxFams {
		f := f
		add6502(f.opcode, Entry{Mnemonic: "CPX", Mode: f.mode, Length: f.length,
			Description: "Compare X with memory.",
			Exec:        func(c *CPU) { c.compare(c.X, c.operand(f.mode)) }})
	}
	cpyFams := []fam{{CPY_IMM, Immediate, 2}, {CPY_ZP, ZeroPage, 2}, {CPY_ABS, Absolute, 3}}
	for _, f := range cpyFams {
		f := f
		add6502(f.opcode, Entry{Mnemonic: "CPY", Mode: f.mode, Length: f.length,
			Description: "Compare Y with memory.",
			Exec:        func(c *CPU) { c.compare(c.Y, c.operand(f.mode)) }})
	}
}

func addIncDecShift() {
	add6502(INC_ZP, Entry{Mnemonic: "INC", Mode: ZeroPage, Length: 2,
		Description: "Increment a memory location.",
		Exec:        func(c *CPU) { c.rmw(ZeroPage, func(v uint8) uint8 { r := v + 1; c.SR.SetZN(r); return r }) }})
	add6502(INC_ZPX, Entry{Mnemonic: "INC", Mode: ZeroPageX, Length: 2,
		Description: "Increment a memory location.",
		Exec:        func(c *CPU) { c.rmw(ZeroPageX, func(v uint8) uint8 { r := v + 1; c.SR.SetZN(r); return r }) }})
	add6502(INC_ABS, Entry{Mnemonic: "INC", Mode: Absolute, Length: 3,
		Description: "Increment a memory location.",
		Exec:        func(c *CPU) { c.rmw(Absolute, func(v uint8) uint8 { r := v + 1; c.SR.SetZN(r); return r }) }})
	add6502(INC_ABX, Entry{Mnemonic: "INC", Mode: AbsoluteX, Length: 3,
		Description: "Increment a memory location.",
		Exec:        func(c *CPU) { c.rmw(AbsoluteX, func(v uint8) uint8 { r := v + 1; c.SR.SetZN(r); return r }) }})

	add6502(DEC_ZP, Entry{Mnemonic: "DEC", Mode: ZeroPage, Length: 2,
		Description: "Decrement a memory location.",
		Exec:        func(c *CPU) { c.rmw(ZeroPage, func(v uint8) uint8 { r := v - 1; c.SR.SetZN(r); return r }) }})
	add6502(DEC_ZPX, Entry{Mnemonic: "DEC", Mode: ZeroPageX, Length: 2,
		Description: "Decrement a memory location.",
		Exec:        func(c *CPU) { c.rmw(ZeroPageX, func(v uint8) uint8 { r := v - 1; c.SR.SetZN(r); return r }) }})
	add6502(DEC_ABS, Entry{Mnemonic: "DEC", Mode: Absolute, Length: 3,
		Description: "Decrement a memory location.",
		Exec:        func(c *CPU) { c.rmw(Absolute, func(v uint8) uint8 { r := v - 1; c.SR.SetZN(r); return r }) }})
	add6502(DEC_ABX, Entry{Mnemonic: "DEC", Mode: AbsoluteX, Length: 3,
		Description: "Decrement a memory location.",
		Exec:        func(c *CPU) { c.rmw(AbsoluteX, func(v uint8) uint8 { r := v - 1; c.SR.SetZN(r); return r }) }})

	add6502(INX, Entry{Mnemonic: "INX", Mode: Implied, Length: 1,
		Description: "Increment X.",
		Exec:        func(c *CPU) { c.X++; c.SR.SetZN(c.X) }})
	add6502(INY, Entry{Mnemonic: "INY", Mode: Implied, Length: 1,
		Description: "Increment Y.",
		Exec:        func(c *CPU) { c.Y++; c.SR.SetZN(c.Y) }})
	add6502(DEX, Entry{Mnemonic: "DEX", Mode: Implied, Length: 1,
		Description: "Decrement X.",
		Exec:        func(c *CPU) { c.X--; c.SR.SetZN(c.X) }})
	add6502(DEY, Entry{Mnemonic: "DEY", Mode: Implied, Length: 1,
		Description: "Decrement Y.",
		Exec:        func(c *CPU) { c.Y--; c.SR.SetZN(c.Y) }})

	add6502(ASL_ACC, Entry{Mnemonic: "ASL", Mode: Accumulator, Length: 1,
		Description: "Shift left one bit, carry out of bit 7.",
		Exec:        func(c *CPU) { c.rmw(Accumulator, c.asl) }})
	add6502(ASL_ZP, Entry{Mnemonic: "ASL", Mode: ZeroPage, Length: 2,
		Description: "Shift left one bit, carry out of bit 7.",
		Exec:        func(c *CPU) { c.rmw(ZeroPage, c.asl) }})
	add6502(ASL_ZPX, Entry{Mnemonic: "ASL", Mode: ZeroPageX, Length: 2,
		Description: "Shift left one bit, carry out of bit 7.",
		Exec:        func(c *CPU) { c.rmw(ZeroPageX, c.asl) }})
	add6502(ASL_ABS, Entry{Mnemonic: "ASL", Mode: Absolute, Length: 3,
		Description: "Shift left one bit, carry out of bit 7.",
		Exec:        func(c *CPU) { c.rmw(Absolute, c.asl) }})
	add6502(ASL_ABX, Entry{Mnemonic: "ASL", Mode: AbsoluteX, Length: 3,
		Description: "Shift left one bit, carry out of bit 7.",
		Exec:        func(c *CPU) { c.rmw(AbsoluteX, c.asl) }})

	add6502(LSR_ACC, Entry{Mnemonic: "LSR", Mode: Accumulator, Length: 1,
		Description: "Shift right one bit, carry out of bit 0.",
		Exec:        func(c *CPU) { c.rmw(Accumulator, c.lsr) }})
	add6502(LSR_ZP, Entry{Mnemonic: "LSR", Mode: ZeroPage, Length: 2,
		Description: "Shift right one bit, carry out of bit 0.",
		Exec:        func(c *CPU) { c.rmw(ZeroPage, c.lsr) }})
	add6502(LSR_ZPX, Entry{Mnemonic: "LSR", Mode: ZeroPageX, Length: 2,
		Description: "Shift right one bit, carry out of bit 0.",
		Exec:        func(c *CPU) { c.rmw(ZeroPageX, c.lsr) }})
	add6502(LSR_ABS, Entry{Mnemonic: "LSR", Mode: Absolute, Length: 3,
		Description: "Shift right one bit, carry out of bit 0.",
		Exec:        func(c *CPU) { c.rmw(Absolute, c.lsr) }})
	add6502(LSR_ABX, Entry{Mnemonic: "LSR", Mode: AbsoluteX, Length: 3,
		Description: "Shift right one bit, carry out of bit 0.",
		Exec:        func(c *CPU) { c.rmw(AbsoluteX, c.lsr) }})

	add6502(ROL_ACC, Entry{Mnemonic: "ROL", Mode: Accumulator, Length: 1,
		Description: "Rotate left one bit through carry.",
		Exec:        func(c *CPU) { c.rmw(Accumulator, c.rol) }})
	add6502(ROL_ZP, Entry{Mnemonic: "ROL", Mode: ZeroPage, Length: 2,
		Description: "Rotate left one bit through carry.",
		Exec:        func(c *CPU) { c.rmw(ZeroPage, c.rol) }})
	add6502(ROL_ZPX, Entry{Mnemonic: "ROL", Mode: ZeroPageX, Length: 2,
		Description: "Rotate left one bit through carry.",
		Exec:        func(c *CPU) { c.rmw(ZeroPageX, c.rol) }})
	add6502(ROL_ABS, Entry{Mnemonic: "ROL", Mode: Absolute, Length: 3,
		Description: "Rotate left one bit through carry.",
		Exec:        func(c *CPU) { c.rmw(Absolute, c.rol) }})
	add6502(ROL_ABX, Entry{Mnemonic: "ROL", Mode: AbsoluteX, Length: 3,
		Description: "Rotate left one bit through carry.",
		Exec:        func(c *CPU) { c.rmw(AbsoluteX, c.rol) }})

	add6502(ROR_ACC, Entry{Mnemonic: "ROR", Mode: Accumulator, Length: 1,
		Description: "Rotate right one bit through carry.",
		Exec:        func(c *CPU) { c.rmw(Accumulator, c.ror) }})
	add6502(ROR_ZP, Entry{Mnemonic: "ROR", Mode: ZeroPage, Length: 2,
		Description: "Rotate right one bit through carry.",
		Exec:        func(c *CPU) { c.rmw(ZeroPage, c.ror) }})
	add6502(ROR_ZPX, Entry{Mnemonic: "ROR", Mode: ZeroPageX, Length: 2,
		Description: "Rotate right one bit through carry.",
		Exec:        func(c *CPU) { c.rmw(ZeroPageX, c.ror) }})
	add6502(ROR_ABS, Entry{Mnemonic: "ROR", Mode: Absolute, Length: 3,
		Description: "Rotate right one bit through carry.",
		Exec:        func(c *CPU) { c.rmw(Absolute, c.ror) }})
	add6502(ROR_ABX, Entry{Mnemonic: "ROR", Mode: AbsoluteX, Length: 3,
		Description: "Rotate right one bit through carry.",
		Exec:        func(c *CPU) { c.rmw(AbsoluteX, c.ror) }})
}

func addJumpsAndBranches() {
	add6502(JMP_ABS, Entry{Mnemonic: "JMP", Mode: Absolute, Length: 3,
		Description: "Jump unconditionally to the given address.",
		Exec:        func(c *CPU) { c.PC = c.fetchAddress(Absolute) }})
	add6502(JMP_IND, Entry{Mnemonic: "JMP", Mode: Indirect, Length: 3,
		Description: "Jump to the address stored at the given pointer; does not cross a page boundary when fetching the high byte.",
		Exec: func(c *CPU) {
			addr := c.fetchAddress(Absolute)
			if addr&0xFF == 0xFF {
				lo := uint16(c.Memory.ReadByte(addr))
				hi := uint16(c.Memory.ReadByte(addr & 0xFF00))
				c.PC = hi<<8 | lo
			} else {
				c.PC = c.Memory.ReadWord(addr)
			}
		}})
	add6502(JSR_ABS, Entry{Mnemonic: "JSR", Mode: Absolute, Length: 3,
		Description: "Push the return address minus one and jump to the given address.",
		Exec: func(c *CPU) {
			addr := c.fetchAddress(Absolute)
			c.push16(c.PC - 1)
			c.PC = addr
		}})
	add6502(RTS, Entry{Mnemonic: "RTS", Mode: Implied, Length: 1,
		Description: "Pull the return address and add one.",
		Exec:        func(c *CPU) { c.PC = c.pop16() + 1 }})

	branches := []struct {
		opcode      uint8
		name        string
		description string
		taken       func(c *CPU) bool
	}{
		{BCC, "BCC", "Branch if the carry flag is clear.", func(c *CPU) bool { return !c.SR.IsCarry() }},
		{BCS, "BCS", "Branch if the carry flag is set.", func(c *CPU) bool { return c.SR.IsCarry() }},
		{BEQ, "BEQ", "Branch if the zero flag is set.", func(c *CPU) bool { return c.SR.IsZero() }},
		{BMI, "BMI", "Branch if the negative flag is set.", func(c *CPU) bool { return c.SR.IsNegative() }},
		{BNE, "BNE", "Branch if the zero flag is clear.", func(c *CPU) bool { return !c.SR.IsZero() }},
		{BPL, "BPL", "Branch if the negative flag is clear.", func(c *CPU) bool { return !c.SR.IsNegative() }},
		{BVC, "BVC", "Branch if the overflow flag is clear.", func(c *CPU) bool { return !c.SR.IsOverflow() }},
		{BVS, "BVS", "Branch if the overflow flag is set.", func(c *CPU) bool { return c.SR.IsOverflow() }},
	}
	for _, b := range branches {
		b := b
		add6502(b.opcode, Entry{
			Mnemonic:    b.name,
			Mode:        Relative,
			Length:      2,
			Description: b.description,
			Exec:        func(c *CPU) { c.branch(b.taken(c)) }})
	}
}

func addFlagsAndSystem() {
	add6502(CLC, Entry{Mnemonic: "CLC", Mode: Implied, Length: 1,
		Description: "Clear the carry flag.",
		Exec:        func(c *CPU) { c.SR.SetCarry(false) }})
	add6502(CLD, Entry{Mnemonic: "CLD", Mode: Implied, Length: 1,
		Description: "Clear the decimal flag.",
		Exec:        func(c *CPU) { c.SR.SetDecimal(false) }})
	add6502(CLI, Entry{Mnemonic: "CLI", Mode: Implied, Length: 1,
		Description: "Clear the interrupt-disable flag.",
		Exec:        func(c *CPU) { c.SR.SetInterrupt(false) }})
	add6502(CLV, Entry{Mnemonic: "CLV", Mode: Implied, Length: 1,
		Description: "Clear the overflow flag.",
		Exec:        func(c *CPU) { c.SR.SetOverflow(false) }})
	add6502(SEC, Entry{Mnemonic: "SEC", Mode: Implied, Length: 1,
		Description: "Set the carry flag.",
		Exec:        func(c *CPU) { c.SR.SetCarry(true) }})
	add6502(SED, Entry{Mnemonic: "SED", Mode: Implied, Length: 1,
		Description: "Set the decimal flag.",
		Exec:        func(c *CPU) { c.SR.SetDecimal(true) }})
	add6502(SEI, Entry{Mnemonic: "SEI", Mode: Implied, Length: 1,
		Description: "Set the interrupt-disable flag.",
		Exec:        func(c *CPU) { c.SR.SetInterrupt(true) }})

	add6502(NOP, Entry{Mnemonic: "NOP", Mode: Implied, Length: 1,
		Description: "No operation.",
		Exec:        func(c *CPU) {}})

	add6502(BRK, Entry{Mnemonic: "BRK", Mode: Implied, Length: 1,
		Description: "Force an interrupt: push PC and status with B set, then jump through the IRQ/BRK vector.",
		Exec: func(c *CPU) {
			c.PC++ // skip the padding byte
			c.push16(c.PC)
			c.push8(c.SR.PushByte())
			c.SR.SetInterrupt(true)
			c.PC = c.Memory.ReadWord(0xFFFE)
		}})
	add6502(RTI, Entry{Mnemonic: "RTI", Mode: Implied, Length: 1,
		Description: "Return from interrupt: pull status then PC.",
		Exec: func(c *CPU) {
			c.SR.SetFromPull(c.pop8())
			c.PC = c.pop16()
		}})
}
