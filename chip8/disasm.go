/* Copyright (c) 2017 Jeffrey Massung
 *
 * This software is provided 'as-is', without any express or implied
 * warranty.  In no event will the authors be held liable for any damages
 * arising from the use of this software.
 *
 * Permission is granted to anyone to use this software for any purpose,
 * including commercial applications, and to alter it and redistribute it
 * freely, subject to the following restrictions:
 *
 * 1. The origin of this software must not be misrepresented; you must not
 *    claim that you wrote the original software. If you use this software
 *    in a product, an acknowledgment in the product documentation would be
 *    appreciated but is not required.
 *
 * 2. Altered source versions must be plainly marked as such, and must not be
 *    misrepresented as being the original software.
 *
 * 3. This notice may not be removed or altered from any source distribution.
 */

package chip8

import (
	"fmt"
	"strings"

	cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

/// mnemonics for each Op, taken from the CHIP-8 instruction table
///
var mnemonics [opCount]string

func init() {
	names := map[Op]string{
		OpCLS:    cpu.ClsName,
		OpRET:    cpu.RetName,
		OpSYS:    "sys",
		OpJP:     cpu.JpName,
		OpCALL:   cpu.CallName,
		OpSEImm:  cpu.SeName,
		OpSNEImm: cpu.SneName,
		OpSEReg:  cpu.SeName,
		OpLDImm:  cpu.LdName,
		OpADDImm: cpu.AddName,
		OpLDReg:  cpu.LdName,
		OpOR:     cpu.OrName,
		OpAND:    cpu.AndName,
		OpXOR:    cpu.XorName,
		OpADDReg: cpu.AddName,
		OpSUB:    cpu.SubName,
		OpSHR:    cpu.ShrName,
		OpSUBN:   cpu.SubnName,
		OpSHL:    cpu.ShlName,
		OpSNEReg: cpu.SneName,
		OpLDI:    cpu.LdName,
		OpJPV0:   cpu.JpName,
		OpRND:    cpu.RndName,
		OpDRW:    cpu.DrwName,
		OpSKP:    cpu.SkpName,
		OpSKNP:   cpu.SknpName,
		OpLDVxDT: cpu.LdName,
		OpLDVxK:  cpu.LdName,
		OpLDDTVx: cpu.LdName,
		OpLDSTVx: cpu.LdName,
		OpADDI:   cpu.AddName,
		OpLDF:    cpu.LdName,
		OpLDB:    cpu.LdName,
		OpSTORE:  cpu.LdName,
		OpLOAD:   cpu.LdName,
	}

	for op, name := range names {
		mnemonics[op] = strings.ToUpper(name)
	}
}

/// Mnemonic returns the assembler mnemonic of the instruction, or "??".
///
func (op Op) Mnemonic() string {
	if op == OpUnknown || op >= opCount {
		return "??"
	}
	return mnemonics[op]
}

/// String disassembles the instruction.
///
func (i Instruction) String() string {
	var args string

	switch i.Op {
	case OpCLS, OpRET, OpUnknown:
		return i.Op.Mnemonic()
	case OpSYS, OpJP, OpCALL:
		args = fmt.Sprintf("#%03X", uint16(i.NNN))
	case OpSEImm, OpSNEImm, OpLDImm, OpADDImm, OpRND:
		args = fmt.Sprintf("%s, #%02X", i.X, i.KK)
	case OpSEReg, OpSNEReg, OpLDReg, OpOR, OpAND, OpXOR, OpADDReg, OpSUB, OpSUBN:
		args = fmt.Sprintf("%s, %s", i.X, i.Y)
	case OpSHR, OpSHL, OpSKP, OpSKNP:
		args = i.X.String()
	case OpLDI:
		args = fmt.Sprintf("I, #%03X", uint16(i.NNN))
	case OpJPV0:
		args = fmt.Sprintf("V0, #%03X", uint16(i.NNN))
	case OpDRW:
		args = fmt.Sprintf("%s, %s, %d", i.X, i.Y, i.N)
	case OpLDVxDT:
		args = fmt.Sprintf("%s, DT", i.X)
	case OpLDVxK:
		args = fmt.Sprintf("%s, K", i.X)
	case OpLDDTVx:
		args = fmt.Sprintf("DT, %s", i.X)
	case OpLDSTVx:
		args = fmt.Sprintf("ST, %s", i.X)
	case OpADDI:
		args = fmt.Sprintf("I, %s", i.X)
	case OpLDF:
		args = fmt.Sprintf("F, %s", i.X)
	case OpLDB:
		args = fmt.Sprintf("B, %s", i.X)
	case OpSTORE:
		args = fmt.Sprintf("[I], %s", i.X)
	case OpLOAD:
		args = fmt.Sprintf("%s, [I]", i.X)
	}

	return fmt.Sprintf("%-6s %s", i.Op.Mnemonic(), args)
}

/// Disassemble the instruction at an address.
///
func (vm *Machine) Disassemble(address uint16) string {
	if int(address) >= len(vm.Memory)-1 {
		return ""
	}

	inst := vm.Memory.ReadWord(address)

	// end of program memory?
	if inst == 0 {
		return fmt.Sprintf("%04X -", address)
	}

	return fmt.Sprintf("%04X - %s", address, Decode(inst))
}
