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
)

/// Register is a V-register index, 0-F.
///
type Register uint8

func (r Register) String() string {
	return fmt.Sprintf("V%X", uint8(r)&0xF)
}

/// Address is a 12-bit memory address operand.
///
type Address uint16

/// Op identifies the decoded instruction.
///
type Op uint8

const (
	OpUnknown Op = iota
	OpCLS        // 00E0
	OpRET        // 00EE
	OpSYS        // 0NNN
	OpJP         // 1NNN
	OpCALL       // 2NNN
	OpSEImm      // 3XKK
	OpSNEImm     // 4XKK
	OpSEReg      // 5XY0
	OpLDImm      // 6XKK
	OpADDImm     // 7XKK
	OpLDReg      // 8XY0
	OpOR         // 8XY1
	OpAND        // 8XY2
	OpXOR        // 8XY3
	OpADDReg     // 8XY4
	OpSUB        // 8XY5
	OpSHR        // 8XY6
	OpSUBN       // 8XY7
	OpSHL        // 8XYE
	OpSNEReg     // 9XY0
	OpLDI        // ANNN
	OpJPV0       // BNNN
	OpRND        // CXKK
	OpDRW        // DXYN
	OpSKP        // EX9E
	OpSKNP       // EXA1
	OpLDVxDT     // FX07
	OpLDVxK      // FX0A
	OpLDDTVx     // FX15
	OpLDSTVx     // FX18
	OpADDI       // FX1E
	OpLDF        // FX29
	OpLDB        // FX33
	OpSTORE      // FX55
	OpLOAD       // FX65

	opCount
)

/// Instruction is a decoded opcode. Every operand field is extracted for
/// every opcode; which ones are meaningful depends on Op.
///
type Instruction struct {
	Op     Op
	Opcode uint16

	X   Register // bits 8-11
	Y   Register // bits 4-7
	N   byte     // bits 0-3
	KK  byte     // bits 0-7
	NNN Address  // bits 0-11
}

/// Decode an opcode. Decoding never fails: opcodes that are not part of the
/// instruction set decode to OpUnknown.
///
func Decode(opcode uint16) Instruction {
	return Instruction{
		Op:     decodeOp(opcode),
		Opcode: opcode,
		X:      Register(opcode >> 8 & 0xF),
		Y:      Register(opcode >> 4 & 0xF),
		N:      byte(opcode & 0xF),
		KK:     byte(opcode & 0xFF),
		NNN:    Address(opcode & 0xFFF),
	}
}

func decodeOp(opcode uint16) Op {
	switch opcode >> 12 {
	case 0x0:
		switch opcode {
		case 0x00E0:
			return OpCLS
		case 0x00EE:
			return OpRET
		}
		return OpSYS
	case 0x1:
		return OpJP
	case 0x2:
		return OpCALL
	case 0x3:
		return OpSEImm
	case 0x4:
		return OpSNEImm
	case 0x5:
		if opcode&0xF == 0 {
			return OpSEReg
		}
	case 0x6:
		return OpLDImm
	case 0x7:
		return OpADDImm
	case 0x8:
		switch opcode & 0xF {
		case 0x0:
			return OpLDReg
		case 0x1:
			return OpOR
		case 0x2:
			return OpAND
		case 0x3:
			return OpXOR
		case 0x4:
			return OpADDReg
		case 0x5:
			return OpSUB
		case 0x6:
			return OpSHR
		case 0x7:
			return OpSUBN
		case 0xE:
			return OpSHL
		}
	case 0x9:
		if opcode&0xF == 0 {
			return OpSNEReg
		}
	case 0xA:
		return OpLDI
	case 0xB:
		return OpJPV0
	case 0xC:
		return OpRND
	case 0xD:
		return OpDRW
	case 0xE:
		switch opcode & 0xFF {
		case 0x9E:
			return OpSKP
		case 0xA1:
			return OpSKNP
		}
	case 0xF:
		switch opcode & 0xFF {
		case 0x07:
			return OpLDVxDT
		case 0x0A:
			return OpLDVxK
		case 0x15:
			return OpLDDTVx
		case 0x18:
			return OpLDSTVx
		case 0x1E:
			return OpADDI
		case 0x29:
			return OpLDF
		case 0x33:
			return OpLDB
		case 0x55:
			return OpSTORE
		case 0x65:
			return OpLOAD
		}
	}

	return OpUnknown
}
