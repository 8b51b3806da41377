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
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecode_Ops(t *testing.T) {
	tests := []struct {
		opcode uint16
		op     Op
	}{
		{0x00E0, OpCLS},
		{0x00EE, OpRET},
		{0x0000, OpSYS},
		{0x0123, OpSYS},
		{0x00E1, OpSYS},
		{0x1228, OpJP},
		{0x2ABC, OpCALL},
		{0x3A05, OpSEImm},
		{0x4A05, OpSNEImm},
		{0x5AB0, OpSEReg},
		{0x5AB1, OpUnknown},
		{0x6A05, OpLDImm},
		{0x7A0B, OpADDImm},
		{0x8AB0, OpLDReg},
		{0x8AB1, OpOR},
		{0x8AB2, OpAND},
		{0x8AB3, OpXOR},
		{0x8AB4, OpADDReg},
		{0x8AB5, OpSUB},
		{0x8AB6, OpSHR},
		{0x8AB7, OpSUBN},
		{0x8ABE, OpSHL},
		{0x8AB8, OpUnknown},
		{0x8ABF, OpUnknown},
		{0x9AB0, OpSNEReg},
		{0x9AB4, OpUnknown},
		{0xA123, OpLDI},
		{0xB123, OpJPV0},
		{0xC1FF, OpRND},
		{0xD125, OpDRW},
		{0xE19E, OpSKP},
		{0xE1A1, OpSKNP},
		{0xE1A2, OpUnknown},
		{0xF107, OpLDVxDT},
		{0xF10A, OpLDVxK},
		{0xF115, OpLDDTVx},
		{0xF118, OpLDSTVx},
		{0xF11E, OpADDI},
		{0xF129, OpLDF},
		{0xF133, OpLDB},
		{0xF155, OpSTORE},
		{0xF165, OpLOAD},
		{0xF175, OpUnknown},
		{0xFFFF, OpUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.op, Decode(tt.opcode).Op, Decode(tt.opcode).String())
	}
}

func TestDecode_Operands(t *testing.T) {
	i := Decode(0xDAB7)

	assert.Equal(t, uint16(0xDAB7), i.Opcode)
	assert.Equal(t, Register(0xA), i.X)
	assert.Equal(t, Register(0xB), i.Y)
	assert.Equal(t, byte(0x7), i.N)
	assert.Equal(t, byte(0xB7), i.KK)
	assert.Equal(t, Address(0xAB7), i.NNN)
}

func TestDecode_Total(t *testing.T) {
	counts := make(map[Op]int)

	for opcode := 0; opcode <= 0xFFFF; opcode++ {
		i := Decode(uint16(opcode))

		if i.Op >= opCount {
			t.Fatalf("opcode %04X decoded to invalid op %d", opcode, i.Op)
		}
		if i.Opcode != uint16(opcode) {
			t.Fatalf("opcode %04X not preserved", opcode)
		}

		counts[i.Op]++
	}

	// every variant is reachable
	for op := OpUnknown; op < opCount; op++ {
		assert.True(t, counts[op] > 0, op.Mnemonic())
	}

	// whole families
	assert.Equal(t, 0x1000, counts[OpJP])
	assert.Equal(t, 0x1000, counts[OpDRW])
	assert.Equal(t, 0x1000-2, counts[OpSYS])
	assert.Equal(t, 0x100, counts[OpSEReg])
	assert.Equal(t, 0x10, counts[OpLOAD])

	known := 0
	for op, n := range counts {
		if op != OpUnknown {
			known += n
		}
	}
	assert.Equal(t, 0x10000, known+counts[OpUnknown])
}

func TestInstruction_String(t *testing.T) {
	tests := []struct {
		opcode uint16
		text   string
	}{
		{0x00E0, "CLS"},
		{0x00EE, "RET"},
		{0x1228, "JP     #228"},
		{0x2ABC, "CALL   #ABC"},
		{0x6A05, "LD     VA, #05"},
		{0x7A0B, "ADD    VA, #0B"},
		{0x8AB5, "SUB    VA, VB"},
		{0x8AB6, "SHR    VA"},
		{0xA123, "LD     I, #123"},
		{0xB123, "JP     V0, #123"},
		{0xD125, "DRW    V1, V2, 5"},
		{0xE19E, "SKP    V1"},
		{0xF30A, "LD     V3, K"},
		{0xF355, "LD     [I], V3"},
		{0xF365, "LD     V3, [I]"},
		{0x5AB1, "??"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.text, Decode(tt.opcode).String())
	}
}

func TestOp_Mnemonic(t *testing.T) {
	tests := map[Op]string{
		OpCLS:     "CLS",
		OpRET:     "RET",
		OpSYS:     "SYS",
		OpJP:      "JP",
		OpJPV0:    "JP",
		OpCALL:    "CALL",
		OpSEImm:   "SE",
		OpSNEReg:  "SNE",
		OpLDI:     "LD",
		OpLOAD:    "LD",
		OpADDI:    "ADD",
		OpOR:      "OR",
		OpAND:     "AND",
		OpXOR:     "XOR",
		OpSUB:     "SUB",
		OpSUBN:    "SUBN",
		OpSHR:     "SHR",
		OpSHL:     "SHL",
		OpRND:     "RND",
		OpDRW:     "DRW",
		OpSKP:     "SKP",
		OpSKNP:    "SKNP",
		OpUnknown: "??",
	}

	for op, want := range tests {
		assert.Equal(t, want, op.Mnemonic())
	}

	// every op has a name
	for op := OpCLS; op < opCount; op++ {
		assert.True(t, op.Mnemonic() != "" && op.Mnemonic() != "??")
	}
}

func TestRegister_String(t *testing.T) {
	assert.Equal(t, "V0", Register(0).String())
	assert.Equal(t, "VF", Register(0xF).String())
}
