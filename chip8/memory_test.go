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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/retroenv/retrogolib/assert"
)

func TestMemory_ReadWriteMasksAddress(t *testing.T) {
	var m Memory

	m.Write(0x1234, 0xAB)
	assert.Equal(t, byte(0xAB), m[0x234])
	assert.Equal(t, byte(0xAB), m.Read(0x0234))
	assert.Equal(t, byte(0xAB), m.Read(0xF234))
}

func TestMemory_Word(t *testing.T) {
	var m Memory

	m.WriteWord(0x300, 0x6A05)
	assert.Equal(t, byte(0x6A), m[0x300])
	assert.Equal(t, byte(0x05), m[0x301])
	assert.Equal(t, uint16(0x6A05), m.ReadWord(0x300))

	// the low byte of a word at the last address wraps around
	m[0xFFF] = 0x12
	m[0x000] = 0x34
	assert.Equal(t, uint16(0x1234), m.ReadWord(0xFFF))
}

func TestMemory_Load(t *testing.T) {
	tests := []struct {
		name    string
		offset  uint16
		size    int
		wantErr bool
	}{
		{"program origin", ProgramStart, 16, false},
		{"fills memory exactly", ProgramStart, MemorySize - ProgramStart, false},
		{"one byte too many", ProgramStart, MemorySize - ProgramStart + 1, true},
		{"last byte", MemorySize - 1, 1, false},
		{"offset past end", MemorySize, 1, true},
		{"empty block", MemorySize - 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Memory

			data := make([]byte, tt.size)
			for i := range data {
				data[i] = byte(i + 1)
			}

			err := m.Load(tt.offset, data)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrOutOfBounds))
				assert.Equal(t, Memory{}, m)
				return
			}

			assert.NoError(t, err)
			if diff := cmp.Diff(data, m[int(tt.offset):int(tt.offset)+tt.size]); diff != "" {
				t.Errorf("loaded block: (-want, +got)\n%s", diff)
			}
		})
	}
}

func TestMemory_Slice(t *testing.T) {
	var m Memory

	s, err := m.Slice(0xFFD, 3)
	assert.NoError(t, err)
	assert.Len(t, s, 3)

	// slices alias memory
	s[2] = 0x77
	assert.Equal(t, byte(0x77), m[0xFFF])

	_, err = m.Slice(0xFFE, 3)
	assert.True(t, errors.Is(err, ErrOutOfBounds))

	_, err = m.Slice(0x200, -1)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
}

func TestFontSprite(t *testing.T) {
	assert.Equal(t, uint16(0x000), FontSprite(0x0))
	assert.Equal(t, uint16(0x00A), FontSprite(0x2))
	assert.Equal(t, uint16(0x04B), FontSprite(0xF))

	// only the low nibble selects the digit
	assert.Equal(t, uint16(0x00A), FontSprite(0x72))
}
