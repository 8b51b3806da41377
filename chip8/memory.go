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

const (
	/// MemorySize is the number of bytes addressable by CHIP-8.
	///
	MemorySize = 0x1000

	/// ProgramStart is where all programs are loaded and begin.
	///
	ProgramStart = 0x200

	/// addresses are 12-bit
	///
	addressMask = MemorySize - 1
)

/// Memory addressable by CHIP-8. The first 512 bytes are reserved for the
/// font sprites (and originally the interpreter), the rest is program and
/// working memory.
///
type Memory [MemorySize]byte

/// Read a byte. The address is masked to 12 bits.
///
func (m *Memory) Read(address uint16) byte {
	return m[address&addressMask]
}

/// Write a byte. The address is masked to 12 bits.
///
func (m *Memory) Write(address uint16, b byte) {
	m[address&addressMask] = b
}

/// ReadWord reads a big-endian 16-bit value. Both bytes are masked, so a
/// read at 0xFFF wraps to 0x000 for the low byte.
///
func (m *Memory) ReadWord(address uint16) uint16 {
	return uint16(m.Read(address))<<8 | uint16(m.Read(address+1))
}

/// WriteWord writes a big-endian 16-bit value, used to poke opcodes.
///
func (m *Memory) WriteWord(address uint16, w uint16) {
	m.Write(address, byte(w>>8))
	m.Write(address+1, byte(w))
}

/// Load copies a block of bytes into memory at offset. Nothing is written if
/// the block would extend past the end of memory.
///
func (m *Memory) Load(offset uint16, data []byte) error {
	if int(offset)+len(data) > MemorySize {
		return fmt.Errorf("%w: %d bytes at #%04X", ErrOutOfBounds, len(data), offset)
	}

	copy(m[offset:], data)

	return nil
}

/// Slice returns n bytes of memory starting at address. The returned slice
/// aliases memory. Fails if any byte of the range is outside memory.
///
func (m *Memory) Slice(address uint16, n int) ([]byte, error) {
	end := int(address) + n

	if n < 0 || end > MemorySize {
		return nil, fmt.Errorf("%w: %d bytes at #%04X", ErrOutOfBounds, n, address)
	}

	return m[address:end], nil
}
