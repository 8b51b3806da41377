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

	"github.com/retroenv/retrogolib/assert"
)

func TestRegisters_PushPop(t *testing.T) {
	for n := 0; n <= StackDepth; n++ {
		var r Registers

		for i := 0; i < n; i++ {
			assert.NoError(t, r.Push(uint16(0x200+i*2)))
		}
		assert.Equal(t, n, r.Depth())

		// popped in reverse order
		for i := n - 1; i >= 0; i-- {
			addr, err := r.Pop()
			assert.NoError(t, err)
			assert.Equal(t, uint16(0x200+i*2), addr)
		}
		assert.Equal(t, 0, r.Depth())
	}
}

func TestRegisters_Overflow(t *testing.T) {
	var r Registers

	for i := 0; i < StackDepth; i++ {
		assert.NoError(t, r.Push(uint16(i)))
	}

	err := r.Push(0x300)
	assert.True(t, errors.Is(err, ErrStackOverflow))

	// the failed push changed nothing
	assert.Equal(t, StackDepth, r.Depth())
	addr, err := r.Pop()
	assert.NoError(t, err)
	assert.Equal(t, uint16(StackDepth-1), addr)
}

func TestRegisters_Underflow(t *testing.T) {
	var r Registers

	_, err := r.Pop()
	assert.True(t, errors.Is(err, ErrStackUnderflow))
	assert.Equal(t, 0, r.Depth())

	assert.NoError(t, r.Push(0x222))
	_, err = r.Pop()
	assert.NoError(t, err)

	_, err = r.Pop()
	assert.True(t, errors.Is(err, ErrStackUnderflow))
}

func TestRegisters_Reset(t *testing.T) {
	r := Registers{I: 0x123, PC: 0x456, SP: 3}
	r.V[4] = 9

	r.reset()
	assert.Equal(t, Registers{PC: ProgramStart}, r)
}
