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

func TestKeypad_SetKey(t *testing.T) {
	var k Keypad

	assert.True(t, k.Press(0xA))
	assert.True(t, k.IsPressed(0xA))
	assert.True(t, k.IsPressed(0x1A)) // low nibble selects the key

	assert.True(t, k.Release(0xA))
	assert.False(t, k.IsPressed(0xA))

	assert.False(t, k.SetKey(KeyCount, true))
	for key := byte(0); key < KeyCount; key++ {
		assert.False(t, k.IsPressed(key))
	}
}

func TestKeypad_NewlyPressed(t *testing.T) {
	var k Keypad

	k.Press(0x3)
	k.Snapshot()

	// a key held when latched is not a new press
	_, ok := k.NewlyPressed()
	assert.False(t, ok)

	k.Press(0x9)
	key, ok := k.NewlyPressed()
	assert.True(t, ok)
	assert.Equal(t, byte(0x9), key)
}

func TestKeypad_ReleaseThenPress(t *testing.T) {
	var k Keypad

	k.Press(0x3)
	k.Snapshot()

	k.Release(0x3)
	_, ok := k.NewlyPressed()
	assert.False(t, ok)

	k.Press(0x3)
	key, ok := k.NewlyPressed()
	assert.True(t, ok)
	assert.Equal(t, byte(0x3), key)
}
