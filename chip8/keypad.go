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

/// KeyCount is the number of keys on the hex keypad.
///
const KeyCount = 16

/// Keypad holds the current state of the 16-key pad. It is written by the
/// host between steps and only read by instructions.
///
type Keypad struct {
	keys [KeyCount]bool

	/// key state seen by the last Snapshot/NewlyPressed, used to detect a
	/// key going down while waiting
	///
	latched [KeyCount]bool
}

/// SetKey sets the state of a key. Returns false if the key is not 0-F.
///
func (k *Keypad) SetKey(key byte, pressed bool) bool {
	if key >= KeyCount {
		return false
	}

	k.keys[key] = pressed

	return true
}

/// Press emulates a key being pressed.
///
func (k *Keypad) Press(key byte) bool {
	return k.SetKey(key, true)
}

/// Release emulates a key being released.
///
func (k *Keypad) Release(key byte) bool {
	return k.SetKey(key, false)
}

/// IsPressed returns the state of a key. Only the low nibble is used, which
/// is how a register value selects a key.
///
func (k *Keypad) IsPressed(key byte) bool {
	return k.keys[key&0xF]
}

/// Snapshot latches the current key state. Keys held at this point do not
/// count as new presses until they are released.
///
func (k *Keypad) Snapshot() {
	k.latched = k.keys
}

/// NewlyPressed returns the lowest key that is down now but was up when
/// last latched. Released keys are unlatched as they are seen.
///
func (k *Keypad) NewlyPressed() (byte, bool) {
	for i := range k.keys {
		if k.keys[i] && !k.latched[i] {
			return byte(i), true
		}

		k.latched[i] = k.keys[i]
	}

	return 0, false
}

func (k *Keypad) reset() {
	*k = Keypad{}
}
