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

/// Timers are the delay and sound countdown registers. They are only ever
/// decremented by Tick, which the host calls at 60 Hz.
///
type Timers struct {
	Delay byte
	Sound byte
}

func (t *Timers) SetDelay(value byte) {
	t.Delay = value
}

func (t *Timers) SetSound(value byte) {
	t.Sound = value
}

func (t *Timers) GetDelay() byte {
	return t.Delay
}

func (t *Timers) GetSound() byte {
	return t.Sound
}

/// Tick decrements both timers by one, stopping at zero.
///
func (t *Timers) Tick() {
	if t.Delay > 0 {
		t.Delay--
	}
	if t.Sound > 0 {
		t.Sound--
	}
}

/// Beeping is true while the sound timer is running; the host should be
/// producing a tone.
///
func (t *Timers) Beeping() bool {
	return t.Sound > 0
}
