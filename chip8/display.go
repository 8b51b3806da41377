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

const (
	/// Width of the display in pixels.
	///
	Width = 64

	/// Height of the display in pixels.
	///
	Height = 32
)

/// Display is the 64x32 monochrome frame buffer.
///
type Display struct {
	/// Video memory, one bit per pixel stored MSB first. Pixel <0,0> is
	/// bit 0x80 of byte 0, pixel <8,0> is bit 0x80 of byte 1.
	///
	Video [Width * Height / 8]byte

	/// set when the video memory changed since the host last presented it
	///
	dirty bool
}

/// Clear turns off every pixel.
///
func (d *Display) Clear() {
	d.Video = [Width * Height / 8]byte{}
	d.dirty = true
}

/// Pixel returns true if the pixel at <x,y> is set. Coordinates outside the
/// display are never set.
///
func (d *Display) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}

	i := y*Width + x

	return d.Video[i>>3]&(0x80>>uint(i&7)) != 0
}

/// DrawSprite XORs each row of the sprite into video memory at <x,y>, MSB
/// leftmost. Pixels that fall off an edge wrap around to the opposite side.
/// Returns true if any pixel was turned off.
///
func (d *Display) DrawSprite(x, y int, sprite []byte) bool {
	collision := false

	for row, bits := range sprite {
		py := wrap(y+row, Height)

		for col := 0; col < 8; col++ {
			if bits&(0x80>>uint(col)) == 0 {
				continue
			}

			i := py*Width + wrap(x+col, Width)
			mask := byte(0x80) >> uint(i&7)

			// was this pixel on before the xor?
			if d.Video[i>>3]&mask != 0 {
				collision = true
			}

			d.Video[i>>3] ^= mask
		}
	}

	d.dirty = true

	return collision
}

/// Dirty is true if video memory changed since the last ClearDirty.
///
func (d *Display) Dirty() bool {
	return d.dirty
}

/// ClearDirty is called by the host after it presents a frame.
///
func (d *Display) ClearDirty() {
	d.dirty = false
}

func wrap(n, size int) int {
	n %= size
	if n < 0 {
		n += size
	}
	return n
}
