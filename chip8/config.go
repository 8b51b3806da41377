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
	"github.com/retroenv/retrogolib/log"
)

/// Quirks select between behaviours that differ across historical CHIP-8
/// interpreters. The zero value is the behaviour most ROMs written since
/// CHIP-48 expect.
///
type Quirks struct {
	/// ShiftUsesVY makes 8XY6 and 8XYE shift VY and store the result in VX,
	/// as the COSMAC VIP interpreter did. When false (default) VX is shifted
	/// in place and VY is ignored.
	///
	ShiftUsesVY bool

	/// LoadStoreIncrementsI makes FX55 and FX65 leave I pointing past the
	/// last register transferred (I += X+1), as the COSMAC VIP interpreter
	/// did. When false (default) I is unchanged.
	///
	LoadStoreIncrementsI bool
}

/// Config is passed to New.
///
type Config struct {
	Quirks Quirks

	/// Random is the source for CXKK. A time seeded source is used if nil.
	///
	Random RandomSource

	/// Logger receives debug output from the machine. Nil disables logging.
	///
	Logger *log.Logger
}

/// DefaultConfig returns the default machine configuration.
///
func DefaultConfig() Config {
	return Config{}
}
