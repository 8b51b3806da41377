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
	"math/rand/v2"
)

/// RandomSource produces the random bytes used by CXKK.
///
type RandomSource interface {
	Byte() byte
}

/// Random is a seeded pseudo-random source.
///
type Random struct {
	rng *rand.Rand
}

/// NewRandom returns a source that produces the same sequence for the same
/// seed.
///
func NewRandom(seed uint64) *Random {
	return &Random{
		rng: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
	}
}

func (r *Random) Byte() byte {
	return byte(r.rng.UintN(256))
}

/// SequenceRandom replays a fixed list of bytes, starting over at the end.
/// An empty sequence always produces zero.
///
type SequenceRandom struct {
	Bytes []byte

	pos int
}

func (s *SequenceRandom) Byte() byte {
	if len(s.Bytes) == 0 {
		return 0
	}

	b := s.Bytes[s.pos%len(s.Bytes)]
	s.pos++

	return b
}
