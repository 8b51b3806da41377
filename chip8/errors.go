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
	"fmt"
)

var (
	/// ErrStackOverflow is returned when calling a subroutine with the stack
	/// already 16 deep.
	///
	ErrStackOverflow = errors.New("stack overflow")

	/// ErrStackUnderflow is returned when returning with an empty stack.
	///
	ErrStackUnderflow = errors.New("stack underflow")

	/// ErrUnknownInstruction is returned when executing an opcode that is
	/// not part of the CHIP-8 instruction set.
	///
	ErrUnknownInstruction = errors.New("unknown instruction")

	/// ErrOutOfBounds is returned when an access would fall outside memory.
	///
	ErrOutOfBounds = errors.New("out of bounds memory access")

	/// ErrROMTooLarge is returned when a program does not fit above 0x200.
	///
	ErrROMTooLarge = errors.New("program too large to fit in memory")
)

/// StepError is returned by Step when an instruction could not execute.
/// The machine is left as it was before the step, with PC on the faulting
/// instruction.
///
type StepError struct {
	PC     uint16
	Opcode uint16
	Err    error

	/// Fetch is set when the opcode itself could not be read, in which case
	/// Opcode is meaningless.
	///
	Fetch bool
}

func (e *StepError) Error() string {
	if e.Fetch {
		return fmt.Sprintf("fetch at #%04X: %v", e.PC, e.Err)
	}

	if errors.Is(e.Err, ErrUnknownInstruction) {
		return fmt.Sprintf("invalid opcode %04X at #%04X", e.Opcode, e.PC)
	}

	return fmt.Sprintf("%04X at #%04X: %v", e.Opcode, e.PC, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
