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

// Package chip8 implements the CHIP-8 virtual machine: memory, registers,
// timers, display, keypad and the instruction decoder and executor. The host
// drives it by calling Step, Tick and the key methods.
package chip8

import (
	"fmt"
	"time"

	"github.com/retroenv/retrogolib/log"
)

/// Status of the machine between steps.
///
type Status int

const (
	/// Running means the next Step executes an instruction.
	///
	Running Status = iota

	/// AwaitingKey means an FX0A instruction is waiting for a key press.
	/// Step does not advance until the host presses a key.
	///
	AwaitingKey
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case AwaitingKey:
		return "awaiting key"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

/// Machine is a CHIP-8 virtual machine. A Machine owns all of its state;
/// separate machines may be stepped concurrently.
///
type Machine struct {
	/// ROM is the pristine memory image (font and program) that Memory is
	/// restored from on Reset.
	///
	ROM Memory

	/// Memory addressable by CHIP-8.
	///
	Memory Memory

	Registers

	Timers  Timers
	Display Display
	Keypad  Keypad

	/// Cycles is how many instructions have been executed since reset.
	///
	Cycles int64

	quirks Quirks
	random RandomSource
	logger *log.Logger

	status Status

	/// register receiving the key when status is AwaitingKey
	///
	wait Register
}

/// New returns a machine with the font loaded and no program.
///
func New(cfg Config) *Machine {
	vm := &Machine{
		quirks: cfg.Quirks,
		random: cfg.Random,
		logger: cfg.Logger,
	}

	if vm.random == nil {
		vm.random = NewRandom(uint64(time.Now().UnixNano()))
	}

	copy(vm.ROM[FontAddress:], Font[:])

	vm.Reset()

	return vm
}

/// LoadROM replaces the program and resets the machine.
///
func (vm *Machine) LoadROM(program []byte) error {
	if len(program) > MemorySize-ProgramStart {
		return fmt.Errorf("%w: %d bytes", ErrROMTooLarge, len(program))
	}

	// drop any previously loaded program
	for i := ProgramStart; i < MemorySize; i++ {
		vm.ROM[i] = 0
	}

	if err := vm.ROM.Load(ProgramStart, program); err != nil {
		return err
	}

	if vm.logger != nil {
		vm.logger.Debug("Loaded ROM", log.Int("size", len(program)))
	}

	vm.Reset()

	return nil
}

/// Reset restores memory from the ROM image and clears all other state.
///
func (vm *Machine) Reset() {
	vm.Memory = vm.ROM
	vm.Registers.reset()
	vm.Timers = Timers{}
	vm.Display.Clear()
	vm.Keypad.reset()
	vm.Cycles = 0
	vm.status = Running
	vm.wait = 0

	if vm.logger != nil {
		vm.logger.Debug("Machine reset")
	}
}

/// SoftReset clears the registers, stack and timers and restarts the program
/// at 0x200 without touching memory or the display.
///
func (vm *Machine) SoftReset() {
	vm.Registers.reset()
	vm.Timers = Timers{}
	vm.status = Running
	vm.wait = 0

	if vm.logger != nil {
		vm.logger.Debug("Machine soft reset")
	}
}

/// Status returns whether the machine is running or waiting for a key.
///
func (vm *Machine) Status() Status {
	return vm.status
}

/// Quirks returns the quirks the machine was configured with.
///
func (vm *Machine) Quirks() Quirks {
	return vm.quirks
}

/// PressKey emulates a CHIP-8 key being pressed.
///
func (vm *Machine) PressKey(key byte) {
	vm.Keypad.Press(key)
}

/// ReleaseKey emulates a CHIP-8 key being released.
///
func (vm *Machine) ReleaseKey(key byte) {
	vm.Keypad.Release(key)
}

/// Tick decrements the delay and sound timers. Call at 60 Hz.
///
func (vm *Machine) Tick() {
	vm.Timers.Tick()
}

/// Skip moves PC past the current instruction without executing it. This
/// also abandons a key wait. Used by hosts to recover from a failed step.
///
func (vm *Machine) Skip() {
	vm.PC = (vm.PC + 2) & addressMask
	vm.status = Running
}

/// Step the CHIP-8 virtual machine a single instruction. On failure the
/// returned error is a *StepError and the machine is unchanged.
///
func (vm *Machine) Step() (Status, error) {
	if vm.status == AwaitingKey {
		vm.pollKey()
		return vm.status, nil
	}

	pc := vm.PC

	if pc > MemorySize-2 {
		return vm.status, vm.fault(&StepError{PC: pc, Err: ErrOutOfBounds, Fetch: true})
	}

	// fetch and advance the program counter
	opcode := vm.Memory.ReadWord(pc)
	vm.PC = (pc + 2) & addressMask

	if err := vm.execute(Decode(opcode)); err != nil {
		vm.PC = pc
		return vm.status, vm.fault(&StepError{PC: pc, Opcode: opcode, Err: err})
	}

	vm.Cycles++

	return vm.status, nil
}

func (vm *Machine) fault(err *StepError) error {
	if vm.logger != nil {
		vm.logger.Debug("Step failed",
			log.Hex("pc", err.PC),
			log.Hex("opcode", err.Opcode),
			log.Err(err.Err))
	}

	return err
}

/// pollKey resolves a pending FX0A when a new key goes down.
///
func (vm *Machine) pollKey() {
	key, ok := vm.Keypad.NewlyPressed()
	if !ok {
		return
	}

	vm.V[vm.wait] = key
	vm.PC = (vm.PC + 2) & addressMask
	vm.status = Running

	if vm.logger != nil {
		vm.logger.Debug("Key wait resolved",
			log.String("register", vm.wait.String()),
			log.Hex("key", key))
	}
}

func (vm *Machine) execute(i Instruction) error {
	switch i.Op {
	case OpCLS:
		vm.cls()
	case OpRET:
		return vm.ret()
	case OpSYS:
		// RCA 1802 machine code is not emulated
	case OpJP:
		vm.jump(i.NNN)
	case OpCALL:
		return vm.call(i.NNN)
	case OpSEImm:
		vm.skipIf(vm.V[i.X] == i.KK)
	case OpSNEImm:
		vm.skipIf(vm.V[i.X] != i.KK)
	case OpSEReg:
		vm.skipIf(vm.V[i.X] == vm.V[i.Y])
	case OpSNEReg:
		vm.skipIf(vm.V[i.X] != vm.V[i.Y])
	case OpLDImm:
		vm.V[i.X] = i.KK
	case OpADDImm:
		vm.V[i.X] += i.KK
	case OpLDReg:
		vm.V[i.X] = vm.V[i.Y]
	case OpOR:
		vm.V[i.X] |= vm.V[i.Y]
	case OpAND:
		vm.V[i.X] &= vm.V[i.Y]
	case OpXOR:
		vm.V[i.X] ^= vm.V[i.Y]
	case OpADDReg:
		vm.addXY(i.X, i.Y)
	case OpSUB:
		vm.subXY(i.X, i.Y)
	case OpSUBN:
		vm.subYX(i.X, i.Y)
	case OpSHR:
		vm.shr(i.X, i.Y)
	case OpSHL:
		vm.shl(i.X, i.Y)
	case OpLDI:
		vm.I = uint16(i.NNN)
	case OpJPV0:
		vm.jump(i.NNN + Address(vm.V[0]))
	case OpRND:
		vm.V[i.X] = vm.random.Byte() & i.KK
	case OpDRW:
		return vm.drw(i.X, i.Y, i.N)
	case OpSKP:
		vm.skipIf(vm.Keypad.IsPressed(vm.V[i.X]))
	case OpSKNP:
		vm.skipIf(!vm.Keypad.IsPressed(vm.V[i.X]))
	case OpLDVxDT:
		vm.V[i.X] = vm.Timers.GetDelay()
	case OpLDVxK:
		vm.waitKey(i.X)
	case OpLDDTVx:
		vm.Timers.SetDelay(vm.V[i.X])
	case OpLDSTVx:
		vm.Timers.SetSound(vm.V[i.X])
	case OpADDI:
		vm.I += uint16(vm.V[i.X])
	case OpLDF:
		vm.I = FontSprite(vm.V[i.X])
	case OpLDB:
		return vm.bcd(i.X)
	case OpSTORE:
		return vm.saveRegs(i.X)
	case OpLOAD:
		return vm.loadRegs(i.X)
	default:
		return ErrUnknownInstruction
	}

	return nil
}

/// clear the video display memory.
///
func (vm *Machine) cls() {
	vm.Display.Clear()
}

/// call a subroutine at address.
///
func (vm *Machine) call(address Address) error {
	if err := vm.Push(vm.PC); err != nil {
		return err
	}

	vm.jump(address)

	return nil
}

/// return from subroutine.
///
func (vm *Machine) ret() error {
	pc, err := vm.Pop()
	if err != nil {
		return err
	}

	vm.PC = pc & addressMask

	return nil
}

/// jump to address.
///
func (vm *Machine) jump(address Address) {
	vm.PC = uint16(address) & addressMask
}

/// skip the next instruction if the condition holds.
///
func (vm *Machine) skipIf(cond bool) {
	if cond {
		vm.PC = (vm.PC + 2) & addressMask
	}
}

/// add vy to vx and set carry.
///
func (vm *Machine) addXY(x, y Register) {
	sum := uint16(vm.V[x]) + uint16(vm.V[y])

	vm.V[x] = byte(sum)
	vm.V[0xF] = byte(sum >> 8)
}

/// subtract vy from vx, set carry if no borrow.
///
func (vm *Machine) subXY(x, y Register) {
	vx, vy := vm.V[x], vm.V[y]

	vm.V[x] = vx - vy
	vm.V[0xF] = flag(vx >= vy)
}

/// subtract vx from vy and store in vx, set carry if no borrow.
///
func (vm *Machine) subYX(x, y Register) {
	vx, vy := vm.V[x], vm.V[y]

	vm.V[x] = vy - vx
	vm.V[0xF] = flag(vy >= vx)
}

/// shr 1 bit into vx, set carry to LSB before shift.
///
func (vm *Machine) shr(x, y Register) {
	src := vm.shiftSource(x, y)

	vm.V[x] = src >> 1
	vm.V[0xF] = src & 1
}

/// shl 1 bit into vx, set carry to MSB before shift.
///
func (vm *Machine) shl(x, y Register) {
	src := vm.shiftSource(x, y)

	vm.V[x] = src << 1
	vm.V[0xF] = src >> 7
}

func (vm *Machine) shiftSource(x, y Register) byte {
	if vm.quirks.ShiftUsesVY {
		return vm.V[y]
	}
	return vm.V[x]
}

/// draw a sprite at I to video memory at vx, vy.
///
func (vm *Machine) drw(x, y Register, n byte) error {
	sprite, err := vm.Memory.Slice(vm.I, int(n))
	if err != nil {
		return err
	}

	collision := vm.Display.DrawSprite(int(vm.V[x]), int(vm.V[y]), sprite)
	vm.V[0xF] = flag(collision)

	return nil
}

/// load vx with next key hit. PC stays on this instruction until then.
///
func (vm *Machine) waitKey(x Register) {
	vm.PC = (vm.PC - 2) & addressMask
	vm.wait = x
	vm.status = AwaitingKey
	vm.Keypad.Snapshot()

	if vm.logger != nil {
		vm.logger.Debug("Waiting for key",
			log.Hex("pc", vm.PC),
			log.String("register", x.String()))
	}
}

/// store BCD of vx at I, I+1, I+2.
///
func (vm *Machine) bcd(x Register) error {
	mem, err := vm.Memory.Slice(vm.I, 3)
	if err != nil {
		return err
	}

	n := vm.V[x]

	mem[0] = n / 100
	mem[1] = n / 10 % 10
	mem[2] = n % 10

	return nil
}

/// save registers v0..vx to I.
///
func (vm *Machine) saveRegs(x Register) error {
	mem, err := vm.Memory.Slice(vm.I, int(x)+1)
	if err != nil {
		return err
	}

	copy(mem, vm.V[:x+1])
	vm.advanceI(x)

	return nil
}

/// load registers v0..vx from I.
///
func (vm *Machine) loadRegs(x Register) error {
	mem, err := vm.Memory.Slice(vm.I, int(x)+1)
	if err != nil {
		return err
	}

	copy(vm.V[:x+1], mem)
	vm.advanceI(x)

	return nil
}

func (vm *Machine) advanceI(x Register) {
	if vm.quirks.LoadStoreIncrementsI {
		vm.I += uint16(x) + 1
	}
}

func flag(b bool) byte {
	if b {
		return 1
	}
	return 0
}
