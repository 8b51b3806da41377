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

package main

import (
	"fmt"

	"github.com/massung/chip-8/chip8"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	/// lines of the console shown in the log panel
	///
	logLines = 16

	/// characters that fit in the log panel
	///
	logColumns = 53
)

var (
	/// True if pausing emulation (single stepping).
	///
	Paused bool

	/// Current debug window address.
	///
	Address uint16

	/// Addresses that pause emulation when PC reaches them.
	///
	Breakpoints = set.New[uint16]()

	/// Text shown in the log panel.
	///
	Console = NewConsole()
)

/// Step the virtual machine a single instruction. Emulation is paused when
/// a breakpoint is reached (unless forced) or the instruction fails. A
/// pending key wait does not hit the breakpoint at its PC again.
///
func Step(force bool) {
	waiting := VM.Status() == chip8.AwaitingKey

	if !force && !waiting && Breakpoints.Contains(VM.PC) {
		Paused = true
		Console.Logf("Breakpoint at #%04X", VM.PC)
		return
	}

	if _, err := VM.Step(); err != nil {
		Paused = true

		logger.Error("Step failed", log.Err(err))
		Console.Log(err.Error())
		Console.Log("Paused. F7 skips the instruction.")
	}
}

/// Resume emulation, stepping over a breakpoint at PC.
///
func Resume() {
	if Breakpoints.Contains(VM.PC) {
		Step(true)
	}
	Paused = false
}

/// ToggleBreakpoint sets or clears a breakpoint at PC.
///
func ToggleBreakpoint() {
	if Breakpoints.Contains(VM.PC) {
		Breakpoints.Remove(VM.PC)
		Console.Logf("Cleared breakpoint at #%04X", VM.PC)
	} else {
		Breakpoints.Add(VM.PC)
		Console.Logf("Set breakpoint at #%04X", VM.PC)
	}
}

/// Show the HELP text in the log.
///
func DebugHelp() {
	Console.Logln("Virtual keys:")
	Console.Log("  1-2-3-4")
	Console.Log("  Q-W-E-R")
	Console.Log("  A-S-D-F")
	Console.Log("  Z-X-C-V")
	Console.Log("")
	Console.Log("Emulation keys:")
	Console.Log("  ESC       - Quit")
	Console.Log("  BS        - Reset (CTRL to reset paused)")
	Console.Log("  F2        - Reload ROM")
	Console.Log("  F3        - Load ROM")
	Console.Log("  SPACE/F5  - Pause/resume")
	Console.Log("  F6/F10    - Step")
	Console.Log("  F7        - Skip instruction")
	Console.Log("  F9        - Toggle breakpoint")
	Console.Log("  UP/DOWN   - Scroll log")
	Console.Log("  HOME/END  - Log start/end")
}

/// DebugAssembly renders the disassembled instructions around
/// the CHIP-8 program counter.
///
func DebugAssembly(x, y int32) {
	pc := VM.PC

	if Address+30 <= pc || Address >= pc || (Address^pc)&1 == 1 {
		Address = max(pc, 2) - 2
	}

	// show the disassembled instructions
	for i := uint16(0); i < 32; i += 2 {
		line := y + int32(i)*5

		if Address+i == pc {
			if Paused {
				Renderer.SetDrawColor(176, 32, 57, 255)
			} else {
				Renderer.SetDrawColor(57, 102, 176, 255)
			}

			// highlight the current instruction
			Renderer.FillRect(&sdl.Rect{
				X: x,
				Y: line - 1,
				W: 200,
				H: 10,
			})
		}

		text := VM.Disassemble(Address + i)
		if Breakpoints.Contains(Address + i) {
			text = "*" + text
		} else {
			text = " " + text
		}

		DrawText(text, x, line)
	}
}

/// Show the current value of all the CHIP-8 registers.
///
func DebugRegisters(x, y int32) {
	for i := int32(0); i < 16; i++ {
		DrawText(fmt.Sprintf("V%X - #%02X", i, VM.V[i]), x, y+i*10)
	}

	// shift over for the other registers
	x += 70

	DrawText(fmt.Sprintf("PC - #%04X", VM.PC), x, y)
	DrawText(fmt.Sprintf("SP - #%02X", VM.Depth()), x, y+10)
	DrawText(fmt.Sprintf("I  - #%04X", VM.I), x, y+30)
	DrawText(fmt.Sprintf("DT - #%02X", VM.Timers.GetDelay()), x, y+50)
	DrawText(fmt.Sprintf("ST - #%02X", VM.Timers.GetSound()), x, y+60)

	// show what's on top of the stack
	for i := 0; i < 4 && i < VM.Depth(); i++ {
		DrawText(fmt.Sprintf("   #%04X", VM.Stack[VM.Depth()-1-i]), x, y+80+int32(i)*10)
	}

	if VM.Status() == chip8.AwaitingKey {
		DrawText("KEY?", x, y+130)
	}
	DrawText(fmt.Sprintf("%d", VM.Cycles), x, y+150)
}

/// Show the current log text.
///
func DebugLog(x, y int32) {
	for _, line := range Console.Window(logLines) {
		if len(line) > logColumns {
			line = line[:logColumns-3] + "..."
		}

		DrawText(line, x, y)

		// advance to the next line
		y += 10
	}
}
