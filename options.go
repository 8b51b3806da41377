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
	"flag"
	"fmt"
	"os"

	"github.com/massung/chip-8/chip8"
)

const (
	/// roughly the speed of the RCA 1802 running the original interpreter
	///
	defaultHz = 500

	maxHz = 100000
)

type options struct {
	rom string
	hz  int

	shiftUsesVY          bool
	loadStoreIncrementsI bool

	paused bool
	debug  bool
	quiet  bool
}

/// usageError is returned when the command line could not be parsed.
///
type usageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *usageError) Error() string {
	return e.msg
}

func (e *usageError) ShowUsage() {
	if e.msg != "" {
		fmt.Println(e.msg)
	}
	fmt.Printf("usage: chip-8 [options] [rom file]\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

func parseFlags(args []string) (options, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.Usage = func() {}
	opts := options{}

	flags.StringVar(&opts.rom, "rom", "", "name of the ROM file to load, a file dialog is shown if none is given")
	flags.IntVar(&opts.hz, "hz", defaultHz, "number of instructions executed per second")
	flags.BoolVar(&opts.shiftUsesVY, "shift-vy", false, "8XY6 and 8XYE shift VY into VX (COSMAC VIP behaviour)")
	flags.BoolVar(&opts.loadStoreIncrementsI, "loadstore-inc", false, "FX55 and FX65 increment I (COSMAC VIP behaviour)")
	flags.BoolVar(&opts.paused, "paused", false, "start with emulation paused")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging of the virtual machine")
	flags.BoolVar(&opts.quiet, "q", false, "only log errors")

	if err := flags.Parse(args); err != nil {
		return opts, &usageError{flags: flags}
	}

	rest := flags.Args()
	switch {
	case len(rest) > 1:
		return opts, &usageError{flags: flags, msg: fmt.Sprintf("unexpected argument %s", rest[1])}
	case len(rest) == 1 && opts.rom != "":
		return opts, &usageError{flags: flags, msg: "ROM given both as -rom and as argument"}
	case len(rest) == 1:
		opts.rom = rest[0]
	}

	if opts.hz <= 0 || opts.hz > maxHz {
		return opts, fmt.Errorf("invalid instruction rate %d, must be between 1 and %d", opts.hz, maxHz)
	}

	return opts, nil
}

func (o options) quirks() chip8.Quirks {
	return chip8.Quirks{
		ShiftUsesVY:          o.shiftUsesVY,
		LoadStoreIncrementsI: o.loadStoreIncrementsI,
	}
}
