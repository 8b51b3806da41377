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
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/retroenv/retrogolib/log"
	"github.com/sqweek/dialog"
)

var (
	/// Path of the currently loaded ROM, empty if none.
	///
	File string

	errNoROM = errors.New("no ROM loaded")
)

/// Load a ROM file into the virtual machine and reset it.
///
func Load(path string) error {
	program, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading ROM '%s': %w", path, err)
	}

	if err := VM.LoadROM(program); err != nil {
		return fmt.Errorf("loading ROM '%s': %w", path, err)
	}

	File = path

	if Window != nil {
		Window.SetTitle("CHIP-8 - " + filepath.Base(path))
	}

	logger.Info("Loaded ROM", log.String("file", path), log.Int("size", len(program)))
	Console.Logln("Loaded", filepath.Base(path))

	return nil
}

/// Reload the current ROM from disk.
///
func Reload() error {
	if File == "" {
		return errNoROM
	}
	return Load(File)
}

/// LoadDialog asks for a ROM file to load.
///
func LoadDialog() {
	path, err := dialog.File().
		Title("Load ROM").
		Filter("CHIP-8 ROMs", "ch8", "c8").
		Filter("All files", "*").
		Load()

	if err != nil {
		if !errors.Is(err, dialog.ErrCancelled) {
			logger.Error("Opening file dialog failed", log.Err(err))
		}
		return
	}

	if err := Load(path); err != nil {
		logger.Error("Loading ROM failed", log.Err(err))
		Console.Log(err.Error())

		dialog.Message("%s", err).Title("Load ROM").Error()
	}
}
