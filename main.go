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
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/massung/chip-8/chip8"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	/// The CHIP-8 virtual machine.
	///
	VM *chip8.Machine

	/// The SDL Window and Renderer.
	///
	Window   *sdl.Window
	Renderer *sdl.Renderer

	/// Structured log written to the terminal.
	///
	logger *log.Logger
)

func init() {
	runtime.LockOSThread()
}

func main() {
	ctx := app.Context()

	opts, err := parseFlags(os.Args[1:])
	logger = createLogger(opts.debug, opts.quiet)
	if err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			usageErr.ShowUsage()
			os.Exit(1)
		}
		logger.Fatal(err.Error())
	}

	// create a new CHIP-8 virtual machine, must happen early!
	VM = chip8.New(chip8.Config{
		Quirks: opts.quirks(),
		Logger: logger,
	})

	if err := initWindow(); err != nil {
		logger.Fatal(err.Error())
	}
	defer sdl.Quit()

	// initialize subsystems
	InitScreen()
	InitAudio()
	InitFont()

	Paused = opts.paused
	Console.Log("Press H for help.")

	if opts.rom != "" {
		if err := Load(opts.rom); err != nil {
			logger.Error("Loading ROM failed", log.Err(err))
			Console.Log(err.Error())
		}
	} else {
		LoadDialog()
	}

	run(ctx, opts.hz)
}

func createLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

func initWindow() error {
	var err error

	if err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return fmt.Errorf("initializing SDL: %w", err)
	}

	// create the main window and renderer
	if Window, Renderer, err = sdl.CreateWindowAndRenderer(550, 348, sdl.WINDOW_OPENGL|sdl.WINDOW_SHOWN); err != nil {
		return fmt.Errorf("creating window: %w", err)
	}

	// set the icon
	if icon, err := sdl.LoadBMP("data/chip_8.bmp"); err == nil {
		mask := sdl.MapRGB(icon.Format, 255, 0, 255)

		// create the mask color key and set the icon
		_ = icon.SetColorKey(true, mask)
		Window.SetIcon(icon)
	}

	Window.SetTitle("CHIP-8")

	return nil
}

/// run the emulation until the window is closed or the context is cancelled.
///
func run(ctx context.Context, hz int) {
	clock := time.NewTicker(time.Second / time.Duration(hz))
	video := time.NewTicker(time.Second / 60)

	defer clock.Stop()
	defer video.Stop()

	// loop until window closed or user quit
	for ProcessEvents() {
		select {
		case <-ctx.Done():
			logger.Info("Interrupted")
			return
		case <-video.C:
			if !Paused {
				VM.Tick()
			}

			SetTone(!Paused && VM.Timers.Beeping())
			Refresh()
		case <-clock.C:
			if !Paused {
				Step(false)
			}
		}
	}
}

/// Refresh redraws the entire window.
///
func Refresh() {
	Renderer.SetDrawColor(32, 42, 53, 255)
	Renderer.Clear()

	// frame various portions of the app
	Frame(8, 8, 322, 162)
	Frame(338, 8, 204, 162)
	Frame(8, 176, 146, 164)
	Frame(162, 176, 380, 164)

	// update the video screen and copy it
	RefreshScreen()
	CopyScreen(10, 10, 320, 160)

	// debug assembly, virtual registers and log
	DebugAssembly(342, 12)
	DebugRegisters(12, 180)
	DebugLog(166, 180)

	// show the new frame
	Renderer.Present()
}

/// Frame draws a sunken border around a panel.
///
func Frame(x, y, w, h int32) {
	Renderer.SetDrawColor(0, 0, 0, 255)
	Renderer.DrawLine(x, y, x+w, y)
	Renderer.DrawLine(x, y, x, y+h)

	// highlight
	Renderer.SetDrawColor(95, 112, 120, 255)
	Renderer.DrawLine(x+w, y, x+w, y+h)
	Renderer.DrawLine(x, y+h, x+w, y+h)
}
