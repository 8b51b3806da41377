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

// typedef unsigned char byte;
// void Tone(void *data, byte *stream, int len);
import "C"
import (
	"sync/atomic"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
)

const (
	sampleRate = 22050

	/// samples per half period of the square wave
	///
	toneHalfPeriod = sampleRate / 440 / 2
)

var (
	/// Set while the sound timer is running. Read by the audio thread.
	///
	beeping atomic.Bool

	/// Position within the square wave, only used by the audio thread.
	///
	phase int
)

/// Initialize an audio device for the CHIP-8 virtual machine.
///
func InitAudio() {
	spec := &sdl.AudioSpec{
		Freq:     sampleRate,
		Format:   sdl.AUDIO_F32,
		Channels: 1,
		Samples:  512,
		Callback: sdl.AudioCallback(C.Tone),
	}

	// open the device and start playing it
	if err := sdl.OpenAudio(spec, nil); err != nil {
		logger.Fatal(err.Error())
	}

	// start playing silence immediately
	sdl.PauseAudio(false)
}

/// SetTone turns the buzzer on or off.
///
func SetTone(on bool) {
	beeping.Store(on)
}

//export Tone
func Tone(_ unsafe.Pointer, stream *C.byte, length C.int) {
	buf := unsafe.Slice((*C.float)(unsafe.Pointer(stream)), int(length)/4)

	if !beeping.Load() {
		for i := range buf {
			buf[i] = 0
		}
		return
	}

	// fill in the data with a square wave
	for i := range buf {
		if phase/toneHalfPeriod%2 == 0 {
			buf[i] = 0.25
		} else {
			buf[i] = -0.25
		}

		phase = (phase + 1) % (toneHalfPeriod * 2)
	}
}
