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
	"testing"

	"github.com/massung/chip-8/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    options
		wantErr bool
		usage   bool
	}{
		{
			name: "defaults",
			want: options{hz: defaultHz},
		},
		{
			name: "rom argument",
			args: []string{"games/BRIX"},
			want: options{rom: "games/BRIX", hz: defaultHz},
		},
		{
			name: "all flags",
			args: []string{"-rom", "pong.ch8", "-hz", "700", "-shift-vy", "-loadstore-inc", "-paused", "-debug", "-q"},
			want: options{
				rom:                  "pong.ch8",
				hz:                   700,
				shiftUsesVY:          true,
				loadStoreIncrementsI: true,
				paused:               true,
				debug:                true,
				quiet:                true,
			},
		},
		{name: "rom twice", args: []string{"-rom", "a.ch8", "b.ch8"}, wantErr: true, usage: true},
		{name: "extra argument", args: []string{"a.ch8", "b.ch8"}, wantErr: true, usage: true},
		{name: "unknown flag", args: []string{"-turbo"}, wantErr: true, usage: true},
		{name: "zero rate", args: []string{"-hz", "0"}, wantErr: true},
		{name: "rate too high", args: []string{"-hz", "1000000"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parseFlags(tt.args)
			if !tt.wantErr {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, opts)
				return
			}

			assert.Error(t, err)

			var usageErr *usageError
			assert.Equal(t, tt.usage, errors.As(err, &usageErr))
		})
	}
}

func TestOptionsQuirks(t *testing.T) {
	opts, err := parseFlags([]string{"-shift-vy"})
	assert.NoError(t, err)
	assert.Equal(t, chip8.Quirks{ShiftUsesVY: true}, opts.quirks())
}
