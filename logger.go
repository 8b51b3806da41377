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
	"strings"
)

/// maxConsoleLines is how many lines the console keeps before dropping the
/// oldest.
///
const maxConsoleLines = 1000

/// Console is an output log shown in the debugger panel that can be
/// scrolled.
///
type Console struct {
	/// buf contains each line of logged text.
	///
	buf []string

	/// pos is the current user read position within the log.
	///
	pos int
}

/// NewConsole creates a new, empty Console.
///
func NewConsole() *Console {
	return &Console{
		buf: make([]string, 0, 100),
	}
}

/// Log outputs a new line to the log.
///
func (c *Console) Log(s ...string) {
	c.append(strings.Join(s, " "))
}

/// Logf outputs a new formatted line to the log.
///
func (c *Console) Logf(format string, args ...any) {
	c.append(fmt.Sprintf(format, args...))
}

/// Logln outputs a new line to the log, with an empty line prefixed.
///
func (c *Console) Logln(s ...string) {
	c.append("", strings.Join(s, " "))
}

func (c *Console) append(lines ...string) {
	scroll := c.pos == len(c.buf)

	c.buf = append(c.buf, lines...)

	// drop the oldest lines
	if over := len(c.buf) - maxConsoleLines; over > 0 {
		c.buf = append(c.buf[:0], c.buf[over:]...)
		c.pos = max(c.pos-over, 0)
	}

	if scroll {
		c.pos = len(c.buf)
	}
}

/// Len returns the number of lines logged.
///
func (c *Console) Len() int {
	return len(c.buf)
}

/// Window returns the n lines ending at the read position.
///
func (c *Console) Window(n int) []string {
	start := max(c.pos-n, 0)

	if start+n >= len(c.buf) {
		return c.buf[start:]
	}

	return c.buf[start : start+n]
}

/// Home scrolls the log to the beginning.
///
func (c *Console) Home() {
	c.pos = 0
}

/// End scrolls the log to the end.
///
func (c *Console) End() {
	c.pos = len(c.buf)
}

/// ScrollUp scrolls the log back one position.
///
func (c *Console) ScrollUp() {
	c.pos--

	// clamp to home
	if c.pos < 0 {
		c.Home()
	}
}

/// ScrollDown scrolls the log forward one position.
///
func (c *Console) ScrollDown(windowSize int) {
	c.pos++

	// if less than the window size, drop to it
	if c.pos < windowSize {
		c.pos = windowSize
	}

	// clamp to end
	if c.pos >= len(c.buf) {
		c.End()
	}
}
