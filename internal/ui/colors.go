// Habbit - Habit Onboarding Flow
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


// Package ui provides terminal output: colors, status messages, the logo,
// and a line spinner for non-interactive runs.
package ui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// ANSI color codes. Brand is the Habbit orange.
var (
	Red    = "\033[0;31m"
	Green  = "\033[0;32m"
	Yellow = "\033[0;33m"
	Cyan   = "\033[0;36m"
	Brand  = "\033[38;5;208m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	NC     = "\033[0m" // No Color / Reset
)

// Stdout and Stderr are where messages go. Tests swap them.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func init() {
	if !IsTerminal(os.Stdout) {
		DisableColor()
	}
}

// DisableColor turns every color code into an empty string.
func DisableColor() {
	Red, Green, Yellow, Cyan, Brand, Bold, Dim, NC = "", "", "", "", "", "", "", ""
}

// IsTerminal reports whether f is attached to an interactive terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}
