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

package flow

import (
	"errors"
	"strings"
)

// ErrMissingAnswer is reported by callers that need an error value for a
// failed advance. The controller itself only raises a validation flag.
var ErrMissingAnswer = errors.New("missing required answer")

// Flags records, per screen, whether the last advance attempt from it failed
// because its required answer was missing.
type Flags uint32

// Has reports whether the flag for s is raised.
func (f Flags) Has(s Screen) bool {
	if !s.Valid() {
		return false
	}
	return f&(1<<uint(s)) != 0
}

// With returns f with the flag for s raised.
func (f Flags) With(s Screen) Flags {
	if !s.Valid() {
		return f
	}
	return f | 1<<uint(s)
}

// Without returns f with the flag for s cleared.
func (f Flags) Without(s Screen) Flags {
	if !s.Valid() {
		return f
	}
	return f &^ (1 << uint(s))
}

// Screens lists the screens whose flag is raised, in flow order.
func (f Flags) Screens() []Screen {
	var out []Screen
	for _, s := range Screens() {
		if f.Has(s) {
			out = append(out, s)
		}
	}
	return out
}

func (f Flags) String() string {
	var names []string
	for _, s := range f.Screens() {
		names = append(names, s.String())
	}
	return "[" + strings.Join(names, " ") + "]"
}
