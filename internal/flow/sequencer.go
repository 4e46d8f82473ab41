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

// Advance computes the screen that follows current given the answers
// collected so far. When current has a required answer that is missing it
// returns (current, true) and no transition happens.
func Advance(current Screen, answers Answers) (Screen, bool) {
	if !current.Valid() {
		return current, false
	}
	if !answers.Satisfies(current) {
		return current, true
	}
	return successor[current], false
}

// Retreat returns the screen before current. Welcome and Dashboard have no
// predecessor and return themselves.
func Retreat(current Screen) Screen {
	return Prev(current)
}
