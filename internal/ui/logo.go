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


package ui

import "fmt"

// Tagline is shown under the logo and on the welcome screen.
const Tagline = "Tiny changes. Remarkable results."

// LogoText is the Habbit wordmark.
const LogoText = `  _           _     _     _ _   
 | |__   __ _| |__ | |__ (_) |_ 
 | '_ \ / _' | '_ \| '_ \| | __|
 | | | | (_| | |_) | |_) | | |_ 
 |_| |_|\__,_|_.__/|_.__/|_|\__|`

// Logo prints the Habbit wordmark with its tagline.
func Logo() {
	fmt.Fprintf(Stdout, "%s%s%s\n", Brand, LogoText, NC)
	fmt.Fprintf(Stdout, "%s  %s%s\n", Dim, Tagline, NC)
}
