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


package wizard

import "github.com/charmbracelet/lipgloss"

const (
	brandColor  = lipgloss.Color("208")
	accentColor = lipgloss.Color("29")
	mutedColor  = lipgloss.Color("8")
	errorColor  = lipgloss.Color("160")
)

var (
	frameStyle = lipgloss.NewStyle().
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(brandColor)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	selectedStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(brandColor).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(brandColor).
			Padding(0, 1)

	stampStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(accentColor).
			Padding(0, 2)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(brandColor).
			Bold(true).
			Underline(true)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(accentColor).
			Bold(true).
			Padding(0, 3).
			MarginTop(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)
)
