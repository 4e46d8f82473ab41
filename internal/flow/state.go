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

import "fmt"

// SlideCount is the number of pages in the onboarding carousel.
const SlideCount = 3

// DefaultPlan is the paywall plan selected when the paywall opens.
const DefaultPlan = "yearly"

// Tab is a dashboard tab.
type Tab string

const (
	TabHome     Tab = "home"
	TabStats    Tab = "stats"
	TabSettings Tab = "settings"
)

// Tabs returns the dashboard tabs in display order.
func Tabs() []Tab {
	return []Tab{TabHome, TabStats, TabSettings}
}

// ParseTab resolves a dashboard tab by name.
func ParseTab(name string) (Tab, error) {
	for _, t := range Tabs() {
		if string(t) == name {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown tab %q", name)
}

// State is an immutable snapshot of the controller. Every change goes
// through Apply, which returns a new value.
type State struct {
	Screen  Screen
	Answers Answers
	Flags   Flags

	Slide          int  // onboarding carousel page
	TailoringDone  bool // personalization delay has elapsed
	ContractSigned bool // commitment signed on WhatCanDo
	Plan           string
	Tab            Tab
}

// NewState returns the state at application start.
func NewState() State {
	return State{
		Screen: Welcome,
		Plan:   DefaultPlan,
		Tab:    TabHome,
	}
}

// Failed reports whether the last advance attempt from the current screen
// was rejected for a missing answer.
func (s State) Failed() bool {
	return s.Flags.Has(s.Screen)
}

// enter moves to screen, resetting state that belongs to a single visit.
func (s State) enter(screen Screen) State {
	if screen == s.Screen {
		return s
	}
	s.Screen = screen
	switch screen {
	case Tailoring:
		s.TailoringDone = false
	case WhatCanDo:
		s.ContractSigned = false
	case Dashboard:
		s.Tab = TabHome
	}
	return s
}
