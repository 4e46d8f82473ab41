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

// Package flow is the onboarding flow controller: the screen sequence,
// the answers collected along it, and the pure transition function that
// moves between screens.
package flow

import "fmt"

// Screen identifies one step of the onboarding flow.
type Screen int

const (
	Welcome Screen = iota
	Onboarding
	NameInput
	WelcomeUser
	EnergySelection
	TrackingSelection
	GoalSelection
	BarrierSelection
	MainGoalSelection
	Tailoring
	News
	BadNewsStat
	WhatCanDo
	Solution
	Dashboard
	CreateHabit

	screenCount
)

var screenNames = [screenCount]string{
	Welcome:           "welcome",
	Onboarding:        "onboarding",
	NameInput:         "name-input",
	WelcomeUser:       "welcome-user",
	EnergySelection:   "energy-selection",
	TrackingSelection: "tracking-selection",
	GoalSelection:     "goal-selection",
	BarrierSelection:  "barrier-selection",
	MainGoalSelection: "main-goal-selection",
	Tailoring:         "tailoring",
	News:              "news",
	BadNewsStat:       "bad-news-stat",
	WhatCanDo:         "what-can-do",
	Solution:          "solution",
	Dashboard:         "dashboard",
	CreateHabit:       "create-habit",
}

// Screens returns every screen in flow order.
func Screens() []Screen {
	out := make([]Screen, 0, screenCount)
	for s := Welcome; s < screenCount; s++ {
		out = append(out, s)
	}
	return out
}

func (s Screen) String() string {
	if !s.Valid() {
		return fmt.Sprintf("screen(%d)", int(s))
	}
	return screenNames[s]
}

// Valid reports whether s is one of the known screens.
func (s Screen) Valid() bool {
	return s >= Welcome && s < screenCount
}

// ParseScreen resolves a screen by its kebab-case name.
func ParseScreen(name string) (Screen, error) {
	for s := Welcome; s < screenCount; s++ {
		if screenNames[s] == name {
			return s, nil
		}
	}
	return Welcome, fmt.Errorf("unknown screen %q", name)
}

// successor is the forward table. Dashboard is a sink: CreateHabit is only
// reachable through OpenCreateHabit.
var successor = [screenCount]Screen{
	Welcome:           Onboarding,
	Onboarding:        NameInput,
	NameInput:         WelcomeUser,
	WelcomeUser:       EnergySelection,
	EnergySelection:   TrackingSelection,
	TrackingSelection: GoalSelection,
	GoalSelection:     BarrierSelection,
	BarrierSelection:  MainGoalSelection,
	MainGoalSelection: Tailoring,
	Tailoring:         News,
	News:              BadNewsStat,
	BadNewsStat:       WhatCanDo,
	WhatCanDo:         Solution,
	Solution:          Dashboard,
	Dashboard:         Dashboard,
	CreateHabit:       Dashboard,
}

// predecessor is the backward table. Welcome and Dashboard map to
// themselves (no-op).
var predecessor = [screenCount]Screen{
	Welcome:           Welcome,
	Onboarding:        Welcome,
	NameInput:         Onboarding,
	WelcomeUser:       NameInput,
	EnergySelection:   WelcomeUser,
	TrackingSelection: EnergySelection,
	GoalSelection:     TrackingSelection,
	BarrierSelection:  GoalSelection,
	MainGoalSelection: BarrierSelection,
	Tailoring:         MainGoalSelection,
	News:              Tailoring,
	BadNewsStat:       News,
	WhatCanDo:         BadNewsStat,
	Solution:          WhatCanDo,
	Dashboard:         Dashboard,
	CreateHabit:       Dashboard,
}

// Next returns the fixed successor of s, ignoring validation.
func Next(s Screen) Screen {
	if !s.Valid() {
		return s
	}
	return successor[s]
}

// Prev returns the fixed predecessor of s.
func Prev(s Screen) Screen {
	if !s.Valid() {
		return s
	}
	return predecessor[s]
}

// IsSelection reports whether s is one of the single-choice question screens.
func (s Screen) IsSelection() bool {
	_, ok := questionFor(s)
	return ok
}
