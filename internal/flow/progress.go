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

// Pacing selects the table that maps screens to progress-bar values.
type Pacing string

const (
	// PacingTuned uses hand-picked values per screen.
	PacingTuned Pacing = "tuned"
	// PacingEven spaces the questionnaire screens evenly.
	PacingEven Pacing = "even"
)

// Pacings returns the known pacing tables.
func Pacings() []Pacing {
	return []Pacing{PacingTuned, PacingEven}
}

// ParsePacing resolves a pacing by name. An empty name means PacingTuned.
func ParsePacing(name string) (Pacing, error) {
	switch Pacing(name) {
	case "", PacingTuned:
		return PacingTuned, nil
	case PacingEven:
		return PacingEven, nil
	}
	return PacingTuned, fmt.Errorf("unknown pacing %q (want %s or %s)", name, PacingTuned, PacingEven)
}

// Not monotonic by contract: the tuned values are product pacing, not a
// step count.
var tunedProgress = map[Screen]float64{
	NameInput:         0,
	WelcomeUser:       0.2,
	EnergySelection:   0.3,
	TrackingSelection: 0.4,
	GoalSelection:     0.5,
	BarrierSelection:  0.6,
	MainGoalSelection: 0.7,
	Tailoring:         0.8,
	News:              0.85,
	BadNewsStat:       0.9,
	WhatCanDo:         1,
}

// ShowsProgress reports whether s displays a progress bar at all.
func ShowsProgress(s Screen) bool {
	return s >= NameInput && s <= WhatCanDo
}

// Progress maps a screen to a display value in [0,1].
func Progress(s Screen, p Pacing) float64 {
	if !ShowsProgress(s) {
		return 0
	}
	if p == PacingEven {
		span := float64(WhatCanDo - NameInput)
		return float64(s-NameInput) / span
	}
	return tunedProgress[s]
}
