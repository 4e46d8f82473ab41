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
	"fmt"
	"strings"
)

// MaxNameLength is the number of characters kept from the name input.
const MaxNameLength = 20

// Question identifies a single-choice question screen.
type Question string

const (
	QuestionEnergy   Question = "energy"
	QuestionTracking Question = "tracking"
	QuestionGoal     Question = "goal"
	QuestionBarrier  Question = "barrier"
	QuestionMainGoal Question = "main-goal"
)

// Questions returns the questions in the order they are asked.
func Questions() []Question {
	return []Question{QuestionEnergy, QuestionTracking, QuestionGoal, QuestionBarrier, QuestionMainGoal}
}

// ParseQuestion resolves a question by name.
func ParseQuestion(name string) (Question, error) {
	for _, q := range Questions() {
		if string(q) == name {
			return q, nil
		}
	}
	return "", fmt.Errorf("unknown question %q", name)
}

// Screen returns the screen on which q is asked.
func (q Question) Screen() Screen {
	switch q {
	case QuestionEnergy:
		return EnergySelection
	case QuestionTracking:
		return TrackingSelection
	case QuestionGoal:
		return GoalSelection
	case QuestionBarrier:
		return BarrierSelection
	case QuestionMainGoal:
		return MainGoalSelection
	}
	return Welcome
}

func questionFor(s Screen) (Question, bool) {
	for _, q := range Questions() {
		if q.Screen() == s {
			return q, true
		}
	}
	return "", false
}

// QuestionFor returns the question asked on s, if any.
func QuestionFor(s Screen) (Question, bool) {
	return questionFor(s)
}

// Answers holds everything the user has entered so far. Empty strings mean
// "not answered yet".
type Answers struct {
	Name      string
	Energy    string
	Tracking  string
	Goal      string
	Barrier   string
	MainGoal  string
	HabitName string
	HabitTime string
}

// Selected returns the option chosen for q.
func (a Answers) Selected(q Question) string {
	switch q {
	case QuestionEnergy:
		return a.Energy
	case QuestionTracking:
		return a.Tracking
	case QuestionGoal:
		return a.Goal
	case QuestionBarrier:
		return a.Barrier
	case QuestionMainGoal:
		return a.MainGoal
	}
	return ""
}

// WithSelection returns a copy of a with option recorded for q.
func (a Answers) WithSelection(q Question, option string) Answers {
	switch q {
	case QuestionEnergy:
		a.Energy = option
	case QuestionTracking:
		a.Tracking = option
	case QuestionGoal:
		a.Goal = option
	case QuestionBarrier:
		a.Barrier = option
	case QuestionMainGoal:
		a.MainGoal = option
	}
	return a
}

// WithName returns a copy of a with the name set, truncated to
// MaxNameLength characters.
func (a Answers) WithName(name string) Answers {
	a.Name = TruncateName(name)
	return a
}

// TruncateName keeps the first MaxNameLength characters of name.
func TruncateName(name string) string {
	r := []rune(name)
	if len(r) > MaxNameLength {
		r = r[:MaxNameLength]
	}
	return string(r)
}

// DisplayName is the trimmed name used when addressing the user.
func (a Answers) DisplayName() string {
	return strings.TrimSpace(a.Name)
}

// requirement returns the value gating s and whether s has a rule at all.
func (a Answers) requirement(s Screen) (string, bool) {
	switch s {
	case NameInput:
		return strings.TrimSpace(a.Name), true
	case CreateHabit:
		return strings.TrimSpace(a.HabitName), true
	}
	if q, ok := questionFor(s); ok {
		return a.Selected(q), true
	}
	return "", false
}

// HasRule reports whether advancing from s requires an answer.
func HasRule(s Screen) bool {
	_, ok := Answers{}.requirement(s)
	return ok
}

// Satisfies reports whether a holds the answer required to leave s.
// Screens without a rule are always satisfied.
func (a Answers) Satisfies(s Screen) bool {
	v, ok := a.requirement(s)
	return !ok || v != ""
}
