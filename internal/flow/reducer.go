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

import "strings"

// Event is an input to Apply.
type Event interface {
	event()
}

type (
	// AdvanceRequested asks to move to the next screen.
	AdvanceRequested struct{}
	// RetreatRequested asks to move to the previous screen.
	RetreatRequested struct{}
	// SetName replaces the name typed on NameInput.
	SetName struct{ Value string }
	// SetHabitName replaces the habit name typed on CreateHabit.
	SetHabitName struct{ Value string }
	// SetHabitTime replaces the time of day chosen for the habit draft.
	SetHabitTime struct{ Value string }
	// Select records an option for a question. An empty option clears it.
	Select struct {
		Question Question
		Option   string
	}
	// ShowSlide moves the onboarding carousel to a page.
	ShowSlide struct{ Index int }
	// FinishTailoring marks the personalization delay as elapsed.
	FinishTailoring struct{}
	// SignContract signs the commitment on WhatCanDo.
	SignContract struct{}
	// ChoosePlan selects a paywall plan.
	ChoosePlan struct{ Plan string }
	// Purchase presses the paywall purchase button.
	Purchase struct{}
	// ClosePaywall dismisses the paywall.
	ClosePaywall struct{}
	// ChooseTab switches the dashboard tab.
	ChooseTab struct{ Tab Tab }
	// OpenCreateHabit leaves the dashboard for the habit draft.
	OpenCreateHabit struct{}
)

func (AdvanceRequested) event() {}
func (RetreatRequested) event() {}
func (SetName) event()          {}
func (SetHabitName) event()     {}
func (SetHabitTime) event()     {}
func (Select) event()           {}
func (ShowSlide) event()        {}
func (FinishTailoring) event()  {}
func (SignContract) event()     {}
func (ChoosePlan) event()       {}
func (Purchase) event()         {}
func (ClosePaywall) event()     {}
func (ChooseTab) event()        {}
func (OpenCreateHabit) event()  {}

// EffectKind names a side effect the controller asks its collaborator to
// perform. Effects never feed back into state.
type EffectKind int

const (
	// EffectErrorPulse is the double pulse played when an advance is rejected.
	EffectErrorPulse EffectKind = iota
	// EffectLightPulse acknowledges a selection.
	EffectLightPulse
	// EffectSuccessPulse marks a completed ritual (tailoring done, contract signed).
	EffectSuccessPulse
	// EffectSelectionTick is the subtle tick of a dashboard tab change.
	EffectSelectionTick
	// EffectRequestNotifications asks for notification permission.
	EffectRequestNotifications
	// EffectAnswerCommitted reports an answer carried forward past its screen.
	EffectAnswerCommitted
	// EffectPurchaseStub reports a purchase attempt. Payments are not implemented.
	EffectPurchaseStub
	// EffectHabitDrafted reports a created habit. Habit storage is not implemented.
	EffectHabitDrafted
)

var effectNames = map[EffectKind]string{
	EffectErrorPulse:           "error-pulse",
	EffectLightPulse:           "light-pulse",
	EffectSuccessPulse:         "success-pulse",
	EffectSelectionTick:        "selection-tick",
	EffectRequestNotifications: "request-notifications",
	EffectAnswerCommitted:      "answer-committed",
	EffectPurchaseStub:         "purchase",
	EffectHabitDrafted:         "habit-drafted",
}

func (k EffectKind) String() string {
	if n, ok := effectNames[k]; ok {
		return n
	}
	return "unknown"
}

// Effect is one side effect produced by a transition.
type Effect struct {
	Kind     EffectKind
	Screen   Screen   // screen the effect was raised on
	Question Question // set for answer effects on question screens
	Value    string   // answer, plan, or habit name
}

// Apply is the controller's transition function. It returns the next state
// and the side effects the transition asks for.
func Apply(s State, ev Event) (State, []Effect) {
	switch ev := ev.(type) {
	case AdvanceRequested:
		return advance(s)
	case RetreatRequested:
		return s.enter(Retreat(s.Screen)), nil

	case SetName:
		s.Answers = s.Answers.WithName(ev.Value)
		s.Flags = s.Flags.Without(NameInput)
		return s, nil
	case SetHabitName:
		s.Answers.HabitName = ev.Value
		s.Flags = s.Flags.Without(CreateHabit)
		return s, nil
	case SetHabitTime:
		s.Answers.HabitTime = ev.Value
		return s, nil
	case Select:
		if ev.Question.Screen() == Welcome {
			return s, nil
		}
		s.Answers = s.Answers.WithSelection(ev.Question, ev.Option)
		s.Flags = s.Flags.Without(ev.Question.Screen())
		if ev.Option == "" {
			return s, nil
		}
		return s, []Effect{{Kind: EffectLightPulse, Screen: s.Screen, Question: ev.Question, Value: ev.Option}}

	case ShowSlide:
		idx := ev.Index
		if idx < 0 {
			idx = 0
		}
		if idx > SlideCount-1 {
			idx = SlideCount - 1
		}
		s.Slide = idx
		return s, nil

	case FinishTailoring:
		if s.Screen != Tailoring || s.TailoringDone {
			return s, nil
		}
		s.TailoringDone = true
		return s, []Effect{{Kind: EffectSuccessPulse, Screen: Tailoring}}

	case SignContract:
		if s.Screen != WhatCanDo || s.ContractSigned {
			return s, nil
		}
		s.ContractSigned = true
		return s, []Effect{{Kind: EffectSuccessPulse, Screen: WhatCanDo, Value: s.Answers.DisplayName()}}

	case ChoosePlan:
		if ev.Plan == "" {
			return s, nil
		}
		s.Plan = ev.Plan
		return s, []Effect{{Kind: EffectLightPulse, Screen: s.Screen, Value: ev.Plan}}
	case Purchase:
		if s.Screen != Solution {
			return s, nil
		}
		return s, []Effect{{Kind: EffectPurchaseStub, Screen: Solution, Value: s.Plan}}
	case ClosePaywall:
		if s.Screen != Solution {
			return s, nil
		}
		return s.enter(Dashboard), nil

	case ChooseTab:
		if s.Screen != Dashboard || ev.Tab == "" {
			return s, nil
		}
		s.Tab = ev.Tab
		return s, []Effect{{Kind: EffectSelectionTick, Screen: Dashboard, Value: string(ev.Tab)}}
	case OpenCreateHabit:
		if s.Screen != Dashboard {
			return s, nil
		}
		s.Answers.HabitName = ""
		s.Answers.HabitTime = ""
		s.Flags = s.Flags.Without(CreateHabit)
		return s.enter(CreateHabit), nil
	}
	return s, nil
}

func advance(s State) (State, []Effect) {
	from := s.Screen
	next, failed := Advance(from, s.Answers)
	if failed {
		s.Flags = s.Flags.With(from)
		return s, []Effect{{Kind: EffectErrorPulse, Screen: from}}
	}
	s.Flags = s.Flags.Without(from)

	var effects []Effect
	switch {
	case from == NameInput:
		effects = append(effects, Effect{Kind: EffectAnswerCommitted, Screen: from, Value: s.Answers.DisplayName()})
	case from == CreateHabit:
		draft := strings.TrimSpace(s.Answers.HabitName)
		if t := strings.TrimSpace(s.Answers.HabitTime); t != "" {
			draft += " @ " + t
		}
		effects = append(effects, Effect{Kind: EffectHabitDrafted, Screen: from, Value: draft})
	case from.IsSelection():
		q, _ := questionFor(from)
		effects = append(effects,
			Effect{Kind: EffectAnswerCommitted, Screen: from, Question: q, Value: s.Answers.Selected(q)},
			Effect{Kind: EffectLightPulse, Screen: from, Question: q},
		)
	}
	if next == News && from != News {
		effects = append(effects, Effect{Kind: EffectRequestNotifications, Screen: News})
	}
	return s.enter(next), effects
}
