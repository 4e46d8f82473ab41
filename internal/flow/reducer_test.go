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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func run(t *testing.T, s State, events ...Event) (State, []Effect) {
	t.Helper()
	var all []Effect
	for _, ev := range events {
		var effects []Effect
		s, effects = Apply(s, ev)
		all = append(all, effects...)
	}
	return s, all
}

func kinds(effects []Effect) []EffectKind {
	var out []EffectKind
	for _, e := range effects {
		out = append(out, e.Kind)
	}
	return out
}

func TestNewState(t *testing.T) {
	s := NewState()
	if s.Screen != Welcome || s.Plan != DefaultPlan || s.Tab != TabHome {
		t.Errorf("NewState() = %+v", s)
	}
	if s.Flags != 0 || s.Answers != (Answers{}) {
		t.Errorf("NewState() should start empty, got %+v", s)
	}
}

func TestApply_FailedAdvanceOnlyRaisesFlag(t *testing.T) {
	for _, screen := range Screens() {
		if !HasRule(screen) {
			continue
		}
		before := NewState()
		before.Screen = screen
		before.Slide = 2
		before.Answers = Answers{Name: " ", HabitTime: "Before bed"}

		after, effects := Apply(before, AdvanceRequested{})

		want := before
		want.Flags = want.Flags.With(screen)
		if diff := cmp.Diff(want, after); diff != "" {
			t.Errorf("%s: failed advance changed more than the flag (-want +got):\n%s", screen, diff)
		}
		if diff := cmp.Diff([]EffectKind{EffectErrorPulse}, kinds(effects)); diff != "" {
			t.Errorf("%s: effects (-want +got):\n%s", screen, diff)
		}
		if !after.Failed() {
			t.Errorf("%s: Failed() = false after rejected advance", screen)
		}
	}
}

func TestApply_SelectClearsFlag(t *testing.T) {
	s := NewState()
	s.Screen = BarrierSelection
	s, _ = Apply(s, AdvanceRequested{})
	if !s.Flags.Has(BarrierSelection) {
		t.Fatal("expected barrier flag after empty advance")
	}
	s, effects := Apply(s, Select{Question: QuestionBarrier, Option: "time"})
	if s.Flags.Has(BarrierSelection) {
		t.Error("Select did not clear the barrier flag")
	}
	if s.Answers.Barrier != "time" {
		t.Errorf("Barrier = %q, want time", s.Answers.Barrier)
	}
	if diff := cmp.Diff([]EffectKind{EffectLightPulse}, kinds(effects)); diff != "" {
		t.Errorf("effects (-want +got):\n%s", diff)
	}
}

func TestApply_EveryQuestionSelectClearsItsFlag(t *testing.T) {
	for _, q := range Questions() {
		s := NewState()
		s.Screen = q.Screen()
		s, _ = Apply(s, AdvanceRequested{})
		s, _ = Apply(s, Select{Question: q, Option: "x"})
		if s.Flags.Has(q.Screen()) {
			t.Errorf("%s: flag still raised after selection", q)
		}
		if s.Answers.Selected(q) != "x" {
			t.Errorf("%s: Selected = %q", q, s.Answers.Selected(q))
		}
	}
}

func TestApply_SetNameTruncatesAndClears(t *testing.T) {
	s := NewState()
	s.Screen = NameInput
	s, _ = Apply(s, AdvanceRequested{})
	s, _ = Apply(s, SetName{Value: strings.Repeat("b", 30)})
	if len(s.Answers.Name) != MaxNameLength {
		t.Errorf("Name length = %d, want %d", len(s.Answers.Name), MaxNameLength)
	}
	if s.Flags.Has(NameInput) {
		t.Error("SetName did not clear the name flag")
	}
}

func TestApply_HappyPath(t *testing.T) {
	s, effects := run(t, NewState(),
		AdvanceRequested{}, // welcome -> onboarding
		ShowSlide{Index: 2},
		AdvanceRequested{}, // -> name-input
		SetName{Value: "  Alex "},
		AdvanceRequested{}, // -> welcome-user
		AdvanceRequested{}, // -> energy
		Select{Question: QuestionEnergy, Option: "early_bird"},
		AdvanceRequested{},
		Select{Question: QuestionTracking, Option: "streaks"},
		AdvanceRequested{},
		Select{Question: QuestionGoal, Option: "both"},
		AdvanceRequested{},
		Select{Question: QuestionBarrier, Option: "motivation"},
		AdvanceRequested{},
		Select{Question: QuestionMainGoal, Option: "mindfulness"},
		AdvanceRequested{}, // -> tailoring
		FinishTailoring{},
		AdvanceRequested{}, // -> news
		AdvanceRequested{}, // -> bad-news-stat
		AdvanceRequested{}, // -> what-can-do
		SignContract{},
		AdvanceRequested{}, // -> solution
		ChoosePlan{Plan: "lifetime"},
		Purchase{},
		AdvanceRequested{}, // -> dashboard
	)
	if s.Screen != Dashboard {
		t.Fatalf("Screen = %s, want dashboard", s.Screen)
	}
	if s.Flags != 0 {
		t.Errorf("Flags = %s, want none", s.Flags)
	}
	if s.Plan != "lifetime" {
		t.Errorf("Plan = %q", s.Plan)
	}

	var committed []string
	var notifications, purchases int
	for _, e := range effects {
		switch e.Kind {
		case EffectAnswerCommitted:
			committed = append(committed, e.Value)
		case EffectRequestNotifications:
			notifications++
		case EffectPurchaseStub:
			purchases++
			if e.Value != "lifetime" {
				t.Errorf("purchase plan = %q", e.Value)
			}
		}
	}
	want := []string{"Alex", "early_bird", "streaks", "both", "motivation", "mindfulness"}
	if diff := cmp.Diff(want, committed); diff != "" {
		t.Errorf("committed answers (-want +got):\n%s", diff)
	}
	if notifications != 1 || purchases != 1 {
		t.Errorf("notifications=%d purchases=%d, want 1 each", notifications, purchases)
	}
}

func TestApply_NotificationsOnlyWhenEnteringNewsForward(t *testing.T) {
	s := NewState()
	s.Screen = BadNewsStat
	_, effects := Apply(s, RetreatRequested{})
	if len(effects) != 0 {
		t.Errorf("retreat into news produced effects %v", kinds(effects))
	}
}

func TestApply_ScreenLocalStateResetsOnEntry(t *testing.T) {
	s := NewState()
	s.Screen = Tailoring
	s, _ = Apply(s, FinishTailoring{})
	if !s.TailoringDone {
		t.Fatal("FinishTailoring did not mark tailoring done")
	}
	s, _ = run(t, s, AdvanceRequested{}, RetreatRequested{})
	if s.Screen != Tailoring || s.TailoringDone {
		t.Errorf("re-entering tailoring: screen=%s done=%v", s.Screen, s.TailoringDone)
	}

	s.Screen = WhatCanDo
	s, _ = Apply(s, SignContract{})
	s, _ = run(t, s, RetreatRequested{}, AdvanceRequested{})
	if s.Screen != WhatCanDo || s.ContractSigned {
		t.Errorf("re-entering what-can-do: screen=%s signed=%v", s.Screen, s.ContractSigned)
	}
}

func TestApply_SignContractIdempotent(t *testing.T) {
	s := NewState()
	s.Screen = WhatCanDo
	s, first := Apply(s, SignContract{})
	s, second := Apply(s, SignContract{})
	if len(first) != 1 || first[0].Kind != EffectSuccessPulse {
		t.Errorf("first sign effects = %v", kinds(first))
	}
	if len(second) != 0 || !s.ContractSigned {
		t.Errorf("second sign: effects=%v signed=%v", kinds(second), s.ContractSigned)
	}
}

func TestApply_IgnoredOffScreen(t *testing.T) {
	s := NewState()
	for _, ev := range []Event{FinishTailoring{}, SignContract{}, Purchase{}, ClosePaywall{}, ChooseTab{Tab: TabStats}, OpenCreateHabit{}} {
		got, effects := Apply(s, ev)
		if diff := cmp.Diff(s, got); diff != "" || len(effects) != 0 {
			t.Errorf("%T on welcome changed state or produced effects:\n%s", ev, diff)
		}
	}
}

func TestApply_DashboardBranch(t *testing.T) {
	s := NewState()
	s.Screen = Dashboard
	s.Answers.HabitName = "stale"

	s, effects := Apply(s, ChooseTab{Tab: TabStats})
	if s.Tab != TabStats || len(effects) != 1 || effects[0].Kind != EffectSelectionTick {
		t.Errorf("ChooseTab: tab=%s effects=%v", s.Tab, kinds(effects))
	}

	s, _ = Apply(s, OpenCreateHabit{})
	if s.Screen != CreateHabit || s.Answers.HabitName != "" {
		t.Fatalf("OpenCreateHabit: screen=%s habit=%q", s.Screen, s.Answers.HabitName)
	}

	s, effects = Apply(s, AdvanceRequested{})
	if s.Screen != CreateHabit || !s.Flags.Has(CreateHabit) {
		t.Errorf("empty habit should be rejected, screen=%s flags=%s", s.Screen, s.Flags)
	}
	if diff := cmp.Diff([]EffectKind{EffectErrorPulse}, kinds(effects)); diff != "" {
		t.Errorf("effects (-want +got):\n%s", diff)
	}

	s, _ = run(t, s, SetHabitName{Value: "Meditate"}, SetHabitTime{Value: "Before bed"})
	if s.Flags.Has(CreateHabit) {
		t.Error("SetHabitName did not clear the habit flag")
	}
	s, effects = Apply(s, AdvanceRequested{})
	if s.Screen != Dashboard || s.Tab != TabHome {
		t.Errorf("after habit: screen=%s tab=%s", s.Screen, s.Tab)
	}
	if len(effects) != 1 || effects[0].Kind != EffectHabitDrafted || effects[0].Value != "Meditate @ Before bed" {
		t.Errorf("habit effects = %+v", effects)
	}

	s, _ = run(t, s, OpenCreateHabit{}, RetreatRequested{})
	if s.Screen != Dashboard {
		t.Errorf("retreat from create-habit = %s, want dashboard", s.Screen)
	}
}

func TestApply_ClosePaywall(t *testing.T) {
	s := NewState()
	s.Screen = Solution
	s, _ = Apply(s, ClosePaywall{})
	if s.Screen != Dashboard {
		t.Errorf("ClosePaywall = %s, want dashboard", s.Screen)
	}
}

func TestApply_ShowSlideClamps(t *testing.T) {
	s := NewState()
	s, _ = Apply(s, ShowSlide{Index: 10})
	if s.Slide != SlideCount-1 {
		t.Errorf("Slide = %d, want %d", s.Slide, SlideCount-1)
	}
	s, _ = Apply(s, ShowSlide{Index: -3})
	if s.Slide != 0 {
		t.Errorf("Slide = %d, want 0", s.Slide)
	}
}

func TestApply_SelectEmptyClearsAnswer(t *testing.T) {
	s := NewState()
	s, _ = Apply(s, Select{Question: QuestionGoal, Option: "both"})
	s, effects := Apply(s, Select{Question: QuestionGoal})
	if s.Answers.Goal != "" || len(effects) != 0 {
		t.Errorf("goal=%q effects=%v", s.Answers.Goal, kinds(effects))
	}
}

func TestEffectKindString(t *testing.T) {
	if EffectErrorPulse.String() != "error-pulse" {
		t.Errorf("EffectErrorPulse.String() = %q", EffectErrorPulse.String())
	}
	if EffectKind(42).String() != "unknown" {
		t.Errorf("EffectKind(42).String() = %q", EffectKind(42).String())
	}
}
