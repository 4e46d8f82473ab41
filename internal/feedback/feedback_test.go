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


package feedback

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/cloud-exit/habbit/internal/flow"
	"github.com/cloud-exit/habbit/internal/timeline"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newDispatcher(t *testing.T, rec *Recorder, opts Options) (*Dispatcher, *observer.ObservedLogs, *timeline.Scope) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	scope := timeline.NewScope()
	t.Cleanup(scope.Close)
	return NewDispatcher(rec, zap.New(core), scope, opts), logs, scope
}

func waitForPulses(t *testing.T, rec *Recorder, n int) []Strength {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if p := rec.Pulses(); len(p) >= n {
			return p
		}
		time.Sleep(5 * time.Millisecond)
	}
	return rec.Pulses()
}

func TestDispatch_ErrorIsDoubleHeavyPulse(t *testing.T) {
	rec := &Recorder{}
	d, _, _ := newDispatcher(t, rec, Options{Haptics: true})

	start := time.Now()
	d.Dispatch(context.Background(), []flow.Effect{{Kind: flow.EffectErrorPulse, Screen: flow.NameInput}})

	got := waitForPulses(t, rec, 2)
	if diff := cmp.Diff([]Strength{Heavy, Heavy}, got); diff != "" {
		t.Errorf("pulses mismatch (-want +got):\n%s", diff)
	}
	if elapsed := time.Since(start); elapsed < DoublePulseGap {
		t.Errorf("second pulse after %s, want at least %s", elapsed, DoublePulseGap)
	}
}

func TestDispatch_ScopeCloseDropsSecondPulse(t *testing.T) {
	rec := &Recorder{}
	d, _, scope := newDispatcher(t, rec, Options{Haptics: true})

	d.Dispatch(context.Background(), []flow.Effect{{Kind: flow.EffectErrorPulse}})
	scope.Close()

	if got := rec.Pulses(); len(got) != 1 {
		t.Errorf("pulses = %v, want one heavy pulse", got)
	}
}

func TestDispatch_Pulses(t *testing.T) {
	rec := &Recorder{}
	d, _, _ := newDispatcher(t, rec, Options{Haptics: true})

	d.Dispatch(context.Background(), []flow.Effect{
		{Kind: flow.EffectLightPulse},
		{Kind: flow.EffectSuccessPulse},
		{Kind: flow.EffectSelectionTick, Value: "stats"},
	})
	if diff := cmp.Diff([]Strength{Light, Success, Selection}, rec.Pulses()); diff != "" {
		t.Errorf("pulses mismatch (-want +got):\n%s", diff)
	}
}

func TestDispatch_HapticsOff(t *testing.T) {
	rec := &Recorder{}
	d, _, _ := newDispatcher(t, rec, Options{Haptics: false})

	d.Dispatch(context.Background(), []flow.Effect{
		{Kind: flow.EffectErrorPulse},
		{Kind: flow.EffectLightPulse},
	})
	time.Sleep(2 * DoublePulseGap)
	if got := rec.Pulses(); len(got) != 0 {
		t.Errorf("pulses = %v, want none", got)
	}
}

func TestDispatch_Notifications(t *testing.T) {
	rec := &Recorder{Deny: true}
	d, logs, _ := newDispatcher(t, rec, Options{Notifications: true})

	d.Dispatch(context.Background(), []flow.Effect{{Kind: flow.EffectRequestNotifications}})
	if rec.NotificationRequests() != 1 {
		t.Errorf("requests = %d, want 1", rec.NotificationRequests())
	}
	entries := logs.FilterMessage("notification permission").All()
	if len(entries) != 1 || entries[0].ContextMap()["granted"] != false {
		t.Errorf("log entries = %v", entries)
	}

	off := &Recorder{}
	d2, logs2, _ := newDispatcher(t, off, Options{Notifications: false})
	d2.Dispatch(context.Background(), []flow.Effect{{Kind: flow.EffectRequestNotifications}})
	if off.NotificationRequests() != 0 {
		t.Error("disabled notifications still requested permission")
	}
	if logs2.FilterMessage("notifications disabled").Len() != 1 {
		t.Error("missing notifications disabled entry")
	}
}

func TestDispatch_StubsAreLogged(t *testing.T) {
	rec := &Recorder{}
	d, logs, _ := newDispatcher(t, rec, Options{})

	d.Dispatch(context.Background(), []flow.Effect{
		{Kind: flow.EffectAnswerCommitted, Screen: flow.EnergySelection, Question: flow.QuestionEnergy, Value: "early_bird"},
		{Kind: flow.EffectPurchaseStub, Value: "yearly"},
		{Kind: flow.EffectHabitDrafted, Value: "Read @ Before bed"},
	})

	answer := logs.FilterMessage("answer").All()
	if len(answer) != 1 {
		t.Fatalf("answer entries = %d, want 1", len(answer))
	}
	ctx := answer[0].ContextMap()
	if ctx["question"] != "energy" || ctx["value"] != "early_bird" || ctx["screen"] != "energy-selection" {
		t.Errorf("answer fields = %v", ctx)
	}
	if logs.FilterMessage("purchase requested").Len() != 1 {
		t.Error("missing purchase entry")
	}
	if logs.FilterMessage("habit drafted").Len() != 1 {
		t.Error("missing habit entry")
	}
}

func TestTerminal(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)
	term.Pulse(Light)
	term.Pulse(Selection)
	term.Pulse(Heavy)
	term.Pulse(Success)
	if buf.String() != "\a\a" {
		t.Errorf("terminal output = %q, want two bells", buf.String())
	}
	granted, err := term.RequestNotifications(context.Background())
	if !granted || err != nil {
		t.Errorf("RequestNotifications = %v, %v", granted, err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := term.RequestNotifications(ctx); err == nil {
		t.Error("RequestNotifications on canceled ctx should fail")
	}
}
