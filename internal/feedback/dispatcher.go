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
	"context"
	"time"

	"github.com/cloud-exit/habbit/internal/flow"
	"github.com/cloud-exit/habbit/internal/timeline"
	"go.uber.org/zap"
)

// DoublePulseGap separates the two heavy pulses of a validation error.
const DoublePulseGap = 100 * time.Millisecond

// Options toggles the user-facing parts of the dispatcher.
type Options struct {
	Haptics       bool
	Notifications bool
}

// Dispatcher executes flow effects against a Signaler and the event log.
type Dispatcher struct {
	sig   Signaler
	log   *zap.Logger
	scope *timeline.Scope
	opts  Options
}

// NewDispatcher returns a dispatcher. Delayed pulses run on scope, so
// closing it drops any second pulse still pending.
func NewDispatcher(sig Signaler, log *zap.Logger, scope *timeline.Scope, opts Options) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{sig: sig, log: log, scope: scope, opts: opts}
}

// Dispatch performs effects in order.
func (d *Dispatcher) Dispatch(ctx context.Context, effects []flow.Effect) {
	for _, e := range effects {
		d.dispatch(ctx, e)
	}
}

func (d *Dispatcher) dispatch(ctx context.Context, e flow.Effect) {
	switch e.Kind {
	case flow.EffectErrorPulse:
		d.log.Debug("missing answer", zap.Stringer("screen", e.Screen))
		d.pulse(Heavy)
		if d.opts.Haptics {
			d.scope.After(DoublePulseGap, func() { d.sig.Pulse(Heavy) })
		}
	case flow.EffectLightPulse:
		d.pulse(Light)
	case flow.EffectSuccessPulse:
		d.pulse(Success)
	case flow.EffectSelectionTick:
		d.log.Debug("tab", zap.String("tab", e.Value))
		d.pulse(Selection)
	case flow.EffectRequestNotifications:
		if !d.opts.Notifications {
			d.log.Info("notifications disabled")
			return
		}
		granted, err := d.sig.RequestNotifications(ctx)
		if err != nil {
			d.log.Warn("notification request failed", zap.Error(err))
			return
		}
		d.log.Info("notification permission", zap.Bool("granted", granted))
	case flow.EffectAnswerCommitted:
		fields := []zap.Field{zap.Stringer("screen", e.Screen), zap.String("value", e.Value)}
		if e.Question != "" {
			fields = append(fields, zap.String("question", string(e.Question)))
		}
		d.log.Info("answer", fields...)
	case flow.EffectPurchaseStub:
		d.log.Info("purchase requested", zap.String("plan", e.Value))
	case flow.EffectHabitDrafted:
		d.log.Info("habit drafted", zap.String("habit", e.Value))
	default:
		d.log.Warn("unhandled effect", zap.Stringer("kind", e.Kind))
	}
}

func (d *Dispatcher) pulse(s Strength) {
	if d.opts.Haptics {
		d.sig.Pulse(s)
	}
}
