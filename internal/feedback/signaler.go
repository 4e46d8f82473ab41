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


// Package feedback performs the side effects the flow controller asks for:
// haptic-style pulses, the notification permission request, and the event
// log entries that stand in for payments and habit storage.
package feedback

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// Strength is the intensity of a pulse.
type Strength int

const (
	Light Strength = iota
	Heavy
	Success
	Selection
)

func (s Strength) String() string {
	switch s {
	case Light:
		return "light"
	case Heavy:
		return "heavy"
	case Success:
		return "success"
	case Selection:
		return "selection"
	}
	return fmt.Sprintf("strength(%d)", int(s))
}

// Signaler is the device the pulses and permission requests go to.
type Signaler interface {
	Pulse(Strength)
	RequestNotifications(ctx context.Context) (granted bool, err error)
}

// Terminal signals through a terminal: heavy and success pulses ring the
// bell, lighter ones are silent. The notification request is always
// granted since a terminal has no permission prompt.
type Terminal struct {
	mu sync.Mutex
	w  io.Writer
}

// NewTerminal returns a Terminal writing to w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

// Pulse implements Signaler.
func (t *Terminal) Pulse(s Strength) {
	if s != Heavy && s != Success {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = io.WriteString(t.w, "\a")
}

// RequestNotifications implements Signaler.
func (t *Terminal) RequestNotifications(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return true, nil
}

// Recorder is a Signaler that remembers what it was asked to do.
type Recorder struct {
	mu       sync.Mutex
	pulses   []Strength
	requests int
	// Deny makes RequestNotifications report a refusal.
	Deny bool
}

// Pulse implements Signaler.
func (r *Recorder) Pulse(s Strength) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pulses = append(r.pulses, s)
}

// RequestNotifications implements Signaler.
func (r *Recorder) RequestNotifications(ctx context.Context) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests++
	return !r.Deny, ctx.Err()
}

// Pulses returns a copy of the recorded pulses.
func (r *Recorder) Pulses() []Strength {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Strength(nil), r.pulses...)
}

// NotificationRequests returns how many permission requests were made.
func (r *Recorder) NotificationRequests() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.requests
}
