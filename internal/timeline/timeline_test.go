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


package timeline

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestAfter_Fires(t *testing.T) {
	s := NewScope()
	defer s.Close()

	fired := make(chan struct{})
	if !s.After(10*time.Millisecond, func() { close(fired) }) {
		t.Fatal("After on open scope returned false")
	}
	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not fire")
	}
}

func TestClose_CancelsPending(t *testing.T) {
	s := NewScope()
	var calls atomic.Int32
	for i := 0; i < 5; i++ {
		s.After(time.Hour, func() { calls.Add(1) })
	}
	s.Close()
	if n := calls.Load(); n != 0 {
		t.Errorf("%d callbacks ran after Close, want 0", n)
	}
	if !s.Closed() {
		t.Error("Closed() = false after Close")
	}
	if s.After(time.Millisecond, func() { calls.Add(1) }) {
		t.Error("After on closed scope returned true")
	}
	s.Close()
}

func TestClose_WaitsForRunningCallback(t *testing.T) {
	s := NewScope()
	started := make(chan struct{})
	var finished atomic.Bool
	s.After(0, func() {
		close(started)
		time.Sleep(50 * time.Millisecond)
		finished.Store(true)
	})
	<-started
	s.Close()
	if !finished.Load() {
		t.Error("Close returned before the running callback finished")
	}
}

func TestSleep(t *testing.T) {
	s := NewScope()
	defer s.Close()

	if err := s.Sleep(context.Background(), 5*time.Millisecond); err != nil {
		t.Errorf("Sleep = %v, want nil", err)
	}
	if err := s.Sleep(context.Background(), 0); err != nil {
		t.Errorf("Sleep(0) = %v, want nil", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Sleep(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Errorf("Sleep(canceled) = %v, want context.Canceled", err)
	}
}

func TestSleep_ScopeClosed(t *testing.T) {
	s := NewScope()
	errc := make(chan error, 1)
	go func() { errc <- s.Sleep(context.Background(), time.Hour) }()
	time.Sleep(10 * time.Millisecond)
	s.Close()
	if err := <-errc; !errors.Is(err, ErrClosed) {
		t.Errorf("Sleep after Close = %v, want ErrClosed", err)
	}
}
