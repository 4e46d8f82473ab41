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


package script

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cloud-exit/habbit/internal/flow"
	"github.com/cloud-exit/habbit/internal/timeline"
	"github.com/cloud-exit/habbit/internal/ui"
	"go.uber.org/zap"
)

// Dispatcher performs the effects of a transition.
type Dispatcher interface {
	Dispatch(ctx context.Context, effects []flow.Effect)
}

// Options configures a Driver.
type Options struct {
	Out            io.Writer // step report; nil discards it
	Dispatcher     Dispatcher
	Logger         *zap.Logger
	Pacing         flow.Pacing
	TailoringDelay time.Duration
	// Strict stops the run at the first rejected advance.
	Strict bool
	// Spinner animates the personalization delay on Out.
	Spinner bool
}

// Driver feeds script commands to the flow reducer.
type Driver struct {
	opts  Options
	state flow.State
	scope *timeline.Scope
}

// NewDriver returns a driver at the start of the flow.
func NewDriver(opts Options) *Driver {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Driver{
		opts:  opts,
		state: flow.NewState(),
		scope: timeline.NewScope(),
	}
}

// State returns the current flow state.
func (d *Driver) State() flow.State {
	return d.state
}

// Close cancels any pending delay.
func (d *Driver) Close() {
	d.scope.Close()
}

// Run executes every line of r and returns the final state. Errors carry
// the offending line number.
func (d *Driver) Run(ctx context.Context, r io.Reader) (flow.State, error) {
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		if err := d.Exec(ctx, sc.Text()); err != nil {
			return d.state, fmt.Errorf("line %d: %w", n, err)
		}
	}
	if err := sc.Err(); err != nil {
		return d.state, fmt.Errorf("reading script: %w", err)
	}
	return d.state, nil
}

// Exec executes a single line.
func (d *Driver) Exec(ctx context.Context, line string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cmd, ok, err := Parse(line)
	if err != nil || !ok {
		return err
	}
	if cmd.Wait {
		return d.wait(ctx)
	}

	from := d.state.Screen
	next, effects := flow.Apply(d.state, cmd.Event)
	d.state = next
	if d.opts.Dispatcher != nil {
		d.opts.Dispatcher.Dispatch(ctx, effects)
	}
	if from != next.Screen {
		d.opts.Logger.Info("screen", zap.Stringer("from", from), zap.Stringer("to", next.Screen))
	}
	d.report(cmd.Verb)

	if d.opts.Strict && next.Failed() {
		return fmt.Errorf("%s: %w", next.Screen, flow.ErrMissingAnswer)
	}
	return nil
}

func (d *Driver) wait(ctx context.Context) error {
	if d.state.Screen != flow.Tailoring || d.state.TailoringDone {
		d.report("wait")
		return nil
	}
	var sp *ui.Spinner
	if d.opts.Spinner && d.opts.TailoringDelay > 0 {
		sp = ui.NewSpinner(d.opts.Out, "Tailoring your plan...")
		sp.Start()
	}
	err := d.scope.Sleep(ctx, d.opts.TailoringDelay)
	if sp != nil {
		sp.Stop()
	}
	if err != nil {
		return fmt.Errorf("tailoring: %w", err)
	}
	next, effects := flow.Apply(d.state, flow.FinishTailoring{})
	d.state = next
	if d.opts.Dispatcher != nil {
		d.opts.Dispatcher.Dispatch(ctx, effects)
	}
	d.report("wait")
	return nil
}

func (d *Driver) report(verb string) {
	s := d.state
	mark := ""
	if s.Failed() {
		mark = "  " + flow.ErrMissingAnswer.Error()
	}
	progress := ""
	if flow.ShowsProgress(s.Screen) {
		progress = fmt.Sprintf("%3.0f%%", flow.Progress(s.Screen, d.opts.Pacing)*100)
	}
	fmt.Fprintf(d.opts.Out, "%-9s -> %-20s %4s%s\n", verb, s.Screen, progress, mark)
}
