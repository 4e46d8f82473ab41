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


package wizard

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cloud-exit/habbit/internal/flow"
)

// ErrCancelled is returned when the user aborts the wizard with ctrl+c.
var ErrCancelled = errors.New("onboarding cancelled")

// Run executes the onboarding TUI and returns the state it ended in.
// Quitting with q is a normal exit; ctrl+c returns ErrCancelled along with
// the state reached so far.
func Run(ctx context.Context, opts Options) (flow.State, error) {
	model := NewModel(ctx, opts)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	finalModel, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return model.Result(), ErrCancelled
		}
		return model.Result(), fmt.Errorf("wizard error: %w", err)
	}

	wm := finalModel.(Model)
	if wm.Cancelled() {
		return wm.Result(), ErrCancelled
	}
	return wm.Result(), nil
}
