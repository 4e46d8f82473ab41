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


// Package wizard renders the onboarding flow as a full-screen terminal UI.
// Every transition goes through flow.Apply; the model only adds what a
// renderer needs on top: cursors, text inputs and animations.
package wizard

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cloud-exit/habbit/internal/catalog"
	"github.com/cloud-exit/habbit/internal/config"
	"github.com/cloud-exit/habbit/internal/flow"
	"go.uber.org/zap"
)

// Dispatcher performs the effects of a transition.
type Dispatcher interface {
	Dispatch(ctx context.Context, effects []flow.Effect)
}

// Options configures the wizard.
type Options struct {
	Settings   config.SettingsConfig
	Dispatcher Dispatcher
	Logger     *zap.Logger
}

type (
	splashDoneMsg    struct{}
	tailoringDoneMsg struct{ gen int }
)

// Model is the root bubbletea model for the wizard.
type Model struct {
	ctx      context.Context
	state    flow.State
	settings config.SettingsConfig
	pacing   flow.Pacing
	dispatch Dispatcher
	log      *zap.Logger

	splash bool
	gen    int    // bumped on every screen change; timers carry it
	cursor int    // option, plan or habit-time cursor
	notice string // one-off status line, cleared on screen change

	nameInput  textinput.Model
	habitInput textinput.Model
	progress   progress.Model
	target     float64 // progress bar destination for the current screen
	spinner    spinner.Model
	help       help.Model
	keys       keyMap

	width     int
	height    int
	cancelled bool
}

// NewModel returns a wizard at the welcome screen.
func NewModel(ctx context.Context, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = flow.MaxNameLength
	name.Width = flow.MaxNameLength + 1

	habit := textinput.New()
	habit.Placeholder = "e.g. Read 10 pages"
	habit.CharLimit = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = cursorStyle

	pacing, err := flow.ParsePacing(opts.Settings.Pacing)
	if err != nil {
		pacing = flow.PacingTuned
	}

	return Model{
		ctx:        ctx,
		state:      flow.NewState(),
		settings:   opts.Settings,
		pacing:     pacing,
		dispatch:   opts.Dispatcher,
		log:        opts.Logger,
		splash:     opts.Settings.SplashDelay > 0,
		nameInput:  name,
		habitInput: habit,
		progress:   progress.New(progress.WithSolidFill(string(accentColor)), progress.WithWidth(40), progress.WithoutPercentage()),
		spinner:    sp,
		help:       help.New(),
		keys:       defaultKeys(),
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle("habbit")}
	if m.splash {
		cmds = append(cmds, tea.Tick(m.settings.SplashDelay, func(time.Time) tea.Msg { return splashDoneMsg{} }))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = min(40, max(10, msg.Width-8))
		return m, nil

	case splashDoneMsg:
		m.splash = false
		return m, nil

	case tailoringDoneMsg:
		if msg.gen != m.gen || m.state.Screen != flow.Tailoring {
			return m, nil
		}
		return m.apply(flow.FinishTailoring{})

	case progress.FrameMsg:
		pm, cmd := m.progress.Update(msg)
		m.progress = pm.(progress.Model)
		return m, cmd

	case spinner.TickMsg:
		if m.state.Screen != flow.Tailoring || m.state.TailoringDone {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.cancelled = true
			return m, tea.Quit
		}
		if m.splash {
			return m, nil
		}
		keys := m.keys.forState(m.state)
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
		if key.Matches(msg, keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		if key.Matches(msg, keys.Back) {
			return m.apply(flow.RetreatRequested{})
		}
		return m.updateScreen(msg, keys)
	}

	// Cursor blink and other input messages.
	return m.updateInputs(msg)
}

func (m Model) updateScreen(msg tea.KeyMsg, keys keyMap) (tea.Model, tea.Cmd) {
	switch s := m.state.Screen; {
	case s == flow.Onboarding:
		return m.updateOnboarding(msg, keys)
	case s == flow.NameInput:
		return m.updateNameInput(msg, keys)
	case s.IsSelection():
		return m.updateSelection(msg, keys)
	case s == flow.WhatCanDo:
		return m.updateContract(msg, keys)
	case s == flow.Solution:
		return m.updatePaywall(msg, keys)
	case s == flow.Dashboard:
		return m.updateDashboard(msg, keys)
	case s == flow.CreateHabit:
		return m.updateCreateHabit(msg, keys)
	}
	if key.Matches(msg, keys.Next) {
		return m.apply(flow.AdvanceRequested{})
	}
	return m, nil
}

// Cancelled returns true if the user aborted with ctrl+c.
func (m Model) Cancelled() bool { return m.cancelled }

// Result returns the flow state the wizard ended in.
func (m Model) Result() flow.State { return m.state }

// apply runs ev through the reducer, performs its effects and prepares the
// new screen when the transition moved.
func (m Model) apply(ev flow.Event) (Model, tea.Cmd) {
	from := m.state.Screen
	next, effects := flow.Apply(m.state, ev)
	m.state = next
	if m.dispatch != nil {
		m.dispatch.Dispatch(m.ctx, effects)
	}
	if next.Screen == from {
		return m, nil
	}
	m.log.Info("screen", zap.Stringer("from", from), zap.Stringer("to", next.Screen))
	return m.entered()
}

// entered resets per-screen renderer state and starts the screen's timers.
func (m Model) entered() (Model, tea.Cmd) {
	m.gen++
	m.notice = ""
	m.cursor = 0
	m.nameInput.Blur()
	m.habitInput.Blur()

	var cmds []tea.Cmd
	s := m.state.Screen
	switch {
	case s == flow.NameInput:
		m.nameInput.SetValue(m.state.Answers.Name)
		m.nameInput.CursorEnd()
		cmds = append(cmds, m.nameInput.Focus())
	case s == flow.CreateHabit:
		m.habitInput.SetValue(m.state.Answers.HabitName)
		m.cursor = -1
		cmds = append(cmds, m.habitInput.Focus())
	case s.IsSelection():
		q, _ := flow.QuestionFor(s)
		m.cursor = catalog.OptionIndex(q, m.state.Answers.Selected(q))
	case s == flow.Solution:
		m.cursor = catalog.PlanIndex(m.state.Plan)
	case s == flow.Tailoring:
		cmds = append(cmds, m.spinner.Tick, m.tailoringTimer())
	}
	if flow.ShowsProgress(s) {
		m.target = flow.Progress(s, m.pacing)
		cmds = append(cmds, m.progress.SetPercent(m.target))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) tailoringTimer() tea.Cmd {
	gen := m.gen
	if m.settings.TailoringDelay <= 0 {
		return func() tea.Msg { return tailoringDoneMsg{gen: gen} }
	}
	return tea.Tick(m.settings.TailoringDelay, func(time.Time) tea.Msg {
		return tailoringDoneMsg{gen: gen}
	})
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state.Screen {
	case flow.NameInput:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case flow.CreateHabit:
		m.habitInput, cmd = m.habitInput.Update(msg)
	}
	return m, cmd
}

// --- Onboarding carousel ---

func (m Model) updateOnboarding(msg tea.KeyMsg, keys keyMap) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Left):
		return m.apply(flow.ShowSlide{Index: m.state.Slide - 1})
	case key.Matches(msg, keys.Right):
		return m.apply(flow.ShowSlide{Index: m.state.Slide + 1})
	case key.Matches(msg, keys.Next):
		return m.apply(flow.AdvanceRequested{})
	}
	return m, nil
}

// --- Name input ---

func (m Model) updateNameInput(msg tea.KeyMsg, keys keyMap) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Next) {
		return m.apply(flow.AdvanceRequested{})
	}
	var cmd tea.Cmd
	before := m.nameInput.Value()
	m.nameInput, cmd = m.nameInput.Update(msg)
	if v := m.nameInput.Value(); v != before {
		m, _ = m.apply(flow.SetName{Value: v})
	}
	return m, cmd
}

// --- Question screens (single-select) ---

func (m Model) updateSelection(msg tea.KeyMsg, keys keyMap) (tea.Model, tea.Cmd) {
	q, _ := flow.QuestionFor(m.state.Screen)
	options := catalog.Options(q)

	switch {
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(options)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Pick):
		return m.apply(flow.Select{Question: q, Option: options[m.cursor].ID})
	case key.Matches(msg, keys.Next):
		return m.apply(flow.AdvanceRequested{})
	default:
		if n := digit(msg); n >= 1 && n <= len(options) {
			m.cursor = n - 1
			return m.apply(flow.Select{Question: q, Option: options[m.cursor].ID})
		}
	}
	return m, nil
}

// --- Contract ---

func (m Model) updateContract(msg tea.KeyMsg, keys keyMap) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, keys.Next) {
		return m, nil
	}
	if !m.state.ContractSigned {
		return m.apply(flow.SignContract{})
	}
	return m.apply(flow.AdvanceRequested{})
}

// --- Paywall ---

func (m Model) updatePaywall(msg tea.KeyMsg, keys keyMap) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
			return m.apply(flow.ChoosePlan{Plan: catalog.Plans[m.cursor].ID})
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(catalog.Plans)-1 {
			m.cursor++
			return m.apply(flow.ChoosePlan{Plan: catalog.Plans[m.cursor].ID})
		}
	case key.Matches(msg, keys.Next):
		var cmd tea.Cmd
		m, cmd = m.apply(flow.Purchase{})
		m.notice = "Purchases are not available in this preview."
		return m, cmd
	case key.Matches(msg, keys.Close):
		return m.apply(flow.ClosePaywall{})
	}
	return m, nil
}

// --- Dashboard ---

func (m Model) updateDashboard(msg tea.KeyMsg, keys keyMap) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Create):
		return m.apply(flow.OpenCreateHabit{})
	case key.Matches(msg, keys.Tab):
		tabs := flow.Tabs()
		if n := digit(msg); n >= 1 && n <= len(tabs) {
			return m.apply(flow.ChooseTab{Tab: tabs[n-1]})
		}
		for i, t := range tabs {
			if t == m.state.Tab {
				return m.apply(flow.ChooseTab{Tab: tabs[(i+1)%len(tabs)]})
			}
		}
	}
	return m, nil
}

// --- Create habit ---

func (m Model) updateCreateHabit(msg tea.KeyMsg, keys keyMap) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.apply(flow.AdvanceRequested{})
	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
			return m.apply(flow.SetHabitTime{Value: catalog.HabitTimes[m.cursor]})
		}
		return m, nil
	case tea.KeyDown:
		if m.cursor < len(catalog.HabitTimes)-1 {
			m.cursor++
			return m.apply(flow.SetHabitTime{Value: catalog.HabitTimes[m.cursor]})
		}
		return m, nil
	}
	var cmd tea.Cmd
	before := m.habitInput.Value()
	m.habitInput, cmd = m.habitInput.Update(msg)
	if v := m.habitInput.Value(); v != before {
		m, _ = m.apply(flow.SetHabitName{Value: v})
	}
	return m, cmd
}

// digit returns the number typed for a single digit key, or 0.
func digit(msg tea.KeyMsg) int {
	s := msg.String()
	if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		return int(s[0] - '0')
	}
	return 0
}
