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
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/cloud-exit/habbit/internal/catalog"
	"github.com/cloud-exit/habbit/internal/flow"
)

type keyMap struct {
	Next   key.Binding
	Back   key.Binding
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Pick   key.Binding
	Close  key.Binding
	Tab    key.Binding
	Create key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Next:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "continue")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Pick:   key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "select")),
		Close:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "maybe later")),
		Tab:    key.NewBinding(key.WithKeys("tab", "1", "2", "3"), key.WithHelp("tab/1-3", "switch tab")),
		Create: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new habit")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Back, k.Up, k.Down, k.Left, k.Right, k.Pick, k.Close, k.Tab, k.Create, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Back},
		{k.Up, k.Down, k.Left, k.Right, k.Pick},
		{k.Close, k.Tab, k.Create},
		{k.Help, k.Quit},
	}
}

// forState enables only the bindings that do something on the current
// screen and labels enter with the screen's action.
func (k keyMap) forState(s flow.State) keyMap {
	screen := s.Screen
	input := screen == flow.NameInput || screen == flow.CreateHabit
	lists := screen.IsSelection() || screen == flow.Solution || screen == flow.CreateHabit

	k.Next.SetEnabled(screen != flow.Dashboard && (screen != flow.Tailoring || s.TailoringDone))
	k.Back.SetEnabled(flow.Retreat(screen) != screen)
	k.Up.SetEnabled(lists)
	k.Down.SetEnabled(lists)
	k.Left.SetEnabled(screen == flow.Onboarding)
	k.Right.SetEnabled(screen == flow.Onboarding)
	k.Pick.SetEnabled(screen.IsSelection())
	k.Close.SetEnabled(screen == flow.Solution)
	k.Tab.SetEnabled(screen == flow.Dashboard)
	k.Create.SetEnabled(screen == flow.Dashboard)
	k.Quit.SetEnabled(!input)
	k.Help.SetEnabled(!input)
	if input {
		k.Up.SetHelp("↑", "up")
		k.Down.SetHelp("↓", "down")
	}

	action := catalog.Text(screen).Action
	switch {
	case screen == flow.WhatCanDo && s.ContractSigned:
		action = "Get Started"
	case screen == flow.Solution:
		action = catalog.CallToAction(s.Plan)
	}
	if action != "" {
		k.Next.SetHelp("enter", strings.ToLower(action))
	}
	return k
}
