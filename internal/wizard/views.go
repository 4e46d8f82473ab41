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
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cloud-exit/habbit/internal/catalog"
	"github.com/cloud-exit/habbit/internal/flow"
	"github.com/cloud-exit/habbit/internal/ui"
)

func (m Model) View() string {
	if m.splash {
		return m.viewSplash()
	}

	var content string
	switch s := m.state.Screen; {
	case s == flow.Welcome:
		content = m.viewWelcome()
	case s == flow.Onboarding:
		content = m.viewOnboarding()
	case s == flow.NameInput:
		content = m.viewNameInput()
	case s == flow.WelcomeUser:
		content = m.viewWelcomeUser()
	case s.IsSelection():
		content = m.viewSelection()
	case s == flow.Tailoring:
		content = m.viewTailoring()
	case s == flow.News:
		content = m.viewNews()
	case s == flow.BadNewsStat:
		content = m.viewBadNewsStat()
	case s == flow.WhatCanDo:
		content = m.viewContract()
	case s == flow.Solution:
		content = m.viewPaywall()
	case s == flow.Dashboard:
		content = m.viewDashboard()
	case s == flow.CreateHabit:
		content = m.viewCreateHabit()
	}

	var b strings.Builder
	if flow.ShowsProgress(m.state.Screen) {
		b.WriteString(m.progress.View())
		b.WriteString("\n\n")
	}
	b.WriteString(content)
	if m.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render(m.notice))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys.forState(m.state))))
	return frameStyle.Render(b.String())
}

func (m Model) viewSplash() string {
	logo := titleStyle.Render(ui.LogoText)
	tagline := subtitleStyle.Render(ui.Tagline)
	body := lipgloss.JoinVertical(lipgloss.Center, logo, "", tagline)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	return frameStyle.Render(body)
}

// header renders the title and body copy of the current screen.
func (m Model) header(args ...any) string {
	text := catalog.Text(m.state.Screen)
	title, body := text.Title, text.Body
	if len(args) > 0 {
		if strings.Contains(title, "%s") {
			title = fmt.Sprintf(title, args...)
		}
		if strings.Contains(body, "%s") {
			body = fmt.Sprintf(body, args...)
		}
	}
	return titleStyle.Render(title) + "\n" + subtitleStyle.Render(body) + "\n"
}

func (m Model) button(label string) string {
	return buttonStyle.Render(label)
}

func (m Model) errorLine(msg string) string {
	if !m.state.Failed() {
		return ""
	}
	return "\n" + errorStyle.Render(msg)
}

func (m Model) name() string {
	if n := m.state.Answers.DisplayName(); n != "" {
		return n
	}
	return "friend"
}

func (m Model) viewWelcome() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(ui.LogoText))
	b.WriteString("\n\n")
	b.WriteString(m.header())
	b.WriteString(m.button(catalog.Text(flow.Welcome).Action))
	return b.String()
}

func (m Model) viewOnboarding() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")

	slide := catalog.Slides[m.state.Slide]
	b.WriteString(selectedStyle.Render(slide.Title))
	b.WriteString("\n")
	b.WriteString(slide.Subtitle)
	b.WriteString("\n\n")

	dots := make([]string, len(catalog.Slides))
	for i := range dots {
		if i == m.state.Slide {
			dots[i] = cursorStyle.Render("●")
		} else {
			dots[i] = dimStyle.Render("○")
		}
	}
	b.WriteString(strings.Join(dots, " "))
	b.WriteString("\n")
	b.WriteString(m.button(catalog.Text(flow.Onboarding).Action))
	return b.String()
}

func (m Model) viewNameInput() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d/%d", len([]rune(m.nameInput.Value())), flow.MaxNameLength)))
	b.WriteString(m.errorLine("Required"))
	b.WriteString("\n")
	b.WriteString(m.button(catalog.Text(flow.NameInput).Action))
	return b.String()
}

func (m Model) viewWelcomeUser() string {
	var b strings.Builder
	b.WriteString(m.header(m.name()))
	b.WriteString(m.button(catalog.Text(flow.WelcomeUser).Action))
	return b.String()
}

func (m Model) viewSelection() string {
	q, _ := flow.QuestionFor(m.state.Screen)
	selected := m.state.Answers.Selected(q)

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")
	for i, o := range catalog.Options(q) {
		cursor := "  "
		if m.cursor == i {
			cursor = cursorStyle.Render("> ")
		}
		radio := "( )"
		title := fmt.Sprintf("%-22s", o.Title)
		if o.ID == selected {
			radio = selectedStyle.Render("(•)")
			title = selectedStyle.Render(title)
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s %s\n", cursor, radio, o.Emoji, title, dimStyle.Render(o.Desc)))
	}
	b.WriteString(m.errorLine(catalog.MissingAnswerMessage))
	b.WriteString("\n")
	b.WriteString(m.button(catalog.Text(m.state.Screen).Action))
	return b.String()
}

func (m Model) viewTailoring() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")
	if !m.state.TailoringDone {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(dimStyle.Render("Analyzing your answers..."))
		return b.String()
	}
	b.WriteString(selectedStyle.Render("✓ Your plan is ready."))
	b.WriteString("\n")
	b.WriteString(m.button(catalog.Text(flow.Tailoring).Action))
	return b.String()
}

func (m Model) viewNews() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")
	for _, f := range catalog.NewsFeatures {
		b.WriteString(fmt.Sprintf("• %s: %s\n", selectedStyle.Render(f.Title), f.Desc))
	}
	b.WriteString(m.button(catalog.Text(flow.News).Action))
	return b.String()
}

func (m Model) viewBadNewsStat() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString(m.button(catalog.Text(flow.BadNewsStat).Action))
	return b.String()
}

func (m Model) viewContract() string {
	var b strings.Builder
	b.WriteString(m.header(m.name()))
	b.WriteString("\n")
	for i, c := range catalog.ContractClauses {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, c))
	}
	if m.state.ContractSigned {
		b.WriteString("\n")
		b.WriteString(stampStyle.Render("ACCEPTED"))
		b.WriteString("\n")
		b.WriteString(m.button("Get Started"))
		return b.String()
	}
	b.WriteString(m.button(catalog.Text(flow.WhatCanDo).Action))
	return b.String()
}

func (m Model) viewPaywall() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")
	for _, f := range catalog.PaywallFeatures {
		b.WriteString(selectedStyle.Render("✓ "))
		b.WriteString(f)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	for i, p := range catalog.Plans {
		cursor := "  "
		if m.cursor == i {
			cursor = cursorStyle.Render("> ")
		}
		radio := "( )"
		title := fmt.Sprintf("%-9s", p.Title)
		if p.ID == m.state.Plan {
			radio = selectedStyle.Render("(•)")
			title = selectedStyle.Render(title)
		}
		line := fmt.Sprintf("%s%s %s %s %s", cursor, radio, title, p.Price, dimStyle.Render(p.Per))
		if p.Badge != "" {
			line += " " + badgeStyle.Render(p.Badge)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(m.button(catalog.CallToAction(m.state.Plan)))
	return b.String()
}

var tabLabels = map[flow.Tab]string{
	flow.TabHome:     "Home",
	flow.TabStats:    "Statistics",
	flow.TabSettings: "Settings",
}

func (m Model) viewDashboard() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf(catalog.Text(flow.Dashboard).Title, m.name())))
	b.WriteString("\n\n")

	var tabs []string
	for i, t := range flow.Tabs() {
		label := fmt.Sprintf("%d %s", i+1, tabLabels[t])
		if t == m.state.Tab {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, dimStyle.Render(label))
		}
	}
	b.WriteString(strings.Join(tabs, "   "))
	b.WriteString("\n\n")

	switch m.state.Tab {
	case flow.TabStats:
		b.WriteString(subtitleStyle.Render("Your progress will appear here."))
	case flow.TabSettings:
		b.WriteString(subtitleStyle.Render("App preferences."))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Haptics        %s\n", onOff(m.settings.Haptics)))
		b.WriteString(fmt.Sprintf("Notifications  %s\n", onOff(m.settings.Notifications)))
		b.WriteString(fmt.Sprintf("Pacing         %s", m.pacing))
	default:
		if habit := strings.TrimSpace(m.state.Answers.HabitName); habit != "" {
			b.WriteString(selectedStyle.Render("• " + habit))
			if t := m.state.Answers.HabitTime; t != "" {
				b.WriteString(dimStyle.Render("  " + t))
			}
		} else {
			b.WriteString(subtitleStyle.Render(catalog.Text(flow.Dashboard).Body))
		}
		b.WriteString("\n")
		b.WriteString(m.button(catalog.Text(flow.Dashboard).Action))
	}
	return b.String()
}

func (m Model) viewCreateHabit() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")
	b.WriteString(m.habitInput.View())
	b.WriteString(m.errorLine("Required"))
	b.WriteString("\n\n")
	for _, t := range catalog.HabitTimes {
		radio := "( )"
		label := t
		if t == m.state.Answers.HabitTime {
			radio = selectedStyle.Render("(•)")
			label = selectedStyle.Render(t)
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", radio, label))
	}
	b.WriteString(m.button(catalog.Text(flow.CreateHabit).Action))
	return b.String()
}

func onOff(v bool) string {
	if v {
		return selectedStyle.Render("on")
	}
	return dimStyle.Render("off")
}
