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


// Package script drives the onboarding flow from a line-oriented command
// file. It is used when stdin is not a terminal and by "habbit replay".
package script

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cloud-exit/habbit/internal/catalog"
	"github.com/cloud-exit/habbit/internal/flow"
)

// ErrUnknownCommand is returned for a line whose verb is not recognised.
var ErrUnknownCommand = errors.New("unknown command")

// Command is one parsed script line.
type Command struct {
	Verb  string
	Event flow.Event // nil for wait
	Wait  bool       // let the personalization delay elapse
}

// Verbs lists the accepted command verbs with their usage.
var Verbs = []struct {
	Usage string
	Help  string
}{
	{"advance | next", "continue to the next screen"},
	{"back", "return to the previous screen"},
	{"name <text>", "type the user name (max 20 characters)"},
	{"select <question> <option>", "answer a question"},
	{"slide <1-3>", "show an onboarding slide"},
	{"wait", "let the personalization finish"},
	{"sign", "sign the commitment"},
	{"plan <id>", "choose a paywall plan"},
	{"purchase", "press the purchase button"},
	{"close", "close the paywall"},
	{"tab <home|stats|settings>", "switch dashboard tab"},
	{"create", "open the create-habit screen"},
	{"habit <text>", "type the habit name"},
	{"time <text|1-5>", "choose when to do the habit"},
}

// Parse turns one line into a Command. Blank lines and # comments report
// ok=false.
func Parse(line string) (cmd Command, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Command{}, false, nil
	}
	verb, rest, _ := strings.Cut(line, " ")
	verb = strings.ToLower(verb)
	rest = strings.TrimSpace(rest)
	cmd.Verb = verb

	switch verb {
	case "advance", "next":
		cmd.Event = flow.AdvanceRequested{}
	case "back":
		cmd.Event = flow.RetreatRequested{}
	case "name":
		cmd.Event = flow.SetName{Value: rest}
	case "habit":
		cmd.Event = flow.SetHabitName{Value: rest}
	case "time":
		cmd.Event = flow.SetHabitTime{Value: habitTime(rest)}
	case "select":
		ev, err := parseSelect(rest)
		if err != nil {
			return Command{}, false, err
		}
		cmd.Event = ev
	case "slide":
		n, err := strconv.Atoi(rest)
		if err != nil || n < 1 || n > flow.SlideCount {
			return Command{}, false, fmt.Errorf("slide: want 1-%d, got %q", flow.SlideCount, rest)
		}
		cmd.Event = flow.ShowSlide{Index: n - 1}
	case "wait":
		cmd.Wait = true
	case "sign":
		cmd.Event = flow.SignContract{}
	case "plan":
		if catalog.GetPlan(rest) == nil {
			return Command{}, false, fmt.Errorf("plan: unknown plan %q", rest)
		}
		cmd.Event = flow.ChoosePlan{Plan: rest}
	case "purchase":
		cmd.Event = flow.Purchase{}
	case "close":
		cmd.Event = flow.ClosePaywall{}
	case "tab":
		tab, err := flow.ParseTab(strings.ToLower(rest))
		if err != nil {
			return Command{}, false, err
		}
		cmd.Event = flow.ChooseTab{Tab: tab}
	case "create":
		cmd.Event = flow.OpenCreateHabit{}
	default:
		return Command{}, false, fmt.Errorf("%w %q", ErrUnknownCommand, verb)
	}
	return cmd, true, nil
}

func parseSelect(args string) (flow.Event, error) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		return nil, fmt.Errorf("select: want <question> <option>, got %q", args)
	}
	q, err := flow.ParseQuestion(strings.ToLower(fields[0]))
	if err != nil {
		return nil, err
	}
	if err := catalog.ValidateOption(q, fields[1]); err != nil {
		return nil, err
	}
	return flow.Select{Question: q, Option: fields[1]}, nil
}

// habitTime maps "1".."5" onto the suggested times and passes text through.
func habitTime(arg string) string {
	if n, err := strconv.Atoi(arg); err == nil && n >= 1 && n <= len(catalog.HabitTimes) {
		return catalog.HabitTimes[n-1]
	}
	return arg
}
