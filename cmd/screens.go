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


package cmd

import (
	"fmt"
	"io"

	"github.com/cloud-exit/habbit/internal/flow"
	"github.com/cloud-exit/habbit/internal/ui"
	"github.com/spf13/cobra"
)

var screensCmd = &cobra.Command{
	Use:   "screens",
	Short: "List the onboarding screens and how they connect",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		printScreens(cmd.OutOrStdout(), cfg.PacingMode())
		return nil
	},
}

// ruleLabel names the answer a screen requires before it can be left.
func ruleLabel(s flow.Screen) string {
	if !flow.HasRule(s) {
		return "-"
	}
	if q, ok := flow.QuestionFor(s); ok {
		return string(q)
	}
	switch s {
	case flow.NameInput:
		return "name"
	case flow.CreateHabit:
		return "habit name"
	}
	return "?"
}

func printScreens(w io.Writer, pacing flow.Pacing) {
	fmt.Fprintf(w, "%s%-20s %-20s %-20s %-11s %s%s\n", ui.Bold, "SCREEN", "NEXT", "BACK", "REQUIRES", "PROGRESS", ui.NC)
	for _, s := range flow.Screens() {
		back := "-"
		if p := flow.Retreat(s); p != s {
			back = p.String()
		}
		progress := "-"
		if flow.ShowsProgress(s) {
			progress = fmt.Sprintf("%3.0f%%", flow.Progress(s, pacing)*100)
		}
		fmt.Fprintf(w, "%-20s %-20s %-20s %-11s %s\n", s, flow.Next(s), back, ruleLabel(s), progress)
	}
	fmt.Fprintf(w, "\n%sPacing: %s. dashboard -> create-habit only via the dashboard's new-habit action.%s\n", ui.Dim, pacing, ui.NC)
}

func init() {
	rootCmd.AddCommand(screensCmd)
}
