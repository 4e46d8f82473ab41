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
	"os"
	"strings"

	"github.com/cloud-exit/habbit/internal/script"
	"github.com/cloud-exit/habbit/internal/ui"
	"github.com/spf13/cobra"
)

var replayStrict bool

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Run the onboarding from a command file",
	Long: "Replay a command file against the onboarding flow and report every step.\n" +
		"Use - to read from stdin.\n\nCommands:\n" + scriptHelp(),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log, err := openLogger(cfg.Settings)
		if err != nil {
			return err
		}
		defer log.Close()

		in := cmd.InOrStdin()
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening script: %w", err)
			}
			defer f.Close()
			in = f
		}

		out := cmd.OutOrStdout()
		state, err := runScript(cmd.Context(), in, out, cfg, log, replayStrict)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		printSummary(out, state)
		ui.Debugf("Replay finished on %s", state.Screen)
		return nil
	},
}

func scriptHelp() string {
	var b strings.Builder
	for _, v := range script.Verbs {
		fmt.Fprintf(&b, "  %-28s %s\n", v.Usage, v.Help)
	}
	b.WriteString("  # ...                        comment\n")
	return b.String()
}

func init() {
	replayCmd.Flags().BoolVar(&replayStrict, "strict", false, "Fail on the first rejected advance")
	rootCmd.AddCommand(replayCmd)
}
