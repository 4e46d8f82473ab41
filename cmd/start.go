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
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cloud-exit/habbit/internal/catalog"
	"github.com/cloud-exit/habbit/internal/config"
	"github.com/cloud-exit/habbit/internal/feedback"
	"github.com/cloud-exit/habbit/internal/flow"
	"github.com/cloud-exit/habbit/internal/logging"
	"github.com/cloud-exit/habbit/internal/script"
	"github.com/cloud-exit/habbit/internal/timeline"
	"github.com/cloud-exit/habbit/internal/ui"
	"github.com/cloud-exit/habbit/internal/wizard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Run the onboarding wizard",
	Long:  "Interactive onboarding wizard. Reads script commands from stdin when stdin is not a terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStart(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func runStart(ctx context.Context, in io.Reader, out io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := openLogger(cfg.Settings)
	if err != nil {
		return err
	}
	defer log.Close()

	// Non-interactive terminal: drive the flow from stdin
	if !isTerminal(in) {
		ui.Debug("Non-interactive terminal detected. Reading commands from stdin.")
		state, err := runScript(ctx, in, out, cfg, log, false)
		if err != nil {
			return err
		}
		printSummary(out, state)
		return nil
	}

	scope := timeline.NewScope()
	defer scope.Close()

	log.Info("wizard started", zap.String("version", Version), zap.String("pacing", cfg.Settings.Pacing))
	state, err := wizard.Run(ctx, wizard.Options{
		Settings:   cfg.Settings,
		Dispatcher: feedback.NewDispatcher(feedback.NewTerminal(os.Stdout), log.Logger, scope, feedbackOptions(cfg.Settings)),
		Logger:     log.Logger,
	})
	log.Info("wizard finished", zap.Stringer("screen", state.Screen))
	if errors.Is(err, wizard.ErrCancelled) {
		ui.Info("Onboarding cancelled. Nothing was saved.")
		return nil
	}
	if err != nil {
		return err
	}
	printSummary(out, state)
	return nil
}

// runScript feeds script commands from r to the flow and reports each step
// on out.
func runScript(ctx context.Context, r io.Reader, out io.Writer, cfg *config.Config, log *logging.Logger, strict bool) (flow.State, error) {
	scope := timeline.NewScope()
	defer scope.Close()

	var bell io.Writer = io.Discard
	if isTerminal(os.Stderr) {
		bell = os.Stderr
	}
	d := script.NewDriver(script.Options{
		Out:            out,
		Dispatcher:     feedback.NewDispatcher(feedback.NewTerminal(bell), log.Logger, scope, feedbackOptions(cfg.Settings)),
		Logger:         log.Logger,
		Pacing:         cfg.PacingMode(),
		TailoringDelay: cfg.Settings.TailoringDelay,
		Strict:         strict,
		Spinner:        isTerminal(out),
	})
	defer d.Close()
	return d.Run(ctx, r)
}

func openLogger(s config.SettingsConfig) (*logging.Logger, error) {
	path := flagLogFile
	if path == "" {
		if err := config.EnsureDirs(); err != nil {
			ui.Warnf("Cannot create %s, flow events will not be logged: %v", config.State, err)
			return logging.Nop(), nil
		}
		path = config.LogFile()
	}
	log, err := logging.Open(logging.Options{Path: path, Level: s.LogLevel, Verbose: flagVerbose})
	if err != nil {
		return nil, err
	}
	ui.Debugf("Session %s logging to %s", log.Session, path)
	return log, nil
}

func feedbackOptions(s config.SettingsConfig) feedback.Options {
	return feedback.Options{Haptics: s.Haptics, Notifications: s.Notifications}
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && ui.IsTerminal(f)
}

// summary describes where the onboarding ended and what was answered.
func summary(s flow.State) []string {
	lines := []string{fmt.Sprintf("Finished on %s", s.Screen)}
	if name := s.Answers.DisplayName(); name != "" {
		lines = append(lines, fmt.Sprintf("  %-10s %s", "Name:", name))
	}
	for _, q := range flow.Questions() {
		id := s.Answers.Selected(q)
		if id == "" {
			continue
		}
		label := id
		if o := catalog.GetOption(q, id); o != nil {
			label = o.Title
		}
		lines = append(lines, fmt.Sprintf("  %-10s %s", string(q)+":", label))
	}
	if s.Screen == flow.Dashboard || s.Screen == flow.CreateHabit {
		if p := catalog.GetPlan(s.Plan); p != nil {
			lines = append(lines, fmt.Sprintf("  %-10s %s (%s %s)", "Plan:", p.Title, p.Price, p.Per))
		}
	}
	if habit := s.Answers.HabitName; habit != "" {
		if s.Answers.HabitTime != "" {
			habit += ", " + s.Answers.HabitTime
		}
		lines = append(lines, fmt.Sprintf("  %-10s %s", "Habit:", habit))
	}
	return lines
}

func printSummary(out io.Writer, s flow.State) {
	lines := summary(s)
	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.Bold+lines[0]+ui.NC)
	for _, l := range lines[1:] {
		fmt.Fprintln(out, l)
	}
}

func init() {
	rootCmd.AddCommand(startCmd)
}
