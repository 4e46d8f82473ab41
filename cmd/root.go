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
	"fmt"
	"os"
	"os/signal"

	"github.com/cloud-exit/habbit/internal/config"
	"github.com/cloud-exit/habbit/internal/flow"
	"github.com/cloud-exit/habbit/internal/ui"
	"github.com/spf13/cobra"
)

// Version is set by ldflags at build time.
var Version = "0.4.0"

// Persistent flags shared by every command.
var (
	flagVerbose   bool
	flagConfig    string
	flagPacing    string
	flagNoHaptics bool
	flagFast      bool
	flagLogFile   string
)

var rootCmd = &cobra.Command{
	Use:   "habbit",
	Short: "Habit onboarding in your terminal",
	Long: `Habbit – tiny changes, remarkable results.

Walks through the Habbit onboarding: a few questions about your energy and
goals, a personalized plan, a commitment, and your first habit.

When stdin is not a terminal, commands are read from stdin instead
(see "habbit replay --help" for the command language).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		ui.Verbose = flagVerbose
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStart(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "habbit version %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Config file (default "+config.ConfigFile()+")")
	rootCmd.PersistentFlags().StringVar(&flagPacing, "pacing", "", "Progress bar pacing: tuned or even")
	rootCmd.PersistentFlags().BoolVar(&flagNoHaptics, "no-haptics", false, "Disable feedback pulses")
	rootCmd.PersistentFlags().BoolVar(&flagFast, "fast", false, "Skip the splash and personalization delays")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Flow event log (default "+config.LogFile()+", - for stderr)")

	_ = rootCmd.RegisterFlagCompletionFunc("pacing", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, p := range flow.Pacings() {
			names = append(names, string(p))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(versionCmd)

	rootCmd.SetVersionTemplate("habbit version {{.Version}}\n")
	rootCmd.Version = Version
}

// loadConfig reads the config file and applies the persistent flags on top.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	switch {
	case flagConfig != "":
		cfg, err = config.LoadConfigFrom(flagConfig)
	case config.ConfigExists():
		cfg, err = config.LoadConfig()
	default:
		cfg = config.DefaultConfig()
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if flagPacing != "" {
		cfg.Settings.Pacing = flagPacing
	}
	if flagNoHaptics {
		cfg.Settings.Haptics = false
	}
	if flagFast {
		cfg.Settings = cfg.Settings.Fast()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		ui.ErrorNoExit(err.Error())
		stop()
		os.Exit(1)
	}
}
