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

	"github.com/cloud-exit/habbit/internal/config"
	"github.com/cloud-exit/habbit/internal/ui"
	"github.com/spf13/cobra"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the settings file",
	Long:  "Manage config.yaml. It holds settings only; onboarding answers are never saved.",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.EnsureDirs(); err != nil {
			return fmt.Errorf("creating directories: %w", err)
		}
		path := config.ConfigFile()
		if flagConfig != "" {
			path = flagConfig
		}
		if configForce || path != config.ConfigFile() {
			if err := config.SaveConfigTo(config.DefaultConfig(), path); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			ui.Successf("Wrote %s", path)
			return nil
		}
		wrote, err := config.WriteDefaults()
		if err != nil {
			return fmt.Errorf("writing defaults: %w", err)
		}
		if !wrote {
			ui.Infof("%s already exists. Use --force to overwrite.", path)
			return nil
		}
		ui.Successf("Wrote %s", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Long:  "Print the settings after applying the config file and command-line flags.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		out, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config and log file locations",
	Run: func(cmd *cobra.Command, args []string) {
		path := config.ConfigFile()
		if flagConfig != "" {
			path = flagConfig
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", "config:", path)
		fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", "log:", config.LogFile())
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd, configShowCmd, configPathCmd)
	rootCmd.AddCommand(configCmd)
}
