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
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// completionShells maps a shell to its generator and install hint.
var completionShells = map[string]struct {
	gen  func(w io.Writer) error
	hint string
}{
	"bash": {
		gen:  func(w io.Writer) error { return rootCmd.GenBashCompletionV2(w, true) },
		hint: "# Add to ~/.bashrc:\n#\n#   eval \"$(habbit completion bash)\"",
	},
	"zsh": {
		gen:  func(w io.Writer) error { return rootCmd.GenZshCompletion(w) },
		hint: "# Add to ~/.zshrc:\n#\n#   eval \"$(habbit completion zsh)\"",
	},
	"fish": {
		gen:  func(w io.Writer) error { return rootCmd.GenFishCompletion(w, true) },
		hint: "# Run:\n#\n#   habbit completion fish > ~/.config/fish/completions/habbit.fish",
	},
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish]",
	Short: "Generate shell autocompletion",
	Long: `Generate autocompletion for your shell.

If no shell is specified, the current shell is detected automatically.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"bash", "zsh", "fish"},
	RunE: func(cmd *cobra.Command, args []string) error {
		shell := detectShell()
		if len(args) > 0 {
			shell = args[0]
		}
		sh, ok := completionShells[shell]
		if !ok {
			return fmt.Errorf("unsupported shell: %s (supported: bash, zsh, fish)", shell)
		}
		if err := sh.gen(cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("generating %s completion: %w", shell, err)
		}
		if isTerminal(cmd.OutOrStdout()) {
			fmt.Fprintln(cmd.ErrOrStderr(), "\n"+sh.hint)
		}
		return nil
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(completionCmd)
}

// detectShell returns the name of the user's current shell.
func detectShell() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		switch base := filepath.Base(sh); base {
		case "bash", "zsh", "fish":
			return base
		}
	}

	// Parent process name via /proc on Linux
	if data, err := os.ReadFile(fmt.Sprintf("/proc/%d/comm", os.Getppid())); err == nil {
		switch name := strings.TrimSpace(string(data)); name {
		case "bash", "zsh", "fish":
			return name
		}
	}
	return "bash"
}
