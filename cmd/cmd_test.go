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
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cloud-exit/habbit/internal/config"
	"github.com/cloud-exit/habbit/internal/flow"
)

const onboardingScript = `next
next
name Robin
next
next
select energy night_owl
next
select tracking check_ins
next
select goal both
next
select barrier motivation
next
select main-goal mindfulness
next
wait
next
next
next
sign
next
plan yearly
close
create
habit Stretch
time 2
next
`

// isolate points config and state at a temp dir and resets flag globals.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	config.Reload()
	t.Cleanup(config.Reload)

	flagVerbose, flagConfig, flagPacing = false, "", ""
	flagNoHaptics, flagFast, flagLogFile = false, false, ""
	replayStrict, configForce = false, false
	return dir
}

func execute(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(stdin)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
	})
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestReplay_FullOnboarding(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "onboarding.txt")
	if err := os.WriteFile(path, []byte(onboardingScript), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, strings.NewReader(""), "replay", path, "--fast")
	if err != nil {
		t.Fatalf("replay: %v\n%s", err, out)
	}
	for _, want := range []string{"Finished on dashboard", "Robin", "Mindfulness", "Yearly", "Stretch, With breakfast"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	log, err := os.ReadFile(config.LogFile())
	if err != nil {
		t.Fatalf("flow log not written: %v", err)
	}
	if !strings.Contains(string(log), `"habit drafted"`) {
		t.Errorf("flow log missing habit entry:\n%s", log)
	}
}

func TestReplay_StrictFailsWithLine(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "short.txt")
	if err := os.WriteFile(path, []byte("next\nnext\nnext\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := execute(t, strings.NewReader(""), "replay", "--strict", "--fast", path)
	if err == nil || !strings.Contains(err.Error(), "line 3") {
		t.Errorf("replay --strict = %v, want line 3 error", err)
	}
}

func TestReplay_Stdin(t *testing.T) {
	isolate(t)
	out, err := execute(t, strings.NewReader("next\n# comment\nback\n"), "replay", "-")
	if err != nil {
		t.Fatalf("replay -: %v", err)
	}
	if !strings.Contains(out, "Finished on welcome") {
		t.Errorf("output = %q", out)
	}
}

func TestStart_PipedStdinRunsScript(t *testing.T) {
	isolate(t)
	out, err := execute(t, strings.NewReader("next\nnext\nnext\n"), "--fast")
	if err != nil {
		t.Fatalf("habbit: %v", err)
	}
	if !strings.Contains(out, "Finished on name-input") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, flow.ErrMissingAnswer.Error()) {
		t.Errorf("output should report the missing name:\n%s", out)
	}
}

func TestLoadConfig_FlagOverrides(t *testing.T) {
	isolate(t)
	flagPacing = "even"
	flagNoHaptics = true
	flagFast = true

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.PacingMode() != flow.PacingEven {
		t.Errorf("pacing = %s, want even", cfg.PacingMode())
	}
	if cfg.Settings.Haptics {
		t.Error("--no-haptics not applied")
	}
	if cfg.Settings.SplashDelay != 0 || cfg.Settings.TailoringDelay != 0 {
		t.Errorf("--fast not applied: %+v", cfg.Settings)
	}

	flagPacing = "sideways"
	if _, err := loadConfig(); err == nil {
		t.Error("unknown --pacing should fail")
	}
}

func TestLoadConfig_File(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("settings:\n  tailoring_delay: 2s\n"), 0644); err != nil {
		t.Fatal(err)
	}
	flagConfig = path
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Settings.TailoringDelay != 2*time.Second {
		t.Errorf("tailoring delay = %s, want 2s", cfg.Settings.TailoringDelay)
	}

	flagConfig = filepath.Join(dir, "missing.yaml")
	if _, err := loadConfig(); err == nil {
		t.Error("missing --config file should fail")
	}
}

func TestScreens(t *testing.T) {
	isolate(t)
	out, err := execute(t, nil, "screens", "--pacing", "even")
	if err != nil {
		t.Fatalf("screens: %v", err)
	}
	for _, s := range flow.Screens() {
		if !strings.Contains(out, s.String()) {
			t.Errorf("screens output missing %s", s)
		}
	}
	if !strings.Contains(out, "main-goal") || !strings.Contains(out, "habit name") {
		t.Errorf("screens output missing rule labels:\n%s", out)
	}
	if !strings.Contains(out, "Pacing: even") {
		t.Errorf("screens output missing pacing:\n%s", out)
	}
}

func TestRuleLabel(t *testing.T) {
	tests := map[flow.Screen]string{
		flow.Welcome:         "-",
		flow.NameInput:       "name",
		flow.EnergySelection: "energy",
		flow.CreateHabit:     "habit name",
		flow.Solution:        "-",
	}
	for s, want := range tests {
		if got := ruleLabel(s); got != want {
			t.Errorf("ruleLabel(%s) = %q, want %q", s, got, want)
		}
	}
}

func TestConfigCommands(t *testing.T) {
	isolate(t)
	if _, err := execute(t, nil, "config", "init"); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !config.ConfigExists() {
		t.Fatal("config init did not write config.yaml")
	}

	out, err := execute(t, nil, "config", "show", "--pacing", "even")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "pacing: even") || !strings.Contains(out, "tailoring_delay: 4s") {
		t.Errorf("config show = %q", out)
	}

	out, err = execute(t, nil, "config", "path")
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	if !strings.Contains(out, config.ConfigFile()) || !strings.Contains(out, config.LogFile()) {
		t.Errorf("config path = %q", out)
	}
}

func TestSummary(t *testing.T) {
	s := flow.NewState()
	s.Screen = flow.Dashboard
	s.Answers = flow.Answers{Name: " Ada ", Energy: "early_bird", Goal: "custom"}
	s.Plan = "lifetime"

	got := strings.Join(summary(s), "\n")
	for _, want := range []string{"Finished on dashboard", "Ada", "Morning", "custom", "Lifetime ($99.99 one-time)"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "tracking:") {
		t.Errorf("summary should skip unanswered questions:\n%s", got)
	}
}

func TestVersion(t *testing.T) {
	isolate(t)
	out, err := execute(t, nil, "version")
	if err != nil || !strings.Contains(out, "habbit version "+Version) {
		t.Errorf("version = %q, %v", out, err)
	}
}

func TestDetectShell(t *testing.T) {
	t.Setenv("SHELL", "/usr/bin/zsh")
	if got := detectShell(); got != "zsh" {
		t.Errorf("detectShell() = %q, want zsh", got)
	}
}

func TestCompletion(t *testing.T) {
	isolate(t)
	out, err := execute(t, nil, "completion", "fish")
	if err != nil || !strings.Contains(out, "habbit") {
		t.Errorf("completion fish = %v", err)
	}
	if _, err := execute(t, nil, "completion", "tcsh"); err == nil {
		t.Error("unsupported shell should fail")
	}
}
