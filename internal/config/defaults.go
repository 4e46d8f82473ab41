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


package config

import (
	"fmt"
	"time"

	"github.com/cloud-exit/habbit/internal/flow"
	"go.uber.org/zap/zapcore"
)

const (
	// DefaultSplashDelay is how long the splash stays up before the flow starts.
	DefaultSplashDelay = 1500 * time.Millisecond
	// DefaultTailoringDelay is the simulated personalization time.
	DefaultTailoringDelay = 4 * time.Second
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Settings: SettingsConfig{
			Haptics:        true,
			Notifications:  true,
			Pacing:         string(flow.PacingTuned),
			SplashDelay:    DefaultSplashDelay,
			TailoringDelay: DefaultTailoringDelay,
			LogLevel:       "info",
		},
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, err := flow.ParsePacing(c.Settings.Pacing); err != nil {
		return fmt.Errorf("settings.pacing: %w", err)
	}
	if c.Settings.SplashDelay < 0 {
		return fmt.Errorf("settings.splash_delay: must not be negative, got %s", c.Settings.SplashDelay)
	}
	if c.Settings.TailoringDelay < 0 {
		return fmt.Errorf("settings.tailoring_delay: must not be negative, got %s", c.Settings.TailoringDelay)
	}
	if _, err := zapcore.ParseLevel(c.Settings.LogLevel); err != nil {
		return fmt.Errorf("settings.log_level: %w", err)
	}
	return nil
}

// PacingMode returns the configured progress pacing, falling back to tuned.
func (c *Config) PacingMode() flow.Pacing {
	p, err := flow.ParsePacing(c.Settings.Pacing)
	if err != nil {
		return flow.PacingTuned
	}
	return p
}
