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

import "time"

// Config is the top-level habbit configuration (config.yaml).
// It holds settings only. Onboarding answers are never written to disk.
type Config struct {
	Version  int            `yaml:"version"`
	Settings SettingsConfig `yaml:"settings"`
}

// SettingsConfig holds global settings.
type SettingsConfig struct {
	Haptics        bool          `yaml:"haptics"`
	Notifications  bool          `yaml:"notifications"`
	Pacing         string        `yaml:"pacing"`
	SplashDelay    time.Duration `yaml:"splash_delay"`
	TailoringDelay time.Duration `yaml:"tailoring_delay"`
	LogLevel       string        `yaml:"log_level"`
}

// Fast returns a copy of the settings with every cosmetic delay removed.
func (s SettingsConfig) Fast() SettingsConfig {
	s.SplashDelay = 0
	s.TailoringDelay = 0
	return s
}
