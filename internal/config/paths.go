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
	"os"
	"path/filepath"
	"runtime"
)

// XDG-compliant paths for habbit configuration and state.
var (
	// Home is the configuration directory (~/.config/habbit).
	Home string
	// State is the state directory (~/.local/state/habbit). Logs live here.
	State string
)

func init() {
	Home = filepath.Join(xdgConfig(), "habbit")
	State = filepath.Join(xdgState(), "habbit")
}

func xdgConfig() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	if runtime.GOOS == "windows" {
		if v := os.Getenv("APPDATA"); v != "" {
			return v
		}
	}
	return filepath.Join(homeDir(), ".config")
}

func xdgState() string {
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		return v
	}
	if runtime.GOOS == "windows" {
		if v := os.Getenv("LOCALAPPDATA"); v != "" {
			return filepath.Join(v, "state")
		}
	}
	return filepath.Join(homeDir(), ".local", "state")
}

func homeDir() string {
	if h := os.Getenv("HOME"); h != "" {
		return h
	}
	h, _ := os.UserHomeDir()
	return h
}

// Reload recomputes Home and State from the environment.
func Reload() {
	Home = filepath.Join(xdgConfig(), "habbit")
	State = filepath.Join(xdgState(), "habbit")
}

// ConfigFile returns the path to config.yaml.
func ConfigFile() string {
	return filepath.Join(Home, "config.yaml")
}

// LogFile returns the path to the flow event log.
func LogFile() string {
	return filepath.Join(State, "habbit.log")
}
