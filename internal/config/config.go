// Copyright © 2025 Tileforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/config/config.go
// Summary: HubConfig loading — the on-disk policy tileforge's ambient layers feed into core.New.

package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// HubConfig is the on-disk shape of everything a driver needs to construct
// and police a core.Hub: the starting screen size, border width and spawn
// policy. It owns no tree state — that lives entirely in the Hub.
type HubConfig struct {
	ScreenWidth  float64 `mapstructure:"screen_width"`
	ScreenHeight float64 `mapstructure:"screen_height"`
	Border       float64 `mapstructure:"border"`
	AutoTile     bool    `mapstructure:"auto_tile"`
	SpawnMode    string  `mapstructure:"spawn_mode"`
}

// Default returns the configuration tileforge starts with if no config file
// is present.
func Default() HubConfig {
	return HubConfig{
		ScreenWidth:  150,
		ScreenHeight: 30,
		Border:       1,
		AutoTile:     false,
		SpawnMode:    "horizontal",
	}
}

// Manager owns the viper instance and the set of callbacks notified on
// reload (see watch.go).
type Manager struct {
	v         *viper.Viper
	cfg       HubConfig
	callbacks []func(HubConfig)
}

// NewManager builds a Manager that reads a TOML file named "tileforge" from
// configDir (when non-empty) or the current directory, with
// TILEFORGE_-prefixed env var overrides.
func NewManager(configDir string) *Manager {
	v := viper.New()
	v.SetConfigName("tileforge")
	v.SetConfigType("toml")
	if configDir != "" {
		v.AddConfigPath(configDir)
	}
	v.AddConfigPath(".")
	v.SetEnvPrefix("TILEFORGE")
	v.AutomaticEnv()

	d := Default()
	v.SetDefault("screen_width", d.ScreenWidth)
	v.SetDefault("screen_height", d.ScreenHeight)
	v.SetDefault("border", d.Border)
	v.SetDefault("auto_tile", d.AutoTile)
	v.SetDefault("spawn_mode", d.SpawnMode)

	return &Manager{v: v, cfg: d}
}

// Load reads the config file (if any exist — a missing file is not an
// error, defaults apply) and unmarshals it into the Manager's HubConfig.
func (m *Manager) Load() (HubConfig, error) {
	if err := m.v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return HubConfig{}, fmt.Errorf("config: reading config file: %w", err)
		}
	}
	var cfg HubConfig
	if err := m.v.Unmarshal(&cfg); err != nil {
		return HubConfig{}, fmt.Errorf("config: unmarshaling config: %w", err)
	}
	m.cfg = cfg
	return cfg, nil
}

// Current returns the last loaded configuration.
func (m *Manager) Current() HubConfig { return m.cfg }
