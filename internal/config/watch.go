// Copyright © 2025 Tileforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/config/watch.go
// Summary: Live config reload via fsnotify, so a running tileforge driver can pick up edits.

package config

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
)

// Watch starts watching the config file for changes and reloads on every
// write, notifying every callback registered via OnChange.
func (m *Manager) Watch() error {
	m.v.WatchConfig()
	m.v.OnConfigChange(func(_ fsnotify.Event) {
		var cfg HubConfig
		if err := m.v.Unmarshal(&cfg); err != nil {
			fmt.Fprintf(os.Stderr, "tileforge: config reload failed: %v\n", err)
			return
		}
		m.cfg = cfg
		for _, cb := range m.callbacks {
			cb(cfg)
		}
	})
	return nil
}

// OnChange registers cb to run with the new HubConfig every time the
// watched file changes.
func (m *Manager) OnChange(cb func(HubConfig)) {
	m.callbacks = append(m.callbacks, cb)
}
