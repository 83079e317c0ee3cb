// Copyright © 2025 Tileforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/tileforge/demo.go
// Summary: `tileforge demo` — a Bubble Tea program driving a Hub interactively.

package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tileforge/tileforge/core"
	"github.com/tileforge/tileforge/internal/tui"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive Bubble Tea layout demo",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("tileforge demo: %w", err)
		}

		hub := core.New(core.Rect{W: cfg.ScreenWidth, H: cfg.ScreenHeight}, cfg.Border)
		hub.SetAutoTile(cfg.AutoTile)
		hub.SetSpawnMode(core.ParseSpawnMode(cfg.SpawnMode))

		model := tui.NewDemoModel(hub)
		program := tea.NewProgram(model, tea.WithAltScreen())
		_, err = program.Run()
		return err
	},
}
