// Copyright © 2025 Tileforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/tileforge/root.go
// Summary: The root cobra command and shared config flags.

package main

import (
	"github.com/spf13/cobra"

	"github.com/tileforge/tileforge/internal/config"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:   "tileforge",
	Short: "A tiling window layout engine",
	Long:  "tileforge drives a core.Hub tiling tree from the terminal: a TUI demo for trying layout operations by hand, and a render loop wired to a tcell screen.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "directory to search for tileforge.toml (the current directory is always searched too)")
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(renderCmd)
}

func loadConfig() (config.HubConfig, error) {
	mgr := config.NewManager(configDir)
	return mgr.Load()
}
