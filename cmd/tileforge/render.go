// Copyright © 2025 Tileforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/tileforge/render.go
// Summary: `tileforge render` — a tcell event loop rendering a Hub and reloading config live.

package main

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/tileforge/tileforge/core"
	"github.com/tileforge/tileforge/internal/config"
	"github.com/tileforge/tileforge/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Run the tcell render loop against a Hub",
	RunE:  runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	mgr := config.NewManager(configDir)
	cfg, err := mgr.Load()
	if err != nil {
		return fmt.Errorf("tileforge render: %w", err)
	}
	if err := mgr.Watch(); err != nil {
		return fmt.Errorf("tileforge render: watching config: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tileforge render: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tileforge render: %w", err)
	}
	defer screen.Fini()

	hub := core.New(core.Rect{W: cfg.ScreenWidth, H: cfg.ScreenHeight}, cfg.Border)
	hub.SetAutoTile(cfg.AutoTile)
	hub.SetSpawnMode(core.ParseSpawnMode(cfg.SpawnMode))

	mgr.OnChange(func(next config.HubConfig) {
		hub.SetAutoTile(next.AutoTile)
		hub.SetScreen(core.Rect{W: next.ScreenWidth, H: next.ScreenHeight})
	})

	driver := render.NewTcellScreenDriver(screen)
	renderer := render.NewCellRenderer(driver)
	renderer.Draw(hub)

	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			w, h := ev.Size()
			hub.SetScreen(core.Rect{W: float64(w), H: float64(h)})
			screen.Sync()
		case *tcell.EventKey:
			if !handleRenderKey(hub, ev) {
				return nil
			}
		default:
			log.Printf("tileforge render: unhandled event %T", ev)
		}
		renderer.Draw(hub)
	}
}

// handleRenderKey applies a key event to hub and reports whether the loop
// should keep running.
func handleRenderKey(hub *core.Hub, ev *tcell.EventKey) bool {
	switch ev.Rune() {
	case 'q':
		return false
	case 'n':
		hub.InsertTiling()
	case 'x':
		ws := hub.Workspace(hub.CurrentWorkspace())
		if f := ws.Focused(); f.IsWindow() {
			hub.DeleteWindow(f.Window)
		}
	case 's':
		hub.ToggleSpawnMode()
	case 't':
		hub.ToggleContainerLayout()
	}
	switch ev.Key() {
	case tcell.KeyLeft:
		hub.FocusLeft()
	case tcell.KeyRight:
		hub.FocusRight()
	case tcell.KeyUp:
		hub.FocusUp()
	case tcell.KeyDown:
		hub.FocusDown()
	case tcell.KeyCtrlC:
		return false
	}
	return true
}
