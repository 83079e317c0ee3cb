// Copyright © 2025 Tileforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/render/driver.go
// Summary: Adapts a tcell.Screen to the narrow surface CellRenderer draws onto.

package render

import "github.com/gdamore/tcell/v2"

// ScreenDriver is the surface CellRenderer needs from a terminal screen.
// Narrowing tcell.Screen to this keeps the renderer testable against a
// tcell.SimulationScreen without pulling in the rest of tcell's API.
type ScreenDriver interface {
	Size() (int, int)
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	Show()
	Clear()
}

// TcellScreenDriver adapts a tcell.Screen to ScreenDriver.
type TcellScreenDriver struct {
	screen tcell.Screen
}

// NewTcellScreenDriver wraps an already-initialized tcell.Screen.
func NewTcellScreenDriver(screen tcell.Screen) *TcellScreenDriver {
	return &TcellScreenDriver{screen: screen}
}

func (d *TcellScreenDriver) Size() (int, int) { return d.screen.Size() }

func (d *TcellScreenDriver) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	d.screen.SetContent(x, y, mainc, combc, style)
}

func (d *TcellScreenDriver) Show()  { d.screen.Show() }
func (d *TcellScreenDriver) Clear() { d.screen.Clear() }
