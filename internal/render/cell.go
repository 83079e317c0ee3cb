// Copyright © 2025 Tileforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/render/cell.go
// Summary: Draws a core.Hub's current workspace onto a ScreenDriver — borders, windows and tab headers.

package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/tileforge/tileforge/core"
)

// CellRenderer draws one workspace's tiling tree to a terminal grid. It
// never mutates the Hub; core owns all layout math, CellRenderer only maps
// rects onto cells.
type CellRenderer struct {
	screen       ScreenDriver
	borderStyle  tcell.Style
	activeStyle  tcell.Style
	windowStyle  tcell.Style
	headerActive tcell.Style
}

// NewCellRenderer returns a renderer with the teacher-style default
// palette: plain borders, a highlighted active tab header.
func NewCellRenderer(screen ScreenDriver) *CellRenderer {
	return &CellRenderer{
		screen:       screen,
		borderStyle:  tcell.StyleDefault,
		activeStyle:  tcell.StyleDefault.Bold(true),
		windowStyle:  tcell.StyleDefault,
		headerActive: tcell.StyleDefault.Reverse(true),
	}
}

// Draw renders hub's current workspace, then floats on top, then shows the screen.
func (r *CellRenderer) Draw(hub *core.Hub) {
	r.screen.Clear()
	ws := hub.Workspace(hub.CurrentWorkspace())
	if root, ok := ws.Root(); ok {
		r.drawChild(hub, ws, root)
	}
	for _, fid := range ws.Floats() {
		r.drawFloat(hub.Float(fid))
	}
	r.screen.Show()
}

func (r *CellRenderer) drawChild(hub *core.Hub, ws core.Workspace, child core.Child) {
	if child.IsWindow() {
		r.drawWindow(hub.Window(child.Window), ws.Focused().IsWindow() && ws.Focused().Window == child.Window)
		return
	}
	c := hub.Container(child.Container)
	r.drawBorder(c.Rect())
	if c.Layout().IsTabbed() {
		r.drawTabHeader(hub, c)
	}
	for _, ch := range c.Children() {
		r.drawChild(hub, ws, ch)
	}
}

func (r *CellRenderer) drawWindow(w core.Window, active bool) {
	style := r.windowStyle
	if active {
		style = r.activeStyle
	}
	rect := w.Rect()
	r.drawBorder(rect)
	r.fill(core.Rect{X: rect.X + 1, Y: rect.Y + 1, W: rect.W - 2, H: rect.H - 2}, ' ', style)
}

func (r *CellRenderer) drawFloat(f core.FloatWindow) {
	r.drawBorder(f.Rect())
}

// drawTabHeader renders each child's label across the header strip,
// measuring label width with runewidth so wide glyphs don't overrun a cell.
func (r *CellRenderer) drawTabHeader(hub *core.Hub, c core.Container) {
	rect := c.Rect()
	x := int(rect.X) + 1
	y := int(rect.Y)
	for i, ch := range c.Children() {
		label := tabLabel(hub, ch)
		style := r.borderStyle
		if i == c.Layout().ActiveTab {
			style = r.headerActive
		}
		for _, ru := range label {
			r.screen.SetContent(x, y, ru, nil, style)
			x += runewidth.RuneWidth(ru)
		}
		x += 2
	}
}

func tabLabel(hub *core.Hub, c core.Child) string {
	if c.IsWindow() {
		return fmt.Sprintf(" %s ", c.Window)
	}
	return fmt.Sprintf(" %s ", c.Container)
}

func (r *CellRenderer) fill(rect core.Rect, ru rune, style tcell.Style) {
	for y := int(rect.Y); y < int(rect.Y+rect.H); y++ {
		for x := int(rect.X); x < int(rect.X+rect.W); x++ {
			r.screen.SetContent(x, y, ru, nil, style)
		}
	}
}

func (r *CellRenderer) drawBorder(rect core.Rect) {
	x0, y0 := int(rect.X), int(rect.Y)
	x1, y1 := int(rect.X+rect.W)-1, int(rect.Y+rect.H)-1
	for x := x0; x <= x1; x++ {
		r.screen.SetContent(x, y0, tcell.RuneHLine, nil, r.borderStyle)
		r.screen.SetContent(x, y1, tcell.RuneHLine, nil, r.borderStyle)
	}
	for y := y0; y <= y1; y++ {
		r.screen.SetContent(x0, y, tcell.RuneVLine, nil, r.borderStyle)
		r.screen.SetContent(x1, y, tcell.RuneVLine, nil, r.borderStyle)
	}
	r.screen.SetContent(x0, y0, tcell.RuneULCorner, nil, r.borderStyle)
	r.screen.SetContent(x1, y0, tcell.RuneURCorner, nil, r.borderStyle)
	r.screen.SetContent(x0, y1, tcell.RuneLLCorner, nil, r.borderStyle)
	r.screen.SetContent(x1, y1, tcell.RuneLRCorner, nil, r.borderStyle)
}
