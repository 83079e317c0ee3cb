// Copyright © 2025 Tileforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/geometry.go
// Summary: The geometry pass computing screen-space rects top-down from a workspace root (§4.6).

package core

// layoutWorkspace recomputes every Window and Container rect in ws, top
// down from the Hub's screen rect. Floating windows are untouched (I7).
func (h *Hub) layoutWorkspace(ws *Workspace) {
	root, ok := ws.Root()
	if !ok {
		return
	}
	h.layoutChild(root, h.screen)
}

// layoutChild assigns rect to child. A Window is inset by the border on
// all sides; a Container keeps rect as its own bounds and divides it among
// its children per its layout mode.
func (h *Hub) layoutChild(child Child, rect Rect) {
	if child.IsWindow() {
		w := h.windows.get(child.Window)
		w.rect = rect.inset(h.border)
		return
	}

	c := h.containers.get(child.Container)
	c.rect = rect
	n := len(c.children)
	if n == 0 {
		return
	}

	if c.layout.Kind == LayoutTabbed {
		header := 2 * h.border
		inner := Rect{X: rect.X, Y: rect.Y + header, W: rect.W, H: rect.H - header}
		for _, ch := range c.children {
			h.layoutChild(ch, inner)
		}
		return
	}

	if c.layout.Direction == Horizontal {
		cw := rect.W / float64(n)
		for i, ch := range c.children {
			h.layoutChild(ch, Rect{X: rect.X + float64(i)*cw, Y: rect.Y, W: cw, H: rect.H})
		}
		return
	}

	ch2 := rect.H / float64(n)
	for i, ch := range c.children {
		h.layoutChild(ch, Rect{X: rect.X, Y: rect.Y + float64(i)*ch2, W: rect.W, H: ch2})
	}
}
