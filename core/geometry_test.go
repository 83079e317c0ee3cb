// Copyright © 2025 Tileforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/geometry_test.go

package core

import "testing"

func TestWindowRectIsInsetByBorder(t *testing.T) {
	h := New(Rect{W: 100, H: 40}, 2)
	id := h.InsertTiling()

	w := h.Window(id)
	want := Rect{X: 2, Y: 2, W: 96, H: 36}
	if w.Rect() != want {
		t.Fatalf("rect = %s, want %s", w.Rect(), want)
	}
}

func TestVerticalSplitDividesHeight(t *testing.T) {
	h := New(Rect{W: 40, H: 120}, 0)
	h.ToggleSpawnMode() // -> Vertical
	h.InsertTiling()
	h.InsertTiling()
	h.InsertTiling()

	ws := h.Workspace(h.CurrentWorkspace())
	root, _ := ws.Root()
	c := h.Container(root.Container)
	for i, ch := range c.Children() {
		w := h.Window(ch.Window)
		wantY := float64(i) * 40
		if w.Rect().Y != wantY || w.Rect().H != 40 || w.Rect().X != 0 || w.Rect().W != 40 {
			t.Errorf("child %d rect = %s, want y=%.0f h=40 x=0 w=40", i, w.Rect(), wantY)
		}
	}
}

func TestChildRectsPartitionParentExactly(t *testing.T) {
	h := New(Rect{W: 97, H: 53}, 0) // deliberately not evenly divisible
	h.InsertTiling()
	h.InsertTiling()
	h.InsertTiling()

	ws := h.Workspace(h.CurrentWorkspace())
	root, _ := ws.Root()
	c := h.Container(root.Container)
	var sumW float64
	for _, ch := range c.Children() {
		sumW += h.Window(ch.Window).Rect().W
	}
	if sumW != 97 {
		t.Fatalf("children widths sum to %.4f, want 97 (exact partition)", sumW)
	}
}

func TestTabbedChildrenShareInnerRectBelowHeader(t *testing.T) {
	h := New(Rect{W: 80, H: 24}, 1)
	h.InsertTiling()
	h.ToggleSpawnMode()
	h.ToggleSpawnMode() // -> Tabbed
	h.InsertTiling()
	h.InsertTiling()

	ws := h.Workspace(h.CurrentWorkspace())
	root, _ := ws.Root()
	c := h.Container(root.Container)
	if !c.Layout().IsTabbed() {
		t.Fatalf("expected a Tabbed root, got %s", layoutString(c.Layout()))
	}
	var first Rect
	for i, ch := range c.Children() {
		w := h.Window(ch.Window)
		if i == 0 {
			first = w.Rect()
			continue
		}
		if w.Rect() != first {
			t.Fatalf("tab %d rect %s differs from tab 0's %s", i, w.Rect(), first)
		}
	}
	// header strip is 2*border = 2; window rect is then inset by border again.
	wantY := 0.0 + 2 + 1
	if first.Y != wantY {
		t.Fatalf("first tab's rect.Y = %.0f, want %.0f (header + border inset)", first.Y, wantY)
	}
}

func TestSetScreenRelayoutsEveryWorkspace(t *testing.T) {
	h := New(Rect{W: 100, H: 30}, 0)
	id := h.InsertTiling()
	h.InsertTiling()

	h.SetScreen(Rect{W: 200, H: 60})

	ws := h.Workspace(h.CurrentWorkspace())
	root, _ := ws.Root()
	c := h.Container(root.Container)
	if c.Rect().W != 200 || c.Rect().H != 60 {
		t.Fatalf("container rect after resize = %s, want w=200 h=60", c.Rect())
	}
	if h.Window(id).Rect().W != 100 {
		t.Fatalf("window width after resize = %.0f, want 100 (half of 200)", h.Window(id).Rect().W)
	}
}
