// Copyright © 2025 Tileforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/focus_test.go

package core

import "testing"

func TestFocusLeftRightWalksHorizontalSplit(t *testing.T) {
	h := New(Rect{W: 150, H: 30}, 0)
	w0 := h.InsertTiling()
	w1 := h.InsertTiling()
	w2 := h.InsertTiling()

	ws := h.Workspace(h.CurrentWorkspace())
	if ws.Focused().Window != w2 {
		t.Fatalf("expected focus on the last-inserted window, got %s", ws.Focused())
	}

	h.FocusLeft()
	ws = h.Workspace(h.CurrentWorkspace())
	if ws.Focused().Window != w1 {
		t.Fatalf("focus_left: want %s, got %s", w1, ws.Focused())
	}

	h.FocusLeft()
	ws = h.Workspace(h.CurrentWorkspace())
	if ws.Focused().Window != w0 {
		t.Fatalf("focus_left: want %s, got %s", w0, ws.Focused())
	}

	// Already at the leftmost edge: no movement.
	h.FocusLeft()
	ws = h.Workspace(h.CurrentWorkspace())
	if ws.Focused().Window != w0 {
		t.Fatalf("focus_left at boundary should not move, got %s", ws.Focused())
	}

	h.FocusRight()
	ws = h.Workspace(h.CurrentWorkspace())
	if ws.Focused().Window != w1 {
		t.Fatalf("focus_right: want %s, got %s", w1, ws.Focused())
	}
}

func TestFocusUpDownIgnoresHorizontalSplit(t *testing.T) {
	h := New(Rect{W: 150, H: 30}, 0)
	h.InsertTiling()
	h.InsertTiling()

	ws := h.Workspace(h.CurrentWorkspace())
	before := ws.Focused()

	h.FocusUp()
	ws = h.Workspace(h.CurrentWorkspace())
	if ws.Focused() != before {
		t.Fatalf("focus_up across a Horizontal split should not move focus, got %s", ws.Focused())
	}
}

func TestFocusDirectionalClimbsPastNonMatchingAncestor(t *testing.T) {
	// Outer Vertical[ a, innerHorizontal[b, c] ]; focus on c, focus_up should
	// climb past the inner Horizontal container (no Vertical sibling there)
	// up to the outer Vertical split, landing on a.
	h := New(Rect{W: 100, H: 100}, 0)
	a := h.InsertTiling()
	h.ToggleSpawnMode() // -> Vertical
	h.InsertTiling()    // b, wraps root into Vertical[a, b]
	h.ToggleSpawnMode() // -> Tabbed
	h.ToggleSpawnMode() // -> Horizontal (cycled back round)
	h.InsertTiling()    // c, inserted relative to b -> wraps b into Horizontal[b, c]

	h.FocusUp()
	ws := h.Workspace(h.CurrentWorkspace())
	if ws.Focused().Window != a {
		t.Fatalf("focus_up should climb to the outer Vertical split and land on %s, got %s", a, ws.Focused())
	}
}

func TestFocusParentThenChildRestoresLastFocused(t *testing.T) {
	// Horizontal[w0, Vertical[w1, w2]] with focus on w2.
	h := New(Rect{W: 150, H: 30}, 0)
	h.InsertTiling()
	h.InsertTiling()
	h.ToggleSpawnMode() // -> Vertical
	w2 := h.InsertTiling()

	h.FocusParent() // the inner Vertical container
	ws := h.Workspace(h.CurrentWorkspace())
	if !ws.Focused().IsContainer() {
		t.Fatalf("expected container focus after focus_parent, got %s", ws.Focused())
	}

	h.FocusLeft()  // off the container onto w0
	h.FocusRight() // back into the container: resolves via its last-focused child (w2)
	ws = h.Workspace(h.CurrentWorkspace())
	if !ws.Focused().IsWindow() || ws.Focused().Window != w2 {
		t.Fatalf("expected window focus to resume on %s, got %s", w2, ws.Focused())
	}
}

func TestFocusNextPrevTabCyclesAndWraps(t *testing.T) {
	h := New(Rect{W: 100, H: 30}, 1)
	w0 := h.InsertTiling()
	h.ToggleSpawnMode()
	h.ToggleSpawnMode() // -> Tabbed
	w1 := h.InsertTiling()
	w2 := h.InsertTiling()
	_ = w0

	ws := h.Workspace(h.CurrentWorkspace())
	if ws.Focused().Window != w2 {
		t.Fatalf("expected focus on the most recently inserted tab, got %s", ws.Focused())
	}

	h.FocusNextTab() // wraps from tab 2 to tab 0
	ws = h.Workspace(h.CurrentWorkspace())
	if ws.Focused().Window != w0 {
		t.Fatalf("focus_next_tab should wrap to the first tab, got %s", ws.Focused())
	}

	h.FocusPrevTab() // wraps back to tab 2
	ws = h.Workspace(h.CurrentWorkspace())
	if ws.Focused().Window != w2 {
		t.Fatalf("focus_prev_tab should wrap to the last tab, got %s", ws.Focused())
	}

	h.FocusPrevTab()
	ws = h.Workspace(h.CurrentWorkspace())
	if ws.Focused().Window != w1 {
		t.Fatalf("focus_prev_tab: want %s, got %s", w1, ws.Focused())
	}
}

func TestFloatFocusRestoresTreeFocusOnDirectionalNav(t *testing.T) {
	h := New(Rect{W: 100, H: 30}, 0)
	w0 := h.InsertTiling()
	h.InsertTiling()
	h.FocusLeft() // focus back on w0
	ws := h.Workspace(h.CurrentWorkspace())
	if ws.Focused().Window != w0 {
		t.Fatalf("setup: expected focus on %s, got %s", w0, ws.Focused())
	}

	fid := h.InsertFloat(Rect{X: 10, Y: 10, W: 20, H: 10})
	h.SetFloatFocus(fid)
	ws = h.Workspace(h.CurrentWorkspace())
	if !ws.Focused().IsFloat() {
		t.Fatalf("expected float focus, got %s", ws.Focused())
	}

	h.FocusRight()
	ws = h.Workspace(h.CurrentWorkspace())
	if !ws.Focused().IsWindow() {
		t.Fatalf("expected tree focus restored and moved, got %s", ws.Focused())
	}
}

func TestFocusWorkspaceCreatesOnFirstUse(t *testing.T) {
	h := New(Rect{W: 80, H: 24}, 0)
	h.FocusWorkspace("editor")
	if h.Workspace(h.CurrentWorkspace()).Name() != "editor" {
		t.Fatalf("expected new workspace named editor, got %s", h.Workspace(h.CurrentWorkspace()).Name())
	}

	first := h.CurrentWorkspace()
	h.FocusWorkspace("0")
	h.FocusWorkspace("editor")
	if h.CurrentWorkspace() != first {
		t.Fatalf("expected re-focusing editor to return to the existing workspace, got a new one")
	}
}
