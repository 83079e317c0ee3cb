// Copyright © 2025 Tileforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/toggle_test.go

package core

import "testing"

func TestToggleSpawnModeCyclesThroughTabbed(t *testing.T) {
	h := New(Rect{W: 100, H: 30}, 0)
	if h.SpawnMode() != SpawnHorizontal {
		t.Fatalf("expected default spawn-mode Horizontal, got %v", h.SpawnMode())
	}
	h.ToggleSpawnMode()
	if h.SpawnMode() != SpawnVertical {
		t.Fatalf("want Vertical, got %v", h.SpawnMode())
	}
	h.ToggleSpawnMode()
	if h.SpawnMode() != SpawnTabbed {
		t.Fatalf("want Tabbed, got %v", h.SpawnMode())
	}
	h.ToggleSpawnMode()
	if h.SpawnMode() != SpawnHorizontal {
		t.Fatalf("want cycle back to Horizontal, got %v", h.SpawnMode())
	}
}

func TestToggleSpawnDirectionLeavesTabbedAlone(t *testing.T) {
	h := New(Rect{W: 100, H: 30}, 0)
	h.ToggleSpawnMode()
	h.ToggleSpawnMode() // -> Tabbed
	h.ToggleSpawnDirection()
	if h.SpawnMode() != SpawnTabbed {
		t.Fatalf("expected Tabbed spawn-mode untouched by ToggleSpawnDirection, got %v", h.SpawnMode())
	}
}

func TestToggleDirectionFlipsFocusedContainer(t *testing.T) {
	h := New(Rect{W: 100, H: 30}, 0)
	h.InsertTiling()
	h.InsertTiling()

	ws := h.Workspace(h.CurrentWorkspace())
	root, _ := ws.Root()
	if h.Container(root.Container).Layout().Direction != Horizontal {
		t.Fatalf("setup: expected Horizontal root")
	}

	h.ToggleDirection()

	c := h.Container(root.Container)
	if c.Layout().Direction != Vertical {
		t.Fatalf("expected direction flipped to Vertical, got %s", c.Layout().Direction)
	}
}

func TestToggleDirectionIsNoopOnTabbedContainer(t *testing.T) {
	h := New(Rect{W: 100, H: 30}, 1)
	h.InsertTiling()
	h.ToggleSpawnMode()
	h.ToggleSpawnMode() // -> Tabbed
	h.InsertTiling()

	ws := h.Workspace(h.CurrentWorkspace())
	root, _ := ws.Root()
	before := h.Container(root.Container).Layout()

	h.ToggleDirection()

	after := h.Container(root.Container).Layout()
	if after != before {
		t.Fatalf("expected no change on a Tabbed container, before=%s after=%s", layoutString(before), layoutString(after))
	}
}

func TestToggleContainerLayoutSplitToTabbedPreservesFocusAsActiveTab(t *testing.T) {
	h := New(Rect{W: 100, H: 30}, 0)
	h.InsertTiling()
	w1 := h.InsertTiling()
	_ = w1
	h.FocusLeft() // back to w0... then right again so last-focused is w1
	h.FocusRight()

	h.FocusParent()
	h.ToggleContainerLayout()

	ws := h.Workspace(h.CurrentWorkspace())
	root, _ := ws.Root()
	c := h.Container(root.Container)
	if !c.Layout().IsTabbed() {
		t.Fatalf("expected Tabbed after toggle, got %s", layoutString(c.Layout()))
	}
	if c.Layout().ActiveTab != 1 {
		t.Fatalf("expected active tab to track the last-focused child (1), got %d", c.Layout().ActiveTab)
	}
}

func TestToggleContainerLayoutTabbedToSplitAvoidsParentDirection(t *testing.T) {
	// Outer Vertical[w0, inner], inner starts Tabbed; toggling inner back to
	// Split must avoid colliding with the Vertical outer direction.
	h := New(Rect{W: 100, H: 100}, 0)
	h.InsertTiling()
	h.ToggleSpawnMode() // -> Vertical
	h.InsertTiling()    // wraps root into Vertical[w0, w1]
	h.ToggleSpawnMode() // -> Tabbed
	h.InsertTiling()    // w1's container (the Vertical's 2nd slot) becomes Tabbed[w1, w2]

	ws := h.Workspace(h.CurrentWorkspace())
	root, _ := ws.Root()
	outer := h.Container(root.Container)
	var innerID ContainerID
	var found bool
	for _, ch := range outer.Children() {
		if ch.IsContainer() {
			innerID = ch.Container
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an inner Tabbed container among the outer's children")
	}

	h.SetFocus(h.Container(innerID).Children()[0].Window)
	h.FocusParent()
	h.ToggleContainerLayout() // Tabbed -> Split

	inner := h.Container(innerID)
	if inner.Layout().Kind != LayoutSplit {
		t.Fatalf("expected Split after toggling off Tabbed, got %s", layoutString(inner.Layout()))
	}
	if inner.Layout().Direction != Horizontal {
		t.Fatalf("expected the picked direction to avoid the Vertical parent, got %s", inner.Layout().Direction)
	}
}
