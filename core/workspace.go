// Copyright © 2025 Tileforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/workspace.go
// Summary: The Workspace entity: one tiling tree, its focus and its floats.

package core

// Workspace is the top of one tiling tree plus its independent floating
// windows (I7). A workspace is never garbage-collected: deleting its last
// window leaves an empty, still-addressable workspace with root == nil.
type Workspace struct {
	id   WorkspaceID
	name string
	root *Child

	focused Focus
	// preFloatFocus is the tree focus to restore once float focus clears.
	preFloatFocus Focus

	floats []FloatID
}

// ID returns the workspace's stable identifier.
func (w Workspace) ID() WorkspaceID { return w.id }

// Name returns the workspace's human-readable name.
func (w Workspace) Name() string { return w.name }

// Root returns the workspace's root child and whether one is set.
func (w Workspace) Root() (Child, bool) {
	if w.root == nil {
		return Child{}, false
	}
	return *w.root, true
}

// Focused returns the workspace's current focus.
func (w Workspace) Focused() Focus { return w.focused }

// Floats returns the ids of this workspace's floating windows in creation order.
func (w Workspace) Floats() []FloatID { return w.floats }

func (w *Workspace) removeFloat(id FloatID) {
	for i, f := range w.floats {
		if f == id {
			w.floats = append(w.floats[:i], w.floats[i+1:]...)
			return
		}
	}
}
