// Copyright © 2025 Tileforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/hub.go
// Summary: The Hub facade: arenas, global policy state, and the read surface.
// Usage: Construct with New, drive with the intent methods in insert.go,
//        delete.go, toggle.go and focus.go; read back with the accessors below.

package core

import "strconv"

// Hub owns every arena and is the single facade through which all public
// operations flow. A Hub is not safe for concurrent use: the embedder must
// serialize calls (see §5 of the design).
type Hub struct {
	screen Rect
	border float64

	windows    arena[WindowID, Window]
	containers arena[ContainerID, Container]
	floats     arena[FloatID, FloatWindow]

	workspaces     arena[WorkspaceID, Workspace]
	workspaceOrder []WorkspaceID
	current        WorkspaceID

	spawnMode SpawnMode
	autoTile  bool
}

// New returns a fresh Hub with one workspace (id 0, name "0"), no root,
// focus None, default spawn-mode Horizontal and auto-tile disabled.
func New(screen Rect, border float64) *Hub {
	h := &Hub{
		screen:     screen,
		border:     border,
		windows:    newArena[WindowID, Window](),
		containers: newArena[ContainerID, Container](),
		floats:     newArena[FloatID, FloatWindow](),
		workspaces: newArena[WorkspaceID, Workspace](),
		spawnMode:  SpawnHorizontal,
	}
	id := h.createWorkspace()
	h.current = id
	return h
}

// SetAutoTile turns the auto-tile policy on or off (§4.1). It takes effect
// from the next insert onward.
func (h *Hub) SetAutoTile(enabled bool) { h.autoTile = enabled }

// AutoTile reports whether auto-tile is currently enabled.
func (h *Hub) AutoTile() bool { return h.autoTile }

// SpawnMode returns the Hub's current global spawn-mode.
func (h *Hub) SpawnMode() SpawnMode { return h.spawnMode }

// SetSpawnMode sets the Hub's global spawn-mode directly, bypassing the
// toggle cycle. Used to seed a Hub from saved or configured policy.
func (h *Hub) SetSpawnMode(mode SpawnMode) { h.spawnMode = mode }

// Screen returns the Hub's screen rect.
func (h *Hub) Screen() Rect { return h.screen }

// SetScreen updates the Hub's screen rect and relays out every workspace
// against it (e.g. on a terminal resize).
func (h *Hub) SetScreen(rect Rect) {
	h.screen = rect
	for _, id := range h.workspaceOrder {
		h.layoutWorkspace(h.workspacePtr(id))
	}
}

// Border returns the Hub's uniform border width.
func (h *Hub) Border() float64 { return h.border }

// CurrentWorkspace returns the id of the active workspace.
func (h *Hub) CurrentWorkspace() WorkspaceID { return h.current }

// Workspace returns the workspace for id. Panics if id does not exist.
func (h *Hub) Workspace(id WorkspaceID) Workspace {
	w := h.workspaces.get(id)
	assertf(w != nil, "workspace %s does not exist", id)
	return *w
}

// Workspaces returns every workspace id in creation order.
func (h *Hub) Workspaces() []WorkspaceID {
	out := make([]WorkspaceID, len(h.workspaceOrder))
	copy(out, h.workspaceOrder)
	return out
}

// Window returns the window for id. Panics if id does not exist.
func (h *Hub) Window(id WindowID) Window {
	w := h.windows.get(id)
	assertf(w != nil, "window %s does not exist", id)
	return *w
}

// Container returns the container for id. Panics if id does not exist.
func (h *Hub) Container(id ContainerID) Container {
	c := h.containers.get(id)
	assertf(c != nil, "container %s does not exist", id)
	return *c
}

// Float returns the float window for id. Panics if id does not exist.
func (h *Hub) Float(id FloatID) FloatWindow {
	f := h.floats.get(id)
	assertf(f != nil, "float window %s does not exist", id)
	return *f
}

func (h *Hub) createWorkspace() WorkspaceID {
	id := h.workspaces.next
	ws := Workspace{id: id, name: strconv.Itoa(int(id)), focused: NoFocus}
	got := h.workspaces.insert(ws)
	h.workspaceOrder = append(h.workspaceOrder, got)
	return got
}

func (h *Hub) workspacePtr(id WorkspaceID) *Workspace {
	w := h.workspaces.get(id)
	assertf(w != nil, "workspace %s does not exist", id)
	return w
}

func (h *Hub) currentWorkspace() *Workspace {
	return h.workspacePtr(h.current)
}
