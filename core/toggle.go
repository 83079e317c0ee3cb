// Copyright © 2025 Tileforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/toggle.go
// Summary: The spawn-mode and per-container layout toggles (§4.1, §4.4).

package core

// ToggleSpawnMode cycles the Hub's global spawn-mode Horizontal -> Vertical
// -> Tabbed -> Horizontal.
func (h *Hub) ToggleSpawnMode() {
	h.spawnMode = h.spawnMode.toggleSpawnMode()
}

// ToggleSpawnDirection flips the spawn-mode Horizontal<->Vertical, leaving
// a Tabbed spawn-mode untouched.
func (h *Hub) ToggleSpawnDirection() {
	h.spawnMode = h.spawnMode.toggleSpawnDirection()
}

// ToggleNewWindowDirection is ToggleSpawnDirection under the name used by
// the external interface table (§6).
func (h *Hub) ToggleNewWindowDirection() {
	h.ToggleSpawnDirection()
}

// ToggleDirection flips the focused container's split direction
// (Horizontal<->Vertical); a no-op on a Tabbed container or when nothing is
// focused on the tree.
func (h *Hub) ToggleDirection() {
	ws := h.currentWorkspace()
	cid, ok := h.focusedContainerID(ws)
	if !ok {
		return
	}
	c := h.containers.get(cid)
	if c.layout.Kind != LayoutSplit {
		return
	}
	c.layout.Direction = c.layout.Direction.opposite()
	h.settle(cid)
	h.layoutWorkspace(ws)
}

// ToggleContainerLayout flips the focused container between Split and
// Tabbed. Leaving Tabbed discards the active tab and restores a Split
// direction that avoids matching the parent's or a direct child's
// direction.
func (h *Hub) ToggleContainerLayout() {
	ws := h.currentWorkspace()
	cid, ok := h.focusedContainerID(ws)
	if !ok {
		return
	}
	c := h.containers.get(cid)

	if c.layout.Kind == LayoutTabbed {
		c.layout = SplitLayout(h.pickSplitDirection(c))
	} else {
		activeTab := 0
		if c.hasFocused {
			if idx := c.indexOf(c.lastFocused); idx >= 0 {
				activeTab = idx
			}
		}
		c.layout = TabbedLayout(activeTab)
	}

	h.settle(cid)
	h.layoutWorkspace(ws)
}

// focusedContainerID returns the container the focus-sensitive toggles
// should act on: the current focus if it is already a Container, or the
// parent of the current focus if it is a Window with one.
func (h *Hub) focusedContainerID(ws *Workspace) (ContainerID, bool) {
	base := h.treeFocusBase(ws)
	switch {
	case base.IsContainer():
		return base.Container, true
	case base.IsWindow():
		w := h.windows.get(base.Window)
		if w.parent.IsContainer() {
			return w.parent.Container, true
		}
	}
	return 0, false
}

// pickSplitDirection chooses a Split direction for c that does not collide
// with its parent's direction or any direct child container's direction,
// preferring Horizontal.
func (h *Hub) pickSplitDirection(c *Container) SplitDirection {
	conflicts := func(d SplitDirection) bool {
		if c.parent.IsContainer() {
			p := h.containers.get(c.parent.Container)
			if p.layout.Kind == LayoutSplit && p.layout.Direction == d {
				return true
			}
		}
		for _, ch := range c.children {
			if !ch.IsContainer() {
				continue
			}
			cc := h.containers.get(ch.Container)
			if cc.layout.Kind == LayoutSplit && cc.layout.Direction == d {
				return true
			}
		}
		return false
	}
	if !conflicts(Horizontal) {
		return Horizontal
	}
	return Vertical
}
