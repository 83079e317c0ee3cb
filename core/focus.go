// Copyright © 2025 Tileforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/focus.go
// Summary: The focus engine — SetFocus, directional navigation, tab cycling and workspace switching (§4.5).

package core

// SetFocus switches to id's owning workspace (if different from the
// current one) and focuses it. If id sits under a Tabbed ancestor chain,
// each such ancestor's active tab is updated to the path taken.
func (h *Hub) SetFocus(id WindowID) {
	assertf(h.windows.has(id), "window %s does not exist", id)
	wsID := h.workspaceOf(WindowChild(id))
	ws := h.workspacePtr(wsID)
	h.current = wsID
	h.applyFocus(ws, WindowFocus(id))
}

// SetFloatFocus focuses the given float window, switching workspaces if
// needed. The tree focus the workspace held before entering float focus is
// remembered so it can be restored once a directional or tab op runs.
func (h *Hub) SetFloatFocus(id FloatID) {
	assertf(h.floats.has(id), "float window %s does not exist", id)
	f := h.floats.get(id)
	ws := h.workspacePtr(f.workspace)
	h.current = f.workspace
	if !ws.focused.IsFloat() {
		ws.preFloatFocus = ws.focused
	}
	ws.focused = FloatFocus(id)
}

// treeFocusBase returns the workspace's tree-side focus: its current focus
// if that is already a Window/Container/None, or the focus remembered from
// before float focus took over.
func (h *Hub) treeFocusBase(ws *Workspace) Focus {
	if ws.focused.IsFloat() {
		return ws.preFloatFocus
	}
	return ws.focused
}

// applyFocus commits f as ws's focus and, for a Window or Container target,
// walks its ancestor chain updating each container's last-focused child
// (and a Tabbed ancestor's active tab in lockstep).
func (h *Hub) applyFocus(ws *Workspace, f Focus) {
	ws.focused = f
	if !f.IsWindow() && !f.IsContainer() {
		return
	}
	current := f.child()
	p := h.parentOf(current)
	for p.IsContainer() {
		c := h.containers.get(p.Container)
		c.setLastFocused(current)
		current = ContainerChild(p.Container)
		p = c.parent
	}
}

// FocusLeft moves focus to the nearest Horizontal sibling before the
// current focus, descending into its last-focused descendant.
func (h *Hub) FocusLeft() { h.focusDirectional(DirLeft) }

// FocusRight is FocusLeft's mirror.
func (h *Hub) FocusRight() { h.focusDirectional(DirRight) }

// FocusUp moves focus to the nearest Vertical sibling above the current focus.
func (h *Hub) FocusUp() { h.focusDirectional(DirUp) }

// FocusDown is FocusUp's mirror.
func (h *Hub) FocusDown() { h.focusDirectional(DirDown) }

func (h *Hub) focusDirectional(dir NavDirection) {
	ws := h.currentWorkspace()
	base := h.treeFocusBase(ws)
	if base.IsNone() {
		return
	}

	current := base.child()
	p := h.parentOf(current)
	for p.IsContainer() {
		c := h.containers.get(p.Container)
		if c.layout.Kind == LayoutSplit && c.layout.Direction == dir.axis() {
			idx := c.indexOf(current)
			delta := -1
			if dir.forward() {
				delta = 1
			}
			target := idx + delta
			if target >= 0 && target < len(c.children) {
				leaf := h.lastFocusedLeaf(c.children[target])
				h.applyFocus(ws, WindowFocus(leaf.Window))
				return
			}
		}
		current = ContainerChild(p.Container)
		p = c.parent
	}
	// No ancestor agrees with this axis, or every one was at its edge: the
	// focus does not move (§4.5 boundary rule).
}

// FocusParent moves focus to the parent container of the current focus, or
// is a no-op if the current focus is already the root container or there is
// nothing to focus.
func (h *Hub) FocusParent() {
	ws := h.currentWorkspace()
	base := h.treeFocusBase(ws)

	switch {
	case base.IsContainer():
		c := h.containers.get(base.Container)
		if c.parent.IsContainer() {
			h.applyFocus(ws, ContainerFocus(c.parent.Container))
		}
	case base.IsWindow():
		w := h.windows.get(base.Window)
		if w.parent.IsContainer() {
			h.applyFocus(ws, ContainerFocus(w.parent.Container))
		}
	}
}

// FocusNextTab cycles the nearest Tabbed ancestor's active tab forward,
// wrapping, and descends to the new tab's last-focused leaf.
func (h *Hub) FocusNextTab() { h.focusTab(1) }

// FocusPrevTab is FocusNextTab's mirror.
func (h *Hub) FocusPrevTab() { h.focusTab(-1) }

func (h *Hub) focusTab(delta int) {
	ws := h.currentWorkspace()
	base := h.treeFocusBase(ws)
	if base.IsNone() {
		return
	}

	var tabbed *Container
	if base.IsContainer() {
		if c := h.containers.get(base.Container); c.layout.Kind == LayoutTabbed {
			tabbed = c
		}
	}
	if tabbed == nil {
		child := base.child()
		p := h.parentOf(child)
		for p.IsContainer() {
			c := h.containers.get(p.Container)
			if c.layout.Kind == LayoutTabbed {
				tabbed = c
				break
			}
			child = ContainerChild(p.Container)
			p = c.parent
		}
	}
	if tabbed == nil {
		return
	}

	n := len(tabbed.children)
	tabbed.layout.ActiveTab = ((tabbed.layout.ActiveTab+delta)%n + n) % n
	target := tabbed.children[tabbed.layout.ActiveTab]
	tabbed.setLastFocused(target)

	leaf := h.lastFocusedLeaf(target)
	h.applyFocus(ws, WindowFocus(leaf.Window))
}

// FocusWorkspace switches the active workspace to name, creating it first
// if no workspace currently carries that name (§4.7).
func (h *Hub) FocusWorkspace(name string) {
	for _, id := range h.workspaceOrder {
		if h.workspacePtr(id).name == name {
			h.current = id
			return
		}
	}
	id := h.createWorkspace()
	h.workspacePtr(id).name = name
	h.current = id
}
