// Copyright © 2025 Tileforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/insert.go
// Summary: InsertWindow/InsertTiling/InsertFloat — the mutation engine's insert path (§4.2).

package core

// InsertTiling inserts a new tiling window next to the current focus,
// following the active spawn-mode, and focuses it.
func (h *Hub) InsertTiling() WindowID {
	ws := h.currentWorkspace()
	if h.autoTile {
		h.applyAutoTile(ws)
	}
	id := h.insert(ws)
	h.layoutWorkspace(ws)
	return id
}

// InsertWindow is InsertTiling under another name; the two are the same
// operation (see §6 of the design).
func (h *Hub) InsertWindow() WindowID {
	return h.InsertTiling()
}

// InsertFloat adds a floating window at rect to the current workspace,
// independent of the tiling tree (I7), and returns its id.
func (h *Hub) InsertFloat(rect Rect) FloatID {
	ws := h.currentWorkspace()
	id := h.floats.insert(FloatWindow{workspace: ws.id, rect: rect})
	f := h.floats.get(id)
	f.id = id
	ws.floats = append(ws.floats, id)
	return id
}

// applyAutoTile recomputes the spawn-mode from the effective insertion
// parent's aspect ratio (§4.1). A current Tabbed spawn-mode is left alone:
// auto-tile never turns Tabbed off. A square rect keeps the current mode.
func (h *Hub) applyAutoTile(ws *Workspace) {
	if h.spawnMode == SpawnTabbed {
		return
	}
	rect := h.effectiveInsertionRect(ws)
	switch {
	case rect.W > rect.H:
		h.spawnMode = SpawnHorizontal
	case rect.H > rect.W:
		h.spawnMode = SpawnVertical
	}
}

// effectiveInsertionRect returns the rect of the container that would
// receive the next insert, for auto-tile's aspect-ratio decision.
func (h *Hub) effectiveInsertionRect(ws *Workspace) Rect {
	switch {
	case ws.focused.IsWindow() && h.windows.has(ws.focused.Window):
		w := h.windows.get(ws.focused.Window)
		if w.parent.IsContainer() {
			return h.containers.get(w.parent.Container).rect
		}
		return h.screen
	case ws.focused.IsContainer() && h.containers.has(ws.focused.Container):
		return h.containers.get(ws.focused.Container).rect
	default:
		return h.screen
	}
}

// insert places a new window into ws per §4.2 and returns its id.
func (h *Hub) insert(ws *Workspace) WindowID {
	id := h.windows.insert(Window{})
	w := h.windows.get(id)
	w.id = id

	if _, hasRoot := ws.Root(); !hasRoot {
		child := WindowChild(id)
		ws.root = &child
		w.parent = WorkspaceParent(ws.id)
		h.applyFocus(ws, WindowFocus(id))
		return id
	}

	switch {
	case ws.focused.IsWindow() && h.windows.has(ws.focused.Window):
		h.insertRelativeToWindow(ws, ws.focused.Window, id)
	case ws.focused.IsContainer() && h.containers.has(ws.focused.Container):
		h.insertRelativeToContainer(ws, ws.focused.Container, id)
	default:
		h.wrapRoot(ws, id)
	}

	h.applyFocus(ws, WindowFocus(id))
	return id
}

// insertRelativeToWindow implements §4.2 step 2's three cases when the
// focused node is a Window.
func (h *Hub) insertRelativeToWindow(ws *Workspace, anchor WindowID, newWin WindowID) {
	w := h.windows.get(anchor)
	p := w.parent
	anchorChild := WindowChild(anchor)
	newChild := WindowChild(newWin)

	if p.IsWorkspace() {
		h.wrapRoot(ws, newWin)
		return
	}

	parentContainer := h.containers.get(p.Container)
	if parentContainer.layout.matchesSpawnMode(h.spawnMode) {
		h.insertChildAfter(p.Container, anchorChild, newChild)
		parentContainer.setLastFocused(newChild)
		h.settle(p.Container)
		return
	}

	if gp := parentContainer.parent; gp.IsContainer() {
		gpContainer := h.containers.get(gp.Container)
		if gpContainer.layout.matchesSpawnMode(h.spawnMode) {
			h.insertChildAfter(gp.Container, ContainerChild(p.Container), newChild)
			gpContainer.setLastFocused(newChild)
			h.settle(gp.Container)
			return
		}
	}

	h.wrapChild(p, anchorChild, newChild)
}

// insertRelativeToContainer implements §4.2 step 2's Container case.
func (h *Hub) insertRelativeToContainer(ws *Workspace, anchor ContainerID, newWin WindowID) {
	c := h.containers.get(anchor)
	newChild := WindowChild(newWin)

	if c.layout.matchesSpawnMode(h.spawnMode) {
		h.appendChild(anchor, newChild)
		c.setLastFocused(newChild)
		h.settle(anchor)
		return
	}

	p := c.parent
	if p.IsContainer() {
		pc := h.containers.get(p.Container)
		if pc.layout.matchesSpawnMode(h.spawnMode) {
			h.insertChildAfter(p.Container, ContainerChild(anchor), newChild)
			pc.setLastFocused(newChild)
			h.settle(p.Container)
			return
		}
	}

	h.wrapChild(p, ContainerChild(anchor), newChild)
}

// wrapRoot wraps the workspace's root child per §4.2's wrap case.
func (h *Hub) wrapRoot(ws *Workspace, newWin WindowID) {
	root, hasRoot := ws.Root()
	assertf(hasRoot, "wrapRoot called on empty workspace %s", ws.id)
	h.wrapChild(WorkspaceParent(ws.id), root, WindowChild(newWin))
}

// wrapChild replaces oldChild in parent with a new Container of the
// current spawn-mode's layout, containing oldChild then newChild.
func (h *Hub) wrapChild(parent Parent, oldChild Child, newChild Child) ContainerID {
	cid := h.containers.insert(Container{
		parent:   parent,
		layout:   h.spawnMode.layout(),
		children: []Child{oldChild, newChild},
	})
	c := h.containers.get(cid)
	c.id = cid
	h.setParent(oldChild, ContainerParent(cid))
	h.setParent(newChild, ContainerParent(cid))
	c.setLastFocused(newChild)

	h.replaceChildInParent(parent, oldChild, ContainerChild(cid))
	h.settle(cid)
	return cid
}
