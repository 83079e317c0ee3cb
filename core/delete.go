// Copyright © 2025 Tileforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/delete.go
// Summary: DeleteWindow — the mutation engine's delete path and its focus transfer (§4.3, §4.5).

package core

// DeleteWindow removes id from the tree, collapses any container it leaves
// behind to a single child, promotes that child into the grandparent's
// slot, and transfers focus per §4.5.
func (h *Hub) DeleteWindow(id WindowID) {
	assertf(h.windows.has(id), "window %s does not exist", id)
	w := h.windows.get(id)
	p := w.parent
	wChild := WindowChild(id)

	wsID := h.workspaceOf(wChild)
	ws := h.workspacePtr(wsID)
	defer h.layoutWorkspace(ws)

	focusWasOnW := ws.focused.Equal(WindowFocus(id))
	focusWasOnParent := p.IsContainer() && ws.focused.Equal(ContainerFocus(p.Container))

	if p.IsWorkspace() {
		ws.root = nil
		h.windows.remove(id)
		if focusWasOnW || focusWasOnParent {
			ws.focused = NoFocus
		}
		return
	}

	pid := p.Container
	pc := h.containers.get(pid)
	idx := pc.indexOf(wChild)
	assertf(idx >= 0, "window %s not found in its recorded parent %s", id, pid)

	var sibling *Child
	siblingIsBefore := false
	if idx > 0 {
		s := pc.children[idx-1]
		sibling = &s
		siblingIsBefore = true
	} else if idx < len(pc.children)-1 {
		s := pc.children[idx+1]
		sibling = &s
	}

	h.removeChildFromContainer(pid, wChild)
	h.windows.remove(id)

	switch len(pc.children) {
	case 0:
		h.removeEmptyContainer(pid)
		if focusWasOnW || focusWasOnParent {
			ws.focused = NoFocus
		}
	case 1:
		h.deleteCollapse(ws, pid, sibling, siblingIsBefore, focusWasOnW, focusWasOnParent)
	default:
		if focusWasOnW && sibling != nil {
			h.transferFocusToSibling(ws, *sibling, siblingIsBefore)
		} else if focusWasOnW {
			ws.focused = NoFocus
		}
	}
}

// deleteCollapse promotes pid's sole remaining child into pid's own parent
// slot (preserving pid's index), resolving any I3 direction conflict the
// same way settle's single-child collapse does, then resolves focus.
func (h *Hub) deleteCollapse(ws *Workspace, pid ContainerID, sibling *Child, siblingIsBefore bool, focusWasOnW, focusWasOnParent bool) {
	pc := h.containers.get(pid)
	sole := pc.children[0]
	parent := pc.parent

	if parent.IsContainer() {
		grandparent := h.containers.get(parent.Container)
		h.resolvePromotionConflict(grandparent, &sole)
	}

	h.replaceChildInParent(parent, ContainerChild(pid), sole)
	h.containers.remove(pid)

	if !focusWasOnW && !focusWasOnParent {
		return
	}

	if focusWasOnParent {
		// Focus was on the container that just vanished: it transfers to
		// whatever replaced it, without descending further (§4.5).
		h.applyFocus(ws, childToFocus(sole))
		return
	}

	// focusWasOnW: the sole survivor occupies the slot W used to share with
	// it; descend per the usual before/after rule.
	_ = sibling
	if siblingIsBefore {
		h.applyFocus(ws, WindowFocus(h.lastFocusedLeaf(sole).Window))
	} else {
		h.applyFocus(ws, WindowFocus(h.firstLeaf(sole).Window))
	}
}

// transferFocusToSibling focuses sibling's last-focused descendant (if it
// preceded the deleted window) or its first descendant (if it followed).
func (h *Hub) transferFocusToSibling(ws *Workspace, sibling Child, siblingIsBefore bool) {
	if siblingIsBefore {
		h.applyFocus(ws, WindowFocus(h.lastFocusedLeaf(sibling).Window))
	} else {
		h.applyFocus(ws, WindowFocus(h.firstLeaf(sibling).Window))
	}
}

// childToFocus converts a Child to the equivalent Focus value.
func childToFocus(c Child) Focus {
	if c.IsWindow() {
		return WindowFocus(c.Window)
	}
	return ContainerFocus(c.Container)
}
