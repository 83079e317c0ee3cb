// Copyright © 2025 Tileforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/tree.go
// Summary: Low-level tree plumbing shared by the mutation and focus engines.

package core

// parentOf returns the recorded parent of child.
func (h *Hub) parentOf(child Child) Parent {
	if child.IsWindow() {
		return h.windows.get(child.Window).parent
	}
	return h.containers.get(child.Container).parent
}

// setParent updates the recorded parent of child.
func (h *Hub) setParent(child Child, p Parent) {
	if child.IsWindow() {
		h.windows.get(child.Window).parent = p
		return
	}
	h.containers.get(child.Container).parent = p
}

// childrenOf returns the ordered children of a container parent, or the
// single root child of a workspace parent (nil slice if the workspace is empty).
func (h *Hub) childrenOf(p Parent) []Child {
	if p.IsContainer() {
		return h.containers.get(p.Container).children
	}
	ws := h.workspacePtr(p.Workspace)
	if ws.root == nil {
		return nil
	}
	return []Child{*ws.root}
}

// indexInParent returns child's index within its parent's child list, or -1
// if the parent is a workspace (root slot has no index) or child is missing.
func (h *Hub) indexInParent(p Parent, child Child) int {
	if p.IsWorkspace() {
		return -1
	}
	return h.containers.get(p.Container).indexOf(child)
}

// replaceChildInParent swaps oldChild for newChild wherever oldChild
// currently sits in p (container slot, or workspace root), preserving
// position, and updates newChild's recorded parent.
func (h *Hub) replaceChildInParent(p Parent, oldChild, newChild Child) {
	if p.IsWorkspace() {
		ws := h.workspacePtr(p.Workspace)
		ws.root = &newChild
	} else {
		c := h.containers.get(p.Container)
		idx := c.indexOf(oldChild)
		assertf(idx >= 0, "child %s not found in container %s", oldChild, p.Container)
		c.children[idx] = newChild
		if c.lastFocused.Equal(oldChild) {
			c.lastFocused = newChild
		}
	}
	h.setParent(newChild, p)
}

// removeChildFromContainer deletes child from container cid's child list.
func (h *Hub) removeChildFromContainer(cid ContainerID, child Child) {
	c := h.containers.get(cid)
	idx := c.indexOf(child)
	assertf(idx >= 0, "child %s not found in container %s", child, cid)
	c.children = append(c.children[:idx], c.children[idx+1:]...)
	if c.layout.Kind == LayoutTabbed && idx < c.layout.ActiveTab {
		c.layout.ActiveTab--
	}
	if c.layout.Kind == LayoutTabbed && c.layout.ActiveTab >= len(c.children) && len(c.children) > 0 {
		c.layout.ActiveTab = len(c.children) - 1
	}
}

// insertChildAfter inserts newChild into container cid's child list
// immediately after anchor (or at the end if anchor is absent).
func (h *Hub) insertChildAfter(cid ContainerID, anchor Child, newChild Child) {
	c := h.containers.get(cid)
	idx := c.indexOf(anchor)
	if idx < 0 {
		c.children = append(c.children, newChild)
	} else {
		c.children = append(c.children, Child{})
		copy(c.children[idx+2:], c.children[idx+1:])
		c.children[idx+1] = newChild
	}
	h.setParent(newChild, ContainerParent(cid))
}

// appendChild appends newChild to the end of container cid's child list.
func (h *Hub) appendChild(cid ContainerID, newChild Child) {
	c := h.containers.get(cid)
	c.children = append(c.children, newChild)
	h.setParent(newChild, ContainerParent(cid))
}

// firstLeaf descends to the first (lowest-index) Window reachable from child.
func (h *Hub) firstLeaf(child Child) Child {
	for child.IsContainer() {
		c := h.containers.get(child.Container)
		assertf(len(c.children) > 0, "container %s has no children", child.Container)
		child = c.children[0]
	}
	return child
}

// lastLeaf descends to the last (highest-index) Window reachable from child.
func (h *Hub) lastLeaf(child Child) Child {
	for child.IsContainer() {
		c := h.containers.get(child.Container)
		assertf(len(c.children) > 0, "container %s has no children", child.Container)
		child = c.children[len(c.children)-1]
	}
	return child
}

// lastFocusedLeaf descends from child into each container's recorded
// last-focused child (active tab for Tabbed containers) until it reaches a
// Window.
func (h *Hub) lastFocusedLeaf(child Child) Child {
	for child.IsContainer() {
		c := h.containers.get(child.Container)
		assertf(len(c.children) > 0, "container %s has no children", child.Container)
		child = c.lastFocusedOrFirst()
	}
	return child
}

// workspaceOf returns the id of the workspace that directly or indirectly
// parents child, by walking parent links to the root.
func (h *Hub) workspaceOf(child Child) WorkspaceID {
	p := h.parentOf(child)
	for p.IsContainer() {
		p = h.containers.get(p.Container).parent
	}
	return p.Workspace
}

// ancestorContainers returns the chain of container ids from child's
// immediate parent container up to (and including) the root container, if
// any container ancestors exist. Ordered nearest-first.
func (h *Hub) ancestorContainers(child Child) []ContainerID {
	var out []ContainerID
	p := h.parentOf(child)
	for p.IsContainer() {
		out = append(out, p.Container)
		p = h.containers.get(p.Container).parent
	}
	return out
}
