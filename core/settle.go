// Copyright © 2025 Tileforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/settle.go
// Summary: The post-mutation cleanup pass restoring I2/I3 after insert, delete and toggles.

package core

// settle restores I2 (no redundant single-child container, except the
// workspace root) and I3 (no two adjacent same-direction Split containers)
// starting from cid and walking upward. Callers invoke it once after every
// structural edit; it is idempotent and a no-op on an already-settled tree.
func (h *Hub) settle(cid ContainerID) {
	for h.containers.has(cid) {
		c := h.containers.get(cid)
		parent := c.parent

		if len(c.children) == 1 {
			next, stop := h.collapseSingleChild(cid)
			if stop {
				return
			}
			cid = next
			continue
		}

		if len(c.children) == 0 {
			h.removeEmptyContainer(cid)
			if parent.IsContainer() {
				cid = parent.Container
				continue
			}
			return
		}

		if h.mergeAdjacentSplit(cid) {
			// Merging removes cid and keeps parent's shape; re-settle parent
			// in case the merge changed its child count.
			if parent.IsContainer() {
				cid = parent.Container
				continue
			}
			return
		}

		return
	}
}

// collapseSingleChild replaces a container holding exactly one child with
// that child, in the container's own parent slot, preserving index. Returns
// the parent container id to continue settling from (if any) and whether
// the walk should stop (workspace-root single-child containers are legal
// per I2 and are left alone).
func (h *Hub) collapseSingleChild(cid ContainerID) (next ContainerID, stop bool) {
	c := h.containers.get(cid)
	parent := c.parent
	sole := c.children[0]

	if parent.IsWorkspace() {
		// A single-child root container is permitted by I2 only while that
		// child is itself a container; a lone window child becomes the root.
		if sole.IsWindow() {
			ws := h.workspacePtr(parent.Workspace)
			h.replaceChildInParent(parent, ContainerChild(cid), sole)
			h.containers.remove(cid)
			if ws.focused.Equal(ContainerFocus(cid)) {
				ws.focused = WindowFocus(sole.Window)
			}
		}
		return 0, true
	}

	grandparent := h.containers.get(parent.Container)
	h.resolvePromotionConflict(grandparent, &sole)

	h.replaceChildInParent(parent, ContainerChild(cid), sole)
	h.containers.remove(cid)

	if sole.IsContainer() {
		return parent.Container, false
	}
	return parent.Container, false
}

// resolvePromotionConflict adjusts sole in place so that promoting it
// directly into grandparent's child list never violates I3: when both
// grandparent and the promoted container are Split with the same
// direction, the promoted container's direction is flipped instead of
// flattening it into the grandparent (see DESIGN.md's note on promotion
// vs. merge on collapse).
func (h *Hub) resolvePromotionConflict(grandparent *Container, sole *Child) {
	if !sole.IsContainer() {
		return
	}
	if grandparent.layout.Kind != LayoutSplit {
		return
	}
	child := h.containers.get(sole.Container)
	if child.layout.Kind != LayoutSplit {
		return
	}
	if child.layout.Direction == grandparent.layout.Direction {
		child.layout.Direction = child.layout.Direction.opposite()
	}
}

// removeEmptyContainer deletes an empty container from its parent. A
// container reaches zero children only via external list surgery (never
// through normal insert/delete paths, which always leave exactly one
// remaining child first), but settle handles it defensively.
func (h *Hub) removeEmptyContainer(cid ContainerID) {
	c := h.containers.get(cid)
	parent := c.parent
	if parent.IsWorkspace() {
		h.workspacePtr(parent.Workspace).root = nil
	} else {
		gp := h.containers.get(parent.Container)
		idx := gp.indexOf(ContainerChild(cid))
		if idx >= 0 {
			gp.children = append(gp.children[:idx], gp.children[idx+1:]...)
		}
	}
	h.containers.remove(cid)
}

// mergeAdjacentSplit flattens cid's children directly into its parent
// container at cid's slot when both are Split with the same direction
// (I3's "adjacent parallel splits are always collapsed"). This is the
// generic settle-time resolution, distinct from the promotion-time
// direction-flip in resolvePromotionConflict: it runs after explicit
// direction toggles rather than after a single-child collapse. Returns
// whether a merge happened.
func (h *Hub) mergeAdjacentSplit(cid ContainerID) bool {
	c := h.containers.get(cid)
	if c.layout.Kind != LayoutSplit {
		return false
	}
	if !c.parent.IsContainer() {
		return false
	}
	parent := h.containers.get(c.parent.Container)
	if parent.layout.Kind != LayoutSplit || parent.layout.Direction != c.layout.Direction {
		return false
	}

	idx := parent.indexOf(ContainerChild(cid))
	assertf(idx >= 0, "container %s not found in parent %s", cid, parent.id)

	children := make([]Child, len(c.children))
	copy(children, c.children)
	for _, ch := range children {
		h.setParent(ch, ContainerParent(parent.id))
	}

	merged := make([]Child, 0, len(parent.children)-1+len(children))
	merged = append(merged, parent.children[:idx]...)
	merged = append(merged, children...)
	merged = append(merged, parent.children[idx+1:]...)
	parent.children = merged

	if parent.lastFocused.Equal(ContainerChild(cid)) && len(children) > 0 {
		parent.lastFocused = children[0]
	}

	h.containers.remove(cid)
	return true
}
