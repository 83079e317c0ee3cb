// Copyright © 2025 Tileforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/container.go
// Summary: The Container entity: an interior tree node grouping children under a layout mode.

package core

// Container is an interior node of the tiling tree. After tree settle runs
// (see settle.go) every live Container has at least two children unless it
// is the workspace root (I2).
type Container struct {
	id       ContainerID
	parent   Parent
	children []Child
	layout   LayoutMode
	rect     Rect

	// lastFocused is the child, among children, that focus last rested on
	// (directly or through a descendant). It seeds directional focus
	// navigation ("descend into its last focused descendant") and, for a
	// Tabbed container, always tracks the same child as layout.ActiveTab.
	lastFocused Child
	hasFocused  bool
}

// ID returns the container's stable identifier.
func (c Container) ID() ContainerID { return c.id }

// Parent returns the workspace or container this container is a child of.
func (c Container) Parent() Parent { return c.parent }

// Layout returns the container's current layout mode.
func (c Container) Layout() LayoutMode { return c.layout }

// Rect returns the container's last computed screen-space rectangle.
func (c Container) Rect() Rect { return c.rect }

// Children returns the container's children in order. The returned slice
// must not be mutated by callers.
func (c Container) Children() []Child { return c.children }

func (c *Container) indexOf(child Child) int {
	for i, ch := range c.children {
		if ch.Equal(child) {
			return i
		}
	}
	return -1
}

// setLastFocused records child as the last-focused immediate child,
// keeping a Tabbed container's ActiveTab in lockstep.
func (c *Container) setLastFocused(child Child) {
	idx := c.indexOf(child)
	if idx < 0 {
		return
	}
	c.lastFocused = child
	c.hasFocused = true
	if c.layout.Kind == LayoutTabbed {
		c.layout.ActiveTab = idx
	}
}

// lastFocusedOrFirst returns the child that directional navigation should
// descend into: the last-focused child if one is recorded and still
// present, the active tab for a Tabbed container, otherwise the first child.
func (c *Container) lastFocusedOrFirst() Child {
	if c.layout.Kind == LayoutTabbed {
		if c.layout.ActiveTab >= 0 && c.layout.ActiveTab < len(c.children) {
			return c.children[c.layout.ActiveTab]
		}
	}
	if c.hasFocused {
		if idx := c.indexOf(c.lastFocused); idx >= 0 {
			return c.lastFocused
		}
	}
	return c.children[0]
}
