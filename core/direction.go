// Copyright © 2025 Tileforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/direction.go
// Summary: Split direction, layout mode, spawn-mode and navigation direction unions.

package core

import "strings"

// SplitDirection is the axis a Split container lays its children out along.
type SplitDirection int

const (
	Horizontal SplitDirection = iota
	Vertical
)

func (d SplitDirection) String() string {
	if d == Horizontal {
		return "Horizontal"
	}
	return "Vertical"
}

// opposite returns the other split direction.
func (d SplitDirection) opposite() SplitDirection {
	if d == Horizontal {
		return Vertical
	}
	return Horizontal
}

// LayoutKind tags a Container's LayoutMode.
type LayoutKind int

const (
	LayoutSplit LayoutKind = iota
	LayoutTabbed
)

// LayoutMode is a container's layout: either a Split along a direction, or
// Tabbed with an active tab index. Split containers never carry an active
// tab (I4); Tabbed containers never carry a direction.
type LayoutMode struct {
	Kind      LayoutKind
	Direction SplitDirection
	ActiveTab int
}

func SplitLayout(d SplitDirection) LayoutMode {
	return LayoutMode{Kind: LayoutSplit, Direction: d}
}

func TabbedLayout(activeTab int) LayoutMode {
	return LayoutMode{Kind: LayoutTabbed, ActiveTab: activeTab}
}

func (m LayoutMode) IsTabbed() bool { return m.Kind == LayoutTabbed }
func (m LayoutMode) IsSplit() bool  { return m.Kind == LayoutSplit }

// matchesSpawnMode reports whether inserting under the current spawn-mode
// should join this layout rather than wrap it in a new container.
func (m LayoutMode) matchesSpawnMode(mode SpawnMode) bool {
	switch mode {
	case SpawnTabbed:
		return m.Kind == LayoutTabbed
	case SpawnHorizontal:
		return m.Kind == LayoutSplit && m.Direction == Horizontal
	case SpawnVertical:
		return m.Kind == LayoutSplit && m.Direction == Vertical
	default:
		return false
	}
}

// SpawnMode is the Hub-level pending mode deciding the shape of the next insert.
type SpawnMode int

const (
	SpawnHorizontal SpawnMode = iota
	SpawnVertical
	SpawnTabbed
)

func (m SpawnMode) layout() LayoutMode {
	switch m {
	case SpawnTabbed:
		return TabbedLayout(0)
	case SpawnVertical:
		return SplitLayout(Vertical)
	default:
		return SplitLayout(Horizontal)
	}
}

// toggleSpawnMode cycles Horizontal -> Vertical -> Tabbed -> Horizontal.
func (m SpawnMode) toggleSpawnMode() SpawnMode {
	switch m {
	case SpawnHorizontal:
		return SpawnVertical
	case SpawnVertical:
		return SpawnTabbed
	default:
		return SpawnHorizontal
	}
}

// toggleSpawnDirection flips Horizontal<->Vertical, leaving Tabbed untouched.
func (m SpawnMode) toggleSpawnDirection() SpawnMode {
	switch m {
	case SpawnHorizontal:
		return SpawnVertical
	case SpawnVertical:
		return SpawnHorizontal
	default:
		return m
	}
}

func (m SpawnMode) String() string {
	switch m {
	case SpawnVertical:
		return "vertical"
	case SpawnTabbed:
		return "tabbed"
	default:
		return "horizontal"
	}
}

// ParseSpawnMode maps a config/CLI string ("horizontal", "vertical",
// "tabbed", case-insensitively) to a SpawnMode, defaulting to
// SpawnHorizontal for anything else.
func ParseSpawnMode(s string) SpawnMode {
	switch strings.ToLower(s) {
	case "vertical":
		return SpawnVertical
	case "tabbed":
		return SpawnTabbed
	default:
		return SpawnHorizontal
	}
}

// NavDirection is a directional focus-navigation request.
type NavDirection int

const (
	DirLeft NavDirection = iota
	DirRight
	DirUp
	DirDown
)

// axis returns the split direction that an ancestor must use for this
// navigation direction to apply to it.
func (d NavDirection) axis() SplitDirection {
	if d == DirLeft || d == DirRight {
		return Horizontal
	}
	return Vertical
}

// forward reports whether this direction moves towards higher indices.
func (d NavDirection) forward() bool {
	return d == DirRight || d == DirDown
}
