// Copyright © 2025 Tileforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/snapshot_test.go
// Summary: A compact tree dumper for inspecting a hub's tree shape in tests.

package core

import "fmt"

// snapshot renders ws's tree as indented text: one line per Window or
// Container, children nested beneath their parent. The tests in this
// package assert individual fields; none compares against its output.
func snapshot(h *Hub, wsID WorkspaceID) string {
	ws := h.Workspace(wsID)
	out := fmt.Sprintf("Workspace(%s focused=%s)\n", ws.Name(), ws.Focused())
	root, ok := ws.Root()
	if !ok {
		return out + "  (empty)\n"
	}
	out += dumpChild(h, root, 1)
	return out
}

func dumpChild(h *Hub, child Child, indent int) string {
	prefix := ""
	for i := 0; i < indent; i++ {
		prefix += "  "
	}
	if child.IsWindow() {
		w := h.Window(child.Window)
		return fmt.Sprintf("%sWindow(%s %s)\n", prefix, child.Window, w.Rect())
	}
	c := h.Container(child.Container)
	out := fmt.Sprintf("%sContainer(%s %s %s)\n", prefix, child.Container, layoutString(c.Layout()), c.Rect())
	for _, ch := range c.Children() {
		out += dumpChild(h, ch, indent+1)
	}
	return out
}

func layoutString(l LayoutMode) string {
	if l.IsTabbed() {
		return fmt.Sprintf("Tabbed(active_tab=%d)", l.ActiveTab)
	}
	return fmt.Sprintf("Split(%s)", l.Direction)
}
