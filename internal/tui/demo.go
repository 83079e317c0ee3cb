// Copyright © 2025 Tileforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/tui/demo.go
// Summary: A Bubble Tea driver exercising a Hub interactively: insert/delete/focus/toggle bound to keys.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/tileforge/tileforge/core"
)

// DemoModel drives a core.Hub from the keyboard and renders its current
// workspace as a block diagram (not a cell-exact render — see
// internal/render for that). Each DemoModel run is tagged with a random
// session id, shown in the view's title line.
type DemoModel struct {
	hub       *core.Hub
	sessionID uuid.UUID
	keys      demoKeyMap
	help      help.Model
	width     int
	height    int
	status    string
}

type demoKeyMap struct {
	InsertTiling   key.Binding
	DeleteFocused  key.Binding
	FocusLeft      key.Binding
	FocusRight     key.Binding
	FocusUp        key.Binding
	FocusDown      key.Binding
	FocusParent    key.Binding
	ToggleSpawn    key.Binding
	ToggleLayout   key.Binding
	ToggleAutoTile key.Binding
	Quit           key.Binding
}

func defaultDemoKeyMap() demoKeyMap {
	return demoKeyMap{
		InsertTiling:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new window")),
		DeleteFocused:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "close focused")),
		FocusLeft:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "focus left")),
		FocusRight:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "focus right")),
		FocusUp:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "focus up")),
		FocusDown:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "focus down")),
		FocusParent:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "focus parent")),
		ToggleSpawn:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "cycle spawn-mode")),
		ToggleLayout:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle tabbed")),
		ToggleAutoTile: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "toggle auto-tile")),
		Quit:           key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// NewDemoModel returns a DemoModel driving hub, identified by a fresh
// random session id for the run's lifetime.
func NewDemoModel(hub *core.Hub) DemoModel {
	return DemoModel{
		hub:       hub,
		sessionID: uuid.New(),
		keys:      defaultDemoKeyMap(),
		help:      help.New(),
	}
}

func (m DemoModel) Init() tea.Cmd { return nil }

func (m DemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.InsertTiling):
			id := m.hub.InsertTiling()
			m.status = fmt.Sprintf("inserted %s", id)
		case key.Matches(msg, m.keys.DeleteFocused):
			m.deleteFocused()
		case key.Matches(msg, m.keys.FocusLeft):
			m.hub.FocusLeft()
		case key.Matches(msg, m.keys.FocusRight):
			m.hub.FocusRight()
		case key.Matches(msg, m.keys.FocusUp):
			m.hub.FocusUp()
		case key.Matches(msg, m.keys.FocusDown):
			m.hub.FocusDown()
		case key.Matches(msg, m.keys.FocusParent):
			m.hub.FocusParent()
		case key.Matches(msg, m.keys.ToggleSpawn):
			m.hub.ToggleSpawnMode()
		case key.Matches(msg, m.keys.ToggleLayout):
			m.hub.ToggleContainerLayout()
		case key.Matches(msg, m.keys.ToggleAutoTile):
			m.hub.SetAutoTile(!m.hub.AutoTile())
		}
	}
	return m, nil
}

func (m *DemoModel) deleteFocused() {
	ws := m.hub.Workspace(m.hub.CurrentWorkspace())
	focused := ws.Focused()
	if !focused.IsWindow() {
		m.status = "focus is not a window, nothing to close"
		return
	}
	m.hub.DeleteWindow(focused.Window)
	m.status = fmt.Sprintf("closed %s", focused.Window)
}

var (
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	activeStyle = frameStyle.BorderForeground(lipgloss.Color("205"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
)

func (m DemoModel) View() string {
	ws := m.hub.Workspace(m.hub.CurrentWorkspace())
	var b strings.Builder
	fmt.Fprintf(&b, "%s  session=%s\n\n", titleStyle.Render("tileforge demo"), m.sessionID)

	root, ok := ws.Root()
	if !ok {
		b.WriteString("(empty workspace)\n\n")
	} else {
		b.WriteString(renderChild(m.hub, ws, root, 0))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(demoHelpAdapter{m.keys}))
	if m.status != "" {
		fmt.Fprintf(&b, "\n%s\n", m.status)
	}
	return b.String()
}

func renderChild(hub *core.Hub, ws core.Workspace, child core.Child, depth int) string {
	indent := strings.Repeat("  ", depth)
	if child.IsWindow() {
		label := fmt.Sprintf("%s%s %s", indent, child.Window, hub.Window(child.Window).Rect())
		if ws.Focused().IsWindow() && ws.Focused().Window == child.Window {
			return activeStyle.Render(label) + "\n"
		}
		return frameStyle.Render(label) + "\n"
	}

	c := hub.Container(child.Container)
	var b strings.Builder
	fmt.Fprintf(&b, "%s%s layout=%s\n", indent, child.Container, layoutLabel(c))
	for _, ch := range c.Children() {
		b.WriteString(renderChild(hub, ws, ch, depth+1))
	}
	return b.String()
}

func layoutLabel(c core.Container) string {
	l := c.Layout()
	if l.IsTabbed() {
		return fmt.Sprintf("Tabbed(active=%d)", l.ActiveTab)
	}
	return fmt.Sprintf("Split(%s)", l.Direction)
}

// demoHelpAdapter satisfies help.KeyMap for the demo's binding set.
type demoHelpAdapter struct{ keys demoKeyMap }

func (a demoHelpAdapter) ShortHelp() []key.Binding {
	return []key.Binding{a.keys.InsertTiling, a.keys.DeleteFocused, a.keys.ToggleSpawn, a.keys.Quit}
}

func (a demoHelpAdapter) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{a.keys.InsertTiling, a.keys.DeleteFocused},
		{a.keys.FocusLeft, a.keys.FocusRight, a.keys.FocusUp, a.keys.FocusDown, a.keys.FocusParent},
		{a.keys.ToggleSpawn, a.keys.ToggleLayout, a.keys.ToggleAutoTile},
		{a.keys.Quit},
	}
}
