// Copyright © 2025 Tileforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/ids.go
// Summary: Stable typed identifiers for the four arena-backed entity kinds.

package core

import "fmt"

// WindowID identifies a tiling Window for its lifetime. Floating windows
// are identified by FloatID instead.
type WindowID int

// ContainerID identifies a Container for its lifetime.
type ContainerID int

// WorkspaceID identifies a Workspace for its lifetime.
type WorkspaceID int

// FloatID identifies a FloatWindow for its lifetime.
type FloatID int

func (id WindowID) String() string    { return fmt.Sprintf("WindowId(%d)", int(id)) }
func (id ContainerID) String() string { return fmt.Sprintf("ContainerId(%d)", int(id)) }
func (id WorkspaceID) String() string { return fmt.Sprintf("WorkspaceId(%d)", int(id)) }
func (id FloatID) String() string     { return fmt.Sprintf("FloatId(%d)", int(id)) }
