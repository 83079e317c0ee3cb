// Copyright © 2025 Tileforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/doc.go
// Summary: Package documentation for the tiling layout engine.

// Package core implements a pure, in-memory tiling window layout engine: a
// tree of workspaces, containers and windows, the operations that mutate
// it, and the geometry pass that turns it into screen-space rectangles.
//
// The package has no I/O, no goroutines and no external dependencies. Every
// exported Hub method runs to completion synchronously; callers own any
// concurrency around it.
package core
