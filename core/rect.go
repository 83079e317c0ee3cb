// Copyright © 2025 Tileforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/rect.go
// Summary: Screen-space rectangle type shared by windows, containers and floats.

package core

import "fmt"

// Rect is a rectangle in screen-space units. The Hub never interprets the
// unit (pixels, cells, points); callers decide.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) String() string {
	return fmt.Sprintf("x=%.2f y=%.2f w=%.2f h=%.2f", r.X, r.Y, r.W, r.H)
}

// inset shrinks r by d on all four sides.
func (r Rect) inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}
