// Copyright © 2025 Tileforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/errors.go
// Summary: Contract-violation assertions for illegal inputs.

package core

import "fmt"

// assertf panics with a formatted message. Every public Hub operation
// documents preconditions ("id exists", "id belongs to this hub"); a
// caller that violates one has a bug, not a recoverable runtime condition,
// so the core signals it as an assertion rather than returning an error.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("core: "+format, args...))
	}
}
