// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: github.com/bassosimone/nop spanid.go — same UUIDv7 span
// concept, generalized from "one DNS exchange" to "one adapter
// operation" (a command dispatch, a pipeline exec, a subscriber
// rebuild). The teacher leans on github.com/bassosimone/runtimex's
// panic-on-error helper for this; that module is DNS-measurement
// tooling with no other home in this adapter (see DESIGN.md), so the
// one-line panic-on-error it provided is reproduced locally instead of
// carrying the dependency for a single call site.

package ioredis

import "github.com/google/uuid"

// NewSpanID returns a UUIDv7 identifying a single adapter operation: a
// command dispatch, a pipeline/transaction Exec, or a pub/sub subscriber
// rebuild.
//
// Attach the span ID to the logger via slog's With so all log entries
// for one operation correlate, the same way the teacher package
// correlates a connect attempt.
//
// Panics if the system random number generator fails, which should only
// happen under extraordinary circumstances.
func NewSpanID() string {
	id, err := uuid.NewV7()
	if err != nil {
		panic(err)
	}
	return id.String()
}
