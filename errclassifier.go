// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: github.com/bassosimone/nop errclassifier.go — generalized
// from a net.Conn error taxonomy (ETIMEDOUT, ECONNRESET, ...) to the
// taxonomy this adapter needs for structured logging and for the pub/sub
// bridge's poll-loop failure handling (see §4.7).

package ioredis

import (
	"context"
	"errors"
	"strings"
)

// ErrClassifier classifies driver errors into short categorical strings,
// both for structured logging and for the pub/sub bridge's decision of
// whether a poll-loop failure is closed/transient/fatal.
//
// Implementations map errors to short descriptive labels. The default
// classifier recognizes context cancellation and a handful of
// substring-based heuristics over the driver's error text, since the
// native driver contract (§6) does not expose a typed error taxonomy of
// its own.
type ErrClassifier interface {
	Classify(err error) string
}

// ErrClassifierFunc adapts a function to the [ErrClassifier] interface.
type ErrClassifierFunc func(error) string

var _ ErrClassifier = ErrClassifierFunc(nil)

// Classify implements [ErrClassifier].
func (f ErrClassifierFunc) Classify(err error) string {
	return f(err)
}

// Poll-loop failure categories, per spec.md §4.7.
const (
	classClosed    = "closed"
	classTransient = "transient"
	classFatal     = "fatal"
)

// DefaultErrClassifier is the adapter's default [ErrClassifier].
var DefaultErrClassifier = ErrClassifierFunc(defaultClassify)

func defaultClassify(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.Canceled) {
		return classClosed
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return classTransient
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "use of closed"),
		strings.Contains(msg, "client is closed"),
		strings.Contains(msg, "connection closed"):
		return classClosed
	case strings.Contains(msg, "i/o timeout"),
		strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "connection reset"),
		strings.Contains(msg, "loading"),
		strings.Contains(msg, "try again"),
		strings.HasPrefix(msg, "moved "),
		strings.HasPrefix(msg, "ask "):
		return classTransient
	default:
		return classFatal
	}
}

// watchAbortTokens is the heuristic referenced by spec.md §4.5 and flagged
// as an open question in §9: the driver's raw error text is scanned for
// any of these substrings to decide whether a transaction was aborted by
// optimistic concurrency rather than failing for an ordinary reason.
//
// DESIGN.md records the decision to keep this heuristic rather than
// invent a typed signal the native driver contract does not provide.
var watchAbortTokens = []string{"watch", "transaction", "multi", "exec"}

// looksLikeWatchAbort applies the §4.5/§9 heuristic.
func looksLikeWatchAbort(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, tok := range watchAbortTokens {
		if strings.Contains(msg, tok) {
			return true
		}
	}
	return false
}
