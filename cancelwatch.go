// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: github.com/bassosimone/nop cancelwatch.go — generalized
// from a net.Conn-specific wrapper to any io.Closer, since the adapter
// needs the same "close on cancel" behavior for a pub/sub subscriber
// connection, not a raw network connection.

package ioredis

import (
	"context"
	"io"
)

// watchCancelClose arranges for closer to be closed when ctx is done
// (cancelled or deadline exceeded), so a goroutine blocked on a
// closer-owned read unblocks promptly instead of waiting for its own
// timeout. The returned stop func unregisters the watcher; callers
// should defer it once the blocking operation using closer has
// returned, to avoid closing it a second time on an unrelated later
// cancellation.
func watchCancelClose(ctx context.Context, closer io.Closer) (stop func() bool) {
	return context.AfterFunc(ctx, func() {
		closer.Close()
	})
}
