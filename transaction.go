// SPDX-License-Identifier: GPL-3.0-or-later

package ioredis

import "context"

// Transaction is the atomic buffer of spec.md §4.5: same buffering
// model as [Pipeline], but Exec assembles an atomic MULTI/EXEC batch
// guarded by optimistic concurrency over a watched-keys set. When the
// driver signals a watch-touched failure, Exec returns (nil, nil) —
// the ioredis convention for an aborted transaction.
type Transaction struct {
	client  *Client
	buf     commandBuffer
	watched map[string]struct{}
}

// Multi starts a new atomic command buffer, per ioredis's `multi()`.
func (c *Client) Multi() *Transaction {
	return &Transaction{client: c, watched: make(map[string]struct{})}
}

// Watch adds keys to the transaction's Watched-Keys Set (spec.md §3)
// and mirrors them to the driver via raw WATCH.
func (t *Transaction) Watch(ctx context.Context, keys ...string) error {
	conn, err := t.client.conn(ctx)
	if err != nil {
		return err
	}
	if err := conn.Watch(ctx, keys); err != nil {
		return err
	}
	for _, k := range keys {
		t.watched[k] = struct{}{}
	}
	return nil
}

// Unwatch clears the transaction's Watched-Keys Set.
func (t *Transaction) Unwatch(ctx context.Context) error {
	conn, err := t.client.conn(ctx)
	if err != nil {
		return err
	}
	if err := conn.Unwatch(ctx); err != nil {
		return err
	}
	clear(t.watched)
	return nil
}

// Call buffers one raw command, mirroring [Pipeline.Call].
func (t *Transaction) Call(cmd string, args ...any) *Transaction {
	raw := make([]any, 0, len(args)+1)
	raw = append(raw, cmd)
	raw = append(raw, normalizeRawArgs(args)...)
	t.buf.add(raw...)
	return t
}

// Len reports how many commands are currently buffered.
func (t *Transaction) Len() int {
	return t.buf.len()
}

// Discard drops the buffer and clears the watched-keys set without
// executing, per spec.md §3.
func (t *Transaction) Discard(ctx context.Context) {
	t.buf.drain()
	clear(t.watched)
	if conn, err := t.client.conn(ctx); err == nil {
		_ = conn.Unwatch(ctx)
	}
}

// Exec assembles and dispatches the atomic batch. A nil, nil return
// means the transaction was aborted by a watch-touched key (ioredis's
// "null" exec result); otherwise per-command results are returned in
// order. The watched-keys set is cleared in every case.
func (t *Transaction) Exec(ctx context.Context) ([]CommandResult, error) {
	entries := t.buf.drain()
	defer clear(t.watched)

	conn, err := t.client.conn(ctx)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	batch := conn.TxPipeline()
	for _, args := range entries {
		batch.QueueRaw(ctx, args...)
	}
	replies, err := batch.Exec(ctx)
	if err != nil {
		if looksLikeWatchAbort(err) {
			return nil, nil
		}
		return nil, err
	}
	return repliesToResults(replies), nil
}
