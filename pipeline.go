// SPDX-License-Identifier: GPL-3.0-or-later

package ioredis

import "context"

// CommandResult is one buffered command's outcome in the ioredis
// `[error | null, result]` pair shape, per spec.md §4.5.
type CommandResult struct {
	Err   error
	Value any
}

// Pipeline is the non-atomic buffer of spec.md §4.5: collects
// `(method, args)` tuples and, on Exec, assembles a non-atomic batch,
// dispatches it, and returns per-command results. Errors in individual
// commands do not abort the batch.
type Pipeline struct {
	client *Client
	buf    commandBuffer
}

// Pipeline starts a new non-atomic command buffer.
func (c *Client) Pipeline() *Pipeline {
	return &Pipeline{client: c}
}

// Call buffers one raw command by name and arguments, returning the
// pipeline for chaining (the legacy `pipeline.set(...).get(...)` call
// style). Arguments are normalized the same way a direct command call
// would normalize them.
func (p *Pipeline) Call(cmd string, args ...any) *Pipeline {
	raw := make([]any, 0, len(args)+1)
	raw = append(raw, cmd)
	raw = append(raw, normalizeRawArgs(args)...)
	p.buf.add(raw...)
	return p
}

// Len reports how many commands are currently buffered.
func (p *Pipeline) Len() int {
	return p.buf.len()
}

// Exec dispatches every buffered command as a single non-atomic batch
// and returns one result per command, in order. A batch-level failure
// (e.g. the connection drops mid-flight) yields an error result for
// every buffered command rather than failing Exec itself, matching
// spec.md §4.5.
func (p *Pipeline) Exec(ctx context.Context) ([]CommandResult, error) {
	entries := p.buf.drain()
	if len(entries) == 0 {
		return nil, nil
	}
	conn, err := p.client.conn(ctx)
	if err != nil {
		return batchLevelFailure(entries, err), nil
	}
	batch := conn.Pipeline()
	for _, args := range entries {
		batch.QueueRaw(ctx, args...)
	}
	replies, err := batch.Exec(ctx)
	if err != nil {
		return batchLevelFailure(entries, err), nil
	}
	return repliesToResults(replies), nil
}

// Discard drops the buffer without executing it.
func (p *Pipeline) Discard() {
	p.buf.drain()
}

func batchLevelFailure(entries [][]any, err error) []CommandResult {
	out := make([]CommandResult, len(entries))
	for i := range out {
		out[i] = CommandResult{Err: err}
	}
	return out
}

func repliesToResults(replies []NativeReply) []CommandResult {
	out := make([]CommandResult, len(replies))
	for i, r := range replies {
		out[i] = CommandResult{Value: r.Value, Err: r.Err}
	}
	return out
}

// normalizeRawArgs passes strings/numbers/bytes through normalizeValue
// so buffered commands see the same argument encoding a direct call
// would produce.
func normalizeRawArgs(args []any) []any {
	out := make([]any, len(args))
	for i, a := range args {
		switch a.(type) {
		case string, []byte, int, int64, float64, bool, nil:
			out[i] = normalizeValue(a)
		default:
			out[i] = a
		}
	}
	return out
}
