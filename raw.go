// SPDX-License-Identifier: GPL-3.0-or-later

package ioredis

import "context"

// Call is the raw-command escape valve of spec.md §4.2's closing note:
// any command without a dedicated typed method (e.g. CONFIG, CLUSTER
// INFO, OBJECT ENCODING) can be issued directly, with the same key/value
// normalization a typed method would apply to its first argument.
func (c *Client) Call(ctx context.Context, cmd string, args ...any) (any, error) {
	raw := make([]any, 0, len(args)+1)
	raw = append(raw, cmd)
	raw = append(raw, normalizeRawArgs(args)...)
	var result any
	err := c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.Do(ctx, raw...)
		result = v
		return err
	})
	return result, err
}

// callInt64 issues a raw command and coerces its reply to int64,
// the shape go-redis (and most drivers) use for integer replies.
func (c *Client) callInt64(ctx context.Context, cmd string, args ...any) (int64, error) {
	v, err := c.Call(ctx, cmd, args...)
	if err != nil {
		return 0, err
	}
	return toReplyInt64(v), nil
}

// callBytes issues a raw command and coerces its reply to a byte
// slice, or nil when the driver returned a nil bulk reply.
func (c *Client) callBytes(ctx context.Context, cmd string, args ...any) ([]byte, error) {
	v, err := c.Call(ctx, cmd, args...)
	if err != nil {
		return nil, err
	}
	return toReplyBytes(v), nil
}

func toReplyInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	default:
		return 0
	}
}

func toReplyBytes(v any) []byte {
	switch b := v.(type) {
	case []byte:
		return b
	case string:
		return []byte(b)
	default:
		return nil
	}
}
