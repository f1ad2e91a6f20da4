// SPDX-License-Identifier: GPL-3.0-or-later

package ioredis

import "context"

// SetBit implements SETBIT. Like the geo and HyperLogLog families,
// bit operations have no dedicated [NativeCommander] method and are
// routed through the raw command escape valve ([Client.Call]).
func (c *Client) SetBit(ctx context.Context, key []byte, offset int64, value int) (int64, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return 0, err
	}
	return c.callInt64(ctx, "SETBIT", k, offset, value)
}

// GetBit implements GETBIT.
func (c *Client) GetBit(ctx context.Context, key []byte, offset int64) (int64, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return 0, err
	}
	return c.callInt64(ctx, "GETBIT", k, offset)
}

// BitCount implements BITCOUNT, with an optional [start, end, unit]
// range where unit is "BYTE" (default) or "BIT".
func (c *Client) BitCount(ctx context.Context, key []byte, args ...any) (int64, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return 0, err
	}
	return c.callInt64(ctx, "BITCOUNT", append([]any{k}, args...)...)
}

// BitOp implements BITOP AND/OR/XOR/NOT.
func (c *Client) BitOp(ctx context.Context, op string, destination []byte, keys ...[]byte) (int64, error) {
	dst, err := normalizeKey(destination)
	if err != nil {
		return 0, err
	}
	srcs, err := normalizeKeys(keys)
	if err != nil {
		return 0, err
	}
	args := make([]any, 0, len(srcs)+2)
	args = append(args, op, dst)
	for _, s := range srcs {
		args = append(args, s)
	}
	return c.callInt64(ctx, "BITOP", args...)
}

// BitPos implements BITPOS, with optional [start, end, unit] bounds.
func (c *Client) BitPos(ctx context.Context, key []byte, bit int, args ...any) (int64, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return 0, err
	}
	return c.callInt64(ctx, "BITPOS", append([]any{k, bit}, args...)...)
}
