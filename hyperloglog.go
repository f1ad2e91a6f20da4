// SPDX-License-Identifier: GPL-3.0-or-later

package ioredis

import "context"

// PFAdd implements PFADD. Like the geo family, HyperLogLog has no
// dedicated [NativeCommander] method and is routed through the raw
// command escape valve ([Client.Call]).
func (c *Client) PFAdd(ctx context.Context, key []byte, elements ...any) (bool, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return false, err
	}
	args := append([]any{k}, valuesToAny(elements)...)
	n, err := c.callInt64(ctx, "PFADD", args...)
	return n == 1, err
}

// PFCount implements PFCOUNT.
func (c *Client) PFCount(ctx context.Context, keys ...[]byte) (int64, error) {
	strKeys, err := normalizeKeys(keys)
	if err != nil {
		return 0, err
	}
	args := make([]any, len(strKeys))
	for i, k := range strKeys {
		args[i] = k
	}
	return c.callInt64(ctx, "PFCOUNT", args...)
}

// PFMerge implements PFMERGE.
func (c *Client) PFMerge(ctx context.Context, destination []byte, sources ...[]byte) error {
	dst, err := normalizeKey(destination)
	if err != nil {
		return err
	}
	srcs, err := normalizeKeys(sources)
	if err != nil {
		return err
	}
	args := make([]any, 0, len(srcs)+1)
	args = append(args, dst)
	for _, s := range srcs {
		args = append(args, s)
	}
	_, err = c.Call(ctx, "PFMERGE", args...)
	return err
}

func valuesToAny(values []any) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = normalizeValue(v)
	}
	return out
}
