// SPDX-License-Identifier: GPL-3.0-or-later

package ioredis

import "context"

// HGet implements HGET.
func (c *Client) HGet(ctx context.Context, key []byte, field string) ([]byte, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return nil, err
	}
	var val []byte
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, found, err := conn.HGet(ctx, k, field)
		if err != nil {
			return err
		}
		if found {
			val = v
		}
		return nil
	})
	return val, err
}

// HSet implements HSET, accepting variadic (field, value) pairs or a
// single record object per spec.md §4.2.
func (c *Client) HSet(ctx context.Context, key []byte, args ...any) (int64, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return 0, err
	}
	pairs, err := parseFieldValuePairs("HSET", args)
	if err != nil {
		return 0, err
	}
	var n int64
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.HSet(ctx, k, pairs)
		n = v
		return err
	})
	return n, err
}

// HGetAll implements HGETALL, returning the field/value record per
// the Result Translator of spec.md §4.3.
func (c *Client) HGetAll(ctx context.Context, key []byte) (map[string][]byte, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return nil, err
	}
	var out map[string][]byte
	err = c.withRetry(ctx, func(conn NativeConn) error {
		pairs, err := conn.HGetAll(ctx, k)
		if err != nil {
			return err
		}
		out = hashPairsToRecord(pairs)
		return nil
	})
	return out, err
}

// HDel implements HDEL.
func (c *Client) HDel(ctx context.Context, key []byte, fields ...string) (int64, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return 0, err
	}
	var n int64
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.HDel(ctx, k, fields)
		n = v
		return err
	})
	return n, err
}

// HExists implements HEXISTS.
func (c *Client) HExists(ctx context.Context, key []byte, field string) (bool, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return false, err
	}
	var ok bool
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.HExists(ctx, k, field)
		ok = v
		return err
	})
	return ok, err
}

// HMGet implements HMGET: missing fields translate to nil entries.
func (c *Client) HMGet(ctx context.Context, key []byte, fields ...string) ([][]byte, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return nil, err
	}
	var out [][]byte
	err = c.withRetry(ctx, func(conn NativeConn) error {
		vals, found, err := conn.HMGet(ctx, k, fields)
		if err != nil {
			return err
		}
		out = make([][]byte, len(vals))
		for i, v := range vals {
			if found[i] {
				out[i] = v
			}
		}
		return nil
	})
	return out, err
}

// HIncrBy implements HINCRBY.
func (c *Client) HIncrBy(ctx context.Context, key []byte, field string, delta int64) (int64, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return 0, err
	}
	var n int64
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.HIncrBy(ctx, k, field, delta)
		n = v
		return err
	})
	return n, err
}
