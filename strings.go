// SPDX-License-Identifier: GPL-3.0-or-later

package ioredis

import "context"

// Get implements GET, per spec.md §4.4: normalize key, call the
// native driver, translate driver-missing to nil.
func (c *Client) Get(ctx context.Context, key []byte) ([]byte, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return nil, err
	}
	var val []byte
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, found, err := conn.Get(ctx, k)
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

// Set implements SET with the full `EX/PX/EXAT/PXAT/KEEPTTL/NX/XX/GET`
// option grammar of spec.md §4.2. Returns (nil, false, nil) when a
// conditional set misses and GET was not requested; when GET was
// requested, Old/HadOld report the previous value.
func (c *Client) Set(ctx context.Context, key []byte, value any, tokens ...any) (ok bool, old []byte, hadOld bool, err error) {
	k, err := normalizeKey(key)
	if err != nil {
		return false, nil, false, err
	}
	opts, err := parseSetArgs(tokens)
	if err != nil {
		return false, nil, false, err
	}
	val := normalizeValue(value)
	var result NativeSetResult
	err = c.withRetry(ctx, func(conn NativeConn) error {
		r, err := conn.Set(ctx, k, val, opts)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return false, nil, false, err
	}
	return result.Ok, result.Old, result.HadOld, nil
}

// MSet implements MSET, accepting either variadic (f, v) pairs or a
// single record object, per spec.md §4.2's MSET/HSET row.
func (c *Client) MSet(ctx context.Context, args ...any) error {
	pairs, err := parseFieldValuePairs("MSET", args)
	if err != nil {
		return err
	}
	return c.withRetry(ctx, func(conn NativeConn) error {
		return conn.MSet(ctx, pairs)
	})
}

// MGet implements MGET: missing keys translate to nil entries.
func (c *Client) MGet(ctx context.Context, keys ...[]byte) ([][]byte, error) {
	strKeys := make([]string, len(keys))
	for i, k := range keys {
		nk, err := normalizeKey(k)
		if err != nil {
			return nil, err
		}
		strKeys[i] = nk
	}
	var out [][]byte
	err := c.withRetry(ctx, func(conn NativeConn) error {
		vals, found, err := conn.MGet(ctx, strKeys)
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

// Append implements APPEND.
func (c *Client) Append(ctx context.Context, key []byte, value any) (int64, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return 0, err
	}
	var n int64
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.Append(ctx, k, normalizeValue(value))
		n = v
		return err
	})
	return n, err
}

// Incr implements INCR.
func (c *Client) Incr(ctx context.Context, key []byte) (int64, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return 0, err
	}
	var n int64
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.Incr(ctx, k)
		n = v
		return err
	})
	return n, err
}

// IncrBy implements INCRBY.
func (c *Client) IncrBy(ctx context.Context, key []byte, delta int64) (int64, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return 0, err
	}
	var n int64
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.IncrBy(ctx, k, delta)
		n = v
		return err
	})
	return n, err
}

// Decr implements DECR.
func (c *Client) Decr(ctx context.Context, key []byte) (int64, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return 0, err
	}
	var n int64
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.Decr(ctx, k)
		n = v
		return err
	})
	return n, err
}

// GetDel implements GETDEL.
func (c *Client) GetDel(ctx context.Context, key []byte) ([]byte, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return nil, err
	}
	var val []byte
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, found, err := conn.GetDel(ctx, k)
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

// SetNX implements SETNX as the SET NX idempotence sequence of
// spec.md §8: returns true when the key was absent and is now set.
func (c *Client) SetNX(ctx context.Context, key []byte, value any) (bool, error) {
	ok, _, _, err := c.Set(ctx, key, value, "NX")
	return ok, err
}

// SetEx implements SETEX as the unified SET with an EX option record,
// per spec.md §4.4's "SETEX/PSETEX/SETNX: implemented via unified SET
// with option record; never via a separate command."
func (c *Client) SetEx(ctx context.Context, key []byte, seconds int64, value any) error {
	_, _, _, err := c.Set(ctx, key, value, "EX", seconds)
	return err
}

// PSetEx implements PSETEX as the unified SET with a PX option record,
// per spec.md §4.4.
func (c *Client) PSetEx(ctx context.Context, key []byte, milliseconds int64, value any) error {
	_, _, _, err := c.Set(ctx, key, value, "PX", milliseconds)
	return err
}

// GetSet implements GETSET as a single SET with the GET option, matching
// the driver's combined SET...GET semantics.
func (c *Client) GetSet(ctx context.Context, key []byte, value any) ([]byte, error) {
	_, old, hadOld, err := c.Set(ctx, key, value, "GET")
	if err != nil {
		return nil, err
	}
	if !hadOld {
		return nil, nil
	}
	return old, nil
}
