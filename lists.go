// SPDX-License-Identifier: GPL-3.0-or-later

package ioredis

import (
	"context"
	"time"
)

// LPush implements LPUSH.
func (c *Client) LPush(ctx context.Context, key []byte, values ...any) (int64, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return 0, err
	}
	vals := valuesToBytes(values)
	var n int64
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.LPush(ctx, k, vals)
		n = v
		return err
	})
	return n, err
}

// RPush implements RPUSH.
func (c *Client) RPush(ctx context.Context, key []byte, values ...any) (int64, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return 0, err
	}
	vals := valuesToBytes(values)
	var n int64
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.RPush(ctx, k, vals)
		n = v
		return err
	})
	return n, err
}

// LPop implements LPOP, with or without the COUNT form.
func (c *Client) LPop(ctx context.Context, key []byte, count int, hasCount bool) ([][]byte, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return nil, err
	}
	var out [][]byte
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.LPop(ctx, k, count, hasCount)
		out = v
		return err
	})
	return out, err
}

// RPop implements RPOP, with or without the COUNT form.
func (c *Client) RPop(ctx context.Context, key []byte, count int, hasCount bool) ([][]byte, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return nil, err
	}
	var out [][]byte
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.RPop(ctx, k, count, hasCount)
		out = v
		return err
	})
	return out, err
}

// LLen implements LLEN.
func (c *Client) LLen(ctx context.Context, key []byte) (int64, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return 0, err
	}
	var n int64
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.LLen(ctx, k)
		n = v
		return err
	})
	return n, err
}

// LRange implements LRANGE.
func (c *Client) LRange(ctx context.Context, key []byte, start, stop int64) ([][]byte, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return nil, err
	}
	var out [][]byte
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.LRange(ctx, k, start, stop)
		out = v
		return err
	})
	return out, err
}

// RPopLPush implements RPOPLPUSH.
func (c *Client) RPopLPush(ctx context.Context, source, destination []byte) ([]byte, error) {
	src, err := normalizeKey(source)
	if err != nil {
		return nil, err
	}
	dst, err := normalizeKey(destination)
	if err != nil {
		return nil, err
	}
	var val []byte
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, found, err := conn.RPopLPush(ctx, src, dst)
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

// BLPop implements the BLPOP family: timeout may be given first or
// last (legacy call style), per spec.md §4.2's blocking-pop row.
func (c *Client) BLPop(ctx context.Context, args ...any) (key string, value []byte, ok bool, err error) {
	return c.blockingPop(ctx, "BLPOP", args)
}

// BRPop implements BRPOP with the same timeout-position flexibility.
func (c *Client) BRPop(ctx context.Context, args ...any) (key string, value []byte, ok bool, err error) {
	return c.blockingPop(ctx, "BRPOP", args)
}

func (c *Client) blockingPop(ctx context.Context, cmd string, args []any) (string, []byte, bool, error) {
	keys, timeout, err := parseBlockingArgs(cmd, args)
	if err != nil {
		return "", nil, false, err
	}
	deadline := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		deadline, cancel = context.WithTimeout(ctx, timeout+5*time.Second)
		defer cancel()
	}
	raw := make([]any, 0, len(keys)+2)
	raw = append(raw, cmd)
	for _, k := range keys {
		raw = append(raw, k)
	}
	raw = append(raw, timeout.Seconds())

	var result any
	err = c.withRetry(deadline, func(conn NativeConn) error {
		v, err := conn.Do(deadline, raw...)
		result = v
		return err
	})
	if err != nil {
		return "", nil, false, err
	}
	pair, ok := result.([]any)
	if !ok || len(pair) != 2 {
		return "", nil, false, nil
	}
	k, _ := pair[0].(string)
	v, _ := pair[1].([]byte)
	return k, v, true, nil
}

// BZPopMin implements BZPOPMIN: timeout may be given first or last
// (legacy call style), matching BLPOP/BRPOP's grammar per
// spec.md §4.2's blocking-pop row, which names BLPOP/BRPOP/BZPOPMIN/
// BZPOPMAX together.
func (c *Client) BZPopMin(ctx context.Context, args ...any) (key string, member []byte, score float64, ok bool, err error) {
	return c.blockingZPop(ctx, "BZPOPMIN", args)
}

// BZPopMax implements BZPOPMAX with the same timeout-position
// flexibility as BZPopMin.
func (c *Client) BZPopMax(ctx context.Context, args ...any) (key string, member []byte, score float64, ok bool, err error) {
	return c.blockingZPop(ctx, "BZPOPMAX", args)
}

func (c *Client) blockingZPop(ctx context.Context, cmd string, args []any) (string, []byte, float64, bool, error) {
	keys, timeout, err := parseBlockingArgs(cmd, args)
	if err != nil {
		return "", nil, 0, false, err
	}
	deadline := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		deadline, cancel = context.WithTimeout(ctx, timeout+5*time.Second)
		defer cancel()
	}
	raw := make([]any, 0, len(keys)+2)
	raw = append(raw, cmd)
	for _, k := range keys {
		raw = append(raw, k)
	}
	raw = append(raw, timeout.Seconds())

	var result any
	err = c.withRetry(deadline, func(conn NativeConn) error {
		v, err := conn.Do(deadline, raw...)
		result = v
		return err
	})
	if err != nil {
		return "", nil, 0, false, err
	}
	triple, ok := result.([]any)
	if !ok || len(triple) != 3 {
		return "", nil, 0, false, nil
	}
	k, _ := triple[0].(string)
	m, _ := triple[1].([]byte)
	score, _ := toFloat64(triple[2])
	return k, m, score, true, nil
}

func valuesToBytes(values []any) [][]byte {
	out := make([][]byte, len(values))
	for i, v := range values {
		out[i] = normalizeValue(v)
	}
	return out
}
