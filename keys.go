// SPDX-License-Identifier: GPL-3.0-or-later

package ioredis

import (
	"context"
	"time"
)

// Del implements DEL.
func (c *Client) Del(ctx context.Context, keys ...[]byte) (int64, error) {
	strKeys, err := normalizeKeys(keys)
	if err != nil {
		return 0, err
	}
	var n int64
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.Del(ctx, strKeys)
		n = v
		return err
	})
	return n, err
}

// Exists implements EXISTS.
func (c *Client) Exists(ctx context.Context, keys ...[]byte) (int64, error) {
	strKeys, err := normalizeKeys(keys)
	if err != nil {
		return 0, err
	}
	var n int64
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.Exists(ctx, strKeys)
		n = v
		return err
	})
	return n, err
}

// Expire implements EXPIRE.
func (c *Client) Expire(ctx context.Context, key []byte, seconds int64) (bool, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return false, err
	}
	var ok bool
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.Expire(ctx, k, time.Duration(seconds)*time.Second)
		ok = v
		return err
	})
	return ok, err
}

// TTL implements TTL, returning seconds with the -1/-2 specials of
// spec.md §4.3 passed through unchanged.
func (c *Client) TTL(ctx context.Context, key []byte) (int64, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return 0, err
	}
	var ttl time.Duration
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.TTL(ctx, k)
		ttl = v
		return err
	})
	if err != nil {
		return 0, err
	}
	if ttl < 0 {
		return ttlResult(int64(ttl)), nil
	}
	return ttlResult(int64(ttl / time.Second)), nil
}

// Persist implements PERSIST.
func (c *Client) Persist(ctx context.Context, key []byte) (bool, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return false, err
	}
	var ok bool
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.Persist(ctx, k)
		ok = v
		return err
	})
	return ok, err
}

// Type implements TYPE.
func (c *Client) Type(ctx context.Context, key []byte) (string, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return "", err
	}
	var typ string
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.Type(ctx, k)
		typ = v
		return err
	})
	return typ, err
}

// Rename implements RENAME.
func (c *Client) Rename(ctx context.Context, key, newKey []byte) error {
	k, err := normalizeKey(key)
	if err != nil {
		return err
	}
	nk, err := normalizeKey(newKey)
	if err != nil {
		return err
	}
	return c.withRetry(ctx, func(conn NativeConn) error {
		return conn.Rename(ctx, k, nk)
	})
}

// Scan implements SCAN, threading the opaque [NativeScanCursor] the
// native driver returns back to the caller for the next call, per
// spec.md §3's "Cluster Scan Cursor" note (the same cursor shape
// serves the standalone case).
func (c *Client) Scan(ctx context.Context, cursor NativeScanCursor, match string, count int64) ([]string, NativeScanCursor, error) {
	var keys []string
	var next NativeScanCursor
	err := c.withRetry(ctx, func(conn NativeConn) error {
		k, n, err := conn.Scan(ctx, cursor, match, count)
		keys, next = k, n
		return err
	})
	return keys, next, err
}

func normalizeKeys(keys [][]byte) ([]string, error) {
	out := make([]string, len(keys))
	for i, k := range keys {
		nk, err := normalizeKey(k)
		if err != nil {
			return nil, err
		}
		out[i] = nk
	}
	return out, nil
}
