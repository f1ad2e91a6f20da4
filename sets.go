// SPDX-License-Identifier: GPL-3.0-or-later

package ioredis

import "context"

// SAdd implements SADD.
func (c *Client) SAdd(ctx context.Context, key []byte, members ...any) (int64, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return 0, err
	}
	vals := valuesToBytes(members)
	var n int64
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.SAdd(ctx, k, vals)
		n = v
		return err
	})
	return n, err
}

// SRem implements SREM.
func (c *Client) SRem(ctx context.Context, key []byte, members ...any) (int64, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return 0, err
	}
	vals := valuesToBytes(members)
	var n int64
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.SRem(ctx, k, vals)
		n = v
		return err
	})
	return n, err
}

// SMembers implements SMEMBERS.
func (c *Client) SMembers(ctx context.Context, key []byte) ([][]byte, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return nil, err
	}
	var out [][]byte
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.SMembers(ctx, k)
		out = v
		return err
	})
	return out, err
}

// SIsMember implements SISMEMBER.
func (c *Client) SIsMember(ctx context.Context, key []byte, member any) (bool, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return false, err
	}
	var ok bool
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.SIsMember(ctx, k, normalizeValue(member))
		ok = v
		return err
	})
	return ok, err
}

// SCard implements SCARD.
func (c *Client) SCard(ctx context.Context, key []byte) (int64, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return 0, err
	}
	var n int64
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.SCard(ctx, k)
		n = v
		return err
	})
	return n, err
}
