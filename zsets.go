// SPDX-License-Identifier: GPL-3.0-or-later

package ioredis

import "context"

// ZAdd implements ZADD, returning the added-or-changed count (or the
// new score when INCR was requested, per the driver's native shape).
func (c *Client) ZAdd(ctx context.Context, key []byte, args ...any) (float64, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return 0, err
	}
	opts, members, err := parseZAddArgs(args)
	if err != nil {
		return 0, err
	}
	var n float64
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.ZAdd(ctx, k, opts, members)
		n = v
		return err
	})
	return n, err
}

// ZScore implements ZSCORE.
func (c *Client) ZScore(ctx context.Context, key []byte, member any) (float64, bool, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return 0, false, err
	}
	var score float64
	var found bool
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, ok, err := conn.ZScore(ctx, k, normalizeValue(member))
		score, found = v, ok
		return err
	})
	return score, found, err
}

// ZRem implements ZREM.
func (c *Client) ZRem(ctx context.Context, key []byte, members ...any) (int64, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return 0, err
	}
	vals := valuesToBytes(members)
	var n int64
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.ZRem(ctx, k, vals)
		n = v
		return err
	})
	return n, err
}

// ZCard implements ZCARD.
func (c *Client) ZCard(ctx context.Context, key []byte) (int64, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return 0, err
	}
	var n int64
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.ZCard(ctx, k)
		n = v
		return err
	})
	return n, err
}

// ZRange implements ZRANGE, returning a flat [member, score, member,
// score, ...] slice when withScores is set, per spec.md §4.3.
func (c *Client) ZRange(ctx context.Context, key []byte, start, stop int64, withScores bool) ([]any, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return nil, err
	}
	var members []NativeZMember
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.ZRange(ctx, k, start, stop, withScores)
		members = v
		return err
	})
	if err != nil {
		return nil, err
	}
	if !withScores {
		out := make([]any, len(members))
		for i, m := range members {
			out[i] = m.Member
		}
		return out, nil
	}
	return zMembersToFlat(members), nil
}

// ZRangeByScore implements ZRANGEBYSCORE / ZREVRANGEBYSCORE.
func (c *Client) ZRangeByScore(ctx context.Context, key []byte, reverse bool, args ...any) ([]any, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return nil, err
	}
	cmd := "ZRANGEBYSCORE"
	if reverse {
		cmd = "ZREVRANGEBYSCORE"
	}
	opts, err := parseRangeOptions(cmd, args, false, reverse)
	if err != nil {
		return nil, err
	}
	var members []NativeZMember
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.ZRangeByScore(ctx, k, opts)
		members = v
		return err
	})
	if err != nil {
		return nil, err
	}
	if !opts.WithScores {
		out := make([]any, len(members))
		for i, m := range members {
			out[i] = m.Member
		}
		return out, nil
	}
	return zMembersToFlat(members), nil
}

// ZRangeByLex implements ZRANGEBYLEX / ZREVRANGEBYLEX.
func (c *Client) ZRangeByLex(ctx context.Context, key []byte, reverse bool, args ...any) ([][]byte, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return nil, err
	}
	cmd := "ZRANGEBYLEX"
	if reverse {
		cmd = "ZREVRANGEBYLEX"
	}
	opts, err := parseRangeOptions(cmd, args, true, reverse)
	if err != nil {
		return nil, err
	}
	var out [][]byte
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.ZRangeByLex(ctx, k, opts)
		out = v
		return err
	})
	return out, err
}
