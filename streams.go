// SPDX-License-Identifier: GPL-3.0-or-later

package ioredis

import "context"

// XAdd implements XADD with the full NOMKSTREAM/trim/ID grammar of
// spec.md §4.2.
func (c *Client) XAdd(ctx context.Context, key []byte, args ...any) (string, bool, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return "", false, err
	}
	opts, err := parseXAddArgs(args)
	if err != nil {
		return "", false, err
	}
	var id string
	var ok bool
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, created, err := conn.XAdd(ctx, k, opts)
		id, ok = v, created
		return err
	})
	return id, ok, err
}

// XRange implements XRANGE.
func (c *Client) XRange(ctx context.Context, key []byte, start, stop string, count int64, hasCount bool) ([]streamEntry, error) {
	return c.xrange(ctx, key, start, stop, count, hasCount, false)
}

// XRevRange implements XREVRANGE.
func (c *Client) XRevRange(ctx context.Context, key []byte, start, stop string, count int64, hasCount bool) ([]streamEntry, error) {
	return c.xrange(ctx, key, start, stop, count, hasCount, true)
}

func (c *Client) xrange(ctx context.Context, key []byte, start, stop string, count int64, hasCount, reverse bool) ([]streamEntry, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return nil, err
	}
	var entries []NativeStreamEntry
	err = c.withRetry(ctx, func(conn NativeConn) error {
		var v []NativeStreamEntry
		var err error
		if reverse {
			v, err = conn.XRevRange(ctx, k, start, stop, count, hasCount)
		} else {
			v, err = conn.XRange(ctx, k, start, stop, count, hasCount)
		}
		entries = v
		return err
	})
	if err != nil {
		return nil, err
	}
	return streamEntriesToFlat(entries, 0, false), nil
}

// XRead implements XREAD/XREADGROUP, returning results in the caller's
// STREAMS-clause key order, per spec.md §4.3.
func (c *Client) XRead(ctx context.Context, cmd string, args ...any) ([]streamResult, error) {
	opts, err := parseXReadArgs(cmd, args)
	if err != nil {
		return nil, err
	}
	var result map[string][]NativeStreamEntry
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.XRead(ctx, opts)
		result = v
		return err
	})
	if err != nil {
		return nil, err
	}
	return streamsMapToFlat(result, opts.Order), nil
}

// XTrim implements XTRIM.
func (c *Client) XTrim(ctx context.Context, key []byte, args ...any) (int64, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return 0, err
	}
	trim, _, err := parseTrimArgs(args)
	if err != nil {
		return 0, err
	}
	var n int64
	err = c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.XTrim(ctx, k, trim)
		n = v
		return err
	})
	return n, err
}

// XGroup implements the XGROUP subcommand family: CREATE, DESTROY,
// CREATECONSUMER, DELCONSUMER, SETID.
func (c *Client) XGroup(ctx context.Context, args ...any) (any, error) {
	op, err := parseXGroupArgs(args)
	if err != nil {
		return nil, err
	}
	var result any
	err = c.withRetry(ctx, func(conn NativeConn) error {
		switch op.Op {
		case "CREATE":
			return conn.XGroupCreate(ctx, op.Key, op.Group, op.ID, op.MkStream)
		case "DESTROY":
			return conn.XGroupDestroy(ctx, op.Key, op.Group)
		case "CREATECONSUMER":
			return conn.XGroupCreateConsumer(ctx, op.Key, op.Group, op.Consumer)
		case "DELCONSUMER":
			n, err := conn.XGroupDelConsumer(ctx, op.Key, op.Group, op.Consumer)
			result = n
			return err
		case "SETID":
			return conn.XGroupSetID(ctx, op.Key, op.Group, op.ID, op.EntriesRead, op.HasEntriesRead)
		default:
			return newArgumentError("unknown XGROUP subcommand: " + op.Op)
		}
	})
	if err == nil && result == nil {
		result = "OK"
	}
	return result, err
}
