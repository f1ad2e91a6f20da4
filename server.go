// SPDX-License-Identifier: GPL-3.0-or-later

package ioredis

import (
	"context"
	"time"
)

// Ping implements PING.
func (c *Client) Ping(ctx context.Context) error {
	return c.withRetry(ctx, func(conn NativeConn) error {
		return conn.Ping(ctx)
	})
}

// DBSize implements DBSIZE.
func (c *Client) DBSize(ctx context.Context) (int64, error) {
	var n int64
	err := c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.DBSize(ctx)
		n = v
		return err
	})
	return n, err
}

// Info implements INFO.
func (c *Client) Info(ctx context.Context, section string) (string, error) {
	var out string
	err := c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.Info(ctx, section)
		out = v
		return err
	})
	return out, err
}

// Time implements TIME.
func (c *Client) Time(ctx context.Context) (time.Time, error) {
	var t time.Time
	err := c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.Time(ctx)
		t = v
		return err
	})
	return t, err
}

// LastSave implements LASTSAVE.
func (c *Client) LastSave(ctx context.Context) (time.Time, error) {
	var t time.Time
	err := c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.LastSave(ctx)
		t = v
		return err
	})
	return t, err
}

// ClientID implements CLIENT ID.
func (c *Client) ClientID(ctx context.Context) (int64, error) {
	var id int64
	err := c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.ClientID(ctx)
		id = v
		return err
	})
	return id, err
}

// Echo implements ECHO.
func (c *Client) Echo(ctx context.Context, message []byte) ([]byte, error) {
	var out []byte
	err := c.withRetry(ctx, func(conn NativeConn) error {
		v, err := conn.Echo(ctx, message)
		out = v
		return err
	})
	return out, err
}

// ClientNoEvict implements CLIENT NO-EVICT, a thin Call-based passthrough
// consistent with the CLIENT ID/DBSIZE aggregation family: the command
// is rare enough that it does not warrant widening NativeConn, so it
// goes through the raw escape valve instead.
func (c *Client) ClientNoEvict(ctx context.Context, on bool) error {
	flag := "OFF"
	if on {
		flag = "ON"
	}
	_, err := c.Call(ctx, "CLIENT", "NO-EVICT", flag)
	return err
}

// ClientUnpause implements CLIENT UNPAUSE, the same thin Call-based
// passthrough as ClientNoEvict.
func (c *Client) ClientUnpause(ctx context.Context) error {
	_, err := c.Call(ctx, "CLIENT", "UNPAUSE")
	return err
}
