// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: github.com/bassosimone/nop func.go's constructor-with-
// defaults idiom, generalized to the compatibility adapter's top-level
// [*Client] entry point described across spec.md §4.8.

package ioredis

import (
	"context"
	"time"
)

// Client is the legacy-compatible entry point wrapping a standalone
// native connection, implementing the command surface, pipeline and
// transaction builders, scripting, and the pub/sub bridge described in
// spec.md §4.
type Client struct {
	cfg     *Config
	cm      *connectionManager
	scripts *scriptCache
	pubsub  *pubsubBridge
	kind    string // "client", "subscriber", or "bclient"
}

// NewClient constructs a [*Client] from cfg, connecting eagerly unless
// cfg.LazyConnect is set, per spec.md §4.8.
func NewClient(cfg *Config) *Client {
	if cfg == nil {
		cfg = NewConfig()
	}
	c := &Client{
		cfg:  cfg,
		kind: "client",
	}
	c.cm = newConnectionManager(cfg, newGoRedisStandalone)
	c.scripts = newScriptCache()
	c.pubsub = newPubSubBridge(c)
	return c
}

// conn returns the live native connection, connecting lazily on first
// use, per spec.md §4.8.
func (c *Client) conn(ctx context.Context) (NativeConn, error) {
	return c.cm.acquire(ctx)
}

// Status returns the client's current connection status.
func (c *Client) Status() ConnectionStatus {
	return c.cm.currentStatus()
}

// On registers a listener for "connect", "ready", "end", or "error"
// events, per spec.md §4.8.
func (c *Client) On(event string, fn func(ConnectionEvent)) {
	c.cm.events.on(event, fn)
}

// Close disconnects the client and its subscriber companion if any.
// The script cache is left as it is.
func (c *Client) Close() error {
	c.pubsub.close()
	return c.cm.close()
}

// Duplicate returns a new client sharing address, credentials, TLS
// settings, and connection parameters, optionally mutated by override,
// per spec.md §4.8. The duplicate does not share the subscriber
// client, the scripting cache, or the watch set.
func (c *Client) Duplicate(override func(*Config)) *Client {
	dup := c.cfg.clone()
	if override != nil {
		override(dup)
	}
	return NewClient(dup)
}

// ClientKind discriminates the [CreateClient] factory's output.
type ClientKind string

const (
	KindClient     ClientKind = "client"
	KindSubscriber ClientKind = "subscriber"
	KindBlocking   ClientKind = "bclient"
)

// CreateClient is the queue-library-compatibility factory of
// spec.md §4.8: accepts "client"/"subscriber"/"bclient" and returns a
// new, suitably configured client. Subscriber clients enable
// blocking-capable settings; bclient is a regular client marked for
// blocking operations. Both get RequestTimeout cleared to 0, since
// subscriber reads and BLPOP-family calls legitimately block.
func (c *Client) CreateClient(kind ClientKind) (*Client, error) {
	switch kind {
	case KindClient:
		return c.Duplicate(nil), nil
	case KindSubscriber:
		dup := c.Duplicate(func(cfg *Config) {
			cfg.RequestTimeout = 0 // subscriber reads wait for messages, same setting as bclient
		})
		dup.kind = string(KindSubscriber)
		return dup, nil
	case KindBlocking:
		dup := c.Duplicate(func(cfg *Config) {
			cfg.RequestTimeout = 0 // blocking ops manage their own timeout via BLOCK/timeout args
		})
		dup.kind = string(KindBlocking)
		return dup, nil
	default:
		return nil, newArgumentError("unknown client kind: " + string(kind))
	}
}

// withRetry invokes fn, retrying up to cfg.MaxRetriesPerRequest times
// with cfg.RetryDelayOnFailover between attempts when the error
// classifies as transient (e.g. a cluster MOVED/ASK hiccup mid-
// resharding), per SPEC_FULL.md §4's bounded-retry supplement.
func (c *Client) withRetry(ctx context.Context, fn func(NativeConn) error) error {
	conn, err := c.conn(ctx)
	if err != nil {
		return err
	}
	attempts := c.cfg.MaxRetriesPerRequest
	if attempts < 0 {
		attempts = 0
	}
	var lastErr error
	for i := 0; i <= attempts; i++ {
		lastErr = fn(conn)
		if lastErr == nil {
			return nil
		}
		if c.cfg.ErrClassifier.Classify(lastErr) != classTransient {
			return lastErr
		}
		if i < attempts {
			select {
			case <-time.After(c.cfg.RetryDelayOnFailover):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return lastErr
}
