// SPDX-License-Identifier: GPL-3.0-or-later

package ioredis

import (
	"context"
	"encoding/base64"
	"sync"
	"unicode/utf8"
)

// binaryPayloadMarker prefixes a base64-encoded payload when the raw
// bytes are not valid UTF-8, per spec.md §4.7's binary-payload rule.
const binaryPayloadMarker = "\x00ioredis-b64\x00:"

// encodePayload carries text payloads through untouched and encodes
// UTF-8-unsafe bytes as "<marker>:<base64>".
func encodePayload(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return binaryPayloadMarker + base64.StdEncoding.EncodeToString(b)
}

// decodePayload is encodePayload's inverse.
func decodePayload(s string) []byte {
	if len(s) > len(binaryPayloadMarker) && s[:len(binaryPayloadMarker)] == binaryPayloadMarker {
		raw, err := base64.StdEncoding.DecodeString(s[len(binaryPayloadMarker):])
		if err == nil {
			return raw
		}
	}
	return []byte(s)
}

// PubSubEvent is one event the bridge emits, mirroring the legacy
// emitter's event shapes from spec.md §4.7.
type PubSubEvent struct {
	// Name is one of "message", "pmessage", "smessage", "subscribe",
	// "psubscribe", "ssubscribe", "unsubscribe", "punsubscribe",
	// "sunsubscribe", or "error".
	Name    string
	Channel string
	Pattern string
	Payload []byte
	Count   int
	Err     error
}

type pubsubListener func(PubSubEvent)

// pubsubBridge reconciles the native driver's connection-time-declared
// subscriptions with the legacy dynamic subscribe/unsubscribe model,
// per spec.md §4.7.
type pubsubBridge struct {
	client *Client

	mu       sync.Mutex
	exact    map[string]struct{}
	patterns map[string]struct{}
	sharded  map[string]struct{}
	state    subscriberState
	cancel   context.CancelFunc
	done     chan struct{}

	listenersMu sync.Mutex
	listeners   map[string][]pubsubListener
}

type subscriberState int

const (
	subscriberAbsent subscriberState = iota
	subscriberBuilding
	subscriberActive
	subscriberTearingDown
)

func newPubSubBridge(c *Client) *pubsubBridge {
	return &pubsubBridge{
		client:    c,
		exact:     make(map[string]struct{}),
		patterns:  make(map[string]struct{}),
		sharded:   make(map[string]struct{}),
		state:     subscriberAbsent,
		listeners: make(map[string][]pubsubListener),
	}
}

// On registers fn for PubSubEvent.Name events ("" subscribes to all).
func (b *pubsubBridge) On(name string, fn pubsubListener) {
	b.listenersMu.Lock()
	defer b.listenersMu.Unlock()
	b.listeners[name] = append(b.listeners[name], fn)
}

func (b *pubsubBridge) emit(ev PubSubEvent) {
	b.listenersMu.Lock()
	named := append([]pubsubListener(nil), b.listeners[ev.Name]...)
	wild := append([]pubsubListener(nil), b.listeners[""]...)
	b.listenersMu.Unlock()
	for _, fn := range named {
		fn(ev)
	}
	for _, fn := range wild {
		fn(ev)
	}
}

// Subscribe adds exact channels and rebuilds the subscriber connection.
func (b *pubsubBridge) Subscribe(ctx context.Context, channels ...string) (int, error) {
	return b.addAndRebuild(ctx, b.exact, "subscribe", channels)
}

// Unsubscribe removes exact channels (all of them when none given) and
// rebuilds, or tears down when every set becomes empty.
func (b *pubsubBridge) Unsubscribe(ctx context.Context, channels ...string) (int, error) {
	return b.removeAndRebuild(ctx, b.exact, "unsubscribe", channels)
}

func (b *pubsubBridge) PSubscribe(ctx context.Context, patterns ...string) (int, error) {
	return b.addAndRebuild(ctx, b.patterns, "psubscribe", patterns)
}

func (b *pubsubBridge) PUnsubscribe(ctx context.Context, patterns ...string) (int, error) {
	return b.removeAndRebuild(ctx, b.patterns, "punsubscribe", patterns)
}

func (b *pubsubBridge) SSubscribe(ctx context.Context, channels ...string) (int, error) {
	return b.addAndRebuild(ctx, b.sharded, "ssubscribe", channels)
}

func (b *pubsubBridge) SUnsubscribe(ctx context.Context, channels ...string) (int, error) {
	return b.removeAndRebuild(ctx, b.sharded, "sunsubscribe", channels)
}

// Publish sends payload to channel, routing to the driver's sharded
// publish when sharded is true, per spec.md §4.7's cluster note.
func (b *pubsubBridge) Publish(ctx context.Context, channel string, payload []byte, sharded bool) (int64, error) {
	conn, err := b.client.conn(ctx)
	if err != nil {
		return 0, err
	}
	if sharded {
		return conn.SPublish(ctx, channel, []byte(encodePayload(payload)))
	}
	return conn.Publish(ctx, channel, []byte(encodePayload(payload)))
}

func (b *pubsubBridge) addAndRebuild(ctx context.Context, set map[string]struct{}, event string, items []string) (int, error) {
	b.mu.Lock()
	for _, it := range items {
		set[it] = struct{}{}
	}
	count := b.totalLocked()
	b.mu.Unlock()

	b.emit(PubSubEvent{Name: event, Count: count})
	if err := b.rebuild(ctx); err != nil {
		return count, err
	}
	return count, nil
}

func (b *pubsubBridge) removeAndRebuild(ctx context.Context, set map[string]struct{}, event string, items []string) (int, error) {
	b.mu.Lock()
	if len(items) == 0 {
		for k := range set {
			delete(set, k)
		}
	} else {
		for _, it := range items {
			delete(set, it)
		}
	}
	count := b.totalLocked()
	empty := count == 0
	b.mu.Unlock()

	b.emit(PubSubEvent{Name: event, Count: count})
	if empty {
		b.teardown()
		return count, nil
	}
	if err := b.rebuild(ctx); err != nil {
		return count, err
	}
	return count, nil
}

func (b *pubsubBridge) totalLocked() int {
	return len(b.exact) + len(b.patterns) + len(b.sharded)
}

// rebuild transitions `active -> building -> active` (or
// `absent -> building -> active` on the first subscribe): opens a new
// subscriber connection declaring the current sets, starts its polling
// loop, and closes the previous connection only once the new one is
// ready, per spec.md §4.7.
func (b *pubsubBridge) rebuild(ctx context.Context) error {
	b.mu.Lock()
	b.state = subscriberBuilding
	exact := setKeys(b.exact)
	patterns := setKeys(b.patterns)
	sharded := setKeys(b.sharded)
	prevCancel := b.cancel
	b.mu.Unlock()

	conn, err := b.client.conn(ctx)
	if err != nil {
		return err
	}
	sub, err := conn.NewSubscriber(ctx, exact, patterns, sharded)
	if err != nil {
		b.mu.Lock()
		b.state = subscriberActive
		b.mu.Unlock()
		return err
	}

	pollCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	b.mu.Lock()
	b.state = subscriberActive
	b.cancel = cancel
	b.done = done
	b.mu.Unlock()

	go b.pollLoop(pollCtx, sub, done)

	if prevCancel != nil {
		prevCancel()
	}
	return nil
}

// teardown transitions to absent, stopping the polling loop.
func (b *pubsubBridge) teardown() {
	b.mu.Lock()
	b.state = subscriberTearingDown
	cancel := b.cancel
	b.cancel = nil
	b.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	b.mu.Lock()
	b.state = subscriberAbsent
	b.mu.Unlock()
}

func (b *pubsubBridge) close() {
	b.teardown()
}

func setKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// Subscribe implements SUBSCRIBE, returning the new total subscription
// count across exact, pattern, and sharded channels.
func (c *Client) Subscribe(ctx context.Context, channels ...string) (int, error) {
	return c.pubsub.Subscribe(ctx, channels...)
}

// Unsubscribe implements UNSUBSCRIBE.
func (c *Client) Unsubscribe(ctx context.Context, channels ...string) (int, error) {
	return c.pubsub.Unsubscribe(ctx, channels...)
}

// PSubscribe implements PSUBSCRIBE.
func (c *Client) PSubscribe(ctx context.Context, patterns ...string) (int, error) {
	return c.pubsub.PSubscribe(ctx, patterns...)
}

// PUnsubscribe implements PUNSUBSCRIBE.
func (c *Client) PUnsubscribe(ctx context.Context, patterns ...string) (int, error) {
	return c.pubsub.PUnsubscribe(ctx, patterns...)
}

// SSubscribe implements SSUBSCRIBE.
func (c *Client) SSubscribe(ctx context.Context, channels ...string) (int, error) {
	return c.pubsub.SSubscribe(ctx, channels...)
}

// SUnsubscribe implements SUNSUBSCRIBE.
func (c *Client) SUnsubscribe(ctx context.Context, channels ...string) (int, error) {
	return c.pubsub.SUnsubscribe(ctx, channels...)
}

// Publish implements PUBLISH/SPUBLISH.
func (c *Client) Publish(ctx context.Context, channel string, payload []byte, sharded bool) (int64, error) {
	return c.pubsub.Publish(ctx, channel, payload, sharded)
}

// OnMessage registers a listener for "message", "pmessage", "smessage",
// "subscribe", "unsubscribe", "psubscribe", "punsubscribe",
// "ssubscribe", or "sunsubscribe" events, per spec.md §6.
func (c *Client) OnMessage(event string, fn func(PubSubEvent)) {
	c.pubsub.On(event, fn)
}
