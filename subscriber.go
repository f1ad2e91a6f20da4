// SPDX-License-Identifier: GPL-3.0-or-later

package ioredis

import (
	"context"
	"log/slog"
	"math/rand"
	"time"
)

// transientRetryBaseDelay and transientRetryJitter bound the backoff
// pollLoop applies after a transient ReceiveMessage error, per
// spec.md §4.7's failure semantics ("transient (retry after small
// jitter)") — without them a transient condition (a "try again"/
// "loading" reply, a read timeout) would spin the loop in a tight,
// unthrottled call against the driver.
const (
	transientRetryBaseDelay = 20 * time.Millisecond
	transientRetryJitter    = 30 * time.Millisecond
)

// pollLoop runs for the lifetime of one subscriber connection,
// repeatedly draining messages until ctx is cancelled or a fatal error
// occurs, per spec.md §4.7. Closing sub on cancellation (via
// watchCancelClose, cancelwatch.go) is what unblocks a parked
// ReceiveMessage call promptly instead of waiting on the driver's own
// read timeout.
func (b *pubsubBridge) pollLoop(ctx context.Context, sub NativeSubscriber, done chan struct{}) {
	stop := watchCancelClose(ctx, sub)
	defer stop()
	defer close(done)

	logger := b.client.cfg.Logger
	classifier := b.client.cfg.ErrClassifier

	for {
		msg, err := sub.ReceiveMessage(ctx)
		if err != nil {
			switch classifier.Classify(err) {
			case classClosed:
				return
			case classTransient:
				logger.Warn("pubsubPollTransient", slog.Any("err", err))
				if !sleepWithJitter(ctx, transientRetryBaseDelay, transientRetryJitter) {
					return
				}
				continue
			default:
				logger.Error("pubsubPollFatal", slog.Any("err", err))
				b.emit(PubSubEvent{Name: "error", Err: err})
				return
			}
		}
		b.deliver(msg)
	}
}

// sleepWithJitter waits base plus a random duration in [0, jitter)
// before the next retry, returning false instead if ctx is done first.
func sleepWithJitter(ctx context.Context, base, jitter time.Duration) bool {
	delay := base
	if jitter > 0 {
		delay += time.Duration(rand.Int63n(int64(jitter)))
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// deliver maps one native pub/sub message to the legacy event shape,
// decoding the binary-payload marker through the Value Normalizer.
func (b *pubsubBridge) deliver(msg *NativeMessage) {
	payload := decodePayload(string(msg.Payload))
	switch msg.Kind {
	case "pmessage":
		b.emit(PubSubEvent{Name: "pmessage", Channel: msg.Channel, Pattern: msg.Pattern, Payload: payload})
	case "smessage":
		b.emit(PubSubEvent{Name: "smessage", Channel: msg.Channel, Payload: payload})
	default:
		b.emit(PubSubEvent{Name: "message", Channel: msg.Channel, Payload: payload})
	}
}
