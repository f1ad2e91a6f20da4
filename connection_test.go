// SPDX-License-Identifier: GPL-3.0-or-later

package ioredis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionManagerEagerConnectEmitsReadyEvent(t *testing.T) {
	cfg := NewConfig()
	cfg.LazyConnect = false
	conn := &fakeNativeConn{}

	m := newConnectionManager(cfg, func(*Config) NativeConn { return conn })
	ready := make(chan ConnectionEvent, 1)
	m.events.on("ready", func(ev ConnectionEvent) { ready <- ev })

	select {
	case ev := <-ready:
		assert.Equal(t, StatusReady, ev.Status)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for ready event")
	}
	assert.Equal(t, StatusReady, m.currentStatus())
}

func TestConnectionManagerLazyConnectDoesNotDialUntilAcquire(t *testing.T) {
	cfg := NewConfig()
	cfg.LazyConnect = true
	var dialed bool
	conn := &fakeNativeConn{}

	m := newConnectionManager(cfg, func(*Config) NativeConn {
		dialed = true
		return conn
	})
	assert.False(t, dialed)
	assert.Equal(t, StatusDisconnected, m.currentStatus())

	got, err := m.acquire(context.Background())
	require.NoError(t, err)
	assert.Same(t, conn, got)
	assert.True(t, dialed)
}

func TestConnectionManagerFailedPingReportsBackgroundError(t *testing.T) {
	cfg := NewConfig()
	cfg.LazyConnect = false
	cfg.SuppressBackgroundErrors = false
	logger, records := newCapturingLogger()
	cfg.Logger = logger
	boom := errors.New("dial refused")

	m := newConnectionManager(cfg, func(*Config) NativeConn {
		return &fakeNativeConn{PingFunc: func(ctx context.Context) error { return boom }}
	})

	assert.Eventually(t, func() bool {
		return m.currentStatus() == StatusDisconnected && len(*records) > 0
	}, time.Second, time.Millisecond)

	var sawBackgroundError bool
	for _, rec := range *records {
		if rec.Message == "connectionBackgroundError" {
			sawBackgroundError = true
		}
	}
	assert.True(t, sawBackgroundError)
}

func TestConnectionManagerAcquireTimesOutWithUnreadyContext(t *testing.T) {
	cfg := NewConfig()
	cfg.LazyConnect = true
	m := newConnectionManager(cfg, func(*Config) NativeConn {
		<-make(chan struct{}) // never returns within the test's deadline
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := m.acquire(ctx)
	require.Error(t, err)
}

func TestConnectionManagerCloseTransitionsToEnd(t *testing.T) {
	cfg := NewConfig()
	cfg.LazyConnect = false
	var closed bool
	m := newConnectionManager(cfg, func(*Config) NativeConn {
		return &fakeNativeConn{CloseFunc: func() error { closed = true; return nil }}
	})
	require.True(t, m.waitReady(time.Second))

	require.NoError(t, m.close())
	assert.Equal(t, StatusEnd, m.currentStatus())
	assert.True(t, closed)
}

func TestEventBusWildcardListenerReceivesEveryEvent(t *testing.T) {
	b := newEventBus()
	var names []string
	b.on("", func(ev ConnectionEvent) { names = append(names, ev.Name) })
	b.emit(ConnectionEvent{Name: "connect"})
	b.emit(ConnectionEvent{Name: "ready"})
	assert.Equal(t, []string{"connect", "ready"}, names)
}

func TestEventBusHasErrorListener(t *testing.T) {
	b := newEventBus()
	assert.False(t, b.hasErrorListener())
	b.on("error", func(ConnectionEvent) {})
	assert.True(t, b.hasErrorListener())
}
