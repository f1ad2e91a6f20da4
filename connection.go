// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: github.com/bassosimone/nop connect.go — same
// "start/done structured logging around a dial" shape, generalized
// from a single net.Conn dial to the lazy/eager native-driver connect
// sequence of spec.md §4.8.

package ioredis

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// connectionManager owns one native connection's lifecycle: lazy vs
// eager connect, the offline command queue, status transitions, and
// background-error suppression, per spec.md §4.8.
type connectionManager struct {
	cfg    *Config
	logger SLogger
	newNative func(*Config) NativeConn

	mu      sync.Mutex
	status  ConnectionStatus
	conn    NativeConn
	connErr error
	ready   chan struct{}
	events  *eventBus

	offlineMu    sync.Mutex
	offlineQueue []func()
}

func newConnectionManager(cfg *Config, newNative func(*Config) NativeConn) *connectionManager {
	m := &connectionManager{
		cfg:       cfg,
		logger:    cfg.Logger,
		newNative: newNative,
		status:    StatusDisconnected,
		ready:     make(chan struct{}),
		events:    newEventBus(),
	}
	if cfg.LazyConnect {
		return m
	}
	// Eager connect: scheduled to run after the constructor returns so
	// listeners registered immediately afterwards still observe it, per
	// spec.md §4.8.
	go m.connect(context.Background())
	return m
}

// connect transitions disconnected -> connecting -> connected -> ready,
// emitting "connect" and "ready" events along the way. Safe to call
// concurrently; only the first caller performs the actual connect.
func (m *connectionManager) connect(ctx context.Context) {
	m.mu.Lock()
	if m.status != StatusDisconnected {
		m.mu.Unlock()
		return
	}
	m.status = StatusConnecting
	m.mu.Unlock()

	t0 := m.cfg.TimeNow()
	m.logger.Info("connectionConnectStart", slog.Time("t", t0))

	conn := m.newNative(m.cfg)
	if err := conn.Ping(ctx); err != nil {
		m.failConnect(err)
		return
	}

	m.mu.Lock()
	m.conn = conn
	m.status = StatusConnected
	m.mu.Unlock()
	m.events.emit(ConnectionEvent{Name: "connect", Status: StatusConnected})

	m.mu.Lock()
	m.status = StatusReady
	close(m.ready)
	m.mu.Unlock()
	m.events.emit(ConnectionEvent{Name: "ready", Status: StatusReady})

	m.logger.Info("connectionConnectDone",
		slog.Time("t0", t0),
		slog.Time("t", m.cfg.TimeNow()),
		slog.Duration("elapsed", m.cfg.TimeNow().Sub(t0)),
	)

	m.drainOfflineQueue()
}

func (m *connectionManager) failConnect(err error) {
	m.mu.Lock()
	m.connErr = err
	m.status = StatusDisconnected
	m.mu.Unlock()
	m.reportBackgroundError(err)
}

// reportBackgroundError applies spec.md §4.8's "errors without
// listeners must not crash the process" rule: emit to listeners when
// present; otherwise log at Error level unless suppressed.
func (m *connectionManager) reportBackgroundError(err error) {
	if m.events.hasErrorListener() {
		m.events.emit(ConnectionEvent{Name: "error", Err: err})
		return
	}
	if m.cfg.SuppressBackgroundErrors {
		return
	}
	m.logger.Error("connectionBackgroundError",
		slog.Any("err", err),
		slog.String("errClass", m.cfg.ErrClassifier.Classify(err)),
	)
}

// acquire returns the live native connection, triggering a lazy
// connect on first use and blocking until ready or ctx is done.
func (m *connectionManager) acquire(ctx context.Context) (NativeConn, error) {
	m.mu.Lock()
	status := m.status
	m.mu.Unlock()

	if status == StatusDisconnected {
		go m.connect(context.Background())
	}
	if status == StatusConnecting && !m.cfg.EnableOfflineQueue {
		return nil, &Error{Kind: ErrKindDriver, Msg: "connection not ready and offline queue is disabled"}
	}

	select {
	case <-m.ready:
	case <-ctx.Done():
		return nil, &Error{Kind: ErrKindDriver, Msg: "connection not ready", Err: ctx.Err()}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.conn == nil {
		return nil, &Error{Kind: ErrKindClosed, Msg: "connection closed"}
	}
	return m.conn, nil
}

// currentStatus returns the current connection status.
func (m *connectionManager) currentStatus() ConnectionStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// enqueueOffline buffers fn to run once the connection becomes ready,
// per spec.md §4.8's offline-queue option. When
// EnableOfflineQueue is false the caller should instead fail
// immediately rather than calling this method.
func (m *connectionManager) enqueueOffline(fn func()) {
	m.offlineMu.Lock()
	m.offlineQueue = append(m.offlineQueue, fn)
	m.offlineMu.Unlock()
}

func (m *connectionManager) drainOfflineQueue() {
	m.offlineMu.Lock()
	queue := m.offlineQueue
	m.offlineQueue = nil
	m.offlineMu.Unlock()
	for _, fn := range queue {
		fn()
	}
}

// close transitions to disconnecting then end, emitting "end".
func (m *connectionManager) close() error {
	m.mu.Lock()
	conn := m.conn
	m.status = StatusDisconnecting
	m.mu.Unlock()

	var err error
	if conn != nil {
		err = conn.Close()
	}

	m.mu.Lock()
	m.status = StatusEnd
	m.conn = nil
	m.mu.Unlock()
	m.events.emit(ConnectionEvent{Name: "end", Status: StatusEnd})
	return err
}

// waitReady blocks until the connection is ready or timeout elapses.
func (m *connectionManager) waitReady(timeout time.Duration) bool {
	select {
	case <-m.ready:
		return true
	case <-time.After(timeout):
		return false
	}
}
