// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: github.com/bassosimone/nop config.go — same
// "struct with sensible defaults set by a constructor" shape,
// generalized from {Dialer, ErrClassifier, TimeNow} to the full
// connection-configuration surface spec.md §6 enumerates.

package ioredis

import "time"

// ReadFromPolicy selects which nodes a cluster-aware client may read
// from, per spec.md §4.9.
type ReadFromPolicy int

const (
	// ReadFromPrimary routes all reads to the primary node (default).
	ReadFromPrimary ReadFromPolicy = iota

	// ReadFromPreferReplica routes reads to a replica when one is
	// available, falling back to the primary otherwise.
	ReadFromPreferReplica

	// ReadFromAZAffinity routes reads to the lowest-latency node,
	// primary or replica. [Config.ClientAZ] is not consulted, so the
	// node's availability zone plays no part in the choice.
	ReadFromAZAffinity
)

// Config holds the connection configuration for a standalone [*Client].
//
// Pass this to [NewClient]; all fields have sensible defaults set by
// [NewConfig]. Fields correspond 1:1 to the configuration options
// enumerated in spec.md §6; unknown keys passed via [ConfigFromMap] are
// silently ignored, matching ioredis's own behavior.
type Config struct {
	// Host is the server hostname or address. Ignored when Nodes is
	// non-empty (cluster mode; see [ClusterConfig]).
	Host string

	// Port is the server port. Defaults to 6379.
	Port int

	// Username authenticates via Redis ACL, if non-empty.
	Username string

	// Password authenticates via AUTH/ACL, if non-empty.
	Password string

	// UseTLS enables a TLS connection to the server.
	UseTLS bool

	// DB selects the logical database index (standalone only).
	DB int

	// ClientName is sent via CLIENT SETNAME on connect, if non-empty.
	ClientName string

	// LazyConnect defers opening the connection until the first command,
	// per spec.md §4.8. When false (default) the client connects on
	// construction, with the connect attempt scheduled to run after the
	// constructor returns so listeners registered immediately afterwards
	// observe it.
	LazyConnect bool

	// EnableOfflineQueue buffers commands issued while the client is in
	// the "connecting" state and flushes them once "ready", instead of
	// failing them immediately. Defaults to true, matching ioredis.
	EnableOfflineQueue bool

	// EnableReadFromReplicas is a convenience flag equivalent to setting
	// ReadFrom to [ReadFromPreferReplica].
	EnableReadFromReplicas bool

	// ReadFrom selects the read routing policy. Ignored for standalone
	// clients with a single node.
	ReadFrom ReadFromPolicy

	// ClientAZ is this client's availability zone. It is carried in the
	// configuration but not read by the go-redis driver wiring,
	// including for [ReadFromAZAffinity].
	ClientAZ string

	// RequestTimeout bounds a single command's round trip.
	RequestTimeout time.Duration

	// ConnectTimeout bounds the initial connection attempt.
	ConnectTimeout time.Duration

	// MaxRetriesPerRequest bounds the bounded retry loop around driver
	// calls that fail with a transient classification, cluster MOVED/ASK
	// replies included (see SPEC_FULL.md §4). A value of 0 disables
	// retries.
	MaxRetriesPerRequest int

	// RetryDelayOnFailover is the delay between retries of the above loop.
	RetryDelayOnFailover time.Duration

	// ScanAllowNonCoveredSlots is accepted and carried in the
	// configuration; the go-redis driver wiring does not read it, so it
	// has no effect on how a cluster SCAN behaves when hash slots are
	// uncovered.
	ScanAllowNonCoveredSlots bool

	// EnableEventBasedPubSub selects the polling-loop pub/sub bridge
	// design described in spec.md §4.7. This is the only supported mode;
	// the field exists so configuration built from legacy call sites
	// that set it explicitly does not fail to parse.
	EnableEventBasedPubSub bool

	// Logger receives structured logs. Defaults to [DefaultSLogger].
	Logger SLogger

	// ErrClassifier classifies driver errors for logging and for the
	// pub/sub bridge's failure categorization. Defaults to
	// [DefaultErrClassifier].
	ErrClassifier ErrClassifier

	// TimeNow returns the current time (configurable for testing).
	// Defaults to [time.Now].
	TimeNow func() time.Time

	// SuppressBackgroundErrors disables the panic/crash-avoidance guard
	// of spec.md §4.8 in reverse: when true, background connection
	// errors are swallowed even in the absence of an "error" listener.
	// Defaults to false, meaning such errors are logged at Error level
	// when no listener is registered (see events.go).
	SuppressBackgroundErrors bool
}

// NewConfig creates a [*Config] with sensible defaults, mirroring
// ioredis's own client defaults.
func NewConfig() *Config {
	return &Config{
		Host:                   "localhost",
		Port:                   6379,
		EnableOfflineQueue:     true,
		ReadFrom:               ReadFromPrimary,
		RequestTimeout:         5 * time.Second,
		ConnectTimeout:         10 * time.Second,
		MaxRetriesPerRequest:   3,
		RetryDelayOnFailover:   100 * time.Millisecond,
		EnableEventBasedPubSub: true,
		Logger:                 DefaultSLogger(),
		ErrClassifier:          DefaultErrClassifier,
		TimeNow:                time.Now,
	}
}

// ClusterConfig holds the connection configuration for a cluster-aware
// [*ClusterClient]. It shares every field [Config] exposes beyond the
// single Host/Port/DB, plus a node address list.
type ClusterConfig struct {
	// Nodes is the initial cluster node address list ("host:port" pairs).
	Nodes []string

	Username                 string
	Password                 string
	UseTLS                   bool
	ClientName               string
	LazyConnect              bool
	EnableOfflineQueue       bool
	EnableReadFromReplicas   bool
	ReadFrom                 ReadFromPolicy
	ClientAZ                 string
	RequestTimeout           time.Duration
	ConnectTimeout           time.Duration
	MaxRetriesPerRequest     int
	RetryDelayOnFailover     time.Duration
	ScanAllowNonCoveredSlots bool
	EnableEventBasedPubSub   bool
	Logger                   SLogger
	ErrClassifier            ErrClassifier
	TimeNow                  func() time.Time
	SuppressBackgroundErrors bool
}

// NewClusterConfig creates a [*ClusterConfig] with sensible defaults.
func NewClusterConfig(nodes ...string) *ClusterConfig {
	return &ClusterConfig{
		Nodes:                  nodes,
		EnableOfflineQueue:     true,
		ReadFrom:               ReadFromPrimary,
		RequestTimeout:         5 * time.Second,
		ConnectTimeout:         10 * time.Second,
		MaxRetriesPerRequest:   3,
		RetryDelayOnFailover:   100 * time.Millisecond,
		EnableEventBasedPubSub: true,
		Logger:                 DefaultSLogger(),
		ErrClassifier:          DefaultErrClassifier,
		TimeNow:                time.Now,
	}
}

// ConfigFromMap builds a [*Config] from a generic option bag, the shape
// legacy call sites (and queue libraries that forward their own options
// object) construct clients from. Unknown keys are ignored, matching
// ioredis's documented behavior.
func ConfigFromMap(opts map[string]any) *Config {
	cfg := NewConfig()
	if v, ok := opts["host"].(string); ok {
		cfg.Host = v
	}
	if v, ok := toInt(opts["port"]); ok {
		cfg.Port = v
	}
	if v, ok := opts["username"].(string); ok {
		cfg.Username = v
	}
	if v, ok := opts["password"].(string); ok {
		cfg.Password = v
	}
	if v, ok := opts["useTLS"].(bool); ok {
		cfg.UseTLS = v
	} else if v, ok := opts["tls"].(bool); ok {
		cfg.UseTLS = v
	}
	if v, ok := toInt(opts["db"]); ok {
		cfg.DB = v
	}
	if v, ok := opts["clientName"].(string); ok {
		cfg.ClientName = v
	}
	if v, ok := opts["lazyConnect"].(bool); ok {
		cfg.LazyConnect = v
	}
	if v, ok := opts["enableOfflineQueue"].(bool); ok {
		cfg.EnableOfflineQueue = v
	}
	if v, ok := opts["enableReadFromReplicas"].(bool); ok {
		cfg.EnableReadFromReplicas = v
		if v {
			cfg.ReadFrom = ReadFromPreferReplica
		}
	}
	if v, ok := opts["readFrom"].(string); ok {
		cfg.ReadFrom = parseReadFrom(v)
	}
	if v, ok := opts["clientAz"].(string); ok {
		cfg.ClientAZ = v
	}
	if v, ok := toDurationMillis(opts["requestTimeout"]); ok {
		cfg.RequestTimeout = v
	}
	if v, ok := toDurationMillis(opts["connectTimeout"]); ok {
		cfg.ConnectTimeout = v
	}
	if v, ok := toInt(opts["maxRetriesPerRequest"]); ok {
		cfg.MaxRetriesPerRequest = v
	}
	if v, ok := toDurationMillis(opts["retryDelayOnFailover"]); ok {
		cfg.RetryDelayOnFailover = v
	}
	if v, ok := opts["scanAllowNonCoveredSlots"].(bool); ok {
		cfg.ScanAllowNonCoveredSlots = v
	}
	if v, ok := opts["enableEventBasedPubSub"].(bool); ok {
		cfg.EnableEventBasedPubSub = v
	}
	return cfg
}

func parseReadFrom(v string) ReadFromPolicy {
	switch v {
	case "preferReplica":
		return ReadFromPreferReplica
	case "az-affinity":
		return ReadFromAZAffinity
	default:
		return ReadFromPrimary
	}
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

func toDurationMillis(v any) (time.Duration, bool) {
	n, ok := toInt(v)
	if !ok {
		return 0, false
	}
	return time.Duration(n) * time.Millisecond, true
}

// clone returns a shallow copy of cfg, used by [*Client.Duplicate].
func (c *Config) clone() *Config {
	dup := *c
	return &dup
}

// toAdapterConfig projects the ambient fields [*ClusterConfig] shares
// with [Config] (logging, error classification, timeouts, retry and
// offline-queue policy) into a [*Config], so [connectionManager] — which
// only needs those ambient fields, not Host/Port/Nodes — can manage a
// cluster client's lifecycle the same way it manages a standalone one.
func (cc *ClusterConfig) toAdapterConfig() *Config {
	return &Config{
		Username:                 cc.Username,
		Password:                 cc.Password,
		UseTLS:                   cc.UseTLS,
		ClientName:               cc.ClientName,
		LazyConnect:              cc.LazyConnect,
		EnableOfflineQueue:       cc.EnableOfflineQueue,
		EnableReadFromReplicas:   cc.EnableReadFromReplicas,
		ReadFrom:                 cc.ReadFrom,
		ClientAZ:                 cc.ClientAZ,
		RequestTimeout:           cc.RequestTimeout,
		ConnectTimeout:           cc.ConnectTimeout,
		MaxRetriesPerRequest:     cc.MaxRetriesPerRequest,
		RetryDelayOnFailover:     cc.RetryDelayOnFailover,
		ScanAllowNonCoveredSlots: cc.ScanAllowNonCoveredSlots,
		EnableEventBasedPubSub:   cc.EnableEventBasedPubSub,
		Logger:                   cc.Logger,
		ErrClassifier:            cc.ErrClassifier,
		TimeNow:                  cc.TimeNow,
		SuppressBackgroundErrors: cc.SuppressBackgroundErrors,
	}
}
