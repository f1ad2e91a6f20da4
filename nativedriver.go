// SPDX-License-Identifier: GPL-3.0-or-later

package ioredis

import (
	"context"
	"time"
)

// This file defines the native-driver contract referenced throughout
// spec.md §6: "must provide typed methods for the command families in
// §2, a non-atomic and an atomic batch builder, a compiled-script type
// with hash accessor and invoke method, a pub/sub subscription
// configuration at connection time plus a 'get next message' method,
// and cluster address/readfrom parameters."
//
// The native driver is an external collaborator (spec.md §1 Out of
// scope: "the underlying native driver itself and its transport"). The
// Command Surface (strings.go, hashes.go, ...) talks only to the
// interfaces below, never to a concrete client type — the same
// dependency-inversion shape the teacher package uses for [Dialer] and
// [TLSEngine]. nativedriver_goredis.go is the only file permitted to
// import github.com/redis/go-redis/v9.

// NativeExpiry is the structured expiry record produced by the
// Parameter Translator for SET/SETEX/PSETEX/GETEX and consumed by the
// native driver, per spec.md §4.2's SET row.
type NativeExpiry struct {
	// Unit is one of "EX", "PX", "EXAT", "PXAT". Zero value means no
	// expiry was requested.
	Unit string
	// Count is the expiry value in Unit's granularity.
	Count int64
	// KeepTTL requests KEEPTTL instead of a new expiry.
	KeepTTL bool
}

// NativeSetOptions is the structured option record SET decodes into.
type NativeSetOptions struct {
	Expiry       NativeExpiry
	OnlyIfExists bool // XX
	OnlyIfAbsent bool // NX
	ReturnOld    bool // GET
}

// NativeSetResult is SET's structured result: Ok is true when the
// driver confirms success ("OK"); Old carries the previous value when
// ReturnOld was requested and present.
type NativeSetResult struct {
	Ok      bool
	Old     []byte
	HadOld  bool
}

// NativeZMember is one (member, score) pair, used by ZADD and by every
// sorted-set range/result method.
type NativeZMember struct {
	Member []byte
	Score  float64
}

// NativeZAddOptions is ZADD's structured option record.
type NativeZAddOptions struct {
	OnlyIfExists bool // XX
	OnlyIfAbsent bool // NX
	Changed      bool // CH
	Increment    bool // INCR
}

// NativeRangeBoundary is a sorted-set score or lex boundary, already
// normalized to ascending order for reverse ranges per spec.md §4.4.
type NativeRangeBoundary struct {
	Value     string
	Exclusive bool
	Infinite  int // -1 for -inf/-, +1 for +inf/+, 0 otherwise
}

// NativeRangeOptions bounds a ZRANGEBYSCORE/ZRANGEBYLEX-family call.
type NativeRangeOptions struct {
	Min, Max    NativeRangeBoundary
	Reverse     bool
	WithScores  bool
	HasLimit    bool
	Offset      int64
	Count       int64
}

// NativeTrimOptions is the MAXLEN/MINID trim record shared by XADD and
// XTRIM, per spec.md §4.2.
type NativeTrimOptions struct {
	Enabled      bool
	ByMinID      bool // MINID instead of MAXLEN
	Approx       bool // "~" instead of "="
	Threshold    string
	HasLimit     bool
	Limit        int64
}

// NativeXAddOptions is XADD's structured option record.
type NativeXAddOptions struct {
	MakeStream bool // !NOMKSTREAM
	ID         string // empty means "*"
	Trim       NativeTrimOptions
	Fields     [][2]string
}

// NativeStreamEntry is one entry returned by XRANGE/XREAD/XREADGROUP,
// before Result Translator flattening (spec.md §3, §4.3).
type NativeStreamEntry struct {
	ID     string
	Fields [][2]string
}

// NativeXReadOptions is XREAD/XREADGROUP's structured option record.
type NativeXReadOptions struct {
	Streams      map[string]string // key -> id
	Order        []string          // preserves key insertion order
	Count        int64
	HasCount     bool
	Block        time.Duration
	HasBlock     bool
	NoAck        bool
	Group        string
	Consumer     string
}

// NativeScanCursor is the opaque cluster/standalone scan cursor
// abstraction of spec.md §3 ("Cluster Scan Cursor... opaque handle").
type NativeScanCursor struct {
	Cursor uint64
	Done   bool
}

// NativeCommander is the native driver's typed, per-family command
// surface. Every method corresponds to one command or a small, closely
// related command family; argument and return shapes are the driver's
// native (non-ioredis) shapes, already structured rather than variadic.
type NativeCommander interface {
	// Strings
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, opts NativeSetOptions) (NativeSetResult, error)
	MSet(ctx context.Context, pairs [][2][]byte) error
	MGet(ctx context.Context, keys []string) ([][]byte, []bool, error)
	Append(ctx context.Context, key string, value []byte) (int64, error)
	Incr(ctx context.Context, key string) (int64, error)
	IncrBy(ctx context.Context, key string, delta int64) (int64, error)
	Decr(ctx context.Context, key string) (int64, error)
	GetDel(ctx context.Context, key string) ([]byte, bool, error)

	// Hashes
	HGet(ctx context.Context, key, field string) ([]byte, bool, error)
	HSet(ctx context.Context, key string, pairs [][2][]byte) (int64, error)
	HGetAll(ctx context.Context, key string) ([][2][]byte, error)
	HDel(ctx context.Context, key string, fields []string) (int64, error)
	HExists(ctx context.Context, key, field string) (bool, error)
	HMGet(ctx context.Context, key string, fields []string) ([][]byte, []bool, error)
	HIncrBy(ctx context.Context, key, field string, delta int64) (int64, error)

	// Lists
	LPush(ctx context.Context, key string, values [][]byte) (int64, error)
	RPush(ctx context.Context, key string, values [][]byte) (int64, error)
	LPop(ctx context.Context, key string, count int, hasCount bool) ([][]byte, error)
	RPop(ctx context.Context, key string, count int, hasCount bool) ([][]byte, error)
	LLen(ctx context.Context, key string) (int64, error)
	LRange(ctx context.Context, key string, start, stop int64) ([][]byte, error)
	RPopLPush(ctx context.Context, source, destination string) ([]byte, bool, error)

	// Sets
	SAdd(ctx context.Context, key string, members [][]byte) (int64, error)
	SRem(ctx context.Context, key string, members [][]byte) (int64, error)
	SMembers(ctx context.Context, key string) ([][]byte, error)
	SIsMember(ctx context.Context, key string, member []byte) (bool, error)
	SCard(ctx context.Context, key string) (int64, error)

	// Sorted sets
	ZAdd(ctx context.Context, key string, opts NativeZAddOptions, members []NativeZMember) (float64, error)
	ZScore(ctx context.Context, key string, member []byte) (float64, bool, error)
	ZRem(ctx context.Context, key string, members [][]byte) (int64, error)
	ZCard(ctx context.Context, key string) (int64, error)
	ZRange(ctx context.Context, key string, start, stop int64, withScores bool) ([]NativeZMember, error)
	ZRangeByScore(ctx context.Context, key string, opts NativeRangeOptions) ([]NativeZMember, error)
	ZRangeByLex(ctx context.Context, key string, opts NativeRangeOptions) ([][]byte, error)

	// Streams
	XAdd(ctx context.Context, key string, opts NativeXAddOptions) (string, bool, error)
	XRange(ctx context.Context, key, start, stop string, count int64, hasCount bool) ([]NativeStreamEntry, error)
	XRevRange(ctx context.Context, key, start, stop string, count int64, hasCount bool) ([]NativeStreamEntry, error)
	XRead(ctx context.Context, opts NativeXReadOptions) (map[string][]NativeStreamEntry, error)
	XTrim(ctx context.Context, key string, trim NativeTrimOptions) (int64, error)
	XGroupCreate(ctx context.Context, key, group, id string, mkstream bool) error
	XGroupDestroy(ctx context.Context, key, group string) error
	XGroupCreateConsumer(ctx context.Context, key, group, consumer string) error
	XGroupDelConsumer(ctx context.Context, key, group, consumer string) (int64, error)
	XGroupSetID(ctx context.Context, key, group, id string, entriesRead int64, hasEntriesRead bool) error

	// Keys
	Del(ctx context.Context, keys []string) (int64, error)
	Exists(ctx context.Context, keys []string) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	TTL(ctx context.Context, key string) (time.Duration, error)
	Persist(ctx context.Context, key string) (bool, error)
	Type(ctx context.Context, key string) (string, error)
	Rename(ctx context.Context, key, newKey string) error
	Scan(ctx context.Context, cursor NativeScanCursor, match string, count int64) ([]string, NativeScanCursor, error)

	// Server / admin / raw
	Ping(ctx context.Context) error
	DBSize(ctx context.Context) (int64, error)
	Info(ctx context.Context, section string) (string, error)
	Time(ctx context.Context) (time.Time, error)
	LastSave(ctx context.Context) (time.Time, error)
	ClientID(ctx context.Context) (int64, error)
	Echo(ctx context.Context, message []byte) ([]byte, error)
	Do(ctx context.Context, args ...any) (any, error)
}

// NativeBatcher is the non-atomic/atomic batch builder contract of
// spec.md §4.5. A batch accumulates raw RESP command vectors without
// executing them until Exec; this mirrors how the adapter's own
// Pipeline/Transaction buffer stores `(method_name, args)` tuples
// (spec.md §3) and replays them as a single round trip, rather than
// requiring a second, queue-aware variant of every [NativeCommander]
// method.
type NativeBatcher interface {
	// QueueRaw appends one RESP command (e.g. "SET", key, value, "EX",
	// "10") to the batch, in the order Exec will return results.
	QueueRaw(ctx context.Context, args ...any)
	// Exec executes every buffered command, in order, returning one
	// (result, error) per call, or a batch-level error when the whole
	// batch failed to execute (e.g. connection lost mid-flight).
	Exec(ctx context.Context) ([]NativeReply, error)
	// Discard drops the buffer without executing it.
	Discard()
}

// NativeReply is one buffered call's outcome inside a batch.
type NativeReply struct {
	Value any
	Err   error
}

// NativeScript is the compiled-script type of spec.md §4.6: "a
// compiled-script type with hash accessor and invoke method", cached by
// the adapter's scripting subsystem keyed by SHA-1.
type NativeScript interface {
	// Hash returns the script's SHA-1, matching the server's own
	// SCRIPT LOAD hash.
	Hash() string
	// Eval sends the script source unconditionally (EVAL semantics).
	Eval(ctx context.Context, conn NativeConn, keys []string, args []any) (any, error)
	// EvalSha invokes the cached compiled handle (EVALSHA semantics),
	// failing with a NOSCRIPT-classified error if the server has not
	// seen this script.
	EvalSha(ctx context.Context, conn NativeConn, keys []string, args []any) (any, error)
	// Load uploads the script via SCRIPT LOAD and returns its hash.
	Load(ctx context.Context, conn NativeConn) (string, error)
}

// NativeMessage is one pub/sub message drained from the polling loop,
// per spec.md §4.7.
type NativeMessage struct {
	// Kind is "message", "pmessage", or "smessage".
	Kind string
	// Channel is the channel the message arrived on.
	Channel string
	// Pattern is set only for Kind == "pmessage".
	Pattern string
	// Payload is the raw payload bytes.
	Payload []byte
}

// NativeSubscriber is the native driver's subscriber-connection
// contract: subscriptions are declared when the connection is created
// (spec.md §4.7 "native model"), and messages are drained one at a
// time by ReceiveMessage.
type NativeSubscriber interface {
	// ReceiveMessage blocks until the next message arrives, the context
	// is done, or the subscriber is closed. Returns (nil, err) on
	// closure or cancellation.
	ReceiveMessage(ctx context.Context) (*NativeMessage, error)
	Close() error
}

// NativeConn is the full native-driver connection contract the adapter
// depends on: the typed command surface, batch builders, script
// construction, and subscriber construction.
type NativeConn interface {
	NativeCommander

	Pipeline() NativeBatcher
	TxPipeline() NativeBatcher

	NewScript(source string) NativeScript

	// NewSubscriber opens a dedicated subscriber connection declaring
	// the given exact/pattern/sharded channel sets up front, per
	// spec.md §4.7's "native model".
	NewSubscriber(ctx context.Context, exact, patterns, sharded []string) (NativeSubscriber, error)

	Publish(ctx context.Context, channel string, payload []byte) (int64, error)
	SPublish(ctx context.Context, channel string, payload []byte) (int64, error)

	PubSubChannels(ctx context.Context, pattern string) ([]string, error)
	PubSubNumSub(ctx context.Context, channels []string) (map[string]int64, error)

	Watch(ctx context.Context, keys []string) error
	Unwatch(ctx context.Context) error

	Close() error
}

// NativeClusterConn extends [NativeConn] with the cluster-scoped
// concerns of spec.md §4.9: per-node aggregation and a cluster-wide
// scan driven by a plain numeric [NativeScanCursor].
type NativeClusterConn interface {
	NativeConn

	// ForEachNode invokes fn once per cluster node, collecting results
	// for DBSIZE/LASTSAVE/INFO/TIME/CLIENT ID/ECHO aggregation.
	ForEachNode(ctx context.Context, fn func(ctx context.Context, node NativeConn) error) error

	// ClusterScan continues a cluster-wide scan from cursor, which may
	// be the zero [NativeScanCursor] to start.
	ClusterScan(ctx context.Context, cursor NativeScanCursor, match string, count int64) ([]string, NativeScanCursor, error)
}
