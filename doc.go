// SPDX-License-Identifier: GPL-3.0-or-later

// Package ioredis is a Go-native adapter exposing an ioredis-compatible
// calling convention over github.com/redis/go-redis/v9.
//
// # Core Abstraction
//
// [Client] wraps one standalone native connection and implements the
// full command surface (strings, hashes, lists, sets, sorted sets,
// streams, geo, HyperLogLog, bit operations, keys, server commands),
// the Pipeline and Transaction buffered-command builders, the
// Scripting Subsystem (EVAL/EVALSHA with a local SHA1 cache and
// singleflight-deduplicated raw EVALSHA attempts for uncached SHAs),
// and the Pub/Sub Bridge.
// [ClusterClient] embeds [Client] and adds cluster-scoped aggregation
// (DBSIZE, LASTSAVE, TIME, CLIENT ID, ECHO, INFO) plus an opaque
// cluster-wide SCAN cursor.
//
// Every command method accepts legacy-shaped arguments (numbers,
// strings, []byte, bool) and normalizes them through the Parameter
// Translator before dispatch, then converts the native driver's reply
// shape back through the Result Translator — so callers never see
// go-redis's *Cmd types.
//
// # Native Driver Boundary
//
// [NativeConn], [NativeClusterConn], [NativeBatcher], [NativeScript],
// and [NativeSubscriber] in nativedriver.go define the entire contract
// the adapter needs from a driver. nativedriver_goredis.go is the only
// file that imports go-redis; every other file talks exclusively to
// these interfaces, so a different driver could be substituted behind
// them without touching the command surface.
//
// Command families too rare to justify widening that contract — geo,
// HyperLogLog, bit operations — go through the raw command escape
// valve ([Client.Call]) instead.
//
// # Connection Lifecycle
//
// [connectionManager] owns lazy-vs-eager connect, the offline command
// queue, and the disconnected -> connecting -> connected -> ready ->
// disconnecting -> end status machine, emitting "connect", "ready",
// "end", and "error" events via [Client.On]. Background connection
// errors without a registered "error" listener are logged rather than
// crashing the process, matching ioredis's own behavior.
//
// # Observability
//
// Structured logging goes through [SLogger] (compatible with
// [log/slog]); the default discards everything. [ErrClassifier]
// classifies driver errors into "closed"/"transient"/"fatal" for
// logging and for the pub/sub bridge's poll-loop failure handling, and
// separately backs the heuristic [Transaction.Exec] uses to detect an
// aborted MULTI/EXEC. Use [NewSpanID] to correlate the log entries of
// one operation (a command dispatch, a pipeline Exec, a subscriber
// rebuild) with a time-ordered UUIDv7, attached via [slog.Logger.With].
//
// # Configuration
//
// [Config] and [ClusterConfig] hold every connection option, each with
// sensible defaults from [NewConfig] / [NewClusterConfig] mirroring
// ioredis's own client defaults. [ConfigFromMap] accepts the
// string-keyed option maps legacy call sites build, silently ignoring
// unknown keys.
package ioredis
