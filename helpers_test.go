// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: github.com/bassosimone/nop helpers_test.go's
// "FuncConn"/"FuncHandler" stub-by-function-fields idiom (originally
// netstub/slogstub/tlsstub), generalized into a single in-package
// fakeNativeConn implementing [NativeConn] for command-surface,
// pipeline, transaction, and scripting tests.

package ioredis

import (
	"context"
	"log/slog"
	"time"
)

// newCapturingLogger mirrors the teacher's helper of the same name,
// generalized to the adapter's [SLogger] interface instead of *slog.Logger.
func newCapturingLogger() (*capturingLogger, *[]slog.Record) {
	l := &capturingLogger{}
	return l, &l.records
}

type capturingLogger struct {
	records []slog.Record
}

func (l *capturingLogger) log(level slog.Level, msg string, args ...any) {
	r := slog.NewRecord(time.Time{}, level, msg, 0)
	r.Add(args...)
	l.records = append(l.records, r)
}
func (l *capturingLogger) Debug(msg string, args ...any) { l.log(slog.LevelDebug, msg, args...) }
func (l *capturingLogger) Info(msg string, args ...any)  { l.log(slog.LevelInfo, msg, args...) }
func (l *capturingLogger) Warn(msg string, args ...any)  { l.log(slog.LevelWarn, msg, args...) }
func (l *capturingLogger) Error(msg string, args ...any) { l.log(slog.LevelError, msg, args...) }

// fakeNativeConn is a function-field stub implementing [NativeConn],
// the same "every method optional, nil means a sensible zero default"
// shape as the teacher's netstub.FuncConn. Tests set only the funcs
// they need to exercise.
type fakeNativeConn struct {
	GetFunc        func(ctx context.Context, key string) ([]byte, bool, error)
	SetFunc        func(ctx context.Context, key string, value []byte, opts NativeSetOptions) (NativeSetResult, error)
	MSetFunc       func(ctx context.Context, pairs [][2][]byte) error
	MGetFunc       func(ctx context.Context, keys []string) ([][]byte, []bool, error)
	AppendFunc     func(ctx context.Context, key string, value []byte) (int64, error)
	IncrFunc       func(ctx context.Context, key string) (int64, error)
	IncrByFunc     func(ctx context.Context, key string, delta int64) (int64, error)
	DecrFunc       func(ctx context.Context, key string) (int64, error)
	GetDelFunc     func(ctx context.Context, key string) ([]byte, bool, error)

	HGetFunc     func(ctx context.Context, key, field string) ([]byte, bool, error)
	HSetFunc     func(ctx context.Context, key string, pairs [][2][]byte) (int64, error)
	HGetAllFunc  func(ctx context.Context, key string) ([][2][]byte, error)
	HDelFunc     func(ctx context.Context, key string, fields []string) (int64, error)
	HExistsFunc  func(ctx context.Context, key, field string) (bool, error)
	HMGetFunc    func(ctx context.Context, key string, fields []string) ([][]byte, []bool, error)
	HIncrByFunc  func(ctx context.Context, key, field string, delta int64) (int64, error)

	LPushFunc     func(ctx context.Context, key string, values [][]byte) (int64, error)
	RPushFunc     func(ctx context.Context, key string, values [][]byte) (int64, error)
	LPopFunc      func(ctx context.Context, key string, count int, hasCount bool) ([][]byte, error)
	RPopFunc      func(ctx context.Context, key string, count int, hasCount bool) ([][]byte, error)
	LLenFunc      func(ctx context.Context, key string) (int64, error)
	LRangeFunc    func(ctx context.Context, key string, start, stop int64) ([][]byte, error)
	RPopLPushFunc func(ctx context.Context, source, destination string) ([]byte, bool, error)

	SAddFunc      func(ctx context.Context, key string, members [][]byte) (int64, error)
	SRemFunc      func(ctx context.Context, key string, members [][]byte) (int64, error)
	SMembersFunc  func(ctx context.Context, key string) ([][]byte, error)
	SIsMemberFunc func(ctx context.Context, key string, member []byte) (bool, error)
	SCardFunc     func(ctx context.Context, key string) (int64, error)

	ZAddFunc          func(ctx context.Context, key string, opts NativeZAddOptions, members []NativeZMember) (float64, error)
	ZScoreFunc        func(ctx context.Context, key string, member []byte) (float64, bool, error)
	ZRemFunc          func(ctx context.Context, key string, members [][]byte) (int64, error)
	ZCardFunc         func(ctx context.Context, key string) (int64, error)
	ZRangeFunc        func(ctx context.Context, key string, start, stop int64, withScores bool) ([]NativeZMember, error)
	ZRangeByScoreFunc func(ctx context.Context, key string, opts NativeRangeOptions) ([]NativeZMember, error)
	ZRangeByLexFunc   func(ctx context.Context, key string, opts NativeRangeOptions) ([][]byte, error)

	XAddFunc              func(ctx context.Context, key string, opts NativeXAddOptions) (string, bool, error)
	XRangeFunc            func(ctx context.Context, key, start, stop string, count int64, hasCount bool) ([]NativeStreamEntry, error)
	XRevRangeFunc         func(ctx context.Context, key, start, stop string, count int64, hasCount bool) ([]NativeStreamEntry, error)
	XReadFunc             func(ctx context.Context, opts NativeXReadOptions) (map[string][]NativeStreamEntry, error)
	XTrimFunc             func(ctx context.Context, key string, trim NativeTrimOptions) (int64, error)
	XGroupCreateFunc      func(ctx context.Context, key, group, id string, mkstream bool) error
	XGroupDestroyFunc     func(ctx context.Context, key, group string) error
	XGroupCreateConsumerFunc func(ctx context.Context, key, group, consumer string) error
	XGroupDelConsumerFunc func(ctx context.Context, key, group, consumer string) (int64, error)
	XGroupSetIDFunc       func(ctx context.Context, key, group, id string, entriesRead int64, hasEntriesRead bool) error

	DelFunc      func(ctx context.Context, keys []string) (int64, error)
	ExistsFunc   func(ctx context.Context, keys []string) (int64, error)
	ExpireFunc   func(ctx context.Context, key string, ttl time.Duration) (bool, error)
	TTLFunc      func(ctx context.Context, key string) (time.Duration, error)
	PersistFunc  func(ctx context.Context, key string) (bool, error)
	TypeFunc     func(ctx context.Context, key string) (string, error)
	RenameFunc   func(ctx context.Context, key, newKey string) error
	ScanFunc     func(ctx context.Context, cursor NativeScanCursor, match string, count int64) ([]string, NativeScanCursor, error)

	PingFunc     func(ctx context.Context) error
	DBSizeFunc   func(ctx context.Context) (int64, error)
	InfoFunc     func(ctx context.Context, section string) (string, error)
	TimeFunc     func(ctx context.Context) (time.Time, error)
	LastSaveFunc func(ctx context.Context) (time.Time, error)
	ClientIDFunc func(ctx context.Context) (int64, error)
	EchoFunc     func(ctx context.Context, message []byte) ([]byte, error)
	DoFunc       func(ctx context.Context, args ...any) (any, error)

	PipelineFunc       func() NativeBatcher
	TxPipelineFunc     func() NativeBatcher
	NewScriptFunc      func(source string) NativeScript
	NewSubscriberFunc  func(ctx context.Context, exact, patterns, sharded []string) (NativeSubscriber, error)
	PublishFunc        func(ctx context.Context, channel string, payload []byte) (int64, error)
	SPublishFunc       func(ctx context.Context, channel string, payload []byte) (int64, error)
	PubSubChannelsFunc func(ctx context.Context, pattern string) ([]string, error)
	PubSubNumSubFunc   func(ctx context.Context, channels []string) (map[string]int64, error)
	WatchFunc          func(ctx context.Context, keys []string) error
	UnwatchFunc        func(ctx context.Context) error
	CloseFunc          func() error
}

func (f *fakeNativeConn) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if f.GetFunc != nil {
		return f.GetFunc(ctx, key)
	}
	return nil, false, nil
}
func (f *fakeNativeConn) Set(ctx context.Context, key string, value []byte, opts NativeSetOptions) (NativeSetResult, error) {
	if f.SetFunc != nil {
		return f.SetFunc(ctx, key, value, opts)
	}
	return NativeSetResult{Ok: true}, nil
}
func (f *fakeNativeConn) MSet(ctx context.Context, pairs [][2][]byte) error {
	if f.MSetFunc != nil {
		return f.MSetFunc(ctx, pairs)
	}
	return nil
}
func (f *fakeNativeConn) MGet(ctx context.Context, keys []string) ([][]byte, []bool, error) {
	if f.MGetFunc != nil {
		return f.MGetFunc(ctx, keys)
	}
	return make([][]byte, len(keys)), make([]bool, len(keys)), nil
}
func (f *fakeNativeConn) Append(ctx context.Context, key string, value []byte) (int64, error) {
	if f.AppendFunc != nil {
		return f.AppendFunc(ctx, key, value)
	}
	return int64(len(value)), nil
}
func (f *fakeNativeConn) Incr(ctx context.Context, key string) (int64, error) {
	if f.IncrFunc != nil {
		return f.IncrFunc(ctx, key)
	}
	return 1, nil
}
func (f *fakeNativeConn) IncrBy(ctx context.Context, key string, delta int64) (int64, error) {
	if f.IncrByFunc != nil {
		return f.IncrByFunc(ctx, key, delta)
	}
	return delta, nil
}
func (f *fakeNativeConn) Decr(ctx context.Context, key string) (int64, error) {
	if f.DecrFunc != nil {
		return f.DecrFunc(ctx, key)
	}
	return -1, nil
}
func (f *fakeNativeConn) GetDel(ctx context.Context, key string) ([]byte, bool, error) {
	if f.GetDelFunc != nil {
		return f.GetDelFunc(ctx, key)
	}
	return nil, false, nil
}
func (f *fakeNativeConn) HGet(ctx context.Context, key, field string) ([]byte, bool, error) {
	if f.HGetFunc != nil {
		return f.HGetFunc(ctx, key, field)
	}
	return nil, false, nil
}
func (f *fakeNativeConn) HSet(ctx context.Context, key string, pairs [][2][]byte) (int64, error) {
	if f.HSetFunc != nil {
		return f.HSetFunc(ctx, key, pairs)
	}
	return int64(len(pairs)), nil
}
func (f *fakeNativeConn) HGetAll(ctx context.Context, key string) ([][2][]byte, error) {
	if f.HGetAllFunc != nil {
		return f.HGetAllFunc(ctx, key)
	}
	return nil, nil
}
func (f *fakeNativeConn) HDel(ctx context.Context, key string, fields []string) (int64, error) {
	if f.HDelFunc != nil {
		return f.HDelFunc(ctx, key, fields)
	}
	return int64(len(fields)), nil
}
func (f *fakeNativeConn) HExists(ctx context.Context, key, field string) (bool, error) {
	if f.HExistsFunc != nil {
		return f.HExistsFunc(ctx, key, field)
	}
	return false, nil
}
func (f *fakeNativeConn) HMGet(ctx context.Context, key string, fields []string) ([][]byte, []bool, error) {
	if f.HMGetFunc != nil {
		return f.HMGetFunc(ctx, key, fields)
	}
	return make([][]byte, len(fields)), make([]bool, len(fields)), nil
}
func (f *fakeNativeConn) HIncrBy(ctx context.Context, key, field string, delta int64) (int64, error) {
	if f.HIncrByFunc != nil {
		return f.HIncrByFunc(ctx, key, field, delta)
	}
	return delta, nil
}
func (f *fakeNativeConn) LPush(ctx context.Context, key string, values [][]byte) (int64, error) {
	if f.LPushFunc != nil {
		return f.LPushFunc(ctx, key, values)
	}
	return int64(len(values)), nil
}
func (f *fakeNativeConn) RPush(ctx context.Context, key string, values [][]byte) (int64, error) {
	if f.RPushFunc != nil {
		return f.RPushFunc(ctx, key, values)
	}
	return int64(len(values)), nil
}
func (f *fakeNativeConn) LPop(ctx context.Context, key string, count int, hasCount bool) ([][]byte, error) {
	if f.LPopFunc != nil {
		return f.LPopFunc(ctx, key, count, hasCount)
	}
	return nil, nil
}
func (f *fakeNativeConn) RPop(ctx context.Context, key string, count int, hasCount bool) ([][]byte, error) {
	if f.RPopFunc != nil {
		return f.RPopFunc(ctx, key, count, hasCount)
	}
	return nil, nil
}
func (f *fakeNativeConn) LLen(ctx context.Context, key string) (int64, error) {
	if f.LLenFunc != nil {
		return f.LLenFunc(ctx, key)
	}
	return 0, nil
}
func (f *fakeNativeConn) LRange(ctx context.Context, key string, start, stop int64) ([][]byte, error) {
	if f.LRangeFunc != nil {
		return f.LRangeFunc(ctx, key, start, stop)
	}
	return nil, nil
}
func (f *fakeNativeConn) RPopLPush(ctx context.Context, source, destination string) ([]byte, bool, error) {
	if f.RPopLPushFunc != nil {
		return f.RPopLPushFunc(ctx, source, destination)
	}
	return nil, false, nil
}
func (f *fakeNativeConn) SAdd(ctx context.Context, key string, members [][]byte) (int64, error) {
	if f.SAddFunc != nil {
		return f.SAddFunc(ctx, key, members)
	}
	return int64(len(members)), nil
}
func (f *fakeNativeConn) SRem(ctx context.Context, key string, members [][]byte) (int64, error) {
	if f.SRemFunc != nil {
		return f.SRemFunc(ctx, key, members)
	}
	return int64(len(members)), nil
}
func (f *fakeNativeConn) SMembers(ctx context.Context, key string) ([][]byte, error) {
	if f.SMembersFunc != nil {
		return f.SMembersFunc(ctx, key)
	}
	return nil, nil
}
func (f *fakeNativeConn) SIsMember(ctx context.Context, key string, member []byte) (bool, error) {
	if f.SIsMemberFunc != nil {
		return f.SIsMemberFunc(ctx, key, member)
	}
	return false, nil
}
func (f *fakeNativeConn) SCard(ctx context.Context, key string) (int64, error) {
	if f.SCardFunc != nil {
		return f.SCardFunc(ctx, key)
	}
	return 0, nil
}
func (f *fakeNativeConn) ZAdd(ctx context.Context, key string, opts NativeZAddOptions, members []NativeZMember) (float64, error) {
	if f.ZAddFunc != nil {
		return f.ZAddFunc(ctx, key, opts, members)
	}
	return float64(len(members)), nil
}
func (f *fakeNativeConn) ZScore(ctx context.Context, key string, member []byte) (float64, bool, error) {
	if f.ZScoreFunc != nil {
		return f.ZScoreFunc(ctx, key, member)
	}
	return 0, false, nil
}
func (f *fakeNativeConn) ZRem(ctx context.Context, key string, members [][]byte) (int64, error) {
	if f.ZRemFunc != nil {
		return f.ZRemFunc(ctx, key, members)
	}
	return int64(len(members)), nil
}
func (f *fakeNativeConn) ZCard(ctx context.Context, key string) (int64, error) {
	if f.ZCardFunc != nil {
		return f.ZCardFunc(ctx, key)
	}
	return 0, nil
}
func (f *fakeNativeConn) ZRange(ctx context.Context, key string, start, stop int64, withScores bool) ([]NativeZMember, error) {
	if f.ZRangeFunc != nil {
		return f.ZRangeFunc(ctx, key, start, stop, withScores)
	}
	return nil, nil
}
func (f *fakeNativeConn) ZRangeByScore(ctx context.Context, key string, opts NativeRangeOptions) ([]NativeZMember, error) {
	if f.ZRangeByScoreFunc != nil {
		return f.ZRangeByScoreFunc(ctx, key, opts)
	}
	return nil, nil
}
func (f *fakeNativeConn) ZRangeByLex(ctx context.Context, key string, opts NativeRangeOptions) ([][]byte, error) {
	if f.ZRangeByLexFunc != nil {
		return f.ZRangeByLexFunc(ctx, key, opts)
	}
	return nil, nil
}
func (f *fakeNativeConn) XAdd(ctx context.Context, key string, opts NativeXAddOptions) (string, bool, error) {
	if f.XAddFunc != nil {
		return f.XAddFunc(ctx, key, opts)
	}
	return "0-1", true, nil
}
func (f *fakeNativeConn) XRange(ctx context.Context, key, start, stop string, count int64, hasCount bool) ([]NativeStreamEntry, error) {
	if f.XRangeFunc != nil {
		return f.XRangeFunc(ctx, key, start, stop, count, hasCount)
	}
	return nil, nil
}
func (f *fakeNativeConn) XRevRange(ctx context.Context, key, start, stop string, count int64, hasCount bool) ([]NativeStreamEntry, error) {
	if f.XRevRangeFunc != nil {
		return f.XRevRangeFunc(ctx, key, start, stop, count, hasCount)
	}
	return nil, nil
}
func (f *fakeNativeConn) XRead(ctx context.Context, opts NativeXReadOptions) (map[string][]NativeStreamEntry, error) {
	if f.XReadFunc != nil {
		return f.XReadFunc(ctx, opts)
	}
	return nil, nil
}
func (f *fakeNativeConn) XTrim(ctx context.Context, key string, trim NativeTrimOptions) (int64, error) {
	if f.XTrimFunc != nil {
		return f.XTrimFunc(ctx, key, trim)
	}
	return 0, nil
}
func (f *fakeNativeConn) XGroupCreate(ctx context.Context, key, group, id string, mkstream bool) error {
	if f.XGroupCreateFunc != nil {
		return f.XGroupCreateFunc(ctx, key, group, id, mkstream)
	}
	return nil
}
func (f *fakeNativeConn) XGroupDestroy(ctx context.Context, key, group string) error {
	if f.XGroupDestroyFunc != nil {
		return f.XGroupDestroyFunc(ctx, key, group)
	}
	return nil
}
func (f *fakeNativeConn) XGroupCreateConsumer(ctx context.Context, key, group, consumer string) error {
	if f.XGroupCreateConsumerFunc != nil {
		return f.XGroupCreateConsumerFunc(ctx, key, group, consumer)
	}
	return nil
}
func (f *fakeNativeConn) XGroupDelConsumer(ctx context.Context, key, group, consumer string) (int64, error) {
	if f.XGroupDelConsumerFunc != nil {
		return f.XGroupDelConsumerFunc(ctx, key, group, consumer)
	}
	return 0, nil
}
func (f *fakeNativeConn) XGroupSetID(ctx context.Context, key, group, id string, entriesRead int64, hasEntriesRead bool) error {
	if f.XGroupSetIDFunc != nil {
		return f.XGroupSetIDFunc(ctx, key, group, id, entriesRead, hasEntriesRead)
	}
	return nil
}
func (f *fakeNativeConn) Del(ctx context.Context, keys []string) (int64, error) {
	if f.DelFunc != nil {
		return f.DelFunc(ctx, keys)
	}
	return int64(len(keys)), nil
}
func (f *fakeNativeConn) Exists(ctx context.Context, keys []string) (int64, error) {
	if f.ExistsFunc != nil {
		return f.ExistsFunc(ctx, keys)
	}
	return 0, nil
}
func (f *fakeNativeConn) Expire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if f.ExpireFunc != nil {
		return f.ExpireFunc(ctx, key, ttl)
	}
	return true, nil
}
func (f *fakeNativeConn) TTL(ctx context.Context, key string) (time.Duration, error) {
	if f.TTLFunc != nil {
		return f.TTLFunc(ctx, key)
	}
	return -2, nil
}
func (f *fakeNativeConn) Persist(ctx context.Context, key string) (bool, error) {
	if f.PersistFunc != nil {
		return f.PersistFunc(ctx, key)
	}
	return false, nil
}
func (f *fakeNativeConn) Type(ctx context.Context, key string) (string, error) {
	if f.TypeFunc != nil {
		return f.TypeFunc(ctx, key)
	}
	return "none", nil
}
func (f *fakeNativeConn) Rename(ctx context.Context, key, newKey string) error {
	if f.RenameFunc != nil {
		return f.RenameFunc(ctx, key, newKey)
	}
	return nil
}
func (f *fakeNativeConn) Scan(ctx context.Context, cursor NativeScanCursor, match string, count int64) ([]string, NativeScanCursor, error) {
	if f.ScanFunc != nil {
		return f.ScanFunc(ctx, cursor, match, count)
	}
	return nil, NativeScanCursor{Done: true}, nil
}
func (f *fakeNativeConn) Ping(ctx context.Context) error {
	if f.PingFunc != nil {
		return f.PingFunc(ctx)
	}
	return nil
}
func (f *fakeNativeConn) DBSize(ctx context.Context) (int64, error) {
	if f.DBSizeFunc != nil {
		return f.DBSizeFunc(ctx)
	}
	return 0, nil
}
func (f *fakeNativeConn) Info(ctx context.Context, section string) (string, error) {
	if f.InfoFunc != nil {
		return f.InfoFunc(ctx, section)
	}
	return "", nil
}
func (f *fakeNativeConn) Time(ctx context.Context) (time.Time, error) {
	if f.TimeFunc != nil {
		return f.TimeFunc(ctx)
	}
	return time.Time{}, nil
}
func (f *fakeNativeConn) LastSave(ctx context.Context) (time.Time, error) {
	if f.LastSaveFunc != nil {
		return f.LastSaveFunc(ctx)
	}
	return time.Time{}, nil
}
func (f *fakeNativeConn) ClientID(ctx context.Context) (int64, error) {
	if f.ClientIDFunc != nil {
		return f.ClientIDFunc(ctx)
	}
	return 0, nil
}
func (f *fakeNativeConn) Echo(ctx context.Context, message []byte) ([]byte, error) {
	if f.EchoFunc != nil {
		return f.EchoFunc(ctx, message)
	}
	return message, nil
}
func (f *fakeNativeConn) Do(ctx context.Context, args ...any) (any, error) {
	if f.DoFunc != nil {
		return f.DoFunc(ctx, args...)
	}
	return nil, nil
}
func (f *fakeNativeConn) Pipeline() NativeBatcher {
	if f.PipelineFunc != nil {
		return f.PipelineFunc()
	}
	return &fakeBatcher{}
}
func (f *fakeNativeConn) TxPipeline() NativeBatcher {
	if f.TxPipelineFunc != nil {
		return f.TxPipelineFunc()
	}
	return &fakeBatcher{}
}
func (f *fakeNativeConn) NewScript(source string) NativeScript {
	if f.NewScriptFunc != nil {
		return f.NewScriptFunc(source)
	}
	return &fakeScript{source: source}
}
func (f *fakeNativeConn) NewSubscriber(ctx context.Context, exact, patterns, sharded []string) (NativeSubscriber, error) {
	if f.NewSubscriberFunc != nil {
		return f.NewSubscriberFunc(ctx, exact, patterns, sharded)
	}
	return &fakeSubscriber{}, nil
}
func (f *fakeNativeConn) Publish(ctx context.Context, channel string, payload []byte) (int64, error) {
	if f.PublishFunc != nil {
		return f.PublishFunc(ctx, channel, payload)
	}
	return 0, nil
}
func (f *fakeNativeConn) SPublish(ctx context.Context, channel string, payload []byte) (int64, error) {
	if f.SPublishFunc != nil {
		return f.SPublishFunc(ctx, channel, payload)
	}
	return 0, nil
}
func (f *fakeNativeConn) PubSubChannels(ctx context.Context, pattern string) ([]string, error) {
	if f.PubSubChannelsFunc != nil {
		return f.PubSubChannelsFunc(ctx, pattern)
	}
	return nil, nil
}
func (f *fakeNativeConn) PubSubNumSub(ctx context.Context, channels []string) (map[string]int64, error) {
	if f.PubSubNumSubFunc != nil {
		return f.PubSubNumSubFunc(ctx, channels)
	}
	return nil, nil
}
func (f *fakeNativeConn) Watch(ctx context.Context, keys []string) error {
	if f.WatchFunc != nil {
		return f.WatchFunc(ctx, keys)
	}
	return nil
}
func (f *fakeNativeConn) Unwatch(ctx context.Context) error {
	if f.UnwatchFunc != nil {
		return f.UnwatchFunc(ctx)
	}
	return nil
}
func (f *fakeNativeConn) Close() error {
	if f.CloseFunc != nil {
		return f.CloseFunc()
	}
	return nil
}

// fakeBatcher is a minimal in-memory [NativeBatcher]: QueueRaw records
// the raw vector and Exec replays a caller-supplied Resolve function
// (or returns zero-value replies when unset), mirroring how goRedisBatch
// resolves queued *redis.Cmd values only at Exec time.
type fakeBatcher struct {
	Resolve func(queued [][]any) ([]NativeReply, error)
	queued  [][]any
	discarded bool
}

func (b *fakeBatcher) QueueRaw(ctx context.Context, args ...any) {
	b.queued = append(b.queued, args)
}
func (b *fakeBatcher) Exec(ctx context.Context) ([]NativeReply, error) {
	if b.Resolve != nil {
		return b.Resolve(b.queued)
	}
	out := make([]NativeReply, len(b.queued))
	return out, nil
}
func (b *fakeBatcher) Discard() { b.discarded = true }

type fakeScript struct {
	source  string
	EvalFunc    func(ctx context.Context, conn NativeConn, keys []string, args []any) (any, error)
	EvalShaFunc func(ctx context.Context, conn NativeConn, keys []string, args []any) (any, error)
	LoadFunc    func(ctx context.Context, conn NativeConn) (string, error)
}

func (s *fakeScript) Hash() string { return sha1Hex(s.source) }
func (s *fakeScript) Eval(ctx context.Context, conn NativeConn, keys []string, args []any) (any, error) {
	if s.EvalFunc != nil {
		return s.EvalFunc(ctx, conn, keys, args)
	}
	return nil, nil
}
func (s *fakeScript) EvalSha(ctx context.Context, conn NativeConn, keys []string, args []any) (any, error) {
	if s.EvalShaFunc != nil {
		return s.EvalShaFunc(ctx, conn, keys, args)
	}
	return nil, nil
}
func (s *fakeScript) Load(ctx context.Context, conn NativeConn) (string, error) {
	if s.LoadFunc != nil {
		return s.LoadFunc(ctx, conn)
	}
	return s.Hash(), nil
}

type fakeSubscriber struct {
	ReceiveFunc func(ctx context.Context) (*NativeMessage, error)
	closed      bool
}

func (s *fakeSubscriber) ReceiveMessage(ctx context.Context) (*NativeMessage, error) {
	if s.ReceiveFunc != nil {
		return s.ReceiveFunc(ctx)
	}
	<-ctx.Done()
	return nil, ctx.Err()
}
func (s *fakeSubscriber) Close() error {
	s.closed = true
	return nil
}

// newFakeClient builds a [*Client] wired to a fakeNativeConn via a
// ready connection manager, bypassing the real dial entirely.
func newFakeClient(conn *fakeNativeConn) *Client {
	cfg := NewConfig()
	cfg.LazyConnect = true
	c := &Client{cfg: cfg, kind: "client"}
	c.cm = &connectionManager{
		cfg:    cfg,
		logger: cfg.Logger,
		status: StatusReady,
		conn:   conn,
		ready:  make(chan struct{}),
		events: newEventBus(),
	}
	close(c.cm.ready)
	c.scripts = newScriptCache()
	c.pubsub = newPubSubBridge(c)
	return c
}
