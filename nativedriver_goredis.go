// SPDX-License-Identifier: GPL-3.0-or-later

package ioredis

import (
	"context"
	"crypto/tls"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// This file is the only one permitted to import github.com/redis/go-redis/v9.
// It implements [NativeConn]/[NativeClusterConn]/[NativeBatcher]/[NativeScript]
// by delegating to go-redis's own typed Cmdable surface, which stands in
// for the spec's native driver (see SPEC_FULL.md §3). Every other file in
// this module talks only to the interfaces in nativedriver.go.

// goRedisConn adapts a go-redis redis.UniversalClient (standalone or
// cluster, *redis.Client or *redis.ClusterClient both satisfy it) to
// [NativeConn].
type goRedisConn struct {
	// rdb serves every [NativeCommander] method and is satisfied by a
	// plain client, a cluster client, or a pipeline/transaction builder
	// alike, since all three implement redis.Cmdable.
	rdb redis.Cmdable
	// uc is non-nil only for a real top-level connection (never for a
	// batch wrapper), and backs the connection-scoped methods
	// (Pipeline/Watch/Publish/Subscribe/Close/...) that a bare
	// redis.Cmdable does not expose.
	uc redis.UniversalClient
}

// newGoRedisStandalone builds a [NativeConn] backed by a real
// *redis.Client, configured from cfg.
func newGoRedisStandalone(cfg *Config) NativeConn {
	opts := &redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Username:     cfg.Username,
		Password:     cfg.Password,
		DB:           cfg.DB,
		ClientName:   cfg.ClientName,
		DialTimeout:  cfg.ConnectTimeout,
		ReadTimeout:  cfg.RequestTimeout,
		WriteTimeout: cfg.RequestTimeout,
		MaxRetries:   cfg.MaxRetriesPerRequest,
	}
	if cfg.UseTLS {
		opts.TLSConfig = tlsConfigPlaceholder()
	}
	client := redis.NewClient(opts)
	return &goRedisConn{rdb: client, uc: client}
}

// newGoRedisCluster builds a [NativeClusterConn] backed by a real
// *redis.ClusterClient, configured from cfg.
func newGoRedisCluster(cfg *ClusterConfig) NativeClusterConn {
	opts := &redis.ClusterOptions{
		Addrs:        cfg.Nodes,
		Username:     cfg.Username,
		Password:     cfg.Password,
		ClientName:   cfg.ClientName,
		DialTimeout:  cfg.ConnectTimeout,
		ReadTimeout:  cfg.RequestTimeout,
		WriteTimeout: cfg.RequestTimeout,
		MaxRetries:   cfg.MaxRetriesPerRequest,
	}
	readFrom := cfg.ReadFrom
	if cfg.EnableReadFromReplicas && readFrom == ReadFromPrimary {
		readFrom = ReadFromPreferReplica
	}
	switch readFrom {
	case ReadFromPreferReplica:
		opts.ReadOnly = true
	case ReadFromAZAffinity:
		opts.RouteByLatency = true
	}
	if cfg.UseTLS {
		opts.TLSConfig = tlsConfigPlaceholder()
	}
	client := redis.NewClusterClient(opts)
	return &goRedisClusterConn{goRedisConn: goRedisConn{rdb: client, uc: client}, cluster: client}
}

// tlsConfigPlaceholder returns the default client TLS configuration.
// Callers needing custom certificates should construct their own
// [*Config] field extension point; this adapter only toggles TLS on/off
// per spec.md §6's "useTLS/tls" option.
func tlsConfigPlaceholder() *tls.Config {
	return &tls.Config{MinVersion: tls.VersionTLS12}
}

var _ NativeConn = (*goRedisConn)(nil)

func (c *goRedisConn) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func (c *goRedisConn) Set(ctx context.Context, key string, value []byte, opts NativeSetOptions) (NativeSetResult, error) {
	args := make([]any, 0, 8)
	args = append(args, "SET", key, value)
	switch opts.Expiry.Unit {
	case "EX":
		args = append(args, "EX", strconv.FormatInt(opts.Expiry.Count, 10))
	case "PX":
		args = append(args, "PX", strconv.FormatInt(opts.Expiry.Count, 10))
	case "EXAT":
		args = append(args, "EXAT", strconv.FormatInt(opts.Expiry.Count, 10))
	case "PXAT":
		args = append(args, "PXAT", strconv.FormatInt(opts.Expiry.Count, 10))
	}
	if opts.Expiry.KeepTTL {
		args = append(args, "KEEPTTL")
	}
	if opts.OnlyIfAbsent {
		args = append(args, "NX")
	}
	if opts.OnlyIfExists {
		args = append(args, "XX")
	}
	if opts.ReturnOld {
		args = append(args, "GET")
	}
	res, err := c.rdb.Do(ctx, args...).Result()
	if err == redis.Nil {
		return NativeSetResult{Ok: false}, nil
	}
	if err != nil {
		return NativeSetResult{}, err
	}
	result := NativeSetResult{Ok: true}
	if opts.ReturnOld {
		if s, ok := res.(string); ok {
			result.HadOld = true
			result.Old = []byte(s)
		}
	}
	return result, nil
}

func (c *goRedisConn) MSet(ctx context.Context, pairs [][2][]byte) error {
	args := make([]any, 0, len(pairs)*2)
	for _, p := range pairs {
		args = append(args, string(p[0]), p[1])
	}
	return c.rdb.MSet(ctx, args...).Err()
}

func (c *goRedisConn) MGet(ctx context.Context, keys []string) ([][]byte, []bool, error) {
	vals, err := c.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, nil, err
	}
	out := make([][]byte, len(vals))
	found := make([]bool, len(vals))
	for i, v := range vals {
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			out[i] = []byte(s)
			found[i] = true
		}
	}
	return out, found, nil
}

func (c *goRedisConn) Append(ctx context.Context, key string, value []byte) (int64, error) {
	return c.rdb.Append(ctx, key, string(value)).Result()
}

func (c *goRedisConn) Incr(ctx context.Context, key string) (int64, error) {
	return c.rdb.Incr(ctx, key).Result()
}

func (c *goRedisConn) IncrBy(ctx context.Context, key string, delta int64) (int64, error) {
	return c.rdb.IncrBy(ctx, key, delta).Result()
}

func (c *goRedisConn) Decr(ctx context.Context, key string) (int64, error) {
	return c.rdb.Decr(ctx, key).Result()
}

func (c *goRedisConn) GetDel(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := c.rdb.GetDel(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func (c *goRedisConn) HGet(ctx context.Context, key, field string) ([]byte, bool, error) {
	v, err := c.rdb.HGet(ctx, key, field).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func (c *goRedisConn) HSet(ctx context.Context, key string, pairs [][2][]byte) (int64, error) {
	args := make([]any, 0, len(pairs)*2)
	for _, p := range pairs {
		args = append(args, string(p[0]), p[1])
	}
	return c.rdb.HSet(ctx, key, args...).Result()
}

func (c *goRedisConn) HGetAll(ctx context.Context, key string) ([][2][]byte, error) {
	m, err := c.rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	out := make([][2][]byte, 0, len(m))
	for k, v := range m {
		out = append(out, [2][]byte{[]byte(k), []byte(v)})
	}
	return out, nil
}

func (c *goRedisConn) HDel(ctx context.Context, key string, fields []string) (int64, error) {
	return c.rdb.HDel(ctx, key, fields...).Result()
}

func (c *goRedisConn) HExists(ctx context.Context, key, field string) (bool, error) {
	return c.rdb.HExists(ctx, key, field).Result()
}

func (c *goRedisConn) HMGet(ctx context.Context, key string, fields []string) ([][]byte, []bool, error) {
	vals, err := c.rdb.HMGet(ctx, key, fields...).Result()
	if err != nil {
		return nil, nil, err
	}
	out := make([][]byte, len(vals))
	found := make([]bool, len(vals))
	for i, v := range vals {
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			out[i] = []byte(s)
			found[i] = true
		}
	}
	return out, found, nil
}

func (c *goRedisConn) HIncrBy(ctx context.Context, key, field string, delta int64) (int64, error) {
	return c.rdb.HIncrBy(ctx, key, field, delta).Result()
}

func (c *goRedisConn) LPush(ctx context.Context, key string, values [][]byte) (int64, error) {
	return c.rdb.LPush(ctx, key, bytesToAny(values)...).Result()
}

func (c *goRedisConn) RPush(ctx context.Context, key string, values [][]byte) (int64, error) {
	return c.rdb.RPush(ctx, key, bytesToAny(values)...).Result()
}

func (c *goRedisConn) LPop(ctx context.Context, key string, count int, hasCount bool) ([][]byte, error) {
	if !hasCount {
		v, err := c.rdb.LPop(ctx, key).Bytes()
		if err == redis.Nil {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return [][]byte{v}, nil
	}
	vals, err := c.rdb.LPopCount(ctx, key, count).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return stringsToBytes(vals), nil
}

func (c *goRedisConn) RPop(ctx context.Context, key string, count int, hasCount bool) ([][]byte, error) {
	if !hasCount {
		v, err := c.rdb.RPop(ctx, key).Bytes()
		if err == redis.Nil {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return [][]byte{v}, nil
	}
	vals, err := c.rdb.RPopCount(ctx, key, count).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return stringsToBytes(vals), nil
}

func (c *goRedisConn) LLen(ctx context.Context, key string) (int64, error) {
	return c.rdb.LLen(ctx, key).Result()
}

func (c *goRedisConn) LRange(ctx context.Context, key string, start, stop int64) ([][]byte, error) {
	vals, err := c.rdb.LRange(ctx, key, start, stop).Result()
	if err != nil {
		return nil, err
	}
	return stringsToBytes(vals), nil
}

func (c *goRedisConn) RPopLPush(ctx context.Context, source, destination string) ([]byte, bool, error) {
	v, err := c.rdb.RPopLPush(ctx, source, destination).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func (c *goRedisConn) SAdd(ctx context.Context, key string, members [][]byte) (int64, error) {
	return c.rdb.SAdd(ctx, key, bytesToAny(members)...).Result()
}

func (c *goRedisConn) SRem(ctx context.Context, key string, members [][]byte) (int64, error) {
	return c.rdb.SRem(ctx, key, bytesToAny(members)...).Result()
}

func (c *goRedisConn) SMembers(ctx context.Context, key string) ([][]byte, error) {
	vals, err := c.rdb.SMembers(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	return stringsToBytes(vals), nil
}

func (c *goRedisConn) SIsMember(ctx context.Context, key string, member []byte) (bool, error) {
	return c.rdb.SIsMember(ctx, key, member).Result()
}

func (c *goRedisConn) SCard(ctx context.Context, key string) (int64, error) {
	return c.rdb.SCard(ctx, key).Result()
}

func (c *goRedisConn) ZAdd(ctx context.Context, key string, opts NativeZAddOptions, members []NativeZMember) (float64, error) {
	z := make([]redis.Z, 0, len(members))
	for _, m := range members {
		z = append(z, redis.Z{Score: m.Score, Member: m.Member})
	}
	if opts.Increment && len(members) == 1 {
		var res *redis.FloatCmd
		switch {
		case opts.OnlyIfAbsent:
			res = c.rdb.ZAddArgsIncr(ctx, key, redis.ZAddArgs{NX: true, Members: z})
		case opts.OnlyIfExists:
			res = c.rdb.ZAddArgsIncr(ctx, key, redis.ZAddArgs{XX: true, Members: z})
		default:
			res = c.rdb.ZIncrBy(ctx, key, members[0].Score, string(members[0].Member))
		}
		return res.Result()
	}
	args := redis.ZAddArgs{
		NX:      opts.OnlyIfAbsent,
		XX:      opts.OnlyIfExists,
		Ch:      opts.Changed,
		Members: z,
	}
	n, err := c.rdb.ZAddArgs(ctx, key, args).Result()
	return float64(n), err
}

func (c *goRedisConn) ZScore(ctx context.Context, key string, member []byte) (float64, bool, error) {
	v, err := c.rdb.ZScore(ctx, key, string(member)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}

func (c *goRedisConn) ZRem(ctx context.Context, key string, members [][]byte) (int64, error) {
	return c.rdb.ZRem(ctx, key, bytesToAny(members)...).Result()
}

func (c *goRedisConn) ZCard(ctx context.Context, key string) (int64, error) {
	return c.rdb.ZCard(ctx, key).Result()
}

func (c *goRedisConn) ZRange(ctx context.Context, key string, start, stop int64, withScores bool) ([]NativeZMember, error) {
	if !withScores {
		vals, err := c.rdb.ZRange(ctx, key, start, stop).Result()
		if err != nil {
			return nil, err
		}
		out := make([]NativeZMember, len(vals))
		for i, v := range vals {
			out[i] = NativeZMember{Member: []byte(v)}
		}
		return out, nil
	}
	zs, err := c.rdb.ZRangeWithScores(ctx, key, start, stop).Result()
	if err != nil {
		return nil, err
	}
	return zSliceToNative(zs), nil
}

func (c *goRedisConn) ZRangeByScore(ctx context.Context, key string, opts NativeRangeOptions) ([]NativeZMember, error) {
	args := redis.ZRangeArgs{
		Key:     key,
		ByScore: true,
		Rev:     opts.Reverse,
		Start:   formatScoreBoundary(opts.Min),
		Stop:    formatScoreBoundary(opts.Max),
	}
	if opts.HasLimit {
		args.Offset = opts.Offset
		args.Count = opts.Count
	}
	if opts.WithScores {
		zs, err := c.rdb.ZRangeArgsWithScores(ctx, args).Result()
		if err != nil {
			return nil, err
		}
		return zSliceToNative(zs), nil
	}
	vals, err := c.rdb.ZRangeArgs(ctx, args).Result()
	if err != nil {
		return nil, err
	}
	out := make([]NativeZMember, len(vals))
	for i, v := range vals {
		out[i] = NativeZMember{Member: []byte(v)}
	}
	return out, nil
}

func (c *goRedisConn) ZRangeByLex(ctx context.Context, key string, opts NativeRangeOptions) ([][]byte, error) {
	args := redis.ZRangeArgs{
		Key:   key,
		ByLex: true,
		Rev:   opts.Reverse,
		Start: formatLexBoundary(opts.Min),
		Stop:  formatLexBoundary(opts.Max),
	}
	if opts.HasLimit {
		args.Offset = opts.Offset
		args.Count = opts.Count
	}
	vals, err := c.rdb.ZRangeArgs(ctx, args).Result()
	if err != nil {
		return nil, err
	}
	return stringsToBytes(vals), nil
}

func (c *goRedisConn) XAdd(ctx context.Context, key string, opts NativeXAddOptions) (string, bool, error) {
	args := &redis.XAddArgs{
		Stream: key,
		ID:     opts.ID,
		NoMkStream: !opts.MakeStream,
	}
	if args.ID == "" {
		args.ID = "*"
	}
	if opts.Trim.Enabled {
		if opts.Trim.ByMinID {
			args.MinID = opts.Trim.Threshold
		} else {
			args.MaxLen = mustParseInt(opts.Trim.Threshold)
		}
		args.Approx = opts.Trim.Approx
		if opts.Trim.HasLimit {
			args.Limit = opts.Trim.Limit
		}
	}
	values := make([]any, 0, len(opts.Fields)*2)
	for _, f := range opts.Fields {
		values = append(values, f[0], f[1])
	}
	args.Values = values
	id, err := c.rdb.XAdd(ctx, args).Result()
	if err != nil {
		return "", false, err
	}
	return id, true, nil
}

func (c *goRedisConn) XRange(ctx context.Context, key, start, stop string, count int64, hasCount bool) ([]NativeStreamEntry, error) {
	var msgs []redis.XMessage
	var err error
	if hasCount {
		msgs, err = c.rdb.XRangeN(ctx, key, start, stop, count).Result()
	} else {
		msgs, err = c.rdb.XRange(ctx, key, start, stop).Result()
	}
	if err != nil {
		return nil, err
	}
	return xMessagesToNative(msgs), nil
}

func (c *goRedisConn) XRevRange(ctx context.Context, key, start, stop string, count int64, hasCount bool) ([]NativeStreamEntry, error) {
	var msgs []redis.XMessage
	var err error
	if hasCount {
		msgs, err = c.rdb.XRevRangeN(ctx, key, start, stop, count).Result()
	} else {
		msgs, err = c.rdb.XRevRange(ctx, key, start, stop).Result()
	}
	if err != nil {
		return nil, err
	}
	return xMessagesToNative(msgs), nil
}

func (c *goRedisConn) XRead(ctx context.Context, opts NativeXReadOptions) (map[string][]NativeStreamEntry, error) {
	streams := make([]string, 0, len(opts.Order)*2)
	for _, k := range opts.Order {
		streams = append(streams, k)
	}
	for _, k := range opts.Order {
		streams = append(streams, opts.Streams[k])
	}
	args := &redis.XReadArgs{Streams: streams, NoAck: opts.NoAck}
	if opts.HasCount {
		args.Count = opts.Count
	}
	if opts.HasBlock {
		args.Block = opts.Block
	}
	var xss []redis.XStream
	var err error
	if opts.Group != "" {
		gargs := &redis.XReadGroupArgs{
			Group:    opts.Group,
			Consumer: opts.Consumer,
			Streams:  streams,
			NoAck:    opts.NoAck,
		}
		if opts.HasCount {
			gargs.Count = opts.Count
		}
		if opts.HasBlock {
			gargs.Block = opts.Block
		}
		xss, err = c.rdb.XReadGroup(ctx, gargs).Result()
	} else {
		xss, err = c.rdb.XRead(ctx, args).Result()
	}
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	out := make(map[string][]NativeStreamEntry, len(xss))
	for _, xs := range xss {
		out[xs.Stream] = xMessagesToNative(xs.Messages)
	}
	return out, nil
}

func (c *goRedisConn) XTrim(ctx context.Context, key string, trim NativeTrimOptions) (int64, error) {
	if trim.ByMinID {
		if trim.Approx {
			return c.rdb.XTrimMinIDApprox(ctx, key, trim.Threshold).Result()
		}
		return c.rdb.XTrimMinID(ctx, key, trim.Threshold).Result()
	}
	maxLen := mustParseInt(trim.Threshold)
	if trim.Approx {
		return c.rdb.XTrimMaxLenApprox(ctx, key, maxLen, 0).Result()
	}
	return c.rdb.XTrimMaxLen(ctx, key, maxLen).Result()
}

func (c *goRedisConn) XGroupCreate(ctx context.Context, key, group, id string, mkstream bool) error {
	if mkstream {
		return c.rdb.XGroupCreateMkStream(ctx, key, group, id).Err()
	}
	return c.rdb.XGroupCreate(ctx, key, group, id).Err()
}

func (c *goRedisConn) XGroupDestroy(ctx context.Context, key, group string) error {
	return c.rdb.XGroupDestroy(ctx, key, group).Err()
}

func (c *goRedisConn) XGroupCreateConsumer(ctx context.Context, key, group, consumer string) error {
	return c.rdb.XGroupCreateConsumer(ctx, key, group, consumer).Err()
}

func (c *goRedisConn) XGroupDelConsumer(ctx context.Context, key, group, consumer string) (int64, error) {
	return c.rdb.XGroupDelConsumer(ctx, key, group, consumer).Result()
}

func (c *goRedisConn) XGroupSetID(ctx context.Context, key, group, id string, entriesRead int64, hasEntriesRead bool) error {
	if hasEntriesRead {
		return c.rdb.Do(ctx, "XGROUP", "SETID", key, group, id, "ENTRIESREAD", entriesRead).Err()
	}
	return c.rdb.XGroupSetID(ctx, key, group, id).Err()
}

func (c *goRedisConn) Del(ctx context.Context, keys []string) (int64, error) {
	return c.rdb.Del(ctx, keys...).Result()
}

func (c *goRedisConn) Exists(ctx context.Context, keys []string) (int64, error) {
	return c.rdb.Exists(ctx, keys...).Result()
}

func (c *goRedisConn) Expire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return c.rdb.Expire(ctx, key, ttl).Result()
}

func (c *goRedisConn) TTL(ctx context.Context, key string) (time.Duration, error) {
	return c.rdb.TTL(ctx, key).Result()
}

func (c *goRedisConn) Persist(ctx context.Context, key string) (bool, error) {
	return c.rdb.Persist(ctx, key).Result()
}

func (c *goRedisConn) Type(ctx context.Context, key string) (string, error) {
	return c.rdb.Type(ctx, key).Result()
}

func (c *goRedisConn) Rename(ctx context.Context, key, newKey string) error {
	return c.rdb.Rename(ctx, key, newKey).Err()
}

func (c *goRedisConn) Scan(ctx context.Context, cursor NativeScanCursor, match string, count int64) ([]string, NativeScanCursor, error) {
	keys, next, err := c.rdb.Scan(ctx, cursor.Cursor, match, count).Result()
	if err != nil {
		return nil, NativeScanCursor{}, err
	}
	return keys, NativeScanCursor{Cursor: next, Done: next == 0}, nil
}

func (c *goRedisConn) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *goRedisConn) DBSize(ctx context.Context) (int64, error) {
	return c.rdb.DBSize(ctx).Result()
}

func (c *goRedisConn) Info(ctx context.Context, section string) (string, error) {
	if section == "" {
		return c.rdb.Info(ctx).Result()
	}
	return c.rdb.Info(ctx, section).Result()
}

func (c *goRedisConn) Time(ctx context.Context) (time.Time, error) {
	return c.rdb.Time(ctx).Result()
}

func (c *goRedisConn) LastSave(ctx context.Context) (time.Time, error) {
	secs, err := c.rdb.LastSave(ctx).Result()
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(secs, 0), nil
}

func (c *goRedisConn) ClientID(ctx context.Context) (int64, error) {
	return c.rdb.ClientID(ctx).Result()
}

func (c *goRedisConn) Echo(ctx context.Context, message []byte) ([]byte, error) {
	s, err := c.rdb.Echo(ctx, string(message)).Result()
	if err != nil {
		return nil, err
	}
	return []byte(fmt.Sprint(s)), nil
}

func (c *goRedisConn) Do(ctx context.Context, args ...any) (any, error) {
	return c.uc.Do(ctx, args...).Result()
}

func (c *goRedisConn) Pipeline() NativeBatcher {
	return newGoRedisBatch(c.uc.Pipeline())
}

func (c *goRedisConn) TxPipeline() NativeBatcher {
	return newGoRedisBatch(c.uc.TxPipeline())
}

func (c *goRedisConn) NewScript(source string) NativeScript {
	return &goRedisScript{script: redis.NewScript(source)}
}

func (c *goRedisConn) NewSubscriber(ctx context.Context, exact, patterns, sharded []string) (NativeSubscriber, error) {
	// Sharded channels go first so a cluster client opens the
	// connection on their shard's node.
	var ps *redis.PubSub
	if len(sharded) > 0 {
		ps = c.uc.SSubscribe(ctx, sharded...)
	} else {
		ps = c.uc.Subscribe(ctx)
	}
	if len(exact) > 0 {
		if err := ps.Subscribe(ctx, exact...); err != nil {
			_ = ps.Close()
			return nil, err
		}
	}
	if len(patterns) > 0 {
		if err := ps.PSubscribe(ctx, patterns...); err != nil {
			_ = ps.Close()
			return nil, err
		}
	}
	return &goRedisSubscriber{ps: ps}, nil
}

func (c *goRedisConn) Publish(ctx context.Context, channel string, payload []byte) (int64, error) {
	return c.rdb.Publish(ctx, channel, payload).Result()
}

func (c *goRedisConn) SPublish(ctx context.Context, channel string, payload []byte) (int64, error) {
	return c.rdb.SPublish(ctx, channel, payload).Result()
}

func (c *goRedisConn) PubSubChannels(ctx context.Context, pattern string) ([]string, error) {
	return c.rdb.PubSubChannels(ctx, pattern).Result()
}

func (c *goRedisConn) PubSubNumSub(ctx context.Context, channels []string) (map[string]int64, error) {
	return c.rdb.PubSubNumSub(ctx, channels...).Result()
}

func (c *goRedisConn) Watch(ctx context.Context, keys []string) error {
	// go-redis's Watch takes a transaction closure; the adapter's own
	// Transaction type (transaction.go) manages WATCH/MULTI/EXEC as
	// discrete steps over a raw TxPipeline, so here we only need the
	// raw WATCH command issued outside of a closure.
	args := make([]any, 0, len(keys)+1)
	args = append(args, "WATCH")
	for _, k := range keys {
		args = append(args, k)
	}
	return c.uc.Do(ctx, args...).Err()
}

func (c *goRedisConn) Unwatch(ctx context.Context) error {
	return c.uc.Do(ctx, "UNWATCH").Err()
}

func (c *goRedisConn) Close() error {
	return c.uc.Close()
}

// goRedisClusterConn adds the cluster-scoped aggregation methods of
// spec.md §4.9 over a *redis.ClusterClient.
type goRedisClusterConn struct {
	goRedisConn
	cluster *redis.ClusterClient
}

var _ NativeClusterConn = (*goRedisClusterConn)(nil)

func (c *goRedisClusterConn) ForEachNode(ctx context.Context, fn func(ctx context.Context, node NativeConn) error) error {
	return c.cluster.ForEachMaster(ctx, func(ctx context.Context, node *redis.Client) error {
		return fn(ctx, &goRedisConn{rdb: node, uc: node})
	})
}

func (c *goRedisClusterConn) ClusterScan(ctx context.Context, cursor NativeScanCursor, match string, count int64) ([]string, NativeScanCursor, error) {
	// Delegates to the cluster client's Scan with the numeric cursor
	// value. The cursor carries no node identity; clusterscan.go only
	// encodes it as a decimal string.
	return c.Scan(ctx, cursor, match, count)
}

// goRedisBatch adapts a redis.Pipeliner to [NativeBatcher]. Each
// QueueRaw call appends a generic *redis.Cmd via Pipeliner.Do, which
// only queues the command; the same *redis.Cmd reference is read back
// after Exec, at which point go-redis has filled in its reply — so
// values are read correctly despite being collected before execution.
type goRedisBatch struct {
	pipe redis.Pipeliner
	cmds []*redis.Cmd
}

var _ NativeBatcher = (*goRedisBatch)(nil)

func newGoRedisBatch(pipe redis.Pipeliner) *goRedisBatch {
	return &goRedisBatch{pipe: pipe}
}

func (b *goRedisBatch) QueueRaw(ctx context.Context, args ...any) {
	b.cmds = append(b.cmds, b.pipe.Do(ctx, args...))
}

func (b *goRedisBatch) Exec(ctx context.Context) ([]NativeReply, error) {
	_, err := b.pipe.Exec(ctx)
	if err != nil && err != redis.Nil && len(b.cmds) == 0 {
		return nil, err
	}
	out := make([]NativeReply, len(b.cmds))
	for i, cmd := range b.cmds {
		out[i] = NativeReply{Value: cmd.Val(), Err: cmd.Err()}
	}
	return out, nil
}

func (b *goRedisBatch) Discard() {
	b.pipe.Discard()
}

// goRedisScript adapts a *redis.Script to [NativeScript].
type goRedisScript struct {
	script *redis.Script
}

var _ NativeScript = (*goRedisScript)(nil)

func (s *goRedisScript) Hash() string {
	return s.script.Hash()
}

// goRedisCmdabler is implemented by both *goRedisConn and
// *goRedisClusterConn (via embedding), letting script invocation reach
// the underlying redis.Cmdable regardless of which concrete wrapper was
// handed to it.
type goRedisCmdabler interface {
	cmdable() redis.Cmdable
}

func (c *goRedisConn) cmdable() redis.Cmdable { return c.rdb }

func (s *goRedisScript) Eval(ctx context.Context, conn NativeConn, keys []string, args []any) (any, error) {
	gc, ok := conn.(goRedisCmdabler)
	if !ok {
		return nil, fmt.Errorf("ioredis: Eval requires a go-redis-backed connection")
	}
	return s.script.Eval(ctx, gc.cmdable(), keys, args...).Result()
}

func (s *goRedisScript) EvalSha(ctx context.Context, conn NativeConn, keys []string, args []any) (any, error) {
	gc, ok := conn.(goRedisCmdabler)
	if !ok {
		return nil, fmt.Errorf("ioredis: EvalSha requires a go-redis-backed connection")
	}
	return s.script.EvalSha(ctx, gc.cmdable(), keys, args...).Result()
}

func (s *goRedisScript) Load(ctx context.Context, conn NativeConn) (string, error) {
	gc, ok := conn.(goRedisCmdabler)
	if !ok {
		return "", fmt.Errorf("ioredis: Load requires a go-redis-backed connection")
	}
	return s.script.Load(ctx, gc.cmdable()).Result()
}

// goRedisSubscriber adapts a *redis.PubSub to [NativeSubscriber].
// go-redis delivers sharded-channel messages without a distinct kind,
// so they are reported as "message"; this subscriber never yields
// "smessage".
type goRedisSubscriber struct {
	ps *redis.PubSub
}

var _ NativeSubscriber = (*goRedisSubscriber)(nil)

func (s *goRedisSubscriber) ReceiveMessage(ctx context.Context) (*NativeMessage, error) {
	msg, err := s.ps.ReceiveMessage(ctx)
	if err != nil {
		return nil, err
	}
	kind := "message"
	if msg.Pattern != "" {
		kind = "pmessage"
	}
	return &NativeMessage{
		Kind:    kind,
		Channel: msg.Channel,
		Pattern: msg.Pattern,
		Payload: []byte(msg.Payload),
	}, nil
}

func (s *goRedisSubscriber) Close() error {
	return s.ps.Close()
}

// --- small local helpers, kept free of go-redis types where possible ---

func bytesToAny(values [][]byte) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func stringsToBytes(values []string) [][]byte {
	out := make([][]byte, len(values))
	for i, v := range values {
		out[i] = []byte(v)
	}
	return out
}

func zSliceToNative(zs []redis.Z) []NativeZMember {
	out := make([]NativeZMember, len(zs))
	for i, z := range zs {
		member, _ := z.Member.(string)
		out[i] = NativeZMember{Member: []byte(member), Score: z.Score}
	}
	return out
}

func xMessagesToNative(msgs []redis.XMessage) []NativeStreamEntry {
	out := make([]NativeStreamEntry, len(msgs))
	for i, m := range msgs {
		fields := make([][2]string, 0, len(m.Values))
		for k, v := range m.Values {
			fields = append(fields, [2]string{k, fmt.Sprint(v)})
		}
		out[i] = NativeStreamEntry{ID: m.ID, Fields: fields}
	}
	return out
}

func formatScoreBoundary(b NativeRangeBoundary) string {
	switch b.Infinite {
	case -1:
		return "-inf"
	case 1:
		return "+inf"
	}
	if b.Exclusive {
		return "(" + b.Value
	}
	return b.Value
}

func formatLexBoundary(b NativeRangeBoundary) string {
	switch b.Infinite {
	case -1:
		return "-"
	case 1:
		return "+"
	}
	if b.Exclusive {
		return "(" + b.Value
	}
	return "[" + b.Value
}

func mustParseInt(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
