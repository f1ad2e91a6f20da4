// SPDX-License-Identifier: GPL-3.0-or-later

package ioredis

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"sync"

	"golang.org/x/sync/singleflight"
)

// scriptEntry is the Script Entry of spec.md §3: `(sha1, source,
// compiled_handle)`, cached per client and never invalidated by mere
// disconnects.
type scriptEntry struct {
	sha1     string
	source   string
	compiled NativeScript
}

// scriptCache is a client's `SHA1 -> {compiled_handle, source}` cache,
// per spec.md §4.6.
type scriptCache struct {
	mu      sync.RWMutex
	bySHA   map[string]*scriptEntry
	reload  singleflight.Group
	defined map[string]definedCommand
}

// definedCommand is one `defineCommand`-attached method, per
// spec.md §4.6's last bullet.
type definedCommand struct {
	entry         *scriptEntry
	numberOfKeys  int
}

func newScriptCache() *scriptCache {
	return &scriptCache{
		bySHA:   make(map[string]*scriptEntry),
		defined: make(map[string]definedCommand),
	}
}

// Eval implements `eval(script, nkeys, args...)`: splits args at nkeys,
// normalizes keys/values, invokes the driver's compiled-script call,
// and caches the result by the SHA-1 of source.
func (c *Client) Eval(ctx context.Context, source string, nkeys int, args []any) (any, error) {
	keys, vals, err := splitKeysArgs(nkeys, args)
	if err != nil {
		return nil, err
	}
	conn, err := c.conn(ctx)
	if err != nil {
		return nil, err
	}
	entry := c.scripts.getOrCreate(source, conn)
	return entry.compiled.Eval(ctx, conn, keys, normalizeValueArgs(vals))
}

// EvalSha implements `evalsha(sha, nkeys, args...)`: checks the cache
// first; on hit invokes the compiled handle; on miss, attempts a raw
// EVALSHA. The server's NOSCRIPT error surfaces unchanged, per
// spec.md §4.6 ("the caller handles resubmission via eval").
func (c *Client) EvalSha(ctx context.Context, sha string, nkeys int, args []any) (any, error) {
	keys, vals, err := splitKeysArgs(nkeys, args)
	if err != nil {
		return nil, err
	}
	conn, err := c.conn(ctx)
	if err != nil {
		return nil, err
	}

	c.scripts.mu.RLock()
	entry, ok := c.scripts.bySHA[sha]
	c.scripts.mu.RUnlock()
	if ok {
		return entry.compiled.EvalSha(ctx, conn, keys, normalizeValueArgs(vals))
	}

	// Single-flight the raw EVALSHA attempt so concurrent callers racing
	// on the same uncached SHA don't all pay the NOSCRIPT round trip.
	v, err, _ := c.scripts.reload.Do(sha, func() (any, error) {
		rawArgs := make([]any, 0, len(keys)+len(vals)+3)
		rawArgs = append(rawArgs, "EVALSHA", sha, len(keys))
		for _, k := range keys {
			rawArgs = append(rawArgs, k)
		}
		rawArgs = append(rawArgs, normalizeValueArgs(vals)...)
		return conn.Do(ctx, rawArgs...)
	})
	return v, err
}

// ScriptLoad implements `script load(source)`: returns the SHA-1
// computed by the server and caches it locally.
func (c *Client) ScriptLoad(ctx context.Context, source string) (string, error) {
	conn, err := c.conn(ctx)
	if err != nil {
		return "", err
	}
	entry := c.scripts.getOrCreate(source, conn)
	sha, err := entry.compiled.Load(ctx, conn)
	if err != nil {
		return "", err
	}
	return sha, nil
}

// ScriptExists implements `script exists(sha...)`: passes through to
// the server, converting driver booleans to 0/1 per spec.md §4.3.
func (c *Client) ScriptExists(ctx context.Context, shas []string) ([]int64, error) {
	conn, err := c.conn(ctx)
	if err != nil {
		return nil, err
	}
	args := make([]any, 0, len(shas)+2)
	args = append(args, "SCRIPT", "EXISTS")
	for _, s := range shas {
		args = append(args, s)
	}
	reply, err := conn.Do(ctx, args...)
	if err != nil {
		return nil, err
	}
	list, _ := reply.([]any)
	out := make([]int64, len(list))
	for i, v := range list {
		switch b := v.(type) {
		case bool:
			out[i] = boolToFlag(b)
		case int64:
			out[i] = b
		}
	}
	return out, nil
}

// DefineCommand implements `defineCommand(name, {lua, numberOfKeys})`:
// attaches a callable script entry under name, partitioning future
// invocations at numberOfKeys, per spec.md §4.6.
func (c *Client) DefineCommand(name, lua string, numberOfKeys int) {
	conn, err := c.conn(context.Background())
	if err != nil {
		return
	}
	entry := c.scripts.getOrCreate(lua, conn)
	c.scripts.mu.Lock()
	c.scripts.defined[name] = definedCommand{entry: entry, numberOfKeys: numberOfKeys}
	c.scripts.mu.Unlock()
}

// CallDefined invokes a command previously attached via DefineCommand.
// args may be a single []any (queue-library array-argument style) or
// already-flattened variadic arguments; both are accepted. Object
// arguments are JSON-stringified before being sent. A driver-null
// result is translated to an empty slice to preserve queue-library
// expectations.
func (c *Client) CallDefined(ctx context.Context, name string, args []any) (any, error) {
	c.scripts.mu.RLock()
	def, ok := c.scripts.defined[name]
	c.scripts.mu.RUnlock()
	if !ok {
		return nil, newArgumentError("no command defined with name: " + name)
	}

	keys, vals, err := splitKeysArgs(def.numberOfKeys, args)
	if err != nil {
		return nil, err
	}
	conn, err := c.conn(ctx)
	if err != nil {
		return nil, err
	}
	result, err := def.entry.compiled.Eval(ctx, conn, keys, normalizeValueArgs(vals))
	if err != nil {
		return nil, err
	}
	if result == nil {
		return []any{}, nil
	}
	return result, nil
}

func (sc *scriptCache) getOrCreate(source string, conn NativeConn) *scriptEntry {
	sha := sha1Hex(source)
	sc.mu.RLock()
	entry, ok := sc.bySHA[sha]
	sc.mu.RUnlock()
	if ok {
		return entry
	}
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if entry, ok := sc.bySHA[sha]; ok {
		return entry
	}
	entry = &scriptEntry{sha1: sha, source: source, compiled: conn.NewScript(source)}
	sc.bySHA[sha] = entry
	return entry
}

// splitKeysArgs partitions a defineCommand/eval-style argument vector
// at nkeys, accepting either the queue-library single-array form or
// the plain ioredis variadic form.
func splitKeysArgs(nkeys int, args []any) (keys []string, vals []any, err error) {
	if len(args) == 1 {
		if arr, ok := args[0].([]any); ok {
			args = arr
		}
	}
	if nkeys < 0 || nkeys > len(args) {
		return nil, nil, wrongNumberOfArgs("EVAL")
	}
	keys = make([]string, nkeys)
	for i := 0; i < nkeys; i++ {
		k, ok := toFieldName(args[i])
		if !ok {
			return nil, nil, wrongNumberOfArgs("EVAL")
		}
		keys[i] = k
	}
	return keys, args[nkeys:], nil
}

// normalizeValueArgs JSON-stringifies object arguments and normalizes
// everything else, per spec.md §4.6's defineCommand rule.
func normalizeValueArgs(vals []any) []any {
	out := make([]any, len(vals))
	for i, v := range vals {
		switch v.(type) {
		case map[string]any, []any:
			b, err := json.Marshal(v)
			if err != nil {
				out[i] = ""
				continue
			}
			out[i] = string(b)
		default:
			out[i] = v
		}
	}
	return out
}

// sha1Hex matches the SHA-1 hex digest the server computes for SCRIPT
// LOAD, so locally-cached entries and server hashes agree without a
// round trip.
func sha1Hex(source string) string {
	sum := sha1.Sum([]byte(source))
	return hex.EncodeToString(sum[:])
}
