// SPDX-License-Identifier: GPL-3.0-or-later

package ioredis

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// ClusterScan continues a cluster-wide SCAN, exposing the opaque
// cursor string ioredis callers expect ("0" means finished), per
// spec.md §4.9. Internally the cursor encodes the driver's native
// [NativeScanCursor]; the driver (go-redis's ClusterClient.Scan) owns
// cross-node iteration inside that single cursor, so ClusterScan itself
// has no node-selection decision to make. Each returned page's first
// key is recorded in the slot-affinity cache, queryable via
// [ClusterClient.SlotAffinityHint] by a caller that wants to know
// whether a key was recently served by the page it already holds,
// before paying for another cross-node hop.
func (c *ClusterClient) ClusterScan(ctx context.Context, cursor string, match string, count int64) ([]string, string, error) {
	cc, err := c.clusterConn(ctx)
	if err != nil {
		return nil, "", err
	}
	native := decodeClusterCursor(cursor)
	keys, next, err := cc.ClusterScan(ctx, native, match, count)
	if err != nil {
		return nil, "", err
	}
	if len(keys) > 0 {
		c.slotAffinity.remember(keys[0], next)
	}
	return keys, encodeClusterCursor(next), nil
}

// SlotAffinityHint reports the opaque continuation cursor string that
// was returned with the most recent ClusterScan page starting with key,
// if any. It is purely informational: go-redis's own cluster Scan
// cursor already owns cross-node routing, so this cannot redirect a
// future ClusterScan call to a particular node — it only lets a caller
// decide whether resuming from its held cursor is likely to be cheap
// before issuing the call.
func (c *ClusterClient) SlotAffinityHint(key string) (string, bool) {
	cursor, ok := c.slotAffinity.lookup(key)
	if !ok {
		return "", false
	}
	return encodeClusterCursor(cursor), true
}

func decodeClusterCursor(cursor string) NativeScanCursor {
	if cursor == "" || cursor == "0" {
		return NativeScanCursor{}
	}
	n, err := strconv.ParseUint(cursor, 10, 64)
	if err != nil {
		return NativeScanCursor{}
	}
	return NativeScanCursor{Cursor: n}
}

func encodeClusterCursor(cursor NativeScanCursor) string {
	if cursor.Done {
		return "0"
	}
	return strconv.FormatUint(cursor.Cursor, 10)
}

// slotAffinityCache remembers, for a small recent set of keys, the
// continuation cursor returned with the scan page each key led, keyed
// by the key's xxhash slot
// hash rather than the key itself, keeping the cache bounded and cheap
// to probe under concurrent scan continuations.
type slotAffinityCache struct {
	mu      sync.Mutex
	entries map[uint64]NativeScanCursor
	order   []uint64
}

const slotAffinityCacheLimit = 256

func newSlotAffinityCache() *slotAffinityCache {
	return &slotAffinityCache{entries: make(map[uint64]NativeScanCursor)}
}

func (s *slotAffinityCache) remember(key string, cursor NativeScanCursor) {
	h := slotHash(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.entries[h]; !exists {
		s.order = append(s.order, h)
		if len(s.order) > slotAffinityCacheLimit {
			oldest := s.order[0]
			s.order = s.order[1:]
			delete(s.entries, oldest)
		}
	}
	s.entries[h] = cursor
}

func (s *slotAffinityCache) lookup(key string) (NativeScanCursor, bool) {
	h := slotHash(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	cursor, ok := s.entries[h]
	return cursor, ok
}

func slotHash(key string) uint64 {
	if i := strings.IndexByte(key, '{'); i >= 0 {
		if j := strings.IndexByte(key[i+1:], '}'); j > 0 {
			key = key[i+1 : i+1+j]
		}
	}
	return xxhash.Sum64String(key)
}
