// SPDX-License-Identifier: GPL-3.0-or-later

package ioredis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClusterScanDecodesAndEncodesOpaqueCursor(t *testing.T) {
	var gotCursor NativeScanCursor
	cc := &fakeClusterConn{
		fakeNativeConn: &fakeNativeConn{},
		ClusterScanFunc: func(ctx context.Context, cursor NativeScanCursor, match string, count int64) ([]string, NativeScanCursor, error) {
			gotCursor = cursor
			return []string{"k1"}, NativeScanCursor{Cursor: 42}, nil
		},
	}
	c := newFakeClusterClient(cc)

	keys, next, err := c.ClusterScan(context.Background(), "0", "*", 10)
	require.NoError(t, err)
	assert.Equal(t, NativeScanCursor{}, gotCursor)
	assert.Equal(t, []string{"k1"}, keys)
	assert.Equal(t, "42", next)
}

func TestClusterScanEmptyNextCursorIsZero(t *testing.T) {
	cc := &fakeClusterConn{
		fakeNativeConn: &fakeNativeConn{},
		ClusterScanFunc: func(ctx context.Context, cursor NativeScanCursor, match string, count int64) ([]string, NativeScanCursor, error) {
			return nil, NativeScanCursor{Done: true}, nil
		},
	}
	c := newFakeClusterClient(cc)

	keys, next, err := c.ClusterScan(context.Background(), "0", "*", 10)
	require.NoError(t, err)
	assert.Empty(t, keys)
	assert.Equal(t, "0", next)
}

func TestClusterScanRecordsSlotAffinityHintForFirstKey(t *testing.T) {
	cc := &fakeClusterConn{
		fakeNativeConn: &fakeNativeConn{},
		ClusterScanFunc: func(ctx context.Context, cursor NativeScanCursor, match string, count int64) ([]string, NativeScanCursor, error) {
			return []string{"k1", "k2"}, NativeScanCursor{Cursor: 7}, nil
		},
	}
	c := newFakeClusterClient(cc)

	_, _, err := c.ClusterScan(context.Background(), "0", "*", 10)
	require.NoError(t, err)

	hint, ok := c.SlotAffinityHint("k1")
	require.True(t, ok)
	assert.Equal(t, "7", hint)

	_, ok = c.SlotAffinityHint("never-scanned")
	assert.False(t, ok)
}

func TestSlotAffinityCacheRespectsHashTags(t *testing.T) {
	s := newSlotAffinityCache()
	s.remember("{user1}.profile", NativeScanCursor{Cursor: 7})
	cursor, ok := s.lookup("{user1}.settings")
	require.True(t, ok)
	assert.Equal(t, uint64(7), cursor.Cursor)
}

func TestSlotAffinityCacheEvictsOldestPastLimit(t *testing.T) {
	s := newSlotAffinityCache()
	for i := 0; i < slotAffinityCacheLimit+10; i++ {
		s.remember(string(rune('a'+i%26))+string(rune(i)), NativeScanCursor{Cursor: uint64(i)})
	}
	assert.LessOrEqual(t, len(s.entries), slotAffinityCacheLimit)
}
