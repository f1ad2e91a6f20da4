// SPDX-License-Identifier: GPL-3.0-or-later

package ioredis

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSAddIsIdempotentForDuplicateMembers(t *testing.T) {
	var set [][]byte
	conn := &fakeNativeConn{
		SAddFunc: func(ctx context.Context, key string, members [][]byte) (int64, error) {
			var added int64
			for _, m := range members {
				dup := false
				for _, existing := range set {
					if bytes.Equal(existing, m) {
						dup = true
						break
					}
				}
				if !dup {
					set = append(set, m)
					added++
				}
			}
			return added, nil
		},
	}
	c := newFakeClient(conn)

	n, err := c.SAdd(context.Background(), []byte("s"), "a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = c.SAdd(context.Background(), []byte("s"), "a")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestSIsMemberAndSCard(t *testing.T) {
	conn := &fakeNativeConn{
		SIsMemberFunc: func(ctx context.Context, key string, member []byte) (bool, error) {
			return string(member) == "a", nil
		},
		SCardFunc: func(ctx context.Context, key string) (int64, error) {
			return 3, nil
		},
	}
	c := newFakeClient(conn)

	ok, err := c.SIsMember(context.Background(), []byte("s"), "a")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.SIsMember(context.Background(), []byte("s"), "z")
	require.NoError(t, err)
	assert.False(t, ok)

	n, err := c.SCard(context.Background(), []byte("s"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
