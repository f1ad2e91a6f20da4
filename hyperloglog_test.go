// SPDX-License-Identifier: GPL-3.0-or-later

package ioredis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPFAddReturnsTrueOnlyWhenRegisterChanged(t *testing.T) {
	conn := &fakeNativeConn{
		DoFunc: func(ctx context.Context, args ...any) (any, error) {
			assert.Equal(t, "PFADD", args[0])
			return int64(1), nil
		},
	}
	c := newFakeClient(conn)
	changed, err := c.PFAdd(context.Background(), []byte("hll"), "a", "b")
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestPFAddReturnsFalseWhenUnchanged(t *testing.T) {
	conn := &fakeNativeConn{
		DoFunc: func(ctx context.Context, args ...any) (any, error) {
			return int64(0), nil
		},
	}
	c := newFakeClient(conn)
	changed, err := c.PFAdd(context.Background(), []byte("hll"), "a")
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestPFMergeForwardsDestinationAndSources(t *testing.T) {
	var gotArgs []any
	conn := &fakeNativeConn{
		DoFunc: func(ctx context.Context, args ...any) (any, error) {
			gotArgs = args
			return "OK", nil
		},
	}
	c := newFakeClient(conn)
	err := c.PFMerge(context.Background(), []byte("dest"), []byte("src1"), []byte("src2"))
	require.NoError(t, err)
	assert.Equal(t, []any{"PFMERGE", []byte("dest"), []byte("src1"), []byte("src2")}, gotArgs)
}
