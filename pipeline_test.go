// SPDX-License-Identifier: GPL-3.0-or-later

package ioredis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineExecReturnsResultsInOrder(t *testing.T) {
	conn := &fakeNativeConn{
		PipelineFunc: func() NativeBatcher {
			return &fakeBatcher{
				Resolve: func(queued [][]any) ([]NativeReply, error) {
					out := make([]NativeReply, len(queued))
					for i, args := range queued {
						out[i] = NativeReply{Value: args[0]}
					}
					return out, nil
				},
			}
		},
	}
	c := newFakeClient(conn)

	p := c.Pipeline()
	p.Call("SET", []byte("a"), "1")
	p.Call("SET", []byte("b"), "2")
	p.Call("GET", []byte("a"))
	assert.Equal(t, 3, p.Len())

	results, err := p.Exec(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "SET", results[0].Value)
	assert.Equal(t, "SET", results[1].Value)
	assert.Equal(t, "GET", results[2].Value)
}

func TestPipelineBatchLevelFailureFailsEveryResult(t *testing.T) {
	boom := assert.AnError
	conn := &fakeNativeConn{
		PipelineFunc: func() NativeBatcher {
			return &fakeBatcher{
				Resolve: func(queued [][]any) ([]NativeReply, error) {
					return nil, boom
				},
			}
		},
	}
	c := newFakeClient(conn)
	p := c.Pipeline()
	p.Call("SET", []byte("a"), "1")
	p.Call("SET", []byte("b"), "2")

	results, err := p.Exec(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.ErrorIs(t, results[0].Err, boom)
	assert.ErrorIs(t, results[1].Err, boom)
}

func TestPipelineDiscardDropsBuffer(t *testing.T) {
	c := newFakeClient(&fakeNativeConn{})
	p := c.Pipeline()
	p.Call("SET", []byte("a"), "1")
	p.Discard()
	assert.Equal(t, 0, p.Len())
}

func TestPipelineEmptyExecIsNoop(t *testing.T) {
	c := newFakeClient(&fakeNativeConn{})
	results, err := c.Pipeline().Exec(context.Background())
	require.NoError(t, err)
	assert.Nil(t, results)
}
