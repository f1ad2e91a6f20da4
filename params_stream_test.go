// SPDX-License-Identifier: GPL-3.0-or-later

package ioredis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTrimArgsMaxLenApprox(t *testing.T) {
	trim, consumed, err := parseTrimArgs([]any{"MAXLEN", "~", "1000", "LIMIT", "100"})
	require.NoError(t, err)
	assert.Equal(t, 5, consumed)
	assert.True(t, trim.Enabled)
	assert.False(t, trim.ByMinID)
	assert.True(t, trim.Approx)
	assert.Equal(t, "1000", trim.Threshold)
	assert.True(t, trim.HasLimit)
	assert.EqualValues(t, 100, trim.Limit)
}

func TestParseTrimArgsMinIDExact(t *testing.T) {
	trim, consumed, err := parseTrimArgs([]any{"MINID", "=", "5-0"})
	require.NoError(t, err)
	assert.Equal(t, 3, consumed)
	assert.True(t, trim.ByMinID)
	assert.False(t, trim.Approx)
	assert.Equal(t, "5-0", trim.Threshold)
}

func TestParseTrimArgsNoTrimClauseReturnsZeroConsumed(t *testing.T) {
	trim, consumed, err := parseTrimArgs([]any{"*", "field", "value"})
	require.NoError(t, err)
	assert.Equal(t, 0, consumed)
	assert.False(t, trim.Enabled)
}

func TestParseXAddArgsDefaultsIDToStar(t *testing.T) {
	opts, err := parseXAddArgs([]any{"*", "field1", "v1", "field2", "v2"})
	require.NoError(t, err)
	assert.True(t, opts.MakeStream)
	assert.Empty(t, opts.ID)
	require.Len(t, opts.Fields, 2)
	assert.Equal(t, [2]string{"field1", "v1"}, opts.Fields[0])
	assert.Equal(t, [2]string{"field2", "v2"}, opts.Fields[1])
}

func TestParseXAddArgsNoMkStreamAndExplicitID(t *testing.T) {
	opts, err := parseXAddArgs([]any{"NOMKSTREAM", "5-0", "f", "v"})
	require.NoError(t, err)
	assert.False(t, opts.MakeStream)
	assert.Equal(t, "5-0", opts.ID)
}

func TestParseXAddArgsRejectsOddFieldCount(t *testing.T) {
	_, err := parseXAddArgs([]any{"*", "field1"})
	require.Error(t, err)
}

func TestParseXReadArgsWithGroupCountBlock(t *testing.T) {
	opts, err := parseXReadArgs("XREADGROUP", []any{
		"GROUP", "g1", "c1",
		"COUNT", 10,
		"BLOCK", 500,
		"STREAMS", "s1", "s2", "0", "0",
	})
	require.NoError(t, err)
	assert.Equal(t, "g1", opts.Group)
	assert.Equal(t, "c1", opts.Consumer)
	assert.True(t, opts.HasCount)
	assert.EqualValues(t, 10, opts.Count)
	assert.True(t, opts.HasBlock)
	assert.Equal(t, 500*time.Millisecond, opts.Block)
	assert.Equal(t, []string{"s1", "s2"}, opts.Order)
	assert.Equal(t, "0", opts.Streams["s1"])
}

func TestParseXReadArgsRejectsMissingStreamsClause(t *testing.T) {
	_, err := parseXReadArgs("XREAD", []any{"COUNT", 10})
	require.Error(t, err)
}

func TestParseXGroupArgsCreateWithMkStream(t *testing.T) {
	op, err := parseXGroupArgs([]any{"CREATE", "key1", "group1", "$", "MKSTREAM"})
	require.NoError(t, err)
	assert.Equal(t, "CREATE", op.Op)
	assert.Equal(t, "key1", op.Key)
	assert.Equal(t, "group1", op.Group)
	assert.Equal(t, "$", op.ID)
	assert.True(t, op.MkStream)
}

func TestParseXGroupArgsUnknownSubcommand(t *testing.T) {
	_, err := parseXGroupArgs([]any{"BOGUS", "key1", "group1"})
	require.Error(t, err)
}

func TestMsToDurationConvertsMilliseconds(t *testing.T) {
	assert.Equal(t, 250*time.Millisecond, msToDuration(250))
}
