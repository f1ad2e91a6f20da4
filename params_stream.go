// SPDX-License-Identifier: GPL-3.0-or-later

package ioredis

import (
	"strings"
	"time"
)

// parseTrimArgs decodes the `MAXLEN|MINID [=|~] threshold [LIMIT n]`
// grammar shared by XADD and XTRIM, per spec.md §4.2. Returns
// (opts, consumed) where consumed is the number of leading tokens in
// args belonging to the trim clause, or (zero, 0) when args does not
// start with MAXLEN/MINID.
func parseTrimArgs(args []any) (NativeTrimOptions, int, error) {
	if len(args) == 0 {
		return NativeTrimOptions{}, 0, nil
	}
	tok, ok := args[0].(string)
	if !ok {
		return NativeTrimOptions{}, 0, nil
	}
	var trim NativeTrimOptions
	switch strings.ToUpper(tok) {
	case "MAXLEN":
		trim.ByMinID = false
	case "MINID":
		trim.ByMinID = true
	default:
		return NativeTrimOptions{}, 0, nil
	}
	trim.Enabled = true
	i := 1
	if i < len(args) {
		if sym, ok := args[i].(string); ok && (sym == "=" || sym == "~") {
			trim.Approx = sym == "~"
			i++
		}
	}
	if i >= len(args) {
		return NativeTrimOptions{}, 0, wrongNumberOfArgs("XADD")
	}
	threshold, ok := toThresholdString(args[i])
	if !ok {
		return NativeTrimOptions{}, 0, wrongNumberOfArgs("XADD")
	}
	trim.Threshold = threshold
	i++
	if i+1 < len(args) {
		if lim, ok := args[i].(string); ok && strings.EqualFold(lim, "LIMIT") {
			n, ok := toInt64(args[i+1])
			if !ok {
				return NativeTrimOptions{}, 0, wrongNumberOfArgs("XADD")
			}
			trim.HasLimit = true
			trim.Limit = n
			i += 2
		}
	}
	return trim, i, nil
}

func toThresholdString(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case int64:
		return parseIntStrictInverse(x), true
	case int:
		return parseIntStrictInverse(int64(x)), true
	default:
		return "", false
	}
}

func parseIntStrictInverse(n int64) string {
	return normalizedString(normalizeValue(n))
}

// parseXAddArgs decodes XADD's full trailing argument vector:
// `[NOMKSTREAM] [trim clause] id field value [field value ...]`.
func parseXAddArgs(args []any) (NativeXAddOptions, error) {
	opts := NativeXAddOptions{MakeStream: true}
	i := 0
	if i < len(args) {
		if tok, ok := args[i].(string); ok && strings.EqualFold(tok, "NOMKSTREAM") {
			opts.MakeStream = false
			i++
		}
	}
	trim, consumed, err := parseTrimArgs(args[i:])
	if err != nil {
		return NativeXAddOptions{}, err
	}
	opts.Trim = trim
	i += consumed

	if i >= len(args) {
		return NativeXAddOptions{}, wrongNumberOfArgs("XADD")
	}
	id, ok := args[i].(string)
	if !ok {
		return NativeXAddOptions{}, wrongNumberOfArgs("XADD")
	}
	if id != "*" {
		opts.ID = id
	}
	i++

	rest := args[i:]
	if len(rest) == 0 || len(rest)%2 != 0 {
		return NativeXAddOptions{}, wrongNumberOfArgs("XADD")
	}
	for j := 0; j < len(rest); j += 2 {
		field, ok := toFieldName(rest[j])
		if !ok {
			return NativeXAddOptions{}, wrongNumberOfArgs("XADD")
		}
		value, ok := toFieldName(rest[j+1])
		if !ok {
			value = string(normalizeValue(rest[j+1]))
		}
		opts.Fields = append(opts.Fields, [2]string{field, value})
	}
	return opts, nil
}

// parseXReadArgs decodes XREAD/XREADGROUP's trailing argument vector:
// `[GROUP g c] [COUNT n] [BLOCK ms] [NOACK] STREAMS k1 .. kn id1 .. idn`.
func parseXReadArgs(cmd string, args []any) (NativeXReadOptions, error) {
	var opts NativeXReadOptions
	i := 0
	for i < len(args) {
		tok, ok := args[i].(string)
		if !ok {
			return NativeXReadOptions{}, wrongNumberOfArgs(cmd)
		}
		switch strings.ToUpper(tok) {
		case "GROUP":
			if i+2 >= len(args) {
				return NativeXReadOptions{}, wrongNumberOfArgs(cmd)
			}
			group, ok1 := args[i+1].(string)
			consumer, ok2 := args[i+2].(string)
			if !ok1 || !ok2 {
				return NativeXReadOptions{}, wrongNumberOfArgs(cmd)
			}
			opts.Group, opts.Consumer = group, consumer
			i += 3
		case "COUNT":
			if i+1 >= len(args) {
				return NativeXReadOptions{}, wrongNumberOfArgs(cmd)
			}
			n, ok := toInt64(args[i+1])
			if !ok {
				return NativeXReadOptions{}, wrongNumberOfArgs(cmd)
			}
			opts.HasCount = true
			opts.Count = n
			i += 2
		case "BLOCK":
			if i+1 >= len(args) {
				return NativeXReadOptions{}, wrongNumberOfArgs(cmd)
			}
			ms, ok := toInt64(args[i+1])
			if !ok {
				return NativeXReadOptions{}, wrongNumberOfArgs(cmd)
			}
			opts.HasBlock = true
			opts.Block = msToDuration(ms)
			i += 2
		case "NOACK":
			opts.NoAck = true
			i++
		case "STREAMS":
			i++
			goto streams
		default:
			return NativeXReadOptions{}, wrongNumberOfArgs(cmd)
		}
	}
	return NativeXReadOptions{}, wrongNumberOfArgs(cmd)

streams:
	rest := args[i:]
	if len(rest) == 0 || len(rest)%2 != 0 {
		return NativeXReadOptions{}, wrongNumberOfArgs(cmd)
	}
	half := len(rest) / 2
	opts.Streams = make(map[string]string, half)
	opts.Order = make([]string, 0, half)
	for k := 0; k < half; k++ {
		key, ok1 := toFieldName(rest[k])
		id, ok2 := toFieldName(rest[half+k])
		if !ok1 || !ok2 {
			return NativeXReadOptions{}, wrongNumberOfArgs(cmd)
		}
		opts.Streams[key] = id
		opts.Order = append(opts.Order, key)
	}
	return opts, nil
}

func msToDuration(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// xGroupOp describes one parsed XGROUP subcommand invocation, per
// spec.md §4.2's XGROUP row.
type xGroupOp struct {
	Op          string // CREATE, DESTROY, CREATECONSUMER, DELCONSUMER, SETID
	Key         string
	Group       string
	ID          string
	Consumer    string
	MkStream    bool
	EntriesRead int64
	HasEntriesRead bool
}

// parseXGroupArgs decodes `XGROUP <subcommand> key group ...`.
func parseXGroupArgs(args []any) (xGroupOp, error) {
	if len(args) < 3 {
		return xGroupOp{}, wrongNumberOfArgs("XGROUP")
	}
	sub, ok := args[0].(string)
	if !ok {
		return xGroupOp{}, wrongNumberOfArgs("XGROUP")
	}
	key, ok := toFieldName(args[1])
	if !ok {
		return xGroupOp{}, wrongNumberOfArgs("XGROUP")
	}
	group, ok := toFieldName(args[2])
	if !ok {
		return xGroupOp{}, wrongNumberOfArgs("XGROUP")
	}
	op := xGroupOp{Op: strings.ToUpper(sub), Key: key, Group: group}
	switch op.Op {
	case "CREATE":
		if len(args) < 4 {
			return xGroupOp{}, wrongNumberOfArgs("XGROUP")
		}
		id, ok := toFieldName(args[3])
		if !ok {
			return xGroupOp{}, wrongNumberOfArgs("XGROUP")
		}
		op.ID = id
		if len(args) >= 5 {
			if tok, ok := args[4].(string); ok && strings.EqualFold(tok, "MKSTREAM") {
				op.MkStream = true
			}
		}
	case "DESTROY":
		// no further arguments
	case "CREATECONSUMER", "DELCONSUMER":
		if len(args) < 4 {
			return xGroupOp{}, wrongNumberOfArgs("XGROUP")
		}
		consumer, ok := toFieldName(args[3])
		if !ok {
			return xGroupOp{}, wrongNumberOfArgs("XGROUP")
		}
		op.Consumer = consumer
	case "SETID":
		if len(args) < 4 {
			return xGroupOp{}, wrongNumberOfArgs("XGROUP")
		}
		id, ok := toFieldName(args[3])
		if !ok {
			return xGroupOp{}, wrongNumberOfArgs("XGROUP")
		}
		op.ID = id
		if len(args) >= 6 {
			if tok, ok := args[4].(string); ok && strings.EqualFold(tok, "ENTRIESREAD") {
				n, ok := toInt64(args[5])
				if !ok {
					return xGroupOp{}, wrongNumberOfArgs("XGROUP")
				}
				op.EntriesRead = n
				op.HasEntriesRead = true
			}
		}
	default:
		return xGroupOp{}, newArgumentError("unknown XGROUP subcommand: " + sub)
	}
	return op, nil
}
