// SPDX-License-Identifier: GPL-3.0-or-later

package ioredis

import "time"

// parseBlockingArgs decodes the legacy BLPOP/BRPOP/BZPOPMIN/BZPOPMAX
// argument vector, where the timeout may be given either first or last
// (spec.md §4.2's blocking-pop row: "timeout may be first or last
// argument; detect via position of the numeric; legacy style accepts
// both").
func parseBlockingArgs(cmd string, args []any) ([]string, time.Duration, error) {
	if len(args) < 2 {
		return nil, 0, wrongNumberOfArgs(cmd)
	}

	if isNumericType(args[0]) {
		secs, _ := toFloat64(args[0])
		keys, err := toKeyList(args[1:])
		if err != nil {
			return nil, 0, err
		}
		return keys, secondsToDuration(secs), nil
	}

	last := args[len(args)-1]
	secs, ok := toFloat64(last)
	if !ok {
		return nil, 0, wrongNumberOfArgs(cmd)
	}
	keys, err := toKeyList(args[:len(args)-1])
	if err != nil {
		return nil, 0, err
	}
	return keys, secondsToDuration(secs), nil
}

// isNumericType reports whether v's Go type is a number, as opposed to
// a string key (which may still happen to parse as a number, but
// legacy call sites always pass the timeout as an actual numeric type).
func isNumericType(v any) bool {
	switch v.(type) {
	case int, int64, float64:
		return true
	default:
		return false
	}
}

func toKeyList(args []any) ([]string, error) {
	if len(args) == 0 {
		return nil, newArgumentError("at least one key is required")
	}
	out := make([]string, 0, len(args))
	for _, a := range args {
		k, ok := toFieldName(a)
		if !ok {
			return nil, newArgumentError("invalid key argument")
		}
		out = append(out, k)
	}
	return out, nil
}

func secondsToDuration(secs float64) time.Duration {
	return time.Duration(secs * float64(time.Second))
}
