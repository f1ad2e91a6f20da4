// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: github.com/bassosimone/nop unit.go — same "small,
// independently-testable pure conversion helpers" shape, generalized
// from byte-count formatting to the key/value normalization rules of
// spec.md §4.1.

package ioredis

import (
	"math"
	"strconv"
)

// normalizeKey converts a user-supplied key into the driver's key type,
// per spec.md §4.1. A nil or empty key fails with "invalid key" since
// the driver never accepts one (spec.md §3's Key invariant).
func normalizeKey(key []byte) (string, error) {
	if len(key) == 0 {
		return "", invalidKeyError()
	}
	return string(key), nil
}

// normalizeValue converts any legacy value argument (string, number,
// bool, []byte, nil) into the raw bytes the driver accepts. Numbers are
// stringified with the shortest round-trip decimal representation;
// +/-Infinity normalize to the "inf"/"-inf" tokens the driver expects.
func normalizeValue(v any) []byte {
	switch x := v.(type) {
	case nil:
		return nil
	case []byte:
		return x
	case string:
		return []byte(x)
	case bool:
		if x {
			return []byte("1")
		}
		return []byte("0")
	case int:
		return strconv.AppendInt(nil, int64(x), 10)
	case int64:
		return strconv.AppendInt(nil, x, 10)
	case float64:
		return []byte(formatScore(x))
	default:
		return []byte(fmtAny(x))
	}
}

// formatScore stringifies a sorted-set score (or any other
// driver-facing float) using the shortest round-trip decimal, mapping
// +/-Infinity to the "inf"/"-inf" tokens spec.md §4.1 and §4.3 require.
func formatScore(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}

// parseScore is formatScore's inverse, accepting the "inf"/"-inf"/
// "+inf" tokens a caller may pass as a score literal.
func parseScore(s string) (float64, error) {
	switch s {
	case "inf", "+inf":
		return math.Inf(1), nil
	case "-inf":
		return math.Inf(-1), nil
	default:
		return strconv.ParseFloat(s, 64)
	}
}

// fmtAny is the fallback stringifier for value types the adapter does
// not special-case (rarely exercised; legacy callers almost always pass
// strings, numbers, or buffers).
func fmtAny(v any) string {
	type stringer interface{ String() string }
	if s, ok := v.(stringer); ok {
		return s.String()
	}
	return ""
}

// normalizedString converts a driver string result back to the form
// callers expect: plain Go string, with bytes preserved as given.
func normalizedString(b []byte) string {
	return string(b)
}

// boolToFlag normalizes a driver boolean to the legacy 0/1 integer
// convention used by EXISTS, HEXISTS, SISMEMBER, SCRIPT EXISTS, and
// friends (spec.md §4.3).
func boolToFlag(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
