// SPDX-License-Identifier: GPL-3.0-or-later

package ioredis

import "strings"

// parseSetArgs decodes SET's trailing option tokens (spec.md §4.2's SET
// row) into a [NativeSetOptions]. args holds everything after the key
// and value; a single map[string]any is also accepted, carrying the
// same fields by name, for callers that use the object-options form.
func parseSetArgs(args []any) (NativeSetOptions, error) {
	if len(args) == 1 {
		if m, ok := args[0].(map[string]any); ok {
			return parseSetOptionsObject(m), nil
		}
	}

	var opts NativeSetOptions
	i := 0
	for i < len(args) {
		tok, ok := args[i].(string)
		if !ok {
			return NativeSetOptions{}, wrongNumberOfArgs("SET")
		}
		switch strings.ToUpper(tok) {
		case "EX", "PX", "EXAT", "PXAT":
			if i+1 >= len(args) {
				return NativeSetOptions{}, wrongNumberOfArgs("SET")
			}
			count, ok := toInt64(args[i+1])
			if !ok {
				return NativeSetOptions{}, wrongNumberOfArgs("SET")
			}
			opts.Expiry = NativeExpiry{Unit: strings.ToUpper(tok), Count: count}
			i += 2
		case "KEEPTTL":
			opts.Expiry.KeepTTL = true
			i++
		case "NX":
			opts.OnlyIfAbsent = true
			i++
		case "XX":
			opts.OnlyIfExists = true
			i++
		case "GET":
			opts.ReturnOld = true
			i++
		default:
			return NativeSetOptions{}, wrongNumberOfArgs("SET")
		}
	}
	return opts, nil
}

func parseSetOptionsObject(m map[string]any) NativeSetOptions {
	var opts NativeSetOptions
	if v, ok := toInt64(m["EX"]); ok {
		opts.Expiry = NativeExpiry{Unit: "EX", Count: v}
	}
	if v, ok := toInt64(m["PX"]); ok {
		opts.Expiry = NativeExpiry{Unit: "PX", Count: v}
	}
	if v, ok := toInt64(m["EXAT"]); ok {
		opts.Expiry = NativeExpiry{Unit: "EXAT", Count: v}
	}
	if v, ok := toInt64(m["PXAT"]); ok {
		opts.Expiry = NativeExpiry{Unit: "PXAT", Count: v}
	}
	if v, ok := m["KEEPTTL"].(bool); ok {
		opts.Expiry.KeepTTL = v
	}
	if v, ok := m["NX"].(bool); ok {
		opts.OnlyIfAbsent = v
	}
	if v, ok := m["XX"].(bool); ok {
		opts.OnlyIfExists = v
	}
	if v, ok := m["GET"].(bool); ok {
		opts.ReturnOld = v
	}
	return opts
}

// toInt64 converts a legacy call's numeric argument (int, int64,
// float64, or numeric string) to int64.
func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	case string:
		i, ok := parseIntStrict(n)
		return i, ok
	default:
		return 0, false
	}
}

func parseIntStrict(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	neg := false
	i := 0
	if s[0] == '+' || s[0] == '-' {
		neg = s[0] == '-'
		i = 1
	}
	if i == len(s) {
		return 0, false
	}
	var n int64
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		n = n*10 + int64(s[i]-'0')
	}
	if neg {
		n = -n
	}
	return n, true
}
