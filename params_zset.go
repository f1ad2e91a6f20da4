// SPDX-License-Identifier: GPL-3.0-or-later

package ioredis

import "strings"

// parseZAddArgs decodes ZADD's trailing tokens into a
// [NativeZAddOptions] plus the `(element, score)` member list, per
// spec.md §4.2's ZADD row.
func parseZAddArgs(args []any) (NativeZAddOptions, []NativeZMember, error) {
	var opts NativeZAddOptions
	i := 0
loop:
	for i < len(args) {
		tok, ok := args[i].(string)
		if !ok {
			break loop
		}
		switch strings.ToUpper(tok) {
		case "NX":
			opts.OnlyIfAbsent = true
			i++
		case "XX":
			opts.OnlyIfExists = true
			i++
		case "CH":
			opts.Changed = true
			i++
		case "INCR":
			opts.Increment = true
			i++
		default:
			break loop
		}
	}

	rest := args[i:]
	if len(rest) == 0 || len(rest)%2 != 0 {
		return NativeZAddOptions{}, nil, wrongNumberOfArgs("ZADD")
	}
	members := make([]NativeZMember, 0, len(rest)/2)
	for j := 0; j < len(rest); j += 2 {
		score, ok := toFloat64(rest[j])
		if !ok {
			return NativeZAddOptions{}, nil, wrongNumberOfArgs("ZADD")
		}
		member := normalizeValue(rest[j+1])
		members = append(members, NativeZMember{Member: member, Score: score})
	}
	if opts.Increment && len(members) != 1 {
		return NativeZAddOptions{}, nil, wrongNumberOfArgs("ZADD")
	}
	return opts, members, nil
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case string:
		f, err := parseScore(n)
		return f, err == nil
	case []byte:
		f, err := parseScore(string(n))
		return f, err == nil
	default:
		return 0, false
	}
}

// parseScoreBoundary decodes a ZRANGEBYSCORE/ZREVRANGEBYSCORE boundary
// token: "-inf"/"+inf"/"inf", an optional "(" exclusive prefix, or a
// bare numeric literal.
func parseScoreBoundary(tok string) (NativeRangeBoundary, error) {
	switch tok {
	case "-inf":
		return NativeRangeBoundary{Infinite: -1}, nil
	case "+inf", "inf":
		return NativeRangeBoundary{Infinite: 1}, nil
	}
	if strings.HasPrefix(tok, "(") {
		rest := tok[1:]
		if _, err := parseScore(rest); err != nil {
			return NativeRangeBoundary{}, err
		}
		return NativeRangeBoundary{Value: rest, Exclusive: true}, nil
	}
	if _, err := parseScore(tok); err != nil {
		return NativeRangeBoundary{}, err
	}
	return NativeRangeBoundary{Value: tok}, nil
}

// parseLexBoundary decodes a ZRANGEBYLEX/ZREVRANGEBYLEX boundary token:
// "-", "+", "[value", or "(value".
func parseLexBoundary(tok string) (NativeRangeBoundary, error) {
	switch {
	case tok == "-":
		return NativeRangeBoundary{Infinite: -1}, nil
	case tok == "+":
		return NativeRangeBoundary{Infinite: 1}, nil
	case strings.HasPrefix(tok, "["):
		return NativeRangeBoundary{Value: tok[1:]}, nil
	case strings.HasPrefix(tok, "("):
		return NativeRangeBoundary{Value: tok[1:], Exclusive: true}, nil
	default:
		return NativeRangeBoundary{}, newArgumentError("invalid lex boundary: " + tok)
	}
}

// parseRangeOptions decodes the trailing `min max [LIMIT offset count]
// [WITHSCORES]` argument vector shared by the BYSCORE/BYLEX range
// command family. byLex selects lex- over score-boundary parsing.
// reverse sorts the parsed boundaries ascending before returning, per
// spec.md §4.4's "adapter always sorts boundaries ascending before
// dispatch for reverse ranges" rule, while opts.Reverse still records
// the caller's original direction.
func parseRangeOptions(cmd string, args []any, byLex, reverse bool) (NativeRangeOptions, error) {
	if len(args) < 2 {
		return NativeRangeOptions{}, wrongNumberOfArgs(cmd)
	}
	minTok, ok1 := args[0].(string)
	maxTok, ok2 := args[1].(string)
	if !ok1 || !ok2 {
		return NativeRangeOptions{}, wrongNumberOfArgs(cmd)
	}

	parse := parseScoreBoundary
	if byLex {
		parse = parseLexBoundary
	}
	min, err := parse(minTok)
	if err != nil {
		return NativeRangeOptions{}, err
	}
	max, err := parse(maxTok)
	if err != nil {
		return NativeRangeOptions{}, err
	}
	if reverse {
		min, max = max, min
	}

	opts := NativeRangeOptions{Min: min, Max: max, Reverse: reverse}
	i := 2
	for i < len(args) {
		tok, ok := args[i].(string)
		if !ok {
			return NativeRangeOptions{}, wrongNumberOfArgs(cmd)
		}
		switch strings.ToUpper(tok) {
		case "WITHSCORES":
			opts.WithScores = true
			i++
		case "LIMIT":
			if i+2 >= len(args) {
				return NativeRangeOptions{}, wrongNumberOfArgs(cmd)
			}
			offset, ok1 := toInt64(args[i+1])
			count, ok2 := toInt64(args[i+2])
			if !ok1 || !ok2 {
				return NativeRangeOptions{}, wrongNumberOfArgs(cmd)
			}
			opts.HasLimit = true
			opts.Offset = offset
			opts.Count = count
			i += 3
		default:
			return NativeRangeOptions{}, wrongNumberOfArgs(cmd)
		}
	}
	return opts, nil
}
