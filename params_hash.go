// SPDX-License-Identifier: GPL-3.0-or-later

package ioredis

// parseFieldValuePairs decodes MSET/HSET's trailing arguments, per
// spec.md §4.2's "variadic (f, v) pairs or a single record object"
// rule. cmd names the command for the error message.
func parseFieldValuePairs(cmd string, args []any) ([][2][]byte, error) {
	if len(args) == 1 {
		if m, ok := args[0].(map[string]any); ok {
			out := make([][2][]byte, 0, len(m))
			for k, v := range m {
				out = append(out, [2][]byte{[]byte(k), normalizeValue(v)})
			}
			return out, nil
		}
	}
	if len(args)%2 != 0 {
		return nil, wrongNumberOfArgs(cmd)
	}
	out := make([][2][]byte, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		field, ok := toFieldName(args[i])
		if !ok {
			return nil, wrongNumberOfArgs(cmd)
		}
		out = append(out, [2][]byte{[]byte(field), normalizeValue(args[i+1])})
	}
	return out, nil
}

func toFieldName(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case []byte:
		return string(x), true
	default:
		return "", false
	}
}
