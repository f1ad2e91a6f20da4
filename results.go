// SPDX-License-Identifier: GPL-3.0-or-later

package ioredis

// This file implements the Result Translator of spec.md §4.3: shaping
// the native driver's structured results back into the flat,
// legacy-compatible shapes callers expect.

// zMembersToFlat flattens `{element, score}` records to
// `[m, s, m, s, ...]` with scores as shortest-round-trip decimal
// strings, per spec.md §4.3's sorted-set rule.
func zMembersToFlat(members []NativeZMember) []any {
	out := make([]any, 0, len(members)*2)
	for _, m := range members {
		out = append(out, m.Member, formatScore(m.Score))
	}
	return out
}

// hashPairsToRecord converts [][2][]byte field/value pairs to a
// key->value map, preserving bytes on buffer paths.
func hashPairsToRecord(pairs [][2][]byte) map[string][]byte {
	out := make(map[string][]byte, len(pairs))
	for _, p := range pairs {
		out[string(p[0])] = p[1]
	}
	return out
}

// streamEntry is one flattened `[id, [f, v, f, v, ...]]` record, the
// shape spec.md §3 and §4.3 require for stream range/read output
// regardless of the driver's native record shape.
type streamEntry struct {
	ID     string
	Fields []any
}

func streamEntriesToFlat(entries []NativeStreamEntry, count int64, hasCount bool) []streamEntry {
	if hasCount && count >= 0 && int64(len(entries)) > count {
		entries = entries[:count]
	}
	out := make([]streamEntry, len(entries))
	for i, e := range entries {
		fields := make([]any, 0, len(e.Fields)*2)
		for _, fv := range e.Fields {
			fields = append(fields, fv[0], fv[1])
		}
		out[i] = streamEntry{ID: e.ID, Fields: fields}
	}
	return out
}

// streamsMapToFlat flattens an XREAD/XREADGROUP result (keyed by
// stream name) into `[[key, [[id, [f,v,...]], ...]], ...]`, preserving
// the order the caller's STREAMS clause requested.
type streamResult struct {
	Key     string
	Entries []streamEntry
}

func streamsMapToFlat(m map[string][]NativeStreamEntry, order []string) []streamResult {
	out := make([]streamResult, 0, len(order))
	for _, key := range order {
		entries, ok := m[key]
		if !ok {
			continue
		}
		out = append(out, streamResult{Key: key, Entries: streamEntriesToFlat(entries, 0, false)})
	}
	return out
}

// ttlResult passes through the TTL specials -1 (no expire) and -2
// (missing key) unchanged, per spec.md §4.3.
func ttlResult(d int64) int64 {
	return d
}
