// SPDX-License-Identifier: GPL-3.0-or-later

package ioredis

import "context"

// GeoMember is one (longitude, latitude, member) triple accepted by
// GEOADD.
type GeoMember struct {
	Longitude float64
	Latitude  float64
	Member    []byte
}

// GeoAdd implements GEOADD. The geo command family has no dedicated
// [NativeCommander] method — it is rare enough in practice that the
// adapter routes it through the raw command escape valve ([Client.Call])
// rather than widening the native-driver contract, per spec.md §4.2's
// closing note on non-dedicated commands.
func (c *Client) GeoAdd(ctx context.Context, key []byte, members ...GeoMember) (int64, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return 0, err
	}
	args := make([]any, 0, len(members)*3)
	for _, m := range members {
		args = append(args, formatScore(m.Longitude), formatScore(m.Latitude), m.Member)
	}
	return c.callInt64(ctx, "GEOADD", append([]any{k}, args...)...)
}

// GeoPos is one GEOPOS result: Known is false, and the coordinates are
// zero, when the member is unknown.
type GeoPos struct {
	Longitude float64
	Latitude  float64
	Known     bool
}

// GeoPos implements GEOPOS.
func (c *Client) GeoPos(ctx context.Context, key []byte, members ...[]byte) ([]GeoPos, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return nil, err
	}
	args := make([]any, 0, len(members)+1)
	args = append(args, k)
	for _, m := range members {
		args = append(args, m)
	}
	v, err := c.Call(ctx, "GEOPOS", args...)
	if err != nil {
		return nil, err
	}
	rows, _ := v.([]any)
	out := make([]GeoPos, len(rows))
	for i, row := range rows {
		pair, ok := row.([]any)
		if !ok || len(pair) != 2 {
			continue
		}
		lon, ok1 := toFloat64(pair[0])
		lat, ok2 := toFloat64(pair[1])
		if ok1 && ok2 {
			out[i] = GeoPos{Longitude: lon, Latitude: lat, Known: true}
		}
	}
	return out, nil
}

// GeoDist implements GEODIST.
func (c *Client) GeoDist(ctx context.Context, key []byte, member1, member2 []byte, unit string) (float64, bool, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return 0, false, err
	}
	args := []any{k, member1, member2}
	if unit != "" {
		args = append(args, unit)
	}
	v, err := c.Call(ctx, "GEODIST", args...)
	if err != nil {
		return 0, false, err
	}
	s := toReplyBytes(v)
	if s == nil {
		return 0, false, nil
	}
	f, parseErr := parseScore(string(s))
	if parseErr != nil {
		return 0, false, nil
	}
	return f, true, nil
}

// GeoSearch implements the GEOSEARCH member-radius form used by the
// ioredis client; raw tokens are forwarded unchanged after the key.
func (c *Client) GeoSearch(ctx context.Context, key []byte, tokens ...any) ([][]byte, error) {
	k, err := normalizeKey(key)
	if err != nil {
		return nil, err
	}
	v, err := c.Call(ctx, "GEOSEARCH", append([]any{k}, tokens...)...)
	if err != nil {
		return nil, err
	}
	rows, _ := v.([]any)
	out := make([][]byte, 0, len(rows))
	for _, r := range rows {
		out = append(out, toReplyBytes(r))
	}
	return out, nil
}
