// SPDX-License-Identifier: GPL-3.0-or-later

package ioredis

import (
	"context"
	"strings"
	"time"
)

// ClusterClient is the cluster variant of [Client] (spec.md §4.9): same
// command surface and parameter/result translators, with cluster-scoped
// aggregation for DBSIZE/LASTSAVE/TIME/CLIENT ID/INFO, sharded publish,
// and an opaque cluster scan cursor.
type ClusterClient struct {
	*Client
	slotAffinity *slotAffinityCache
}

// NewClusterClient builds a cluster-mode client from cfg, wiring
// [newGoRedisCluster] as the native-conn factory. [connectionManager]
// only needs cfg's ambient fields (logging, retries, timeouts), so
// those are projected into a [*Config] via [ClusterConfig.toAdapterConfig]
// while the node list stays with the cluster-specific native driver
// factory closure.
func NewClusterClient(cfg *ClusterConfig) *ClusterClient {
	if cfg == nil {
		cfg = NewClusterConfig()
	}
	adapted := cfg.toAdapterConfig()
	client := &Client{
		cfg:     adapted,
		scripts: newScriptCache(),
		kind:    "cluster",
	}
	client.cm = newConnectionManager(adapted, func(*Config) NativeConn {
		return newGoRedisCluster(cfg)
	})
	client.pubsub = newPubSubBridge(client)
	return &ClusterClient{Client: client, slotAffinity: newSlotAffinityCache()}
}

func (c *ClusterClient) clusterConn(ctx context.Context) (NativeClusterConn, error) {
	conn, err := c.conn(ctx)
	if err != nil {
		return nil, err
	}
	cc, ok := conn.(NativeClusterConn)
	if !ok {
		return nil, newArgumentError("native connection does not support cluster operations")
	}
	return cc, nil
}

// DBSize sums DBSIZE across every cluster node.
func (c *ClusterClient) DBSize(ctx context.Context) (int64, error) {
	cc, err := c.clusterConn(ctx)
	if err != nil {
		return 0, err
	}
	var total int64
	err = cc.ForEachNode(ctx, func(ctx context.Context, node NativeConn) error {
		n, err := node.DBSize(ctx)
		if err != nil {
			return err
		}
		total += n
		return nil
	})
	return total, err
}

// LastSave returns the maximum LASTSAVE timestamp across nodes.
func (c *ClusterClient) LastSave(ctx context.Context) (time.Time, error) {
	cc, err := c.clusterConn(ctx)
	if err != nil {
		return time.Time{}, err
	}
	var max time.Time
	err = cc.ForEachNode(ctx, func(ctx context.Context, node NativeConn) error {
		t, err := node.LastSave(ctx)
		if err != nil {
			return err
		}
		if t.After(max) {
			max = t
		}
		return nil
	})
	return max, err
}

// Time returns TIME from the first node reached.
func (c *ClusterClient) Time(ctx context.Context) (time.Time, error) {
	cc, err := c.clusterConn(ctx)
	if err != nil {
		return time.Time{}, err
	}
	var result time.Time
	var done bool
	err = cc.ForEachNode(ctx, func(ctx context.Context, node NativeConn) error {
		if done {
			return nil
		}
		t, err := node.Time(ctx)
		if err != nil {
			return err
		}
		result, done = t, true
		return nil
	})
	return result, err
}

// ClientID returns CLIENT ID from the first node reached.
func (c *ClusterClient) ClientID(ctx context.Context) (int64, error) {
	cc, err := c.clusterConn(ctx)
	if err != nil {
		return 0, err
	}
	var result int64
	var done bool
	err = cc.ForEachNode(ctx, func(ctx context.Context, node NativeConn) error {
		if done {
			return nil
		}
		id, err := node.ClientID(ctx)
		if err != nil {
			return err
		}
		result, done = id, true
		return nil
	})
	return result, err
}

// Echo returns ECHO from the first node reached.
func (c *ClusterClient) Echo(ctx context.Context, message []byte) ([]byte, error) {
	cc, err := c.clusterConn(ctx)
	if err != nil {
		return nil, err
	}
	var result []byte
	var done bool
	err = cc.ForEachNode(ctx, func(ctx context.Context, node NativeConn) error {
		if done {
			return nil
		}
		v, err := node.Echo(ctx, message)
		if err != nil {
			return err
		}
		result, done = v, true
		return nil
	})
	return result, err
}

// Info concatenates every node's INFO output with newlines, per
// spec.md §4.9.
func (c *ClusterClient) Info(ctx context.Context, section string) (string, error) {
	cc, err := c.clusterConn(ctx)
	if err != nil {
		return "", err
	}
	var parts []string
	err = cc.ForEachNode(ctx, func(ctx context.Context, node NativeConn) error {
		s, err := node.Info(ctx, section)
		if err != nil {
			return err
		}
		parts = append(parts, s)
		return nil
	})
	if err != nil {
		return "", err
	}
	return strings.Join(parts, "\n"), nil
}
