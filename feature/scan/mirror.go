package scan

import (
	"context"
	"encoding/json"

	"asset-registry/core/reconcile"
)

// EventsChannel receives the run id of every mirrored result.
const EventsChannel = "scan:events"

// Mirror copies published results to a surface shared between processes.
type Mirror interface {
	Store(ctx context.Context, result *reconcile.ScanResult) error
	Load(ctx context.Context) (*reconcile.ScanResult, error)
}

// KV is the subset of the cache client the mirror needs. *cache.Client satisfies it.
type KV interface {
	Set(ctx context.Context, key string, value []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Publish(ctx context.Context, channel string, message string) error
}

// RedisMirror keeps the latest result as one JSON document.
type RedisMirror struct {
	kv  KV
	key string
}

// NewRedisMirror creates a mirror writing under key.
func NewRedisMirror(kv KV, key string) *RedisMirror {
	return &RedisMirror{kv: kv, key: key}
}

// Store replaces the mirrored result and announces its run id.
func (m *RedisMirror) Store(ctx context.Context, result *reconcile.ScanResult) error {
	b, err := json.Marshal(result)
	if err != nil {
		return err
	}
	if err := m.kv.Set(ctx, m.key, b); err != nil {
		return err
	}
	return m.kv.Publish(ctx, EventsChannel, result.RunID)
}

// Load returns the mirrored result, or nil when nothing was mirrored yet.
func (m *RedisMirror) Load(ctx context.Context) (*reconcile.ScanResult, error) {
	b, err := m.kv.Get(ctx, m.key)
	if err != nil || b == nil {
		return nil, err
	}
	var result reconcile.ScanResult
	if err := json.Unmarshal(b, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
