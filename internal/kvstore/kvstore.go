// Package kvstore provides the persistent key-value store the storefront
// state is committed to: durable string storage keyed by name, surviving
// restarts. Backends are interchangeable; capacity-bounded ones report
// common.ErrQuotaExceeded, which callers treat as non-fatal (log and skip
// persistence, in-memory state stays authoritative).
package kvstore

import "context"

// Store is the contract every backend implements. Get returns
// common.ErrNotFound when the key is absent.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
}
