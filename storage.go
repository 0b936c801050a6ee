package resdesk

import "context"

// KeyValueStore is a string key-value store for small pieces of session state.
type KeyValueStore interface {
	// Get returns the value stored under key.
	// Returns ENOTFOUND if the key does not exist.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}
