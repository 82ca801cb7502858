package out

import "context"

// KeyValueStore is the persistence backend: string values addressed by string keys.
// A missing key reports ok=false with a nil error.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
