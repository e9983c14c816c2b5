package tournament

import "context"

// Repository stores the encoded tournament record under an application key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
}
