package catalog

import "context"

// ImageStorage stores product images uploaded with listings.
// Implementations live in infrastructure/storage.
type ImageStorage interface {
	Upload(ctx context.Context, storageKey string, data []byte, contentType string) error
}
