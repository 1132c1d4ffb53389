package client

import (
	"context"

	"github.com/linksnip/link-shortener/internal/model"
)

// Shortener defines the interface for the shortening service client.
type Shortener interface {
	Shorten(ctx context.Context, input model.FormInput) (model.ShortenedLink, error)
}
