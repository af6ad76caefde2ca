package grid

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("page not found")

// Repository guarda una Page por sesión.
type Repository interface {
	Get(ctx context.Context, sessionID string) (*Page, error)
	Save(ctx context.Context, sessionID string, p *Page) error
	Delete(ctx context.Context, sessionID string) (*Page, error)
}
