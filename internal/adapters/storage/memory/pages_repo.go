package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"dino-infographic/internal/domain/grid"
)

type pageRepo struct {
	mu        sync.RWMutex
	bySession map[string]*grid.Page
}

// NewPageRepo guarda las páginas en memoria: viven lo que vive el proceso.
func NewPageRepo() grid.Repository {
	return &pageRepo{
		bySession: make(map[string]*grid.Page),
	}
}

func (r *pageRepo) Get(ctx context.Context, sessionID string) (*grid.Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.bySession[sessionID]
	if !ok {
		return nil, grid.ErrNotFound
	}
	return p, nil
}

func (r *pageRepo) Save(ctx context.Context, sessionID string, p *grid.Page) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(sessionID) == "" {
		return errors.New("session id required")
	}
	if p == nil {
		return errors.New("page required")
	}
	r.bySession[sessionID] = p
	return nil
}

func (r *pageRepo) Delete(ctx context.Context, sessionID string) (*grid.Page, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.bySession[sessionID]
	if !ok {
		return nil, grid.ErrNotFound
	}
	delete(r.bySession, sessionID)
	return p, nil
}
