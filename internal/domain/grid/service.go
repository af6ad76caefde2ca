package grid

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"dino-infographic/internal/domain/animals"
	"dino-infographic/internal/platform/logger"
	"dino-infographic/internal/ports/fixtures"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	log  logger.Logger
	opts []PageOption

	// evita crear dos páginas para la misma sesión
	createMu sync.Mutex

	mu      sync.RWMutex
	source  string
	records []animals.Record
	loadErr error
	loaded  bool
}

func NewService(repo Repository, log logger.Logger, opts ...PageOption) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo: repo,
		log:  log,
		opts: opts,
	}
}

// Bootstrap carga el fixture una vez al arrancar. Si falla, se loguea y la
// inicialización queda cortada: las páginas se crean sin datos. No hay
// reintentos.
func (s *Service) Bootstrap(ctx context.Context, src fixtures.Source) error {
	if src == nil {
		return fmt.Errorf("%w: nil fixture source", ErrInvalidInput)
	}

	// una lista vacía es válida: la grilla queda solo con el humano
	records, err := src.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.source = src.Name()
	s.loaded = true
	if err != nil {
		s.loadErr = fmt.Errorf("load fixture from %s: %w", src.Name(), err)
		s.records = nil
		s.log.Error("error during app initialization", logger.Fields{
			"source": src.Name(),
			"err":    err,
		})
		return s.loadErr
	}

	s.loadErr = nil
	s.records = records
	s.log.Info("fixture loaded", logger.Fields{
		"source": src.Name(),
		"dinos":  len(records),
	})
	return nil
}

// Records devuelve una copia de lo cargado, o el error de carga.
func (s *Service) Records() ([]animals.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return nil, ErrNotReady
	}
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	out := make([]animals.Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *Service) Source() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source
}

// PageFor devuelve la página de la sesión y la crea si no existe.
func (s *Service) PageFor(ctx context.Context, sessionID string) (*Page, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidInput
	}

	if p, err := s.repo.Get(ctx, sessionID); err == nil {
		return p, nil
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	s.createMu.Lock()
	defer s.createMu.Unlock()

	if p, err := s.repo.Get(ctx, sessionID); err == nil {
		return p, nil
	}

	var p *Page
	if records, err := s.Records(); err != nil {
		p = NewUnreadyPage()
	} else {
		p = NewPage(records, s.opts...)
	}

	if err := s.repo.Save(ctx, sessionID, p); err != nil {
		return nil, err
	}
	s.log.With(logger.Fields{"session": sessionID}).Debug("page created", logger.Fields{"ready": p.ready})
	return p, nil
}

// Reset descarta la página de la sesión y suelta sus suscripciones.
func (s *Service) Reset(ctx context.Context, sessionID string) error {
	p, err := s.repo.Delete(ctx, sessionID)
	if err != nil {
		return err
	}
	p.Close()
	return nil
}
