package fixtures

import (
	"context"

	"dino-infographic/internal/domain/animals"
)

// Source entrega los registros del fixture (el "fetch('dino.json')").
type Source interface {
	Name() string
	Load(ctx context.Context) ([]animals.Record, error)
}
