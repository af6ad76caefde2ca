// seed copia un fixture (el embebido o FIXTURE_PATH) a la tabla dinos de
// Postgres, para servirlo después con DB_DSN.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"dino-infographic/assets"
	filefx "dino-infographic/internal/adapters/fixtures/file"
	pg "dino-infographic/internal/adapters/storage/postgres"
	"dino-infographic/internal/platform/config"
	"dino-infographic/internal/platform/logger"
	"dino-infographic/internal/ports/fixtures"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Options{}).Error("config error", logger.Fields{"err": err})
		os.Exit(1)
	}
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App + "-seed",
	})

	if err := run(cfg, log); err != nil {
		log.Error("seed failed", logger.Fields{"err": err})
		os.Exit(1)
	}
}

// run deja que los defers corran antes de salir.
func run(cfg *config.Config, log logger.Logger) error {
	if cfg.DBDSN == "" {
		return errors.New("DB_DSN is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.FixtureTimeout)
	defer cancel()

	var src fixtures.Source = filefx.New(assets.FS, assets.DinoFile)
	if cfg.FixturePath != "" {
		dir, name := filepath.Split(cfg.FixturePath)
		if dir == "" {
			dir = "."
		}
		src = filefx.New(os.DirFS(dir), name)
	}

	records, err := src.Load(ctx)
	if err != nil {
		return fmt.Errorf("load fixture from %s: %w", src.Name(), err)
	}

	db, err := pg.Open(ctx, cfg.DBDSN)
	if err != nil {
		return fmt.Errorf("open postgres: %w", err)
	}
	defer db.Close()

	repo := pg.NewDinosRepo(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	for i, rec := range records {
		if err := repo.Insert(ctx, i, rec); err != nil {
			return fmt.Errorf("insert %s: %w", rec.Species, err)
		}
	}

	log.Info("fixture seeded", logger.Fields{"source": src.Name(), "dinos": len(records)})
	return nil
}
