package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"dino-infographic/assets"
	filefx "dino-infographic/internal/adapters/fixtures/file"
	"dino-infographic/internal/adapters/fixtures/remote"
	mem "dino-infographic/internal/adapters/storage/memory"
	pg "dino-infographic/internal/adapters/storage/postgres"
	_ "dino-infographic/internal/docs"
	"dino-infographic/internal/domain/grid"
	"dino-infographic/internal/middleware"
	"dino-infographic/internal/platform/config"
	"dino-infographic/internal/platform/httpclient"
	"dino-infographic/internal/platform/logger"
	"dino-infographic/internal/ports/fixtures"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // nil => descarta logs
	Config *config.Config

	// Opcional: fuente explícita del fixture. Si no viene se elige por
	// config: DB, URL, archivo o el dino.json embebido.
	Fixtures fixtures.Source

	// Opcional: si viene (o hay DB_DSN en config), el fixture sale de Postgres.
	DB *sql.DB

	// Opciones para cada página nueva (tests: chooser/shuffle fijos).
	PageOptions []grid.PageOption
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.Session)
	r.Use(middleware.RequestLog(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	timeout := cfg.FixtureTimeout
	if timeout <= 0 {
		timeout = config.DefaultFixtureTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	src := opts.Fixtures
	if src == nil {
		src = fixtureSource(ctx, cfg, opts.DB, timeout, log)
	}

	gridSvc := grid.NewService(mem.NewPageRepo(), log, opts.PageOptions...)

	// Un fallo de carga ya quedó logueado en Bootstrap; el server sigue
	// sirviendo el formulario sin grilla.
	_ = gridSvc.Bootstrap(ctx, src)

	grid.RegisterRoutes(r, gridSvc, log)

	return r
}

func fixtureSource(ctx context.Context, cfg *config.Config, db *sql.DB, timeout time.Duration, log logger.Logger) fixtures.Source {
	if db == nil && cfg.DBDSN != "" {
		opened, err := pg.Open(ctx, cfg.DBDSN)
		if err != nil {
			log.Warn("postgres unavailable, falling back", logger.Fields{"err": err})
		} else {
			db = opened
		}
	}
	if db != nil {
		repo := pg.NewDinosRepo(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Warn("ensure dinos schema failed", logger.Fields{"err": err})
		}
		return repo
	}

	if cfg.FixtureURL != "" {
		return remote.New(httpclient.New(timeout), cfg.FixtureURL)
	}

	if cfg.FixturePath != "" {
		dir, name := filepath.Split(cfg.FixturePath)
		if dir == "" {
			dir = "."
		}
		return filefx.New(os.DirFS(dir), name)
	}

	return filefx.New(assets.FS, assets.DinoFile)
}
