package grid

import (
	"encoding/json"
	"errors"
	"net/http"

	"dino-infographic/internal/domain/animals"
	"dino-infographic/internal/middleware"
	"dino-infographic/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}

	// Página (formulario + grilla)
	r.Get("/", indexHandler(svc, log))
	r.Post("/", submitHandler(svc, log))
	r.Post("/toggle", toggleHandler(svc, log))

	// Fixture tal cual quedó cargado
	r.Get("/dino.json", fixtureHandler(svc))

	r.Route("/api", func(ar chi.Router) {
		ar.Get("/grid", gridHandler(svc, log))
		ar.Delete("/session", resetHandler(svc, log))
	})
}

// gridResponse es el estado de la página de la sesión.
type gridResponse struct {
	Session string `json:"session"`
	Snapshot
}

// fixtureResponse replica el formato de dino.json.
type fixtureResponse struct {
	Dinos []animals.Record `json:"Dinos"`
}

func indexHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := pageFor(w, r, svc, log)
		if !ok {
			return
		}
		writePage(w, p, log)
	}
}

// submitHandler es el submit de #dino-compare. Sin fixture cargado la
// página se devuelve igual, sin cambios visibles.
func submitHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := pageFor(w, r, svc, log)
		if !ok {
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		if err := p.SubmitForm(r.PostForm); err != nil {
			switch {
			case errors.Is(err, ErrNotReady):
				sessionLog(r, log).Warn("submit ignored, grid not initialized", nil)
			default:
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}

		writePage(w, p, log)
	}
}

func toggleHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := pageFor(w, r, svc, log)
		if !ok {
			return
		}
		p.Toggle()
		writePage(w, p, log)
	}
}

// gridHandler godoc
// @Summary Estado de la grilla
// @Description Devuelve el estado de la página de la sesión actual: si la grilla ya se inicializó, la visibilidad del formulario y las cartas renderizadas en orden.
// @Tags grid
// @Produce json
// @Success 200 {object} gridResponse
// @Failure 400 {string} string "missing session"
// @Router /api/grid [get]
func gridHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := pageFor(w, r, svc, log)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, gridResponse{
			Session:  middleware.SessionID(r.Context()),
			Snapshot: p.Snapshot(),
		})
	}
}

// resetHandler godoc
// @Summary Descartar la sesión
// @Description Borra la página de la sesión actual; la próxima visita arma una grilla nueva.
// @Tags grid
// @Success 204
// @Failure 404 {string} string "page not found"
// @Router /api/session [delete]
func resetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid := middleware.SessionID(r.Context())
		if err := svc.Reset(r.Context(), sid); err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "page not found", http.StatusNotFound)
				return
			}
			sessionLog(r, log).Error("reset session failed", logger.Fields{"err": err})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// fixtureHandler godoc
// @Summary Fixture de dinosaurios
// @Description Devuelve los registros cargados al arrancar, con el mismo formato que dino.json.
// @Tags fixture
// @Produce json
// @Success 200 {object} fixtureResponse
// @Failure 503 {string} string "fixture not loaded"
// @Router /dino.json [get]
func fixtureHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := svc.Records()
		if err != nil {
			http.Error(w, "fixture not loaded", http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, http.StatusOK, fixtureResponse{Dinos: records})
	}
}

func pageFor(w http.ResponseWriter, r *http.Request, svc *Service, log logger.Logger) (*Page, bool) {
	sid := middleware.SessionID(r.Context())
	p, err := svc.PageFor(r.Context(), sid)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			http.Error(w, "missing session", http.StatusBadRequest)
			return nil, false
		}
		sessionLog(r, log).Error("load page failed", logger.Fields{"err": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
		return nil, false
	}
	return p, true
}

// sessionLog agrega la sesión del request a cada línea.
func sessionLog(r *http.Request, log logger.Logger) logger.Logger {
	return log.With(logger.Fields{"session": middleware.SessionID(r.Context())})
}

func writePage(w http.ResponseWriter, p *Page, log logger.Logger) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := p.Render(w); err != nil {
		log.Error("render page failed", logger.Fields{"err": err})
	}
}

// writeJSON igual que en los otros handlers: sin helper compartido todavía.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
