package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type ctxKey string

const sessionKey ctxKey = "session"

// SessionCookie es la cookie que identifica la página del navegador.
const SessionCookie = "dino_session"

// Session asegura que cada request tenga un id de sesión:
// - Si viene la cookie con un UUID válido => se reutiliza.
// - Si no => se genera uno nuevo y se setea la cookie.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(SessionCookie); err == nil {
			if u, err := uuid.Parse(strings.TrimSpace(c.Value)); err == nil {
				id = u.String()
			}
		}

		if id == "" {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), sessionKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionID devuelve "" si el request no pasó por Session.
func SessionID(ctx context.Context) string {
	v, _ := ctx.Value(sessionKey).(string)
	return v
}
