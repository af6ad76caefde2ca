package grid

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"dino-infographic/internal/middleware"
	"dino-infographic/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitHandler_UnreadyLogsWithSession(t *testing.T) {
	var logs bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Debug, Out: &logs})

	svc := NewService(newTestRepo(), log)
	_ = svc.Bootstrap(context.Background(), staticSource{err: errors.New("boom")})

	r := chi.NewRouter()
	r.Use(middleware.Session)
	RegisterRoutes(r, svc, log)

	form := url.Values{"name": {"Ann"}, "weight": {"130"}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<form id="dino-compare"`)
	assert.NotContains(t, rec.Body.String(), `class="grid-item"`)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	var warn string
	for _, line := range strings.Split(logs.String(), "\n") {
		if strings.Contains(line, "submit ignored") {
			warn = line
		}
	}
	require.NotEmpty(t, warn)
	assert.Contains(t, warn, "level=warn")
	assert.Contains(t, warn, "session="+cookies[0].Value)
}
