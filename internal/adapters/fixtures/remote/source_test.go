package remote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dino-infographic/internal/domain/animals"
	"dino-infographic/internal/platform/httpclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FetchesFixture(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Dinos":[{"species":"Rex","weight":10},{"species":"Pigeon"}]}`))
	}))
	defer ts.Close()

	recs, err := New(httpclient.New(time.Second), ts.URL+"/dino.json").Load(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "Rex", recs[0].Species)
	assert.Equal(t, 10.0, recs[0].Weight)
}

func TestLoad_MissingDinosKey(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Dinosaurs":[]}`))
	}))
	defer ts.Close()

	_, err := New(httpclient.New(time.Second), ts.URL).Load(context.Background())
	assert.True(t, errors.Is(err, animals.ErrMissingDinos))
}

func TestLoad_UpstreamFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := New(httpclient.New(time.Second), ts.URL).Load(context.Background())

	var httpErr *httpclient.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
}
