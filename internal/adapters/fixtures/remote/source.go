package remote

import (
	"context"
	"fmt"

	"dino-infographic/internal/domain/animals"
	"dino-infographic/internal/platform/httpclient"
)

// Source baja el fixture por HTTP, como el fetch('dino.json') del navegador.
type Source struct {
	client *httpclient.Client
	url    string
}

func New(client *httpclient.Client, url string) *Source {
	return &Source{client: client, url: url}
}

func (s *Source) Name() string { return "remote:" + s.url }

func (s *Source) Load(ctx context.Context) ([]animals.Record, error) {
	var fx animals.Fixture
	if err := s.client.GetJSON(ctx, s.url, &fx); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", s.url, err)
	}
	return fx.Records()
}
