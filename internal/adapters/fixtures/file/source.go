package file

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"dino-infographic/internal/domain/animals"

	"gopkg.in/yaml.v3"
)

// Source lee el fixture desde un fs.FS: el embebido o os.DirFS.
// .yaml/.yml se leen como YAML, el resto como JSON.
type Source struct {
	fsys fs.FS
	name string
}

func New(fsys fs.FS, name string) *Source {
	return &Source{fsys: fsys, name: name}
}

func (s *Source) Name() string { return "file:" + s.name }

func (s *Source) Load(ctx context.Context) ([]animals.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(s.fsys, s.name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.name, err)
	}

	switch strings.ToLower(path.Ext(s.name)) {
	case ".yaml", ".yml":
		return decodeYAML(data)
	default:
		return decodeJSON(data)
	}
}

func decodeJSON(data []byte) ([]animals.Record, error) {
	var fx animals.Fixture
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&fx); err != nil {
		return nil, fmt.Errorf("parse json fixture: %w", err)
	}
	return fx.Records()
}

func decodeYAML(data []byte) ([]animals.Record, error) {
	var doc struct {
		Dinos []map[string]any `yaml:"Dinos"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml fixture: %w", err)
	}
	if doc.Dinos == nil {
		return nil, animals.ErrMissingDinos
	}
	out := make([]animals.Record, 0, len(doc.Dinos))
	for _, m := range doc.Dinos {
		out = append(out, animals.RecordFromMap(m))
	}
	return out, nil
}
