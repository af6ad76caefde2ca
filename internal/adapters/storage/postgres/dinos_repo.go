package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math"

	"dino-infographic/internal/domain/animals"
)

// Schema crea la tabla que DinosRepo lee. extra guarda los campos del
// fixture que no tienen columna propia.
const Schema = `
CREATE TABLE IF NOT EXISTS dinos (
	position  INTEGER PRIMARY KEY,
	species   TEXT NOT NULL,
	fact      TEXT NOT NULL DEFAULT '',
	height    DOUBLE PRECISION,
	weight    DOUBLE PRECISION,
	diet      TEXT NOT NULL DEFAULT '',
	"where"   TEXT NOT NULL DEFAULT '',
	"when"    TEXT NOT NULL DEFAULT '',
	extra     JSONB
)`

// DinosRepo es una fuente de fixture respaldada por la tabla dinos.
type DinosRepo struct {
	db *sql.DB
}

func NewDinosRepo(db *sql.DB) *DinosRepo {
	return &DinosRepo{db: db}
}

func (r *DinosRepo) Name() string { return "postgres:dinos" }

func (r *DinosRepo) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, Schema)
	return err
}

// Load devuelve los dinos en el orden de position.
func (r *DinosRepo) Load(ctx context.Context) ([]animals.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			species, fact,
			height, weight,
			diet, "where", "when",
			extra
		FROM dinos
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Record, 0)
	for rows.Next() {
		var (
			rec            animals.Record
			height, weight sql.NullFloat64
			extra          []byte
		)
		if err := rows.Scan(
			&rec.Species,
			&rec.Fact,
			&height,
			&weight,
			&rec.Diet,
			&rec.Where,
			&rec.When,
			&extra,
		); err != nil {
			return nil, err
		}

		rec.Height = nullToNaN(height)
		rec.Weight = nullToNaN(weight)

		if rec.Extra, err = decodeExtra(extra); err != nil {
			return nil, fmt.Errorf("dinos.extra for %s: %w", rec.Species, err)
		}

		out = append(out, rec)
	}

	return out, rows.Err()
}

// Insert agrega (o reemplaza) un dino en la posición dada.
func (r *DinosRepo) Insert(ctx context.Context, position int, rec animals.Record) error {
	extra, err := encodeExtra(rec.Extra)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO dinos (
			position, species, fact,
			height, weight,
			diet, "where", "when",
			extra
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (position) DO UPDATE SET
			species = EXCLUDED.species,
			fact = EXCLUDED.fact,
			height = EXCLUDED.height,
			weight = EXCLUDED.weight,
			diet = EXCLUDED.diet,
			"where" = EXCLUDED."where",
			"when" = EXCLUDED."when",
			extra = EXCLUDED.extra
	`,
		position,
		rec.Species,
		rec.Fact,
		nanToNull(rec.Height),
		nanToNull(rec.Weight),
		rec.Diet,
		rec.Where,
		rec.When,
		extra,
	)
	return err
}

// height/weight son NULL cuando el fixture no los trae
func nullToNaN(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}

func nanToNull(f float64) sql.NullFloat64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: f, Valid: true}
}

// extra vacío se guarda como NULL
func encodeExtra(m map[string]any) ([]byte, error) {
	if len(m) == 0 {
		return nil, nil
	}
	return json.Marshal(m)
}

func decodeExtra(b []byte) (map[string]any, error) {
	if len(b) == 0 {
		return nil, nil
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
