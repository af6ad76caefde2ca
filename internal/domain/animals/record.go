package animals

import (
	"encoding/json"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Record es un dinosaurio tal como viene del fixture. Los campos que no
// conocemos se copian tal cual en Extra.
type Record struct {
	Species string
	Fact    string
	Height  float64 // NaN si falta
	Weight  float64 // NaN si falta
	Diet    string
	Where   string
	When    string

	Extra map[string]any
}

// ErrMissingDinos indica un documento sin lista "Dinos" (ausente o null).
// Una lista vacía es válida.
var ErrMissingDinos = errors.New(`fixture has no "Dinos" list`)

// Fixture es el documento completo: {"Dinos": [...]}.
type Fixture struct {
	Dinos []Record `json:"Dinos" yaml:"Dinos"`
}

// Records devuelve la lista del documento, vacía incluida.
func (f Fixture) Records() ([]Record, error) {
	if f.Dinos == nil {
		return nil, ErrMissingDinos
	}
	return f.Dinos, nil
}

// RecordFromMap copia un registro genérico (JSON, YAML o SQL) sin validar.
func RecordFromMap(m map[string]any) Record {
	rec := Record{
		Height: math.NaN(),
		Weight: math.NaN(),
	}
	for k, v := range m {
		switch k {
		case "species":
			rec.Species = stringOf(v)
		case "fact":
			rec.Fact = stringOf(v)
		case "diet":
			rec.Diet = stringOf(v)
		case "where":
			rec.Where = stringOf(v)
		case "when":
			rec.When = stringOf(v)
		case "height":
			rec.Height = numberOf(v)
		case "weight":
			rec.Weight = numberOf(v)
		default:
			if rec.Extra == nil {
				rec.Extra = map[string]any{}
			}
			rec.Extra[k] = v
		}
	}
	return rec
}

// Map es la inversa de RecordFromMap. Los números NaN se omiten porque
// JSON no los soporta.
func (r Record) Map() map[string]any {
	out := make(map[string]any, len(r.Extra)+7)
	for k, v := range r.Extra {
		out[k] = v
	}
	out["species"] = r.Species
	out["fact"] = r.Fact
	out["diet"] = r.Diet
	out["where"] = r.Where
	if r.When != "" {
		out["when"] = r.When
	}
	if !math.IsNaN(r.Height) && !math.IsInf(r.Height, 0) {
		out["height"] = r.Height
	}
	if !math.IsNaN(r.Weight) && !math.IsInf(r.Weight, 0) {
		out["weight"] = r.Weight
	}
	return out
}

func (r *Record) UnmarshalJSON(b []byte) error {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	*r = RecordFromMap(m)
	return nil
}

func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Map())
}

func stringOf(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return formatNumber(s)
	case int:
		return strconv.Itoa(s)
	default:
		return ""
	}
}

// numberOf sigue la coerción de JS: "70" => 70, basura => NaN.
func numberOf(v any) float64 {
	switch n := v.(type) {
	case string:
		return ParseNumber(n)
	case nil:
		return math.NaN()
	default:
		if f, ok := asFloat(n); ok {
			return f
		}
		return math.NaN()
	}
}

// decimalLiteral es la forma decimal que acepta Number(): sin "_", sin
// "inf"/"nan" y sin floats hexadecimales.
var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ParseNumber convierte como Number() de JS: vacío => 0, inválido => NaN.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			return parseRadix(s[2:], 16)
		case 'o', 'O':
			return parseRadix(s[2:], 8)
		case 'b', 'B':
			return parseRadix(s[2:], 2)
		}
	}

	if !decimalLiteral.MatchString(s) {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	// fuera de rango ParseFloat ya devuelve ±Inf o 0, igual que JS
	return f
}

// parseRadix acumula en float64 para no desbordar con literales largos.
func parseRadix(digits string, base int) float64 {
	var f float64
	for _, r := range digits {
		d := strings.IndexRune("0123456789abcdef", unicode.ToLower(r))
		if d < 0 || d >= base {
			return math.NaN()
		}
		f = f*float64(base) + float64(d)
	}
	return f
}
