// Package animals modela los animales que se comparan en la grilla:
// el humano del formulario, los dinosaurios del fixture y la paloma.
//
// Los modelos no se sincronizan por su cuenta: cada uno pertenece a una
// sola página (grid.Page), que serializa el acceso.
package animals

import (
	"errors"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrUnknownProperty = errors.New("unknown property")
	ErrInvalidValue    = errors.New("invalid property value")
)

// Animal es el set de capacidades común a todas las variantes.
type Animal interface {
	ID() string
	Name() string
	Img() string
	Fact() string
	Height() string
	Weight() string
	Traits() Traits

	// Facts devuelve los candidatos que RandomFact puede elegir.
	Facts(other Animal) []string
	RandomFact(other Animal) string

	SetProperty(key string, value any) error
	Subscribe(fn Callback) *Subscription
}

// Traits son los atributos que usan los comparadores.
type Traits struct {
	Weight float64
	Height float64
	Diet   string
	Where  string
}

// Chooser devuelve un índice en [0, n).
type Chooser func(n int) int

type Option func(*base)

// WithChooser reemplaza la elección aleatoria (útil en tests).
func WithChooser(c Chooser) Option {
	return func(b *base) {
		if c != nil {
			b.choose = c
		}
	}
}

// base concentra lo que comparten las variantes. self apunta a la
// variante concreta para que los callbacks reciban el modelo correcto.
type base struct {
	id     string
	self   Animal
	hub    *hub
	choose Chooser
}

func newBase(opts []Option) base {
	b := base{
		id:     uuid.NewString(),
		hub:    &hub{},
		choose: rand.IntN,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (b *base) ID() string { return b.id }

// Subscribe agrega fn al final de la lista de suscriptores.
func (b *base) Subscribe(fn Callback) *Subscription {
	return b.hub.add(fn)
}

func (b *base) notify() {
	b.hub.notify(b.self)
}

func (b *base) pick(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	return candidates[b.choose(len(candidates))]
}

func defaultImg(name string) string {
	return "images/" + strings.ToLower(name) + ".png"
}

// formatNumber imprime como lo haría un template de JS: 5 => "5", 5.5 => "5.5".
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func orZero(f float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	return f
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	default:
		return 0, false
	}
}
