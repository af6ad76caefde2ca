package animals

import (
	"fmt"
	"math"
)

const humanFact = "That's you"

type Human struct {
	base

	name   string
	feet   float64
	inches float64
	height float64
	weight float64
	diet   string
	where  string
}

// NewHuman crea el humano con los numéricos sin definir (NaN) hasta que
// llegue el formulario.
func NewHuman(name string, opts ...Option) *Human {
	h := &Human{
		base:   newBase(opts),
		name:   name,
		feet:   math.NaN(),
		inches: math.NaN(),
		height: math.NaN(),
		weight: math.NaN(),
	}
	h.self = h
	return h
}

func (h *Human) Name() string { return h.name }
func (h *Human) Img() string  { return "images/human.png" }
func (h *Human) Fact() string { return "" }

// Height usa 0 cuando feet/inches no son números.
func (h *Human) Height() string {
	return fmt.Sprintf("%s feet, %s inches", formatNumber(orZero(h.feet)), formatNumber(orZero(h.inches)))
}

// Weight no tiene fallback: un peso inválido se ve como NaN.
func (h *Human) Weight() string { return formatNumber(h.weight) }

func (h *Human) Traits() Traits {
	return Traits{
		Weight: h.weight,
		Height: h.height,
		Diet:   h.diet,
		Where:  h.where,
	}
}

func (h *Human) Facts(Animal) []string { return []string{humanFact} }

func (h *Human) RandomFact(Animal) string { return humanFact }

func (h *Human) SetProperty(key string, value any) error {
	switch key {
	case "name", "diet", "where":
		s, ok := asString(value)
		if !ok {
			return fmt.Errorf("%w: %s", ErrInvalidValue, key)
		}
		switch key {
		case "name":
			h.name = s
		case "diet":
			h.diet = s
		case "where":
			h.where = s
		}
	case "feet", "inches", "height", "weight":
		f, ok := asFloat(value)
		if !ok {
			return fmt.Errorf("%w: %s", ErrInvalidValue, key)
		}
		switch key {
		case "feet":
			h.feet = f
		case "inches":
			h.inches = f
		case "height":
			h.height = f
		case "weight":
			h.weight = f
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProperty, key)
	}

	h.notify()
	return nil
}

// HumanValues es lo que entrega el formulario.
type HumanValues struct {
	Name   string
	Feet   float64
	Inches float64
	Height float64
	Weight float64
	Diet   string
	Where  string
}

type Property struct {
	Key   string
	Value any
}

// Properties respeta el orden de los campos del formulario.
func (v HumanValues) Properties() []Property {
	return []Property{
		{Key: "name", Value: v.Name},
		{Key: "feet", Value: v.Feet},
		{Key: "inches", Value: v.Inches},
		{Key: "height", Value: v.Height},
		{Key: "weight", Value: v.Weight},
		{Key: "diet", Value: v.Diet},
		{Key: "where", Value: v.Where},
	}
}

// Apply asigna cada valor con SetProperty; cada asignación notifica.
func (h *Human) Apply(v HumanValues) error {
	for _, p := range v.Properties() {
		if err := h.SetProperty(p.Key, p.Value); err != nil {
			return err
		}
	}
	return nil
}
