package animals

import "fmt"

type Dino struct {
	base
	rec Record
}

func NewDino(rec Record, opts ...Option) *Dino {
	d := &Dino{base: newBase(opts), rec: rec}
	d.self = d
	return d
}

// FromRecord elige la variante según la especie.
func FromRecord(rec Record, opts ...Option) Animal {
	if rec.Species == "Pigeon" {
		return NewPigeon(rec, opts...)
	}
	return NewDino(rec, opts...)
}

func (d *Dino) Name() string   { return d.rec.Species }
func (d *Dino) Img() string    { return defaultImg(d.Name()) }
func (d *Dino) Fact() string   { return d.rec.Fact }
func (d *Dino) Height() string { return formatNumber(d.rec.Height) + " feet" }
func (d *Dino) Weight() string { return formatNumber(d.rec.Weight) }

func (d *Dino) Traits() Traits {
	return Traits{
		Weight: d.rec.Weight,
		Height: d.rec.Height,
		Diet:   d.rec.Diet,
		Where:  d.rec.Where,
	}
}

func (d *Dino) Facts(other Animal) []string {
	return comparisonFacts(d.self, other)
}

func (d *Dino) RandomFact(other Animal) string {
	return d.pick(d.self.Facts(other))
}

// SetProperty asigna un campo y notifica. Claves desconocidas van a Extra.
func (d *Dino) SetProperty(key string, value any) error {
	switch key {
	case "species", "fact", "diet", "where", "when":
		s, ok := asString(value)
		if !ok {
			return fmt.Errorf("%w: %s", ErrInvalidValue, key)
		}
		switch key {
		case "species":
			d.rec.Species = s
		case "fact":
			d.rec.Fact = s
		case "diet":
			d.rec.Diet = s
		case "where":
			d.rec.Where = s
		case "when":
			d.rec.When = s
		}
	case "height", "weight":
		f, ok := asFloat(value)
		if !ok {
			return fmt.Errorf("%w: %s", ErrInvalidValue, key)
		}
		if key == "height" {
			d.rec.Height = f
		} else {
			d.rec.Weight = f
		}
	case "":
		return ErrUnknownProperty
	default:
		if d.rec.Extra == nil {
			d.rec.Extra = map[string]any{}
		}
		d.rec.Extra[key] = value
	}

	d.notify()
	return nil
}

// Pigeon es un Dino que no se compara: siempre muestra su dato.
type Pigeon struct {
	*Dino
}

func NewPigeon(rec Record, opts ...Option) *Pigeon {
	p := &Pigeon{Dino: NewDino(rec, opts...)}
	p.self = p
	return p
}

func (p *Pigeon) Facts(Animal) []string { return []string{p.Fact()} }

func (p *Pigeon) RandomFact(Animal) string { return p.Fact() }
