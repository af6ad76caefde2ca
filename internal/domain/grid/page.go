package grid

import (
	"bytes"
	"errors"
	"html/template"
	"io"
	"net/url"
	"sync"

	"dino-infographic/internal/domain/animals"
	"dino-infographic/internal/platform/util"
	"dino-infographic/internal/view"
)

var (
	ErrNotReady = errors.New("grid not ready: fixture not loaded")
)

const (
	defaultHumanName = "default"
	humanPosition    = 4
)

// Page es el estado de una sesión: el humano, los modelos en el orden de
// la grilla, sus controllers y el formulario. Todas las operaciones pasan
// por mu.
type Page struct {
	mu sync.Mutex

	ready       bool
	human       *animals.Human
	models      []animals.Animal
	controllers []*view.CardController
	form        *view.FormController
	machine     *Machine
}

type PageOption func(*pageConfig)

type pageConfig struct {
	chooser animals.Chooser
	shuffle func([]animals.Animal)
}

// WithChooser fija la elección de datos al azar en todas las cartas.
func WithChooser(c animals.Chooser) PageOption {
	return func(cfg *pageConfig) { cfg.chooser = c }
}

// WithShuffle reemplaza el desorden de los dinosaurios (nil = no desordenar).
func WithShuffle(fn func([]animals.Animal)) PageOption {
	return func(cfg *pageConfig) {
		if fn == nil {
			fn = func([]animals.Animal) {}
		}
		cfg.shuffle = fn
	}
}

// NewPage arma los modelos desde el fixture: dinosaurios desordenados y el
// humano en la quinta posición.
func NewPage(records []animals.Record, opts ...PageOption) *Page {
	cfg := pageConfig{shuffle: util.Shuffle[animals.Animal]}
	for _, opt := range opts {
		opt(&cfg)
	}

	var mopts []animals.Option
	if cfg.chooser != nil {
		mopts = append(mopts, animals.WithChooser(cfg.chooser))
	}

	dinos := make([]animals.Animal, 0, len(records))
	for _, rec := range records {
		dinos = append(dinos, animals.FromRecord(rec, mopts...))
	}
	cfg.shuffle(dinos)

	// el humano existe antes del formulario; su nombre se pisa al enviar
	human := animals.NewHuman(defaultHumanName, mopts...)

	at := min(humanPosition, len(dinos))
	models := make([]animals.Animal, 0, len(dinos)+1)
	models = append(models, dinos[:at]...)
	models = append(models, human)
	models = append(models, dinos[at:]...)

	return &Page{
		ready:   true,
		human:   human,
		models:  models,
		form:    view.NewFormController(),
		machine: NewMachine(),
	}
}

// NewUnreadyPage es la página cuando el fixture no cargó: el formulario
// sigue ahí pero enviar no tiene efecto visible.
func NewUnreadyPage() *Page {
	return &Page{
		human:   animals.NewHuman(defaultHumanName),
		form:    view.NewFormController(),
		machine: NewMachine(),
	}
}

// SubmitForm es el handler del evento submit.
func (p *Page) SubmitForm(form url.Values) error {
	return p.Submit(p.form.CollectValues(form))
}

func (p *Page) Submit(values animals.HumanValues) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return ErrNotReady
	}

	// las cartas ya vinculadas al humano se re-renderizan acá
	if err := p.human.Apply(values); err != nil {
		return err
	}

	p.machine.Initialize(p.buildGrid)

	for _, c := range p.controllers {
		c.Render()
	}

	p.form.Hide()
	return nil
}

// Toggle vuelve a mostrar el formulario.
func (p *Page) Toggle() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.form.Show()
}

// Close desvincula todos los controllers de sus modelos.
func (p *Page) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, c := range p.controllers {
		c.Unbind()
	}
}

func (p *Page) buildGrid() {
	p.controllers = make([]*view.CardController, 0, len(p.models))
	for _, m := range p.models {
		c := view.NewCardController(m, p.human)
		c.Bind()
		p.controllers = append(p.controllers, c)
	}
}

type Snapshot struct {
	State      State           `json:"state"`
	Ready      bool            `json:"ready"`
	Visibility view.Visibility `json:"visibility"`
	Items      []view.Card     `json:"items"`
}

func (p *Page) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	items := make([]view.Card, 0, len(p.controllers))
	for _, c := range p.controllers {
		items = append(items, c.Card())
	}
	return Snapshot{
		State:      p.machine.State(),
		Ready:      p.ready,
		Visibility: p.form.Visibility(),
		Items:      items,
	}
}

// Render escribe la página completa.
func (p *Page) Render(w io.Writer) error {
	p.mu.Lock()
	items := make([]template.HTML, 0, len(p.controllers))
	for _, c := range p.controllers {
		items = append(items, c.HTML())
	}
	data := view.PageData{Visibility: p.form.Visibility(), Items: items}
	p.mu.Unlock()

	var buf bytes.Buffer
	if err := view.RenderPage(&buf, data); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
