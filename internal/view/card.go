package view

import (
	"bytes"
	"html/template"
	"sync"

	"dino-infographic/internal/domain/animals"
)

var cardTmpl = template.Must(template.New("card").Parse(`<div class="grid-item" data-id="{{.ID}}">
    <h3>{{.Name}}</h3>
    <img src="{{.Img}}" alt="{{.Name}}">
    <p>{{.Fact}}</p>
    <div class="overlay">
        Weight: {{.Weight}} lbs.<br>
        Height: {{.Height}}
    </div>
</div>`))

// Card es lo que se ve de un modelo en el último render.
type Card struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Img    string `json:"img"`
	Fact   string `json:"fact"`
	Weight string `json:"weight"`
	Height string `json:"height"`
}

// CardController une un modelo con su fragmento HTML. Cada Render
// reemplaza el contenido completo, sin diffing.
type CardController struct {
	model animals.Animal
	human animals.Animal

	mu      sync.RWMutex
	card    Card
	html    template.HTML
	renders int
	sub     *animals.Subscription
}

// NewCardController renderiza de inmediato.
func NewCardController(model, human animals.Animal) *CardController {
	c := &CardController{model: model, human: human}
	c.Render()
	return c
}

func (c *CardController) Render() {
	card := Card{
		ID:     c.model.ID(),
		Name:   c.model.Name(),
		Img:    c.model.Img(),
		Fact:   c.model.RandomFact(c.human),
		Weight: c.model.Weight(),
		Height: c.model.Height(),
	}

	// template fijo sobre un buffer: no hay error posible
	var buf bytes.Buffer
	_ = cardTmpl.Execute(&buf, card)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.card = card
	c.html = template.HTML(buf.String())
	c.renders++
}

// Bind re-renderiza cada vez que el modelo cambia.
func (c *CardController) Bind() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sub != nil {
		return
	}
	c.sub = c.model.Subscribe(func(animals.Animal) { c.Render() })
}

func (c *CardController) Unbind() {
	c.mu.Lock()
	sub := c.sub
	c.sub = nil
	c.mu.Unlock()

	sub.Unsubscribe()
}

func (c *CardController) HTML() template.HTML {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.html
}

func (c *CardController) Card() Card {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.card
}

func (c *CardController) Renders() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.renders
}
