package view

import (
	"net/url"

	"dino-infographic/internal/domain/animals"
)

// Visibility son las clases "hidden" del formulario, el toggler y la grilla.
type Visibility struct {
	FormHidden    bool `json:"form_hidden"`
	TogglerHidden bool `json:"toggler_hidden"`
	GridHidden    bool `json:"grid_hidden"`
}

// FormController lee el formulario #dino-compare y alterna su visibilidad.
type FormController struct {
	vis Visibility
}

func NewFormController() *FormController {
	return &FormController{
		vis: Visibility{
			FormHidden:    false,
			TogglerHidden: true,
			GridHidden:    true,
		},
	}
}

// CollectValues no valida: los numéricos siguen Number() de JS, así que
// vacío da 0 y basura da NaN.
func (f *FormController) CollectValues(form url.Values) animals.HumanValues {
	feet := animals.ParseNumber(form.Get("feet"))
	inches := animals.ParseNumber(form.Get("inches"))

	return animals.HumanValues{
		Name:   form.Get("name"),
		Feet:   feet,
		Inches: inches,
		Height: feet + inches/12.0,
		Weight: animals.ParseNumber(form.Get("weight")),
		Diet:   form.Get("diet"),
		Where:  form.Get("where"),
	}
}

func (f *FormController) Hide() {
	f.vis.FormHidden = true
	f.vis.TogglerHidden = false
	f.vis.GridHidden = false
}

func (f *FormController) Show() {
	f.vis.FormHidden = false
	f.vis.TogglerHidden = true
	f.vis.GridHidden = true
}

func (f *FormController) Visibility() Visibility { return f.vis }
