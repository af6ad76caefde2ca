package view

import (
	"bytes"
	"html/template"
	"math"
	"net/url"
	"strings"
	"testing"

	"dino-infographic/internal/domain/animals"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func first(int) int { return 0 }

func TestCardController_RendersOnCreate(t *testing.T) {
	d := animals.NewDino(animals.Record{
		Species: "Brachiosaurus",
		Fact:    "An asteroid was named 9954 Brachiosaurus in 1991.",
		Weight:  70000,
		Height:  372,
	}, animals.WithChooser(first))
	h := animals.NewHuman("Ann")

	c := NewCardController(d, h)
	html := string(c.HTML())

	assert.Equal(t, 1, c.Renders())
	assert.Contains(t, html, `class="grid-item"`)
	assert.Contains(t, html, "<h3>Brachiosaurus</h3>")
	assert.Contains(t, html, `src="images/brachiosaurus.png"`)
	assert.Contains(t, html, "<p>An asteroid was named 9954 Brachiosaurus in 1991.</p>")
	assert.Contains(t, html, "Weight: 70000 lbs.")
	assert.Contains(t, html, "Height: 372 feet")
}

func TestCardController_EscapesModelText(t *testing.T) {
	h := animals.NewHuman("<script>x</script>")
	c := NewCardController(h, h)

	assert.NotContains(t, string(c.HTML()), "<script>")
	assert.Equal(t, "<script>x</script>", c.Card().Name)
}

func TestCardController_BindRerendersOnChange(t *testing.T) {
	h := animals.NewHuman("default")
	c := NewCardController(h, h)
	c.Bind()
	c.Bind()

	require.NoError(t, h.SetProperty("name", "Ann"))
	assert.Equal(t, 2, c.Renders())
	assert.Contains(t, string(c.HTML()), "<h3>Ann</h3>")

	c.Unbind()
	require.NoError(t, h.SetProperty("name", "Bob"))
	assert.Equal(t, 2, c.Renders())
	assert.Equal(t, "Ann", c.Card().Name)
}

func TestFormController_CollectValues(t *testing.T) {
	f := NewFormController()
	v := f.CollectValues(url.Values{
		"name":   {"Ann"},
		"feet":   {"5"},
		"inches": {"6"},
		"weight": {"130"},
		"diet":   {"omnivor"},
		"where":  {"Asia"},
	})

	assert.Equal(t, "Ann", v.Name)
	assert.Equal(t, 5.0, v.Feet)
	assert.Equal(t, 6.0, v.Inches)
	assert.Equal(t, 5.5, v.Height)
	assert.Equal(t, 130.0, v.Weight)
	assert.Equal(t, "omnivor", v.Diet)
	assert.Equal(t, "Asia", v.Where)
}

func TestFormController_CollectValues_Coercion(t *testing.T) {
	f := NewFormController()
	v := f.CollectValues(url.Values{
		"feet":   {"abc"},
		"weight": {"inf"},
	})

	assert.True(t, math.IsNaN(v.Feet))
	assert.Equal(t, 0.0, v.Inches)
	assert.True(t, math.IsNaN(v.Height))
	assert.True(t, math.IsNaN(v.Weight))

	// la altura del humano cae a 0, el peso no
	h := animals.NewHuman("")
	require.NoError(t, h.Apply(v))
	assert.Equal(t, "0 feet, 0 inches", h.Height())
	assert.Equal(t, "NaN", h.Weight())
}

func TestFormController_ShowHide(t *testing.T) {
	f := NewFormController()
	assert.Equal(t, Visibility{FormHidden: false, TogglerHidden: true, GridHidden: true}, f.Visibility())

	f.Hide()
	assert.Equal(t, Visibility{FormHidden: true, TogglerHidden: false, GridHidden: false}, f.Visibility())

	f.Show()
	assert.Equal(t, Visibility{FormHidden: false, TogglerHidden: true, GridHidden: true}, f.Visibility())
}

func TestRenderPage(t *testing.T) {
	var buf bytes.Buffer
	err := RenderPage(&buf, PageData{
		Visibility: Visibility{FormHidden: true},
		Items:      []template.HTML{"<div class=\"grid-item\">x</div>"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `<form id="dino-compare"`)
	assert.Contains(t, out, `class="form-container hidden"`)
	assert.Equal(t, 1, strings.Count(out, `class="grid-item"`))
}
