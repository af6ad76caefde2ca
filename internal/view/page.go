package view

import (
	"html/template"
	"io"
)

// PageData alimenta el template de la página completa.
type PageData struct {
	Title      string
	Visibility Visibility
	Items      []template.HTML
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="css/styles.css">
  <style>.hidden { display: none; }</style>
</head>
<body>
  <header>
    <h1>{{.Title}}</h1>
    <h3>How do you compare?</h3>
  </header>
  <form id="dino-compare" method="post" action="/">
    <div class="form-container{{if .Visibility.FormHidden}} hidden{{end}}">
      <p>Name:</p>
      <input id="name" class="form-field__full" type="text" name="name">
      <p>Height</p>
      <label>Feet: <input id="feet" class="form-field__short" type="number" name="feet"></label>
      <label>inches: <input id="inches" class="form-field__short" type="number" name="inches"></label>
      <p>Weight:</p>
      <label><input id="weight" class="form-field__full" type="number" name="weight">lbs</label>
      <p>Diet:</p>
      <select id="diet" class="form-field__full" name="diet">
        <option>Herbavor</option>
        <option>Omnivor</option>
        <option>Carnivor</option>
      </select>
      <p>Where:</p>
      <input id="where" class="form-field__full" type="text" name="where">
      <button id="btn" type="submit">Compare Me!</button>
    </div>
  </form>
  <form method="post" action="/toggle">
    <button class="toggler{{if .Visibility.TogglerHidden}} hidden{{end}}" type="submit">Show form</button>
  </form>
  <main id="grid" class="{{if .Visibility.GridHidden}}hidden{{end}}">
    {{- range .Items}}
    {{.}}
    {{- end}}
  </main>
</body>
</html>
`))

func RenderPage(w io.Writer, data PageData) error {
	if data.Title == "" {
		data.Title = "Dinosaurs"
	}
	return pageTmpl.Execute(w, data)
}
