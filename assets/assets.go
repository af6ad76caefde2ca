// Package assets embebe el fixture por defecto.
package assets

import "embed"

// DinoFile es el nombre del fixture dentro de FS.
const DinoFile = "dino.json"

//go:embed dino.json
var FS embed.FS
