// Package docs registra el documento swagger que sirve /swagger/.
// Se mantiene a mano siguiendo las anotaciones godoc de los handlers.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/grid": {
            "get": {
                "description": "Devuelve el estado de la página de la sesión actual: si la grilla ya se inicializó, la visibilidad del formulario y las cartas renderizadas en orden.",
                "produces": ["application/json"],
                "tags": ["grid"],
                "summary": "Estado de la grilla",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/grid.gridResponse"}},
                    "400": {"description": "missing session", "schema": {"type": "string"}}
                }
            }
        },
        "/api/session": {
            "delete": {
                "description": "Borra la página de la sesión actual; la próxima visita arma una grilla nueva.",
                "tags": ["grid"],
                "summary": "Descartar la sesión",
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "page not found", "schema": {"type": "string"}}
                }
            }
        },
        "/dino.json": {
            "get": {
                "description": "Devuelve los registros cargados al arrancar, con el mismo formato que dino.json.",
                "produces": ["application/json"],
                "tags": ["fixture"],
                "summary": "Fixture de dinosaurios",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/grid.fixtureResponse"}},
                    "503": {"description": "fixture not loaded", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "grid.fixtureResponse": {
            "type": "object",
            "properties": {
                "Dinos": {"type": "array", "items": {"type": "object", "additionalProperties": true}}
            }
        },
        "grid.gridResponse": {
            "type": "object",
            "properties": {
                "session": {"type": "string"},
                "state": {"type": "string", "enum": ["uninitialized", "initialized"]},
                "ready": {"type": "boolean"},
                "visibility": {"$ref": "#/definitions/view.Visibility"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/view.Card"}}
            }
        },
        "view.Card": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "img": {"type": "string"},
                "fact": {"type": "string"},
                "weight": {"type": "string"},
                "height": {"type": "string"}
            }
        },
        "view.Visibility": {
            "type": "object",
            "properties": {
                "form_hidden": {"type": "boolean"},
                "toggler_hidden": {"type": "boolean"},
                "grid_hidden": {"type": "boolean"}
            }
        }
    }
}`

// SwaggerInfo contiene la info exportada del documento.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "dino-infographic API",
	Description:      "Grilla de comparación entre un humano y los dinosaurios del fixture.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
