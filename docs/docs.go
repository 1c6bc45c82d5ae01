// Package docs registra el documento Swagger del API en swaggo/swag.
// swagger.json se regenera con `swag init -g cmd/api/main.go` a partir de las anotaciones de los handlers.
package docs

import (
	_ "embed"

	"github.com/swaggo/swag"
)

//go:embed swagger.json
var doc string

// SwaggerInfo metadatos del API; Host y BasePath se pueden ajustar al arrancar.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Inventory Tracker API",
	Description:      "API de inventario con libro de movimientos, historial de acciones y códigos QR.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  doc,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
