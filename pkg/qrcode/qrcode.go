// Package qrcode genera los payloads QR del inventario.
//
// Conviven dos convenciones:
//   - payload para compartir/imprimir: JSON pequeño ({name, category} o {id, name})
//     renderizado como PNG y devuelto como data URI; es lo que se guarda en qr_payload.
//   - token de escaneo: "prod:<id>", nunca se guarda, se deriva del ID.
package qrcode

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image/png"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

// ScanTokenPrefix prefijo del token que lee la app móvil al escanear.
const ScanTokenPrefix = "prod:"

// DataURIPrefix prefijo de los payloads QR guardados en los items.
const DataURIPrefix = "data:image/png;base64,"

// Encoder renderiza contenido en imágenes QR de tamaño fijo.
type Encoder struct {
	size int
}

// NewEncoder construye el encoder; size es el lado de la imagen en píxeles.
func NewEncoder(size int) *Encoder {
	return &Encoder{size: size}
}

// Encode serializa v a JSON y lo devuelve como data URI PNG con el QR.
func (e *Encoder) Encode(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("qrcode: serializar payload: %w", err)
	}
	img, err := e.PNG(string(raw))
	if err != nil {
		return "", err
	}
	return DataURIPrefix + base64.StdEncoding.EncodeToString(img), nil
}

// PNG codifica el contenido tal cual en un QR y devuelve los bytes PNG.
func (e *Encoder) PNG(content string) ([]byte, error) {
	if content == "" {
		return nil, fmt.Errorf("qrcode: contenido vacío")
	}
	code, err := qr.Encode(content, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("qrcode: codificar: %w", err)
	}
	size := e.size
	if w := code.Bounds().Dx(); size < w {
		size = w
	}
	scaled, err := barcode.Scale(code, size, size)
	if err != nil {
		return nil, fmt.Errorf("qrcode: escalar: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("qrcode: png: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeDataURI devuelve los bytes PNG contenidos en un data URI generado por Encode.
func DecodeDataURI(uri string) ([]byte, error) {
	if !strings.HasPrefix(uri, DataURIPrefix) {
		return nil, fmt.Errorf("qrcode: data URI no soportado")
	}
	return base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, DataURIPrefix))
}

// ScanToken devuelve el token de escaneo de un item.
func ScanToken(id string) string {
	return ScanTokenPrefix + id
}

// ParseScanToken extrae el ID de un token "prod:<id>".
func ParseScanToken(token string) (string, bool) {
	id, ok := strings.CutPrefix(strings.TrimSpace(token), ScanTokenPrefix)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
