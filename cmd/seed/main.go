// seed carga items de inventario desde un CSV (name,quantity,category) usando el mismo
// servicio de mutaciones que el API: cada fila deja su historial y su movimiento de entrada.
//
// Uso: go run ./cmd/seed [-encoding latin1] [-dry-run] items.csv
// La base de datos se toma de DB_DRIVER / DATABASE_URL / SQLITE_PATH.
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/inventory-tracker/internal/application/auditlog"
	"github.com/jhoicas/inventory-tracker/internal/application/inventory"
	"github.com/jhoicas/inventory-tracker/internal/application/movement"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/storage"
	"github.com/jhoicas/inventory-tracker/pkg/config"
	"github.com/jhoicas/inventory-tracker/pkg/logger"
	"github.com/jhoicas/inventory-tracker/pkg/qrcode"
)

// itemCreator lo implementa *inventory.MutationService.
type itemCreator interface {
	Create(ctx context.Context, in entity.ItemInput) (*entity.InventoryItem, error)
}

func main() {
	encoding := flag.String("encoding", "utf8", "codificación del CSV: utf8 | latin1 | windows1252")
	dryRun := flag.Bool("dry-run", false, "solo valida el archivo, no escribe")
	qrSize := flag.Int("qr-size", 256, "tamaño en px del QR generado")
	flag.Parse()

	csvPath := "items.csv"
	if flag.NArg() > 0 {
		csvPath = flag.Arg(0)
	}

	log := logger.New(logger.Config{Env: "development", Level: "info"})

	f, err := os.Open(csvPath)
	if err != nil {
		log.Fatal().Err(err).Str("file", csvPath).Msg("abrir CSV")
	}
	defer f.Close()

	r, err := decodeReader(f, *encoding)
	if err != nil {
		log.Fatal().Err(err).Msg("codificación")
	}
	rows, err := readRows(r)
	if err != nil {
		log.Fatal().Err(err).Str("file", csvPath).Msg("leer CSV")
	}
	log.Info().Int("rows", len(rows)).Str("file", csvPath).Msg("CSV leído")
	if *dryRun {
		return
	}

	dbCfg, err := config.LoadDB()
	if err != nil {
		log.Fatal().Err(err).Msg("cargar configuración")
	}
	ctx := context.Background()
	store, err := storage.Open(ctx, dbCfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", dbCfg.Driver).Msg("conexión a la base de datos")
	}
	defer store.Close()

	svc := inventory.NewMutationService(
		store.Items,
		movement.NewService(store.Movements),
		auditlog.NewService(store.AuditLog),
		qrcode.NewEncoder(*qrSize),
		nil,
		log,
	)

	created, err := importRows(ctx, svc, rows)
	log.Info().Int("created", created).Int("rows", len(rows)).Msg("seed terminado")
	if err != nil {
		log.Error().Err(err).Msg("seed interrumpido")
		os.Exit(1)
	}
}

// decodeReader convierte el archivo a UTF-8 según la codificación declarada.
func decodeReader(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(strings.ReplaceAll(encoding, "-", "")) {
	case "", "utf8":
		return r, nil
	case "latin1", "iso88591":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case "windows1252", "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("codificación no soportada %q", encoding)
	}
}

// readRows parsea name,quantity,category. La primera fila se omite si es un encabezado.
func readRows(r io.Reader) ([]entity.ItemInput, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true

	var rows []entity.ItemInput
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(rec[1]), "quantity") {
			continue
		}
		qty, err := strconv.Atoi(strings.TrimSpace(rec[1]))
		if err != nil {
			return nil, fmt.Errorf("línea %d: cantidad inválida %q", line, rec[1])
		}
		rows = append(rows, entity.ItemInput{Name: rec[0], Quantity: qty, Category: rec[2]})
	}
	return rows, nil
}

// importRows crea los items en orden y se detiene en el primer error.
func importRows(ctx context.Context, svc itemCreator, rows []entity.ItemInput) (int, error) {
	for i, in := range rows {
		if _, err := svc.Create(ctx, in); err != nil {
			return i, fmt.Errorf("fila %d (%s): %w", i+1, in.Name, err)
		}
	}
	return len(rows), nil
}
