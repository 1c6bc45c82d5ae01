package sqlstore

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
)

func marshalDetails(d entity.AuditDetails) (string, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("audit record: serializar %s: %w", d.Action(), err)
	}
	return string(raw), nil
}
