package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventory-tracker/internal/domain"
)

func TestValidationError_EsErrInvalidInput(t *testing.T) {
	err := domain.NewValidationError(domain.FieldError{Field: "name", Message: "requerido"})

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.False(t, errors.Is(err, domain.ErrNotFound))
	assert.Contains(t, err.Error(), "name: requerido")
}

func TestPersistenceError_EnvuelveCausa(t *testing.T) {
	cause := errors.New("connection reset")
	err := domain.NewPersistenceError("movement.append", cause)

	assert.True(t, errors.Is(err, domain.ErrPersistence))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "movement.append")

	var pe *domain.PersistenceError
	assert.True(t, errors.As(err, &pe))
	assert.Equal(t, "movement.append", pe.Op)
}

func TestNewPersistenceError_RespetaErroresDeDominio(t *testing.T) {
	assert.Nil(t, domain.NewPersistenceError("x", nil))

	wrapped := fmt.Errorf("get: %w", domain.ErrNotFound)
	assert.Same(t, wrapped, domain.NewPersistenceError("inventory.get", wrapped))

	verr := domain.NewValidationError()
	assert.Equal(t, error(verr), domain.NewPersistenceError("inventory.create", verr))
}
