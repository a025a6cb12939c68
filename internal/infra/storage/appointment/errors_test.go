package appointment

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsSerializationFailure(t *testing.T) {
	serializationErr := &pq.Error{Code: pgSerializationFailure}

	assert.True(t, IsSerializationFailure(serializationErr))
	// Ошибка коммита приходит обёрнутой транзакционным менеджером
	assert.True(t, IsSerializationFailure(fmt.Errorf("txmanager: commit transaction: %w", serializationErr)))

	assert.False(t, IsSerializationFailure(&pq.Error{Code: pgUniqueViolation}))
	assert.False(t, IsSerializationFailure(errors.New("connection reset")))
	assert.False(t, IsSerializationFailure(nil))
}

func TestIsPendingSlotViolation(t *testing.T) {
	assert.True(t, isPendingSlotViolation(&pq.Error{
		Code:       pgUniqueViolation,
		Constraint: pendingSlotIndex,
	}))

	// Нарушение другого ограничения - не конфликт слота
	assert.False(t, isPendingSlotViolation(&pq.Error{
		Code:       pgUniqueViolation,
		Constraint: "appointments_pkey",
	}))
	assert.False(t, isPendingSlotViolation(&pq.Error{Code: pgSerializationFailure}))
	assert.False(t, isPendingSlotViolation(errors.New("connection reset")))
}
