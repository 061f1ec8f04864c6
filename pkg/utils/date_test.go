package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDateRange(t *testing.T) {
	t.Run("Intervalo válido - converte as duas pontas", func(t *testing.T) {
		start, end, err := ParseDateRange("2024-01-15", "2024-01-31")

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("Mesmo dia nas duas pontas - intervalo de um dia é válido", func(t *testing.T) {
		start, end, err := ParseDateRange("2024-01-15", "2024-01-15")

		assert.NoError(t, err)
		assert.Equal(t, start, end)
	})

	t.Run("Data ausente - rejeita", func(t *testing.T) {
		_, _, err := ParseDateRange("", "2024-01-31")
		assert.Error(t, err)
	})

	t.Run("Formato inválido - rejeita", func(t *testing.T) {
		_, _, err := ParseDateRange("15/01/2024", "2024-01-31")
		assert.Error(t, err)
	})

	t.Run("Início posterior ao fim - rejeita", func(t *testing.T) {
		_, _, err := ParseDateRange("2024-02-01", "2024-01-31")
		assert.Error(t, err)
	})
}
