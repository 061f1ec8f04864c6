package utils

import (
	"fmt"
	"time"
)

// ParseDateRange valida e converte um par de datas de calendário (inclusivas)
func ParseDateRange(startStr, endStr string) (time.Time, time.Time, error) {
	if startStr == "" || endStr == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("start_date e end_date são obrigatórios")
	}

	start, err := time.Parse(time.DateOnly, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("start_date inválida: %w", err)
	}

	end, err := time.Parse(time.DateOnly, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("end_date inválida: %w", err)
	}

	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("start_date não pode ser posterior a end_date")
	}

	return start, end, nil
}
