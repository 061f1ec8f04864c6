package reporting

import (
	"fmt"

	"github.com/lojalytics/dashboard-api/infrastructure/warehouse"
)

// Coerções dos valores normalizados do warehouse. As views materializadas
// devolvem inteiros como int64 e monetários como float64, mas linhas antigas
// podem trazer tipos trocados, então as coerções aceitam ambos.

func toFloat(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	case int:
		return float64(v)
	default:
		return 0
	}
}

func toInt(value any) int {
	switch v := value.(type) {
	case int64:
		return int(v)
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}

func toString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

func toBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case int64:
		return v != 0
	case float64:
		return v != 0
	default:
		return false
	}
}

func rowString(row warehouse.Row, column string) string {
	return toString(row[column])
}

func rowFloat(row warehouse.Row, column string) float64 {
	return toFloat(row[column])
}

func rowInt(row warehouse.Row, column string) int {
	return toInt(row[column])
}
