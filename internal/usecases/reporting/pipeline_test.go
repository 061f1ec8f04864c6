package reporting

import (
	"testing"

	"github.com/lojalytics/dashboard-api/infrastructure/warehouse"
	"github.com/stretchr/testify/assert"
)

func TestRateIndex_Rate(t *testing.T) {
	index := RateIndex{
		rateKey("loja-us", "2024-01-15"): 5.2,
		rateKey("loja-eu", "2024-01-15"): 0,
	}

	tests := []struct {
		name     string
		storeID  string
		date     string
		expected float64
	}{
		{
			name:     "Taxa cadastrada - retorna a taxa da loja e data",
			storeID:  "loja-us",
			date:     "2024-01-15",
			expected: 5.2,
		},
		{
			name:     "Taxa ausente - retorna o multiplicador neutro",
			storeID:  "loja-us",
			date:     "2024-01-16",
			expected: 1.0,
		},
		{
			name:     "Loja sem taxa - retorna o multiplicador neutro",
			storeID:  "loja-br",
			date:     "2024-01-15",
			expected: 1.0,
		},
		{
			name:     "Taxa zerada - retorna o multiplicador neutro",
			storeID:  "loja-eu",
			date:     "2024-01-15",
			expected: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, index.Rate(tt.storeID, tt.date))
		})
	}
}

func TestWebsitePredicate(t *testing.T) {
	t.Run("Uma loja - gera igualdade com parâmetro único", func(t *testing.T) {
		predicate, params := websitePredicate("website_id", []string{"loja-br"})

		assert.Equal(t, "website_id = @storeId", predicate)
		assert.Equal(t, []warehouse.Parameter{{Name: "storeId", Value: "loja-br"}}, params)
	})

	t.Run("Várias lojas - gera IN com um parâmetro nomeado por valor", func(t *testing.T) {
		predicate, params := websitePredicate("website_id", []string{"loja-br", "loja-us", "loja-eu"})

		assert.Equal(t, "website_id IN (@storeId0, @storeId1, @storeId2)", predicate)
		assert.Equal(t, []warehouse.Parameter{
			{Name: "storeId0", Value: "loja-br"},
			{Name: "storeId1", Value: "loja-us"},
			{Name: "storeId2", Value: "loja-eu"},
		}, params)
	})
}

func TestConvertCurrency(t *testing.T) {
	spec := PostProcessSpec{
		MonetaryFields: []string{"total_revenue"},
		StoreField:     "website_id",
		DateField:      "date",
	}

	t.Run("Aplica a taxa de cada (loja, data) sobre os campos monetários", func(t *testing.T) {
		rows := []warehouse.Row{
			{"website_id": "loja-br", "date": "2024-01-15", "total_revenue": 100.0},
			{"website_id": "loja-us", "date": "2024-01-15", "total_revenue": 100.0},
		}
		rates := RateIndex{rateKey("loja-us", "2024-01-15"): 2.0}

		convertCurrency(rows, rates, spec)

		assert.Equal(t, 100.0, rows[0]["total_revenue"])
		assert.Equal(t, 200.0, rows[1]["total_revenue"])
	})

	t.Run("Campos não monetários ficam intactos", func(t *testing.T) {
		rows := []warehouse.Row{
			{"website_id": "loja-us", "date": "2024-01-15", "total_revenue": 50.0, "total_orders": int64(7)},
		}
		rates := RateIndex{rateKey("loja-us", "2024-01-15"): 3.0}

		convertCurrency(rows, rates, spec)

		assert.Equal(t, 150.0, rows[0]["total_revenue"])
		assert.Equal(t, int64(7), rows[0]["total_orders"])
	})
}

func TestRegroup(t *testing.T) {
	t.Run("Colapsa lojas na mesma data somando e preservando a ordem de primeira ocorrência", func(t *testing.T) {
		rows := []warehouse.Row{
			{"date": "2024-01-16", "website_id": "loja-br", "total_revenue": 10.0},
			{"date": "2024-01-15", "website_id": "loja-br", "total_revenue": 100.0},
			{"date": "2024-01-15", "website_id": "loja-us", "total_revenue": 200.0},
		}

		result := regroup(rows, PostProcessSpec{
			GroupBy:   []string{"date"},
			SumFields: []string{"total_revenue"},
		})

		assert.Len(t, result, 2)
		assert.Equal(t, "2024-01-16", result[0]["date"])
		assert.Equal(t, 10.0, result[0]["total_revenue"])
		assert.Equal(t, "2024-01-15", result[1]["date"])
		assert.Equal(t, 300.0, result[1]["total_revenue"])
	})

	t.Run("MaxFields tomam o maior valor do grupo", func(t *testing.T) {
		rows := []warehouse.Row{
			{"key": "a", "peak": 5.0},
			{"key": "a", "peak": 12.0},
			{"key": "a", "peak": 3.0},
		}

		result := regroup(rows, PostProcessSpec{
			GroupBy:   []string{"key"},
			MaxFields: []string{"peak"},
		})

		assert.Len(t, result, 1)
		assert.Equal(t, 12.0, result[0]["peak"])
	})

	t.Run("Sem GroupBy - retorna as linhas como estão", func(t *testing.T) {
		rows := []warehouse.Row{
			{"order_id": "o-1"},
			{"order_id": "o-2"},
		}

		result := regroup(rows, PostProcessSpec{})

		assert.Equal(t, rows, result)
	})
}

// A conversão precisa acontecer antes do colapso: somar 100 BRL com 100 USD
// e converter depois daria 200 ou 400, nunca os 300 corretos.
func TestConvertCurrencyBeforeRegroup(t *testing.T) {
	spec := PostProcessSpec{
		MonetaryFields: []string{"total_revenue"},
		StoreField:     "website_id",
		DateField:      "date",
		GroupBy:        []string{"date"},
		SumFields:      []string{"total_revenue"},
	}
	rows := []warehouse.Row{
		{"website_id": "loja-br", "date": "2024-01-15", "total_revenue": 100.0},
		{"website_id": "loja-us", "date": "2024-01-15", "total_revenue": 100.0},
	}
	rates := RateIndex{
		rateKey("loja-br", "2024-01-15"): 1.0,
		rateKey("loja-us", "2024-01-15"): 2.0,
	}

	convertCurrency(rows, rates, spec)
	result := regroup(rows, spec)

	assert.Len(t, result, 1)
	assert.Equal(t, 300.0, result[0]["total_revenue"])
}
