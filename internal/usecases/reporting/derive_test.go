package reporting

import (
	"testing"

	"github.com/lojalytics/dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSafeDivide(t *testing.T) {
	assert.Equal(t, 2.5, safeDivide(5, 2))
	assert.Equal(t, 0.0, safeDivide(5, 0))
	assert.Equal(t, 0.0, safeDivide(0, 0))
}

func TestDeriveSalesKPIs(t *testing.T) {
	tests := []struct {
		name     string
		totals   domain.SalesTotals
		expected domain.SalesKPIs
	}{
		{
			name: "Totais completos - calcula AOV, CVR, ROAS e CPA",
			totals: domain.SalesTotals{
				TotalSales:      1000.0,
				TotalRevenue:    1200.0,
				TotalOrders:     10,
				TotalSessions:   200,
				TotalMediaSpend: 100.0,
			},
			expected: domain.SalesKPIs{
				AOV:         100.0,
				CVR:         5.0,
				BlendedROAS: 12.0,
				CPA:         10.0,
			},
		},
		{
			name:     "Totais zerados - todas as métricas derivadas são 0",
			totals:   domain.SalesTotals{},
			expected: domain.SalesKPIs{},
		},
		{
			name: "Sem investimento em mídia - ROAS é 0, nunca Inf",
			totals: domain.SalesTotals{
				TotalSales:    500.0,
				TotalRevenue:  500.0,
				TotalOrders:   5,
				TotalSessions: 100,
			},
			expected: domain.SalesKPIs{
				AOV: 100.0,
				CVR: 5.0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, deriveSalesKPIs(tt.totals))
		})
	}
}
