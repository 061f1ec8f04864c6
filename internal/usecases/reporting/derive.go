package reporting

import (
	"github.com/lojalytics/dashboard-api/internal/domain"
	"github.com/lojalytics/dashboard-api/pkg/utils"
)

// safeDivide retorna num/den, ou exatamente 0 quando o denominador é 0.
// Nenhuma métrica derivada do sistema pode produzir NaN ou Inf.
func safeDivide(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// percentage retorna a fatia percentual de value sobre total (0 se total = 0)
func percentage(value, total float64) float64 {
	return utils.RoundWithTwoDecimalPlace(safeDivide(value, total) * 100)
}

// deriveSalesKPIs calcula AOV, CVR, ROAS combinado e CPA a partir dos totais
// do período, com divisões por zero resultando em 0
func deriveSalesKPIs(totals domain.SalesTotals) domain.SalesKPIs {
	return domain.SalesKPIs{
		AOV:         utils.RoundWithTwoDecimalPlace(safeDivide(totals.TotalSales, float64(totals.TotalOrders))),
		CVR:         utils.RoundWithTwoDecimalPlace(safeDivide(float64(totals.TotalOrders), float64(totals.TotalSessions)) * 100),
		BlendedROAS: utils.RoundWithTwoDecimalPlace(safeDivide(totals.TotalRevenue, totals.TotalMediaSpend)),
		CPA:         utils.RoundWithTwoDecimalPlace(safeDivide(totals.TotalMediaSpend, float64(totals.TotalOrders))),
	}
}
