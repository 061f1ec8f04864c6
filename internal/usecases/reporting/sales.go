package reporting

import (
	"context"
	"fmt"

	"github.com/lojalytics/dashboard-api/infrastructure/warehouse"
	"github.com/lojalytics/dashboard-api/internal/domain"
	"github.com/lojalytics/dashboard-api/pkg/utils"
)

// SalesOverview produz os totais do período, as métricas derivadas e a série
// diária de vendas do recorte solicitado
func (s *Service) SalesOverview(ctx context.Context, scope domain.ReportScope) (*domain.SalesOverview, error) {
	storeIDs, filtered, err := s.resolveScope(scope)
	if err != nil {
		return nil, err
	}

	overview := &domain.SalesOverview{Daily: make([]domain.SalesDailyRow, 0)}

	// Escopo resolvido sem nenhuma loja: resultado vazio sem consultar o
	// warehouse (um IN () nunca pode ser emitido)
	if filtered && len(storeIDs) == 0 {
		return overview, nil
	}

	sql := fmt.Sprintf(`
SELECT
  date,
  website_id,
  total_sales,
  total_revenue,
  total_orders,
  total_sessions,
  total_media_spend
FROM `+"`%s.%s.sales_daily`"+`
WHERE date BETWEEN @startDate AND @endDate`, s.projectID, scope.DatasetID)

	params := dateParams(scope)
	if filtered {
		predicate, predicateParams := websitePredicate("website_id", storeIDs)
		sql += "\n  AND " + predicate
		params = append(params, predicateParams...)
	}
	sql += "\nORDER BY date, website_id"

	rates := s.loadRateIndex(scope.ClientID, storeIDs, scope.StartDate, scope.EndDate)

	rows, err := s.runQuery(ctx, sql, params, rates, PostProcessSpec{
		MonetaryFields: []string{"total_sales", "total_revenue", "total_media_spend"},
		StoreField:     "website_id",
		DateField:      "date",
		GroupBy:        []string{"date"},
		SumFields:      []string{"total_sales", "total_revenue", "total_orders", "total_sessions", "total_media_spend"},
	})
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		daily := domain.SalesDailyRow{
			Date:            rowString(row, "date"),
			TotalSales:      utils.RoundWithTwoDecimalPlace(rowFloat(row, "total_sales")),
			TotalRevenue:    utils.RoundWithTwoDecimalPlace(rowFloat(row, "total_revenue")),
			TotalOrders:     rowInt(row, "total_orders"),
			TotalSessions:   rowInt(row, "total_sessions"),
			TotalMediaSpend: utils.RoundWithTwoDecimalPlace(rowFloat(row, "total_media_spend")),
		}
		overview.Daily = append(overview.Daily, daily)

		overview.Totals.TotalSales += daily.TotalSales
		overview.Totals.TotalRevenue += daily.TotalRevenue
		overview.Totals.TotalOrders += daily.TotalOrders
		overview.Totals.TotalSessions += daily.TotalSessions
		overview.Totals.TotalMediaSpend += daily.TotalMediaSpend
	}

	overview.Totals.TotalSales = utils.RoundWithTwoDecimalPlace(overview.Totals.TotalSales)
	overview.Totals.TotalRevenue = utils.RoundWithTwoDecimalPlace(overview.Totals.TotalRevenue)
	overview.Totals.TotalMediaSpend = utils.RoundWithTwoDecimalPlace(overview.Totals.TotalMediaSpend)
	overview.KPIs = deriveSalesKPIs(overview.Totals)

	return overview, nil
}

// HourlySales agrega pedidos e receita por hora do dia ao longo do período e
// aponta as horas de pico. A média por hora divide pelo número de datas
// distintas com atividade naquela hora, não pelo tamanho do intervalo.
func (s *Service) HourlySales(ctx context.Context, scope domain.ReportScope, orderType string) (*domain.HourlySales, error) {
	sampleClause, err := samplePartitionClause(orderType)
	if err != nil {
		return nil, err
	}

	storeIDs, filtered, err := s.resolveScope(scope)
	if err != nil {
		return nil, err
	}

	if filtered && len(storeIDs) == 0 {
		return emptyHourlySales(), nil
	}

	sql := fmt.Sprintf(`
SELECT
  date,
  website_id,
  hour,
  COUNT(*) AS total_orders,
  SUM(total_amount) AS total_revenue
FROM `+"`%s.%s.orders`"+`
WHERE date BETWEEN @startDate AND @endDate
  AND %s`, s.projectID, scope.DatasetID, sampleClause)

	params := dateParams(scope)
	if filtered {
		predicate, predicateParams := websitePredicate("website_id", storeIDs)
		sql += "\n  AND " + predicate
		params = append(params, predicateParams...)
	}
	sql += "\nGROUP BY date, website_id, hour"

	rates := s.loadRateIndex(scope.ClientID, storeIDs, scope.StartDate, scope.EndDate)

	// A conversão precisa das linhas por loja; o colapso por (date, hour)
	// acontece só depois dela
	rows, err := s.runQuery(ctx, sql, params, rates, PostProcessSpec{
		MonetaryFields: []string{"total_revenue"},
		StoreField:     "website_id",
		DateField:      "date",
		GroupBy:        []string{"date", "hour"},
		SumFields:      []string{"total_orders", "total_revenue"},
	})
	if err != nil {
		return nil, err
	}

	return buildHourlySales(rows), nil
}

func emptyHourlySales() *domain.HourlySales {
	result := &domain.HourlySales{Hours: make([]domain.HourlyBucket, 24)}
	for hour := range result.Hours {
		result.Hours[hour].Hour = hour
	}
	return result
}

// buildHourlySales reduz as linhas (date, hour) nos 24 buckets do relatório
// e detecta as horas de pico. Empates resolvem para a menor hora.
func buildHourlySales(rows []warehouse.Row) *domain.HourlySales {
	result := emptyHourlySales()

	datesByHour := make([]map[string]bool, 24)
	for hour := range datesByHour {
		datesByHour[hour] = make(map[string]bool)
	}

	for _, row := range rows {
		hour := rowInt(row, "hour")
		if hour < 0 || hour > 23 {
			continue
		}

		result.Hours[hour].TotalOrders += rowInt(row, "total_orders")
		result.Hours[hour].TotalRevenue += rowFloat(row, "total_revenue")
		datesByHour[hour][rowString(row, "date")] = true
	}

	for hour := range result.Hours {
		bucket := &result.Hours[hour]
		bucket.DistinctDates = len(datesByHour[hour])
		bucket.TotalRevenue = utils.RoundWithTwoDecimalPlace(bucket.TotalRevenue)
		bucket.AvgOrders = utils.RoundWithTwoDecimalPlace(safeDivide(float64(bucket.TotalOrders), float64(bucket.DistinctDates)))
		bucket.AvgRevenue = utils.RoundWithTwoDecimalPlace(safeDivide(bucket.TotalRevenue, float64(bucket.DistinctDates)))
	}

	// Varredura da esquerda para a direita com comparação estrita: em caso
	// de empate vence a hora de menor número
	for hour := 1; hour < 24; hour++ {
		if result.Hours[hour].TotalOrders > result.Hours[result.PeakOrdersHour].TotalOrders {
			result.PeakOrdersHour = hour
		}
		if result.Hours[hour].TotalRevenue > result.Hours[result.PeakRevenueHour].TotalRevenue {
			result.PeakRevenueHour = hour
		}
	}

	return result
}

// samplePartitionClause devolve o filtro da partição amostra/principal.
// Pedidos de amostra têm is_sample = 1; todo o resto é pedido principal,
// inclusive linhas antigas sem o campo. As duas partições são mutuamente
// exclusivas e cobrem todos os pedidos.
func samplePartitionClause(orderType string) (string, error) {
	switch orderType {
	case domain.OrderTypeSample:
		return "is_sample = 1", nil
	case domain.OrderTypeMain, "":
		return "(is_sample = 0 OR is_sample IS NULL)", nil
	default:
		return "", ErrInvalidOrderType
	}
}

// Orders lista os pedidos da partição solicitada (main ou sample) com os
// valores já convertidos para a moeda de relatório
func (s *Service) Orders(ctx context.Context, scope domain.ReportScope, orderType string, limit int) (*domain.OrdersReport, error) {
	sampleClause, err := samplePartitionClause(orderType)
	if err != nil {
		return nil, err
	}

	if orderType == "" {
		orderType = domain.OrderTypeMain
	}

	storeIDs, filtered, err := s.resolveScope(scope)
	if err != nil {
		return nil, err
	}

	report := &domain.OrdersReport{
		OrderType: orderType,
		Orders:    make([]domain.OrderRow, 0),
	}

	if filtered && len(storeIDs) == 0 {
		return report, nil
	}

	if limit <= 0 {
		limit = 100
	}

	sql := fmt.Sprintf(`
SELECT
  order_id,
  date,
  website_id,
  customer_id,
  total_amount,
  item_count,
  is_sample
FROM `+"`%s.%s.orders`"+`
WHERE date BETWEEN @startDate AND @endDate
  AND %s`, s.projectID, scope.DatasetID, sampleClause)

	params := dateParams(scope)
	if filtered {
		predicate, predicateParams := websitePredicate("website_id", storeIDs)
		sql += "\n  AND " + predicate
		params = append(params, predicateParams...)
	}
	sql += "\nORDER BY date DESC, order_id DESC\nLIMIT @rowLimit"
	params = append(params, warehouse.Parameter{Name: "rowLimit", Value: int64(limit)})

	rates := s.loadRateIndex(scope.ClientID, storeIDs, scope.StartDate, scope.EndDate)

	rows, err := s.runQuery(ctx, sql, params, rates, PostProcessSpec{
		MonetaryFields: []string{"total_amount"},
		StoreField:     "website_id",
		DateField:      "date",
	})
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		order := domain.OrderRow{
			OrderID:     rowString(row, "order_id"),
			Date:        rowString(row, "date"),
			CustomerID:  rowString(row, "customer_id"),
			TotalAmount: utils.RoundWithTwoDecimalPlace(rowFloat(row, "total_amount")),
			ItemCount:   rowInt(row, "item_count"),
			IsSample:    toBool(row["is_sample"]),
		}
		report.Orders = append(report.Orders, order)
		report.TotalAmount += order.TotalAmount
	}

	report.TotalOrders = len(report.Orders)
	report.TotalAmount = utils.RoundWithTwoDecimalPlace(report.TotalAmount)

	return report, nil
}
