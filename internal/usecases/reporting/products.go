package reporting

import (
	"context"
	"fmt"
	"sort"

	"github.com/lojalytics/dashboard-api/infrastructure/warehouse"
	"github.com/lojalytics/dashboard-api/internal/domain"
	"github.com/lojalytics/dashboard-api/pkg/utils"
)

// Chaves de ordenação aceitas nos relatórios de produto e de quebra por
// dimensão
const (
	SortByRevenue  = "revenue"
	SortByQuantity = "quantity"
)

const defaultBreakdownLimit = 10

// ProductPerformance retorna os produtos mais vendidos do período, ordenados
// pela chave solicitada (receita por padrão) e truncados no limite
func (s *Service) ProductPerformance(ctx context.Context, scope domain.ReportScope, sortBy string, limit int) (*domain.ProductPerformance, error) {
	storeIDs, filtered, err := s.resolveScope(scope)
	if err != nil {
		return nil, err
	}

	report := &domain.ProductPerformance{Products: make([]domain.ProductPerformanceRow, 0)}

	if filtered && len(storeIDs) == 0 {
		return report, nil
	}

	sql := fmt.Sprintf(`
SELECT
  date,
  website_id,
  product_id,
  product_name,
  quantity,
  total_revenue,
  total_orders
FROM `+"`%s.%s.product_sales_daily`"+`
WHERE date BETWEEN @startDate AND @endDate`, s.projectID, scope.DatasetID)

	params := dateParams(scope)
	if filtered {
		predicate, predicateParams := websitePredicate("website_id", storeIDs)
		sql += "\n  AND " + predicate
		params = append(params, predicateParams...)
	}

	rates := s.loadRateIndex(scope.ClientID, storeIDs, scope.StartDate, scope.EndDate)

	// Estágio 1 agrupado por (date, website, produto) para a conversão;
	// estágio 2 colapsa datas e lojas em uma linha por produto
	rows, err := s.runQuery(ctx, sql, params, rates, PostProcessSpec{
		MonetaryFields: []string{"total_revenue"},
		StoreField:     "website_id",
		DateField:      "date",
		GroupBy:        []string{"product_id", "product_name"},
		SumFields:      []string{"quantity", "total_revenue", "total_orders"},
	})
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		report.Products = append(report.Products, domain.ProductPerformanceRow{
			ProductID:    rowString(row, "product_id"),
			ProductName:  rowString(row, "product_name"),
			Quantity:     rowInt(row, "quantity"),
			TotalRevenue: utils.RoundWithTwoDecimalPlace(rowFloat(row, "total_revenue")),
			TotalOrders:  rowInt(row, "total_orders"),
		})
	}

	sort.SliceStable(report.Products, func(i, j int) bool {
		if sortBy == SortByQuantity {
			return report.Products[i].Quantity > report.Products[j].Quantity
		}
		return report.Products[i].TotalRevenue > report.Products[j].TotalRevenue
	})

	if limit <= 0 {
		limit = defaultBreakdownLimit
	}
	if len(report.Products) > limit {
		report.Products = report.Products[:limit]
	}

	return report, nil
}

// CategoryBreakdown retorna a quebra de vendas por categoria com o
// percentual de cada categoria sobre o total do período
func (s *Service) CategoryBreakdown(ctx context.Context, scope domain.ReportScope, sortBy string, limit int) (*domain.CategoryBreakdown, error) {
	rows, err := s.dimensionBreakdown(ctx, scope, "category_sales_daily", "category", sortBy, limit)
	if err != nil {
		return nil, err
	}

	return &domain.CategoryBreakdown{Categories: rows}, nil
}

// CollectionsPerformance retorna a quebra de vendas por coleção com o
// percentual de cada coleção sobre o total do período
func (s *Service) CollectionsPerformance(ctx context.Context, scope domain.ReportScope, sortBy string, limit int) (*domain.CollectionsPerformance, error) {
	rows, err := s.dimensionBreakdown(ctx, scope, "collection_sales_daily", "collection", sortBy, limit)
	if err != nil {
		return nil, err
	}

	return &domain.CollectionsPerformance{Collections: rows}, nil
}

// dimensionBreakdown implementa a agregação em dois estágios das quebras por
// dimensão: o estágio 1 agrupa por (date, website, dimensão) para a conversão
// de moeda por loja; o estágio 2 colapsa as datas em uma linha por valor da
// dimensão, calcula o percentual sobre o total e ordena decrescente pela
// chave escolhida antes de truncar no limite.
func (s *Service) dimensionBreakdown(
	ctx context.Context,
	scope domain.ReportScope,
	table string,
	dimension string,
	sortBy string,
	limit int,
) ([]domain.BreakdownRow, error) {
	storeIDs, filtered, err := s.resolveScope(scope)
	if err != nil {
		return nil, err
	}

	if filtered && len(storeIDs) == 0 {
		return []domain.BreakdownRow{}, nil
	}

	sql := fmt.Sprintf(`
SELECT
  date,
  website_id,
  %s,
  quantity,
  total_revenue
FROM `+"`%s.%s.%s`"+`
WHERE date BETWEEN @startDate AND @endDate`, dimension, s.projectID, scope.DatasetID, table)

	params := dateParams(scope)
	if filtered {
		predicate, predicateParams := websitePredicate("website_id", storeIDs)
		sql += "\n  AND " + predicate
		params = append(params, predicateParams...)
	}

	rates := s.loadRateIndex(scope.ClientID, storeIDs, scope.StartDate, scope.EndDate)

	rows, err := s.runQuery(ctx, sql, params, rates, PostProcessSpec{
		MonetaryFields: []string{"total_revenue"},
		StoreField:     "website_id",
		DateField:      "date",
		GroupBy:        []string{dimension},
		SumFields:      []string{"quantity", "total_revenue"},
	})
	if err != nil {
		return nil, err
	}

	return buildBreakdown(rows, dimension, sortBy, limit), nil
}

// buildBreakdown calcula percentuais sobre o total, ordena e trunca as
// linhas de uma quebra por dimensão
func buildBreakdown(rows []warehouse.Row, dimension, sortBy string, limit int) []domain.BreakdownRow {
	breakdown := make([]domain.BreakdownRow, 0, len(rows))

	totalRevenue := 0.0
	totalQuantity := 0.0
	for _, row := range rows {
		totalRevenue += rowFloat(row, "total_revenue")
		totalQuantity += rowFloat(row, "quantity")
	}

	for _, row := range rows {
		entry := domain.BreakdownRow{
			Key:          rowString(row, dimension),
			Quantity:     rowInt(row, "quantity"),
			TotalRevenue: utils.RoundWithTwoDecimalPlace(rowFloat(row, "total_revenue")),
		}

		if sortBy == SortByQuantity {
			entry.Percentage = percentage(rowFloat(row, "quantity"), totalQuantity)
		} else {
			entry.Percentage = percentage(rowFloat(row, "total_revenue"), totalRevenue)
		}

		breakdown = append(breakdown, entry)
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		if sortBy == SortByQuantity {
			return breakdown[i].Quantity > breakdown[j].Quantity
		}
		return breakdown[i].TotalRevenue > breakdown[j].TotalRevenue
	})

	if limit <= 0 {
		limit = defaultBreakdownLimit
	}
	if len(breakdown) > limit {
		breakdown = breakdown[:limit]
	}

	return breakdown
}
