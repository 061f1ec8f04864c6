package reporting

import (
	"context"
	"fmt"

	"github.com/lojalytics/dashboard-api/internal/domain"
	"golang.org/x/sync/errgroup"
)

// CustomerMetrics retorna a contagem de clientes novos e recorrentes do
// período e a taxa de recorrência
func (s *Service) CustomerMetrics(ctx context.Context, scope domain.ReportScope) (*domain.CustomerMetrics, error) {
	storeIDs, filtered, err := s.resolveScope(scope)
	if err != nil {
		return nil, err
	}

	metrics := &domain.CustomerMetrics{}

	if filtered && len(storeIDs) == 0 {
		return metrics, nil
	}

	sql := fmt.Sprintf(`
SELECT
  date,
  website_id,
  new_customers,
  returning_customers
FROM `+"`%s.%s.customers_daily`"+`
WHERE date BETWEEN @startDate AND @endDate`, s.projectID, scope.DatasetID)

	params := dateParams(scope)
	if filtered {
		predicate, predicateParams := websitePredicate("website_id", storeIDs)
		sql += "\n  AND " + predicate
		params = append(params, predicateParams...)
	}

	// Contagens de clientes não são monetárias: nenhuma conversão, apenas o
	// colapso das lojas
	rows, err := s.runQuery(ctx, sql, params, RateIndex{}, PostProcessSpec{
		GroupBy:   []string{"date"},
		SumFields: []string{"new_customers", "returning_customers"},
	})
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		metrics.NewCustomers += rowInt(row, "new_customers")
		metrics.ReturningCustomers += rowInt(row, "returning_customers")
	}

	metrics.TotalCustomers = metrics.NewCustomers + metrics.ReturningCustomers
	metrics.ReturningRate = percentage(float64(metrics.ReturningCustomers), float64(metrics.TotalCustomers))

	return metrics, nil
}

// CustomerInsights compõe usuários ativos (diário, semanal e mensal) e as
// quebras por localização e dispositivo. As cinco consultas são independentes
// e disparadas em paralelo; o cancelamento de uma propaga para as irmãs.
func (s *Service) CustomerInsights(ctx context.Context, scope domain.ReportScope) (*domain.CustomerInsights, error) {
	storeIDs, filtered, err := s.resolveScope(scope)
	if err != nil {
		return nil, err
	}

	insights := &domain.CustomerInsights{
		ActiveUsersDaily:   domain.ActiveUsersSeries{Granularity: "daily", Points: make([]domain.ActiveUsersRow, 0)},
		ActiveUsersWeekly:  domain.ActiveUsersSeries{Granularity: "weekly", Points: make([]domain.ActiveUsersRow, 0)},
		ActiveUsersMonthly: domain.ActiveUsersSeries{Granularity: "monthly", Points: make([]domain.ActiveUsersRow, 0)},
		Locations:          make([]domain.BreakdownRow, 0),
		Devices:            make([]domain.BreakdownRow, 0),
	}

	if filtered && len(storeIDs) == 0 {
		return insights, nil
	}

	rates := s.loadRateIndex(scope.ClientID, storeIDs, scope.StartDate, scope.EndDate)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		points, err := s.activeUsersSeries(groupCtx, scope, storeIDs, filtered, "active_users_daily")
		if err != nil {
			return err
		}
		insights.ActiveUsersDaily.Points = points
		return nil
	})

	group.Go(func() error {
		points, err := s.activeUsersSeries(groupCtx, scope, storeIDs, filtered, "active_users_weekly")
		if err != nil {
			return err
		}
		insights.ActiveUsersWeekly.Points = points
		return nil
	})

	group.Go(func() error {
		points, err := s.activeUsersSeries(groupCtx, scope, storeIDs, filtered, "active_users_monthly")
		if err != nil {
			return err
		}
		insights.ActiveUsersMonthly.Points = points
		return nil
	})

	group.Go(func() error {
		locations, err := s.sessionBreakdown(groupCtx, scope, storeIDs, filtered, rates, "sessions_by_location_daily", "location")
		if err != nil {
			return err
		}
		insights.Locations = locations
		return nil
	})

	group.Go(func() error {
		devices, err := s.sessionBreakdown(groupCtx, scope, storeIDs, filtered, rates, "sessions_by_device_daily", "device")
		if err != nil {
			return err
		}
		insights.Devices = devices
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return insights, nil
}

// activeUsersSeries consulta uma das séries de usuários ativos. Contagens de
// usuários não passam por conversão de moeda.
func (s *Service) activeUsersSeries(
	ctx context.Context,
	scope domain.ReportScope,
	storeIDs []string,
	filtered bool,
	table string,
) ([]domain.ActiveUsersRow, error) {
	sql := fmt.Sprintf(`
SELECT
  period,
  website_id,
  active_users
FROM `+"`%s.%s.%s`"+`
WHERE period_start BETWEEN @startDate AND @endDate`, s.projectID, scope.DatasetID, table)

	params := dateParams(scope)
	if filtered {
		predicate, predicateParams := websitePredicate("website_id", storeIDs)
		sql += "\n  AND " + predicate
		params = append(params, predicateParams...)
	}
	sql += "\nORDER BY period"

	rows, err := s.runQuery(ctx, sql, params, RateIndex{}, PostProcessSpec{
		GroupBy:   []string{"period"},
		SumFields: []string{"active_users"},
	})
	if err != nil {
		return nil, err
	}

	points := make([]domain.ActiveUsersRow, 0, len(rows))
	for _, row := range rows {
		points = append(points, domain.ActiveUsersRow{
			Period:      rowString(row, "period"),
			ActiveUsers: rowInt(row, "active_users"),
		})
	}

	return points, nil
}

// sessionBreakdown monta as quebras de sessões e receita por localização ou
// dispositivo, com percentual sobre a receita total
func (s *Service) sessionBreakdown(
	ctx context.Context,
	scope domain.ReportScope,
	storeIDs []string,
	filtered bool,
	rates RateIndex,
	table string,
	dimension string,
) ([]domain.BreakdownRow, error) {
	sql := fmt.Sprintf(`
SELECT
  date,
  website_id,
  %s,
  sessions AS quantity,
  total_revenue
FROM `+"`%s.%s.%s`"+`
WHERE date BETWEEN @startDate AND @endDate`, dimension, s.projectID, scope.DatasetID, table)

	params := dateParams(scope)
	if filtered {
		predicate, predicateParams := websitePredicate("website_id", storeIDs)
		sql += "\n  AND " + predicate
		params = append(params, predicateParams...)
	}

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

	return buildBreakdown(rows, dimension, SortByRevenue, defaultBreakdownLimit), nil
}
