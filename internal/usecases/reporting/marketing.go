package reporting

import (
	"context"
	"fmt"
	"sort"

	"github.com/lojalytics/dashboard-api/internal/domain"
	"github.com/lojalytics/dashboard-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// MarketingPerformance compõe a quebra por canal de aquisição e a série de
// SEO orgânico. As duas consultas são independentes e executam em paralelo.
func (s *Service) MarketingPerformance(ctx context.Context, scope domain.ReportScope) (*domain.MarketingPerformance, error) {
	storeIDs, filtered, err := s.resolveScope(scope)
	if err != nil {
		return nil, err
	}

	performance := &domain.MarketingPerformance{
		Channels: make([]domain.ChannelPerformanceRow, 0),
		SEO:      make([]domain.SEOPerformanceRow, 0),
	}

	if filtered && len(storeIDs) == 0 {
		return performance, nil
	}

	rates := s.loadRateIndex(scope.ClientID, storeIDs, scope.StartDate, scope.EndDate)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		channels, err := s.channelPerformance(groupCtx, scope, storeIDs, filtered, rates)
		if err != nil {
			return err
		}
		performance.Channels = channels
		return nil
	})

	group.Go(func() error {
		seo, err := s.seoPerformance(groupCtx, scope, storeIDs, filtered, rates)
		if err != nil {
			return err
		}
		performance.SEO = seo
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return performance, nil
}

func (s *Service) channelPerformance(
	ctx context.Context,
	scope domain.ReportScope,
	storeIDs []string,
	filtered bool,
	rates RateIndex,
) ([]domain.ChannelPerformanceRow, error) {
	sql := fmt.Sprintf(`
SELECT
  date,
  website_id,
  channel,
  sessions,
  orders,
  revenue,
  media_spend
FROM `+"`%s.%s.marketing_channel_daily`"+`
WHERE date BETWEEN @startDate AND @endDate`, s.projectID, scope.DatasetID)

	params := dateParams(scope)
	if filtered {
		predicate, predicateParams := websitePredicate("website_id", storeIDs)
		sql += "\n  AND " + predicate
		params = append(params, predicateParams...)
	}

	rows, err := s.runQuery(ctx, sql, params, rates, PostProcessSpec{
		MonetaryFields: []string{"revenue", "media_spend"},
		StoreField:     "website_id",
		DateField:      "date",
		GroupBy:        []string{"channel"},
		SumFields:      []string{"sessions", "orders", "revenue", "media_spend"},
	})
	if err != nil {
		return nil, err
	}

	channels := make([]domain.ChannelPerformanceRow, 0, len(rows))
	for _, row := range rows {
		entry := domain.ChannelPerformanceRow{
			Channel:    rowString(row, "channel"),
			Sessions:   rowInt(row, "sessions"),
			Orders:     rowInt(row, "orders"),
			Revenue:    utils.RoundWithTwoDecimalPlace(rowFloat(row, "revenue")),
			MediaSpend: utils.RoundWithTwoDecimalPlace(rowFloat(row, "media_spend")),
		}
		entry.ROAS = utils.RoundWithTwoDecimalPlace(safeDivide(entry.Revenue, entry.MediaSpend))
		entry.CPA = utils.RoundWithTwoDecimalPlace(safeDivide(entry.MediaSpend, float64(entry.Orders)))

		channels = append(channels, entry)
	}

	sort.SliceStable(channels, func(i, j int) bool {
		return channels[i].Revenue > channels[j].Revenue
	})

	return channels, nil
}

func (s *Service) seoPerformance(
	ctx context.Context,
	scope domain.ReportScope,
	storeIDs []string,
	filtered bool,
	rates RateIndex,
) ([]domain.SEOPerformanceRow, error) {
	sql := fmt.Sprintf(`
SELECT
  date,
  website_id,
  organic_sessions,
  organic_orders,
  organic_revenue
FROM `+"`%s.%s.seo_daily`"+`
WHERE date BETWEEN @startDate AND @endDate`, s.projectID, scope.DatasetID)

	params := dateParams(scope)
	if filtered {
		predicate, predicateParams := websitePredicate("website_id", storeIDs)
		sql += "\n  AND " + predicate
		params = append(params, predicateParams...)
	}
	sql += "\nORDER BY date"

	rows, err := s.runQuery(ctx, sql, params, rates, PostProcessSpec{
		MonetaryFields: []string{"organic_revenue"},
		StoreField:     "website_id",
		DateField:      "date",
		GroupBy:        []string{"date"},
		SumFields:      []string{"organic_sessions", "organic_orders", "organic_revenue"},
	})
	if err != nil {
		return nil, err
	}

	seo := make([]domain.SEOPerformanceRow, 0, len(rows))
	for _, row := range rows {
		seo = append(seo, domain.SEOPerformanceRow{
			Date:            rowString(row, "date"),
			OrganicSessions: rowInt(row, "organic_sessions"),
			OrganicOrders:   rowInt(row, "organic_orders"),
			OrganicRevenue:  utils.RoundWithTwoDecimalPlace(rowFloat(row, "organic_revenue")),
		})
	}

	return seo, nil
}
