package reporting

import (
	"context"
	"strings"
	"testing"

	"github.com/lojalytics/dashboard-api/infrastructure/repository/mocks"
	"github.com/lojalytics/dashboard-api/infrastructure/warehouse"
	warehousemocks "github.com/lojalytics/dashboard-api/infrastructure/warehouse/mocks"
	"github.com/lojalytics/dashboard-api/internal/domain"
	resolvingmocks "github.com/lojalytics/dashboard-api/internal/usecases/resolving/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_MarketingPerformance(t *testing.T) {
	t.Run("Canais ordenados por receita com ROAS e CPA derivados", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockWarehouse := warehousemocks.NewMockWarehouse(ctrl)
		mockResolver := resolvingmocks.NewMockResolver(ctrl)
		mockRateRepo := mocks.NewMockCurrencyRateRepository(ctrl)

		scope := testScope(domain.WebsiteByID("site-br"))
		mockResolver.EXPECT().
			Resolve("cli-1", scope.Website).
			Return([]string{"loja-br"}, true, nil)
		mockRateRepo.EXPECT().
			GetRatesByPeriod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		mockWarehouse.EXPECT().
			Query(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, sql string, params []warehouse.Parameter) ([]warehouse.Row, error) {
				if strings.Contains(sql, "marketing_channel_daily") {
					return []warehouse.Row{
						{"date": "2024-01-15", "website_id": "loja-br", "channel": "orgânico", "sessions": int64(100), "orders": int64(5), "revenue": 500.0, "media_spend": 0.0},
						{"date": "2024-01-15", "website_id": "loja-br", "channel": "pago", "sessions": int64(200), "orders": int64(10), "revenue": 1200.0, "media_spend": 100.0},
						{"date": "2024-01-16", "website_id": "loja-br", "channel": "pago", "sessions": int64(100), "orders": int64(10), "revenue": 800.0, "media_spend": 100.0},
					}, nil
				}
				return []warehouse.Row{
					{"date": "2024-01-15", "website_id": "loja-br", "organic_sessions": int64(100), "organic_orders": int64(5), "organic_revenue": 500.0},
				}, nil
			}).
			Times(2)

		service := &Service{
			projectID: "lojalytics-prod",
			warehouse: mockWarehouse,
			resolver:  mockResolver,
			rateRepo:  mockRateRepo,
		}

		performance, err := service.MarketingPerformance(context.Background(), scope)

		assert.NoError(t, err)
		assert.Len(t, performance.Channels, 2)

		paid := performance.Channels[0]
		assert.Equal(t, "pago", paid.Channel)
		assert.Equal(t, 2000.0, paid.Revenue)
		assert.Equal(t, 200.0, paid.MediaSpend)
		assert.Equal(t, 10.0, paid.ROAS)
		assert.Equal(t, 10.0, paid.CPA)

		organic := performance.Channels[1]
		assert.Equal(t, "orgânico", organic.Channel)
		// Canal sem investimento: ROAS e CPA são 0, nunca Inf
		assert.Zero(t, organic.ROAS)
		assert.Zero(t, organic.CPA)

		assert.Len(t, performance.SEO, 1)
		assert.Equal(t, 500.0, performance.SEO[0].OrganicRevenue)
	})

	t.Run("Escopo resolvido sem lojas - estrutura vazia sem consultar o warehouse", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockResolver := resolvingmocks.NewMockResolver(ctrl)
		scope := testScope(domain.WebsiteByID("fantasma"))
		mockResolver.EXPECT().
			Resolve("cli-1", scope.Website).
			Return([]string{}, true, nil)

		service := &Service{
			projectID: "lojalytics-prod",
			warehouse: warehousemocks.NewMockWarehouse(ctrl),
			resolver:  mockResolver,
			rateRepo:  mocks.NewMockCurrencyRateRepository(ctrl),
		}

		performance, err := service.MarketingPerformance(context.Background(), scope)

		assert.NoError(t, err)
		assert.Empty(t, performance.Channels)
		assert.Empty(t, performance.SEO)
	})
}
