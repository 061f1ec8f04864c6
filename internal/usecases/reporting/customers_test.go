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

func TestService_CustomerMetrics(t *testing.T) {
	t.Run("Soma clientes novos e recorrentes e calcula a taxa de recorrência", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockWarehouse := warehousemocks.NewMockWarehouse(ctrl)
		mockResolver := resolvingmocks.NewMockResolver(ctrl)

		scope := testScope(domain.WebsiteByID("site-br"))
		mockResolver.EXPECT().
			Resolve("cli-1", scope.Website).
			Return([]string{"loja-br"}, true, nil)
		mockWarehouse.EXPECT().
			Query(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]warehouse.Row{
				{"date": "2024-01-15", "website_id": "loja-br", "new_customers": int64(30), "returning_customers": int64(10)},
				{"date": "2024-01-16", "website_id": "loja-br", "new_customers": int64(45), "returning_customers": int64(15)},
			}, nil)

		service := &Service{
			projectID: "lojalytics-prod",
			warehouse: mockWarehouse,
			resolver:  mockResolver,
			rateRepo:  mocks.NewMockCurrencyRateRepository(ctrl),
		}

		metrics, err := service.CustomerMetrics(context.Background(), scope)

		assert.NoError(t, err)
		assert.Equal(t, 75, metrics.NewCustomers)
		assert.Equal(t, 25, metrics.ReturningCustomers)
		assert.Equal(t, 100, metrics.TotalCustomers)
		assert.Equal(t, 25.0, metrics.ReturningRate)
	})

	t.Run("Sem clientes no período - taxa de recorrência é 0, nunca NaN", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockWarehouse := warehousemocks.NewMockWarehouse(ctrl)
		mockResolver := resolvingmocks.NewMockResolver(ctrl)

		scope := testScope(domain.WebsiteByID("site-br"))
		mockResolver.EXPECT().
			Resolve("cli-1", scope.Website).
			Return([]string{"loja-br"}, true, nil)
		mockWarehouse.EXPECT().
			Query(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]warehouse.Row{}, nil)

		service := &Service{
			projectID: "lojalytics-prod",
			warehouse: mockWarehouse,
			resolver:  mockResolver,
			rateRepo:  mocks.NewMockCurrencyRateRepository(ctrl),
		}

		metrics, err := service.CustomerMetrics(context.Background(), scope)

		assert.NoError(t, err)
		assert.Zero(t, metrics.TotalCustomers)
		assert.Zero(t, metrics.ReturningRate)
	})
}

func TestService_CustomerInsights(t *testing.T) {
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

		insights, err := service.CustomerInsights(context.Background(), scope)

		assert.NoError(t, err)
		assert.Equal(t, "daily", insights.ActiveUsersDaily.Granularity)
		assert.Empty(t, insights.ActiveUsersDaily.Points)
		assert.Empty(t, insights.ActiveUsersWeekly.Points)
		assert.Empty(t, insights.ActiveUsersMonthly.Points)
		assert.Empty(t, insights.Locations)
		assert.Empty(t, insights.Devices)
	})

	t.Run("Cinco consultas independentes compõem o relatório", func(t *testing.T) {
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

		// As cinco consultas chegam em ordem imprevisível; o conteúdo de cada
		// resposta identifica a série pela tabela consultada
		mockWarehouse.EXPECT().
			Query(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, sql string, params []warehouse.Parameter) ([]warehouse.Row, error) {
				switch {
				case strings.Contains(sql, "active_users_daily"):
					return []warehouse.Row{{"period": "2024-01-15", "website_id": "loja-br", "active_users": int64(120)}}, nil
				case strings.Contains(sql, "active_users_weekly"):
					return []warehouse.Row{{"period": "2024-W03", "website_id": "loja-br", "active_users": int64(480)}}, nil
				case strings.Contains(sql, "active_users_monthly"):
					return []warehouse.Row{{"period": "2024-01", "website_id": "loja-br", "active_users": int64(2000)}}, nil
				case strings.Contains(sql, "sessions_by_location_daily"):
					return []warehouse.Row{{"date": "2024-01-15", "website_id": "loja-br", "location": "São Paulo", "quantity": int64(90), "total_revenue": 900.0}}, nil
				case strings.Contains(sql, "sessions_by_device_daily"):
					return []warehouse.Row{{"date": "2024-01-15", "website_id": "loja-br", "device": "mobile", "quantity": int64(60), "total_revenue": 600.0}}, nil
				}
				return nil, nil
			}).
			Times(5)

		service := &Service{
			projectID: "lojalytics-prod",
			warehouse: mockWarehouse,
			resolver:  mockResolver,
			rateRepo:  mockRateRepo,
		}

		insights, err := service.CustomerInsights(context.Background(), scope)

		assert.NoError(t, err)
		assert.Len(t, insights.ActiveUsersDaily.Points, 1)
		assert.Equal(t, 120, insights.ActiveUsersDaily.Points[0].ActiveUsers)
		assert.Len(t, insights.ActiveUsersWeekly.Points, 1)
		assert.Len(t, insights.ActiveUsersMonthly.Points, 1)
		assert.Len(t, insights.Locations, 1)
		assert.Equal(t, "São Paulo", insights.Locations[0].Key)
		assert.Len(t, insights.Devices, 1)
		assert.Equal(t, "mobile", insights.Devices[0].Key)
	})
}
