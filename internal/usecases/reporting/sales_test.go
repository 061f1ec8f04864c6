package reporting

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/lojalytics/dashboard-api/infrastructure/repository/mocks"
	"github.com/lojalytics/dashboard-api/infrastructure/warehouse"
	warehousemocks "github.com/lojalytics/dashboard-api/infrastructure/warehouse/mocks"
	"github.com/lojalytics/dashboard-api/internal/domain"
	resolvingmocks "github.com/lojalytics/dashboard-api/internal/usecases/resolving/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func testScope(website domain.WebsiteScope) domain.ReportScope {
	return domain.ReportScope{
		ClientID:  "cli-1",
		DatasetID: "demo_analytics",
		Website:   website,
		StartDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
	}
}

func TestService_SalesOverview(t *testing.T) {
	t.Run("Escopo resolvido sem lojas - retorna vazio sem consultar o warehouse", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockWarehouse := warehousemocks.NewMockWarehouse(ctrl)
		mockResolver := resolvingmocks.NewMockResolver(ctrl)
		mockRateRepo := mocks.NewMockCurrencyRateRepository(ctrl)

		scope := testScope(domain.WebsiteByID("fantasma"))
		mockResolver.EXPECT().
			Resolve("cli-1", scope.Website).
			Return([]string{}, true, nil)

		service := &Service{
			projectID: "lojalytics-prod",
			warehouse: mockWarehouse,
			resolver:  mockResolver,
			rateRepo:  mockRateRepo,
		}

		result, err := service.SalesOverview(context.Background(), scope)

		assert.NoError(t, err)
		assert.Empty(t, result.Daily)
		assert.Equal(t, domain.SalesTotals{}, result.Totals)
	})

	t.Run("all_combined - consulta sem predicado de website", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockWarehouse := warehousemocks.NewMockWarehouse(ctrl)
		mockResolver := resolvingmocks.NewMockResolver(ctrl)
		mockRateRepo := mocks.NewMockCurrencyRateRepository(ctrl)

		scope := testScope(domain.AllWebsites())
		mockResolver.EXPECT().
			Resolve("cli-1", scope.Website).
			Return(nil, false, nil)
		mockRateRepo.EXPECT().
			GetRatesByPeriod("cli-1", gomock.Any(), scope.StartDate, scope.EndDate).
			Return(nil, nil)
		mockWarehouse.EXPECT().
			Query(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, sql string, params []warehouse.Parameter) ([]warehouse.Row, error) {
				assert.NotContains(t, sql, "website_id =")
				assert.NotContains(t, sql, "website_id IN")
				assert.Len(t, params, 2)
				return []warehouse.Row{}, nil
			})

		service := &Service{
			projectID: "lojalytics-prod",
			warehouse: mockWarehouse,
			resolver:  mockResolver,
			rateRepo:  mockRateRepo,
		}

		_, err := service.SalesOverview(context.Background(), scope)
		assert.NoError(t, err)
	})

	t.Run("Lojas em moedas diferentes - converte cada linha antes de somar o dia", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockWarehouse := warehousemocks.NewMockWarehouse(ctrl)
		mockResolver := resolvingmocks.NewMockResolver(ctrl)
		mockRateRepo := mocks.NewMockCurrencyRateRepository(ctrl)

		scope := testScope(domain.WebsiteByID("grupo-global"))
		mockResolver.EXPECT().
			Resolve("cli-1", scope.Website).
			Return([]string{"loja-br", "loja-us"}, true, nil)
		mockRateRepo.EXPECT().
			GetRatesByPeriod("cli-1", []string{"loja-br", "loja-us"}, scope.StartDate, scope.EndDate).
			Return([]*domain.CurrencyRate{
				{StoreID: "loja-us", Date: "2024-01-15", Rate: 2.0},
			}, nil)
		mockWarehouse.EXPECT().
			Query(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, sql string, params []warehouse.Parameter) ([]warehouse.Row, error) {
				assert.Contains(t, sql, "website_id IN (@storeId0, @storeId1)")
				return []warehouse.Row{
					{
						"date": "2024-01-15", "website_id": "loja-br",
						"total_sales": 100.0, "total_revenue": 100.0,
						"total_orders": int64(2), "total_sessions": int64(50), "total_media_spend": 10.0,
					},
					{
						"date": "2024-01-15", "website_id": "loja-us",
						"total_sales": 100.0, "total_revenue": 100.0,
						"total_orders": int64(3), "total_sessions": int64(70), "total_media_spend": 10.0,
					},
				}, nil
			})

		service := &Service{
			projectID: "lojalytics-prod",
			warehouse: mockWarehouse,
			resolver:  mockResolver,
			rateRepo:  mockRateRepo,
		}

		result, err := service.SalesOverview(context.Background(), scope)

		assert.NoError(t, err)
		assert.Len(t, result.Daily, 1)
		assert.Equal(t, 300.0, result.Daily[0].TotalSales)
		assert.Equal(t, 300.0, result.Daily[0].TotalRevenue)
		assert.Equal(t, 5, result.Daily[0].TotalOrders)
		assert.Equal(t, 120, result.Daily[0].TotalSessions)
		assert.Equal(t, 30.0, result.Daily[0].TotalMediaSpend)
		assert.Equal(t, 300.0, result.Totals.TotalSales)
	})

	t.Run("Escopo sem cliente - rejeita antes de resolver", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := &Service{
			projectID: "lojalytics-prod",
			warehouse: warehousemocks.NewMockWarehouse(ctrl),
			resolver:  resolvingmocks.NewMockResolver(ctrl),
			rateRepo:  mocks.NewMockCurrencyRateRepository(ctrl),
		}

		scope := testScope(domain.AllWebsites())
		scope.ClientID = ""

		_, err := service.SalesOverview(context.Background(), scope)
		assert.ErrorIs(t, err, ErrMissingClient)
	})

	t.Run("Intervalo invertido - rejeita com erro de intervalo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := &Service{
			projectID: "lojalytics-prod",
			warehouse: warehousemocks.NewMockWarehouse(ctrl),
			resolver:  resolvingmocks.NewMockResolver(ctrl),
			rateRepo:  mocks.NewMockCurrencyRateRepository(ctrl),
		}

		scope := testScope(domain.AllWebsites())
		scope.StartDate, scope.EndDate = scope.EndDate, scope.StartDate

		_, err := service.SalesOverview(context.Background(), scope)
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})
}

func TestSamplePartitionClause(t *testing.T) {
	tests := []struct {
		name      string
		orderType string
		expected  string
		err       error
	}{
		{
			name:      "Pedidos principais - exclui amostras e inclui linhas antigas sem o campo",
			orderType: domain.OrderTypeMain,
			expected:  "(is_sample = 0 OR is_sample IS NULL)",
		},
		{
			name:      "Tipo vazio - assume pedidos principais",
			orderType: "",
			expected:  "(is_sample = 0 OR is_sample IS NULL)",
		},
		{
			name:      "Pedidos de amostra - filtra is_sample = 1",
			orderType: domain.OrderTypeSample,
			expected:  "is_sample = 1",
		},
		{
			name:      "Tipo desconhecido - rejeita",
			orderType: "refunds",
			err:       ErrInvalidOrderType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, err := samplePartitionClause(tt.orderType)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, clause)
		})
	}
}

func TestBuildHourlySales(t *testing.T) {
	t.Run("Média por hora divide pelas datas distintas com atividade", func(t *testing.T) {
		rows := []warehouse.Row{
			{"date": "2024-01-15", "hour": int64(10), "total_orders": 4.0, "total_revenue": 100.0},
			{"date": "2024-01-16", "hour": int64(10), "total_orders": 2.0, "total_revenue": 50.0},
			{"date": "2024-01-15", "hour": int64(22), "total_orders": 3.0, "total_revenue": 300.0},
		}

		result := buildHourlySales(rows)

		assert.Len(t, result.Hours, 24)
		assert.Equal(t, 6, result.Hours[10].TotalOrders)
		assert.Equal(t, 2, result.Hours[10].DistinctDates)
		assert.Equal(t, 3.0, result.Hours[10].AvgOrders)
		assert.Equal(t, 75.0, result.Hours[10].AvgRevenue)
		assert.Equal(t, 1, result.Hours[22].DistinctDates)
		assert.Equal(t, 3.0, result.Hours[22].AvgOrders)
	})

	t.Run("Horas de pico - empate resolve para a menor hora", func(t *testing.T) {
		rows := []warehouse.Row{
			{"date": "2024-01-15", "hour": int64(9), "total_orders": 5.0, "total_revenue": 100.0},
			{"date": "2024-01-15", "hour": int64(14), "total_orders": 5.0, "total_revenue": 100.0},
		}

		result := buildHourlySales(rows)

		assert.Equal(t, 9, result.PeakOrdersHour)
		assert.Equal(t, 9, result.PeakRevenueHour)
	})

	t.Run("Picos distintos - pedidos e receita apontam horas diferentes", func(t *testing.T) {
		rows := []warehouse.Row{
			{"date": "2024-01-15", "hour": int64(9), "total_orders": 10.0, "total_revenue": 100.0},
			{"date": "2024-01-15", "hour": int64(20), "total_orders": 2.0, "total_revenue": 900.0},
		}

		result := buildHourlySales(rows)

		assert.Equal(t, 9, result.PeakOrdersHour)
		assert.Equal(t, 20, result.PeakRevenueHour)
	})

	t.Run("Hora fora do intervalo - linha ignorada", func(t *testing.T) {
		rows := []warehouse.Row{
			{"date": "2024-01-15", "hour": int64(25), "total_orders": 5.0, "total_revenue": 100.0},
		}

		result := buildHourlySales(rows)

		for _, bucket := range result.Hours {
			assert.Zero(t, bucket.TotalOrders)
		}
	})

	t.Run("Sem linhas - 24 buckets zerados numerados de 0 a 23", func(t *testing.T) {
		result := buildHourlySales(nil)

		assert.Len(t, result.Hours, 24)
		for hour, bucket := range result.Hours {
			assert.Equal(t, hour, bucket.Hour)
			assert.Zero(t, bucket.TotalOrders)
		}
	})
}

func TestService_Orders(t *testing.T) {
	t.Run("Limite aplicado na consulta e tipo padrão main", func(t *testing.T) {
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
				assert.Contains(t, sql, "website_id = @storeId")
				assert.True(t, strings.Contains(sql, "LIMIT @rowLimit"))
				return []warehouse.Row{
					{"order_id": "o-2", "date": "2024-01-16", "customer_id": "c-1", "total_amount": 80.0, "item_count": int64(2), "is_sample": int64(0)},
					{"order_id": "o-1", "date": "2024-01-15", "customer_id": "c-2", "total_amount": 20.0, "item_count": int64(1), "is_sample": int64(0)},
				}, nil
			})

		service := &Service{
			projectID: "lojalytics-prod",
			warehouse: mockWarehouse,
			resolver:  mockResolver,
			rateRepo:  mockRateRepo,
		}

		report, err := service.Orders(context.Background(), scope, "", 0)

		assert.NoError(t, err)
		assert.Equal(t, domain.OrderTypeMain, report.OrderType)
		assert.Equal(t, 2, report.TotalOrders)
		assert.Equal(t, 100.0, report.TotalAmount)
		assert.False(t, report.Orders[0].IsSample)
	})

	t.Run("Tipo de pedido inválido - rejeita sem resolver o escopo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := &Service{
			projectID: "lojalytics-prod",
			warehouse: warehousemocks.NewMockWarehouse(ctrl),
			resolver:  resolvingmocks.NewMockResolver(ctrl),
			rateRepo:  mocks.NewMockCurrencyRateRepository(ctrl),
		}

		_, err := service.Orders(context.Background(), testScope(domain.AllWebsites()), "refunds", 10)
		assert.ErrorIs(t, err, ErrInvalidOrderType)
	})
}
