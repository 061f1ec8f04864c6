package reporting

import (
	"context"
	"testing"

	"github.com/lojalytics/dashboard-api/infrastructure/repository/mocks"
	"github.com/lojalytics/dashboard-api/infrastructure/warehouse"
	warehousemocks "github.com/lojalytics/dashboard-api/infrastructure/warehouse/mocks"
	"github.com/lojalytics/dashboard-api/internal/domain"
	resolvingmocks "github.com/lojalytics/dashboard-api/internal/usecases/resolving/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestBuildBreakdown(t *testing.T) {
	rows := []warehouse.Row{
		{"category": "óculos de sol", "quantity": int64(10), "total_revenue": 300.0},
		{"category": "armações", "quantity": int64(30), "total_revenue": 200.0},
		{"category": "lentes", "quantity": int64(20), "total_revenue": 500.0},
	}

	t.Run("Percentual sobre a receita total e ordenação decrescente", func(t *testing.T) {
		result := buildBreakdown(rows, "category", SortByRevenue, 10)

		assert.Len(t, result, 3)
		assert.Equal(t, "lentes", result[0].Key)
		assert.Equal(t, 50.0, result[0].Percentage)
		assert.Equal(t, "óculos de sol", result[1].Key)
		assert.Equal(t, 30.0, result[1].Percentage)
		assert.Equal(t, "armações", result[2].Key)
		assert.Equal(t, 20.0, result[2].Percentage)
	})

	t.Run("Ordenação por quantidade usa o percentual de quantidade", func(t *testing.T) {
		result := buildBreakdown(rows, "category", SortByQuantity, 10)

		assert.Equal(t, "armações", result[0].Key)
		assert.Equal(t, 50.0, result[0].Percentage)
		assert.Equal(t, "lentes", result[1].Key)
		assert.Equal(t, "óculos de sol", result[2].Key)
	})

	t.Run("Limite trunca depois da ordenação", func(t *testing.T) {
		result := buildBreakdown(rows, "category", SortByRevenue, 2)

		assert.Len(t, result, 2)
		assert.Equal(t, "lentes", result[0].Key)
	})

	t.Run("Sem linhas - quebra vazia sem divisão por zero", func(t *testing.T) {
		result := buildBreakdown(nil, "category", SortByRevenue, 10)

		assert.Empty(t, result)
	})
}

func TestService_ProductPerformance(t *testing.T) {
	t.Run("Colapsa datas e lojas em uma linha por produto após a conversão", func(t *testing.T) {
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
			GetRatesByPeriod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]*domain.CurrencyRate{
				{StoreID: "loja-us", Date: "2024-01-15", Rate: 5.0},
			}, nil)
		mockWarehouse.EXPECT().
			Query(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]warehouse.Row{
				{"date": "2024-01-15", "website_id": "loja-br", "product_id": "p-1", "product_name": "Óculos Aviador", "quantity": int64(2), "total_revenue": 100.0, "total_orders": int64(2)},
				{"date": "2024-01-15", "website_id": "loja-us", "product_id": "p-1", "product_name": "Óculos Aviador", "quantity": int64(1), "total_revenue": 20.0, "total_orders": int64(1)},
				{"date": "2024-01-16", "website_id": "loja-br", "product_id": "p-2", "product_name": "Armação Clássica", "quantity": int64(5), "total_revenue": 150.0, "total_orders": int64(4)},
			}, nil)

		service := &Service{
			projectID: "lojalytics-prod",
			warehouse: mockWarehouse,
			resolver:  mockResolver,
			rateRepo:  mockRateRepo,
		}

		report, err := service.ProductPerformance(context.Background(), scope, SortByRevenue, 10)

		assert.NoError(t, err)
		assert.Len(t, report.Products, 2)
		// 100 BRL + 20 USD * 5.0 = 200 convertidos antes do colapso
		assert.Equal(t, "p-1", report.Products[0].ProductID)
		assert.Equal(t, 200.0, report.Products[0].TotalRevenue)
		assert.Equal(t, 3, report.Products[0].Quantity)
		assert.Equal(t, "p-2", report.Products[1].ProductID)
		assert.Equal(t, 150.0, report.Products[1].TotalRevenue)
	})

	t.Run("Escopo resolvido sem lojas - lista vazia sem consultar o warehouse", func(t *testing.T) {
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

		report, err := service.ProductPerformance(context.Background(), scope, SortByRevenue, 10)

		assert.NoError(t, err)
		assert.Empty(t, report.Products)
	})
}
