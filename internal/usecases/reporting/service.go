// Package reporting implementa as funções de relatório do dashboard: cada
// uma resolve o escopo de websites, monta uma consulta parametrizada ao
// warehouse, converte os valores monetários por linha e reagrega o resultado.
package reporting

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/lojalytics/dashboard-api/infrastructure/repository"
	"github.com/lojalytics/dashboard-api/infrastructure/warehouse"
	"github.com/lojalytics/dashboard-api/internal/config"
	"github.com/lojalytics/dashboard-api/internal/domain"
	"github.com/lojalytics/dashboard-api/internal/usecases/resolving"
)

type Reporter interface {
	SalesOverview(ctx context.Context, scope domain.ReportScope) (*domain.SalesOverview, error)
	HourlySales(ctx context.Context, scope domain.ReportScope, orderType string) (*domain.HourlySales, error)
	ProductPerformance(ctx context.Context, scope domain.ReportScope, sortBy string, limit int) (*domain.ProductPerformance, error)
	CategoryBreakdown(ctx context.Context, scope domain.ReportScope, sortBy string, limit int) (*domain.CategoryBreakdown, error)
	CollectionsPerformance(ctx context.Context, scope domain.ReportScope, sortBy string, limit int) (*domain.CollectionsPerformance, error)
	Orders(ctx context.Context, scope domain.ReportScope, orderType string, limit int) (*domain.OrdersReport, error)
	CustomerMetrics(ctx context.Context, scope domain.ReportScope) (*domain.CustomerMetrics, error)
	CustomerInsights(ctx context.Context, scope domain.ReportScope) (*domain.CustomerInsights, error)
	MarketingPerformance(ctx context.Context, scope domain.ReportScope) (*domain.MarketingPerformance, error)
}

type Service struct {
	projectID string
	warehouse warehouse.Warehouse
	resolver  resolving.Resolver
	rateRepo  repository.CurrencyRateRepository
}

func NewService(
	cfg *config.Config,
	wh warehouse.Warehouse,
	resolver resolving.Resolver,
	rateRepo repository.CurrencyRateRepository,
) Reporter {
	return &Service{
		projectID: cfg.Warehouse.ProjectID,
		warehouse: wh,
		resolver:  resolver,
		rateRepo:  rateRepo,
	}
}

// validateScope garante os campos obrigatórios de qualquer relatório:
// cliente, dataset e intervalo de datas ordenado
func validateScope(scope domain.ReportScope) error {
	if scope.ClientID == "" {
		return ErrMissingClient
	}
	if scope.DatasetID == "" {
		return ErrMissingDataset
	}
	if scope.StartDate.IsZero() || scope.EndDate.IsZero() || scope.StartDate.After(scope.EndDate) {
		return ErrInvalidDateRange
	}
	return nil
}

// resolveScope valida o escopo e expande o website em store_ids.
// filtered=false significa "sem predicado de website" (all_combined);
// filtered=true com lista vazia significa "resultado vazio, não consultar".
func (s *Service) resolveScope(scope domain.ReportScope) ([]string, bool, error) {
	if err := validateScope(scope); err != nil {
		return nil, false, err
	}

	return s.resolver.Resolve(scope.ClientID, scope.Website)
}

// dateParams converte o intervalo do escopo para parâmetros DATE do
// warehouse (intervalo inclusivo nas duas pontas)
func dateParams(scope domain.ReportScope) []warehouse.Parameter {
	return []warehouse.Parameter{
		{Name: "startDate", Value: civil.DateOf(scope.StartDate)},
		{Name: "endDate", Value: civil.DateOf(scope.EndDate)},
	}
}
