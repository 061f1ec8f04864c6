package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/lojalytics/dashboard-api/internal/domain"
	"github.com/lojalytics/dashboard-api/internal/usecases/reporting"
	"github.com/lojalytics/dashboard-api/pkg/apiErrors"
	"github.com/lojalytics/dashboard-api/pkg/log"
	"github.com/lojalytics/dashboard-api/pkg/middleware"
	"github.com/lojalytics/dashboard-api/pkg/utils"
)

// parseReportScope monta o escopo do relatório a partir dos parâmetros da
// requisição. Usuários com role client só consultam o próprio tenant: o
// client_id do token prevalece e divergências são rejeitadas antes de
// qualquer consulta ao warehouse.
func parseReportScope(w http.ResponseWriter, r *http.Request) (domain.ReportScope, bool) {
	logger := log.ForContext(r.Context())

	userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return domain.ReportScope{}, false
	}
	principal := userClaims.Principal()

	query := r.URL.Query()

	clientID := query.Get("client_id")
	if !principal.IsAdmin() {
		if clientID != "" && clientID != principal.ClientID {
			logger.WithFields(log.Fields{
				"client_id":           clientID,
				"principal_client_id": principal.ClientID,
			}).Warn("reports: tentativa de acesso a tenant de outro cliente")

			apiErrors.WriteError(w, apiErrors.ErrTenantMismatch, "Você não tem acesso a este cliente", nil)
			return domain.ReportScope{}, false
		}
		clientID = principal.ClientID
	}

	if clientID == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "client_id é obrigatório", nil)
		return domain.ReportScope{}, false
	}

	datasetID := query.Get("dataset_id")
	if datasetID == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "dataset_id é obrigatório", nil)
		return domain.ReportScope{}, false
	}

	startDate, endDate, err := utils.ParseDateRange(query.Get("start_date"), query.Get("end_date"))
	if err != nil {
		logger.WithFields(log.Fields{
			"start_date": query.Get("start_date"),
			"end_date":   query.Get("end_date"),
			"error":      err.Error(),
		}).Warn("reports: intervalo de datas inválido")

		apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
		return domain.ReportScope{}, false
	}

	return domain.ReportScope{
		ClientID:  clientID,
		DatasetID: datasetID,
		Website:   domain.ParseWebsiteScope(query.Get("website_id")),
		StartDate: startDate,
		EndDate:   endDate,
	}, true
}

// parseLimit lê o parâmetro limit, mantendo o padrão do relatório quando
// ausente ou inválido
func parseLimit(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

// writeReportError traduz os erros da camada de relatórios para o envelope da API
func writeReportError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context())

	switch {
	case errors.Is(err, reporting.ErrMissingClient),
		errors.Is(err, reporting.ErrMissingDataset):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, reporting.ErrInvalidDateRange):
		apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)

	case errors.Is(err, reporting.ErrInvalidOrderType):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	case errors.Is(err, reporting.ErrQueryFailed):
		logger.WithField("error", err.Error()).Error("reports: falha na consulta ao warehouse")
		apiErrors.WriteError(w, apiErrors.ErrReportQueryFailed, "Falha ao consultar os dados do relatório", nil)

	default:
		logger.WithField("error", err.Error()).Error("reports: erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao gerar relatório", nil)
	}
}

func writeReportResponse(w http.ResponseWriter, r *http.Request, report any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(report); err != nil {
		log.ForContext(r.Context()).WithField("error", err.Error()).Error("reports: falha ao codificar resposta")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func GetSalesOverview(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		scope, ok := parseReportScope(w, r)
		if !ok {
			return
		}

		logger.WithFields(log.Fields{
			"client_id":  scope.ClientID,
			"dataset_id": scope.DatasetID,
			"start_date": scope.StartDate.Format(time.DateOnly),
			"end_date":   scope.EndDate.Format(time.DateOnly),
		}).Info("reports: gerando visão geral de vendas")

		report, err := service.SalesOverview(r.Context(), scope)
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		writeReportResponse(w, r, report)
	})
}

func GetHourlySales(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope, ok := parseReportScope(w, r)
		if !ok {
			return
		}

		orderType := r.URL.Query().Get("order_type")
		if orderType == "" {
			orderType = domain.OrderTypeMain
		}

		report, err := service.HourlySales(r.Context(), scope, orderType)
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		writeReportResponse(w, r, report)
	})
}

func GetProductPerformance(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope, ok := parseReportScope(w, r)
		if !ok {
			return
		}

		report, err := service.ProductPerformance(r.Context(), scope, r.URL.Query().Get("sort_by"), parseLimit(r))
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		writeReportResponse(w, r, report)
	})
}

func GetCategoryBreakdown(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope, ok := parseReportScope(w, r)
		if !ok {
			return
		}

		report, err := service.CategoryBreakdown(r.Context(), scope, r.URL.Query().Get("sort_by"), parseLimit(r))
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		writeReportResponse(w, r, report)
	})
}

func GetCollectionsPerformance(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope, ok := parseReportScope(w, r)
		if !ok {
			return
		}

		report, err := service.CollectionsPerformance(r.Context(), scope, r.URL.Query().Get("sort_by"), parseLimit(r))
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		writeReportResponse(w, r, report)
	})
}

func GetOrders(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope, ok := parseReportScope(w, r)
		if !ok {
			return
		}

		orderType := r.URL.Query().Get("order_type")
		if orderType == "" {
			orderType = domain.OrderTypeMain
		}

		report, err := service.Orders(r.Context(), scope, orderType, parseLimit(r))
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		writeReportResponse(w, r, report)
	})
}

func GetCustomerMetrics(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope, ok := parseReportScope(w, r)
		if !ok {
			return
		}

		report, err := service.CustomerMetrics(r.Context(), scope)
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		writeReportResponse(w, r, report)
	})
}

func GetCustomerInsights(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope, ok := parseReportScope(w, r)
		if !ok {
			return
		}

		report, err := service.CustomerInsights(r.Context(), scope)
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		writeReportResponse(w, r, report)
	})
}

func GetMarketingPerformance(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope, ok := parseReportScope(w, r)
		if !ok {
			return
		}

		report, err := service.MarketingPerformance(r.Context(), scope)
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		writeReportResponse(w, r, report)
	})
}
