package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/lojalytics/dashboard-api/internal/domain"
	"github.com/lojalytics/dashboard-api/internal/usecases/tenant"
	"github.com/lojalytics/dashboard-api/pkg/apiErrors"
	"github.com/lojalytics/dashboard-api/pkg/log"
	"github.com/lojalytics/dashboard-api/pkg/middleware"
)

// requireTenantAccess garante que usuários com role client só manipulem os
// websites e metadados do próprio tenant
func requireTenantAccess(w http.ResponseWriter, r *http.Request, clientID string) bool {
	userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return false
	}

	principal := userClaims.Principal()
	if !principal.IsAdmin() && principal.ClientID != clientID {
		log.ForContext(r.Context()).WithFields(log.Fields{
			"client_id":           clientID,
			"principal_client_id": principal.ClientID,
		}).Warn("tenant: tentativa de acesso a tenant de outro cliente")

		apiErrors.WriteError(w, apiErrors.ErrTenantMismatch, "Você não tem acesso a este cliente", nil)
		return false
	}

	return true
}

func CreateWebsite(service tenant.TenantService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if !requireTenantAccess(w, r, clientID) {
			return
		}

		var req domain.CreateWebsiteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		website, err := service.CreateWebsite(clientID, &req)
		if err != nil {
			writeTenantError(w, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"client_id":  clientID,
			"website_id": website.ID,
			"is_grouped": website.IsGrouped,
		}).Info("tenant: website criado")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(website)
	})
}

func ListWebsites(service tenant.TenantService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if !requireTenantAccess(w, r, clientID) {
			return
		}

		websites, err := service.ListWebsites(clientID)
		if err != nil {
			writeTenantError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(websites)
	})
}

func UpdateWebsite(service tenant.TenantService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		clientID := params.ByName("id")
		websiteID := params.ByName("website_id")
		if !requireTenantAccess(w, r, clientID) {
			return
		}

		var req domain.CreateWebsiteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		website, err := service.UpdateWebsite(clientID, websiteID, &req)
		if err != nil {
			writeTenantError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(website)
	})
}

func DeleteWebsite(service tenant.TenantService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		clientID := params.ByName("id")
		websiteID := params.ByName("website_id")
		if !requireTenantAccess(w, r, clientID) {
			return
		}

		if err := service.DeleteWebsite(clientID, websiteID); err != nil {
			writeTenantError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
