package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/lojalytics/dashboard-api/internal/domain"
	"github.com/lojalytics/dashboard-api/internal/usecases/tenant"
	"github.com/lojalytics/dashboard-api/pkg/apiErrors"
	"github.com/lojalytics/dashboard-api/pkg/log"
	"github.com/sirupsen/logrus"
)

// writeTenantError traduz os erros da camada de tenant para o envelope da API
func writeTenantError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tenant.ErrClientNotFound):
		apiErrors.WriteError(w, apiErrors.ErrClientNotFound, "Cliente não encontrado", nil)

	case errors.Is(err, tenant.ErrWebsiteNotFound):
		apiErrors.WriteError(w, apiErrors.ErrWebsiteNotFound, "Website não encontrado", nil)

	case errors.Is(err, tenant.ErrDocumentNotFound):
		apiErrors.WriteError(w, apiErrors.ErrDocumentNotFound, "Documento não encontrado", nil)

	case errors.Is(err, tenant.ErrGroupTooSmall),
		errors.Is(err, tenant.ErrGroupMemberNotFound),
		errors.Is(err, tenant.ErrNestedGroup),
		errors.Is(err, tenant.ErrGroupSelfReference):
		apiErrors.WriteError(w, apiErrors.ErrInvalidGrouping, err.Error(), nil)

	case errors.Is(err, tenant.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, tenant.ErrWebsiteAlreadyExists):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Website já cadastrado para este cliente", nil)

	case errors.Is(err, tenant.ErrNotOwnerNorAdmin):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas o autor ou um administrador pode remover este documento", nil)

	case errors.Is(err, tenant.ErrInviteExpired):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Convite expirado", nil)

	case errors.Is(err, tenant.ErrInviteAlreadyUsed):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Convite já utilizado", nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar os dados do tenant", nil)
	}
}

func CreateClient(service tenant.TenantService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateClientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		client, err := service.CreateClient(&req)
		if err != nil {
			writeTenantError(w, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"client_id":  client.ID,
			"dataset_id": client.DatasetID,
		}).Info("tenant: cliente criado")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(client)
	})
}

func ListClients(service tenant.TenantService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clients, err := service.ListClients()
		if err != nil {
			writeTenantError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(clients)
	})
}

func GetClient(service tenant.TenantService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		client, err := service.GetClient(clientID)
		if err != nil {
			writeTenantError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(client)
	})
}

func UpdateClient(service tenant.TenantService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.UpdateClientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		client, err := service.UpdateClient(clientID, &req)
		if err != nil {
			writeTenantError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(client)
	})
}

func DeleteClient(service tenant.TenantService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		log.ForContext(r.Context()).WithField("client_id", clientID).Info("tenant: removendo cliente")

		if err := service.DeleteClient(clientID); err != nil {
			writeTenantError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
