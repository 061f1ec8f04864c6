package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/lojalytics/dashboard-api/internal/domain"
	"github.com/lojalytics/dashboard-api/internal/usecases/tenant"
	"github.com/lojalytics/dashboard-api/pkg/apiErrors"
	"github.com/lojalytics/dashboard-api/pkg/middleware"
)

func principalFromContext(w http.ResponseWriter, r *http.Request) (domain.Principal, bool) {
	userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return domain.Principal{}, false
	}
	return userClaims.Principal(), true
}

func CreateAnnotation(service tenant.TenantService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if !requireTenantAccess(w, r, clientID) {
			return
		}

		principal, ok := principalFromContext(w, r)
		if !ok {
			return
		}

		var annotation domain.Annotation
		if err := json.NewDecoder(r.Body).Decode(&annotation); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		annotation.ClientID = clientID
		annotation.CreatedBy = principal.UID

		created, err := service.CreateAnnotation(&annotation)
		if err != nil {
			writeTenantError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	})
}

func ListAnnotations(service tenant.TenantService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if !requireTenantAccess(w, r, clientID) {
			return
		}

		annotations, err := service.ListAnnotations(clientID)
		if err != nil {
			writeTenantError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(annotations)
	})
}

func UpdateAnnotation(service tenant.TenantService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		clientID := params.ByName("id")
		annotationID := params.ByName("annotation_id")
		if !requireTenantAccess(w, r, clientID) {
			return
		}

		var req domain.UpdateAnnotationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := service.UpdateAnnotation(clientID, annotationID, &req); err != nil {
			writeTenantError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
	})
}

func DeleteAnnotation(service tenant.TenantService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		clientID := params.ByName("id")
		annotationID := params.ByName("annotation_id")
		if !requireTenantAccess(w, r, clientID) {
			return
		}

		principal, ok := principalFromContext(w, r)
		if !ok {
			return
		}

		if err := service.DeleteAnnotation(principal, clientID, annotationID); err != nil {
			writeTenantError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func CreateTarget(service tenant.TenantService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if !requireTenantAccess(w, r, clientID) {
			return
		}

		var target domain.Target
		if err := json.NewDecoder(r.Body).Decode(&target); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		target.ClientID = clientID

		created, err := service.CreateTarget(&target)
		if err != nil {
			writeTenantError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	})
}

func ListTargets(service tenant.TenantService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if !requireTenantAccess(w, r, clientID) {
			return
		}

		targets, err := service.ListTargets(clientID)
		if err != nil {
			writeTenantError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(targets)
	})
}

func UpdateTarget(service tenant.TenantService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		clientID := params.ByName("id")
		targetID := params.ByName("target_id")
		if !requireTenantAccess(w, r, clientID) {
			return
		}

		var req domain.UpdateTargetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := service.UpdateTarget(clientID, targetID, &req); err != nil {
			writeTenantError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
	})
}

func DeleteTarget(service tenant.TenantService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		clientID := params.ByName("id")
		targetID := params.ByName("target_id")
		if !requireTenantAccess(w, r, clientID) {
			return
		}

		if err := service.DeleteTarget(clientID, targetID); err != nil {
			writeTenantError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func CreateInvite(service tenant.TenantService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromContext(w, r)
		if !ok {
			return
		}

		var invite domain.Invite
		if err := json.NewDecoder(r.Body).Decode(&invite); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		invite.CreatedBy = principal.UID

		created, err := service.CreateInvite(&invite)
		if err != nil {
			writeTenantError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	})
}

func ListInvites(service tenant.TenantService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		invites, err := service.ListInvites()
		if err != nil {
			writeTenantError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(invites)
	})
}

// AcceptInvite é acessível sem autenticação; o convite em si é a credencial
func AcceptInvite(service tenant.TenantService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inviteID := httprouter.ParamsFromContext(r.Context()).ByName("invite_id")

		invite, err := service.AcceptInvite(inviteID)
		if err != nil {
			writeTenantError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(invite)
	})
}

func DeleteInvite(service tenant.TenantService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inviteID := httprouter.ParamsFromContext(r.Context()).ByName("invite_id")

		principal, ok := principalFromContext(w, r)
		if !ok {
			return
		}

		if err := service.DeleteInvite(principal, inviteID); err != nil {
			writeTenantError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
