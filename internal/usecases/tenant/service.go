// Package tenant gerencia o ciclo de vida dos metadados dos clientes:
// clientes, websites (incluindo agrupamentos), anotações, metas e convites.
package tenant

import (
	"fmt"
	"time"

	"github.com/lojalytics/dashboard-api/infrastructure/repository"
	"github.com/lojalytics/dashboard-api/internal/domain"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"
)

const (
	idLength   = 8
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	inviteTTL = 7 * 24 * time.Hour
)

type TenantService interface {
	CreateClient(req *domain.CreateClientRequest) (*domain.Client, error)
	GetClient(clientID string) (*domain.Client, error)
	ListClients() ([]*domain.Client, error)
	UpdateClient(clientID string, req *domain.UpdateClientRequest) (*domain.Client, error)
	DeleteClient(clientID string) error

	CreateWebsite(clientID string, req *domain.CreateWebsiteRequest) (*domain.Website, error)
	UpdateWebsite(clientID, websiteID string, req *domain.CreateWebsiteRequest) (*domain.Website, error)
	ListWebsites(clientID string) ([]*domain.Website, error)
	DeleteWebsite(clientID, websiteID string) error

	CreateAnnotation(annotation *domain.Annotation) (*domain.Annotation, error)
	ListAnnotations(clientID string) ([]*domain.Annotation, error)
	UpdateAnnotation(clientID, annotationID string, req *domain.UpdateAnnotationRequest) error
	DeleteAnnotation(principal domain.Principal, clientID, annotationID string) error

	CreateTarget(target *domain.Target) (*domain.Target, error)
	ListTargets(clientID string) ([]*domain.Target, error)
	UpdateTarget(clientID, targetID string, req *domain.UpdateTargetRequest) error
	DeleteTarget(clientID, targetID string) error

	CreateInvite(invite *domain.Invite) (*domain.Invite, error)
	ListInvites() ([]*domain.Invite, error)
	AcceptInvite(inviteID string) (*domain.Invite, error)
	DeleteInvite(principal domain.Principal, inviteID string) error
}

type Service struct {
	clientRepo     repository.ClientRepository
	websiteRepo    repository.WebsiteRepository
	annotationRepo repository.AnnotationRepository
	targetRepo     repository.TargetRepository
	inviteRepo     repository.InviteRepository
}

func NewService(
	clientRepo repository.ClientRepository,
	websiteRepo repository.WebsiteRepository,
	annotationRepo repository.AnnotationRepository,
	targetRepo repository.TargetRepository,
	inviteRepo repository.InviteRepository,
) TenantService {
	return &Service{
		clientRepo:     clientRepo,
		websiteRepo:    websiteRepo,
		annotationRepo: annotationRepo,
		targetRepo:     targetRepo,
		inviteRepo:     inviteRepo,
	}
}

func generateID() string {
	id, _ := gonanoid.Generate(characters, idLength)
	return id
}

func (s *Service) CreateClient(req *domain.CreateClientRequest) (*domain.Client, error) {
	if req.Name == "" || req.DatasetID == "" {
		return nil, fmt.Errorf("%w: nome e dataset são obrigatórios", ErrMissingRequiredData)
	}

	currency := req.ReportingCurrency
	if currency == "" {
		currency = "BRL"
	}

	client := &domain.Client{
		ID:                generateID(),
		Name:              req.Name,
		DatasetID:         req.DatasetID,
		ReportingCurrency: currency,
	}

	if err := s.clientRepo.SaveClient(client); err != nil {
		return nil, err
	}

	return client, nil
}

func (s *Service) GetClient(clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.GetClient(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}
	return client, nil
}

func (s *Service) ListClients() ([]*domain.Client, error) {
	return s.clientRepo.ListClients()
}

func (s *Service) UpdateClient(clientID string, req *domain.UpdateClientRequest) (*domain.Client, error) {
	client, err := s.GetClient(clientID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.DatasetID != nil {
		client.DatasetID = *req.DatasetID
	}
	if req.ReportingCurrency != nil {
		client.ReportingCurrency = *req.ReportingCurrency
	}

	if err := s.clientRepo.SaveClient(client); err != nil {
		return nil, err
	}

	return client, nil
}

// DeleteClient remove o cliente em cascata: primeiro as subcoleções em
// lotes, depois o documento do cliente. Uma falha no meio da cascata deixa o
// pai intacto, nunca filhos órfãos.
func (s *Service) DeleteClient(clientID string) error {
	client, err := s.clientRepo.GetClient(clientID)
	if err != nil {
		return err
	}
	if client == nil {
		return ErrClientNotFound
	}

	if err := s.clientRepo.DeleteSubcollections(clientID); err != nil {
		return fmt.Errorf("erro na exclusão em cascata do cliente %s: %w", clientID, err)
	}

	if err := s.clientRepo.DeleteClient(clientID); err != nil {
		return err
	}

	logrus.WithField("client_id", clientID).Info("Cliente removido com todas as subcoleções")
	return nil
}

func (s *Service) CreateWebsite(clientID string, req *domain.CreateWebsiteRequest) (*domain.Website, error) {
	if _, err := s.GetClient(clientID); err != nil {
		return nil, err
	}

	if req.Name == "" {
		return nil, fmt.Errorf("%w: nome do website é obrigatório", ErrMissingRequiredData)
	}

	websiteID := req.ID
	if websiteID == "" {
		websiteID = generateID()
	}

	existing, err := s.websiteRepo.GetWebsite(clientID, websiteID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrWebsiteAlreadyExists
	}

	website := &domain.Website{
		ID:                websiteID,
		ClientID:          clientID,
		Name:              req.Name,
		StoreID:           req.StoreID,
		BigQueryWebsiteID: req.BigQueryWebsiteID,
		Currency:          req.Currency,
		IsGrouped:         req.IsGrouped,
		GroupedWebsiteIDs: req.GroupedWebsiteIDs,
	}

	if website.IsGrouped {
		website.StoreID = ""
		if err := s.validateGroup(clientID, website.ID, website.GroupedWebsiteIDs); err != nil {
			return nil, err
		}
	}

	if err := s.websiteRepo.SaveWebsite(website); err != nil {
		return nil, err
	}

	return website, nil
}

func (s *Service) UpdateWebsite(clientID, websiteID string, req *domain.CreateWebsiteRequest) (*domain.Website, error) {
	website, err := s.websiteRepo.GetWebsite(clientID, websiteID)
	if err != nil {
		return nil, err
	}
	if website == nil {
		return nil, ErrWebsiteNotFound
	}

	if req.Name != "" {
		website.Name = req.Name
	}
	website.StoreID = req.StoreID
	website.BigQueryWebsiteID = req.BigQueryWebsiteID
	if req.Currency != "" {
		website.Currency = req.Currency
	}
	website.IsGrouped = req.IsGrouped
	website.GroupedWebsiteIDs = req.GroupedWebsiteIDs

	if website.IsGrouped {
		website.StoreID = ""
		if err := s.validateGroup(clientID, website.ID, website.GroupedWebsiteIDs); err != nil {
			return nil, err
		}
	} else {
		website.GroupedWebsiteIDs = nil
	}

	if err := s.websiteRepo.SaveWebsite(website); err != nil {
		return nil, err
	}

	return website, nil
}

// validateGroup aplica as regras de escrita de agrupamentos: pelo menos dois
// membros, todos existentes no mesmo cliente e nenhum deles um agrupamento.
// Aninhamento é proibido na escrita; o resolver ainda ignora membros sem
// store_id defensivamente na leitura.
func (s *Service) validateGroup(clientID, groupID string, memberIDs []string) error {
	if len(memberIDs) < 2 {
		return ErrGroupTooSmall
	}

	for _, memberID := range memberIDs {
		if memberID == groupID {
			return ErrGroupSelfReference
		}

		member, err := s.websiteRepo.GetWebsite(clientID, memberID)
		if err != nil {
			return err
		}
		if member == nil {
			return fmt.Errorf("%w: %s", ErrGroupMemberNotFound, memberID)
		}
		if member.IsGrouped {
			return fmt.Errorf("%w: %s", ErrNestedGroup, memberID)
		}
	}

	return nil
}

func (s *Service) ListWebsites(clientID string) ([]*domain.Website, error) {
	return s.websiteRepo.ListWebsites(clientID)
}

func (s *Service) DeleteWebsite(clientID, websiteID string) error {
	website, err := s.websiteRepo.GetWebsite(clientID, websiteID)
	if err != nil {
		return err
	}
	if website == nil {
		return ErrWebsiteNotFound
	}

	return s.websiteRepo.DeleteWebsite(clientID, websiteID)
}

func (s *Service) CreateAnnotation(annotation *domain.Annotation) (*domain.Annotation, error) {
	if annotation.ClientID == "" || annotation.Date == "" || annotation.Title == "" {
		return nil, fmt.Errorf("%w: cliente, data e título são obrigatórios", ErrMissingRequiredData)
	}

	annotation.ID = generateID()
	if err := s.annotationRepo.SaveAnnotation(annotation); err != nil {
		return nil, err
	}

	return annotation, nil
}

func (s *Service) ListAnnotations(clientID string) ([]*domain.Annotation, error) {
	return s.annotationRepo.ListAnnotations(clientID)
}

func (s *Service) UpdateAnnotation(clientID, annotationID string, req *domain.UpdateAnnotationRequest) error {
	fields := map[string]any{}
	if req.Date != nil {
		fields["date"] = *req.Date
	}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Text != nil {
		fields["text"] = *req.Text
	}

	if len(fields) == 0 {
		return fmt.Errorf("%w: nenhum campo para atualizar", ErrMissingRequiredData)
	}

	return s.annotationRepo.MergeAnnotation(clientID, annotationID, fields)
}

// DeleteAnnotation permite a remoção pelo autor da anotação ou por um
// administrador
func (s *Service) DeleteAnnotation(principal domain.Principal, clientID, annotationID string) error {
	annotation, err := s.annotationRepo.GetAnnotation(clientID, annotationID)
	if err != nil {
		return err
	}
	if annotation == nil {
		return ErrDocumentNotFound
	}

	if !principal.IsAdmin() && annotation.CreatedBy != principal.UID {
		return ErrNotOwnerNorAdmin
	}

	return s.annotationRepo.DeleteAnnotation(clientID, annotationID)
}

func (s *Service) CreateTarget(target *domain.Target) (*domain.Target, error) {
	if target.ClientID == "" || target.Period == "" || target.Metric == "" {
		return nil, fmt.Errorf("%w: cliente, período e métrica são obrigatórios", ErrMissingRequiredData)
	}

	target.ID = generateID()
	if err := s.targetRepo.SaveTarget(target); err != nil {
		return nil, err
	}

	return target, nil
}

func (s *Service) ListTargets(clientID string) ([]*domain.Target, error) {
	return s.targetRepo.ListTargets(clientID)
}

func (s *Service) UpdateTarget(clientID, targetID string, req *domain.UpdateTargetRequest) error {
	fields := map[string]any{}
	if req.Period != nil {
		fields["period"] = *req.Period
	}
	if req.Metric != nil {
		fields["metric"] = *req.Metric
	}
	if req.Value != nil {
		fields["value"] = *req.Value
	}

	if len(fields) == 0 {
		return fmt.Errorf("%w: nenhum campo para atualizar", ErrMissingRequiredData)
	}

	return s.targetRepo.MergeTarget(clientID, targetID, fields)
}

func (s *Service) DeleteTarget(clientID, targetID string) error {
	target, err := s.targetRepo.GetTarget(clientID, targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrDocumentNotFound
	}

	return s.targetRepo.DeleteTarget(clientID, targetID)
}

func (s *Service) CreateInvite(invite *domain.Invite) (*domain.Invite, error) {
	if invite.Email == "" || invite.Role == "" {
		return nil, fmt.Errorf("%w: email e role são obrigatórios", ErrMissingRequiredData)
	}

	if invite.Role == domain.RoleClient && invite.ClientID == "" {
		return nil, fmt.Errorf("%w: convite de cliente exige client_id", ErrMissingRequiredData)
	}

	invite.ID = generateID()
	invite.Accepted = false
	invite.ExpiresAt = time.Now().Add(inviteTTL)

	if err := s.inviteRepo.SaveInvite(invite); err != nil {
		return nil, err
	}

	return invite, nil
}

func (s *Service) ListInvites() ([]*domain.Invite, error) {
	return s.inviteRepo.ListInvites()
}

func (s *Service) AcceptInvite(inviteID string) (*domain.Invite, error) {
	invite, err := s.inviteRepo.GetInvite(inviteID)
	if err != nil {
		return nil, err
	}
	if invite == nil {
		return nil, ErrDocumentNotFound
	}

	if invite.Accepted {
		return nil, ErrInviteAlreadyUsed
	}

	if time.Now().After(invite.ExpiresAt) {
		return nil, ErrInviteExpired
	}

	invite.Accepted = true
	if err := s.inviteRepo.SaveInvite(invite); err != nil {
		return nil, err
	}

	return invite, nil
}

func (s *Service) DeleteInvite(principal domain.Principal, inviteID string) error {
	invite, err := s.inviteRepo.GetInvite(inviteID)
	if err != nil {
		return err
	}
	if invite == nil {
		return ErrDocumentNotFound
	}

	if !principal.IsAdmin() && invite.CreatedBy != principal.UID {
		return ErrNotOwnerNorAdmin
	}

	return s.inviteRepo.DeleteInvite(inviteID)
}
