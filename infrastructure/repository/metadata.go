package repository

import (
	"fmt"
	"time"

	"github.com/lojalytics/dashboard-api/infrastructure/docstore"
	"github.com/lojalytics/dashboard-api/internal/domain"
	"github.com/mitchellh/mapstructure"
)

type AnnotationRepository interface {
	GetAnnotation(clientID, annotationID string) (*domain.Annotation, error)
	ListAnnotations(clientID string) ([]*domain.Annotation, error)
	SaveAnnotation(annotation *domain.Annotation) error
	MergeAnnotation(clientID, annotationID string, fields map[string]any) error
	DeleteAnnotation(clientID, annotationID string) error
}

type TargetRepository interface {
	GetTarget(clientID, targetID string) (*domain.Target, error)
	ListTargets(clientID string) ([]*domain.Target, error)
	SaveTarget(target *domain.Target) error
	MergeTarget(clientID, targetID string, fields map[string]any) error
	DeleteTarget(clientID, targetID string) error
}

type InviteRepository interface {
	GetInvite(inviteID string) (*domain.Invite, error)
	ListInvites() ([]*domain.Invite, error)
	SaveInvite(invite *domain.Invite) error
	DeleteInvite(inviteID string) error
}

type annotationRepository struct {
	store docstore.Store
}

func NewAnnotationRepository(store docstore.Store) AnnotationRepository {
	return &annotationRepository{store: store}
}

func (r *annotationRepository) GetAnnotation(clientID, annotationID string) (*domain.Annotation, error) {
	doc, err := r.store.GetDocument(annotationsPath(clientID), annotationID)
	if err != nil || doc == nil {
		return nil, err
	}

	return decodeAnnotation(clientID, doc)
}

func (r *annotationRepository) ListAnnotations(clientID string) ([]*domain.Annotation, error) {
	docs, err := r.store.ListDocuments(annotationsPath(clientID))
	if err != nil {
		return nil, err
	}

	annotations := make([]*domain.Annotation, 0, len(docs))
	for _, doc := range docs {
		annotation, err := decodeAnnotation(clientID, doc)
		if err != nil {
			return nil, err
		}
		annotations = append(annotations, annotation)
	}

	return annotations, nil
}

func decodeAnnotation(clientID string, doc *docstore.Document) (*domain.Annotation, error) {
	annotation := &domain.Annotation{}
	if err := mapstructure.Decode(doc.Data, annotation); err != nil {
		return nil, fmt.Errorf("erro ao decodificar anotação %s: %w", doc.ID, err)
	}

	annotation.ID = doc.ID
	annotation.ClientID = clientID
	annotation.CreatedAt = doc.CreatedAt

	return annotation, nil
}

func (r *annotationRepository) SaveAnnotation(annotation *domain.Annotation) error {
	return r.store.SetDocument(annotationsPath(annotation.ClientID), annotation.ID, map[string]any{
		"id":         annotation.ID,
		"client_id":  annotation.ClientID,
		"website_id": annotation.WebsiteID,
		"date":       annotation.Date,
		"title":      annotation.Title,
		"text":       annotation.Text,
		"created_by": annotation.CreatedBy,
	})
}

func (r *annotationRepository) MergeAnnotation(clientID, annotationID string, fields map[string]any) error {
	return r.store.MergeDocument(annotationsPath(clientID), annotationID, fields)
}

func (r *annotationRepository) DeleteAnnotation(clientID, annotationID string) error {
	return r.store.DeleteDocument(annotationsPath(clientID), annotationID)
}

type targetRepository struct {
	store docstore.Store
}

func NewTargetRepository(store docstore.Store) TargetRepository {
	return &targetRepository{store: store}
}

func (r *targetRepository) GetTarget(clientID, targetID string) (*domain.Target, error) {
	doc, err := r.store.GetDocument(targetsPath(clientID), targetID)
	if err != nil || doc == nil {
		return nil, err
	}

	return decodeTarget(clientID, doc)
}

func (r *targetRepository) ListTargets(clientID string) ([]*domain.Target, error) {
	docs, err := r.store.ListDocuments(targetsPath(clientID))
	if err != nil {
		return nil, err
	}

	targets := make([]*domain.Target, 0, len(docs))
	for _, doc := range docs {
		target, err := decodeTarget(clientID, doc)
		if err != nil {
			return nil, err
		}
		targets = append(targets, target)
	}

	return targets, nil
}

func (r *targetRepository) SaveTarget(target *domain.Target) error {
	return r.store.SetDocument(targetsPath(target.ClientID), target.ID, map[string]any{
		"id":         target.ID,
		"client_id":  target.ClientID,
		"website_id": target.WebsiteID,
		"period":     target.Period,
		"metric":     target.Metric,
		"value":      target.Value,
	})
}

func (r *targetRepository) MergeTarget(clientID, targetID string, fields map[string]any) error {
	return r.store.MergeDocument(targetsPath(clientID), targetID, fields)
}

func (r *targetRepository) DeleteTarget(clientID, targetID string) error {
	return r.store.DeleteDocument(targetsPath(clientID), targetID)
}

func decodeTarget(clientID string, doc *docstore.Document) (*domain.Target, error) {
	target := &domain.Target{}
	if err := mapstructure.Decode(doc.Data, target); err != nil {
		return nil, fmt.Errorf("erro ao decodificar meta %s: %w", doc.ID, err)
	}

	target.ID = doc.ID
	target.ClientID = clientID

	return target, nil
}

type inviteRepository struct {
	store docstore.Store
}

func NewInviteRepository(store docstore.Store) InviteRepository {
	return &inviteRepository{store: store}
}

func (r *inviteRepository) GetInvite(inviteID string) (*domain.Invite, error) {
	doc, err := r.store.GetDocument(invitesCollection, inviteID)
	if err != nil || doc == nil {
		return nil, err
	}

	return decodeInvite(doc)
}

func (r *inviteRepository) ListInvites() ([]*domain.Invite, error) {
	docs, err := r.store.ListDocuments(invitesCollection)
	if err != nil {
		return nil, err
	}

	invites := make([]*domain.Invite, 0, len(docs))
	for _, doc := range docs {
		invite, err := decodeInvite(doc)
		if err != nil {
			return nil, err
		}
		invites = append(invites, invite)
	}

	return invites, nil
}

func (r *inviteRepository) SaveInvite(invite *domain.Invite) error {
	return r.store.SetDocument(invitesCollection, invite.ID, map[string]any{
		"id":         invite.ID,
		"email":      invite.Email,
		"role":       invite.Role,
		"client_id":  invite.ClientID,
		"created_by": invite.CreatedBy,
		"accepted":   invite.Accepted,
		"expires_at": invite.ExpiresAt.Format(time.RFC3339),
	})
}

func (r *inviteRepository) DeleteInvite(inviteID string) error {
	return r.store.DeleteDocument(invitesCollection, inviteID)
}

func decodeInvite(doc *docstore.Document) (*domain.Invite, error) {
	invite := &domain.Invite{}
	if err := mapstructure.Decode(doc.Data, invite); err != nil {
		return nil, fmt.Errorf("erro ao decodificar convite %s: %w", doc.ID, err)
	}

	invite.ID = doc.ID
	invite.CreatedAt = doc.CreatedAt

	if raw, ok := doc.Data["expires_at"].(string); ok {
		if expiresAt, err := time.Parse(time.RFC3339, raw); err == nil {
			invite.ExpiresAt = expiresAt
		}
	}

	return invite, nil
}
