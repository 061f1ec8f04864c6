package repository

import (
	"fmt"

	"github.com/lojalytics/dashboard-api/infrastructure/docstore"
	"github.com/lojalytics/dashboard-api/internal/domain"
	"github.com/mitchellh/mapstructure"
)

type WebsiteRepository interface {
	GetWebsite(clientID, websiteID string) (*domain.Website, error)
	ListWebsites(clientID string) ([]*domain.Website, error)
	SaveWebsite(website *domain.Website) error
	DeleteWebsite(clientID, websiteID string) error
}

type websiteRepository struct {
	store docstore.Store
}

func NewWebsiteRepository(store docstore.Store) WebsiteRepository {
	return &websiteRepository{store: store}
}

// GetWebsite retorna nil quando o website não existe para o cliente
func (r *websiteRepository) GetWebsite(clientID, websiteID string) (*domain.Website, error) {
	doc, err := r.store.GetDocument(websitesPath(clientID), websiteID)
	if err != nil || doc == nil {
		return nil, err
	}

	return decodeWebsite(clientID, doc)
}

func (r *websiteRepository) ListWebsites(clientID string) ([]*domain.Website, error) {
	docs, err := r.store.ListDocuments(websitesPath(clientID))
	if err != nil {
		return nil, err
	}

	websites := make([]*domain.Website, 0, len(docs))
	for _, doc := range docs {
		website, err := decodeWebsite(clientID, doc)
		if err != nil {
			return nil, err
		}
		websites = append(websites, website)
	}

	return websites, nil
}

func (r *websiteRepository) SaveWebsite(website *domain.Website) error {
	return r.store.SetDocument(websitesPath(website.ClientID), website.ID, map[string]any{
		"id":                  website.ID,
		"client_id":           website.ClientID,
		"name":                website.Name,
		"store_id":            website.StoreID,
		"bigquery_website_id": website.BigQueryWebsiteID,
		"currency":            website.Currency,
		"is_grouped":          website.IsGrouped,
		"grouped_website_ids": website.GroupedWebsiteIDs,
	})
}

func (r *websiteRepository) DeleteWebsite(clientID, websiteID string) error {
	return r.store.DeleteDocument(websitesPath(clientID), websiteID)
}

func decodeWebsite(clientID string, doc *docstore.Document) (*domain.Website, error) {
	website := &domain.Website{}
	if err := mapstructure.Decode(doc.Data, website); err != nil {
		return nil, fmt.Errorf("erro ao decodificar website %s: %w", doc.ID, err)
	}

	website.ID = doc.ID
	website.ClientID = clientID

	return website, nil
}
