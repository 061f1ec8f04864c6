package repository

import (
	"fmt"

	"github.com/lojalytics/dashboard-api/infrastructure/docstore"
	"github.com/lojalytics/dashboard-api/internal/domain"
	"github.com/mitchellh/mapstructure"
)

type ClientRepository interface {
	GetClient(clientID string) (*domain.Client, error)
	ListClients() ([]*domain.Client, error)
	SaveClient(client *domain.Client) error
	DeleteClient(clientID string) error
	DeleteSubcollections(clientID string) error
}

type clientRepository struct {
	store docstore.Store
}

func NewClientRepository(store docstore.Store) ClientRepository {
	return &clientRepository{store: store}
}

func (r *clientRepository) GetClient(clientID string) (*domain.Client, error) {
	doc, err := r.store.GetDocument(clientsCollection, clientID)
	if err != nil || doc == nil {
		return nil, err
	}

	return decodeClient(doc)
}

func (r *clientRepository) ListClients() ([]*domain.Client, error) {
	docs, err := r.store.ListDocuments(clientsCollection)
	if err != nil {
		return nil, err
	}

	clients := make([]*domain.Client, 0, len(docs))
	for _, doc := range docs {
		client, err := decodeClient(doc)
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}

	return clients, nil
}

func (r *clientRepository) SaveClient(client *domain.Client) error {
	return r.store.SetDocument(clientsCollection, client.ID, map[string]any{
		"id":                 client.ID,
		"name":               client.Name,
		"dataset_id":         client.DatasetID,
		"reporting_currency": client.ReportingCurrency,
	})
}

func (r *clientRepository) DeleteClient(clientID string) error {
	return r.store.DeleteDocument(clientsCollection, clientID)
}

// DeleteSubcollections remove em lotes todas as subcoleções do cliente.
// Deve ser chamado antes de DeleteClient para que uma falha no meio da
// cascata nunca deixe o documento pai sem os filhos parcialmente removidos.
func (r *clientRepository) DeleteSubcollections(clientID string) error {
	subcollections := []string{
		websitesPath(clientID),
		targetsPath(clientID),
		annotationsPath(clientID),
		currencyRatesPath(clientID),
	}

	for _, path := range subcollections {
		if _, err := r.store.DeleteCollection(path, 100); err != nil {
			return fmt.Errorf("erro ao remover subcoleção %s: %w", path, err)
		}
	}

	return nil
}

func decodeClient(doc *docstore.Document) (*domain.Client, error) {
	client := &domain.Client{}
	if err := mapstructure.Decode(doc.Data, client); err != nil {
		return nil, fmt.Errorf("erro ao decodificar cliente %s: %w", doc.ID, err)
	}

	client.ID = doc.ID
	client.CreatedAt = doc.CreatedAt
	client.UpdatedAt = doc.UpdatedAt

	return client, nil
}
