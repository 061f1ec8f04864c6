package repository

import (
	"fmt"
	"time"

	"github.com/lojalytics/dashboard-api/infrastructure/docstore"
	"github.com/lojalytics/dashboard-api/internal/domain"
	"github.com/mitchellh/mapstructure"
)

// CurrencyRateRepository acessa as taxas de câmbio por (loja, data) do
// cliente. Os documentos usam o id "{storeId}_{yyyy-mm-dd}".
type CurrencyRateRepository interface {
	GetRatesByPeriod(clientID string, storeIDs []string, startDate, endDate time.Time) ([]*domain.CurrencyRate, error)
	SaveRate(clientID string, rate *domain.CurrencyRate) error
}

type currencyRateRepository struct {
	store docstore.Store
}

func NewCurrencyRateRepository(store docstore.Store) CurrencyRateRepository {
	return &currencyRateRepository{store: store}
}

// GetRatesByPeriod lista as taxas do cliente e filtra pelo recorte de lojas
// e de datas. Taxas ausentes não são erro: o chamador assume 1.0.
func (r *currencyRateRepository) GetRatesByPeriod(
	clientID string,
	storeIDs []string,
	startDate, endDate time.Time,
) ([]*domain.CurrencyRate, error) {
	docs, err := r.store.ListDocuments(currencyRatesPath(clientID))
	if err != nil {
		return nil, err
	}

	wantedStores := make(map[string]bool, len(storeIDs))
	for _, storeID := range storeIDs {
		wantedStores[storeID] = true
	}

	rates := make([]*domain.CurrencyRate, 0, len(docs))
	for _, doc := range docs {
		rate := &domain.CurrencyRate{}
		if err := mapstructure.Decode(doc.Data, rate); err != nil {
			return nil, fmt.Errorf("erro ao decodificar taxa de câmbio %s: %w", doc.ID, err)
		}

		if len(wantedStores) > 0 && !wantedStores[rate.StoreID] {
			continue
		}

		date, err := time.Parse(time.DateOnly, rate.Date)
		if err != nil {
			continue
		}

		if date.Before(startDate) || date.After(endDate) {
			continue
		}

		rates = append(rates, rate)
	}

	return rates, nil
}

func (r *currencyRateRepository) SaveRate(clientID string, rate *domain.CurrencyRate) error {
	docID := fmt.Sprintf("%s_%s", rate.StoreID, rate.Date)

	return r.store.SetDocument(currencyRatesPath(clientID), docID, map[string]any{
		"store_id": rate.StoreID,
		"date":     rate.Date,
		"rate":     rate.Rate,
	})
}
