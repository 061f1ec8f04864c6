package domain

import "time"

// Client representa um tenant da plataforma. Cada cliente possui seu próprio
// dataset no warehouse e suas subcoleções de websites, metas e anotações.
type Client struct {
	ID                string    `json:"id" mapstructure:"id"`
	Name              string    `json:"name" mapstructure:"name"`
	DatasetID         string    `json:"dataset_id" mapstructure:"dataset_id"`
	ReportingCurrency string    `json:"reporting_currency" mapstructure:"reporting_currency"`
	CreatedAt         time.Time `json:"created_at" mapstructure:"-"`
	UpdatedAt         time.Time `json:"updated_at" mapstructure:"-"`
}

type CreateClientRequest struct {
	Name              string `json:"name"`
	DatasetID         string `json:"dataset_id"`
	ReportingCurrency string `json:"reporting_currency"`
}

type UpdateClientRequest struct {
	Name              *string `json:"name"`
	DatasetID         *string `json:"dataset_id"`
	ReportingCurrency *string `json:"reporting_currency"`
}
