package domain

import "time"

// Annotation é uma marcação pontual feita por um usuário sobre uma data do
// dashboard (campanha lançada, troca de tema da loja, etc.)
type Annotation struct {
	ID        string    `json:"id" mapstructure:"id"`
	ClientID  string    `json:"client_id" mapstructure:"client_id"`
	WebsiteID string    `json:"website_id" mapstructure:"website_id"`
	Date      string    `json:"date" mapstructure:"date"`
	Title     string    `json:"title" mapstructure:"title"`
	Text      string    `json:"text" mapstructure:"text"`
	CreatedBy string    `json:"created_by" mapstructure:"created_by"`
	CreatedAt time.Time `json:"created_at" mapstructure:"-"`
}

type UpdateAnnotationRequest struct {
	Date  *string `json:"date"`
	Title *string `json:"title"`
	Text  *string `json:"text"`
}

// Target é uma meta mensal de uma métrica para um website do cliente
type Target struct {
	ID        string  `json:"id" mapstructure:"id"`
	ClientID  string  `json:"client_id" mapstructure:"client_id"`
	WebsiteID string  `json:"website_id" mapstructure:"website_id"`
	Period    string  `json:"period" mapstructure:"period"` // formato mm-yyyy
	Metric    string  `json:"metric" mapstructure:"metric"`
	Value     float64 `json:"value" mapstructure:"value"`
}

type UpdateTargetRequest struct {
	Period *string  `json:"period"`
	Metric *string  `json:"metric"`
	Value  *float64 `json:"value"`
}

// Invite é um convite pendente para um novo usuário do tenant
type Invite struct {
	ID        string    `json:"id" mapstructure:"id"`
	Email     string    `json:"email" mapstructure:"email"`
	Role      string    `json:"role" mapstructure:"role"`
	ClientID  string    `json:"client_id" mapstructure:"client_id"`
	CreatedBy string    `json:"created_by" mapstructure:"created_by"`
	Accepted  bool      `json:"accepted" mapstructure:"accepted"`
	ExpiresAt time.Time `json:"expires_at" mapstructure:"-"`
	CreatedAt time.Time `json:"created_at" mapstructure:"-"`
}

// CurrencyRate é a taxa de conversão de uma loja para a moeda de relatório
// do cliente em uma data específica
type CurrencyRate struct {
	StoreID string  `json:"store_id" mapstructure:"store_id"`
	Date    string  `json:"date" mapstructure:"date"`
	Rate    float64 `json:"rate" mapstructure:"rate"`
}
