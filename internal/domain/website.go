package domain

// Website representa uma loja (storefront) ou um agrupamento virtual de lojas
// de um mesmo cliente. Websites agrupados não possuem StoreID próprio: seus
// dados são a união dos dados dos membros listados em GroupedWebsiteIDs.
type Website struct {
	ID                string   `json:"id" mapstructure:"id"`
	ClientID          string   `json:"client_id" mapstructure:"client_id"`
	Name              string   `json:"name" mapstructure:"name"`
	StoreID           string   `json:"store_id" mapstructure:"store_id"`
	BigQueryWebsiteID string   `json:"bigquery_website_id" mapstructure:"bigquery_website_id"`
	Currency          string   `json:"currency" mapstructure:"currency"`
	IsGrouped         bool     `json:"is_grouped" mapstructure:"is_grouped"`
	GroupedWebsiteIDs []string `json:"grouped_website_ids" mapstructure:"grouped_website_ids"`
}

// WebsiteScope indica o recorte de websites de uma consulta de relatório.
// All cobre todas as lojas do dataset do cliente (sem predicado de website).
type WebsiteScope struct {
	All       bool
	WebsiteID string
}

// allCombinedSentinel é o valor aceito na query string para indicar
// agregação sobre todas as lojas do cliente.
const allCombinedSentinel = "all_combined"

func AllWebsites() WebsiteScope {
	return WebsiteScope{All: true}
}

func WebsiteByID(id string) WebsiteScope {
	return WebsiteScope{WebsiteID: id}
}

// ParseWebsiteScope interpreta o parâmetro website_id da requisição.
// Ausente ou "all_combined" significa "sem filtro de website".
func ParseWebsiteScope(raw string) WebsiteScope {
	if raw == "" || raw == allCombinedSentinel {
		return AllWebsites()
	}
	return WebsiteByID(raw)
}

type CreateWebsiteRequest struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	StoreID           string   `json:"store_id"`
	BigQueryWebsiteID string   `json:"bigquery_website_id"`
	Currency          string   `json:"currency"`
	IsGrouped         bool     `json:"is_grouped"`
	GroupedWebsiteIDs []string `json:"grouped_website_ids"`
}
