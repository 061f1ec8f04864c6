// Package exchange consulta a API externa de taxas de câmbio usada pelo
// job diário de sincronização de taxas.
package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/lojalytics/dashboard-api/internal/config"
)

type Client interface {
	LatestRates(base string, symbols []string) (map[string]float64, error)
}

type ExchangeClient struct {
	httpClient *http.Client
	config     config.RatesSync
}

func NewClient(cfg *config.Config) Client {
	return &ExchangeClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg.RatesSync,
	}
}

type latestRatesResponse struct {
	Success bool               `json:"success"`
	Base    string             `json:"base"`
	Date    string             `json:"date"`
	Rates   map[string]float64 `json:"rates"`
}

// LatestRates retorna as taxas do dia na base informada, uma entrada por
// símbolo solicitado. Símbolos não retornados pela API ficam ausentes no mapa.
func (c *ExchangeClient) LatestRates(base string, symbols []string) (map[string]float64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/latest")

	// Adicionar parâmetros de consulta.
	query := endpoint.Query()
	query.Set("access_key", c.config.APIKey)
	query.Set("base", base)
	query.Set("symbols", strings.Join(symbols, ","))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var response latestRatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	if !response.Success {
		return nil, fmt.Errorf("API de câmbio retornou falha para base %s", base)
	}

	return response.Rates, nil
}
