// Package warehouse encapsula o acesso ao BigQuery. A camada de relatórios
// fala com a interface Warehouse, que devolve linhas já normalizadas para
// tipos básicos do Go.
package warehouse

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"
	"github.com/lojalytics/dashboard-api/internal/config"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// Parameter é um parâmetro nomeado de consulta. Predicados IN usam um
// parâmetro por valor, com nomes únicos.
type Parameter struct {
	Name  string
	Value any
}

// Row é uma linha do warehouse com valores normalizados: string, bool,
// int64, float64. Colunas DATE chegam como string yyyy-mm-dd.
type Row map[string]any

type Warehouse interface {
	Query(ctx context.Context, sql string, params []Parameter) ([]Row, error)
}

type Client struct {
	bq       *bigquery.Client
	location string
	timeout  time.Duration
}

func NewClient(ctx context.Context, cfg config.Warehouse, queryTimeout time.Duration) (*Client, error) {
	opts := []option.ClientOption{}
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	bq, err := bigquery.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente do BigQuery: %w", err)
	}

	if queryTimeout <= 0 {
		queryTimeout = 30 * time.Second
	}

	return &Client{
		bq:       bq,
		location: cfg.Location,
		timeout:  queryTimeout,
	}, nil
}

func (c *Client) Close() error {
	return c.bq.Close()
}

// Query executa uma consulta parametrizada com timeout limitado. O contexto
// derivado cancela a consulta e propaga o cancelamento para consultas irmãs
// quando usado dentro de um errgroup.
func (c *Client) Query(ctx context.Context, sql string, params []Parameter) ([]Row, error) {
	queryCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	query := c.bq.Query(sql)
	query.Location = c.location
	query.Parameters = make([]bigquery.QueryParameter, 0, len(params))
	for _, param := range params {
		query.Parameters = append(query.Parameters, bigquery.QueryParameter{
			Name:  param.Name,
			Value: param.Value,
		})
	}

	it, err := query.Read(queryCtx)
	if err != nil {
		logrus.WithError(err).WithField("params", len(params)).Error("Erro ao executar consulta no warehouse")
		return nil, fmt.Errorf("erro ao executar consulta no warehouse: %w", err)
	}

	rows := make([]Row, 0)
	for {
		var raw map[string]bigquery.Value
		err := it.Next(&raw)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("erro ao ler linha do warehouse: %w", err)
		}

		rows = append(rows, normalizeRow(raw))
	}

	return rows, nil
}

func normalizeRow(raw map[string]bigquery.Value) Row {
	row := make(Row, len(raw))
	for column, value := range raw {
		row[column] = normalizeValue(value)
	}
	return row
}

func normalizeValue(value bigquery.Value) any {
	switch v := value.(type) {
	case civil.Date:
		return v.String()
	case civil.DateTime:
		return v.Date.String()
	case time.Time:
		return v.Format(time.DateOnly)
	case *big.Rat:
		f, _ := v.Float64()
		return f
	default:
		return v
	}
}
