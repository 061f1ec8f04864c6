package reporting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lojalytics/dashboard-api/infrastructure/warehouse"
	"github.com/sirupsen/logrus"
)

// PostProcessSpec descreve o pós-processamento aplicado às linhas cruas do
// warehouse: quais campos monetários converter para a moeda de relatório e
// como reagrupar as linhas depois da conversão.
//
// A consulta crua sempre agrupa por loja, porque a conversão de moeda é por
// (loja, data). Só depois de convertido é que o reagrupamento colapsa as
// lojas na série final. Somar antes de converter produziria totais errados
// para clientes com lojas em moedas diferentes.
type PostProcessSpec struct {
	MonetaryFields []string
	StoreField     string
	DateField      string
	GroupBy        []string
	SumFields      []string
	MaxFields      []string
}

// RateIndex indexa taxas de câmbio por (loja, data)
type RateIndex map[string]float64

func rateKey(storeID, date string) string {
	return storeID + "|" + date
}

// Rate retorna a taxa para a loja e data, ou o multiplicador neutro 1.0
// quando não há taxa cadastrada. Ausência de taxa nunca derruba o relatório.
func (idx RateIndex) Rate(storeID, date string) float64 {
	if rate, ok := idx[rateKey(storeID, date)]; ok && rate > 0 {
		return rate
	}
	return 1.0
}

// loadRateIndex monta o índice de conversão do período. Falhas na leitura
// das taxas são absorvidas: o relatório segue com o multiplicador neutro.
func (s *Service) loadRateIndex(clientID string, storeIDs []string, startDate, endDate time.Time) RateIndex {
	index := make(RateIndex)

	rates, err := s.rateRepo.GetRatesByPeriod(clientID, storeIDs, startDate, endDate)
	if err != nil {
		logrus.WithError(err).WithField("client_id", clientID).
			Warn("Erro ao carregar taxas de câmbio; usando multiplicador neutro")
		return index
	}

	for _, rate := range rates {
		index[rateKey(rate.StoreID, rate.Date)] = rate.Rate
	}

	return index
}

// websitePredicate monta o predicado de website da consulta. Um store_id
// vira igualdade; vários viram IN com um parâmetro nomeado único por valor,
// como exige o binding do warehouse. A lista nunca pode chegar aqui vazia:
// escopo vazio é curto-circuitado antes de montar a consulta.
func websitePredicate(column string, storeIDs []string) (string, []warehouse.Parameter) {
	if len(storeIDs) == 1 {
		return fmt.Sprintf("%s = @storeId", column), []warehouse.Parameter{
			{Name: "storeId", Value: storeIDs[0]},
		}
	}

	placeholders := make([]string, 0, len(storeIDs))
	params := make([]warehouse.Parameter, 0, len(storeIDs))
	for i, storeID := range storeIDs {
		name := fmt.Sprintf("storeId%d", i)
		placeholders = append(placeholders, "@"+name)
		params = append(params, warehouse.Parameter{Name: name, Value: storeID})
	}

	return fmt.Sprintf("%s IN (%s)", column, strings.Join(placeholders, ", ")), params
}

// convertCurrency aplica a taxa de câmbio de (loja, data) da linha sobre
// cada campo monetário, substituindo o valor cru pelo convertido
func convertCurrency(rows []warehouse.Row, rates RateIndex, spec PostProcessSpec) {
	if len(spec.MonetaryFields) == 0 {
		return
	}

	for _, row := range rows {
		storeID := rowString(row, spec.StoreField)
		date := rowString(row, spec.DateField)
		rate := rates.Rate(storeID, date)

		for _, field := range spec.MonetaryFields {
			row[field] = rowFloat(row, field) * rate
		}
	}
}

// regroup colapsa as linhas pelo conjunto de colunas de GroupBy, somando
// SumFields e tomando o máximo de MaxFields. A ordem de primeira ocorrência
// das chaves é preservada para resultados determinísticos.
func regroup(rows []warehouse.Row, spec PostProcessSpec) []warehouse.Row {
	if len(spec.GroupBy) == 0 {
		return rows
	}

	grouped := make(map[string]warehouse.Row)
	order := make([]string, 0)

	for _, row := range rows {
		keyParts := make([]string, 0, len(spec.GroupBy))
		for _, column := range spec.GroupBy {
			keyParts = append(keyParts, rowString(row, column))
		}
		key := strings.Join(keyParts, "|")

		existing, ok := grouped[key]
		if !ok {
			merged := make(warehouse.Row, len(spec.GroupBy)+len(spec.SumFields)+len(spec.MaxFields))
			for _, column := range spec.GroupBy {
				merged[column] = row[column]
			}
			for _, field := range spec.SumFields {
				merged[field] = rowFloat(row, field)
			}
			for _, field := range spec.MaxFields {
				merged[field] = rowFloat(row, field)
			}
			grouped[key] = merged
			order = append(order, key)
			continue
		}

		for _, field := range spec.SumFields {
			existing[field] = rowFloat(existing, field) + rowFloat(row, field)
		}
		for _, field := range spec.MaxFields {
			if value := rowFloat(row, field); value > rowFloat(existing, field) {
				existing[field] = value
			}
		}
	}

	result := make([]warehouse.Row, 0, len(order))
	for _, key := range order {
		result = append(result, grouped[key])
	}

	return result
}

// runQuery executa a consulta e aplica o pós-processamento na ordem
// obrigatória: conversão de moeda por linha antes de qualquer reagregação.
// Falha de consulta é fatal para o relatório; falta de taxa não é.
func (s *Service) runQuery(
	ctx context.Context,
	sql string,
	params []warehouse.Parameter,
	rates RateIndex,
	spec PostProcessSpec,
) ([]warehouse.Row, error) {
	rows, err := s.warehouse.Query(ctx, sql, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}

	convertCurrency(rows, rates, spec)

	return regroup(rows, spec), nil
}
