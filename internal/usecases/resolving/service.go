// Package resolving traduz o website lógico de uma consulta (possivelmente
// um agrupamento virtual de lojas) para o conjunto de store_ids concretos
// usados como chave de partição no warehouse.
package resolving

import (
	"fmt"

	"github.com/lojalytics/dashboard-api/infrastructure/repository"
	"github.com/lojalytics/dashboard-api/internal/config"
	"github.com/lojalytics/dashboard-api/internal/domain"
	"github.com/sirupsen/logrus"
)

type Resolver interface {
	// Resolve expande o escopo de websites em store_ids. Quando o escopo é
	// "todas as lojas", retorna filtered=false e nenhum store_id: o relatório
	// não deve emitir predicado de website. Um escopo específico que não
	// resolve nenhuma loja retorna filtered=true com a lista vazia, e o
	// relatório deve devolver um resultado vazio sem consultar o warehouse.
	Resolve(clientID string, scope domain.WebsiteScope) (storeIDs []string, filtered bool, err error)
}

type Service struct {
	websiteRepo         repository.WebsiteRepository
	legacyStoreFallback bool
}

func NewService(websiteRepo repository.WebsiteRepository, cfg *config.Config) Resolver {
	return &Service{
		websiteRepo:         websiteRepo,
		legacyStoreFallback: cfg.Reporting.LegacyStoreFallback,
	}
}

func (s *Service) Resolve(clientID string, scope domain.WebsiteScope) ([]string, bool, error) {
	if scope.All {
		return nil, false, nil
	}

	website, err := s.websiteRepo.GetWebsite(clientID, scope.WebsiteID)
	if err != nil {
		return nil, true, fmt.Errorf("erro ao buscar website %s do cliente %s: %w", scope.WebsiteID, clientID, err)
	}

	if website == nil {
		// Modo de compatibilidade: instalações antigas consultavam relatórios
		// passando o próprio store_id no lugar do website_id. O fallback é
		// opt-in porque mascara websites mal configurados.
		if s.legacyStoreFallback {
			logrus.WithFields(logrus.Fields{
				"client_id":  clientID,
				"website_id": scope.WebsiteID,
			}).Warn("Website não encontrado; usando o identificador como store_id (modo de compatibilidade)")
			return []string{scope.WebsiteID}, true, nil
		}

		logrus.WithFields(logrus.Fields{
			"client_id":  clientID,
			"website_id": scope.WebsiteID,
		}).Warn("Website não encontrado para o cliente; relatório retornará vazio")
		return []string{}, true, nil
	}

	if !website.IsGrouped {
		if website.StoreID == "" {
			logrus.WithFields(logrus.Fields{
				"client_id":  clientID,
				"website_id": website.ID,
			}).Warn("Website sem store_id configurado; relatório retornará vazio")
			return []string{}, true, nil
		}
		return []string{website.StoreID}, true, nil
	}

	return s.resolveGroup(clientID, website)
}

// resolveGroup coleta os store_ids dos membros do agrupamento na ordem em que
// estão armazenados. Membros ausentes ou sem store_id são pulados com aviso,
// nunca derrubam o relatório inteiro.
func (s *Service) resolveGroup(clientID string, group *domain.Website) ([]string, bool, error) {
	storeIDs := make([]string, 0, len(group.GroupedWebsiteIDs))

	for _, memberID := range group.GroupedWebsiteIDs {
		member, err := s.websiteRepo.GetWebsite(clientID, memberID)
		if err != nil {
			return nil, true, fmt.Errorf("erro ao buscar membro %s do agrupamento %s: %w", memberID, group.ID, err)
		}

		if member == nil {
			logrus.WithFields(logrus.Fields{
				"client_id":  clientID,
				"group_id":   group.ID,
				"website_id": memberID,
			}).Warn("Membro do agrupamento não encontrado; ignorando")
			continue
		}

		if member.StoreID == "" {
			logrus.WithFields(logrus.Fields{
				"client_id":  clientID,
				"group_id":   group.ID,
				"website_id": memberID,
			}).Warn("Membro do agrupamento sem store_id; ignorando")
			continue
		}

		storeIDs = append(storeIDs, member.StoreID)
	}

	if len(storeIDs) == 0 {
		logrus.WithFields(logrus.Fields{
			"client_id": clientID,
			"group_id":  group.ID,
		}).Warn("Agrupamento sem nenhum membro resolvível; relatório retornará vazio")
	}

	return storeIDs, true, nil
}
