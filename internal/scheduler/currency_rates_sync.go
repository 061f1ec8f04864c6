// Package scheduler agenda os jobs recorrentes da aplicação.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/lojalytics/dashboard-api/infrastructure/integrator/exchange"
	"github.com/lojalytics/dashboard-api/infrastructure/repository"
	"github.com/lojalytics/dashboard-api/internal/config"
	"github.com/lojalytics/dashboard-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// CurrencyRatesSyncConfig representa a configuração do agendador de taxas de câmbio
type CurrencyRatesSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// CurrencyRatesSyncService busca diariamente as taxas de câmbio de cada loja
// para a moeda de relatório do cliente e as grava no armazenamento de
// documentos, indexadas por loja e data
type CurrencyRatesSyncService struct {
	scheduler           *gocron.Scheduler
	config              CurrencyRatesSyncConfig
	clientRepo          repository.ClientRepository
	websiteRepo         repository.WebsiteRepository
	rateRepo            repository.CurrencyRateRepository
	exchangeClient      exchange.Client
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewCurrencyRatesSyncService cria uma nova instância do serviço de sincronização de taxas
func NewCurrencyRatesSyncService(
	clientRepo repository.ClientRepository,
	websiteRepo repository.WebsiteRepository,
	rateRepo repository.CurrencyRateRepository,
	exchangeClient exchange.Client,
	appConfig *config.Config,
) *CurrencyRatesSyncService {
	syncConfig := CurrencyRatesSyncConfig{
		CronSchedule: appConfig.RatesSync.CronSchedule,
		SyncEnabled:  appConfig.RatesSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de taxas de câmbio carregada")

	return &CurrencyRatesSyncService{
		scheduler:      scheduler,
		config:         syncConfig,
		clientRepo:     clientRepo,
		websiteRepo:    websiteRepo,
		rateRepo:       rateRepo,
		exchangeClient: exchangeClient,
		syncRunning:    false,
	}
}

// Start inicia o agendador
func (s *CurrencyRatesSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de taxas de câmbio desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de taxas de câmbio")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllClientRates()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de taxas de câmbio: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de taxas de câmbio")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllClientRates sincroniza as taxas do dia para todos os clientes
func (s *CurrencyRatesSyncService) syncAllClientRates() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de taxas de câmbio já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de taxas de câmbio para todos os clientes")

	clients, err := s.clientRepo.ListClients()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de clientes para sincronização de taxas")
		return
	}

	if len(clients) == 0 {
		logrus.Info("Nenhum cliente encontrado para sincronização de taxas de câmbio")
		return
	}

	synced := 0
	for _, client := range clients {
		synced += s.syncClientRates(client)
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":     duration.String(),
		"clients":      len(clients),
		"rates_synced": synced,
	}).Info("Sincronização de taxas de câmbio concluída")

	s.lastSyncCompletedAt = time.Now()
}

// syncClientRates grava a taxa do dia de cada loja do cliente. Lojas que já
// operam na moeda de relatório recebem taxa 1.0 sem consultar a API externa.
func (s *CurrencyRatesSyncService) syncClientRates(client *domain.Client) int {
	websites, err := s.websiteRepo.ListWebsites(client.ID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"client_id": client.ID,
			"error":     err.Error(),
		}).Error("Erro ao listar websites do cliente para sincronização de taxas")
		return 0
	}

	// Moedas distintas das lojas que precisam de conversão
	currencyByStore := make(map[string]string)
	symbolSet := make(map[string]struct{})
	for _, website := range websites {
		if website.IsGrouped || website.StoreID == "" {
			continue
		}
		currencyByStore[website.StoreID] = website.Currency
		if website.Currency != "" && website.Currency != client.ReportingCurrency {
			symbolSet[website.Currency] = struct{}{}
		}
	}

	if len(currencyByStore) == 0 {
		logrus.WithField("client_id", client.ID).Info("Cliente sem lojas para sincronização de taxas")
		return 0
	}

	var rates map[string]float64
	if len(symbolSet) > 0 {
		symbols := make([]string, 0, len(symbolSet))
		for symbol := range symbolSet {
			symbols = append(symbols, symbol)
		}

		rates, err = s.exchangeClient.LatestRates(client.ReportingCurrency, symbols)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"client_id": client.ID,
				"base":      client.ReportingCurrency,
				"error":     err.Error(),
			}).Error("Erro ao consultar taxas de câmbio para o cliente")
			return 0
		}
	}

	today := time.Now().Format(time.DateOnly)
	synced := 0

	for storeID, currency := range currencyByStore {
		// A API retorna quanto vale 1 unidade da base na moeda da loja; o
		// relatório precisa do caminho inverso (moeda da loja -> base)
		rate := 1.0
		if currency != "" && currency != client.ReportingCurrency {
			apiRate, ok := rates[currency]
			if !ok || apiRate <= 0 {
				logrus.WithFields(logrus.Fields{
					"client_id": client.ID,
					"store_id":  storeID,
					"currency":  currency,
				}).Warn("Taxa de câmbio ausente para a moeda da loja. Pulando.")
				continue
			}
			rate = 1 / apiRate
		}

		err := s.rateRepo.SaveRate(client.ID, &domain.CurrencyRate{
			StoreID: storeID,
			Date:    today,
			Rate:    rate,
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"client_id": client.ID,
				"store_id":  storeID,
				"date":      today,
				"error":     err.Error(),
			}).Error("Erro ao salvar taxa de câmbio")
			continue
		}

		synced++
	}

	logrus.WithFields(logrus.Fields{
		"client_id":    client.ID,
		"date":         today,
		"rates_synced": synced,
	}).Info("Taxas de câmbio do cliente sincronizadas")

	return synced
}

// TriggerManualSync inicia manualmente uma sincronização de taxas de câmbio
func (s *CurrencyRatesSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de taxas de câmbio já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de taxas de câmbio")
	go s.syncAllClientRates()
}

// GetStatus retorna o status atual do agendador
func (s *CurrencyRatesSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
