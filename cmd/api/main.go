package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/lojalytics/dashboard-api/infrastructure/database/postgres"
	"github.com/lojalytics/dashboard-api/infrastructure/docstore"
	"github.com/lojalytics/dashboard-api/infrastructure/integrator/exchange"
	"github.com/lojalytics/dashboard-api/infrastructure/repository"
	"github.com/lojalytics/dashboard-api/infrastructure/warehouse"
	"github.com/lojalytics/dashboard-api/internal/api"
	"github.com/lojalytics/dashboard-api/internal/config"
	"github.com/lojalytics/dashboard-api/internal/scheduler"
	"github.com/lojalytics/dashboard-api/internal/usecases/authenticating"
	"github.com/lojalytics/dashboard-api/internal/usecases/reporting"
	"github.com/lojalytics/dashboard-api/internal/usecases/resolving"
	"github.com/lojalytics/dashboard-api/internal/usecases/tenant"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	store := docstore.NewStore(pgConn)

	clientRepo := repository.NewClientRepository(store)
	websiteRepo := repository.NewWebsiteRepository(store)
	userRepo := repository.NewUserRepository(store)
	annotationRepo := repository.NewAnnotationRepository(store)
	targetRepo := repository.NewTargetRepository(store)
	inviteRepo := repository.NewInviteRepository(store)
	rateRepo := repository.NewCurrencyRateRepository(store)

	authenticator := authenticating.NewService(userRepo, cfg)

	tenantService := tenant.NewService(clientRepo, websiteRepo, annotationRepo, targetRepo, inviteRepo)

	warehouseClient, err := warehouse.NewClient(
		ctx,
		cfg.Warehouse,
		time.Duration(cfg.Reporting.QueryTimeoutSeconds)*time.Second,
	)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao warehouse")
	}
	defer warehouseClient.Close()

	resolver := resolving.NewService(websiteRepo, cfg)
	reportService := reporting.NewService(cfg, warehouseClient, resolver, rateRepo)

	exchangeClient := exchange.NewClient(cfg)

	// Agendador diário de taxas de câmbio
	ratesSyncService := scheduler.NewCurrencyRatesSyncService(
		clientRepo,
		websiteRepo,
		rateRepo,
		exchangeClient,
		cfg,
	)

	if err := ratesSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de taxas de câmbio")
	} else {
		logrus.Info("Agendador de sincronização de taxas de câmbio iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportService,
		tenantService,
		authenticator,
		ratesSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
