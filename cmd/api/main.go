package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/aawz/vendedores-api/infrastructure/database/postgres"
	"github.com/aawz/vendedores-api/infrastructure/repository"
	"github.com/aawz/vendedores-api/internal/api"
	"github.com/aawz/vendedores-api/internal/config"
	"github.com/aawz/vendedores-api/internal/usecases/comissao"
	"github.com/aawz/vendedores-api/internal/usecases/importacao"
	"github.com/aawz/vendedores-api/internal/usecases/vendas"
	"github.com/aawz/vendedores-api/internal/usecases/vendedor"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	vendedorRepo := repository.NewVendedorRepository(pgConn)
	volumeRepo := repository.NewVolumeRepository(pgConn)

	vendedorService := vendedor.NewService(vendedorRepo)
	importacaoService := importacao.NewService(vendedorRepo)
	comissaoService := comissao.NewService(cfg)
	volumeService := vendas.NewService(volumeRepo)

	server, err := api.New(
		cfg,
		vendedorService,
		importacaoService,
		comissaoService,
		volumeService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato dos logs
func configureLogger() {
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

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
