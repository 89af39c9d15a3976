package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/aawz/vendedores-api/internal/api/handler"
	"github.com/aawz/vendedores-api/internal/api/handler/router"
	"github.com/aawz/vendedores-api/internal/config"
	"github.com/aawz/vendedores-api/internal/usecases/comissao"
	"github.com/aawz/vendedores-api/internal/usecases/importacao"
	"github.com/aawz/vendedores-api/internal/usecases/vendas"
	"github.com/aawz/vendedores-api/internal/usecases/vendedor"
	"github.com/aawz/vendedores-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	vendedorService vendedor.VendedorService,
	importacaoService importacao.ImportacaoService,
	comissaoService comissao.ComissaoService,
	volumeService vendas.VolumeService,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Vendedores(vendedorService)...),
		router.WithRoutes(handler.Importacao(importacaoService)...),
		router.WithRoutes(handler.Comissao(comissaoService)...),
		router.WithRoutes(handler.Volume(volumeService)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	chain := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chain,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Aguarda sinal de término ou cancelamento do contexto
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
