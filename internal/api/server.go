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
	"github.com/vfg2006/consultorpro-api/internal/api/handler"
	"github.com/vfg2006/consultorpro-api/internal/api/handler/router"
	"github.com/vfg2006/consultorpro-api/internal/config"
	"github.com/vfg2006/consultorpro-api/internal/usecases/authenticating"
	"github.com/vfg2006/consultorpro-api/internal/usecases/consulting"
	"github.com/vfg2006/consultorpro-api/internal/usecases/diagnosing"
	"github.com/vfg2006/consultorpro-api/internal/usecases/planning"
	"github.com/vfg2006/consultorpro-api/internal/usecases/scoring"
	"github.com/vfg2006/consultorpro-api/internal/usecases/summarizing"
	"github.com/vfg2006/consultorpro-api/internal/usecases/tracking"
	"github.com/vfg2006/consultorpro-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Services reúne os casos de uso expostos pela API
type Services struct {
	Authenticator authenticating.Authenticator
	Consultant    consulting.Consultant
	Scorer        scoring.Scorer
	GoalTracker   tracking.GoalTracker
	Planner       planning.Planner
	Diagnoser     diagnosing.Diagnoser
	Summarizer    summarizing.Summarizer
	CronJobs      handler.CronJobs
}

// NewHandler monta o router com todas as rotas e a cadeia global de middlewares
func NewHandler(cfg *config.Config, services Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.User(services.Authenticator)...),
		router.WithRoutes(handler.Consultancies(services.Consultant)...),
		router.WithRoutes(handler.Performance(services.Scorer)...),
		router.WithRoutes(handler.Goals(services.GoalTracker)...),
		router.WithRoutes(handler.Actions(services.Planner)...),
		router.WithRoutes(handler.Opportunities(services.Planner)...),
		router.WithRoutes(handler.Diagnostics(services.Diagnoser)...),
		router.WithRoutes(handler.Meetings(services.Summarizer)...),
		router.WithRoutes(handler.Cron(services.CronJobs)...),
	)

	logrus.Debugf("%d rotas registradas", len(rt.Routes()))

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Cors),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(cfg *config.Config, services Services) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
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

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
