package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/consultorpro-api/infrastructure/database/postgres"
	"github.com/vfg2006/consultorpro-api/infrastructure/integrator/gemini"
	"github.com/vfg2006/consultorpro-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/vfg2006/consultorpro-api/infrastructure/repository"
	"github.com/vfg2006/consultorpro-api/infrastructure/repository/memory"
	"github.com/vfg2006/consultorpro-api/internal/api"
	"github.com/vfg2006/consultorpro-api/internal/api/handler"
	"github.com/vfg2006/consultorpro-api/internal/config"
	"github.com/vfg2006/consultorpro-api/internal/domain"
	"github.com/vfg2006/consultorpro-api/internal/scheduler"
	"github.com/vfg2006/consultorpro-api/internal/usecases/authenticating"
	"github.com/vfg2006/consultorpro-api/internal/usecases/consulting"
	"github.com/vfg2006/consultorpro-api/internal/usecases/diagnosing"
	"github.com/vfg2006/consultorpro-api/internal/usecases/planning"
	"github.com/vfg2006/consultorpro-api/internal/usecases/scoring"
	"github.com/vfg2006/consultorpro-api/internal/usecases/summarizing"
	"github.com/vfg2006/consultorpro-api/internal/usecases/tracking"
)

// repositories agrupa as implementações escolhidas por DATABASE_DRIVER
type repositories struct {
	user        repository.UserRepository
	consultancy repository.ConsultancyRepository
	performance repository.PerformanceRepository
	ranking     repository.PerformanceRankingRepository
	goal        repository.GoalRepository
	action      repository.ActionRepository
	opportunity repository.OpportunityRepository
	diagnostic  repository.DiagnosticRepository
}

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

	var repos repositories
	switch cfg.Database.Driver {
	case config.DriverMemory:
		logrus.Warn("Usando repositórios em memória, os dados serão perdidos ao reiniciar")
		repos = memoryRepositories()
	default:
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()
		repos = postgresRepositories(pgConn)
	}

	authenticator := authenticating.NewService(repos.user, cfg.Auth)
	bootstrapAdmin(ctx, authenticator, cfg.Auth)

	scorer := scoring.NewService(repos.performance, repos.ranking)
	goalTracker := tracking.NewService(repos.goal)
	planner := planning.NewService(repos.action, repos.opportunity)
	diagnoser := diagnosing.NewService(repos.diagnostic, repos.action, planner)
	consultant := consulting.NewService(consulting.Repositories{
		Consultancy: repos.consultancy,
		Goal:        repos.goal,
		Action:      repos.action,
		Opportunity: repos.opportunity,
		Diagnostic:  repos.diagnostic,
		Performance: repos.performance,
	})
	summarizer := summarizing.NewService(meetingSummarizer(ctx, cfg.Gemini))

	// Inicializa os agendadores
	performanceScoringSyncService := scheduler.NewPerformanceScoringSyncService(scorer, cfg)
	goalRiskWatchService := scheduler.NewGoalRiskWatchService(goalTracker, cfg)

	if err := performanceScoringSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de score mensal")
	} else {
		logrus.Info("Agendador de score mensal iniciado com sucesso")
	}

	if err := goalRiskWatchService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de metas em risco")
	} else {
		logrus.Info("Agendador de metas em risco iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Consultant:    consultant,
		Scorer:        scorer,
		GoalTracker:   goalTracker,
		Planner:       planner,
		Diagnoser:     diagnoser,
		Summarizer:    summarizer,
		CronJobs: handler.CronJobs{
			scheduler.PerformanceScoringJob: performanceScoringSyncService,
			scheduler.GoalRiskJob:           goalRiskWatchService,
		},
	})
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
func pgconn(ctx context.Context, dbConfig config.Database) postgres.Conn {
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

func postgresRepositories(conn postgres.Queryer) repositories {
	return repositories{
		user:        repository.NewUserRepository(conn),
		consultancy: repository.NewConsultancyRepository(conn),
		performance: repository.NewPerformanceRepository(conn),
		ranking:     repository.NewPerformanceRankingRepository(conn),
		goal:        repository.NewGoalRepository(conn),
		action:      repository.NewActionRepository(conn),
		opportunity: repository.NewOpportunityRepository(conn),
		diagnostic:  repository.NewDiagnosticRepository(conn),
	}
}

func memoryRepositories() repositories {
	return repositories{
		user:        memory.NewUserRepository(),
		consultancy: memory.NewConsultancyRepository(),
		performance: memory.NewPerformanceRepository(),
		ranking:     memory.NewPerformanceRankingRepository(),
		goal:        memory.NewGoalRepository(),
		action:      memory.NewActionRepository(),
		opportunity: memory.NewOpportunityRepository(),
		diagnostic:  memory.NewDiagnosticRepository(),
	}
}

// meetingSummarizer devolve nil quando o Gemini não está configurado; o resumo passa a responder SRV_003
func meetingSummarizer(ctx context.Context, cfg config.Gemini) gemini.MeetingSummarizer {
	if cfg.APIKey == "" {
		logrus.Warn("GEMINI_API_KEY não configurada, resumo de reuniões indisponível")
		return nil
	}

	client, err := geminiclient.NewClient(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar cliente Gemini, resumo de reuniões indisponível")
		return nil
	}

	return gemini.New(client)
}

// bootstrapAdmin garante um administrador inicial quando AUTH_ADMIN_EMAIL e AUTH_ADMIN_PASSWORD estão definidos
func bootstrapAdmin(ctx context.Context, authenticator authenticating.Authenticator, cfg config.Auth) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return
	}

	_, err := authenticator.CreateUser(ctx, &domain.User{
		Name:         "Administrador",
		Email:        cfg.AdminEmail,
		PasswordHash: cfg.AdminPassword,
		RoleID:       domain.RoleAdmin,
	})

	switch {
	case err == nil:
		logrus.WithField("email", cfg.AdminEmail).Info("Administrador inicial criado")
	case errors.Is(err, authenticating.ErrUserAlreadyExists):
		logrus.Debug("Administrador inicial já existe")
	default:
		logrus.WithError(err).Error("Erro ao criar administrador inicial")
	}
}
