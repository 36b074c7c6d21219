package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	App                    App                    `mapstructure:",squash"`
	Server                 Server                 `mapstructure:",squash"`
	Database               Database               `mapstructure:",squash"`
	Auth                   Auth                   `mapstructure:",squash"`
	Cors                   Cors                   `mapstructure:",squash"`
	Gemini                 Gemini                 `mapstructure:",squash"`
	PerformanceScoringSync PerformanceScoringSync `mapstructure:",squash"`
	GoalRiskWatch          GoalRiskWatch          `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	SSLMode  string `mapstructure:"database_sslmode"`
}

type Auth struct {
	Secret        string        `mapstructure:"auth_secret"`
	TokenTTL      time.Duration `mapstructure:"auth_token_ttl"`
	AdminEmail    string        `mapstructure:"auth_admin_email"`
	AdminPassword string        `mapstructure:"auth_admin_password"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// Gemini configura o provedor externo de resumo de reuniões
type Gemini struct {
	APIKey  string        `mapstructure:"gemini_api_key"`
	Model   string        `mapstructure:"gemini_model"`
	Timeout time.Duration `mapstructure:"gemini_timeout"`
}

type PerformanceScoringSync struct {
	CronSchedule  string `mapstructure:"performance_scoring_sync_cron"`
	Enabled       bool   `mapstructure:"performance_scoring_sync_enabled"`
	MonthLookBack int    `mapstructure:"performance_scoring_sync_month_lookback"`
}

type GoalRiskWatch struct {
	CronSchedule string `mapstructure:"goal_risk_watch_cron"`
	Enabled      bool   `mapstructure:"goal_risk_watch_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", "8000")

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")

	viper.SetDefault("DATABASE_DRIVER", DriverPostgres)
	viper.SetDefault("DATABASE_URL", "localhost:5432/consultorpro")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SSLMODE", "disable")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")
	viper.SetDefault("AUTH_ADMIN_EMAIL", "")    // Administrador criado na inicialização, se ainda não existir
	viper.SetDefault("AUTH_ADMIN_PASSWORD", "")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("GEMINI_TIMEOUT", "60s")

	viper.SetDefault("PERFORMANCE_SCORING_SYNC_CRON", "0 5 1 * *") // No primeiro dia de cada mês às 5h da manhã
	viper.SetDefault("PERFORMANCE_SCORING_SYNC_ENABLED", false)    // Habilitar recálculo mensal de score e ranking
	viper.SetDefault("PERFORMANCE_SCORING_SYNC_MONTH_LOOKBACK", 1) // Quantos meses anteriores recalcular

	viper.SetDefault("GOAL_RISK_WATCH_CRON", "0 8 * * *") // Todos os dias às 8h da manhã
	viper.SetDefault("GOAL_RISK_WATCH_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = BuildDSN(config.Database)

	return config, nil
}

// Validate verifica combinações de configuração que impedem a inicialização
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("driver de banco de dados não suportado: %s", c.Database.Driver)
	}

	if c.Auth.Secret == "" {
		return fmt.Errorf("AUTH_SECRET é obrigatório")
	}

	if c.PerformanceScoringSync.MonthLookBack < 1 {
		c.PerformanceScoringSync.MonthLookBack = 1
	}

	return nil
}

// BuildDSN monta a string de conexão do PostgreSQL
func BuildDSN(db Database) string {
	dsn := fmt.Sprintf("postgres://%s:%s@%s", db.User, db.Password, db.URL)
	if db.SSLMode != "" {
		dsn = fmt.Sprintf("%s?sslmode=%s", dsn, db.SSLMode)
	}
	return dsn
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
