package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Comissao Comissao `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
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
}

// Comissao concentra as regras do cálculo de comissão e o destino do
// arquivo gerado
type Comissao struct {
	Aliquota       float64 `mapstructure:"comissao_aliquota"`
	DescontoOnline float64 `mapstructure:"comissao_desconto_online"`
	LimiteDesconto float64 `mapstructure:"comissao_limite_desconto"`
	DescontoLimite float64 `mapstructure:"comissao_desconto_limite"`
	ArquivoSaida   string  `mapstructure:"comissao_arquivo_saida"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/vendedores")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	// Regras de comissão: 10% sobre a venda, 20% de desconto no canal
	// Online e mais 10% quando a comissão total atinge 1000
	viper.SetDefault("COMISSAO_ALIQUOTA", 0.10)
	viper.SetDefault("COMISSAO_DESCONTO_ONLINE", 0.20)
	viper.SetDefault("COMISSAO_LIMITE_DESCONTO", 1000.0)
	viper.SetDefault("COMISSAO_DESCONTO_LIMITE", 0.10)
	viper.SetDefault("COMISSAO_ARQUIVO_SAIDA", "./output/comissoes.csv")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Warn("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
