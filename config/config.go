package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config armazena todas as configurações do serviço de estoque de correias.
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string

	// Banco de Dados (PostgreSQL)
	DatabaseURL string
	DBTimeout   time.Duration

	// Cache (Redis)
	RedisAddr    string
	CacheTimeout time.Duration
	CacheTTL     time.Duration

	// Rate Limiting
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration

	// Eventos (Kafka). Sem brokers, a publicação de movimentações fica desligada.
	KafkaBrokers []string
	KafkaTopic   string
}

// defaults são os valores usados quando a variável de ambiente não está definida.
var defaults = map[string]interface{}{
	"PORT":                    "8080",
	"ENV":                     "development",
	"LOG_LEVEL":               "info",
	"DB_TIMEOUT_SEC":          5,
	"REDIS_ADDR":              "localhost:6379",
	"CACHE_TIMEOUT_SEC":       10,
	"CACHE_TTL_SEC":           300,
	"RATE_LIMIT_MAX_REQUESTS": 100,
	"RATE_LIMIT_PERIOD_MIN":   1,
	"KAFKA_BROKERS":           "",
	"KAFKA_TOPIC":             "stock.movement",
}

// Load lê o .env (opcional) e as variáveis de ambiente.
// DATABASE_URL é obrigatória.
func Load() (*Config, error) {
	// 1. .env é opcional: em produção as variáveis vêm do ambiente.
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	// AutomaticEnv só enxerga chaves conhecidas; DATABASE_URL não tem padrão.
	if err := v.BindEnv("DATABASE_URL"); err != nil {
		return nil, fmt.Errorf("bind DATABASE_URL: %w", err)
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	// 2. Banco de dados é obrigatório
	dbURL := strings.TrimSpace(v.GetString("DATABASE_URL"))
	if dbURL == "" {
		return nil, fmt.Errorf("a variável de ambiente DATABASE_URL deve ser definida")
	}

	cfg := &Config{
		Port:        v.GetString("PORT"),
		Environment: v.GetString("ENV"),
		LogLevel:    v.GetString("LOG_LEVEL"),

		DatabaseURL: dbURL,
		DBTimeout:   seconds(v, "DB_TIMEOUT_SEC"),

		RedisAddr:    v.GetString("REDIS_ADDR"),
		CacheTimeout: seconds(v, "CACHE_TIMEOUT_SEC"),
		CacheTTL:     seconds(v, "CACHE_TTL_SEC"),

		RateLimitMaxRequests: positiveInt(v, "RATE_LIMIT_MAX_REQUESTS"),
		RateLimitPeriod:      time.Duration(positiveInt(v, "RATE_LIMIT_PERIOD_MIN")) * time.Minute,

		KafkaBrokers: splitList(v.GetString("KAFKA_BROKERS")),
		KafkaTopic:   v.GetString("KAFKA_TOPIC"),
	}

	return cfg, nil
}

// LoadConfig é Load para o main: encerra o processo se a configuração for inválida.
func LoadConfig() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("❌ Erro de Configuração: %v", err)
	}
	return cfg
}

// FromMap monta a configuração a partir de pares chave/valor, sem olhar o ambiente.
// Usado pela CLI e pelos testes.
func FromMap(values map[string]interface{}) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	for key, value := range values {
		v.Set(key, value)
	}
	return fromViper(v)
}

// Funções Helpers (Auxiliares)

// seconds lê um inteiro em segundos. Valores inválidos ou não positivos voltam ao padrão.
func seconds(v *viper.Viper, key string) time.Duration {
	return time.Duration(positiveInt(v, key)) * time.Second
}

func positiveInt(v *viper.Viper, key string) int {
	value := v.GetInt(key)
	if value <= 0 {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um inteiro positivo. Usando padrão (%v).", key, v.GetString(key), defaults[key])
		return defaults[key].(int)
	}
	return value
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
