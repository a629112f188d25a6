package vars

import (
	"os"
	"strconv"
	"time"

	// .env must be loaded before the variables below are initialised.
	_ "github.com/joho/godotenv/autoload"
)

// GetEnv returns the environment value for key, or fallback when unset.
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvInt is GetEnv for integer settings; malformed values fall back.
func GetEnvInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

// GetEnvDuration is GetEnv for duration settings ("90s", "24h").
func GetEnvDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil && d > 0 {
		return d
	}
	return fallback
}

const (
	// model names
	QWEN7B = "qwen2.5:7b"
	QWEN3B = "qwen2.5:3b"
	GPT4O  = "gpt-4o-mini"

	// providers
	OLLAMA = "ollama"
	OPENAI = "openai"

	// hand-off stores
	MEMORY   = "memory"
	POSTGRES = "postgres"

	// HandOffVersion is the version stamped on every hand-off record this build writes.
	HandOffVersion = 1

	SessionCookie = "mapca_session"
)

// Fixed business values. The consultant is never extracted from the input text.
const (
	ConsultantName  = "Luiz Portal"
	ConsultantEmail = "luizportal@live.com.br"

	DefaultResponsible = "Consultor Líder"

	ValorExtensoPlaceholder = "A ser preenchido"
	FormaPagamento          = "50% na assinatura do contrato e 50% na entrega final."
	DurationUnit            = "semanas (estimado)"

	ExtractionFailedPrefix = "Falha na extração de dados: "
	AnalysisFailedPrefix   = "Falha na geração da análise: "
)

// Environment configuration (docker friendly).
var (
	SERVERADDR = GetEnv("SERVER_ADDR", ":8081")

	// LLM
	LLM_PROVIDER    = GetEnv("LLM_PROVIDER", OLLAMA)
	LLM_MODEL       = GetEnv("LLM_MODEL", QWEN7B)
	LLM_TIMEOUT     = GetEnvDuration("LLM_TIMEOUT", 120*time.Second)
	OLLAMA_PATH     = GetEnv("OLLAMA_PATH", "http://localhost:11434")
	OPENAI_API_KEY  = GetEnv("OPENAI_API_KEY", "")
	OPENAI_BASE_URL = GetEnv("OPENAI_BASE_URL", "")

	// PG
	PGUSER = GetEnv("PGUSER", "root")
	PGPWD  = GetEnv("PGPWD", "")
	PGDB   = GetEnv("PGDB", "mapca")
	PGHOST = GetEnv("PGHOST", "localhost")
	PGPORT = GetEnv("PGPORT", "5432")

	// hand-off / sessions
	HANDOFF_STORE      = GetEnv("HANDOFF_STORE", MEMORY)
	HANDOFF_TTL        = GetEnvDuration("HANDOFF_TTL", 24*time.Hour)
	SESSION_CACHE_SIZE = GetEnvInt("SESSION_CACHE_SIZE", 1024)
	PURGE_SPEC         = GetEnv("PURGE_SPEC", "@hourly")
	MAX_UPLOAD_MB      = GetEnvInt("MAX_UPLOAD_MB", 10)

	LOG_DEBUG = GetEnv("LOG_DEBUG", "") != ""
)
