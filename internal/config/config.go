package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

type Config struct {
	HTTPPort string
	APIKey   string
	RedisURL string

	TelegramBotToken string
	TelegramChatID   int64
	DiscordWebhook   string

	OpenAIAPIKey  string
	OpenAIModel   string
	TranslateLang string

	NewsMaxItems      int
	SourceTimeoutSecs int
	PriceCacheSecs    int
	ChartCacheSecs    int
	ChartDays         int
	ChartInterval     string

	ScannerQuery    string
	ScannerPollSecs int
	ScannerLimit    int

	SSHHost        string
	SSHPort        int
	SSHHostKeyPath string
	// SSHAllowedKeys are SHA256 key fingerprints; empty admits any public key.
	SSHAllowedKeys []string

	ModelConfigPath string

	LogLevel       string
	LogFormat      string
	TracingEnabled bool
	OTLPEndpoint   string
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:         envString("HTTP_PORT", "8080"),
		APIKey:           strings.TrimSpace(os.Getenv("API_KEY")),
		RedisURL:         strings.TrimSpace(os.Getenv("REDIS_URL")),
		TelegramBotToken: strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN")),
		DiscordWebhook:   strings.TrimSpace(os.Getenv("DISCORD_WEBHOOK")),
		OpenAIAPIKey:     strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIModel:      envString("OPENAI_MODEL", "gpt-4o-mini"),
		TranslateLang:    strings.ToLower(strings.TrimSpace(os.Getenv("TRANSLATE_LANG"))),
		ChartInterval:    strings.ToLower(envString("CHART_INTERVAL", "1h")),
		ScannerQuery:     envString("SCANNER_QUERY", "solana"),
		SSHHost:          envString("SSH_HOST", "0.0.0.0"),
		SSHHostKeyPath:   envString("SSH_HOST_KEY_PATH", ".ssh/id_ed25519"),
		ModelConfigPath:  strings.TrimSpace(os.Getenv("MODEL_CONFIG_PATH")),
		LogLevel:         strings.ToLower(envString("LOG_LEVEL", "info")),
		LogFormat:        strings.ToLower(envString("LOG_FORMAT", "json")),
		TracingEnabled:   envBool("TRACING_ENABLED"),
		OTLPEndpoint:     envString("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
	}

	if cfg.TelegramBotToken == "" {
		log.Warn().Msg("TELEGRAM_BOT_TOKEN not set, telegram bot will be disabled")
	}
	if v := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.TelegramChatID = id
		} else {
			log.Warn().Str("value", v).Msg("invalid TELEGRAM_CHAT_ID, notifications disabled")
		}
	}
	if cfg.RedisURL == "" {
		log.Warn().Msg("REDIS_URL not set, price memoization disabled")
	}
	if cfg.OpenAIAPIKey == "" {
		log.Warn().Msg("OPENAI_API_KEY not set, translation will be disabled")
	}

	for _, fp := range strings.Split(os.Getenv("SSH_ALLOWED_KEYS"), ",") {
		if fp = strings.TrimSpace(fp); fp != "" {
			cfg.SSHAllowedKeys = append(cfg.SSHAllowedKeys, fp)
		}
	}

	cfg.NewsMaxItems = envPositiveInt("NEWS_MAX_ITEMS", 30)
	cfg.SourceTimeoutSecs = envPositiveInt("SOURCE_TIMEOUT_SECS", 8)
	cfg.PriceCacheSecs = envPositiveInt("PRICE_CACHE_SECS", 60)
	cfg.ChartCacheSecs = envPositiveInt("CHART_CACHE_SECS", 300)
	cfg.ChartDays = envPositiveInt("CHART_DAYS", 1)
	cfg.ScannerPollSecs = envPositiveInt("SCANNER_POLL_SECS", 30)
	cfg.ScannerLimit = envPositiveInt("SCANNER_LIMIT", 25)
	cfg.SSHPort = envPositiveInt("SSH_PORT", 23234)

	switch cfg.ChartInterval {
	case "5m", "15m", "1h", "4h", "1d":
	default:
		log.Warn().Str("value", cfg.ChartInterval).Msg("unsupported CHART_INTERVAL, defaulting to 1h")
		cfg.ChartInterval = "1h"
	}

	return cfg
}

// NotificationsEnabled reports whether a Telegram chat or a Discord webhook is set.
func (c *Config) NotificationsEnabled() bool {
	return (c.TelegramBotToken != "" && c.TelegramChatID != 0) || c.DiscordWebhook != ""
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envPositiveInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Warn().Str("key", key).Str("value", v).Int("default", def).Msg("invalid value, using default")
		return def
	}
	return n
}

func envBool(key string) bool {
	return strings.EqualFold(strings.TrimSpace(os.Getenv(key)), "true")
}
