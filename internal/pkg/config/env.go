package config

import (
	"os"
	"strconv"
	"time"
)

// ApplyEnv lets deployment env vars win over the config file.
func (c *Config) ApplyEnv() {
	if dsn := os.Getenv("POSTGRES_DSN"); dsn != "" {
		c.Postgres.DSN = dsn
	}
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		c.Notify.TelegramBotToken = token
	}
	if chatIDStr := os.Getenv("TELEGRAM_CHAT_ID"); chatIDStr != "" {
		if chatID, err := strconv.ParseInt(chatIDStr, 10, 64); err == nil {
			c.Notify.TelegramChatID = chatID
		}
	}
}

// ReadHeaderTimeoutOrDefault parses the configured read-header timeout,
// falling back to 5s on a missing or unparsable value.
func (a *APIConfig) ReadHeaderTimeoutOrDefault() time.Duration {
	d, err := time.ParseDuration(a.ReadHeaderTimeout)
	if err != nil || d <= 0 {
		return 5 * time.Second
	}
	return d
}
