package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	// Server Configuration
	Server ServerConfig
	Logger LoggerConfig

	// Environment Configuration
	Environment EnvironmentConfig

	// Signing Configuration
	Signer SignerConfig

	// WebSocket Configuration
	WebSocket WebSocketConfig

	// HTTP Configuration
	CORS CORSConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// ServerConfig is the configuration for the HTTP server
type ServerConfig struct {
	Host            string        `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port            int           `env:"HTTP_PORT" envDefault:"8080"`
	Mode            string        `env:"HTTP_MODE" envDefault:"release"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// SignerConfig points form sessions at a remote POST /tokens endpoint.
// Leave URL empty to sign in-process.
type SignerConfig struct {
	URL     string        `env:"SIGNER_URL"`
	Timeout time.Duration `env:"SIGNER_TIMEOUT" envDefault:"15s"`
}

// WebSocketConfig is the configuration for form session sockets
type WebSocketConfig struct {
	PingInterval    time.Duration `env:"WS_PING_INTERVAL" envDefault:"30s"`
	PongWait        time.Duration `env:"WS_PONG_WAIT" envDefault:"60s"`
	WriteWait       time.Duration `env:"WS_WRITE_WAIT" envDefault:"10s"`
	MaxMessageSize  int64         `env:"WS_MAX_MESSAGE_SIZE" envDefault:"65536"`
	ReadBufferSize  int           `env:"WS_READ_BUFFER_SIZE" envDefault:"1024"`
	WriteBufferSize int           `env:"WS_WRITE_BUFFER_SIZE" envDefault:"1024"`
	SendBufferSize  int           `env:"WS_SEND_BUFFER_SIZE" envDefault:"16"`
	MaxSessions     int           `env:"WS_MAX_SESSIONS" envDefault:"1000"`
}

// CORSConfig lists the origins allowed to call the API and open sockets
type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode         string `env:"LOGGER_MODE" envDefault:"production"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"json"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"true"`
}

// EnvironmentConfig is the configuration for environment-aware features
type EnvironmentConfig struct {
	Name string `env:"ENV" envDefault:"production"`
}

// DiscordConfig is the configuration for Discord webhook bug reports
type DiscordConfig struct {
	WebhookID    string `env:"DISCORD_WEBHOOK_ID"`
	WebhookToken string `env:"DISCORD_WEBHOOK_TOKEN"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.WebSocket.MaxSessions < 0 {
		return fmt.Errorf("WS_MAX_SESSIONS must not be negative, got %d", cfg.WebSocket.MaxSessions)
	}
	if cfg.WebSocket.PingInterval >= cfg.WebSocket.PongWait {
		return fmt.Errorf("WS_PING_INTERVAL (%s) must be shorter than WS_PONG_WAIT (%s)", cfg.WebSocket.PingInterval, cfg.WebSocket.PongWait)
	}
	if (cfg.Discord.WebhookID == "") != (cfg.Discord.WebhookToken == "") {
		return fmt.Errorf("DISCORD_WEBHOOK_ID and DISCORD_WEBHOOK_TOKEN must be set together")
	}
	return nil
}
