package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Log      Log      `yaml:"log"`
	Server   Server   `yaml:"server"`
	Heart    Heart    `yaml:"heart"`
	State    State    `yaml:"state"`
	Decision Decision `yaml:"decision"`
	MCP      MCP      `yaml:"mcp"`
}

type Log struct {
	// Minimum console level: debug, info, warn or error
	Level string `yaml:"level" example:"debug"`
	// Telegram logging config
	Telegram TelegramLog `yaml:"telegram"`
}

type TelegramLog struct {
	// Chat bot token, obtain it via BotFather
	Token string `yaml:"token" example:"1234567890:ABCdefGHIjklMNopQRstUVwxyZ-123456789"`
	// Chat ID to send messages to
	ChatID string `yaml:"chat_id" example:"1001234567890"`
}

type Server struct {
	// Address the HTTP API listens on
	Addr string `yaml:"addr" example:":8080"`
}

type Heart struct {
	// URL of the exported heart snapshot (today.json)
	EndpointURL string `yaml:"endpoint_url" example:"https://example.github.io/heart-engine/today.json" validate:"required,url"`
	// Fetch timeout in seconds
	TimeoutSeconds int `yaml:"timeout_seconds" example:"10"`
}

type State struct {
	// Path of the speak-state file
	Path string `yaml:"path" example:"data/speakstate.json"`
}

type Decision struct {
	// Minimum minutes between utterances of the same persona
	CooldownMinutes int `yaml:"cooldown_minutes" example:"60"`
	// Stay silent outside 06:00-23:00
	DaytimeOnly *bool `yaml:"daytime_only" example:"true"`
	// Per-persona base speak probability, overrides the built-in defaults
	BaseRates map[string]float64 `yaml:"base_rates"`
}

type MCP struct {
	// Serve the decision entry point as an MCP stdio tool
	Enabled bool `yaml:"enabled" example:"false"`
}

func Load() (*Config, error) {
	var result Config

	data, err := os.ReadFile("config.yaml")
	if err != nil {
		return nil, oops.Errorf("failed to read config file: %w", err)
	}

	if err = yaml.Unmarshal(data, &result); err != nil {
		return nil, oops.Errorf("failed to parse YAML config: %w", err)
	}

	if result.Server.Addr == "" {
		result.Server.Addr = ":8080"
	}
	if result.Heart.TimeoutSeconds <= 0 {
		result.Heart.TimeoutSeconds = 10
	}
	if result.State.Path == "" {
		result.State.Path = "data/speakstate.json"
	}
	if result.Decision.CooldownMinutes <= 0 {
		result.Decision.CooldownMinutes = 60
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(result); err != nil {
		return nil, oops.Errorf("failed to validate config: %w", err)
	}

	return &result, nil
}
