package config

import (
	"fmt"

	"github.com/SamuelCarmona83/capitan-coditos/internal/repository"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Repo repository.Config

	DiscordToken string `env:"DISCORD_TOKEN" envDefault:""`
	RiotAPIKey   string `env:"RIOT_API_KEY" envDefault:""`

	AIProvider string `env:"AI_PROVIDER" envDefault:"openai"`
	OpenAIKey  string `env:"OPENAI_API_KEY" envDefault:""`
	GeminiKey  string `env:"GEMINI_KEY" envDefault:""`

	// The poller is disabled when NotifyChannelID is empty.
	NotifyChannelID     string `env:"NOTIFY_CHANNEL_ID" envDefault:""`
	PollIntervalSeconds int    `env:"POLL_INTERVAL_SECONDS" envDefault:"300"`

	// Platform subdomains probed in order by the live-game lookup.
	RiotPlatforms []string `env:"RIOT_PLATFORMS" envSeparator:"," envDefault:"la1,la2,na1"`

	AdminUserIDs []string `env:"ADMIN_USER_IDS" envSeparator:"," envDefault:""`
	LogLevel     string   `env:"LOGGER_LEVEL" envDefault:"debug"`
}

func ReadEnvConfig(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return err
	}
	return cfg.validate()
}

func (c *Config) validate() error {
	if c.DiscordToken == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	if c.RiotAPIKey == "" {
		return fmt.Errorf("RIOT_API_KEY is required")
	}
	switch c.AIProvider {
	case "openai":
		if c.OpenAIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when AI_PROVIDER=openai")
		}
	case "gemini":
		if c.GeminiKey == "" {
			return fmt.Errorf("GEMINI_KEY is required when AI_PROVIDER=gemini")
		}
	default:
		return fmt.Errorf("unknown AI_PROVIDER %q (want openai or gemini)", c.AIProvider)
	}
	return nil
}
