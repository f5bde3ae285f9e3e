package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/diegoclair/slack-duty-bot/internal/domain"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	SlackBotToken      string `envconfig:"SLACK_BOT_TOKEN"`
	SlackSigningSecret string `envconfig:"SLACK_SIGNING_SECRET"`
	DatabasePath       string `envconfig:"DATABASE_PATH" default:"./duty.db"`
	Port               string `envconfig:"PORT" default:"3000"`

	AnnounceChannel string `envconfig:"ANNOUNCE_CHANNEL" default:"random"`
	AdminSlackID    string `envconfig:"ADMIN_SLACK_ID"`
	RosterPath      string `envconfig:"ROSTER_PATH" default:"./roster.yaml"`

	SchedulerEnabled bool     `envconfig:"SCHEDULER_ENABLED" default:"true"`
	NotificationTime string   `envconfig:"NOTIFICATION_TIME" default:"09:00"`
	ActiveDays       []int    `envconfig:"ACTIVE_DAYS" default:"1"`
	Timezone         string   `envconfig:"TIMEZONE" default:"UTC"`
	DutyKeywords     []string `envconfig:"DUTY_KEYWORDS" default:"duty,cleaning,trash"`
	// CompletedKeywords acknowledge a finished duty without advancing it
	CompletedKeywords []string `envconfig:"COMPLETED_KEYWORDS" default:"done,completed,finished"`

	StoreTimeout time.Duration `envconfig:"STORE_TIMEOUT" default:"5s"`
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat    string        `envconfig:"LOG_FORMAT" default:"text"`
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if _, err := time.Parse("15:04", c.NotificationTime); err != nil {
		return fmt.Errorf("NOTIFICATION_TIME must use HH:MM (24-hour format), got %q", c.NotificationTime)
	}

	if len(c.ActiveDays) == 0 {
		return errors.New("ACTIVE_DAYS must list at least one weekday")
	}
	for _, day := range c.ActiveDays {
		if _, ok := domain.WeekdayNames[day]; !ok {
			return fmt.Errorf("ACTIVE_DAYS uses numbers 1-7 (1=Mon ... 7=Sun), got %d", day)
		}
	}

	if _, err := c.Location(); err != nil {
		return fmt.Errorf("TIMEZONE is invalid: %w", err)
	}

	if c.StoreTimeout < 0 {
		return errors.New("STORE_TIMEOUT cannot be negative")
	}

	return nil
}

// ValidateServer checks the settings only the Slack server needs.
func (c *Config) ValidateServer() error {
	if c.SlackBotToken == "" {
		return errors.New("SLACK_BOT_TOKEN is required")
	}
	if c.SlackSigningSecret == "" {
		return errors.New("SLACK_SIGNING_SECRET is required")
	}
	return nil
}

func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
