package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL"`
	AMQPURL     string `env:"AMQP_URL"`

	JWTSecret string `env:"JWT_SECRET"`

	// PasscodeSecret is the root secret for first-login passcodes; per-identity
	// keys are derived from it. PasscodeWindow is the bucket size of the
	// rolling window.
	PasscodeSecret string        `env:"PASSCODE_SECRET"`
	PasscodeWindow time.Duration `env:"PASSCODE_WINDOW" envDefault:"5m"`

	// MeetingAccessGrace is how long past the scheduled instant a conversation
	// may still be opened. MeetingEnforceStart turns on the lower bound, which
	// allows joining at most MeetingEarlyJoinLead before the scheduled instant.
	MeetingAccessGrace   time.Duration `env:"MEETING_ACCESS_GRACE" envDefault:"30m"`
	MeetingEnforceStart  bool          `env:"MEETING_ENFORCE_START" envDefault:"false"`
	MeetingEarlyJoinLead time.Duration `env:"MEETING_EARLY_JOIN_LEAD" envDefault:"30m"`

	NotifyExchange string `env:"NOTIFY_EXCHANGE" envDefault:"email.outbound"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Port <= 0 || cfg.Port >= 65536 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.PasscodeWindow <= 0 {
		cfg.PasscodeWindow = 5 * time.Minute
	}
	return cfg, nil
}

func (c Config) ListenAddr() string {
	return ":" + strconv.Itoa(c.Port)
}
