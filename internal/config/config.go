package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Config is the service configuration.
type Config struct {
	AppPort     string
	CORSOrigins string

	DatabaseDriver string
	DatabaseDSN    string

	JWTSecret   string
	TokenTTL    time.Duration
	AdminEmails []string

	RabbitMQURL string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string
	ContactInbox string

	UploadDir string
	PublicURL string

	LogMode string
	LogFile string

	FeaturedAuditSchedule string
}

// DefaultJWTSecret is the signing key used when JWT_SECRET is not set.
const DefaultJWTSecret = "change-me"

// ErrDefaultSecret is returned by Validate when production runs with
// DefaultJWTSecret.
var ErrDefaultSecret = errors.New("JWT_SECRET must be set in production")

// MailEnabled reports whether contact messages can be forwarded.
func (c *Config) MailEnabled() bool {
	return c.SMTPHost != "" && c.ContactInbox != ""
}

// EventsEnabled reports whether a broker is configured.
func (c *Config) EventsEnabled() bool {
	return c.RabbitMQURL != ""
}

// UsesDefaultSecret reports whether tokens are signed with DefaultJWTSecret.
func (c *Config) UsesDefaultSecret() bool {
	return c.JWTSecret == "" || c.JWTSecret == DefaultJWTSecret
}

// Validate rejects settings the server must not start with.
func (c *Config) Validate() error {
	if c.LogMode == "production" && c.UsesDefaultSecret() {
		return ErrDefaultSecret
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":3000")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "officeit.db")
	v.SetDefault("JWT_SECRET", DefaultJWTSecret)
	v.SetDefault("TOKEN_TTL", "24h")
	v.SetDefault("ADMIN_EMAILS", "")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USERNAME", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("MAIL_FROM", "no-reply@officeit.local")
	v.SetDefault("CONTACT_INBOX", "")
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("PUBLIC_URL", "http://localhost:3000")
	v.SetDefault("LOG_MODE", "development")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("FEATURED_AUDIT_SCHEDULE", "@every 10m")
}

// Load reads the configuration from the environment and, when file is not
// empty, from that config file. Environment variables win.
func Load(file string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	ttl, err := cast.ToDurationE(v.GetString("TOKEN_TTL"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}

	cfg := &Config{
		AppPort:               v.GetString("APP_PORT"),
		CORSOrigins:           v.GetString("CORS_ORIGINS"),
		DatabaseDriver:        strings.ToLower(v.GetString("DATABASE_DRIVER")),
		DatabaseDSN:           v.GetString("DATABASE_DSN"),
		JWTSecret:             v.GetString("JWT_SECRET"),
		TokenTTL:              ttl,
		AdminEmails:           splitList(v.GetString("ADMIN_EMAILS")),
		RabbitMQURL:           v.GetString("RABBITMQ_URL"),
		SMTPHost:              v.GetString("SMTP_HOST"),
		SMTPPort:              v.GetInt("SMTP_PORT"),
		SMTPUsername:          v.GetString("SMTP_USERNAME"),
		SMTPPassword:          v.GetString("SMTP_PASSWORD"),
		MailFrom:              v.GetString("MAIL_FROM"),
		ContactInbox:          v.GetString("CONTACT_INBOX"),
		UploadDir:             v.GetString("UPLOAD_DIR"),
		PublicURL:             v.GetString("PUBLIC_URL"),
		LogMode:               v.GetString("LOG_MODE"),
		LogFile:               v.GetString("LOG_FILE"),
		FeaturedAuditSchedule: v.GetString("FEATURED_AUDIT_SCHEDULE"),
	}
	if !strings.HasPrefix(cfg.AppPort, ":") && !strings.Contains(cfg.AppPort, ":") {
		cfg.AppPort = ":" + cfg.AppPort
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
