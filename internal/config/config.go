package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	CRM      CRMConfig      `yaml:"crm"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds JWT and demo-login settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"minicrm"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"24h"`
	// DemoUsersRaw is a comma-separated allowlist of demo login emails.
	DemoUsersRaw string `yaml:"demo_users" env:"AUTH_DEMO_USERS" env-default:"demo@example.com,admin@crm.com"`
	// LoginRatePerMinute caps login attempts per client IP.
	LoginRatePerMinute int `yaml:"login_rate_per_minute" env:"AUTH_LOGIN_RATE_PER_MINUTE" env-default:"10"`
}

// CRMConfig holds segmentation and reconciliation policy settings.
type CRMConfig struct {
	// HighValueThreshold is the total_spend above which a customer is
	// classified as high-value.
	HighValueThreshold float64 `yaml:"high_value_threshold" env:"CRM_HIGH_VALUE_THRESHOLD" env-default:"30000"`
	// RecentWindowDays bounds the strict recently-active segment variant.
	RecentWindowDays int `yaml:"recent_window_days" env:"CRM_RECENT_WINDOW_DAYS" env-default:"30"`
	// DeactivationOrderPolicy names what happens to a customer's orders on
	// deactivation: "retain" or "purge".
	DeactivationOrderPolicy string `yaml:"deactivation_order_policy" env:"CRM_DEACTIVATION_ORDER_POLICY" env-default:"retain"`
	// MaxCampaignsPerActor caps how many campaigns one creator may own.
	MaxCampaignsPerActor int `yaml:"max_campaigns_per_actor" env:"CRM_MAX_CAMPAIGNS_PER_ACTOR" env-default:"200"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// DemoUsers returns the parsed demo-login email allowlist.
func (c AuthConfig) DemoUsers() []string {
	var users []string
	for _, e := range strings.Split(c.DemoUsersRaw, ",") {
		if e = strings.TrimSpace(e); e != "" {
			users = append(users, e)
		}
	}
	return users
}

// RecentWindow returns the recently-active window as a duration.
func (c CRMConfig) RecentWindow() time.Duration {
	return time.Duration(c.RecentWindowDays) * 24 * time.Hour
}
