package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Store    StoreConfig    `yaml:"store"`
	Auth     AuthConfig     `yaml:"auth"`
	Mail     MailConfig     `yaml:"mail"`
	Notify   NotifyConfig   `yaml:"notify"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,OPTIONS"`
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
	RateLimit       int           `yaml:"rate_limit"       env:"SERVER_RATE_LIMIT"       env-default:"120"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

const (
	StoreBackendPostgres = "postgres"
	StoreBackendSheet    = "sheet"
)

// StoreConfig selects the record store backend.
type StoreConfig struct {
	// Backend is "postgres" or "sheet".
	Backend string `yaml:"backend"   env:"STORE_BACKEND"   env-default:"postgres"`
	// SheetDir holds one <table>.csv file per table for the sheet backend.
	SheetDir string `yaml:"sheet_dir" env:"STORE_SHEET_DIR" env-default:"./data"`
}

// AuthConfig holds bearer-token verification settings. Tokens are issued by
// the identity provider in front of the portal.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"incident-portal"`
}

const (
	MailSecurityTLS      = "tls"
	MailSecuritySTARTTLS = "starttls"
)

// MailConfig holds SMTP submission settings for reminder e-mails.
type MailConfig struct {
	Host     string `yaml:"host"     env:"MAIL_SMTP_HOST"`
	Port     int    `yaml:"port"     env:"MAIL_SMTP_PORT"`
	Security string `yaml:"security" env:"MAIL_SECURITY" env-default:"tls"`
	// Sender is the authenticated sender identity; it is also the From address.
	Sender   string        `yaml:"sender"    env:"MAIL_SENDER"`
	Password string        `yaml:"password"  env:"MAIL_PASSWORD"`
	FromName string        `yaml:"from_name" env:"MAIL_FROM_NAME" env-default:"Action Plan"`
	Timeout  time.Duration `yaml:"timeout"   env:"MAIL_TIMEOUT"   env-default:"30s"`

	// AdminRecipientsRaw is a comma-separated list of observers copied on
	// every reminder.
	AdminRecipientsRaw string `yaml:"admin_recipients" env:"MAIL_ADMIN_RECIPIENTS"`
	SubjectPrefix      string `yaml:"subject_prefix"   env:"MAIL_SUBJECT_PREFIX" env-default:"Overdue blocking actions"`

	// AdminRecipients is parsed from AdminRecipientsRaw during validation.
	AdminRecipients []string `yaml:"-" env:"-"`
}

// NotifyConfig holds settings for the overdue reminder run.
type NotifyConfig struct {
	Timezone   string        `yaml:"timezone"    env:"NOTIFY_TIMEZONE"    env-default:"America/Sao_Paulo"`
	AppURL     string        `yaml:"app_url"     env:"NOTIFY_APP_URL"`
	DryRun     bool          `yaml:"dry_run"     env:"NOTIFY_DRY_RUN"     env-default:"false"`
	RunTimeout time.Duration `yaml:"run_timeout" env:"NOTIFY_RUN_TIMEOUT" env-default:"10m"`

	// Location is resolved from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// CatalogConfig holds blocking-action catalog cache settings.
type CatalogConfig struct {
	CacheTTL  time.Duration `yaml:"cache_ttl"  env:"CATALOG_CACHE_TTL"  env-default:"5m"`
	CacheSize int           `yaml:"cache_size" env:"CATALOG_CACHE_SIZE" env-default:"16"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
