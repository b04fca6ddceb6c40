package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Supabase SupabaseConfig
	Storage  StorageConfig
	Email    EmailConfig
	Redis    RedisConfig
	Admin    AdminConfig
	Contact  ContactConfig
}

type AppConfig struct {
	AppName       string
	Environment   string
	HTTPPort      string
	CORSOrigins   []string
	BodyLimit     int
	WorkspaceIdle time.Duration
	// SubmitRateLimit caps public form posts per client IP per minute. 0 disables it.
	SubmitRateLimit int
}

type DatabaseConfig struct {
	DatabaseURL string

	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	// SimpleProtocol is required behind transaction-mode poolers (PgBouncer/Supavisor).
	SimpleProtocol bool

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration

	// MigrationsDir overrides the embedded migration set when set.
	MigrationsDir string
}

type JWTConfig struct {
	Secret          string
	Audience        string
	AccessExpiresIn time.Duration
}

type SupabaseConfig struct {
	URL        string
	AnonKey    string
	ServiceKey string
}

func (c SupabaseConfig) Enabled() bool {
	return c.URL != "" && c.AnonKey != ""
}

// StorageBase is the object storage root, e.g. https://xyz.supabase.co/storage/v1.
func (c SupabaseConfig) StorageBase() string {
	if c.URL == "" {
		return ""
	}
	return strings.TrimRight(c.URL, "/") + "/storage/v1"
}

func (c SupabaseConfig) AuthBase() string {
	if c.URL == "" {
		return ""
	}
	return strings.TrimRight(c.URL, "/") + "/auth/v1"
}

type StorageConfig struct {
	Driver             string
	Bucket             string
	PublicBaseURL      string
	GCSCredentialsFile string
	UploadTimeout      time.Duration
	MaxUploadBytes     int64
}

type EmailConfig struct {
	ResendAPIKey      string
	From              string
	NotificationEmail string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

type AdminConfig struct {
	Email        string
	PasswordHash string
}

type ContactConfig struct {
	BackupFile string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	def := func(key, fallback string) string {
		if v := opt(key); v != "" {
			return v
		}
		return fallback
	}

	var invalid []string
	dur := func(key string, fallback time.Duration) time.Duration {
		raw := opt(key)
		if raw == "" {
			return fallback
		}
		d, err := time.ParseDuration(raw)
		if err != nil || d < 0 {
			invalid = append(invalid, key)
			return fallback
		}
		return d
	}
	num := func(key string, fallback int) int {
		raw := opt(key)
		if raw == "" {
			return fallback
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			invalid = append(invalid, key)
			return fallback
		}
		return v
	}
	flag := func(key string) bool {
		v, _ := strconv.ParseBool(opt(key))
		return v
	}

	cfg.App = AppConfig{
		AppName:       def("APP_NAME", "elextrio-site"),
		Environment:   def("APP_ENV", "development"),
		HTTPPort:      req("HTTP_PORT"),
		CORSOrigins:   splitList(opt("CORS_ALLOW_ORIGINS")),
		BodyLimit:     num("HTTP_BODY_LIMIT_MB", 12) * 1024 * 1024,
		WorkspaceIdle: dur("ADMIN_WORKSPACE_IDLE", 30*time.Minute),

		SubmitRateLimit: num("SUBMIT_RATE_LIMIT_PER_MIN", 10),
	}

	cfg.Database = DatabaseConfig{
		DatabaseURL:           opt("DATABASE_URL"),
		DBHost:                opt("DB_HOST"),
		DBPort:                def("DB_PORT", "5432"),
		DBName:                opt("DB_NAME"),
		DBUser:                opt("DB_USER"),
		DBPassword:            opt("DB_PASSWORD"),
		DBSSLMode:             def("DB_SSL_MODE", "require"),
		SimpleProtocol:        flag("DB_SIMPLE_PROTOCOL"),
		ConnectTimeout:        dur("DB_CONNECT_TIMEOUT", 10*time.Second),
		PoolMaxConns:          int32(num("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns:          int32(num("DB_POOL_MIN_CONNS", 0)),
		PoolMaxConnLifetime:   dur("DB_POOL_MAX_CONN_LIFETIME", 0),
		PoolMaxConnIdleTime:   dur("DB_POOL_MAX_CONN_IDLE_TIME", 0),
		PoolHealthCheckPeriod: dur("DB_POOL_HEALTH_CHECK_PERIOD", 0),
		MigrationsDir:         opt("MIGRATIONS_DIR"),
	}
	if cfg.Database.DatabaseURL == "" && cfg.Database.DBHost == "" {
		missing = append(missing, "DATABASE_URL or DB_HOST")
	}

	cfg.JWT = JWTConfig{
		Secret:          req("JWT_SECRET"),
		Audience:        def("JWT_AUDIENCE", "authenticated"),
		AccessExpiresIn: dur("JWT_ACCESS_EXPIRES_IN", time.Hour),
	}

	cfg.Supabase = SupabaseConfig{
		URL:        strings.TrimRight(opt("SUPABASE_URL"), "/"),
		AnonKey:    opt("SUPABASE_ANON_KEY"),
		ServiceKey: opt("SUPABASE_SERVICE_ROLE_KEY"),
	}

	cfg.Storage = StorageConfig{
		Driver:             strings.ToLower(def("STORAGE_DRIVER", "supabase")),
		Bucket:             def("STORAGE_BUCKET", "job_applications"),
		PublicBaseURL:      strings.TrimRight(opt("STORAGE_PUBLIC_BASE_URL"), "/"),
		GCSCredentialsFile: opt("GCS_CREDENTIALS_FILE"),
		UploadTimeout:      dur("STORAGE_UPLOAD_TIMEOUT", 60*time.Second),
		MaxUploadBytes:     int64(num("MAX_UPLOAD_MB", 5)) * 1024 * 1024,
	}
	if cfg.Storage.Driver != "supabase" && cfg.Storage.Driver != "gcs" {
		invalid = append(invalid, "STORAGE_DRIVER")
	}

	cfg.Email = EmailConfig{
		ResendAPIKey:      opt("RESEND_API_KEY"),
		From:              def("EMAIL_FROM", "Elextrio Contact Form <no-reply@elextrio.com>"),
		NotificationEmail: def("NOTIFICATION_EMAIL", "admin@elextrio.com"),
	}

	cfg.Redis = RedisConfig{
		Host:     def("REDIS_HOST", "localhost"),
		Port:     def("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD"),
		DB:       num("REDIS_DB", 0),
		TTL:      dur("REDIS_TTL", 10*time.Minute),
	}

	cfg.Admin = AdminConfig{
		Email:        strings.ToLower(opt("ADMIN_EMAIL")),
		PasswordHash: opt("ADMIN_PASSWORD_HASH"),
	}

	cfg.Contact = ContactConfig{
		BackupFile: def("CONTACT_BACKUP_FILE", "data/contact-messages.json"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
