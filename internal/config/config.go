package config

import (
	"time"

	"github.com/heartmarshall/portfolio-backend/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Media     MediaConfig     `yaml:"media"`
	Sequence  SequenceConfig  `yaml:"sequence"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"5m"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// AuthConfig holds token verification settings for the authorization gate.
type AuthConfig struct {
	JWTSecret       string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"          env-required:"true"`
	JWTIssuer       string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"          env-default:"portfolio"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"    env-default:"24h"`
	AdminRole       string        `yaml:"admin_role"         env:"AUTH_ADMIN_ROLE"          env-default:"admin"`
	CookieName      string        `yaml:"cookie_name"        env:"AUTH_COOKIE_NAME"         env-default:"token"`
	AdminAPIKeyHash string        `yaml:"admin_api_key_hash" env:"AUTH_ADMIN_API_KEY_HASH"`
}

// MediaConfig holds object storage and upload settings.
type MediaConfig struct {
	Provider           string        `yaml:"provider"             env:"MEDIA_PROVIDER"              env-default:"cloudinary"`
	Folder             string        `yaml:"folder"               env:"MEDIA_FOLDER"                env-default:"projects"`
	CloudinaryCloud    string        `yaml:"cloudinary_cloud"     env:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryKey      string        `yaml:"cloudinary_key"       env:"CLOUDINARY_API_KEY"`
	CloudinarySecret   string        `yaml:"cloudinary_secret"    env:"CLOUDINARY_API_SECRET"`
	LocalDir           string        `yaml:"local_dir"            env:"MEDIA_LOCAL_DIR"             env-default:"./media"`
	PublicBaseURL      string        `yaml:"public_base_url"      env:"MEDIA_PUBLIC_BASE_URL"       env-default:"http://localhost:8080/media"`
	UploadConcurrency  int           `yaml:"upload_concurrency"   env:"MEDIA_UPLOAD_CONCURRENCY"    env-default:"4"`
	MaxInflightUploads int           `yaml:"max_inflight_uploads" env:"MEDIA_MAX_INFLIGHT_UPLOADS"  env-default:"16"`
	UploadTimeout      time.Duration `yaml:"upload_timeout"       env:"MEDIA_UPLOAD_TIMEOUT"        env-default:"2m"`
	MaxRequestBytes    int64         `yaml:"max_request_bytes"    env:"MEDIA_MAX_REQUEST_BYTES"     env-default:"209715200"`
	MaxFilesPerKind    int           `yaml:"max_files_per_kind"   env:"MEDIA_MAX_FILES_PER_KIND"    env-default:"20"`
}

// Media providers.
const (
	MediaProviderCloudinary = "cloudinary"
	MediaProviderLocal      = "local"
)

// SequenceConfig controls how record positions are kept consistent.
type SequenceConfig struct {
	Consistency      string `yaml:"consistency"          env:"SEQUENCE_CONSISTENCY"          env-default:"serialized"`
	LockKey          int64  `yaml:"lock_key"             env:"SEQUENCE_LOCK_KEY"             env-default:"7301"`
	CloseGapOnDelete bool   `yaml:"close_gap_on_delete"  env:"SEQUENCE_CLOSE_GAP_ON_DELETE"  env-default:"true"`
}

// Mode returns the configured consistency mode.
func (c SequenceConfig) Mode() domain.ConsistencyMode {
	return domain.ConsistencyMode(c.Consistency)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"http://localhost:5173"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,Accept"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig limits mutating requests per client.
type RateLimitConfig struct {
	MutationsPerMinute int           `yaml:"mutations_per_minute" env:"RATE_LIMIT_MUTATIONS_PER_MINUTE" env-default:"30"`
	CleanupInterval    time.Duration `yaml:"cleanup_interval"     env:"RATE_LIMIT_CLEANUP_INTERVAL"     env-default:"5m"`
}
