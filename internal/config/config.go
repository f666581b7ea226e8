package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// rate limiting, the scan pipeline, AI platform credentials and graceful
// shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"3m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request.
		// Scans fan out to AI platforms with their own 30s deadlines, so this
		// must stay comfortably above them.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"2m" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"visibility" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// RateLimit caps how many scans a caller may start per window. A
	// comparison consumes two slots at once.
	RateLimit struct {
		// Limit is the number of scan slots per caller per window
		Limit int `env:"RATE_LIMIT_SCANS" env-default:"5" yaml:"limit"`
		// Window is the fixed rate-limit window length
		Window time.Duration `env:"RATE_LIMIT_WINDOW" env-default:"1h" yaml:"window"`
	} `yaml:"rateLimit"`

	// Scan contains per-step deadlines and output tuning for the scan pipeline
	Scan struct {
		// DNSTimeout bounds the domain resolution check
		DNSTimeout time.Duration `env:"SCAN_DNS_TIMEOUT" env-default:"5s" yaml:"dnsTimeout"`
		// SiteContextTimeout bounds the best-effort homepage fetch
		SiteContextTimeout time.Duration `env:"SCAN_SITE_CONTEXT_TIMEOUT" env-default:"5s" yaml:"siteContextTimeout"`
		// ClassifyTimeout bounds the best-effort business category classification
		ClassifyTimeout time.Duration `env:"SCAN_CLASSIFY_TIMEOUT" env-default:"10s" yaml:"classifyTimeout"`
		// QueryTimeout bounds AI query generation before the template fallback kicks in
		QueryTimeout time.Duration `env:"SCAN_QUERY_TIMEOUT" env-default:"20s" yaml:"queryTimeout"`
		// PlatformTimeout bounds each individual AI platform call
		PlatformTimeout time.Duration `env:"SCAN_PLATFORM_TIMEOUT" env-default:"30s" yaml:"platformTimeout"`
		// PreviewTimeout bounds the best-effort content preview generation
		PreviewTimeout time.Duration `env:"SCAN_PREVIEW_TIMEOUT" env-default:"25s" yaml:"previewTimeout"`
		// PersistTimeout bounds the best-effort report insert
		PersistTimeout time.Duration `env:"SCAN_PERSIST_TIMEOUT" env-default:"10s" yaml:"persistTimeout"`
		// SnippetLength caps the answer excerpt attached to each platform result, in runes
		SnippetLength int `env:"SCAN_SNIPPET_LENGTH" env-default:"280" yaml:"snippetLength"`
	} `yaml:"scan"`

	// Providers holds AI platform credentials. A platform with an empty key
	// still participates in scans and reports itself as not configured.
	Providers struct {
		Perplexity struct {
			// APIKey authenticates against the Perplexity chat completions API
			APIKey string `env:"PERPLEXITY_API_KEY" yaml:"apiKey"`
			// Model is the Perplexity model to query
			Model string `env:"PERPLEXITY_MODEL" env-default:"sonar" yaml:"model"`
		} `yaml:"perplexity"`
		Gemini struct {
			// APIKey authenticates against the Gemini generateContent API
			APIKey string `env:"GEMINI_API_KEY" yaml:"apiKey"`
			// Model is the Gemini model to query
			Model string `env:"GEMINI_MODEL" env-default:"gemini-2.0-flash" yaml:"model"`
		} `yaml:"gemini"`
		OpenAI struct {
			// APIKey authenticates against the OpenAI chat completions API.
			// The same credential powers query generation, classification and
			// content previews.
			APIKey string `env:"OPENAI_API_KEY" yaml:"apiKey"`
			// Model is the OpenAI model to query
			Model string `env:"OPENAI_MODEL" env-default:"gpt-4o-mini" yaml:"model"`
		} `yaml:"openai"`
	} `yaml:"providers"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
