package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rotisserie/eris"
)

// Config is read from an optional YAML file and overridden by the environment.
type Config struct {
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	RDAP struct {
		// UserAgent is sent with every bootstrap and registry request
		UserAgent string `env:"RDAP_USER_AGENT" env-default:"PhishAbuseContactResolver" yaml:"userAgent"`
		// Timeout bounds a single HTTP exchange with a registry
		Timeout time.Duration `env:"RDAP_TIMEOUT" env-default:"30s" yaml:"timeout"`
		// BootstrapURL overrides the IANA bootstrap registry location
		BootstrapURL string `env:"RDAP_BOOTSTRAP_URL" yaml:"bootstrapURL"`
		// BootstrapCacheDir keeps bootstrap files on disk between runs, memory only when empty
		BootstrapCacheDir string `env:"RDAP_BOOTSTRAP_CACHE_DIR" yaml:"bootstrapCacheDir"`
		// RateLimit is the number of registry requests per second, 0 disables limiting
		RateLimit float64 `env:"RDAP_RATE_LIMIT" env-default:"0" yaml:"rateLimit"`
		RateBurst int     `env:"RDAP_RATE_BURST" env-default:"1" yaml:"rateBurst"`
	} `yaml:"rdap"`

	GeoIP struct {
		// ASNDatabase is the path of a GeoLite2-ASN database, optional
		ASNDatabase string `env:"GEOIP_ASN_DB_PATH" yaml:"asnDatabase"`
	} `yaml:"geoip"`

	HTTP struct {
		Addr              string        `env:"HTTP_ADDR" env-default:"127.0.0.1:8888" yaml:"addr"`
		MetricsPath       string        `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"30s" yaml:"shutdownTimeout"`
	} `yaml:"http"`

	// EnrichTimeout is the deadline given to the enrichment of one report
	EnrichTimeout time.Duration `env:"ENRICH_TIMEOUT" env-default:"2m" yaml:"enrichTimeout"`
}

// Load reads configPath when it is not empty, the environment only otherwise.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, eris.Wrap(err, "could not read config from environment")
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, eris.Wrapf(err, "could not read config %s", configPath)
	}

	return &cfg, nil
}
