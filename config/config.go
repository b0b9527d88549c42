package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultBcryptCost         = 10
	defaultTokenTTL           = time.Hour
	defaultMongoDatabase      = "fall-detection-db"
	defaultEventRetention     = 90 * 24 * time.Hour
	defaultNotifyRetention    = 30 * 24 * time.Hour
	defaultMetricsPath        = "/metrics"

	// productionMinSecretLength is the minimum signing key length accepted when env is production.
	productionMinSecretLength = 32
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	App AppConfig `json:"app" yaml:"app"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// RateLimit configures the redis token bucket guarding the public auth routes
	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	// ML points at the external fall-detection model service
	ML *MLConfig `json:"ml" yaml:"ml"`

	Maintenance *MaintenanceConfig `json:"maintenance" yaml:"maintenance"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type AppConfig struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
}

// MongoConfig defines the document database connection
type MongoConfig struct {
	URI            string        `json:"uri" yaml:"uri"`
	Database       string        `json:"database" yaml:"database"`
	ConnectTimeout time.Duration `json:"connectTimeout" yaml:"connectTimeout"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int           `json:"bcryptCost" yaml:"bcryptCost"`
	TokenTTL   time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
}

// RateLimitConfig defines the token bucket parameters
type RateLimitConfig struct {
	Enabled        bool          `json:"enabled" yaml:"enabled"`
	Addr           string        `json:"addr" yaml:"addr"`
	Password       string        `json:"password" yaml:"password"`
	DB             int           `json:"db" yaml:"db"`
	Prefix         string        `json:"prefix" yaml:"prefix"`
	Capacity       int           `json:"capacity" yaml:"capacity"`
	RefillTokens   int           `json:"refillTokens" yaml:"refillTokens"`
	RefillInterval time.Duration `json:"refillInterval" yaml:"refillInterval"`
	TTL            time.Duration `json:"ttl" yaml:"ttl"`
}

type MLConfig struct {
	ServiceURL string `json:"serviceUrl" yaml:"serviceUrl"`
}

// MaintenanceConfig defines the retention windows used by the cleanup sweeps
type MaintenanceConfig struct {
	EventRetention        time.Duration `json:"eventRetention" yaml:"eventRetention"`
	NotificationRetention time.Duration `json:"notificationRetention" yaml:"notificationRetention"`
}

type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// IsProduction reports whether the service runs with production hardening.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env.Env, "production") || strings.EqualFold(c.Env.Env, "prod")
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Example: MONGO_CONNECTTIMEOUT -> mongo.connectTimeout
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env failed")
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Mongo == nil {
		cfg.Mongo = &MongoConfig{}
	}
	if cfg.Mongo.Database == "" {
		cfg.Mongo.Database = defaultMongoDatabase
	}
	if cfg.Mongo.ConnectTimeout <= 0 {
		cfg.Mongo.ConnectTimeout = 10 * time.Second
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost <= 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = defaultTokenTTL
	}

	if cfg.Maintenance == nil {
		cfg.Maintenance = &MaintenanceConfig{}
	}
	if cfg.Maintenance.EventRetention <= 0 {
		cfg.Maintenance.EventRetention = defaultEventRetention
	}
	if cfg.Maintenance.NotificationRetention <= 0 {
		cfg.Maintenance.NotificationRetention = defaultNotifyRetention
	}

	if cfg.Metrics != nil && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = defaultMetricsPath
	}
}

// Validate rejects configurations the service must not start with.
func (c *Config) Validate() error {
	if c.Mongo == nil || strings.TrimSpace(c.Mongo.URI) == "" {
		return errors.New("mongo.uri must be provided")
	}

	secret := strings.TrimSpace(c.SecretKey.Access)
	if secret == "" {
		return errors.New("secretKey.access must be provided")
	}
	if c.IsProduction() && len(secret) < productionMinSecretLength {
		return errors.Errorf("secretKey.access must be at least %d bytes in production", productionMinSecretLength)
	}

	if c.RateLimit != nil && c.RateLimit.Enabled && c.RateLimit.Addr == "" {
		return errors.New("rateLimit.addr must be provided when rate limiting is enabled")
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
