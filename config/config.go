package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "5MB"
	defaultBackendBaseURL     = "http://localhost:8000/api/"
	defaultBackendTimeout     = 15 * time.Second
	defaultRefreshInterval    = 4 * time.Minute
	defaultUserAgent          = "pos-client/1.0"
	defaultTaxRate            = "0.13"
	defaultCurrencySymbol     = "₡"
	defaultLanguage           = "es"
	defaultTokenFile          = ".pos/tokens.json"
	defaultRedisPrefix        = "pos:client:"
	defaultQRSize             = 256
	defaultMetricsNamespace   = "pos_client"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

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

	// Backend is the REST collaborator every view talks to.
	Backend BackendConfig `json:"backend" yaml:"backend"`

	Session SessionConfig `json:"session" yaml:"session"`

	Storage StorageConfig `json:"storage" yaml:"storage"`

	Order OrderConfig `json:"order" yaml:"order"`

	// Receipt configures the printable bill and its QR code
	Receipt *ReceiptConfig `json:"receipt" yaml:"receipt"`

	Media MediaConfig `json:"media" yaml:"media"`

	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// BackendConfig defines how the REST backend is reached
type BackendConfig struct {
	// BaseURL must end with a slash, resource paths are joined onto it
	BaseURL   string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
	UserAgent string        `json:"userAgent" yaml:"userAgent"`
}

// SessionConfig defines session lifetime behaviour
type SessionConfig struct {
	// RefreshInterval is the proactive refresh period. Keep it well below the access token lifetime.
	RefreshInterval time.Duration `json:"refreshInterval" yaml:"refreshInterval"`
}

// StorageConfig selects where the session tokens and the language preference live
type StorageConfig struct {
	// Provider type: "file", "redis" or "memory"
	Provider string `json:"provider" yaml:"provider"`

	// Path of the JSON document for the file provider. Relative paths resolve against the home directory.
	Path string `json:"path" yaml:"path"`

	Redis RedisConfig `json:"redis" yaml:"redis"`
}

type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
	Prefix   string `json:"prefix" yaml:"prefix"`
}

// OrderConfig defines how totals are computed and shown
type OrderConfig struct {
	TaxRate         string `json:"taxRate" yaml:"taxRate"`
	CurrencySymbol  string `json:"currencySymbol" yaml:"currencySymbol"`
	DefaultLanguage string `json:"defaultLanguage" yaml:"defaultLanguage"`
}

// ReceiptConfig defines QR code generation for printed bills
type ReceiptConfig struct {
	QRSize               int    `json:"qrSize" yaml:"qrSize"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// MediaConfig restricts which blob URLs may be used as image sources
type MediaConfig struct {
	AllowedSchemes []string `json:"allowedSchemes" yaml:"allowedSchemes"`
}

type MetricsConfig struct {
	Enabled   bool   `json:"enabled" yaml:"enabled"`
	Namespace string `json:"namespace" yaml:"namespace"`
}

// Rate parses the configured tax rate, falling back to 13%.
func (c OrderConfig) Rate() decimal.Decimal {
	rate, err := decimal.NewFromString(strings.TrimSpace(c.TaxRate))
	if err != nil {
		return decimal.RequireFromString(defaultTaxRate)
	}

	return rate
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(currEnv, searchPaths)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// ENV_VAR_NAME overrides the matching YAML key, e.g. BACKEND_BASEURL -> backend.baseUrl
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
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
				mapstructure.StringToSliceHookFunc(","),
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

func findConfigFile(currEnv string, searchPaths []string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if !strings.HasSuffix(cfg.Backend.BaseURL, "/") {
		cfg.Backend.BaseURL += "/"
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Backend.BaseURL == "" {
		cfg.Backend.BaseURL = defaultBackendBaseURL
	}
	if cfg.Backend.Timeout <= 0 {
		cfg.Backend.Timeout = defaultBackendTimeout
	}
	if cfg.Backend.UserAgent == "" {
		cfg.Backend.UserAgent = defaultUserAgent
	}
	if cfg.Session.RefreshInterval <= 0 {
		cfg.Session.RefreshInterval = defaultRefreshInterval
	}
	if cfg.Storage.Provider == "" {
		cfg.Storage.Provider = "file"
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = defaultTokenFile
	}
	if cfg.Storage.Redis.Prefix == "" {
		cfg.Storage.Redis.Prefix = defaultRedisPrefix
	}
	if cfg.Order.TaxRate == "" {
		cfg.Order.TaxRate = defaultTaxRate
	}
	if cfg.Order.CurrencySymbol == "" {
		cfg.Order.CurrencySymbol = defaultCurrencySymbol
	}
	if cfg.Order.DefaultLanguage == "" {
		cfg.Order.DefaultLanguage = defaultLanguage
	}
	if cfg.Receipt == nil {
		cfg.Receipt = &ReceiptConfig{QRSize: defaultQRSize, ErrorCorrectionLevel: "M"}
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = defaultMetricsNamespace
	}
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
