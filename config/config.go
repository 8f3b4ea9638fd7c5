package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultStoreDriver        = StoreDriverMongo
	defaultMongoDatabase      = "contact-log-db"
	defaultMongoCollection    = "contacts"
	defaultMongoTimeout       = 10 * time.Second
	defaultSeedKey            = "contacts.yaml"
	defaultClientBaseURL      = "http://localhost:8080"
	defaultClientTimeout      = 10 * time.Second
)

// Supported store drivers
const (
	StoreDriverMongo    = "mongo"
	StoreDriverPostgres = "postgres"
)

// Supported event publisher providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
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

	API APIConfig `json:"api" yaml:"api"`

	Store StoreConfig `json:"store" yaml:"store"`

	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// PubSub configuration for contact lifecycle events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for vCard QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Seed SeedConfig `json:"seed" yaml:"seed"`

	Client ClientConfig `json:"client" yaml:"client"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// APIConfig controls behaviour of the contact resource
type APIConfig struct {
	// StrictNotFound answers 404 for update/delete of an unknown id instead of 200 with a null body
	StrictNotFound bool `json:"strictNotFound" yaml:"strictNotFound"`
}

// StoreConfig selects the persistence backend
type StoreConfig struct {
	// Driver is "mongo" (default) or "postgres"
	Driver string `json:"driver" yaml:"driver"`
}

// MongoConfig defines the document store connection
type MongoConfig struct {
	// URI is the connection string, normally supplied through MONGO_URI
	URI            string        `json:"uri" yaml:"uri"`
	Database       string        `json:"database" yaml:"database"`
	Collection     string        `json:"collection" yaml:"collection"`
	ConnectTimeout time.Duration `json:"connectTimeout" yaml:"connectTimeout"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// SeedConfig points at the fixture document used by the bulk seed.
// An empty BucketURL falls back to the embedded fixtures.
type SeedConfig struct {
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	Key       string `json:"key" yaml:"key"`
}

// ClientConfig is read by the terminal client
type ClientConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
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

	// Try to find and load the config file
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

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// Defaults returns a configuration holding only built-in defaults, for tools
// that run without a config file.
func Defaults() *Config {
	cfg := new(Config)
	applyDefaults(cfg)

	return cfg
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if strings.TrimSpace(cfg.Store.Driver) == "" {
		cfg.Store.Driver = defaultStoreDriver
	}
	cfg.Store.Driver = strings.ToLower(cfg.Store.Driver)

	if cfg.Mongo == nil {
		cfg.Mongo = &MongoConfig{}
	}
	if cfg.Mongo.Database == "" {
		cfg.Mongo.Database = defaultMongoDatabase
	}
	if cfg.Mongo.Collection == "" {
		cfg.Mongo.Collection = defaultMongoCollection
	}
	if cfg.Mongo.ConnectTimeout <= 0 {
		cfg.Mongo.ConnectTimeout = defaultMongoTimeout
	}

	if cfg.Seed.Key == "" {
		cfg.Seed.Key = defaultSeedKey
	}

	if cfg.Client.BaseURL == "" {
		cfg.Client.BaseURL = defaultClientBaseURL
	}
	if cfg.Client.Timeout <= 0 {
		cfg.Client.Timeout = defaultClientTimeout
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
