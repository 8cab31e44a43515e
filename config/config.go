package config

import (
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
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
	defaultDotEnvFile         = ".env"
	defaultMaxRequestBodySize = "100KB"
	defaultHTTPPort           = 3000
	defaultPostgresPort       = "5432"
	defaultSSLMode            = "disable"
	defaultMaxOpenConns       = 25
	defaultMaxIdleConns       = 10
	defaultConnMaxLifetime    = 5 * time.Minute
	defaultFoodCacheTTL       = 10 * time.Minute

	DefaultCredentialDigest     = "sha512"
	DefaultCredentialIterations = 120000
	DefaultCredentialKeyLength  = 64
	DefaultCredentialSaltLength = 16
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

	Postgres *PostgresConfig `json:"postgres" yaml:"postgres"`

	// Credential holds the parameters used for newly encoded passwords.
	// Stored credentials carry their own parameters and stay verifiable when these change.
	Credential *CredentialConfig `json:"credential" yaml:"credential"`

	// Redis is optional; an empty address disables the catalog cache.
	Redis *RedisConfig `json:"redis" yaml:"redis"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PostgresConfig describes the primary connection, pool sizing and optional read replicas.
type PostgresConfig struct {
	ConnectionConfig `mapstructure:",squash"`

	DBName          string        `json:"dbName" yaml:"dbName"`
	SSLMode         string        `json:"sslMode" yaml:"sslMode"`
	MaxOpenConns    int           `json:"maxOpenConns" yaml:"maxOpenConns"`
	MaxIdleConns    int           `json:"maxIdleConns" yaml:"maxIdleConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime" yaml:"connMaxLifetime"`
	AutoMigrate     bool          `json:"autoMigrate" yaml:"autoMigrate"`

	// SlowQueryThreshold marks queries logged as slow; zero disables slow-query logging.
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`

	// Replicas are read from POSTGRES_REPLICAS_{n}_* variables, see buildReplicasFromEnv.
	Replicas []ConnectionConfig `json:"-" yaml:"-" mapstructure:"-"`
}

// ConnectionConfig is a single PostgreSQL endpoint.
type ConnectionConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     string `json:"port" yaml:"port"`
	UserName string `json:"userName" yaml:"userName"`
	Password string `json:"password" yaml:"password"`
}

// CredentialConfig defines the password key-derivation parameters
type CredentialConfig struct {
	Digest     string `json:"digest" yaml:"digest"`
	Iterations int    `json:"iterations" yaml:"iterations"`
	KeyLength  int    `json:"keyLength" yaml:"keyLength"`
	SaltLength int    `json:"saltLength" yaml:"saltLength"`
}

// RedisConfig describes the cache used for catalog lookups.
type RedisConfig struct {
	Addr     string        `json:"addr" yaml:"addr"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	FoodTTL  time.Duration `json:"foodTTL" yaml:"foodTTL"`
}

// Enabled reports whether a cache address is configured.
func (r *RedisConfig) Enabled() bool {
	return r != nil && strings.TrimSpace(r.Addr) != ""
}

// URL renders the primary connection as a postgres:// URL.
func (p *PostgresConfig) URL() string {
	return p.urlFor(p.ConnectionConfig)
}

// ReplicaURLs renders every configured replica using the primary's database and SSL settings.
func (p *PostgresConfig) ReplicaURLs() []string {
	urls := make([]string, 0, len(p.Replicas))
	for _, replica := range p.Replicas {
		urls = append(urls, p.urlFor(replica))
	}

	return urls
}

func (p *PostgresConfig) urlFor(conn ConnectionConfig) string {
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(conn.Host, conn.Port),
		Path:   "/" + p.DBName,
	}
	if conn.UserName != "" {
		u.User = url.UserPassword(conn.UserName, conn.Password)
	}

	query := url.Values{}
	query.Set("sslmode", p.SSLMode)
	u.RawQuery = query.Encode()

	return u.String()
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

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Only variables addressing a top-level section of the YAML file are merged,
	// so unrelated process variables (PATH, HOME, ...) never reach the decoder.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			key := canonicalizeEnvKey(k, existingConfigMap)
			if !hasKnownRoot(key, existingConfigMap) {
				return "", nil
			}

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
	if _, err := os.Stat(defaultDotEnvFile); err == nil {
		if err := godotenv.Load(defaultDotEnvFile); err != nil {
			return nil, errors.Wrap(err, "load .env file")
		}
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = defaultHTTPPort
	}

	if cfg.Postgres == nil {
		cfg.Postgres = &PostgresConfig{}
	}
	if cfg.Postgres.Port == "" {
		cfg.Postgres.Port = defaultPostgresPort
	}
	if cfg.Postgres.SSLMode == "" {
		cfg.Postgres.SSLMode = defaultSSLMode
	}
	if cfg.Postgres.MaxOpenConns == 0 {
		cfg.Postgres.MaxOpenConns = defaultMaxOpenConns
	}
	if cfg.Postgres.MaxIdleConns == 0 {
		cfg.Postgres.MaxIdleConns = defaultMaxIdleConns
	}
	if cfg.Postgres.ConnMaxLifetime == 0 {
		cfg.Postgres.ConnMaxLifetime = defaultConnMaxLifetime
	}

	if cfg.Redis == nil {
		cfg.Redis = &RedisConfig{}
	}
	if cfg.Redis.FoodTTL == 0 {
		cfg.Redis.FoodTTL = defaultFoodCacheTTL
	}

	if cfg.Credential == nil {
		cfg.Credential = &CredentialConfig{}
	}
	if cfg.Credential.Digest == "" {
		cfg.Credential.Digest = DefaultCredentialDigest
	}
	if cfg.Credential.Iterations == 0 {
		cfg.Credential.Iterations = DefaultCredentialIterations
	}
	if cfg.Credential.KeyLength == 0 {
		cfg.Credential.KeyLength = DefaultCredentialKeyLength
	}
	if cfg.Credential.SaltLength == 0 {
		cfg.Credential.SaltLength = DefaultCredentialSaltLength
	}
}

func hasKnownRoot(key string, existing map[string]any) bool {
	root, _, _ := strings.Cut(key, ".")
	_, ok := existing[root]

	return ok && strings.Contains(key, ".")
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
// Format: POSTGRES_REPLICAS_{index}_{HOST|PORT|USERNAME|PASSWORD}, indexes starting at 0.
func buildReplicasFromEnv() []ConnectionConfig {
	var replicas []ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
