package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	StorageProviderS3    = "s3"
	StorageProviderDrive = "drive"
)

type AppConfig struct {
	Server         ServerConfig   `yaml:"server"`
	DatabaseConfig DatabaseConfig `yaml:"databaseConfig"`
	RedisConfig    RedisConfig    `yaml:"redisConfig"`
	Storage        StorageConfig  `yaml:"storage"`
	JWT            JWTConfig      `yaml:"jwt"`
	Sharing        SharingConfig  `yaml:"sharing"`
	TTL            TTL            `yaml:"TTL"`
	Log            LogConfig      `yaml:"log"`
}

// LoadConfig : читает yaml, подставляя ${VAR} из окружения (.env подхватывается, если есть)
func LoadConfig(path string) (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("ошибка чтения .env: %w", err)
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseConfig(file)
}

// ParseConfig : разбирает содержимое yaml и проставляет значения по умолчанию
func ParseConfig(data []byte) (*AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (cfg *AppConfig) applyDefaults() {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.ShutdownTimeout == "" {
		cfg.Server.ShutdownTimeout = "5s"
	}
	if cfg.Storage.Provider == "" {
		cfg.Storage.Provider = StorageProviderS3
	}
	if cfg.JWT.AccessTokenTTL == "" {
		cfg.JWT.AccessTokenTTL = "15m"
	}
	if cfg.JWT.RefreshTokenTTL == "" {
		cfg.JWT.RefreshTokenTTL = "720h"
	}
	if cfg.TTL.Cache == 0 {
		cfg.TTL.Cache = 300
	}
	if cfg.TTL.PresignURL == 0 {
		cfg.TTL.PresignURL = 900
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	cfg.Sharing.PublicBaseURL = strings.TrimRight(cfg.Sharing.PublicBaseURL, "/")
}

func (cfg *AppConfig) validate() error {
	if cfg.DatabaseConfig.DSN == "" {
		return fmt.Errorf("не задан databaseConfig.dsn")
	}
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("не задан jwt.secret_key")
	}
	if cfg.Sharing.PublicBaseURL == "" {
		return fmt.Errorf("не задан sharing.public_base_url")
	}
	switch cfg.Storage.Provider {
	case StorageProviderS3:
		if cfg.Storage.S3.Bucket == "" {
			return fmt.Errorf("не задан storage.s3.bucket")
		}
	case StorageProviderDrive:
		if cfg.Storage.Drive.CredentialsFile == "" {
			return fmt.Errorf("не задан storage.drive.credentials_file")
		}
	default:
		return fmt.Errorf("неизвестный storage.provider: %s", cfg.Storage.Provider)
	}
	for _, ttl := range []string{cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL, cfg.Server.ShutdownTimeout} {
		if _, err := time.ParseDuration(ttl); err != nil {
			return fmt.Errorf("неверная длительность %q: %w", ttl, err)
		}
	}
	return nil
}

// ShutdownTimeout : уже проверено в validate
func (cfg *AppConfig) ShutdownTimeout() time.Duration {
	d, _ := time.ParseDuration(cfg.Server.ShutdownTimeout)
	return d
}

func (cfg *AppConfig) CacheTTL() time.Duration {
	return time.Duration(cfg.TTL.Cache) * time.Second
}

func (cfg *AppConfig) PresignTTL() time.Duration {
	return time.Duration(cfg.TTL.PresignURL) * time.Second
}

func SetupServer(serverAddress string) (*http.Server, *chi.Mux) {
	router := chi.NewRouter()
	server := &http.Server{
		Addr:              serverAddress,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return server, router
}

func SetupDatabase(cfg *DatabaseConfig) (*Database, error) {
	return NewDatabaseConnection("postgres", cfg)
}

func SetupRedis(cfg *RedisConfig) (*RedisClient, error) {
	return NewRedisClient(cfg)
}
