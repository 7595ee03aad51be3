package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath = ".env"

	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"

	BlobDriverMinIO = "minio"
	BlobDriverFS    = "fs"
)

type Config struct {
	Env    string
	DB     DBConfig
	Server ServerConfig
	Auth   AuthConfig
	Blob   BlobConfig
}

type DBConfig struct {
	Driver      string `env:"STORAGE_DRIVER"`
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type ServerConfig struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type AuthConfig struct {
	SessionTTL time.Duration `env:"SESSION_TTL"`
}

type BlobConfig struct {
	Driver  string   `env:"BLOB_DRIVER"`
	FSRoot  string   `env:"BLOB_FS_ROOT"`
	Buckets []string `env:"BLOB_BUCKETS"`
	MinIO   MinIOConfig
}

type MinIOConfig struct {
	Endpoint  string `env:"MINIO_ENDPOINT"`
	AccessKey string `env:"MINIO_ACCESS_KEY"`
	SecretKey string `env:"MINIO_SECRET_KEY"`
	UseSSL    bool   `env:"MINIO_USE_SSL"`
}

func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Env, validation.Required, validation.In(EnvLocal, EnvDev, EnvProd)),
	); err != nil {
		return err
	}
	if err := c.DB.Validate(); err != nil {
		return fmt.Errorf("db: %w", err)
	}
	if err := validation.ValidateStruct(&c.Server,
		validation.Field(&c.Server.RunAddress, validation.Required),
	); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := validation.ValidateStruct(&c.Auth,
		validation.Field(&c.Auth.SessionTTL, validation.Required, validation.Min(time.Minute)),
	); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	if err := c.Blob.Validate(); err != nil {
		return fmt.Errorf("blob: %w", err)
	}
	return nil
}

func (c *DBConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Driver, validation.Required, validation.In(StorageDriverPostgres, StorageDriverMemory)),
	); err != nil {
		return err
	}
	if c.Driver == StorageDriverMemory {
		return nil
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.DatabaseURI, validation.Required),
		validation.Field(&c.Migrations, validation.Required),
	)
}

func (c *BlobConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Driver, validation.Required, validation.In(BlobDriverMinIO, BlobDriverFS)),
		validation.Field(&c.Buckets, validation.Required),
	); err != nil {
		return err
	}
	if c.Driver == BlobDriverFS {
		return validation.ValidateStruct(c, validation.Field(&c.FSRoot, validation.Required))
	}
	return validation.ValidateStruct(&c.MinIO,
		validation.Field(&c.MinIO.Endpoint, validation.Required),
		validation.Field(&c.MinIO.AccessKey, validation.Required),
		validation.Field(&c.MinIO.SecretKey, validation.Required),
	)
}

func setDefaults() {
	viper.SetDefault("app_env", EnvLocal)
	viper.SetDefault("run_address", ":8080")
	viper.SetDefault("storage_driver", StorageDriverPostgres)
	viper.SetDefault("migrations_path", "migrations")
	viper.SetDefault("session_ttl", "24h")
	viper.SetDefault("blob_driver", BlobDriverFS)
	viper.SetDefault("blob_fs_root", "data/blobs")
	viper.SetDefault("blob_buckets", "bookmarks")
}

// Load читает .env (если есть) и переменные окружения.
func Load() (*Config, error) {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	setDefaults()

	config := Config{
		Env: viper.GetString("app_env"),
		DB: DBConfig{
			Driver:      viper.GetString("storage_driver"),
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  viper.GetString("migrations_path"),
		},
		Server: ServerConfig{RunAddress: viper.GetString("run_address")},
		Auth:   AuthConfig{SessionTTL: viper.GetDuration("session_ttl")},
		Blob: BlobConfig{
			Driver:  viper.GetString("blob_driver"),
			FSRoot:  viper.GetString("blob_fs_root"),
			Buckets: splitList(viper.GetString("blob_buckets")),
			MinIO: MinIOConfig{
				Endpoint:  viper.GetString("minio_endpoint"),
				AccessKey: viper.GetString("minio_access_key"),
				SecretKey: viper.GetString("minio_secret_key"),
				UseSSL:    viper.GetBool("minio_use_ssl"),
			},
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &config, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalln(err)
	}
	return cfg
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
