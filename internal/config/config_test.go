package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() Config {
	return Config{
		Env:    EnvLocal,
		DB:     DBConfig{Driver: StorageDriverPostgres, DatabaseURI: "postgres://localhost/bookmarks", Migrations: "migrations"},
		Server: ServerConfig{RunAddress: ":8080"},
		Auth:   AuthConfig{SessionTTL: 24 * time.Hour},
		Blob:   BlobConfig{Driver: BlobDriverFS, FSRoot: "data", Buckets: []string{"bookmarks"}},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid fs", mutate: func(c *Config) {}},
		{
			name: "valid minio",
			mutate: func(c *Config) {
				c.Blob.Driver = BlobDriverMinIO
				c.Blob.MinIO = MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s"}
			},
		},
		{name: "unknown env", mutate: func(c *Config) { c.Env = "staging" }, wantErr: true},
		{name: "no database", mutate: func(c *Config) { c.DB.DatabaseURI = "" }, wantErr: true},
		{name: "memory without database", mutate: func(c *Config) { c.DB = DBConfig{Driver: StorageDriverMemory} }},
		{name: "unknown storage", mutate: func(c *Config) { c.DB.Driver = "mysql" }, wantErr: true},
		{name: "no address", mutate: func(c *Config) { c.Server.RunAddress = "" }, wantErr: true},
		{name: "short ttl", mutate: func(c *Config) { c.Auth.SessionTTL = time.Second }, wantErr: true},
		{name: "unknown driver", mutate: func(c *Config) { c.Blob.Driver = "s3" }, wantErr: true},
		{name: "no buckets", mutate: func(c *Config) { c.Blob.Buckets = nil }, wantErr: true},
		{name: "fs without root", mutate: func(c *Config) { c.Blob.FSRoot = "" }, wantErr: true},
		{name: "minio without endpoint", mutate: func(c *Config) { c.Blob.Driver = BlobDriverMinIO }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"bookmarks", "avatars"}, splitList(" bookmarks, ,avatars "))
	assert.Nil(t, splitList(""))
}
