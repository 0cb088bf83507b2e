package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"storefront"}, args...)
}

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":8080", cfg.EndpointAddr)
	assert.Equal(t, StorageFile, cfg.StorageBackend)
	assert.Equal(t, "./data", cfg.FileStorageDir)
	assert.Equal(t, 24*time.Hour, cfg.SessionValidityDuration)
	assert.Equal(t, 50.0, cfg.ShippingFee)
	assert.Equal(t, 500.0, cfg.FreeShippingThreshold)
	assert.Empty(t, cfg.S3BaseEndpoint)
}

func TestParseFlags(t *testing.T) {
	setArgs(t, "-a", ":9090", "-m", StorageMemory, "-t", "48", "-fee", "75", "-free", "1000", "-e", "http://localhost:9000")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, ":9090", cfg.EndpointAddr)
	assert.Equal(t, StorageMemory, cfg.StorageBackend)
	assert.Equal(t, 48*time.Hour, cfg.SessionValidityDuration)
	assert.Equal(t, 75.0, cfg.ShippingFee)
	assert.Equal(t, 1000.0, cfg.FreeShippingThreshold)
	assert.Equal(t, "http://localhost:9000", cfg.S3BaseEndpoint)

	// untouched fields keep their defaults
	assert.Equal(t, "secretKey", cfg.SecretKey)
}

func TestParseFlags_IgnoresForeignFlags(t *testing.T) {
	setArgs(t, "-a", ":9090", "-test.v", "-unknown", "x")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, ":9090", cfg.EndpointAddr)
}

func TestLoadConfig_JsonThenFlags(t *testing.T) {
	file, err := os.CreateTemp(t.TempDir(), "config*.json")
	require.NoError(t, err)

	_, err = file.WriteString(`{
		"endpoint_addr": ":7070",
		"storage_backend": "postgres",
		"file_storage_dir": "/var/lib/storefront",
		"database_dsn": "postgres://u:p@h:5432/db",
		"secret_key": "jsonsecret",
		"session_validity_duration": "12h",
		"shipping_fee": 40,
		"free_shipping_threshold": 600,
		"s3_root_user": "root",
		"s3_root_password": "pw",
		"s3_bucket": "imgs",
		"s3_region": "eu-west-1",
		"s3_base_endpoint": "http://minio:9000"
	}`)
	require.NoError(t, err)
	require.NoError(t, file.Close())

	// flags win over the JSON overlay
	setArgs(t, "-c", file.Name(), "-a", ":6060")

	cfg := LoadConfig()
	assert.Equal(t, ":6060", cfg.EndpointAddr)
	assert.Equal(t, StoragePostgres, cfg.StorageBackend)
	assert.Equal(t, "/var/lib/storefront", cfg.FileStorageDir)
	assert.Equal(t, "postgres://u:p@h:5432/db", cfg.DatabaseDSN)
	assert.Equal(t, "jsonsecret", cfg.SecretKey)
	assert.Equal(t, 12*time.Hour, cfg.SessionValidityDuration)
	assert.Equal(t, 40.0, cfg.ShippingFee)
	assert.Equal(t, 600.0, cfg.FreeShippingThreshold)
	assert.Equal(t, "http://minio:9000", cfg.S3BaseEndpoint)
}

func TestParseJson_InvalidFilePanics(t *testing.T) {
	setArgs(t, "-c", "/does/not/exist.json")

	cfg := &Config{}
	cfg.LoadDefaults()
	assert.Panics(t, func() { parseJson(cfg) })
}
