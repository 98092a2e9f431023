package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 9000, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:9000", cfg.HTTP.Addr())
	assert.Equal(t, 50*1024*1024, cfg.HTTP.BodyLimit())
	assert.Equal(t, StoreDriverPostgres, cfg.DB.Driver)
	assert.Equal(t, "admin", cfg.Seed.AdminUsername)
	assert.Equal(t, "admin123", cfg.Seed.AdminPassword)
	assert.Positive(t, cfg.Security.HashConcurrency)
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("STORE_DRIVER", "MEMORY")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.HTTP.Port)
	assert.Equal(t, StoreDriverMemory, cfg.DB.Driver)
	assert.Equal(t, 4, cfg.Security.BcryptCost)
	assert.Equal(t, "production", cfg.App.Env)
}

func TestLoad_DriverDesconocido(t *testing.T) {
	v := viper.New()
	v.Set("STORE_DRIVER", "mongo")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestLoad_EnteroInvalidoUsaDefecto(t *testing.T) {
	v := viper.New()
	v.Set("DB_PORT", "no-es-numero")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 5432, cfg.DB.Port)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w/rd", DBName: "usuarios", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw%2Frd@db:5432/usuarios?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://u:p@host:6543/x"
	assert.Equal(t, "postgres://u:p@host:6543/x", c.ConnectionString())
}
