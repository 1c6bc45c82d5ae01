package config_test

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-tracker/pkg/config"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "s3cret")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, config.DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, 7*24*60, cfg.JWT.Expiration)
	assert.Equal(t, "0.0.0.0:5000", cfg.HTTP.Addr())
	assert.Equal(t, 256, cfg.QR.Size)
	assert.False(t, cfg.Swagger.Enabled)
}

func TestFromViper_EnvComoTexto(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "s3cret")
	v.Set("HTTP_PORT", "9090")
	v.Set("DB_DRIVER", "SQLite")
	v.Set("SQLITE_PATH", ":memory:")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, config.DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, ":memory:", cfg.DB.SQLitePath)
}

func TestFromViper_SinSecretoJWT(t *testing.T) {
	_, err := config.FromViper(viper.New())
	assert.Error(t, err)
}

func TestFromViper_DriverDesconocido(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "s3cret")
	v.Set("DB_DRIVER", "mongo")

	_, err := config.FromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/word", DBName: "inv", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/inv?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}

func TestDBConfig_Validate(t *testing.T) {
	assert.NoError(t, config.DBConfig{Driver: config.DriverSQLite}.Validate())
	assert.Error(t, config.DBConfig{Driver: ""}.Validate())
}

func TestDBConfig_ValidatePool(t *testing.T) {
	assert.Error(t, config.DBConfig{Driver: config.DriverPostgres, MaxConns: 2, MinConns: 5}.Validate())
	assert.NoError(t, config.DBConfig{Driver: config.DriverPostgres, MaxConns: 5, MinConns: 2}.Validate())
}
