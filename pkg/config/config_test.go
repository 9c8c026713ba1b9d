package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.False(t, cfg.DB.AutoMigrate)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.True(t, cfg.Report.LoyaltyThreshold.Equal(decimal.NewFromInt(5_000_000)))
	assert.Equal(t, "America/Bogota", cfg.Report.Timezone)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("DB_PORT", "6543")
	v.Set("LOYALTY_THRESHOLD", "1000000.50")
	v.Set("MIGRATIONS_AUTO", "true")
	v.Set("HTTP_PORT", 9090)

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, "1000000.5", cfg.Report.LoyaltyThreshold.String())
}

func TestFromViper_UmbralInvalido(t *testing.T) {
	v := viper.New()
	v.Set("LOYALTY_THRESHOLD", "cinco millones")
	_, err := fromViper(v)
	assert.Error(t, err)

	v.Set("LOYALTY_THRESHOLD", "-1")
	_, err = fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "clientes", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/clientes?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro/db"
	assert.Equal(t, "postgres://otro/db", c.ConnectionString())
}

func TestReportConfig_Location(t *testing.T) {
	assert.Equal(t, "UTC", ReportConfig{Timezone: "No/Existe"}.Location().String())
	assert.Equal(t, "UTC", ReportConfig{Timezone: "UTC"}.Location().String())
}
