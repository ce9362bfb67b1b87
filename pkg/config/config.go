package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/Bilal2025D/Fatora/pkg/validation"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Log     LogConfig
	Billing BillingConfig
	Company CompanyConfig
	Docs    DocsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	Locale   string // etiqueta BCP 47 usada para montos y fechas (ej. "ar-DZ", "fr-DZ")
	Currency string // código ISO 4217 (DZD por defecto)
	SeedDemo bool   // carga los datos de demostración al arrancar
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig nivel y destino opcional del log.
type LogConfig struct {
	Level string
	File  string // vacío = solo stdout
}

// BillingConfig valores por defecto del formulario de facturas.
type BillingConfig struct {
	InvoicePrefix  string
	DueDays        int
	DefaultTaxRate decimal.Decimal // porcentaje, 0–100
}

// CompanyConfig datos del emisor impresos en facturas y recibos.
type CompanyConfig struct {
	Name    string
	Address string
	Phone   string
	Email   string
	TaxID   string
}

// DocsConfig ubicación del swagger.json servido en /docs.
type DocsConfig struct {
	Path string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, INVOICE_PREFIX, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return FromViper(v)
}

// FromViper construye la configuración desde una instancia de Viper ya cargada.
func FromViper(v *viper.Viper) (*Config, error) {
	taxRate, err := decimal.NewFromString(getString(v, "DEFAULT_TAX_RATE", "19"))
	if err != nil {
		return nil, fmt.Errorf("DEFAULT_TAX_RATE inválido: %w", err)
	}
	if taxRate.IsNegative() || taxRate.GreaterThan(decimal.NewFromInt(100)) {
		return nil, fmt.Errorf("DEFAULT_TAX_RATE fuera de rango (0–100): %s", taxRate)
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "fatora"),
			Locale:   getString(v, "APP_LOCALE", "ar-DZ"),
			Currency: getString(v, "APP_CURRENCY", "DZD"),
			SeedDemo: getBool(v, "SEED_DEMO_DATA", true),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
			File:  getString(v, "LOG_FILE", ""),
		},
		Billing: BillingConfig{
			InvoicePrefix:  strings.TrimSpace(getString(v, "INVOICE_PREFIX", "INV")),
			DueDays:        getInt(v, "INVOICE_DUE_DAYS", 15),
			DefaultTaxRate: taxRate,
		},
		Company: CompanyConfig{
			Name:    getString(v, "COMPANY_NAME", "Fatora"),
			Address: getString(v, "COMPANY_ADDRESS", ""),
			Phone:   getString(v, "COMPANY_PHONE", ""),
			Email:   getString(v, "COMPANY_EMAIL", ""),
			TaxID:   getString(v, "COMPANY_TAX_ID", ""),
		},
		Docs: DocsConfig{
			Path: getString(v, "DOCS_PATH", "./docs/swagger.json"),
		},
	}
	if !validation.IsValidInvoicePrefix(cfg.Billing.InvoicePrefix) {
		return nil, fmt.Errorf("INVOICE_PREFIX inválido %q: solo mayúsculas y dígitos, empezando por letra (ej. INV, FAC2)", cfg.Billing.InvoicePrefix)
	}
	if cfg.Billing.DueDays < 0 {
		return nil, fmt.Errorf("INVOICE_DUE_DAYS no puede ser negativo: %d", cfg.Billing.DueDays)
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
