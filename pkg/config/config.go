package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	DB       DBConfig
	JWT      JWTConfig
	HTTP     HTTPConfig
	Log      LogConfig
	Receipts ReceiptsConfig
	Stock    StockConfig
	Freight  FreightConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env          string // development, staging, production
	Name         string
	SeedDefaults bool // crea admin/admin y categorías por defecto al arrancar
}

// DBConfig configuración del archivo SQLite.
type DBConfig struct {
	Path          string
	BusyTimeoutMS int
	MaxOpenConns  int
}

// DSN devuelve el DSN para go-sqlite3: WAL, foreign keys y BEGIN IMMEDIATE en cada transacción.
func (c DBConfig) DSN() string {
	timeout := c.BusyTimeoutMS
	if timeout <= 0 {
		timeout = 5000
	}
	return fmt.Sprintf("file:%s?_busy_timeout=%d&_foreign_keys=on&_journal_mode=WAL&_txlock=immediate", c.Path, timeout)
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
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

// LogConfig nivel y directorio opcional de archivos de log.
type LogConfig struct {
	Level string
	Dir   string // vacío = solo stdout
}

// ReceiptsConfig carpeta donde se escriben los comprobantes PDF.
type ReceiptsConfig struct {
	Dir string
}

// StockConfig umbral de stock bajo para el dashboard.
type StockConfig struct {
	LowThreshold int
}

// FreightConfig parámetros de la estimación de flete.
type FreightConfig struct {
	FuelPrice  decimal.Decimal // R$ por litro
	KmPerLiter decimal.Decimal
	BaseFee    decimal.Decimal
	PerKg      decimal.Decimal
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_PATH, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:          getString(v, "APP_ENV", "development"),
			Name:         getString(v, "APP_NAME", "sys360"),
			SeedDefaults: getBool(v, "SEED_DEFAULTS", true),
		},
		DB: DBConfig{
			Path:          getString(v, "DB_PATH", "sys360.db"),
			BusyTimeoutMS: getInt(v, "DB_BUSY_TIMEOUT_MS", 5000),
			MaxOpenConns:  getInt(v, "DB_MAX_OPEN_CONNS", 1),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "sys360"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
			Dir:   getString(v, "LOG_DIR", ""),
		},
		Receipts: ReceiptsConfig{
			Dir: getString(v, "RECEIPTS_DIR", "comprovantes"),
		},
		Stock: StockConfig{
			LowThreshold: getInt(v, "STOCK_LOW_THRESHOLD", 5),
		},
		Freight: FreightConfig{
			FuelPrice:  getDecimal(v, "FREIGHT_FUEL_PRICE", "6.00"),
			KmPerLiter: getDecimal(v, "FREIGHT_KM_PER_LITER", "10"),
			BaseFee:    getDecimal(v, "FREIGHT_BASE_FEE", "0"),
			PerKg:      getDecimal(v, "FREIGHT_PER_KG", "0"),
		},
	}

	if cfg.Freight.KmPerLiter.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("config: FREIGHT_KM_PER_LITER debe ser mayor que cero")
	}
	if cfg.DB.MaxOpenConns <= 0 {
		cfg.DB.MaxOpenConns = 1
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

func getDecimal(v *viper.Viper, key, def string) decimal.Decimal {
	raw := def
	if v.IsSet(key) {
		raw = strings.ReplaceAll(strings.TrimSpace(v.GetString(key)), ",", ".")
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.RequireFromString(def)
	}
	return d
}
