package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/splitbooks/splitbooks_app/internal/core/domain"
)

// Config holds application configuration. Party display names and PIN
// hashes live here and nowhere else: core logic only ever sees slots.
type Config struct {
	Port         string
	IsProduction bool

	// Storage selects the document adapter: "file" or "postgres".
	StorageBackend string
	DocumentPath   string
	DatabaseURL    string
	EnableDBCheck  bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	PartyAName    string
	PartyBName    string
	PartyAPINHash string
	PartyBPINHash string

	// ReportingCurrency is the unit of account all amounts normalize to.
	ReportingCurrency string
	// CurrencyCodes is the closed set of accepted currencies, reporting
	// currency included.
	CurrencyCodes []string

	// LoginRateLimit is a ulule/limiter formatted rate ("5-M" = 5/minute)
	// applied to the PIN gate.
	LoginRateLimit string
}

// PartyName resolves a slot's display name.
func (c *Config) PartyName(p domain.Party) string {
	if p == domain.PartyA {
		return c.PartyAName
	}
	return c.PartyBName
}

// PINHash resolves a slot's bcrypt PIN hash.
func (c *Config) PINHash(p domain.Party) string {
	if p == domain.PartyA {
		return c.PartyAPINHash
	}
	return c.PartyBPINHash
}

// CurrencyAllowed reports whether code is in the configured set.
func (c *Config) CurrencyAllowed(code string) bool {
	for _, known := range c.CurrencyCodes {
		if known == code {
			return true
		}
	}
	return false
}

// LoadConfig loads configuration from environment variables and a .env
// file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("STORAGE_BACKEND", "file")
	viper.SetDefault("DOCUMENT_PATH", "data/ledger.json")
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "splitbooks-app")
	viper.SetDefault("PARTY_A_NAME", "Party A")
	viper.SetDefault("PARTY_B_NAME", "Party B")
	viper.SetDefault("PARTY_A_PIN_HASH", "")
	viper.SetDefault("PARTY_B_PIN_HASH", "")
	viper.SetDefault("REPORTING_CURRENCY", "USD")
	viper.SetDefault("CURRENCY_CODES", "USD,ARS")
	viper.SetDefault("LOGIN_RATE_LIMIT", "10-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.StorageBackend = strings.ToLower(viper.GetString("STORAGE_BACKEND"))
	cfg.DocumentPath = viper.GetString("DOCUMENT_PATH")
	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	if cfg.StorageBackend == "postgres" && cfg.DatabaseURL == "" {
		log.Println("Warning: STORAGE_BACKEND is postgres but PGSQL_URL is not set.")
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.PartyAName = viper.GetString("PARTY_A_NAME")
	cfg.PartyBName = viper.GetString("PARTY_B_NAME")
	cfg.PartyAPINHash = viper.GetString("PARTY_A_PIN_HASH")
	cfg.PartyBPINHash = viper.GetString("PARTY_B_PIN_HASH")
	if cfg.PartyAPINHash == "" || cfg.PartyBPINHash == "" {
		log.Println("Warning: PARTY_A_PIN_HASH / PARTY_B_PIN_HASH not set. Login will fail for unset parties.")
	}

	cfg.ReportingCurrency = strings.ToUpper(viper.GetString("REPORTING_CURRENCY"))
	for _, code := range strings.Split(viper.GetString("CURRENCY_CODES"), ",") {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code != "" {
			cfg.CurrencyCodes = append(cfg.CurrencyCodes, code)
		}
	}
	if !cfg.CurrencyAllowed(cfg.ReportingCurrency) {
		cfg.CurrencyCodes = append(cfg.CurrencyCodes, cfg.ReportingCurrency)
	}

	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")

	return cfg, nil
}
