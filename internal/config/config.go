package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the runtime settings of the bitcoinswitch service.
//
// Every field is driven by environment variables (a local .env file is autoloaded by
// cmd/api). Defaults are tuned for a local LNbits + DynamoDB Local setup.
type Config struct {
	Port          int
	PublicBaseURL string

	RateTolerance float64
	RateValidity  time.Duration
	RateCacheTTL  time.Duration
	HTTPTimeout   time.Duration

	TaprootEnabled       bool
	TaprootAPIKey        string
	TaprootPaymentExpiry time.Duration

	MaxCommentLength int
	DispatchAttempts int
	DispatchBackoff  time.Duration

	LNbitsURL          string
	WebhookSecret      string
	PaymentGatewayMock bool

	RedisURL                  string
	RedisConfirmationsChannel string

	CreateTables bool
}

const (
	defaultPort                     = 8080
	defaultPublicBaseURL            = "http://localhost:8080"
	defaultRateTolerance            = 0.05
	defaultRateValidityMinutes      = 5
	defaultRateRefreshSeconds       = 60
	defaultHTTPTimeout              = 10 * time.Second
	defaultTaprootPaymentExpirySecs = 3600
	defaultMaxCommentLength         = 639
	defaultDispatchAttempts         = 3
	defaultDispatchBackoff          = time.Second
	defaultLNbitsURL                = "http://localhost:5000"
	defaultConfirmationsChannel     = "bitcoinswitch:confirmations"
)

// Load reads the configuration from the process environment.
func Load() Config {
	return Config{
		Port:          GetEnvInt("PORT", defaultPort),
		PublicBaseURL: strings.TrimRight(GetEnv("PUBLIC_BASE_URL", defaultPublicBaseURL), "/"),

		RateTolerance: GetEnvFloat("BITCOINSWITCH_RATE_TOLERANCE", defaultRateTolerance),
		RateValidity:  time.Duration(GetEnvInt("BITCOINSWITCH_RATE_VALIDITY_MINUTES", defaultRateValidityMinutes)) * time.Minute,
		RateCacheTTL:  time.Duration(GetEnvInt("BITCOINSWITCH_RATE_REFRESH_SECONDS", defaultRateRefreshSeconds)) * time.Second,
		HTTPTimeout:   GetEnvDuration("BITCOINSWITCH_HTTP_TIMEOUT", defaultHTTPTimeout),

		TaprootEnabled:       GetEnvBool("TAPROOT_ASSETS_ENABLED", false),
		TaprootAPIKey:        GetEnv("TAPROOT_API_KEY", ""),
		TaprootPaymentExpiry: time.Duration(GetEnvInt("BITCOINSWITCH_TAPROOT_PAYMENT_EXPIRY", defaultTaprootPaymentExpirySecs)) * time.Second,

		MaxCommentLength: GetEnvInt("BITCOINSWITCH_MAX_COMMENT_LENGTH", defaultMaxCommentLength),
		DispatchAttempts: GetEnvInt("BITCOINSWITCH_DISPATCH_ATTEMPTS", defaultDispatchAttempts),
		DispatchBackoff:  GetEnvDuration("BITCOINSWITCH_DISPATCH_BACKOFF", defaultDispatchBackoff),

		LNbitsURL:          strings.TrimRight(GetEnv("LNBITS_URL", defaultLNbitsURL), "/"),
		WebhookSecret:      GetEnv("WEBHOOK_SECRET", ""),
		PaymentGatewayMock: IsMockEnabled(),

		RedisURL:                  GetEnv("REDIS_URL", ""),
		RedisConfirmationsChannel: GetEnv("REDIS_CONFIRMATIONS_CHANNEL", defaultConfirmationsChannel),

		CreateTables: GetEnvBool("DYNAMODB_CREATE_TABLES", false),
	}
}

// GetEnv gets an environment variable with a default value
func GetEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt gets an integer environment variable with a default value
func GetEnvInt(key string, defaultValue int) int {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func GetEnvFloat(key string, defaultValue float64) float64 {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// GetEnvBool gets a boolean environment variable with a default value
func GetEnvBool(key string, defaultValue bool) bool {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// GetEnvDuration accepts Go duration strings ("10s", "1m") or a bare number of seconds.
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	if parsed, err := time.ParseDuration(value); err == nil {
		return parsed
	}
	if secs, err := strconv.ParseFloat(value, 64); err == nil {
		return time.Duration(secs * float64(time.Second))
	}
	return defaultValue
}

// IsMockEnabled reports whether the external payment node should be bypassed.
func IsMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "LNBITS_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
