package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, limits, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	OTP     OTPConfig
	Pricing PricingConfig
	Batch   BatchConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Riyadh"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Riyadh"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"10800"` // 3*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// OTPConfig controls the phone verification flow.
// DevMode echoes the raw code in the send response; it must stay off
// whenever a real SMS gateway is wired.
type OTPConfig struct {
	CodeLength        int           `envconfig:"OTP_CODE_LENGTH" default:"6"`
	ExpiresIn         time.Duration `envconfig:"OTP_EXPIRES_IN" default:"5m"`
	MaxAttempts       int           `envconfig:"OTP_MAX_ATTEMPTS" default:"5"`
	SendWindow        time.Duration `envconfig:"OTP_SEND_WINDOW" default:"10m"`
	MaxSendsPerWindow int           `envconfig:"OTP_MAX_SENDS_PER_WINDOW" default:"3"`
	DevMode           bool          `envconfig:"OTP_DEV_MODE" default:"false"`
	SweepSchedule     string        `envconfig:"OTP_SWEEP_SCHEDULE" default:"*/10 * * * *"`
}

type PricingConfig struct {
	TaxRate string `envconfig:"PRICING_TAX_RATE" default:"0.15"`
}

type BatchConfig struct {
	MaxConcurrency int `envconfig:"BATCH_MAX_CONCURRENCY" default:"8"`
	MaxSize        int `envconfig:"BATCH_MAX_SIZE" default:"200"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// Missing .env is fine; real environments inject variables directly
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Riyadh",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Riyadh",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 10800,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "24h",
		},
		OTP: OTPConfig{
			CodeLength:        6,
			ExpiresIn:         5 * time.Minute,
			MaxAttempts:       5,
			SendWindow:        10 * time.Minute,
			MaxSendsPerWindow: 3,
			DevMode:           true,
			SweepSchedule:     "*/10 * * * *",
		},
		Pricing: PricingConfig{
			TaxRate: "0.15",
		},
		Batch: BatchConfig{
			MaxConcurrency: 8,
			MaxSize:        200,
		},
	}
}
