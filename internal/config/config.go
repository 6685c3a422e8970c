package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string
	AppEnv  string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	JWTSigningKey string

	CheckoutBaseURL string
	CheckoutSecret  string
	// Fixed application fee collected before review.
	FeeAmountCents int64
	FeeCurrency    string
	SuccessURL     string
	CancelURL      string

	IdempTTLSecs int
	LogLevel     string
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func Load() *Config {
	_ = godotenv.Load()

	c := &Config{
		AppPort: getenv("APP_PORT", "8080"),
		AppEnv:  getenv("APP_ENV", "development"),

		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "loanmarket"),
		MySQLUser: getenv("MYSQL_USER", "loanmarket"),
		MySQLPass: getenv("MYSQL_PASS", "loanmarket"),

		RedisAddr: getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:   getenvInt("REDIS_DB", 0),

		JWTSigningKey: getenv("JWT_SIGNING_KEY", ""),

		CheckoutBaseURL: getenv("CHECKOUT_BASE_URL", ""),
		CheckoutSecret:  getenv("CHECKOUT_SECRET", ""),
		FeeAmountCents:  int64(getenvInt("FEE_AMOUNT_CENTS", 1000)),
		FeeCurrency:     getenv("FEE_CURRENCY", "usd"),
		SuccessURL:      getenv("CHECKOUT_SUCCESS_URL", "http://localhost:3000/payment/success"),
		CancelURL:       getenv("CHECKOUT_CANCEL_URL", "http://localhost:3000/payment/cancel"),

		IdempTTLSecs: getenvInt("IDEMPOTENCY_TTL_SECONDS", 300),
		LogLevel:     getenv("LOG_LEVEL", "info"),
	}
	return c
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.JWTSigningKey == "" {
		return errors.New("missing JWT_SIGNING_KEY")
	}
	if c.CheckoutBaseURL == "" {
		return errors.New("missing CHECKOUT_BASE_URL")
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
