package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"wallet-ledger/internal/ledger"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Events   EventsConfig
	Worker   WorkerConfig
	Upstream UpstreamConfig
	Wallet   WalletConfig
}
type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Pretty bool   `env:"LOG_PRETTY" envDefault:"true"`
}
type DatabaseConfig struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	Name            string        `env:"DB_NAME" envDefault:"wallet"`
	SSLMode         string        `env:"DB_SSLMODE" envDefault:"disable"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
}

// URL returns the postgres connection string for pgx and golang-migrate.
func (c DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

type RedisConfig struct {
	Enabled  bool          `env:"CACHE_ENABLED" envDefault:"true"`
	Addr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"CACHE_TTL" envDefault:"10s"`
}
type EventsConfig struct {
	// Sink is one of kafka, redis, log.
	Sink         string   `env:"EVENTS_SINK" envDefault:"log"`
	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"wallet.ledger"`
	RedisChannel string   `env:"EVENTS_REDIS_CHANNEL" envDefault:"wallet.ledger"`
}
type WorkerConfig struct {
	OutboxInterval  time.Duration `env:"WORKER_OUTBOX_INTERVAL" envDefault:"2s"`
	OutboxBatchSize int           `env:"WORKER_OUTBOX_BATCH_SIZE" envDefault:"100"`
}
type UpstreamConfig struct {
	OfferServiceURL   string        `env:"OFFER_SERVICE_URL" envDefault:"http://localhost:5001"`
	ContestServiceURL string        `env:"CONTEST_SERVICE_URL" envDefault:"http://localhost:5002"`
	UserServiceURL    string        `env:"USER_SERVICE_URL" envDefault:"http://localhost:5003"`
	Timeout           time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"3s"`
}
type WalletConfig struct {
	GSTRate             decimal.Decimal `env:"WALLET_GST_RATE" envDefault:"0.28"`
	CashbackShare       decimal.Decimal `env:"WALLET_CASHBACK_SHARE" envDefault:"0.30"`
	TDSRate             decimal.Decimal `env:"WALLET_TDS_RATE" envDefault:"0.30"`
	TDSCashbackPromo    bool            `env:"TDS_CASHBACK_PROMO" envDefault:"true"`
	BonusExpiryEnforced bool            `env:"BONUS_EXPIRY_ENFORCED" envDefault:"false"`
	ReferralBonusAmount decimal.Decimal `env:"REFERRAL_BONUS_AMOUNT" envDefault:"50"`
	BonusValidity       time.Duration   `env:"SIGNUP_BONUS_VALIDITY" envDefault:"720h"`
}

// Policy returns the money rules used by the ledger calculators.
func (c WalletConfig) Policy() ledger.Policy {
	return ledger.Policy{
		GSTRate:            c.GSTRate,
		CashbackShare:      c.CashbackShare,
		TDSRate:            c.TDSRate,
		EnforceBonusExpiry: c.BonusExpiryEnforced,
	}
}

// Load reads configuration from the environment. Values from a .env file in
// the working directory are applied first without overriding real variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Events.Sink {
	case "kafka", "redis", "log":
	default:
		return fmt.Errorf("invalid EVENTS_SINK %q", c.Events.Sink)
	}
	if !c.Wallet.ReferralBonusAmount.IsPositive() {
		return errors.New("REFERRAL_BONUS_AMOUNT must be positive")
	}
	if c.Worker.OutboxInterval <= 0 {
		return fmt.Errorf("WORKER_OUTBOX_INTERVAL must be positive, got %s", c.Worker.OutboxInterval)
	}
	if c.Worker.OutboxBatchSize < 1 {
		return fmt.Errorf("WORKER_OUTBOX_BATCH_SIZE must be at least 1, got %d", c.Worker.OutboxBatchSize)
	}
	if c.Redis.Enabled && c.Redis.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive, got %s", c.Redis.TTL)
	}
	return nil
}
