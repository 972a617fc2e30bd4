package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

type GRPC struct {
	Addr string `yaml:"addr"`
}

type HTTP struct {
	Addr           string        `yaml:"addr"`
	ReadTimeout    time.Duration `yaml:"readTimeout"`
	WriteTimeout   time.Duration `yaml:"writeTimeout"`
	IdleTimeout    time.Duration `yaml:"idleTimeout"`
	RequestTimeout time.Duration `yaml:"requestTimeout"`
	CORSOrigins    []string      `yaml:"corsOrigins"`
}

type Logging struct {
	Env       string `yaml:"env"`       // dev|stage|prod; пусто: GEOROOM_ENV/APP_ENV
	Service   string `yaml:"service"`   // geo-room-service
	Version   string `yaml:"version"`   // v0.1.0
	Backend   string `yaml:"backend"`   // std|zap
	Level     string `yaml:"level"`     // debug|info|warn|error
	AddSource bool   `yaml:"addSource"` // false|true
	Debug     bool   `yaml:"debug"`     // false|true
}

type Storage struct {
	Driver string `yaml:"driver"` // postgres|sqlite|memory
}

type Postgres struct {
	DSN              string        `yaml:"dsn"`
	MaxConns         int32         `yaml:"maxConns"`
	MinConns         int32         `yaml:"minConns"`
	MaxConnLifetime  time.Duration `yaml:"maxConnLifetime"`
	MaxConnIdleTime  time.Duration `yaml:"maxConnIdleTime"`
	StatementTimeout time.Duration `yaml:"statementTimeout"`
}

type SQLite struct {
	Path string `yaml:"path"`
}

// Redis: пустой addr отключает лимит отправки.
type Redis struct {
	Addr       string        `yaml:"addr"`
	Password   string        `yaml:"password"`
	DB         int           `yaml:"db"`
	SendLimit  int           `yaml:"sendLimit"`
	SendWindow time.Duration `yaml:"sendWindow"`
}

// Без publicKeyPath сервис доверяет X-User-ID от шлюза.
type Auth struct {
	PublicKeyPath string        `yaml:"publicKeyPath"`
	Issuer        string        `yaml:"issuer"`
	Audience      string        `yaml:"audience"`
	ClockSkew     time.Duration `yaml:"clockSkew"`
}

type Chat struct {
	MaxMessageLength int `yaml:"maxMessageLength"`
	PageSize         int `yaml:"pageSize"`
}

type Config struct {
	HTTP     HTTP     `yaml:"http"`
	GRPC     GRPC     `yaml:"grpc"`
	Logging  Logging  `yaml:"logging"`
	Storage  Storage  `yaml:"storage"`
	Postgres Postgres `yaml:"postgres"`
	SQLite   SQLite   `yaml:"sqlite"`
	Redis    Redis    `yaml:"redis"`
	Auth     Auth     `yaml:"auth"`
	Chat     Chat     `yaml:"chat"`
}

func LoadConfig() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "./config/config.yaml"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.HTTP.Addr == "" {
		return errors.New("http.addr is required")
	}
	if c.GRPC.Addr == "" {
		return errors.New("grpc.addr is required")
	}

	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	if c.Storage.Driver == "" {
		c.Storage.Driver = DriverSQLite
	}
	switch c.Storage.Driver {
	case DriverPostgres:
		if c.Postgres.DSN == "" {
			return errors.New("postgres.dsn is required")
		}
	case DriverSQLite:
		if c.SQLite.Path == "" {
			c.SQLite.Path = "./data/georoom.db"
		}
	case DriverMemory:
	default:
		return fmt.Errorf("storage.driver: unknown %q", c.Storage.Driver)
	}

	if c.Redis.Addr != "" {
		if c.Redis.SendLimit < 0 || c.Redis.SendWindow < 0 {
			return errors.New("redis.sendLimit and redis.sendWindow must not be negative")
		}
		if c.Redis.SendLimit == 0 {
			c.Redis.SendLimit = 20
		}
		if c.Redis.SendWindow == 0 {
			c.Redis.SendWindow = time.Minute
		}
	}

	if c.Auth.PublicKeyPath == "" && (c.Auth.Issuer != "" || c.Auth.Audience != "") {
		return errors.New("auth.issuer/audience require auth.publicKeyPath")
	}
	if c.Auth.ClockSkew == 0 {
		c.Auth.ClockSkew = 30 * time.Second
	}

	// установка дефолтов, если значения не указаны
	if c.HTTP.ReadTimeout == 0 {
		c.HTTP.ReadTimeout = 10 * time.Second
	}
	if c.HTTP.WriteTimeout == 0 {
		c.HTTP.WriteTimeout = 15 * time.Second
	}
	if c.HTTP.IdleTimeout == 0 {
		c.HTTP.IdleTimeout = 60 * time.Second
	}
	if c.HTTP.RequestTimeout == 0 {
		c.HTTP.RequestTimeout = 10 * time.Second
	}
	if c.Chat.MaxMessageLength == 0 {
		c.Chat.MaxMessageLength = 4000
	}
	if c.Chat.PageSize <= 0 {
		c.Chat.PageSize = 50
	}
	if c.Logging.Service == "" {
		c.Logging.Service = "geo-room-service"
	}
	if c.Logging.Version == "" {
		c.Logging.Version = "v0.1.0"
	}
	if c.Logging.Backend == "" {
		c.Logging.Backend = "std"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	return nil
}
