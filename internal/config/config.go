package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"vet-care-assistant/internal/i18n"
)

type Config struct {
	// Server
	Port    int    `env:"PORT" envDefault:"8080"`
	AppName string `env:"APP_NAME" envDefault:"vet-care-assistant"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// Storage (opcional): si DB_DSN viene, directorio de vets y recetas salen de Postgres.
	DBDSN         string `env:"DB_DSN"`
	RunMigrations bool   `env:"RUN_MIGRATIONS" envDefault:"true"`

	// Comportamiento
	DefaultLang      string        `env:"DEFAULT_LANG" envDefault:"en"`
	ResponseDelay    time.Duration `env:"RESPONSE_DELAY" envDefault:"0s"`
	MaxUploadBytes   int64         `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"`
	RandomSeed       uint64        `env:"RANDOM_SEED" envDefault:"0"`
	EmergencyHotline string        `env:"EMERGENCY_HOTLINE" envDefault:"+94 11 123 4567"`

	// Sesiones de chat sin actividad por más de esto se descartan; 0 => nunca.
	ChatSessionTTL time.Duration `env:"CHAT_SESSION_TTL" envDefault:"30m"`

	// Placa (cmd/boardctl)
	BoardAddr    string        `env:"BOARD_ADDR" envDefault:"http://192.168.4.1"`
	BoardTimeout time.Duration `env:"BOARD_TIMEOUT" envDefault:"5s"`
}

// Load lee .env (si existe) y luego el entorno.
// Las variables ya presentes en el entorno no se pisan.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse lee solo el entorno del proceso.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: invalid PORT %d", c.Port)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("config: MAX_UPLOAD_BYTES must be > 0")
	}
	if c.ResponseDelay < 0 {
		return fmt.Errorf("config: RESPONSE_DELAY must be >= 0")
	}
	if c.ChatSessionTTL < 0 {
		return fmt.Errorf("config: CHAT_SESSION_TTL must be >= 0")
	}
	if _, ok := i18n.ParseLanguage(c.DefaultLang); !ok {
		return fmt.Errorf("config: unsupported DEFAULT_LANG %q", c.DefaultLang)
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *Config) Language() i18n.Language {
	l, _ := i18n.ParseLanguage(c.DefaultLang)
	return l
}

// Seed devuelve la semilla del generador; 0 => derivada del reloj.
func (c *Config) Seed() uint64 {
	if c.RandomSeed != 0 {
		return c.RandomSeed
	}
	return uint64(time.Now().UnixNano()) ^ uint64(os.Getpid())
}
