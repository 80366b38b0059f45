package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	Pg             Pg            `yaml:"pg"`
	Port           string        `yaml:"port"`
	JwtTTL         time.Duration `yaml:"jwt_ttl"`
	LogLevel       string        `yaml:"log_level"`
	LogJSON        bool          `yaml:"log_json"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

type Private struct {
	JwtKey string `yaml:"jwt_key"`
}

// envOverrides are applied on top of the yaml files so deployments can keep
// secrets out of the config folder entirely.
type envOverrides struct {
	Port       string `env:"PORT"`
	LogLevel   string `env:"LOG_LEVEL"`
	JwtKey     string `env:"JWT_KEY"`
	PgHost     string `env:"PG_HOST"`
	PgPort     int    `env:"PG_PORT"`
	PgUser     string `env:"PG_USER"`
	PgPassword string `env:"PG_PASSWORD"`
	PgDbname   string `env:"PG_DBNAME"`
}

// JwtKey returns the process-wide signing secret. May be empty if neither
// private.yaml nor JWT_KEY provided one; construction of the jwt service is
// responsible for rejecting that.
func (s *Config) JwtKey() string {
	return s.private.JwtKey
}

func (s *Config) JwtTTL() time.Duration {
	return s.Public.JwtTTL
}

func loadPath(configPath string, output interface{}) error {
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("can't read config file %s: %w", configPath, err)
	}
	if err := yaml.Unmarshal(configFile, output); err != nil {
		return fmt.Errorf("can't unmarshal config file %s: %w", configPath, err)
	}
	return nil
}

func Load(configFolder string) (*Config, error) {
	var public Public
	if err := loadPath(path.Join(configFolder, "public.yaml"), &public); err != nil {
		return nil, err
	}

	// private.yaml is optional; the signing key may come from JWT_KEY instead
	var private Private
	privatePath := path.Join(configFolder, "private.yaml")
	if _, err := os.Stat(privatePath); err == nil {
		if err := loadPath(privatePath, &private); err != nil {
			return nil, err
		}
	}

	cfg := &Config{public, private}

	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return nil, fmt.Errorf("can't parse env overrides: %w", err)
	}
	cfg.apply(&overrides)

	if cfg.Public.JwtTTL == 0 {
		cfg.Public.JwtTTL = time.Hour
	}

	return cfg, nil
}

func (s *Config) apply(o *envOverrides) {
	if o.Port != "" {
		s.Public.Port = o.Port
	}
	if o.LogLevel != "" {
		s.Public.LogLevel = o.LogLevel
	}
	if o.JwtKey != "" {
		s.private.JwtKey = o.JwtKey
	}
	if o.PgHost != "" {
		s.Public.Pg.Host = o.PgHost
	}
	if o.PgPort != 0 {
		s.Public.Pg.Port = o.PgPort
	}
	if o.PgUser != "" {
		s.Public.Pg.User = o.PgUser
	}
	if o.PgPassword != "" {
		s.Public.Pg.Password = o.PgPassword
	}
	if o.PgDbname != "" {
		s.Public.Pg.Dbname = o.PgDbname
	}
}
