package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const (
	defaultConfigPath = "config/config.yaml"
	defaultMongoURI   = "mongodb://localhost:27017"
	defaultMongoDB    = "app"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		URI                    string        `yaml:"uri"`
		Name                   string        `yaml:"name"`
		ServerSelectionTimeout time.Duration `yaml:"server_selection_timeout"`
		ConnectTimeout         time.Duration `yaml:"connect_timeout"`
		MinPoolSize            uint64        `yaml:"min_pool_size"`
		MaxPoolSize            uint64        `yaml:"max_pool_size"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes, 0 disables expiry
	} `yaml:"jwt"`

	Email struct {
		Provider        string `yaml:"provider"` // mailjet, smtp, log, none
		MailjetAPIKey   string `yaml:"mailjet_api_key"`
		MailjetSecret   string `yaml:"mailjet_secret_key"`
		MailjetBaseURL  string `yaml:"mailjet_base_url"`
		SMTPHost        string `yaml:"smtp_host"`
		SMTPPort        int    `yaml:"smtp_port"`
		SMTPUsername    string `yaml:"smtp_user"`
		SMTPPassword    string `yaml:"smtp_password"`
		FromEmail       string `yaml:"from_email"`
		FromName        string `yaml:"from_name"`
		SendTimeoutSecs int    `yaml:"send_timeout"`
	} `yaml:"email"`
}

var AppConfig *Config

// Load reads .env (if any), then the YAML file (if any), then applies
// environment overrides and defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("config: .env not loaded: %v", err)
	}

	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	f, err := os.Open(configPath)
	switch {
	case err == nil:
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", configPath, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// environment only
	default:
		return nil, fmt.Errorf("open config file %s: %w", configPath, err)
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	return &cfg, nil
}

// LoadConfig loads the configuration into AppConfig and exits on failure.
func LoadConfig() {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

// Validate checks settings that must be present before serving traffic.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.JWT.Secret) == "" {
		return errors.New("JWT_SECRET is not defined")
	}
	if c.Database.URI == "" || c.Database.Name == "" {
		return errors.New("database uri and name are required")
	}
	return nil
}

// TokenTTL is zero when tokens never expire.
func (c *Config) TokenTTL() time.Duration {
	if c.JWT.TTL <= 0 {
		return 0
	}
	return time.Duration(c.JWT.TTL) * time.Minute
}

func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func applyEnvOverrides(cfg *Config) {
	setString(&cfg.Server.Host, "SERVER_HOST")
	setInt(&cfg.Server.Port, "SERVER_PORT")
	setString(&cfg.Server.Env, "SERVER_ENV")

	setString(&cfg.Database.URI, "MONGODB_URI")
	setString(&cfg.Database.Name, "MONGODB_DB")

	setString(&cfg.JWT.Secret, "JWT_SECRET")
	setInt(&cfg.JWT.TTL, "JWT_TTL_MINUTES")

	setString(&cfg.Email.Provider, "EMAIL_PROVIDER")
	setString(&cfg.Email.MailjetAPIKey, "MAILJET_API_KEY")
	setString(&cfg.Email.MailjetSecret, "MAILJET_SECRET_KEY")
	setString(&cfg.Email.MailjetBaseURL, "MAILJET_BASE_URL")
	setString(&cfg.Email.SMTPHost, "SMTP_HOST")
	setInt(&cfg.Email.SMTPPort, "SMTP_PORT")
	setString(&cfg.Email.SMTPUsername, "SMTP_USER")
	setString(&cfg.Email.SMTPPassword, "SMTP_PASSWORD")
	setString(&cfg.Email.FromEmail, "EMAIL_FROM")
	setString(&cfg.Email.FromName, "EMAIL_FROM_NAME")
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Database.URI == "" {
		cfg.Database.URI = defaultMongoURI
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = defaultMongoDB
	}
	if cfg.Database.ServerSelectionTimeout == 0 {
		cfg.Database.ServerSelectionTimeout = 5 * time.Second
	}
	if cfg.Database.ConnectTimeout == 0 {
		cfg.Database.ConnectTimeout = 10 * time.Second
	}
	if cfg.Database.MinPoolSize == 0 {
		cfg.Database.MinPoolSize = 1
	}
	if cfg.Database.MaxPoolSize == 0 {
		cfg.Database.MaxPoolSize = 10
	}
	if cfg.Email.Provider == "" {
		cfg.Email.Provider = "mailjet"
	}
	if cfg.Email.SMTPPort == 0 {
		cfg.Email.SMTPPort = 587
	}
	if cfg.Email.SendTimeoutSecs == 0 {
		cfg.Email.SendTimeoutSecs = 30
	}
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: ignoring %s=%q: %v", key, v, err)
		return
	}
	*dst = n
}
