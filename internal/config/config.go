package config

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort       = 2330
	defaultEnv        = "development"
	defaultDBHost     = "127.0.0.1"
	defaultDBPort     = 3306
	defaultDBUser     = "root"
	defaultDBPassword = "password"
	defaultDBName     = "blogforge"
	defaultDBCharset  = "utf8mb4"
	defaultDBLoc      = "Local"
	defaultMailFrom   = "hello@soez-estates.nl"
	defaultSiteURL    = "http://localhost:2330"
)

// Load reads the YAML config, applies defaults, normalization and
// environment overrides. A missing file at the default path is fine:
// the original deployment was configured entirely through env vars.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	explicit := path != "" && path != DefaultConfigPath
	if path == "" {
		path = DefaultConfigPath
	}

	cfg := defaultAppConfig()

	content, err := os.ReadFile(path)
	if err != nil {
		if explicit || !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config file %q: %w", path, err)
		}
	} else {
		decoder := yaml.NewDecoder(bytes.NewReader(content))
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config file %q: %w", path, err)
		}
	}

	applyEnvOverrides(&cfg)
	normalize(&cfg)

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d, expected 1-65535", cfg.Port)
	}
	if cfg.Database.Port < 1 || cfg.Database.Port > 65535 {
		return nil, fmt.Errorf("invalid database.port %d, expected 1-65535", cfg.Database.Port)
	}

	return &cfg, nil
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port:    defaultPort,
		Env:     defaultEnv,
		SiteURL: defaultSiteURL,
		Database: DatabaseRuntimeConfig{
			Host:      defaultDBHost,
			Port:      defaultDBPort,
			User:      defaultDBUser,
			Password:  defaultDBPassword,
			Name:      defaultDBName,
			Charset:   defaultDBCharset,
			ParseTime: true,
			Loc:       defaultDBLoc,
		},
		Mail: MailConfig{
			Provider: "resend",
			From:     defaultMailFrom,
		},
	}
}

// applyEnvOverrides layers credential env vars over the file config so a
// bare container with GEMINI_API_KEY / RESEND_API_KEY / DATABASE_DSN set
// comes up without any YAML at all.
func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := strings.TrimSpace(os.Getenv("ENV")); v != "" {
		cfg.Env = v
	}
	if v := strings.TrimSpace(os.Getenv("DATABASE_DSN")); v != "" {
		cfg.Database.DSN = v
	}
	if v := strings.TrimSpace(os.Getenv("SITE_URL")); v != "" {
		cfg.SiteURL = v
	}
	if v := strings.TrimSpace(os.Getenv("JWT_SECRET")); v != "" {
		cfg.JWTSecret = v
	}
	if v := strings.TrimSpace(os.Getenv("RESEND_API_KEY")); v != "" {
		cfg.Mail.Enable = true
		cfg.Mail.Provider = "resend"
		cfg.Mail.ResendKey = v
	}
	if v := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); v != "" {
		applyProviderKey(cfg, "gemini", v)
	}
	if v := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); v != "" {
		applyProviderKey(cfg, "openai", v)
	}
	if v := strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY")); v != "" {
		applyProviderKey(cfg, "anthropic", v)
	}
}

func applyProviderKey(cfg *AppConfig, providerType, key string) {
	for i := range cfg.AI.Providers {
		if strings.EqualFold(strings.TrimSpace(cfg.AI.Providers[i].Type), providerType) {
			cfg.AI.Providers[i].APIKey = key
			cfg.AI.Providers[i].Enabled = true
			return
		}
	}
	cfg.AI.Providers = append(cfg.AI.Providers, AIProvider{
		ID:      providerType,
		Name:    providerType,
		Type:    providerType,
		APIKey:  key,
		Enabled: true,
	})
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return strings.ToLower(strings.TrimSpace(c.Env)) != "production"
}
