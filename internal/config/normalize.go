package config

import (
	"fmt"
	"net"
	"sort"
	"strconv"
	"strings"
)

func normalize(cfg *AppConfig) {
	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))
	if cfg.Env == "" {
		cfg.Env = defaultEnv
	}
	cfg.SiteURL = strings.TrimRight(strings.TrimSpace(cfg.SiteURL), "/")
	if cfg.SiteURL == "" {
		cfg.SiteURL = defaultSiteURL
	}
	cfg.AllowedOrigins = normalizeOrigins(cfg.AllowedOrigins)
	cfg.Database = normalizeDatabaseConfig(cfg.Database)
	if strings.TrimSpace(cfg.DSN) == "" {
		cfg.DSN = cfg.Database.DSNValue()
	}
	cfg.Mail.Provider = strings.ToLower(strings.TrimSpace(cfg.Mail.Provider))
	if cfg.Mail.Provider == "" {
		cfg.Mail.Provider = "resend"
	}
	if strings.TrimSpace(cfg.Mail.From) == "" {
		cfg.Mail.From = defaultMailFrom
	}
}

func normalizeDatabaseConfig(cfg DatabaseRuntimeConfig) DatabaseRuntimeConfig {
	cfg.DSN = strings.TrimSpace(cfg.DSN)
	cfg.Host = strings.TrimSpace(cfg.Host)
	cfg.User = strings.TrimSpace(cfg.User)
	cfg.Username = strings.TrimSpace(cfg.Username)
	cfg.Password = strings.TrimSpace(cfg.Password)
	cfg.Name = strings.TrimSpace(cfg.Name)
	cfg.DBName = strings.TrimSpace(cfg.DBName)
	cfg.Charset = strings.TrimSpace(cfg.Charset)
	cfg.Loc = strings.TrimSpace(cfg.Loc)

	if cfg.User == "" && cfg.Username != "" {
		cfg.User = cfg.Username
	}
	if cfg.Name == "" && cfg.DBName != "" {
		cfg.Name = cfg.DBName
	}
	if cfg.Host == "" {
		cfg.Host = defaultDBHost
	}
	if cfg.Port == 0 {
		cfg.Port = defaultDBPort
	}
	if cfg.User == "" {
		cfg.User = defaultDBUser
	}
	if cfg.Password == "" {
		cfg.Password = defaultDBPassword
	}
	if cfg.Name == "" {
		cfg.Name = defaultDBName
	}
	if cfg.Charset == "" {
		cfg.Charset = defaultDBCharset
	}
	if cfg.Loc == "" {
		cfg.Loc = defaultDBLoc
	}
	return cfg
}

// DSNValue builds a MySQL DSN from the structured fields, unless an
// explicit DSN was configured.
func (c DatabaseRuntimeConfig) DSNValue() string {
	if c.DSN != "" {
		return c.DSN
	}

	params := map[string]string{
		"charset":   c.Charset,
		"parseTime": strconv.FormatBool(c.ParseTime),
		"loc":       c.Loc,
	}
	for k, v := range c.Params {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		params[k] = strings.TrimSpace(v)
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	addr := net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?%s", c.User, c.Password, addr, c.Name, strings.Join(pairs, "&"))
}

func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		out = append(out, origin)
	}
	return out
}
