package config

// AppConfig holds runtime startup configuration loaded from YAML plus
// environment overrides for credentials.
type AppConfig struct {
	Port           int                   `yaml:"port"`
	Env            string                `yaml:"env"` // "development" | "production"
	DSN            string                `yaml:"dsn"` // MySQL DSN
	Database       DatabaseRuntimeConfig `yaml:"database"`
	SiteURL        string                `yaml:"site_url"`
	AllowedOrigins []string              `yaml:"allowed_origins"`
	JWTSecret      string                `yaml:"jwt_secret"`
	AI             AIConfig              `yaml:"ai"`
	Mail           MailConfig            `yaml:"mail"`
}

type DatabaseRuntimeConfig struct {
	DSN       string            `yaml:"dsn"`
	Host      string            `yaml:"host"`
	Port      int               `yaml:"port"`
	User      string            `yaml:"user"`
	Username  string            `yaml:"username"`
	Password  string            `yaml:"password"`
	Name      string            `yaml:"name"`
	DBName    string            `yaml:"db_name"`
	Charset   string            `yaml:"charset"`
	ParseTime bool              `yaml:"parse_time"`
	Loc       string            `yaml:"loc"`
	Params    map[string]string `yaml:"params"`
}

// AIConfig lists the configured text-generation providers. The first
// enabled provider is used unless a request-independent default is set.
type AIConfig struct {
	Providers []AIProvider `yaml:"providers"`
}

// AIProvider describes one upstream generation service.
type AIProvider struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Type         string `yaml:"type"` // gemini | openai | openai-compatible | anthropic
	APIKey       string `yaml:"api_key"`
	Endpoint     string `yaml:"endpoint"`
	DefaultModel string `yaml:"default_model"`
	Enabled      bool   `yaml:"enabled"`
}

// MailConfig holds transactional email settings.
type MailConfig struct {
	Enable    bool       `yaml:"enable"`
	Provider  string     `yaml:"provider"` // resend | smtp
	From      string     `yaml:"from"`
	ReplyTo   string     `yaml:"reply_to"`
	ResendKey string     `yaml:"resend_key"`
	SMTP      SMTPConfig `yaml:"smtp"`
}

type SMTPConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	User string `yaml:"user"`
	Pass string `yaml:"pass"`
}
