package mail

import (
	"github.com/soez-labs/blogforge/internal/config"
)

// BuildMailConfig constructs a mail.Config from the application config.
// This centralises the mapping so every caller builds the mailer
// configuration consistently.
func BuildMailConfig(cfg *config.AppConfig) Config {
	if cfg == nil {
		return Config{}
	}
	mc := Config{
		Enable:  cfg.Mail.Enable,
		From:    cfg.Mail.From,
		ReplyTo: cfg.Mail.ReplyTo,
		Host:    cfg.Mail.SMTP.Host,
		Port:    cfg.Mail.SMTP.Port,
		User:    cfg.Mail.SMTP.User,
		Pass:    cfg.Mail.SMTP.Pass,
	}
	if cfg.Mail.Provider == "resend" && cfg.Mail.ResendKey != "" {
		mc.UseResend = true
		mc.ResendKey = cfg.Mail.ResendKey
	}
	return mc
}
