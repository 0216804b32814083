// Package mail sends transactional email through the Resend HTTP API,
// falling back to plain SMTP when no Resend key is configured.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/smtp"
	"strings"
	"time"

	"github.com/soez-labs/blogforge/internal/pkg/apperrors"
)

// Config holds mail provider settings.
type Config struct {
	Enable    bool   `json:"enable"`
	Host      string `json:"host"`
	Port      int    `json:"port"`
	User      string `json:"user"`
	Pass      string `json:"pass"`
	From      string `json:"from"`
	ReplyTo   string `json:"reply_to"`
	UseResend bool   `json:"use_resend"`
	ResendKey string `json:"resend_key"`
}

// Message is a single email to send. From overrides the configured
// sender when set.
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
	Text    string
}

// Sender delivers messages via Resend or SMTP and reports the provider's
// message id when one is available.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

type sender struct {
	cfg    Config
	client *http.Client
}

func New(cfg Config) Sender {
	return &sender{
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *sender) Send(ctx context.Context, msg Message) (string, error) {
	if !s.cfg.Enable {
		return "", apperrors.Configuration("email delivery is not configured")
	}
	if len(msg.To) == 0 {
		return "", apperrors.Validation("recipient address is required")
	}
	if s.cfg.UseResend && s.cfg.ResendKey != "" {
		return s.sendResend(ctx, msg)
	}
	return s.sendSMTP(msg)
}

func (s *sender) from(msg Message) string {
	if msg.From != "" {
		return msg.From
	}
	if s.cfg.From != "" {
		return s.cfg.From
	}
	return s.cfg.User
}

// sendSMTP sends via net/smtp. SMTP has no message id concept, so the
// returned id is empty.
func (s *sender) sendSMTP(msg Message) (string, error) {
	host := s.cfg.Host
	if host == "" {
		return "", apperrors.Configuration("smtp host is not configured")
	}
	port := s.cfg.Port
	if port == 0 {
		port = 587
	}
	addr := fmt.Sprintf("%s:%d", host, port)
	from := s.from(msg)

	var body bytes.Buffer
	body.WriteString("MIME-Version: 1.0\r\n")
	body.WriteString(fmt.Sprintf("From: %s\r\n", from))
	body.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(msg.To, ", ")))
	body.WriteString(fmt.Sprintf("Subject: %s\r\n", msg.Subject))
	body.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	if s.cfg.ReplyTo != "" {
		body.WriteString(fmt.Sprintf("Reply-To: %s\r\n", s.cfg.ReplyTo))
	}
	body.WriteString("\r\n")
	body.WriteString(msg.HTML)

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, host)
	if err := smtp.SendMail(addr, auth, from, msg.To, body.Bytes()); err != nil {
		return "", apperrors.Email("failed to send email", err)
	}
	return "", nil
}

// sendResend sends via the Resend HTTP API and returns the message id
// Resend assigns to the email.
func (s *sender) sendResend(ctx context.Context, msg Message) (string, error) {
	payload, _ := json.Marshal(map[string]interface{}{
		"from":    s.from(msg),
		"to":      msg.To,
		"subject": msg.Subject,
		"html":    msg.HTML,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://api.resend.com/emails", bytes.NewReader(payload))
	if err != nil {
		return "", apperrors.Email("failed to build resend request", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.ResendKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", apperrors.Email("failed to reach resend", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp struct {
			Message string `json:"message"`
		}
		json.NewDecoder(resp.Body).Decode(&errResp)
		return "", apperrors.Email(
			fmt.Sprintf("resend error %d: %s", resp.StatusCode, errResp.Message), nil)
	}

	var ok struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&ok); err != nil {
		return "", apperrors.Email("failed to decode resend response", err)
	}
	return ok.ID, nil
}
