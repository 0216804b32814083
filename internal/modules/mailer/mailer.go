// Package mailer exposes the transactional email endpoint.
package mailer

import (
	"github.com/gin-gonic/gin"

	"github.com/soez-labs/blogforge/internal/pkg/mail"
	"github.com/soez-labs/blogforge/internal/pkg/response"
)

// SendRequest is the payload for one outbound email. From overrides the
// configured default sender when set.
type SendRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	From    string `json:"from"`
}

type Handler struct {
	sender mail.Sender
}

func NewHandler(sender mail.Sender) *Handler { return &Handler{sender: sender} }

// RegisterRoutes mounts the email route. It is deliberately not behind
// the session gate: system jobs post here with no user session.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/email", h.send)
}

func (h *Handler) send(c *gin.Context) {
	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if req.To == "" || req.Subject == "" || req.HTML == "" {
		response.BadRequest(c, "Missing required fields: to, subject, html")
		return
	}

	id, err := h.sender.Send(c.Request.Context(), mail.Message{
		From:    req.From,
		To:      []string{req.To},
		Subject: req.Subject,
		HTML:    req.HTML,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{
		"messageId": id,
		"message":   "Email sent successfully",
	})
}
