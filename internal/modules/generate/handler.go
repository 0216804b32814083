package generate

import (
	"github.com/gin-gonic/gin"

	"github.com/soez-labs/blogforge/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/generate", authMW, h.generate)
}

func (h *Handler) generate(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.svc.Generate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{
		"content":  result.Content,
		"metadata": result.Metadata,
		"settings": result.Settings,
	})
}
