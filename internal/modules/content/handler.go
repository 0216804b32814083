package content

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soez-labs/blogforge/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// RegisterRoutes mounts content routes onto the given router group. All
// routes require an authenticated session.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	blogs := rg.Group("/content", authMW)

	blogs.POST("", h.create)
	blogs.GET("", h.list)
	blogs.GET("/:id", h.getByID)
	blogs.GET("/:id/html", h.renderHTML)
	blogs.DELETE("/:id", h.delete)
}

// create POST /content
func (h *Handler) create(c *gin.Context) {
	var dto CreateBlogDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	blog, err := h.svc.Create(&dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"blog": blog})
}

// list GET /content
func (h *Handler) list(c *gin.Context) {
	blogs, err := h.svc.List()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"blogs": blogs})
}

// getByID GET /content/:id
func (h *Handler) getByID(c *gin.Context) {
	blog, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"blog": blog})
}

// renderHTML GET /content/:id/html
func (h *Handler) renderHTML(c *gin.Context) {
	blog, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	html, err := RenderHTML(blog.Content)
	if err != nil {
		c.Error(err)
		response.InternalError(c, "Failed to render blog")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// delete DELETE /content/:id
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.DeleteByID(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{})
}
