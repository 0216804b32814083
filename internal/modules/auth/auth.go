// Package auth owns the single-owner account: registration, login,
// logout, and session introspection. Sessions are stored server side
// and bound into the JWT; the cookie alone is never trusted.
package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/soez-labs/blogforge/internal/middleware"
	"github.com/soez-labs/blogforge/internal/models"
	"github.com/soez-labs/blogforge/internal/pkg/apperrors"
	"github.com/soez-labs/blogforge/internal/pkg/response"
	"github.com/soez-labs/blogforge/internal/pkg/session"
)

const cookieMaxAge = int(session.DefaultTTL / time.Second)

type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterDTO struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name"`
	Mail     string `json:"mail"`
}

type userResponse struct {
	ID            string     `json:"id"`
	Username      string     `json:"username"`
	Name          string     `json:"name"`
	Mail          string     `json:"mail"`
	LastLoginTime *time.Time `json:"last_login_time"`
	LastLoginIP   string     `json:"last_login_ip"`
}

func toResponse(u *models.UserModel) *userResponse {
	return &userResponse{
		ID: u.ID, Username: u.Username, Name: u.Name, Mail: u.Mail,
		LastLoginTime: u.LastLoginTime, LastLoginIP: u.LastLoginIP,
	}
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Login verifies credentials and issues a fresh server-side session.
func (s *Service) Login(username, password, ip, ua string) (string, *models.UserModel, error) {
	var u models.UserModel
	if err := s.db.Where("username = ?", username).First(&u).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", nil, apperrors.Unauthorized("Invalid username or password")
		}
		return "", nil, apperrors.Store("failed to load user", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", nil, apperrors.Unauthorized("Invalid username or password")
	}

	now := time.Now()
	s.db.Model(&u).Updates(map[string]interface{}{
		"last_login_time": now,
		"last_login_ip":   ip,
	})
	u.LastLoginTime = &now
	u.LastLoginIP = ip

	token, _, err := session.Issue(s.db, u.ID, ip, ua, session.DefaultTTL)
	if err != nil {
		return "", nil, apperrors.Store("failed to issue session", err)
	}
	return token, &u, nil
}

// Register creates the owner account. Only one account can exist.
func (s *Service) Register(dto *RegisterDTO) (*models.UserModel, error) {
	var count int64
	s.db.Model(&models.UserModel{}).Count(&count)
	if count > 0 {
		return nil, apperrors.Validation("owner already registered")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindUnknown, "failed to hash password", err)
	}
	name := dto.Name
	if name == "" {
		name = dto.Username
	}
	u := models.UserModel{Username: dto.Username, Password: string(hash), Name: name, Mail: dto.Mail}
	if err := s.db.Create(&u).Error; err != nil {
		return nil, apperrors.Store("failed to create user", err)
	}
	return &u, nil
}

func (s *Service) GetByID(id string) (*models.UserModel, error) {
	var u models.UserModel
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (s *Service) Logout(userID, sessionID string) error {
	return session.Revoke(s.db, userID, sessionID)
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/auth")

	g.POST("/login", h.login)
	g.POST("/register", h.register)

	a := g.Group("", authMW)
	a.POST("/logout", h.logout)
	a.GET("/session", h.getSession)
}

func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Username and password are required")
		return
	}

	token, u, err := h.svc.Login(dto.Username, dto.Password, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, token, cookieMaxAge, "/", "", false, true)
	response.Success(c, gin.H{
		"token": token,
		"user":  toResponse(u),
	})
}

func (h *Handler) register(c *gin.Context) {
	var dto RegisterDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Username and password are required")
		return
	}
	u, err := h.svc.Register(&dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"user": toResponse(u)})
}

func (h *Handler) logout(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	sessionID := middleware.CurrentSessionID(c)
	if err := h.svc.Logout(userID, sessionID); err != nil && err != gorm.ErrRecordNotFound {
		c.Error(err)
		response.InternalError(c, "Failed to log out")
		return
	}
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", false, true)
	response.Success(c, gin.H{})
}

func (h *Handler) getSession(c *gin.Context) {
	u, err := h.svc.GetByID(middleware.CurrentUserID(c))
	if err != nil {
		c.Error(err)
		response.InternalError(c, "Failed to load session")
		return
	}
	if u == nil {
		response.Unauthorized(c, "")
		return
	}
	response.Success(c, gin.H{"user": toResponse(u)})
}
