package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/harentsoaR/beastfit-api/internal/logging"
	"github.com/harentsoaR/beastfit-api/internal/middleware"
	"github.com/harentsoaR/beastfit-api/internal/services"
	"github.com/harentsoaR/beastfit-api/internal/store"
	"github.com/harentsoaR/beastfit-api/internal/utils"
)

// SessionConfig controls how session tokens are signed and handed out.
type SessionConfig struct {
	Secret       []byte
	TTL          time.Duration
	SecureCookie bool
}

// Handler carries the dependencies shared by every endpoint.
type Handler struct {
	Store           store.Store
	NotificationSvc *services.NotificationService
	Log             logging.Logger
	Session         SessionConfig
}

func NewHandler(s store.Store, notificationSvc *services.NotificationService, log logging.Logger, session SessionConfig) *Handler {
	return &Handler{
		Store:           s,
		NotificationSvc: notificationSvc,
		Log:             log,
		Session:         session,
	}
}

// bindJSON decodes and validates the body into dst. On failure it answers
// 400 with the generic message and returns false.
func (h *Handler) bindJSON(c *gin.Context, dst any, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var fields []string
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields = append(fields, fe.Field()+":"+fe.Tag())
			}
		}
		h.Log.Debug(c.Request.Context(), "request rejected", "path", c.FullPath(), "fields", fields, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": message})
		return false
	}
	return true
}

func (h *Handler) serverError(c *gin.Context, message string, err error) {
	h.Log.Error(c.Request.Context(), message, "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": message})
}

// startSession issues a session token and sets it as an HttpOnly cookie.
func (h *Handler) startSession(c *gin.Context, userID int64) (string, error) {
	token, err := utils.GenerateJWT(userID, h.Session.Secret, h.Session.TTL)
	if err != nil {
		return "", err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, int(h.Session.TTL.Seconds()), "/", "", h.Session.SecureCookie, true)
	return token, nil
}

func (h *Handler) endSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.Session.SecureCookie, true)
}

// RequireAdmin lets the request through only when the session user
// currently carries the admin flag.
func (h *Handler) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
			return
		}
		user, err := h.Store.GetUser(c.Request.Context(), userID)
		if err != nil {
			h.Log.Error(c.Request.Context(), "admin check failed", "user_id", userID, "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
			return
		}
		if !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			return
		}
		c.Next()
	}
}
