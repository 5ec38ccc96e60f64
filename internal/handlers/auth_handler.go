package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/beastfit-api/internal/middleware"
	"github.com/harentsoaR/beastfit-api/internal/models"
	"github.com/harentsoaR/beastfit-api/internal/store"
	"github.com/harentsoaR/beastfit-api/internal/utils"
)

const msgUserExists = "User already exists with this email"

// RegisterUser creates an account and starts a session for it.
func (h *Handler) RegisterUser(c *gin.Context) {
	var req models.RegisterRequest
	if !h.bindJSON(c, &req, "Invalid user data") {
		return
	}
	ctx := c.Request.Context()

	existing, err := h.Store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		h.serverError(c, "Failed to create user", err)
		return
	}
	if existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgUserExists})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		h.serverError(c, "Failed to create user", err)
		return
	}

	user, err := h.Store.CreateUser(ctx, req.ToNewUser(hashedPassword))
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"message": msgUserExists})
			return
		}
		h.serverError(c, "Failed to create user", err)
		return
	}
	h.Log.Info(ctx, "user registered", "user_id", user.ID)

	token, err := h.startSession(c, user.ID)
	if err != nil {
		h.serverError(c, "Could not start session", err)
		return
	}

	// models.User never serializes its password.
	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

// Login answers the same way for an unknown email and a wrong password.
func (h *Handler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !h.bindJSON(c, &req, "Invalid login data") {
		return
	}
	ctx := c.Request.Context()

	user, err := h.Store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		h.serverError(c, "Login failed", err)
		return
	}
	if user == nil || !utils.CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := h.startSession(c, user.ID)
	if err != nil {
		h.serverError(c, "Could not start session", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// GetCurrentUser returns the profile of the session user.
func (h *Handler) GetCurrentUser(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}

	user, err := h.Store.GetUser(c.Request.Context(), userID)
	if err != nil {
		h.serverError(c, "Server error", err)
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *Handler) Logout(c *gin.Context) {
	h.endSession(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
