package handler

import (
	"fmt"
	"net/http"

	model "auction-backend/internal/models"
	"auction-backend/services/user/helpers"
	"auction-backend/utils"

	"github.com/gin-gonic/gin"
)

// cookieMaxAge keeps the jwt cookie alive for one day, matching the token lifetime.
const cookieMaxAge = 24 * 60 * 60

type UserServiceInterface interface {
	Register(username, email, password, confirmPassword string) (model.User, error)
	Login(email, password string) (model.User, string, error)
	Profile(userID string) (model.User, error)
}

type UserHandler struct {
	service UserServiceInterface
}

func NewUserHandler(service UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// RegisterHandler handles POST /api/users/register
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	user, err := h.service.Register(req.Username, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RegisterHandler: registration failed", map[string]any{"email": req.Email, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToUserResponse(user), "user registered successfully")
	helpers.LogSuccess("RegisterHandler", "user registered successfully", map[string]any{
		"user_id": user.UserID,
	})
}

// LoginHandler handles POST /api/users/login
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	user, token, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("LoginHandler: login failed", map[string]any{"email": req.Email, "error": err.Error()})
		return
	}

	// token travels both as an http-only cookie and in the payload for
	// clients that prefer the Authorization header
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("jwt", token, cookieMaxAge, "/", "", false, true)

	utils.JSONResponse(c, http.StatusOK, gin.H{
		"user":  helpers.ToUserResponse(user),
		"token": token,
	}, "login successful")
	helpers.LogSuccess("LoginHandler", "login successful", map[string]any{
		"user_id": user.UserID,
	})
}

// ProfileHandler handles GET /api/users/profile
func (h *UserHandler) ProfileHandler(c *gin.Context) {
	userID := c.GetString("userID")
	user, err := h.service.Profile(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ProfileHandler: profile lookup failed", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToUserResponse(user), "profile retrieved successfully")
}

// LogoutHandler handles POST /api/users/logout
func (h *UserHandler) LogoutHandler(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("jwt", "", -1, "/", "", false, true)
	utils.JSONResponse(c, http.StatusOK, nil, "logged out successfully")
}
