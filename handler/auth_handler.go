package handler

import (
	"log"

	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/mileusna/useragent"
)

type AuthHandler struct {
	Users *usecase.UserService
}

func NewAuthHandler(users *usecase.UserService) *AuthHandler {
	return &AuthHandler{Users: users}
}

// Register creates a user and returns a signed session token.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackAuthAttempt("failure", "register")
		utils.BadRequest(c, "invalid request")
		return
	}

	token, err := h.Users.Register(c.Request.Context(), req.Name, req.Password, req.Role)
	if err != nil {
		respondError(c, err, "error registering user")
		return
	}

	utils.Created(c, "user registered successfully", gin.H{"token": token})
}

// Login verifies credentials and returns a fresh token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackAuthAttempt("failure", "login")
		utils.BadRequest(c, "invalid request")
		return
	}

	token, user, err := h.Users.Login(c.Request.Context(), req.Name, req.Password)
	if err != nil {
		respondError(c, err, "error logging in")
		return
	}

	// Audit line with the client device, tokens themselves are never logged.
	ua := useragent.Parse(c.GetHeader("User-Agent"))
	log.Printf("login: user=%s browser=%s os=%s mobile=%t", user.UserID, ua.Name, ua.OS, ua.Mobile)

	utils.Success(c, gin.H{
		"token": token,
		"user": dto.UserResponse{
			ID:   user.UserID,
			Name: user.Name,
			Role: user.Role,
		},
	})
}
