package http

import (
	"net/http"

	"flow-social/pkg/jwt"
	"flow-social/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewAuthHandler(jwtService *jwt.Service, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		jwtService: jwtService,
		logger:     logger,
	}
}

type CreateSessionRequest struct {
	Address string `json:"address"`
}

// CreateSession godoc
// @Summary      Start a wallet session
// @Description  Issues a session token for a connected wallet address
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        session body CreateSessionRequest true "Wallet address"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /auth/session [post]
func (h *AuthHandler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Wallet address is required"})
		return
	}

	token, err := h.jwtService.GenerateToken(req.Address, "user")
	if err != nil {
		h.logger.Error("Failed to generate session token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"address": req.Address,
	})
}

// Me godoc
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"address":  c.GetString("user_address"),
		"loggedIn": true,
	})
}
