package v1

import (
	"net/http"

	"github.com/deespora/backoffice/internal/api/dto"
	"github.com/deespora/backoffice/internal/auth"
	ierr "github.com/deespora/backoffice/internal/errors"
	"github.com/deespora/backoffice/internal/logger"
	"github.com/gin-gonic/gin"
)

// LoginHandler is the login function: it checks the configured admin
// credentials and issues the token the rest of the gateway accepts. Its
// responses keep the login function's own shape rather than the gateway's
// error envelope.
type LoginHandler struct {
	provider auth.Provider
	limiter  *auth.Limiter
	logger   *logger.Logger
}

func NewLoginHandler(provider auth.Provider, limiter *auth.Limiter, logger *logger.Logger) *LoginHandler {
	return &LoginHandler{
		provider: provider,
		limiter:  limiter,
		logger:   logger,
	}
}

// @Summary Login
// @Description Exchange the admin email and password for a token
// @Tags Auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login request"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.MessageResponse
// @Router /login [post]
func (h *LoginHandler) Login(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method Not Allowed"})
		return
	}

	if h.limiter != nil && !h.limiter.Allow(c.ClientIP()) {
		h.logger.WithContext(c.Request.Context()).Warnw("login rate limited", "ip", c.ClientIP())
		c.JSON(http.StatusTooManyRequests, dto.MessageResponse{
			Success: false,
			Message: "Too many login attempts. Please try again later.",
		})
		return
	}

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithContext(c.Request.Context()).Errorw("failed to parse login body", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
			"error":   err.Error(),
		})
		return
	}

	resp, err := h.provider.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if !ierr.IsUnauthorized(err) {
			h.logger.WithContext(c.Request.Context()).Errorw("login failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Server error",
				"error":   ierr.DisplayMessage(err, "Server error"),
			})
			return
		}
		h.logger.WithContext(c.Request.Context()).Infow("rejected login", "email", req.Email)
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{
			Success: false,
			Message: "Invalid credentials",
		})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		Message: "Login successful",
		Token:   resp.Token,
		Email:   resp.Email,
	})
}
