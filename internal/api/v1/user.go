package v1

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/deespora/backoffice/internal/api/dto"
	"github.com/deespora/backoffice/internal/logger"
	"github.com/deespora/backoffice/internal/service"
	"github.com/deespora/backoffice/internal/types"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
	logger      *logger.Logger
}

func NewUserHandler(userService service.UserService, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// @Summary Activate user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} dto.MessageResponse
// @Router /users/{id}/activate [patch]
func (h *UserHandler) ActivateUser(c *gin.Context) {
	h.setActive(c, true)
}

// @Summary Deactivate user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} dto.MessageResponse
// @Router /users/{id}/deactivate [patch]
func (h *UserHandler) DeactivateUser(c *gin.Context) {
	h.setActive(c, false)
}

func (h *UserHandler) setActive(c *gin.Context, active bool) {
	if err := h.userService.SetActive(c.Request.Context(), c.Param("id"), active); err != nil {
		c.Error(err)
		return
	}
	msg := "User deactivated successfully"
	if active {
		msg = "User activated successfully"
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: msg})
}

// @Summary Export users
// @Tags Users
// @Produce text/csv,application/json
// @Security BearerAuth
// @Param format query string false "csv or json" default(csv)
// @Router /users/export [get]
func (h *UserHandler) ExportUsers(c *gin.Context) {
	format, err := types.ParseFileFormat(c.DefaultQuery("format", string(types.FileFormatCSV)))
	if err != nil {
		c.Error(err)
		return
	}

	contentType := "text/csv"
	if format == types.FileFormatJSON {
		contentType = "application/json"
	}

	// buffer so that a failed export still renders as an error response
	var buf bytes.Buffer
	if _, err := h.userService.Export(c.Request.Context(), &buf, format); err != nil {
		c.Error(err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="users.%s"`, format))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
