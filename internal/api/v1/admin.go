package v1

import (
	"net/http"

	"github.com/deespora/backoffice/internal/api/dto"
	ierr "github.com/deespora/backoffice/internal/errors"
	"github.com/deespora/backoffice/internal/logger"
	"github.com/deespora/backoffice/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService service.AdminService
	logger       *logger.Logger
}

func NewAdminHandler(adminService service.AdminService, logger *logger.Logger) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		logger:       logger,
	}
}

// @Summary List admins
// @Tags Admins
// @Produce json
// @Security BearerAuth
// @Param filter query dto.ListViewRequest false "View state"
// @Success 200 {object} types.ListResponse[record.Record]
// @Router /admins [get]
func (h *AdminHandler) ListAdmins(c *gin.Context) {
	view, ok := bindView(c)
	if !ok {
		return
	}
	result, err := h.adminService.View(c.Request.Context(), view)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result.ToListResponse())
}

// @Summary Create admin
// @Tags Admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param admin body dto.CreateAdminRequest true "Admin"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /admins [post]
func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var req dto.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Please check the request payload").
			Mark(ierr.ErrValidation))
		return
	}

	if err := h.adminService.Create(c.Request.Context(), &req); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.MessageResponse{
		Success: true,
		Message: "Admin created successfully",
	})
}
