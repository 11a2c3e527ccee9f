package v1

import (
	"net/http"

	"github.com/deespora/backoffice/internal/api/dto"
	ierr "github.com/deespora/backoffice/internal/errors"
	"github.com/deespora/backoffice/internal/logger"
	"github.com/deespora/backoffice/internal/service"
	"github.com/gin-gonic/gin"
)

type AdvertHandler struct {
	advertService service.AdvertService
	logger        *logger.Logger
}

func NewAdvertHandler(advertService service.AdvertService, logger *logger.Logger) *AdvertHandler {
	return &AdvertHandler{
		advertService: advertService,
		logger:        logger,
	}
}

// @Summary Promote advert
// @Tags Listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param promotion body dto.PromoteRequest true "Promotion"
// @Success 200 {object} dto.MessageResponse
// @Router /listings/{id}/promote [post]
func (h *AdvertHandler) PromoteListing(c *gin.Context) {
	var req dto.PromoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Please check the request payload").
			Mark(ierr.ErrValidation))
		return
	}

	if err := h.advertService.Promote(c.Request.Context(), c.Param("id"), &req); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Advert promoted successfully"})
}

// @Summary Delete advert
// @Tags Listings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Success 200 {object} dto.MessageResponse
// @Router /listings/{id} [delete]
func (h *AdvertHandler) DeleteListing(c *gin.Context) {
	if err := h.advertService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Advert deleted successfully"})
}
