package v1

import (
	"net/http"

	"github.com/deespora/backoffice/internal/api/dto"
	ierr "github.com/deespora/backoffice/internal/errors"
	"github.com/deespora/backoffice/internal/listing"
	"github.com/deespora/backoffice/internal/logger"
	"github.com/deespora/backoffice/internal/service"
	"github.com/deespora/backoffice/internal/types"
	"github.com/gin-gonic/gin"
)

// allListings selects the combined view over every listing kind
const allListings = "all"

type ViewHandler struct {
	listingService service.ListingService
	logger         *logger.Logger
}

func NewViewHandler(listingService service.ListingService, logger *logger.Logger) *ViewHandler {
	return &ViewHandler{
		listingService: listingService,
		logger:         logger,
	}
}

// @Summary List view
// @Description One page of a kind after filter, search and sort. Use "all" for every listing kind.
// @Tags Views
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Kind"
// @Param filter query dto.ListViewRequest false "View state"
// @Success 200 {object} types.ListResponse[record.Record]
// @Failure 400 {object} ierr.ErrorResponse
// @Router /views/{kind} [get]
func (h *ViewHandler) ListView(c *gin.Context) {
	var kind types.Kind
	if c.Param("kind") != allListings {
		k, err := types.ParseKind(c.Param("kind"))
		if err != nil {
			c.Error(err)
			return
		}
		kind = k
	}

	view, ok := bindView(c)
	if !ok {
		return
	}

	result, err := h.listingService.View(c.Request.Context(), kind, view)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result.ToListResponse())
}

// @Summary Single view
// @Tags Views
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Kind"
// @Param id path string true "Record ID"
// @Success 200 {object} record.Record
// @Failure 404 {object} ierr.ErrorResponse
// @Router /views/{kind}/{id} [get]
func (h *ViewHandler) GetView(c *gin.Context) {
	kind, err := types.ParseKind(c.Param("kind"))
	if err != nil {
		c.Error(err)
		return
	}

	rec, err := h.listingService.Get(c.Request.Context(), kind, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// bindView reads the list view query. On failure the error is attached to c
// and ok is false.
func bindView(c *gin.Context) (view listing.ViewState, ok bool) {
	var req dto.ListViewRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Please check the query parameters").
			Mark(ierr.ErrValidation))
		return view, false
	}
	view, err := req.ToViewState()
	if err != nil {
		c.Error(err)
		return view, false
	}
	return view, true
}
