package v1

import (
	"net/http"

	ierr "github.com/deespora/backoffice/internal/errors"
	"github.com/deespora/backoffice/internal/logger"
	"github.com/deespora/backoffice/internal/service"
	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService service.CategoryService
	logger          *logger.Logger
}

func NewCategoryHandler(categoryService service.CategoryService, logger *logger.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

type addCategoryRequest struct {
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Active bool   `json:"active"`
}

// @Summary List categories
// @Tags Categories
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.Category
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.categoryService.List(c.Request.Context()))
}

// @Summary Add category
// @Description Adds a category to this gateway's table only
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} service.Category
// @Router /categories [post]
func (h *CategoryHandler) AddCategory(c *gin.Context) {
	var req addCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Please check the request payload").
			Mark(ierr.ErrValidation))
		return
	}

	cat, err := h.categoryService.Add(c.Request.Context(), req.Name, req.Slug, req.Active)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

// @Summary Toggle category
// @Description Flips a category between active and inactive in this gateway's table only
// @Tags Categories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} service.Category
// @Router /categories/{id}/toggle [patch]
func (h *CategoryHandler) ToggleCategory(c *gin.Context) {
	cat, err := h.categoryService.Toggle(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, cat)
}
