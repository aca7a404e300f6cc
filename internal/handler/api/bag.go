package api

import (
	"errors"
	"net/http"

	reqdto "bagtrack/internal/handler/dto/request"
	"bagtrack/internal/handler/middleware"
	"bagtrack/internal/pkg/errs"
	"bagtrack/internal/usecase/commands"
	"bagtrack/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BagHandler struct {
	bagCommands commands.BagCommands
	bagQueries  queries.BagQueries
}

func NewBagHandler(bagCommands commands.BagCommands, bagQueries queries.BagQueries) *BagHandler {
	return &BagHandler{
		bagCommands: bagCommands,
		bagQueries:  bagQueries,
	}
}

// @Summary Create bag
// @Description Create a laundry bag order with priced line items
// @Tags bags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBagRequest true "Bag request"
// @Success 201 {object} queries.BagView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bags [post]
func (h *BagHandler) CreateBag(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bagCommands.CreateBag(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrLocationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Location not found",
			})
		case errors.Is(err, errs.ErrEmptyOrder):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Order must contain at least one item",
			})
		case errors.Is(err, errs.ErrInvalidQuantity):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Item quantity must be at least 1",
			})
		case errors.Is(err, errs.ErrUnknownServiceItem):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Unknown service item",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary Get bag
// @Description Get one bag with items and status timeline
// @Tags bags
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bag ID"
// @Success 200 {object} queries.BagView
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bags/{id} [get]
func (h *BagHandler) GetBag(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	bagID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid bag ID",
		})
		return
	}

	view, err := h.bagQueries.GetByID(c.Request.Context(), actor, bagID)
	if err != nil {
		respondBagReadError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Resolve bag by tag
// @Description Look up a bag by its printed tag or scanned QR payload
// @Tags bags
// @Produce json
// @Security BearerAuth
// @Param tag path string true "Bag tag"
// @Success 200 {object} queries.BagView
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bags/tag/{tag} [get]
func (h *BagHandler) GetBagByTag(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.bagQueries.GetByTag(c.Request.Context(), actor, normalizeTag(c.Param("tag")))
	if err != nil {
		respondBagReadError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary List own bags
// @Description List the authenticated customer's bags
// @Tags bags
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} queries.BagPage
// @Failure 401 {object} map[string]string
// @Router /bags [get]
func (h *BagHandler) ListBags(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	page, err := h.bagQueries.ListByCustomer(c.Request.Context(), userID, statusFilter(c), pageParam(c, "page"), pageParam(c, "page_size"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, page)
}

// @Summary Update bag locations
// @Description Change pickup or delivery endpoints before the bag is picked up
// @Tags bags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bag ID"
// @Param request body reqdto.UpdateBagLocationsRequest true "Locations request"
// @Success 200 {object} queries.BagView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bags/{id}/locations [patch]
func (h *BagHandler) UpdateLocations(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	bagID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid bag ID",
		})
		return
	}

	var req reqdto.UpdateBagLocationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bagCommands.UpdateLocations(c.Request.Context(), actor, bagID, req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBagNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Bag not found",
			})
		case errors.Is(err, errs.ErrBagAccessDenied):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Access denied",
			})
		case errors.Is(err, errs.ErrLocationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Location not found",
			})
		case errors.Is(err, errs.ErrLocationLockedAfterPickup):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Locations cannot change after pickup",
			})
		case errors.Is(err, errs.ErrTransitionConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Bag was modified concurrently, retry",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

func currentActor(c *gin.Context) (queries.Actor, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return queries.Actor{}, false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		return queries.Actor{}, false
	}
	return queries.Actor{UserID: userID, Role: role}, true
}

func respondBagReadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrBagNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Bag not found",
		})
	case errors.Is(err, errs.ErrBagAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Access denied",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func statusFilter(c *gin.Context) *string {
	if status := c.Query("status"); status != "" {
		return &status
	}
	return nil
}
