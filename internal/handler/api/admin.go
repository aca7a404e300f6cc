package api

import (
	"errors"
	"net/http"

	reqdto "bagtrack/internal/handler/dto/request"
	"bagtrack/internal/pkg/errs"
	"bagtrack/internal/usecase/commands"
	"bagtrack/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler groups the back-office operations. Every route behind it runs
// under RequireAdmin.
type AdminHandler struct {
	bagCommands      commands.BagCommands
	batchCommands    commands.BatchCommands
	locationCommands commands.LocationCommands
	serviceCommands  commands.ServiceItemCommands
	bagQueries       queries.BagQueries
}

func NewAdminHandler(
	bagCommands commands.BagCommands,
	batchCommands commands.BatchCommands,
	locationCommands commands.LocationCommands,
	serviceCommands commands.ServiceItemCommands,
	bagQueries queries.BagQueries,
) *AdminHandler {
	return &AdminHandler{
		bagCommands:      bagCommands,
		batchCommands:    batchCommands,
		locationCommands: locationCommands,
		serviceCommands:  serviceCommands,
		bagQueries:       bagQueries,
	}
}

// @Summary List all bags
// @Description List every bag across customers
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} queries.BagPage
// @Failure 403 {object} map[string]string
// @Router /admin/bags [get]
func (h *AdminHandler) ListAllBags(c *gin.Context) {
	page, err := h.bagQueries.ListAll(c.Request.Context(), statusFilter(c), pageParam(c, "page"), pageParam(c, "page_size"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary Update bag status
// @Description Advance one bag a single pipeline step
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bag ID"
// @Param request body reqdto.UpdateBagStatusRequest true "Status request"
// @Success 200 {object} queries.BagView
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/bags/{id}/status [patch]
func (h *AdminHandler) UpdateBagStatus(c *gin.Context) {
	bagID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid bag ID",
		})
		return
	}

	var req reqdto.UpdateBagStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bagCommands.UpdateStatus(c.Request.Context(), bagID, req.Status, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBagNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Bag not found",
			})
		case errors.Is(err, errs.ErrInvalidTransition):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid status transition",
			})
		case errors.Is(err, errs.ErrInvalidNote):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid note",
			})
		case errors.Is(err, errs.ErrTransitionConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Bag was updated concurrently, retry",
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

// @Summary Batch update statuses
// @Description Apply one transition to many bags; failures are reported per bag
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BatchUpdateStatusRequest true "Batch request"
// @Success 200 {object} commands.BatchResult
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 413 {object} map[string]string
// @Router /admin/bags/batch/status [post]
func (h *AdminHandler) BatchUpdateStatus(c *gin.Context) {
	var req reqdto.BatchUpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.batchCommands.UpdateStatuses(c.Request.Context(), req.BagIDs, req.Status, req.Note)
	if err != nil {
		if errors.Is(err, errs.ErrBatchTooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": "Batch exceeds the maximum size",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Create location
// @Description Register a pickup/delivery location with a fresh QR token
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateLocationRequest true "Location request"
// @Success 201 {object} queries.LocationView
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/locations [post]
func (h *AdminHandler) CreateLocation(c *gin.Context) {
	var req reqdto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.locationCommands.CreateLocation(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, errs.ErrDuplicateQRToken) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "QR token collision, retry",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary Deactivate location
// @Description Retire a location; existing bags keep referencing it
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/locations/{id} [delete]
func (h *AdminHandler) DeactivateLocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid location ID",
		})
		return
	}

	if err := h.locationCommands.DeactivateLocation(c.Request.Context(), id); err != nil {
		if errors.Is(err, errs.ErrLocationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Location not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Create service item
// @Description Add a catalog entry with a unit price
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateServiceItemRequest true "Service item request"
// @Success 201 {object} queries.ServiceItemView
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/services [post]
func (h *AdminHandler) CreateServiceItem(c *gin.Context) {
	var req reqdto.CreateServiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.serviceCommands.CreateServiceItem(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidPrice) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unit price cannot be negative",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, view)
}
