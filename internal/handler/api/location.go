package api

import (
	"errors"
	"net/http"

	"bagtrack/internal/handler/httperr"
	"bagtrack/internal/pkg/errs"
	"bagtrack/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LocationHandler struct {
	locationQueries queries.LocationQueries
	serviceQueries  queries.ServiceItemQueries
}

func NewLocationHandler(locationQueries queries.LocationQueries, serviceQueries queries.ServiceItemQueries) *LocationHandler {
	return &LocationHandler{
		locationQueries: locationQueries,
		serviceQueries:  serviceQueries,
	}
}

// @Summary List locations
// @Description List active pickup and delivery locations
// @Tags locations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.LocationView
// @Router /locations [get]
func (h *LocationHandler) ListLocations(c *gin.Context) {
	views, err := h.locationQueries.ListActive(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get location
// @Description Get one location by ID
// @Tags locations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Success 200 {object} queries.LocationView
// @Failure 404 {object} httperr.Response
// @Router /locations/{id} [get]
func (h *LocationHandler) GetLocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid location ID", nil)
		return
	}

	view, err := h.locationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrLocationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Location not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Resolve location by QR
// @Description Resolve a scanned location QR token; inactive tokens read as unknown
// @Tags locations
// @Produce json
// @Security BearerAuth
// @Param token path string true "QR token"
// @Success 200 {object} queries.LocationView
// @Failure 404 {object} httperr.Response
// @Router /locations/qr/{token} [get]
func (h *LocationHandler) ResolveByQR(c *gin.Context) {
	view, err := h.locationQueries.ResolveByQR(c.Request.Context(), c.Param("token"))
	if err != nil {
		if errors.Is(err, errs.ErrLocationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Location not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary List services
// @Description List the active service catalog
// @Tags services
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.ServiceItemView
// @Router /services [get]
func (h *LocationHandler) ListServices(c *gin.Context) {
	views, err := h.serviceQueries.ListActive(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}
