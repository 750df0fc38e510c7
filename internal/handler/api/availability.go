package api

import (
	"errors"
	"net/http"

	reqdto "venuebook/internal/handler/dto/request"
	resdto "venuebook/internal/handler/dto/response"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityQueries: availabilityQueries,
	}
}

// @Summary Venue availability
// @Description Get the occupied calendar days and booking constraints for a venue
// @Tags venues
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} resdto.VenueAvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /venues/{id}/availability [get]
func (h *AvailabilityHandler) VenueAvailability(c *gin.Context) {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid venue ID format",
		})
		return
	}

	view, err := h.availabilityQueries.VenueAvailability(c.Request.Context(), venueID)
	if err != nil {
		h.renderQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromVenueAvailability(view))
}

// @Summary Validate candidate range
// @Description Check a proposed date range and guest count against venue occupancy
// @Tags venues
// @Accept json
// @Produce json
// @Param id path string true "Venue ID"
// @Param request body reqdto.ValidateRangeRequest true "Candidate range"
// @Success 200 {object} resdto.CandidateCheckResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /venues/{id}/validate [post]
func (h *AvailabilityHandler) ValidateRange(c *gin.Context) {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid venue ID format",
		})
		return
	}

	var req reqdto.ValidateRangeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	candidate, err := req.ToCandidate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	view, err := h.availabilityQueries.CheckCandidate(c.Request.Context(), venueID, candidate)
	if err != nil {
		h.renderQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCandidateCheck(view))
}

func (h *AvailabilityHandler) renderQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrVenueNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Venue not found",
		})
	case errors.Is(err, errs.ErrGatewayUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Venue service is unavailable",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
