package handler

import (
	"errors"
	"net/http"
	"strconv"

	"smart-healthcare-backend/internal/service"
	"smart-healthcare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type HospitalHandler struct {
	hospitalService *service.HospitalService
	locatorService  *service.LocatorService
}

func NewHospitalHandler(hospitalService *service.HospitalService, locatorService *service.LocatorService) *HospitalHandler {
	return &HospitalHandler{
		hospitalService: hospitalService,
		locatorService:  locatorService,
	}
}

// GetAllHospitals retrieves all active hospitals
func (h *HospitalHandler) GetAllHospitals(c *gin.Context) {
	hospitals, err := h.hospitalService.GetAllHospitals(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch hospitals")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"hospitals": hospitals,
		"count":     len(hospitals),
	})
}

// GetHospital retrieves a specific hospital by ID
func (h *HospitalHandler) GetHospital(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	hospital, err := h.hospitalService.GetHospitalByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrHospitalNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Hospital not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch hospital")
		return
	}

	utils.SuccessResponse(c, hospital)
}

// FindNearest returns hospitals within the search radius of the caller's
// location, nearest first. An empty list is a valid response, not an error.
func (h *HospitalHandler) FindNearest(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr != nil || lonErr != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "lat and lon query parameters are required")
		return
	}

	// Radius is optional; the service falls back to the 50 km default.
	var radius float64
	if raw := c.Query("radius"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "radius must be a positive number")
			return
		}
		radius = parsed
	}

	results, err := h.locatorService.FindNearest(c.Request.Context(), lat, lon, radius)
	if err != nil {
		if errors.Is(err, service.ErrLocationUnavailable) {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid coordinates")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to search hospitals")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"hospitals": results,
		"count":     len(results),
	})
}
