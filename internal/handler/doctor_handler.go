package handler

import (
	"errors"
	"net/http"
	"strconv"

	"smart-healthcare-backend/internal/service"
	"smart-healthcare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	doctorService *service.DoctorService
}

func NewDoctorHandler(doctorService *service.DoctorService) *DoctorHandler {
	return &DoctorHandler{doctorService: doctorService}
}

// ListDoctors retrieves doctors, optionally filtered by specialization
func (h *DoctorHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.doctorService.ListDoctors(c.Request.Context(), c.Query("specialization"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch doctors")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"doctors": doctors,
		"count":   len(doctors),
	})
}

// GetDoctor retrieves a specific doctor by ID
func (h *DoctorHandler) GetDoctor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor ID")
		return
	}

	doctor, err := h.doctorService.GetDoctorByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrDoctorNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Doctor not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch doctor")
		return
	}

	utils.SuccessResponse(c, doctor)
}

// ListDoctorsByHospital retrieves the doctors attached to a hospital
func (h *DoctorHandler) ListDoctorsByHospital(c *gin.Context) {
	hospitalID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	doctors, err := h.doctorService.ListDoctorsByHospital(c.Request.Context(), uint(hospitalID))
	if err != nil {
		if errors.Is(err, service.ErrHospitalNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Hospital not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch doctors")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"doctors": doctors,
		"count":   len(doctors),
	})
}
