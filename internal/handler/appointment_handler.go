package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"smart-healthcare-backend/internal/service"
	"smart-healthcare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	appointmentService *service.AppointmentService
}

func NewAppointmentHandler(appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// BookAppointmentRequest is the booking payload. The patient ID is taken
// from the authenticated session, never from the body.
type BookAppointmentRequest struct {
	DoctorID uint   `json:"doctor_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
}

// Book creates a BOOKED appointment for the authenticated patient
func (h *AppointmentHandler) Book(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	patientID, _ := c.Get("patientID")

	appt, err := h.appointmentService.Book(c.Request.Context(), patientID.(uint), req.DoctorID, date, req.Time)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrSlotConflict):
			utils.ErrorResponse(c, http.StatusConflict, "Time slot is already booked, please choose another time")
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to book appointment")
		}
		return
	}

	utils.CreatedResponse(c, appt)
}

// Cancel cancels the authenticated patient's own appointment
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	patientID, _ := c.Get("patientID")

	appt, err := h.appointmentService.Cancel(c.Request.Context(), uint(id), patientID.(uint))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAppointmentNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, "Appointment not found")
		case errors.Is(err, service.ErrForbidden):
			utils.ErrorResponse(c, http.StatusForbidden, "You can only cancel your own appointments")
		case errors.Is(err, service.ErrInvalidState):
			utils.ErrorResponse(c, http.StatusConflict, "Appointment is already cancelled or completed")
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to cancel appointment")
		}
		return
	}

	utils.SuccessResponse(c, appt)
}

// GetAppointment retrieves one of the authenticated patient's appointments
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	patientID, _ := c.Get("patientID")

	appt, err := h.appointmentService.GetByID(c.Request.Context(), uint(id), patientID.(uint))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAppointmentNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, "Appointment not found")
		case errors.Is(err, service.ErrForbidden):
			utils.ErrorResponse(c, http.StatusForbidden, "You can only view your own appointments")
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch appointment")
		}
		return
	}

	utils.SuccessResponse(c, appt)
}

// ListMyAppointments retrieves the authenticated patient's full history,
// all statuses, ordered by date then time
func (h *AppointmentHandler) ListMyAppointments(c *gin.Context) {
	patientID, _ := c.Get("patientID")

	appts, err := h.appointmentService.ListForPatient(c.Request.Context(), patientID.(uint))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch appointments")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"appointments": appts,
		"count":        len(appts),
	})
}

// ListDoctorAppointments retrieves a doctor's schedule
func (h *AppointmentHandler) ListDoctorAppointments(c *gin.Context) {
	doctorID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor ID")
		return
	}

	appts, err := h.appointmentService.ListForDoctor(c.Request.Context(), uint(doctorID))
	if err != nil {
		if errors.Is(err, service.ErrDoctorNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Doctor not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch appointments")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"appointments": appts,
		"count":        len(appts),
	})
}
