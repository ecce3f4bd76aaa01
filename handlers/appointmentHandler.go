package handlers

import (
	"MediBook/services"
	"MediBook/utils"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	booking      *services.BookingService
	appointments *services.AppointmentService
	treatments   *services.TreatmentService
	doctors      *services.DoctorService
}

func NewAppointmentHandler(
	booking *services.BookingService,
	appointments *services.AppointmentService,
	treatments *services.TreatmentService,
	doctors *services.DoctorService,
) *AppointmentHandler {
	return &AppointmentHandler{
		booking:      booking,
		appointments: appointments,
		treatments:   treatments,
		doctors:      doctors,
	}
}

// BookAppointment handles POST /appointments for the acting patient.
func (h *AppointmentHandler) BookAppointment(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.JSON(401, gin.H{"error": "Not authenticated"})
		return
	}

	var in struct {
		DoctorID uint   `json:"doctor_id"`
		Date     string `json:"date"`
		Time     string `json:"time"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	if err := utils.ValidateSlot(in.Date, in.Time); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	appointment, err := h.booking.BookForUser(c.Request.Context(), actor, in.DoctorID, in.Date, in.Time)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(201, appointment)
}

// ListMyAppointments handles GET /appointments for the acting patient.
func (h *AppointmentHandler) ListMyAppointments(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.JSON(401, gin.H{"error": "Not authenticated"})
		return
	}

	appointments, err := h.appointments.ListForPatient(c.Request.Context(), actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, appointments)
}

// CancelAppointment handles POST /appointments/:appointment_id/cancel.
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.JSON(401, gin.H{"error": "Not authenticated"})
		return
	}

	id, ok := uintParam(c, "appointment_id")
	if !ok {
		c.JSON(400, gin.H{"error": "Invalid appointment ID"})
		return
	}

	appointment, err := h.appointments.Cancel(c.Request.Context(), id, actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, appointment)
}

// CompleteAppointment handles POST /appointments/:appointment_id/complete
// for the appointment's own doctor.
func (h *AppointmentHandler) CompleteAppointment(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.JSON(401, gin.H{"error": "Not authenticated"})
		return
	}

	id, ok := uintParam(c, "appointment_id")
	if !ok {
		c.JSON(400, gin.H{"error": "Invalid appointment ID"})
		return
	}

	var in services.TreatmentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	doctor, err := h.doctors.DoctorForUser(c.Request.Context(), actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	treatment, err := h.treatments.Complete(c.Request.Context(), id, doctor.ID, in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(201, treatment)
}
