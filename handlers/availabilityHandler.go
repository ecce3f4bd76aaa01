package handlers

import (
	"MediBook/services"
	"MediBook/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler serves the doctor dashboard and window management.
type AvailabilityHandler struct {
	doctors *services.DoctorService
}

func NewAvailabilityHandler(doctors *services.DoctorService) *AvailabilityHandler {
	return &AvailabilityHandler{doctors: doctors}
}

// GetSchedule handles GET /doctor/schedule.
func (h *AvailabilityHandler) GetSchedule(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.JSON(401, gin.H{"error": "Not authenticated"})
		return
	}

	schedule, err := h.doctors.ScheduleForUser(c.Request.Context(), actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, schedule)
}

// AddAvailability handles POST /doctor/availabilities.
func (h *AvailabilityHandler) AddAvailability(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.JSON(401, gin.H{"error": "Not authenticated"})
		return
	}

	var in services.WindowInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	if err := utils.ValidateWindow(in.Date, in.StartTime, in.EndTime); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	window, err := h.doctors.AddWindow(c.Request.Context(), actor, in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(201, window)
}

// DeleteAvailability handles DELETE /doctor/availabilities/:availability_id.
func (h *AvailabilityHandler) DeleteAvailability(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.JSON(401, gin.H{"error": "Not authenticated"})
		return
	}

	id, ok := uintParam(c, "availability_id")
	if !ok {
		c.JSON(400, gin.H{"error": "Invalid availability ID"})
		return
	}

	if err := h.doctors.RemoveWindow(c.Request.Context(), actor, id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(204, nil)
}
