package handlers

import (
	"MediBook/models"
	"MediBook/services"
	"strconv"

	"github.com/gin-gonic/gin"
)

// DoctorHandler serves the public read-only JSON API.
type DoctorHandler struct {
	service *services.DoctorService
}

func NewDoctorHandler(service *services.DoctorService) *DoctorHandler {
	return &DoctorHandler{service: service}
}

type doctorItem struct {
	ID             uint    `json:"id"`
	FullName       string  `json:"fullname"`
	Specialization string  `json:"specialization"`
	Department     *string `json:"department"`
}

func toDoctorItems(doctors []models.Doctor) []doctorItem {
	items := make([]doctorItem, 0, len(doctors))
	for _, d := range doctors {
		item := doctorItem{
			ID:             d.ID,
			FullName:       d.FullName,
			Specialization: d.Specialization,
		}
		if d.Department != nil {
			name := d.Department.Name
			item.Department = &name
		}
		items = append(items, item)
	}
	return items
}

// SearchDoctors handles GET /api/doctors?q=&page=&per_page=
func (h *DoctorHandler) SearchDoctors(c *gin.Context) {
	q := c.Query("q")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))

	result, err := h.service.Search(c.Request.Context(), q, page, perPage)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"doctors":  toDoctorItems(result.Doctors),
		"page":     result.Page,
		"per_page": result.PerPage,
		"total":    result.Total,
	})
}

type availabilityItem struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// GetAvailability handles GET /api/doctors/:doctor_id/availability,
// covering today through today+7 inclusive.
func (h *DoctorHandler) GetAvailability(c *gin.Context) {
	doctorID, ok := uintParam(c, "doctor_id")
	if !ok {
		c.JSON(400, gin.H{"error": "Invalid doctor ID"})
		return
	}

	windows, err := h.service.AvailabilityNext7Days(c.Request.Context(), doctorID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	items := make([]availabilityItem, 0, len(windows))
	for _, w := range windows {
		items = append(items, availabilityItem{Date: w.Date, StartTime: w.StartTime, EndTime: w.EndTime})
	}
	c.JSON(200, gin.H{"availability": items})
}
