package handlers

import (
	"MediBook/services"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	stats   *services.StatsService
	doctors *services.DoctorService
}

func NewAdminHandler(stats *services.StatsService, doctors *services.DoctorService) *AdminHandler {
	return &AdminHandler{stats: stats, doctors: doctors}
}

// GetStats handles GET /admin/stats.
func (h *AdminHandler) GetStats(c *gin.Context) {
	overview, err := h.stats.Overview(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, overview)
}

// SearchDoctors handles GET /admin/doctors. Unlike the public API it
// includes blacklisted doctors.
func (h *AdminHandler) SearchDoctors(c *gin.Context) {
	q := c.Query("q")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))

	result, err := h.doctors.AdminSearch(c.Request.Context(), q, page, perPage)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"doctors":  result.Doctors,
		"page":     result.Page,
		"per_page": result.PerPage,
		"total":    result.Total,
	})
}

// CreateDoctor handles POST /admin/doctors.
func (h *AdminHandler) CreateDoctor(c *gin.Context) {
	var in services.DoctorInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	if in.FullName == "" || in.Specialization == "" {
		c.JSON(400, gin.H{"error": "fullname and specialization are required"})
		return
	}

	doctor, err := h.doctors.CreateDoctor(c.Request.Context(), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(201, doctor)
}

// SetBlacklist handles POST /admin/doctors/:doctor_id/blacklist.
func (h *AdminHandler) SetBlacklist(c *gin.Context) {
	id, ok := uintParam(c, "doctor_id")
	if !ok {
		c.JSON(400, gin.H{"error": "Invalid doctor ID"})
		return
	}

	var in struct {
		Blacklisted bool `json:"blacklisted"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.doctors.SetBlacklisted(c.Request.Context(), id, in.Blacklisted); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"id": id, "blacklisted": in.Blacklisted})
}
