package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/studiosandyyasmin/salon-scheduler/internal/domain/schedule"
	"github.com/studiosandyyasmin/salon-scheduler/internal/history"
	"github.com/studiosandyyasmin/salon-scheduler/internal/httperr"
	"github.com/studiosandyyasmin/salon-scheduler/internal/metrics"
	"github.com/studiosandyyasmin/salon-scheduler/internal/models"
	ucAppointment "github.com/studiosandyyasmin/salon-scheduler/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db *gorm.DB

	availabilityUC *ucAppointment.GetAvailability
	calendarUC     *ucAppointment.GetCalendarMonth
	createUC       *ucAppointment.CreateAppointment
}

func NewPublicHandler(
	db *gorm.DB,
	availabilityUC *ucAppointment.GetAvailability,
	calendarUC *ucAppointment.GetCalendarMonth,
	createUC *ucAppointment.CreateAppointment,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		availabilityUC: availabilityUC,
		calendarUC:     calendarUC,
		createUC:       createUC,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`

	ServiceID      uint `json:"service_id" binding:"required"`
	ProfessionalID uint `json:"professional_id" binding:"required"`

	Date string `json:"data" binding:"required"` // YYYY-MM-DD
	Time string `json:"hora" binding:"required"` // HH:mm
}

////////////////////////////////////////////////////////
// CATÁLOGO
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.Where("active = true")
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *PublicHandler) ListProfessionals(c *gin.Context) {
	var pros []models.Professional
	if err := h.db.
		Where("active = true").
		Order("id ASC").
		Find(&pros).Error; err != nil {
		httperr.Internal(c, "failed_to_list_professionals", "Erro ao listar profissionais.")
		return
	}

	c.JSON(http.StatusOK, pros)
}

////////////////////////////////////////////////////////
// CALENDÁRIO + DISPONIBILIDADE
////////////////////////////////////////////////////////

func (h *PublicHandler) Calendar(c *gin.Context) {
	professionalID, err := strconv.ParseUint(c.Query("professional_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_professional_id", "Profissional inválido.")
		return
	}

	year, err1 := strconv.Atoi(c.Query("year"))
	month, err2 := strconv.Atoi(c.Query("month"))
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "invalid_year_or_month", "Ano e mês são obrigatórios.")
		return
	}

	days, err := h.calendarUC.Execute(c.Request.Context(), uint(professionalID), year, month)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":  year,
		"month": month,
		"days":  days,
	})
}

func (h *PublicHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	serviceIDStr := c.Query("service_id")
	professionalIDStr := c.Query("professional_id")

	if dateStr == "" || serviceIDStr == "" || professionalIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Data, serviço e profissional obrigatórios.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	professionalID, err := strconv.ParseUint(professionalIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_professional_id", "Profissional inválido.")
		return
	}

	slots, err := h.availabilityUC.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			ProfessionalID: uint(professionalID),
			ServiceID:      uint(serviceID),
			Date:           dateStr,
		},
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// CRIAÇÃO DE AGENDAMENTO
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		ucAppointment.CreateAppointmentInput{
			ClientName:     req.ClientName,
			ClientPhone:    req.ClientPhone,
			ClientEmail:    req.ClientEmail,
			ServiceID:      req.ServiceID,
			ProfessionalID: req.ProfessionalID,
			Date:           req.Date,
			Time:           req.Time,
			Actor:          history.ActorCliente,
		},
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	metrics.BookingsCreated.Inc()

	c.JSON(http.StatusCreated, ap)
}
