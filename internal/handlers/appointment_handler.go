package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studiosandyyasmin/salon-scheduler/internal/history"
	"github.com/studiosandyyasmin/salon-scheduler/internal/httperr"
	"github.com/studiosandyyasmin/salon-scheduler/internal/models"
	ucAppointment "github.com/studiosandyyasmin/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db *gorm.DB

	createUC     *ucAppointment.CreateAppointment
	completeUC   *ucAppointment.CompleteAppointment
	cancelUC     *ucAppointment.CancelAppointment
	rescheduleUC *ucAppointment.RescheduleAppointment
	deleteUC     *ucAppointment.DeleteAppointment
	listByDateUC *ucAppointment.ListAppointmentsByDate
	listByMonUC  *ucAppointment.ListAppointmentsByMonth
}

func NewAppointmentHandler(
	db *gorm.DB,
	createUC *ucAppointment.CreateAppointment,
	completeUC *ucAppointment.CompleteAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	rescheduleUC *ucAppointment.RescheduleAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	listByDateUC *ucAppointment.ListAppointmentsByDate,
	listByMonUC *ucAppointment.ListAppointmentsByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:           db,
		createUC:     createUC,
		completeUC:   completeUC,
		cancelUC:     cancelUC,
		rescheduleUC: rescheduleUC,
		deleteUC:     deleteUC,
		listByDateUC: listByDateUC,
		listByMonUC:  listByMonUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`

	ServiceID      uint `json:"service_id" binding:"required"`
	ProfessionalID uint `json:"professional_id" binding:"required"`

	Date string `json:"data" binding:"required"`
	Time string `json:"hora" binding:"required"`
}

type CancelAppointmentRequest struct {
	Reason string `json:"motivo"`
}

type RescheduleAppointmentRequest struct {
	Date           string `json:"data" binding:"required"`
	Time           string `json:"hora" binding:"required"`
	ProfessionalID uint   `json:"professional_id"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
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
			Actor:          history.ActorAdmin,
		},
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	aps, err := h.listByDateUC.Execute(c.Request.Context(), dateStr)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, aps)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	year, err1 := strconv.Atoi(c.Query("year"))
	month, err2 := strconv.Atoi(c.Query("month"))
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "missing_year_or_month", "Ano e mês são obrigatórios.")
		return
	}

	aps, err := h.listByMonUC.Execute(c.Request.Context(), year, month)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"appointments": aps,
	})
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req CancelAppointmentRequest
	_ = c.ShouldBindJSON(&req) // motivo é opcional

	ap, err := h.cancelUC.Execute(c.Request.Context(), id, req.Reason)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.rescheduleUC.Execute(
		c.Request.Context(),
		ucAppointment.RescheduleAppointmentInput{
			AppointmentID:  id,
			Date:           req.Date,
			Time:           req.Time,
			ProfessionalID: req.ProfessionalID,
		},
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		writeBusinessError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// HISTÓRICO
// ======================================================

func (h *AppointmentHandler) History(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var entries []models.AppointmentHistory
	if err := h.db.
		Where("appointment_id = ?", id).
		Order("created_at ASC").
		Find(&entries).Error; err != nil {
		httperr.Internal(c, "failed_to_list_history", "Erro ao listar histórico.")
		return
	}

	c.JSON(http.StatusOK, entries)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}
