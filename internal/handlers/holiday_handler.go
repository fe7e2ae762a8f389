package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studiosandyyasmin/salon-scheduler/internal/httperr"
	"github.com/studiosandyyasmin/salon-scheduler/internal/models"
	"github.com/studiosandyyasmin/salon-scheduler/internal/timezone"
)

type HolidayHandler struct {
	db *gorm.DB
}

func NewHolidayHandler(db *gorm.DB) *HolidayHandler {
	return &HolidayHandler{db: db}
}

type HolidayRequest struct {
	Date string `json:"data" binding:"required"`
	Name string `json:"name" binding:"required"`
}

func (h *HolidayHandler) List(c *gin.Context) {
	var holidays []models.Holiday
	if err := h.db.Order("data ASC").Find(&holidays).Error; err != nil {
		httperr.Internal(c, "failed_to_list_holidays", "Erro ao listar feriados.")
		return
	}
	c.JSON(http.StatusOK, holidays)
}

func (h *HolidayHandler) Create(c *gin.Context) {
	var req HolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if _, err := timezone.ParseDate(req.Date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	holiday := models.Holiday{
		Date: req.Date,
		Name: req.Name,
	}

	if err := h.db.Create(&holiday).Error; err != nil {
		httperr.Internal(c, "failed_to_create_holiday", "Erro ao criar feriado.")
		return
	}

	c.JSON(http.StatusCreated, holiday)
}

func (h *HolidayHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.db.Delete(&models.Holiday{}, id).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_holiday", "Erro ao remover feriado.")
		return
	}

	c.Status(http.StatusNoContent)
}
