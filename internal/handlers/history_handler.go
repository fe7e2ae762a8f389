package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studiosandyyasmin/salon-scheduler/internal/httperr"
	"github.com/studiosandyyasmin/salon-scheduler/internal/models"
)

type HistoryHandler struct {
	db *gorm.DB
}

func NewHistoryHandler(db *gorm.DB) *HistoryHandler {
	return &HistoryHandler{db: db}
}

// List devolve as entradas mais recentes da trilha, com filtro opcional
// por tipo (ex.: auto-completado).
func (h *HistoryHandler) List(c *gin.Context) {
	limit := 100
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	q := h.db.Order("created_at DESC").Limit(limit)
	if t := c.Query("type"); t != "" {
		q = q.Where("type = ?", t)
	}

	var entries []models.AppointmentHistory
	if err := q.Find(&entries).Error; err != nil {
		httperr.Internal(c, "failed_to_list_history", "Erro ao listar histórico.")
		return
	}

	c.JSON(http.StatusOK, entries)
}
