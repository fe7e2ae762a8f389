package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studiosandyyasmin/salon-scheduler/internal/httperr"
	"github.com/studiosandyyasmin/salon-scheduler/internal/models"
	"github.com/studiosandyyasmin/salon-scheduler/internal/timezone"
)

type BlockHandler struct {
	db *gorm.DB
}

func NewBlockHandler(db *gorm.DB) *BlockHandler {
	return &BlockHandler{db: db}
}

type BlockRequest struct {
	StartDate string `json:"data_inicio" binding:"required"`
	EndDate   string `json:"data_fim" binding:"required"`
	StartTime string `json:"hora_inicio"`
	EndTime   string `json:"hora_fim"`
	Reason    string `json:"reason"`
}

// hora_inicio e hora_fim andam juntas: só uma das duas é inválido.
func (r *BlockRequest) validate() bool {
	if _, err := timezone.ParseDate(r.StartDate); err != nil {
		return false
	}
	if _, err := timezone.ParseDate(r.EndDate); err != nil {
		return false
	}
	if r.EndDate < r.StartDate {
		return false
	}
	if (r.StartTime == "") != (r.EndTime == "") {
		return false
	}
	if r.StartTime != "" && r.EndTime <= r.StartTime {
		return false
	}
	return true
}

func (h *BlockHandler) List(c *gin.Context) {
	var blocks []models.Block
	if err := h.db.Order("data_inicio ASC").Find(&blocks).Error; err != nil {
		httperr.Internal(c, "failed_to_list_blocks", "Erro ao listar bloqueios.")
		return
	}
	c.JSON(http.StatusOK, blocks)
}

func (h *BlockHandler) Create(c *gin.Context) {
	var req BlockRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.validate() {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	block := models.Block{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    req.Reason,
	}

	if err := h.db.Create(&block).Error; err != nil {
		httperr.Internal(c, "failed_to_create_block", "Erro ao criar bloqueio.")
		return
	}

	c.JSON(http.StatusCreated, block)
}

func (h *BlockHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.db.Delete(&models.Block{}, id).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_block", "Erro ao remover bloqueio.")
		return
	}

	c.Status(http.StatusNoContent)
}
