package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studiosandyyasmin/salon-scheduler/internal/httperr"
	"github.com/studiosandyyasmin/salon-scheduler/internal/models"
)

// CRUD dos modelos de mensagem WhatsApp. A substituição de variáveis
// acontece no painel, não aqui.
type TemplateHandler struct {
	db *gorm.DB
}

func NewTemplateHandler(db *gorm.DB) *TemplateHandler {
	return &TemplateHandler{db: db}
}

type TemplateRequest struct {
	Name    string `json:"name" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func (h *TemplateHandler) List(c *gin.Context) {
	var templates []models.MessageTemplate
	if err := h.db.Order("name ASC").Find(&templates).Error; err != nil {
		httperr.Internal(c, "failed_to_list_templates", "Erro ao listar modelos.")
		return
	}
	c.JSON(http.StatusOK, templates)
}

func (h *TemplateHandler) Create(c *gin.Context) {
	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	tpl := models.MessageTemplate{
		Name:    req.Name,
		Content: req.Content,
	}

	if err := h.db.Create(&tpl).Error; err != nil {
		httperr.Internal(c, "failed_to_create_template", "Erro ao criar modelo.")
		return
	}

	c.JSON(http.StatusCreated, tpl)
}

func (h *TemplateHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var tpl models.MessageTemplate
	if err := h.db.First(&tpl, id).Error; err != nil {
		httperr.NotFound(c, "template_not_found", "Modelo não encontrado.")
		return
	}

	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	tpl.Name = req.Name
	tpl.Content = req.Content

	if err := h.db.Save(&tpl).Error; err != nil {
		httperr.Internal(c, "failed_to_update_template", "Erro ao atualizar modelo.")
		return
	}

	c.JSON(http.StatusOK, tpl)
}

func (h *TemplateHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.db.Delete(&models.MessageTemplate{}, id).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_template", "Erro ao remover modelo.")
		return
	}

	c.Status(http.StatusNoContent)
}
