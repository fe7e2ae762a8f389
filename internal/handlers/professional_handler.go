package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/studiosandyyasmin/salon-scheduler/internal/domain/schedule"
	"github.com/studiosandyyasmin/salon-scheduler/internal/httperr"
	"github.com/studiosandyyasmin/salon-scheduler/internal/media"
	"github.com/studiosandyyasmin/salon-scheduler/internal/models"
)

type ProfessionalHandler struct {
	db       *gorm.DB
	uploader *media.Uploader
}

func NewProfessionalHandler(db *gorm.DB, uploader *media.Uploader) *ProfessionalHandler {
	return &ProfessionalHandler{db: db, uploader: uploader}
}

type ProfessionalRequest struct {
	Name         string   `json:"name" binding:"required"`
	AttendedDays []string `json:"dias_atendidos" binding:"required"`
	StartTime    string   `json:"hora_inicio" binding:"required"`
	EndTime      string   `json:"hora_fim" binding:"required"`
	Active       *bool    `json:"active"`
}

func (r *ProfessionalRequest) validate() bool {
	if r.EndTime <= r.StartTime {
		return false
	}
	for _, d := range r.AttendedDays {
		if !domain.IsValidDayToken(d) {
			return false
		}
	}
	return true
}

func (h *ProfessionalHandler) List(c *gin.Context) {
	var pros []models.Professional
	if err := h.db.Order("id ASC").Find(&pros).Error; err != nil {
		httperr.Internal(c, "failed_to_list_professionals", "Erro ao listar profissionais.")
		return
	}
	c.JSON(http.StatusOK, pros)
}

func (h *ProfessionalHandler) Create(c *gin.Context) {
	var req ProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.validate() {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	pro := models.Professional{
		Name:         req.Name,
		AttendedDays: req.AttendedDays,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Active:       true,
	}
	if req.Active != nil {
		pro.Active = *req.Active
	}

	if err := h.db.Create(&pro).Error; err != nil {
		httperr.Internal(c, "failed_to_create_professional", "Erro ao criar profissional.")
		return
	}

	c.JSON(http.StatusCreated, pro)
}

func (h *ProfessionalHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var pro models.Professional
	if err := h.db.First(&pro, id).Error; err != nil {
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	var req ProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.validate() {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	pro.Name = req.Name
	pro.AttendedDays = req.AttendedDays
	pro.StartTime = req.StartTime
	pro.EndTime = req.EndTime
	if req.Active != nil {
		pro.Active = *req.Active
	}

	if err := h.db.Save(&pro).Error; err != nil {
		httperr.Internal(c, "failed_to_update_professional", "Erro ao atualizar profissional.")
		return
	}

	c.JSON(http.StatusOK, pro)
}

func (h *ProfessionalHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.db.Delete(&models.Professional{}, id).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_professional", "Erro ao remover profissional.")
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadPhoto recebe multipart "photo", converte para WebP e publica no
// bucket. Sem bucket configurado a rota responde 503.
func (h *ProfessionalHandler) UploadPhoto(c *gin.Context) {
	if !h.uploader.Enabled() {
		httperr.Write(c, http.StatusServiceUnavailable, "uploads_disabled", "Upload de fotos não configurado.")
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	var pro models.Professional
	if err := h.db.First(&pro, id).Error; err != nil {
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	file, _, err := c.Request.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Arquivo de foto obrigatório.")
		return
	}
	defer file.Close()

	url, err := h.uploader.UploadPhoto(c.Request.Context(), file, "professionals")
	if err != nil {
		httperr.Internal(c, "failed_to_upload_photo", "Erro ao enviar foto.")
		return
	}

	pro.PhotoURL = url
	if err := h.db.Save(&pro).Error; err != nil {
		httperr.Internal(c, "failed_to_update_professional", "Erro ao salvar foto.")
		return
	}

	c.JSON(http.StatusOK, pro)
}
