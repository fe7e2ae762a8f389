package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studiosandyyasmin/salon-scheduler/internal/httperr"
	"github.com/studiosandyyasmin/salon-scheduler/internal/models"
	"github.com/studiosandyyasmin/salon-scheduler/internal/validators"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

func (h *ClientHandler) List(c *gin.Context) {
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.Order("name ASC")
	if query != "" {
		like := "%" + query + "%"
		phone := "%" + validators.NormalizePhone(query) + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, phone, like,
		)
	}

	var clients []models.Client
	if err := q.Find(&clients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	c.JSON(http.StatusOK, clients)
}
