package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studiosandyyasmin/salon-scheduler/internal/sweeper"
)

// Gatilho manual da varredura, além do intervalo automático.
type SweepHandler struct {
	sweeper *sweeper.Sweeper
}

func NewSweepHandler(s *sweeper.Sweeper) *SweepHandler {
	return &SweepHandler{sweeper: s}
}

func (h *SweepHandler) Run(c *gin.Context) {
	summary := h.sweeper.Run(c.Request.Context())
	c.JSON(http.StatusOK, summary)
}
