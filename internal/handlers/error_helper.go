package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/studiosandyyasmin/salon-scheduler/internal/httperr"
)

// writeBusinessError traduz os códigos de negócio para a resposta HTTP.
// Qualquer coisa fora da taxonomia é falha de persistência/interna.
func writeBusinessError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, httperr.CodeValidation):
		httperr.BadRequest(c, httperr.CodeValidation, "Dados inválidos ou incompletos.")
	case httperr.IsBusiness(err, httperr.CodeInvalidTransition):
		httperr.BadRequest(c, httperr.CodeInvalidTransition, "Transição de status não permitida.")
	case httperr.IsBusiness(err, httperr.CodeSlotUnavailable):
		httperr.Conflict(c, httperr.CodeSlotUnavailable, "Horário indisponível.")
	case httperr.IsBusiness(err, httperr.CodeNotFound):
		httperr.NotFound(c, httperr.CodeNotFound, "Registro não encontrado.")
	default:
		httperr.Internal(c, "internal_error", "Erro interno.")
	}
}
