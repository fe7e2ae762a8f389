package history

import (
	"gorm.io/gorm"

	"github.com/studiosandyyasmin/salon-scheduler/internal/models"
)

// Tipos de entrada na trilha de status.
const (
	TypeCriacao         = "criacao"
	TypeConclusao       = "conclusao"
	TypeCancelamento    = "cancelamento"
	TypeReagendamento   = "reagendamento"
	TypeAutoCompletado  = "auto-completado"
	TypeStatusCorrigido = "status-corrigido"
)

const (
	ActorAdmin   = "admin"
	ActorCliente = "cliente"
	ActorSistema = "sistema"
)

type Recorder struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Recorder {
	return &Recorder{db: db}
}

func (r *Recorder) Record(ev Event) error {
	entry := models.AppointmentHistory{
		AppointmentID:  ev.AppointmentID,
		PreviousStatus: ev.PreviousStatus,
		NewStatus:      ev.NewStatus,
		Type:           ev.Type,
		Reason:         ev.Reason,
		Actor:          ev.Actor,
	}

	return r.db.Create(&entry).Error
}
