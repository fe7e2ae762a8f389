package schedule

import (
	"time"

	"github.com/studiosandyyasmin/salon-scheduler/internal/httperr"
	"github.com/studiosandyyasmin/salon-scheduler/internal/models"
	"github.com/studiosandyyasmin/salon-scheduler/internal/timezone"
)

// ===============================
// Ciclo de vida do agendamento
// ===============================

type Status string

const (
	StatusAgendado  Status = "agendado"
	StatusConcluido Status = "concluido"
	StatusCancelado Status = "cancelado"
)

// Motivo registrado quando o cancelamento vem sem justificativa.
const DefaultCancelReason = "Motivo não informado"

func InitialStatus() Status {
	return StatusAgendado
}

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	if current != StatusAgendado {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}
	return nil
}

// CanComplete define se um agendamento pode ser concluído. Não se
// conclui o que ainda não aconteceu: instantes futuros são rejeitados.
func CanComplete(current Status, instant, now time.Time) error {
	if current != StatusAgendado {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}
	if instant.After(now) {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}
	return nil
}

// ===============================
// Ações de domínio
// ===============================

func Cancel(ap *models.Appointment, reason string) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	if reason == "" {
		reason = DefaultCancelReason
	}

	ap.Status = string(StatusCancelado)
	ap.CancelReason = reason
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	instant, err := Instant(ap)
	if err != nil {
		return httperr.ErrBusiness(httperr.CodeValidation)
	}

	if err := CanComplete(Status(ap.Status), instant, now); err != nil {
		return err
	}

	ap.Status = string(StatusConcluido)
	return nil
}

// RevertCompletion desfaz uma conclusão indevida (varredura corretiva).
func RevertCompletion(ap *models.Appointment) {
	ap.Status = string(StatusAgendado)
}

// Instant devolve o instante do agendamento no fuso do estúdio.
func Instant(ap *models.Appointment) (time.Time, error) {
	return timezone.Instant(ap.Date, ap.Time)
}

// IsPast informa se o agendamento já aconteceu em relação a now.
func IsPast(ap *models.Appointment, now time.Time) bool {
	instant, err := Instant(ap)
	if err != nil {
		return false
	}
	return instant.Before(now)
}
