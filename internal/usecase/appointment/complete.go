package appointment

import (
	"context"
	"time"

	domain "github.com/studiosandyyasmin/salon-scheduler/internal/domain/schedule"
	"github.com/studiosandyyasmin/salon-scheduler/internal/history"
	"github.com/studiosandyyasmin/salon-scheduler/internal/httperr"
	"github.com/studiosandyyasmin/salon-scheduler/internal/models"
	"github.com/studiosandyyasmin/salon-scheduler/internal/timezone"
)

type CompleteAppointment struct {
	repo    domain.Repository
	history *history.Dispatcher
	now     func() time.Time
}

func NewCompleteAppointment(
	repo domain.Repository,
	dispatcher *history.Dispatcher,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:    repo,
		history: dispatcher,
		now:     timezone.Now,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	previous := ap.Status
	if err := domain.Complete(ap, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.history.Dispatch(history.Event{
		AppointmentID:  ap.ID,
		PreviousStatus: previous,
		NewStatus:      ap.Status,
		Type:           history.TypeConclusao,
		Actor:          history.ActorAdmin,
	})

	return ap, nil
}
