package appointment

import (
	"context"

	"github.com/studiosandyyasmin/salon-scheduler/internal/cache"
	domain "github.com/studiosandyyasmin/salon-scheduler/internal/domain/schedule"
	"github.com/studiosandyyasmin/salon-scheduler/internal/history"
	"github.com/studiosandyyasmin/salon-scheduler/internal/httperr"
	"github.com/studiosandyyasmin/salon-scheduler/internal/models"
)

type CancelAppointment struct {
	repo    domain.Repository
	history *history.Dispatcher
	cache   *cache.AvailabilityCache
}

func NewCancelAppointment(
	repo domain.Repository,
	dispatcher *history.Dispatcher,
	availCache *cache.AvailabilityCache,
) *CancelAppointment {
	return &CancelAppointment{
		repo:    repo,
		history: dispatcher,
		cache:   availCache,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	reason string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	previous := ap.Status
	if err := domain.Cancel(ap, reason); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// cancelar libera o horário para novas reservas
	uc.cache.InvalidateDay(ctx, ap.ProfessionalID, ap.Date)

	uc.history.Dispatch(history.Event{
		AppointmentID:  ap.ID,
		PreviousStatus: previous,
		NewStatus:      ap.Status,
		Type:           history.TypeCancelamento,
		Reason:         ap.CancelReason,
		Actor:          history.ActorAdmin,
	})

	return ap, nil
}
