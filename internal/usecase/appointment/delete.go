package appointment

import (
	"context"

	"github.com/studiosandyyasmin/salon-scheduler/internal/cache"
	domain "github.com/studiosandyyasmin/salon-scheduler/internal/domain/schedule"
	"github.com/studiosandyyasmin/salon-scheduler/internal/httperr"
)

// Exclusão definitiva. Diferente de cancelar: o registro some, sem
// trilha daqui em diante. A confirmação fica na borda da UI.
type DeleteAppointment struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
}

func NewDeleteAppointment(
	repo domain.Repository,
	availCache *cache.AvailabilityCache,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		cache: availCache,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) error {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}

	if err := uc.repo.DeleteAppointment(ctx, ap.ID); err != nil {
		return err
	}

	uc.cache.InvalidateDay(ctx, ap.ProfessionalID, ap.Date)

	return nil
}
