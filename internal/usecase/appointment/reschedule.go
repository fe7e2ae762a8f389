package appointment

import (
	"context"
	"time"

	"github.com/studiosandyyasmin/salon-scheduler/internal/cache"
	domain "github.com/studiosandyyasmin/salon-scheduler/internal/domain/schedule"
	"github.com/studiosandyyasmin/salon-scheduler/internal/history"
	"github.com/studiosandyyasmin/salon-scheduler/internal/httperr"
	"github.com/studiosandyyasmin/salon-scheduler/internal/models"
	"github.com/studiosandyyasmin/salon-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type RescheduleAppointmentInput struct {
	AppointmentID uint

	Date string
	Time string

	// opcional: troca de profissional no remanejamento
	ProfessionalID uint
}

// ======================================================
// USE CASE
// ======================================================

type RescheduleAppointment struct {
	repo    domain.Repository
	history *history.Dispatcher
	cache   *cache.AvailabilityCache
	now     func() time.Time
}

func NewRescheduleAppointment(
	repo domain.Repository,
	dispatcher *history.Dispatcher,
	availCache *cache.AvailabilityCache,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:    repo,
		history: dispatcher,
		cache:   availCache,
		now:     timezone.Now,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	if in.Date == "" || in.Time == "" {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	// remanejar não muda status; terminais não se movem
	if ap.Status != string(domain.StatusAgendado) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}

	proID := ap.ProfessionalID
	if in.ProfessionalID != 0 {
		proID = in.ProfessionalID
	}

	pro, err := uc.repo.GetProfessional(ctx, proID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	service, err := uc.repo.GetService(ctx, ap.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	// --------------------------------------------------
	// Revalida o destino antes de mexer no registro:
	// destino ocupado deixa o original intacto.
	// --------------------------------------------------
	sameSlot := proID == ap.ProfessionalID && in.Date == ap.Date && in.Time == ap.Time
	if !sameSlot {
		free, err := slotAvailable(ctx, uc.repo, pro, service, in.Date, in.Time, uc.now())
		if err != nil {
			return nil, err
		}
		if !free {
			return nil, httperr.ErrBusiness(httperr.CodeSlotUnavailable)
		}
	}

	oldDate := ap.Date
	oldProID := ap.ProfessionalID

	ap.ProfessionalID = proID
	ap.Date = in.Date
	ap.Time = in.Time

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness(httperr.CodeSlotUnavailable)
		}
		return nil, err
	}

	// o horário antigo volta a ficar disponível imediatamente
	uc.cache.InvalidateDay(ctx, oldProID, oldDate)
	uc.cache.InvalidateDay(ctx, proID, in.Date)

	uc.history.Dispatch(history.Event{
		AppointmentID:  ap.ID,
		PreviousStatus: ap.Status,
		NewStatus:      ap.Status,
		Type:           history.TypeReagendamento,
		Actor:          history.ActorAdmin,
	})

	return ap, nil
}
