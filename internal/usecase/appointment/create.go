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
	"github.com/studiosandyyasmin/salon-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientName  string
	ClientPhone string
	ClientEmail string

	ServiceID      uint
	ProfessionalID uint

	Date string
	Time string

	Actor string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo    domain.Repository
	history *history.Dispatcher
	cache   *cache.AvailabilityCache
	now     func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	dispatcher *history.Dispatcher,
	availCache *cache.AvailabilityCache,
) *CreateAppointment {
	return &CreateAppointment{
		repo:    repo,
		history: dispatcher,
		cache:   availCache,
		now:     timezone.Now,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Campos obrigatórios
	// --------------------------------------------------
	if in.ClientName == "" || in.ClientPhone == "" ||
		in.ServiceID == 0 || in.ProfessionalID == 0 ||
		in.Date == "" || in.Time == "" {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	if _, err := timezone.Instant(in.Date, in.Time); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	in.ClientPhone = validators.NormalizePhone(in.ClientPhone)
	if !validators.IsPhoneValid(in.ClientPhone) {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	// e-mail é opcional, mas se veio precisa ter domínio resolvível
	if in.ClientEmail != "" && !validators.IsEmailDomainValid(in.ClientEmail) {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	// --------------------------------------------------
	// Serviço e profissional
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	pro, err := uc.repo.GetProfessional(ctx, in.ProfessionalID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	// --------------------------------------------------
	// O horário segue livre?
	// --------------------------------------------------
	free, err := slotAvailable(ctx, uc.repo, pro, service, in.Date, in.Time, uc.now())
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	}

	// --------------------------------------------------
	// Cliente (get or create por telefone, depois e-mail)
	// --------------------------------------------------
	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Criação (o índice único decide corridas)
	// --------------------------------------------------
	ap := &models.Appointment{
		ClientID:       client.ID,
		ServiceID:      service.ID,
		ProfessionalID: pro.ID,
		Date:           in.Date,
		Time:           in.Time,
		Status:         string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness(httperr.CodeSlotUnavailable)
		}
		return nil, err
	}

	uc.cache.InvalidateDay(ctx, pro.ID, in.Date)

	actor := in.Actor
	if actor == "" {
		actor = history.ActorCliente
	}

	uc.history.Dispatch(history.Event{
		AppointmentID: ap.ID,
		NewStatus:     ap.Status,
		Type:          history.TypeCriacao,
		Actor:         actor,
	})

	return ap, nil
}
