package appointment

import (
	"context"
	"log"
	"time"

	"github.com/studiosandyyasmin/salon-scheduler/internal/cache"
	domain "github.com/studiosandyyasmin/salon-scheduler/internal/domain/schedule"
	"github.com/studiosandyyasmin/salon-scheduler/internal/httperr"
	"github.com/studiosandyyasmin/salon-scheduler/internal/models"
	"github.com/studiosandyyasmin/salon-scheduler/internal/timezone"
)

// ======================================================
// USE CASE — disponibilidade
// ======================================================

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
	now   func() time.Time
}

func NewGetAvailability(
	repo domain.Repository,
	availCache *cache.AvailabilityCache,
) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		cache: availCache,
		now:   timezone.Now,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]string, error) {

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	pro, err := uc.repo.GetProfessional(ctx, in.ProfessionalID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	date, err := timezone.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	if !domain.IsDateBookable(date, uc.now(), pro.AttendedDays) {
		return []string{}, nil
	}

	if slots, ok := uc.cache.Get(ctx, pro.ID, service.ID, in.Date); ok {
		return slots, nil
	}

	slots := availableSlots(ctx, uc.repo, pro, service, in.Date)

	uc.cache.Set(ctx, pro.ID, service.ID, in.Date, slots)

	return slots, nil
}

// availableSlots gera e filtra os horários do dia. Falha de leitura
// degrada para lista vazia: disponibilidade nunca propaga erro de
// infraestrutura para o fluxo de reserva.
func availableSlots(
	ctx context.Context,
	repo domain.Repository,
	pro *models.Professional,
	service *models.Service,
	date string,
) []string {

	slots := domain.GenerateSlots(pro.StartTime, pro.EndTime, service.DurationMin)
	if len(slots) == 0 {
		return []string{}
	}

	appointments, err := repo.ListAppointmentsForDay(ctx, pro.ID, date)
	if err != nil {
		log.Printf("[availability] list appointments failed: %v", err)
		return []string{}
	}

	blocks, err := repo.ListBlocksForDate(ctx, date)
	if err != nil {
		log.Printf("[availability] list blocks failed: %v", err)
		return []string{}
	}

	return domain.FilterAvailable(slots, date, appointments, blocks)
}

// slotAvailable responde se um horário específico segue livre, usando o
// mesmo gerador+filtro da consulta pública.
func slotAvailable(
	ctx context.Context,
	repo domain.Repository,
	pro *models.Professional,
	service *models.Service,
	dateStr string,
	hm string,
	now time.Time,
) (bool, error) {

	date, err := timezone.ParseDate(dateStr)
	if err != nil {
		return false, httperr.ErrBusiness(httperr.CodeValidation)
	}

	if !domain.IsDateBookable(date, now, pro.AttendedDays) {
		return false, nil
	}

	for _, slot := range availableSlots(ctx, repo, pro, service, dateStr) {
		if slot == hm {
			return true, nil
		}
	}
	return false, nil
}
