package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/studiosandyyasmin/salon-scheduler/internal/domain/schedule"
	"github.com/studiosandyyasmin/salon-scheduler/internal/httperr"
	"github.com/studiosandyyasmin/salon-scheduler/internal/models"
)

func availabilityInput(date string) domain.AvailabilityInput {
	return domain.AvailabilityInput{
		ProfessionalID: 1,
		ServiceID:      1,
		Date:           date,
	}
}

func TestGetAvailability(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo, nil)
	uc.now = fixedClock

	slots, err := uc.Execute(context.Background(), availabilityInput("2026-03-03"))
	require.NoError(t, err)

	// expediente 09:00–12:00 com serviço de 30min
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}, slots)
}

func TestGetAvailabilityExcludesBookedSlot(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, "2026-03-03", "10:00", string(domain.StatusAgendado))

	uc := NewGetAvailability(repo, nil)
	uc.now = fixedClock

	slots, err := uc.Execute(context.Background(), availabilityInput("2026-03-03"))
	require.NoError(t, err)

	assert.NotContains(t, slots, "10:00")
	assert.Contains(t, slots, "09:30")
}

func TestGetAvailabilityUnbookableDateIsEmpty(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo, nil)
	uc.now = fixedClock

	// sexta: fora dos dias atendidos da profissional 1
	slots, err := uc.Execute(context.Background(), availabilityInput("2026-03-06"))
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetAvailabilityBlockedDayIsEmpty(t *testing.T) {
	repo := newFakeRepo()
	repo.blocks = []models.Block{
		{StartDate: "2026-03-03", EndDate: "2026-03-03"},
	}

	uc := NewGetAvailability(repo, nil)
	uc.now = fixedClock

	slots, err := uc.Execute(context.Background(), availabilityInput("2026-03-03"))
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetAvailabilityUnknownProfessional(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo, nil)
	uc.now = fixedClock

	in := availabilityInput("2026-03-03")
	in.ProfessionalID = 99

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}

func TestGetAvailabilityMalformedDate(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo, nil)
	uc.now = fixedClock

	_, err := uc.Execute(context.Background(), availabilityInput("03-03-2026"))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
}

// ======================================================
// CALENDÁRIO
// ======================================================

func TestGetCalendarMonth(t *testing.T) {
	repo := newFakeRepo()
	repo.holidays = []models.Holiday{
		{Date: "2026-03-03", Name: "Aniversário do estúdio"},
	}

	uc := NewGetCalendarMonth(repo)
	uc.now = fixedClock

	days, err := uc.Execute(context.Background(), 1, 2026, 3)
	require.NoError(t, err)
	require.Len(t, days, 31)

	byDate := make(map[string]CalendarDay, len(days))
	for _, d := range days {
		byDate[d.Date] = d
	}

	// domingo já passado
	assert.False(t, byDate["2026-03-01"].Bookable)

	// terça dentro da janela; feriado anota mas não bloqueia
	tuesday := byDate["2026-03-03"]
	assert.True(t, tuesday.Bookable)
	assert.Equal(t, "Aniversário do estúdio", tuesday.Holiday)

	// sexta não atendida
	assert.False(t, byDate["2026-03-06"].Bookable)

	// 31/03 é hoje+29: ainda dentro da janela de 30 dias
	assert.True(t, byDate["2026-03-31"].Bookable)
}

func TestGetCalendarMonthInvalidMonth(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetCalendarMonth(repo)
	uc.now = fixedClock

	_, err := uc.Execute(context.Background(), 1, 2026, 13)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
}

func TestListAppointmentsByDateValidation(t *testing.T) {
	repo := newFakeRepo()
	uc := NewListAppointmentsByDate(repo)

	_, err := uc.Execute(context.Background(), "hoje")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
}

func TestListAppointmentsByDate(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, "2026-03-03", "09:30", string(domain.StatusAgendado))
	seedAppointment(repo, "2026-03-04", "09:30", string(domain.StatusAgendado))

	uc := NewListAppointmentsByDate(repo)

	got, err := uc.Execute(context.Background(), "2026-03-03")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2026-03-03", got[0].Date)
}
