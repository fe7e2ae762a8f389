package sweeper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/studiosandyyasmin/salon-scheduler/internal/domain/schedule"
	"github.com/studiosandyyasmin/salon-scheduler/internal/models"
	"github.com/studiosandyyasmin/salon-scheduler/internal/timezone"
)

// fakeRepo guarda os agendamentos em memória e aplica as transições
// direto no slice, como o banco faria.
type fakeRepo struct {
	appointments []models.Appointment
	listErr      error
	updateErr    map[uint]error
}

func (f *fakeRepo) ListAppointmentsByStatus(_ context.Context, status string) ([]models.Appointment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.Status == status {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateAppointmentStatus(_ context.Context, id uint, status string) error {
	if err, ok := f.updateErr[id]; ok {
		return err
	}
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			f.appointments[i].Status = status
			return nil
		}
	}
	return errors.New("appointment not found")
}

func (f *fakeRepo) statusOf(id uint) string {
	for _, ap := range f.appointments {
		if ap.ID == id {
			return ap.Status
		}
	}
	return ""
}

func newTestSweeper(repo *fakeRepo, now time.Time) *Sweeper {
	s := New(repo, nil, nil)
	s.now = func() time.Time { return now }
	return s
}

var sweepNow = time.Date(2026, 3, 3, 12, 0, 0, 0, timezone.Location())

func TestRunForwardCompletesPastAppointments(t *testing.T) {
	repo := &fakeRepo{
		appointments: []models.Appointment{
			{ID: 1, Date: "2026-03-03", Time: "09:00", Status: string(domain.StatusAgendado)},
			{ID: 2, Date: "2026-03-03", Time: "15:00", Status: string(domain.StatusAgendado)},
			{ID: 3, Date: "2026-03-04", Time: "09:00", Status: string(domain.StatusAgendado)},
		},
	}

	s := newTestSweeper(repo, sweepNow)

	updated, err := s.RunForward(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, updated)
	assert.Equal(t, string(domain.StatusConcluido), repo.statusOf(1))
	assert.Equal(t, string(domain.StatusAgendado), repo.statusOf(2))
	assert.Equal(t, string(domain.StatusAgendado), repo.statusOf(3))
}

func TestRunForwardIsIdempotent(t *testing.T) {
	repo := &fakeRepo{
		appointments: []models.Appointment{
			{ID: 1, Date: "2026-03-03", Time: "09:00", Status: string(domain.StatusAgendado)},
		},
	}

	s := newTestSweeper(repo, sweepNow)

	first, err := s.RunForward(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	// segunda passada não encontra mais nada para transitar
	second, err := s.RunForward(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second)
}

func TestRunForwardSkipsCancelled(t *testing.T) {
	repo := &fakeRepo{
		appointments: []models.Appointment{
			{ID: 1, Date: "2026-03-03", Time: "09:00", Status: string(domain.StatusCancelado)},
		},
	}

	s := newTestSweeper(repo, sweepNow)

	updated, err := s.RunForward(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, updated)
	assert.Equal(t, string(domain.StatusCancelado), repo.statusOf(1))
}

func TestRunForwardRowFailureDoesNotStopBatch(t *testing.T) {
	repo := &fakeRepo{
		appointments: []models.Appointment{
			{ID: 1, Date: "2026-03-03", Time: "08:00", Status: string(domain.StatusAgendado)},
			{ID: 2, Date: "2026-03-03", Time: "09:00", Status: string(domain.StatusAgendado)},
		},
		updateErr: map[uint]error{1: errors.New("deadlock")},
	}

	s := newTestSweeper(repo, sweepNow)

	updated, err := s.RunForward(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, updated)
	assert.Equal(t, string(domain.StatusAgendado), repo.statusOf(1))
	assert.Equal(t, string(domain.StatusConcluido), repo.statusOf(2))
}

func TestRunCorrectiveRevertsFutureConclusions(t *testing.T) {
	repo := &fakeRepo{
		appointments: []models.Appointment{
			// conclusão indevida: o horário ainda não chegou
			{ID: 1, Date: "2026-03-04", Time: "10:00", Status: string(domain.StatusConcluido)},
			// conclusão legítima
			{ID: 2, Date: "2026-03-03", Time: "09:00", Status: string(domain.StatusConcluido)},
		},
	}

	s := newTestSweeper(repo, sweepNow)

	reverted, err := s.RunCorrective(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, reverted)
	assert.Equal(t, string(domain.StatusAgendado), repo.statusOf(1))
	assert.Equal(t, string(domain.StatusConcluido), repo.statusOf(2))
}

func TestRunCombinesForwardAndCorrective(t *testing.T) {
	repo := &fakeRepo{
		appointments: []models.Appointment{
			{ID: 1, Date: "2026-03-03", Time: "09:00", Status: string(domain.StatusAgendado)},
			{ID: 2, Date: "2026-03-05", Time: "10:00", Status: string(domain.StatusConcluido)},
		},
	}

	s := newTestSweeper(repo, sweepNow)

	summary := s.Run(context.Background())
	assert.Equal(t, Summary{Updated: 1, Reverted: 1}, summary)
}

func TestRunSkipsWhenAlreadyRunning(t *testing.T) {
	repo := &fakeRepo{
		appointments: []models.Appointment{
			{ID: 1, Date: "2026-03-03", Time: "09:00", Status: string(domain.StatusAgendado)},
		},
	}

	s := newTestSweeper(repo, sweepNow)
	s.running.Store(true)

	summary := s.Run(context.Background())
	assert.Equal(t, Summary{}, summary)
	assert.Equal(t, string(domain.StatusAgendado), repo.statusOf(1))
}

func TestRunForwardPropagatesListError(t *testing.T) {
	repo := &fakeRepo{listErr: errors.New("connection refused")}

	s := newTestSweeper(repo, sweepNow)

	_, err := s.RunForward(context.Background())
	assert.Error(t, err)
}
