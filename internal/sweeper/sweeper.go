package sweeper

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/studiosandyyasmin/salon-scheduler/internal/domain/schedule"
	"github.com/studiosandyyasmin/salon-scheduler/internal/history"
	"github.com/studiosandyyasmin/salon-scheduler/internal/metrics"
	"github.com/studiosandyyasmin/salon-scheduler/internal/models"
	"github.com/studiosandyyasmin/salon-scheduler/internal/timezone"
)

const lockKey = "sweeper:lock"
const lockTTL = 5 * time.Minute

// Repository é o recorte mínimo que a varredura precisa do estoque.
type Repository interface {
	ListAppointmentsByStatus(ctx context.Context, status string) ([]models.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id uint, status string) error
}

type Summary struct {
	Updated  int `json:"updated"`
	Reverted int `json:"reverted"`
}

// Sweeper transita em lote agendamentos cujo horário já passou e
// corrige conclusões indevidas. rdb é opcional: sem redis o guard fica
// só no processo.
type Sweeper struct {
	repo    Repository
	history *history.Dispatcher
	rdb     *redis.Client
	now     func() time.Time

	running atomic.Bool
}

func New(
	repo Repository,
	dispatcher *history.Dispatcher,
	rdb *redis.Client,
) *Sweeper {
	return &Sweeper{
		repo:    repo,
		history: dispatcher,
		rdb:     rdb,
		now:     timezone.Now,
	}
}

// Start dispara uma varredura imediata e depois uma por intervalo.
// Execuções sobrepostas são puladas, não enfileiradas.
func (s *Sweeper) Start(ctx context.Context, interval time.Duration) {
	go func() {
		s.Run(ctx)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Run(ctx)
			}
		}
	}()
}

func (s *Sweeper) Run(ctx context.Context) Summary {
	if !s.running.CompareAndSwap(false, true) {
		log.Println("[sweeper] previous run still in flight, skipping")
		return Summary{}
	}
	defer s.running.Store(false)

	if !s.acquireLock(ctx) {
		log.Println("[sweeper] lock held elsewhere, skipping")
		return Summary{}
	}
	defer s.releaseLock(ctx)

	updated, err := s.RunForward(ctx)
	if err != nil {
		log.Printf("[sweeper] forward sweep failed: %v", err)
	}

	reverted, err := s.RunCorrective(ctx)
	if err != nil {
		log.Printf("[sweeper] corrective sweep failed: %v", err)
	}

	if updated > 0 || reverted > 0 {
		log.Printf("[sweeper] completed=%d reverted=%d", updated, reverted)
	}

	return Summary{Updated: updated, Reverted: reverted}
}

// RunForward conclui todo agendado cujo instante (data+hora em UTC−3)
// já passou. Falha em uma linha não derruba o lote.
func (s *Sweeper) RunForward(ctx context.Context) (int, error) {
	apps, err := s.repo.ListAppointmentsByStatus(ctx, string(domain.StatusAgendado))
	if err != nil {
		return 0, err
	}

	now := s.now()
	updated := 0

	for i := range apps {
		ap := &apps[i]
		if !domain.IsPast(ap, now) {
			continue
		}

		if err := s.repo.UpdateAppointmentStatus(ctx, ap.ID, string(domain.StatusConcluido)); err != nil {
			log.Printf("[sweeper] complete appointment=%d failed: %v", ap.ID, err)
			continue
		}

		updated++
		metrics.SweepTransitions.WithLabelValues(history.TypeAutoCompletado).Inc()

		s.history.Dispatch(history.Event{
			AppointmentID:  ap.ID,
			PreviousStatus: string(domain.StatusAgendado),
			NewStatus:      string(domain.StatusConcluido),
			Type:           history.TypeAutoCompletado,
			Actor:          history.ActorSistema,
		})
	}

	return updated, nil
}

// RunCorrective devolve a agendado todo concluido cujo instante ainda
// não chegou. Repara escritas diretas que furaram a guarda de conclusão.
func (s *Sweeper) RunCorrective(ctx context.Context) (int, error) {
	apps, err := s.repo.ListAppointmentsByStatus(ctx, string(domain.StatusConcluido))
	if err != nil {
		return 0, err
	}

	now := s.now()
	reverted := 0

	for i := range apps {
		ap := &apps[i]
		if domain.IsPast(ap, now) {
			continue
		}

		if err := s.repo.UpdateAppointmentStatus(ctx, ap.ID, string(domain.StatusAgendado)); err != nil {
			log.Printf("[sweeper] revert appointment=%d failed: %v", ap.ID, err)
			continue
		}

		reverted++
		metrics.SweepTransitions.WithLabelValues(history.TypeStatusCorrigido).Inc()

		s.history.Dispatch(history.Event{
			AppointmentID:  ap.ID,
			PreviousStatus: string(domain.StatusConcluido),
			NewStatus:      string(domain.StatusAgendado),
			Type:           history.TypeStatusCorrigido,
			Actor:          history.ActorSistema,
		})
	}

	return reverted, nil
}

// acquireLock impede varredura dupla entre réplicas quando há redis.
func (s *Sweeper) acquireLock(ctx context.Context) bool {
	if s.rdb == nil {
		return true
	}

	ok, err := s.rdb.SetNX(ctx, lockKey, 1, lockTTL).Result()
	if err != nil {
		// redis fora do ar não impede a varredura local
		log.Printf("[sweeper] lock error, proceeding: %v", err)
		return true
	}
	return ok
}

func (s *Sweeper) releaseLock(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	s.rdb.Del(ctx, lockKey)
}
