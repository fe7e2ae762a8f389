package schedule

import (
	"context"

	"github.com/studiosandyyasmin/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Catálogo --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	GetProfessional(
		ctx context.Context,
		id uint,
	) (*models.Professional, error)

	// -------- Cliente --------
	GetOrCreateClient(
		ctx context.Context,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Agendamento --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	// HasActiveAppointment responde se o horário já tem agendamento
	// não cancelado para o profissional.
	HasActiveAppointment(
		ctx context.Context,
		professionalID uint,
		date string,
		hm string,
	) (bool, error)

	// -------- Disponibilidade --------
	ListAppointmentsForDay(
		ctx context.Context,
		professionalID uint,
		date string,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		startDate string,
		endDate string,
	) ([]models.Appointment, error)

	ListBlocksForDate(
		ctx context.Context,
		date string,
	) ([]models.Block, error)

	ListHolidays(
		ctx context.Context,
		startDate string,
		endDate string,
	) ([]models.Holiday, error)
}
