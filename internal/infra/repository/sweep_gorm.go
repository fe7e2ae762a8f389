package repository

import (
	"context"

	"github.com/studiosandyyasmin/salon-scheduler/internal/models"
	"github.com/studiosandyyasmin/salon-scheduler/internal/sweeper"
)

// --------------------------------------------------
// Varredura (lote)
// --------------------------------------------------

func (r *ScheduleGormRepository) ListAppointmentsByStatus(
	ctx context.Context,
	status string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "professional_id", "data", "hora", "status").
		Where("status = ?", status).
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *ScheduleGormRepository) UpdateAppointmentStatus(
	ctx context.Context,
	id uint,
	status string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// Compile-time check
var _ sweeper.Repository = (*ScheduleGormRepository)(nil)
