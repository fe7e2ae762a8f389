package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/studiosandyyasmin/salon-scheduler/internal/models"
)

func TestGenerateSlots(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		duration int
		want     []string
	}{
		{
			name:     "janela de uma hora com serviço de 30min",
			start:    "09:00",
			end:      "10:00",
			duration: 30,
			want:     []string{"09:00", "09:30"},
		},
		{
			name:     "último slot cabe exatamente antes do fim",
			start:    "09:00",
			end:      "12:00",
			duration: 60,
			want:     []string{"09:00", "10:00", "11:00"},
		},
		{
			name:     "slot parcial no fim da janela é descartado",
			start:    "09:00",
			end:      "10:15",
			duration: 30,
			want:     []string{"09:00", "09:30"},
		},
		{
			name:     "serviço maior que a janela não gera nada",
			start:    "09:00",
			end:      "09:30",
			duration: 45,
			want:     []string{},
		},
		{
			name:     "início igual ao fim",
			start:    "09:00",
			end:      "09:00",
			duration: 30,
			want:     []string{},
		},
		{
			name:     "início depois do fim",
			start:    "18:00",
			end:      "09:00",
			duration: 30,
			want:     []string{},
		},
		{
			name:     "duração zero",
			start:    "09:00",
			end:      "18:00",
			duration: 0,
			want:     []string{},
		},
		{
			name:     "hora malformada",
			start:    "9h",
			end:      "18:00",
			duration: 30,
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateSlots(tt.start, tt.end, tt.duration)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateSlotsIsDeterministic(t *testing.T) {
	first := GenerateSlots("08:00", "18:00", 45)
	second := GenerateSlots("08:00", "18:00", 45)
	assert.Equal(t, first, second)
}

func TestFilterAvailableRemovesBookedSlots(t *testing.T) {
	slots := []string{"09:00", "09:30", "10:00"}

	appointments := []models.Appointment{
		{Date: "2026-03-03", Time: "09:30", Status: string(StatusAgendado)},
	}

	got := FilterAvailable(slots, "2026-03-03", appointments, nil)
	assert.Equal(t, []string{"09:00", "10:00"}, got)
}

func TestFilterAvailableIgnoresCancelledAppointments(t *testing.T) {
	slots := []string{"09:00", "09:30"}

	appointments := []models.Appointment{
		{Date: "2026-03-03", Time: "09:30", Status: string(StatusCancelado)},
	}

	// cancelado libera o horário
	got := FilterAvailable(slots, "2026-03-03", appointments, nil)
	assert.Equal(t, []string{"09:00", "09:30"}, got)
}

func TestFilterAvailableConcludedStillOccupies(t *testing.T) {
	slots := []string{"09:00", "09:30"}

	appointments := []models.Appointment{
		{Date: "2026-03-03", Time: "09:00", Status: string(StatusConcluido)},
	}

	got := FilterAvailable(slots, "2026-03-03", appointments, nil)
	assert.Equal(t, []string{"09:30"}, got)
}

func TestFilterAvailableFullDayBlock(t *testing.T) {
	slots := []string{"09:00", "09:30", "10:00"}

	blocks := []models.Block{
		{StartDate: "2026-03-01", EndDate: "2026-03-05"},
	}

	got := FilterAvailable(slots, "2026-03-03", nil, blocks)
	assert.Empty(t, got)
}

func TestFilterAvailablePartialBlock(t *testing.T) {
	slots := []string{"09:00", "09:30", "10:00", "10:30"}

	// [09:30, 10:30) bloqueado; 10:30 em diante segue livre
	blocks := []models.Block{
		{
			StartDate: "2026-03-03",
			EndDate:   "2026-03-03",
			StartTime: "09:30",
			EndTime:   "10:30",
		},
	}

	got := FilterAvailable(slots, "2026-03-03", nil, blocks)
	assert.Equal(t, []string{"09:00", "10:30"}, got)
}

func TestFilterAvailableBlockOutsideDate(t *testing.T) {
	slots := []string{"09:00", "09:30"}

	blocks := []models.Block{
		{StartDate: "2026-03-10", EndDate: "2026-03-12"},
	}

	got := FilterAvailable(slots, "2026-03-03", nil, blocks)
	assert.Equal(t, slots, got)
}

func TestFilterAvailableKeepsGeneratorOrder(t *testing.T) {
	slots := GenerateSlots("09:00", "12:00", 30)

	got := FilterAvailable(slots, "2026-03-03", nil, nil)
	assert.Equal(t, slots, got)
}
