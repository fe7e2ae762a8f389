package schedule

import "time"

// Janela única de agendamento: hoje até hoje+30 dias, aplicada tanto ao
// fluxo público quanto ao remanejamento no painel.
const BookingHorizonDays = 30

type AvailabilityInput struct {
	ProfessionalID uint
	ServiceID      uint
	Date           string
}

// IsDateBookable decide se uma data pode receber agendamento para um
// profissional. Feriados não entram aqui: marcam o calendário mas nunca
// bloqueiam (decisão de produto).
func IsDateBookable(date, now time.Time, attendedDays []string) bool {
	day := startOfDay(date)
	today := startOfDay(now)

	if day.Before(today) {
		return false
	}
	if day.After(today.AddDate(0, 0, BookingHorizonDays)) {
		return false
	}

	token := DayToken(day.Weekday())
	for _, d := range attendedDays {
		if d == token {
			return true
		}
	}
	return false
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
