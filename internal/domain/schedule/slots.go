package schedule

import (
	"fmt"
	"time"

	"github.com/studiosandyyasmin/salon-scheduler/internal/models"
)

// ===============================
// Geração de horários
// ===============================

// GenerateSlots produz os horários candidatos entre start e end,
// avançando de durationMin em durationMin. O último horário emitido é o
// que ainda cabe inteiro antes de end; nunca sai slot parcial. Função
// pura: mesmos parâmetros, mesma sequência.
func GenerateSlots(start, end string, durationMin int) []string {
	s, okS := toMinutes(start)
	e, okE := toMinutes(end)
	if !okS || !okE || durationMin <= 0 || s >= e {
		return []string{}
	}

	slots := make([]string, 0, (e-s)/durationMin)
	for cur := s; cur+durationMin <= e; cur += durationMin {
		slots = append(slots, fromMinutes(cur))
	}
	return slots
}

// FilterAvailable remove dos candidatos os horários já ocupados por
// agendamentos não cancelados do mesmo dia e os cobertos por bloqueios.
// Sem agendamentos e sem bloqueios a sequência passa inteira, na ordem
// do gerador.
func FilterAvailable(
	slots []string,
	date string,
	appointments []models.Appointment,
	blocks []models.Block,
) []string {

	busy := make(map[string]bool, len(appointments))
	for _, ap := range appointments {
		if ap.Status == string(StatusCancelado) {
			continue
		}
		if ap.Date == date {
			busy[ap.Time] = true
		}
	}

	out := make([]string, 0, len(slots))
	for _, hm := range slots {
		if busy[hm] {
			continue
		}
		if isBlocked(date, hm, blocks) {
			continue
		}
		out = append(out, hm)
	}
	return out
}

// isBlocked aplica a semântica dos bloqueios: sem hora_inicio/hora_fim
// o bloqueio cobre o dia inteiro; com horas, só a faixa
// [hora_inicio, hora_fim) nos dias cobertos.
func isBlocked(date, hm string, blocks []models.Block) bool {
	for _, b := range blocks {
		// datas YYYY-MM-DD comparam lexicograficamente
		if date < b.StartDate || date > b.EndDate {
			continue
		}
		if b.StartTime == "" || b.EndTime == "" {
			return true
		}
		if hm >= b.StartTime && hm < b.EndTime {
			return true
		}
	}
	return false
}

func toMinutes(hm string) (int, bool) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

func fromMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
