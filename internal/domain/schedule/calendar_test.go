package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/studiosandyyasmin/salon-scheduler/internal/timezone"
)

// 2026-03-02 é uma segunda-feira.
var testNow = time.Date(2026, 3, 2, 10, 0, 0, 0, timezone.Location())

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, timezone.Location())
}

func TestIsDateBookable(t *testing.T) {
	attended := []string{"segunda", "terca", "quarta"}

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{
			name: "hoje em dia atendido",
			date: day(2026, 3, 2),
			want: true,
		},
		{
			name: "amanhã em dia atendido",
			date: day(2026, 3, 3),
			want: true,
		},
		{
			name: "ontem nunca é agendável",
			date: day(2026, 3, 1),
			want: false,
		},
		{
			name: "dia não atendido dentro da janela",
			date: day(2026, 3, 6), // sexta
			want: false,
		},
		{
			name: "último dia da janela de 30 dias",
			date: day(2026, 4, 1), // quarta, hoje+30
			want: true,
		},
		{
			name: "dia atendido além da janela",
			date: day(2026, 4, 6), // segunda, hoje+35
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsDateBookable(tt.date, testNow, attended)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsDateBookableHoraDoDiaNaoInfluencia(t *testing.T) {
	// mesmo tarde da noite, hoje segue agendável
	lateNow := time.Date(2026, 3, 2, 23, 50, 0, 0, timezone.Location())
	assert.True(t, IsDateBookable(day(2026, 3, 2), lateNow, []string{"segunda"}))
}

func TestIsDateBookableSemDiasAtendidos(t *testing.T) {
	assert.False(t, IsDateBookable(day(2026, 3, 3), testNow, nil))
}

func TestDayToken(t *testing.T) {
	assert.Equal(t, "domingo", DayToken(time.Sunday))
	assert.Equal(t, "segunda", DayToken(time.Monday))
	assert.Equal(t, "sabado", DayToken(time.Saturday))
}

func TestIsValidDayToken(t *testing.T) {
	for _, token := range []string{"domingo", "segunda", "terca", "quarta", "quinta", "sexta", "sabado"} {
		assert.True(t, IsValidDayToken(token), token)
	}

	// sem acento e sem abreviação
	assert.False(t, IsValidDayToken("terça"))
	assert.False(t, IsValidDayToken("seg"))
	assert.False(t, IsValidDayToken(""))
}
