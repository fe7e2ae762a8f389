package timezone

import "time"

// O estúdio opera em horário de Brasília. Offset fixo UTC−3: o Brasil
// não aplica mais horário de verão, e o instante de um agendamento é
// sempre data+hora locais interpretadas nesse offset.
var brazil = time.FixedZone("-03", -3*60*60)

func Location() *time.Location {
	return brazil
}

func Now() time.Time {
	return time.Now().In(brazil)
}

// ParseDate interpreta uma data YYYY-MM-DD no fuso do estúdio.
func ParseDate(date string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", date, brazil)
}

// Instant compõe data YYYY-MM-DD e hora HH:MM no fuso do estúdio.
func Instant(date, hm string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+hm, brazil)
}

// StartOfDay zera o relógio mantendo o fuso.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
