package schedule

import "time"

// ===============================
// Dias da semana
// ===============================

// Tokens na ordem de time.Weekday (domingo = 0).
var dayTokens = [...]string{
	"domingo",
	"segunda",
	"terca",
	"quarta",
	"quinta",
	"sexta",
	"sabado",
}

// DayToken mapeia o weekday de uma data para o token usado no cadastro
// do profissional.
func DayToken(d time.Weekday) string {
	return dayTokens[int(d)]
}

func IsValidDayToken(token string) bool {
	for _, t := range dayTokens {
		if t == token {
			return true
		}
	}
	return false
}
