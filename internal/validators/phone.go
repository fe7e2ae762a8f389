package validators

import "strings"

// NormalizePhone reduz o telefone a dígitos para o casamento
// get-or-create de clientes ("(11) 98888-7777" e "11988887777" são o
// mesmo cliente).
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func IsPhoneValid(phone string) bool {
	digits := NormalizePhone(phone)
	return len(digits) >= 10 && len(digits) <= 13
}
