package utils

import (
	"strings"
	"unicode"
)

// remove qualquer coisa que não seja dígito
func SanitizeCNPJ(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, r)
		}
	}
	return string(out)
}

// Validação mínima: 14 dígitos e nem todos iguais (sem dígito verificador).
func ValidateCNPJ(cnpj string) bool {
	if len(cnpj) != 14 {
		return false
	}
	allEq := true
	for i := 1; i < 14; i++ {
		if cnpj[i] != cnpj[0] {
			allEq = false
			break
		}
	}
	return !allEq
}

// FormatCNPJ aplica a máscara XX.XXX.XXX/XXXX-XX de forma progressiva:
// insere os separadores até onde os dígitos digitados alcançam e descarta
// o que passar de 14 dígitos. Reaplicar sobre a própria saída não muda nada.
func FormatCNPJ(s string) string {
	digits := SanitizeCNPJ(s)
	if len(digits) > 14 {
		digits = digits[:14]
	}

	var b strings.Builder
	for i, r := range digits {
		switch i {
		case 2, 5:
			b.WriteByte('.')
		case 8:
			b.WriteByte('/')
		case 12:
			b.WriteByte('-')
		}
		b.WriteRune(r)
	}
	return b.String()
}
