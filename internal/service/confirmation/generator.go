// Package confirmation выдает короткие коды, по которым клиент находит свою запись.
package confirmation

import (
	"math/rand"
	"strings"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// Alphabet без визуально похожих символов: нет 0/O и 1/I
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Generator produces human-readable codes. Codes are not secret and not unique:
// uniqueness is enforced by storage and the caller retries on collision.
type Generator struct {
	intN func(n int) int
}

func NewGenerator() *Generator {
	return &Generator{intN: rand.Intn}
}

// Generate returns a code of domain.ConfirmationCodeLength characters
func (g *Generator) Generate() string {
	var b strings.Builder
	b.Grow(domain.ConfirmationCodeLength)
	for i := 0; i < domain.ConfirmationCodeLength; i++ {
		b.WriteByte(Alphabet[g.intN(len(Alphabet))])
	}
	return b.String()
}

// IsWellFormed проверяет формат кода, введенного пользователем
func IsWellFormed(code string) bool {
	if len(code) != domain.ConfirmationCodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if strings.IndexByte(Alphabet, code[i]) < 0 {
			return false
		}
	}
	return true
}

// Normalize приводит код к верхнему регистру и убирает пробелы
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
