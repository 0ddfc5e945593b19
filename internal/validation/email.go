package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// EmailPattern определяет допустимый формат email.
// Нестрогая проверка: local@domain.tld, без пробелов.
var EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// MaxEmailLen максимальная длина email
const MaxEmailLen = 254

// NormalizeEmail приводит email к канонической форме для хранения и поиска.
// Любой lookup и insert обязан проходить через эту функцию, иначе
// регистрозависимые дубликаты обойдут проверку уникальности.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail проверяет, что email соответствует требованиям.
// Используется в adminctl; HTTP регистрация намеренно принимает
// любой непустой email ради совместимости с существующими клиентами.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	if len(email) > MaxEmailLen {
		return fmt.Errorf("email must not exceed %d characters", MaxEmailLen)
	}

	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("email must be in the form local@domain.tld")
	}

	return nil
}

// ValidateRole проверяет, что роль входит в известный набор
func ValidateRole(role string) error {
	switch role {
	case "developer", "admin":
		return nil
	}
	return fmt.Errorf("unknown role %q: must be developer or admin", role)
}
