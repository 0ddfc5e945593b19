package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost фиксированный work factor для bcrypt.
// Менять без миграции существующих хешей нельзя: verify продолжит
// работать (cost закодирован в хеше), но новые хеши разойдутся по стоимости.
const PasswordCost = 10

// HashPassword хеширует пароль через bcrypt со случайной солью.
// Пустой пароль допустим: регистрация намеренно разрешает его,
// bcrypt хеширует пустую строку как любую другую.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword проверяет пароль против сохраненного bcrypt хеша.
// Возвращает false при любом несовпадении, никогда не паникует.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
