package util

import (
	"crypto/rand"
	"math/big"
)

// alphabet — 62 символа: строчные и заглавные латинские буквы плюс цифры.
const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// DefaultCodeLength — длина генерируемого кода, если не задана конфигурацией.
const DefaultCodeLength = 6

// GenerateCode создаёт случайный код заданной длины из 62-символьного алфавита.
// Равномерность обеспечивает crypto/rand. Уникальность не гарантируется —
// за проверку занятости кода отвечает сервис.
func GenerateCode(length int) string {
	if length <= 0 {
		length = DefaultCodeLength
	}

	max := big.NewInt(int64(len(alphabet)))
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand на поддерживаемых платформах не возвращает ошибок чтения
			panic("util: crypto/rand failure: " + err.Error())
		}
		buf[i] = alphabet[n.Int64()]
	}
	return string(buf)
}

// IsAlphanumeric проверяет, что строка состоит только из символов алфавита кодов.
func IsAlphanumeric(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return len(s) > 0
}
