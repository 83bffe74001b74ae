package util_test

import (
	"strings"
	"testing"

	"github.com/Totarae/ShortLinks/internal/util"
	"github.com/stretchr/testify/assert"
)

const codeAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Тест длины и алфавита генерируемых кодов
func TestGenerateCode(t *testing.T) {
	for _, length := range []int{3, 6, 8, 16} {
		for i := 0; i < 100; i++ {
			code := util.GenerateCode(length)
			assert.Len(t, code, length)
			for _, r := range code {
				assert.True(t, strings.ContainsRune(codeAlphabet, r),
					"unexpected character %q in code %q", r, code)
			}
		}
	}
}

// Тест значения длины по умолчанию
func TestGenerateCode_DefaultLength(t *testing.T) {
	code := util.GenerateCode(0)
	assert.Len(t, code, util.DefaultCodeLength)

	code = util.GenerateCode(-5)
	assert.Len(t, code, util.DefaultCodeLength)
}

// Два подряд сгенерированных кода практически никогда не совпадают
func TestGenerateCode_NotConstant(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[util.GenerateCode(8)] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestIsAlphanumeric(t *testing.T) {
	assert.True(t, util.IsAlphanumeric("abcXYZ019"))
	assert.False(t, util.IsAlphanumeric(""))
	assert.False(t, util.IsAlphanumeric("my-link"))
	assert.False(t, util.IsAlphanumeric("мояссылка"))
	assert.False(t, util.IsAlphanumeric("with space"))
}
