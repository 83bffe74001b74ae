package handlers

import (
	"net/url"

	"github.com/Totarae/ShortLinks/internal/model"
	"github.com/Totarae/ShortLinks/internal/util"
)

const (
	aliasMinLen = 3
	aliasMaxLen = 16
)

// ValidateOriginalURL проверяет, что строка — абсолютный http(s)-URL.
// Выполняется до вызова сервиса; сервис хранит URL как получил.
func ValidateOriginalURL(raw string) error {
	if raw == "" {
		return model.NewValidationError("original_url is required")
	}
	parsed, err := url.ParseRequestURI(raw)
	if err != nil || parsed.Host == "" {
		return model.NewValidationError("original_url must be an absolute URL")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return model.NewValidationError("original_url must use http or https")
	}
	return nil
}

// ValidateAlias проверяет формат пользовательского алиаса: 3–16 символов,
// только буквы и цифры. Пустой алиас допустим и означает его отсутствие.
func ValidateAlias(alias string) error {
	if alias == "" {
		return nil
	}
	if len(alias) < aliasMinLen || len(alias) > aliasMaxLen {
		return model.NewValidationError("custom alias must be between 3 and 16 characters")
	}
	if !util.IsAlphanumeric(alias) {
		return model.NewValidationError("custom alias must contain only alphanumeric characters")
	}
	return nil
}
