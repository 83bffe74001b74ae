package model

import "time"

// ShortenRequest представляет структуру запроса на создание короткой ссылки.
type ShortenRequest struct {
	OriginalURL string     `json:"original_url"`
	CustomAlias string     `json:"custom_alias,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// UpdateRequest представляет структуру запроса на обновление ссылки.
// Отсутствующий expires_at сбрасывает срок действия.
type UpdateRequest struct {
	OriginalURL string     `json:"original_url"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// StatsResponse представляет структуру ответа со статистикой ссылки.
type StatsResponse struct {
	ShortCode     string     `json:"short_code"`
	OriginalURL   string     `json:"original_url"`
	CreatedAt     time.Time  `json:"created_at"`
	VisitCount    int64      `json:"visit_count"`
	LastVisitedAt *time.Time `json:"last_visited_at,omitempty"`
}

// SearchResponse представляет структуру ответа на поиск по оригинальному URL.
// Пустой результат — это успех с пустым списком, а не ошибка.
type SearchResponse struct {
	OriginalURL string `json:"original_url"`
	Links       []Link `json:"links"`
}
