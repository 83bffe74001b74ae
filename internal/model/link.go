package model

import "time"

// Link представляет сокращённую ссылку в хранилище.
// ID и CreatedAt назначаются хранилищем при создании и далее не меняются.
type Link struct {
	ID          int64      `json:"-"`
	ShortCode   string     `json:"short_code"`
	OriginalURL string     `json:"original_url"`
	CustomAlias bool       `json:"custom_alias"`
	CreatedAt   time.Time  `json:"created_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// Expired сообщает, истёк ли срок действия ссылки на момент now.
func (l *Link) Expired(now time.Time) bool {
	return l.ExpiresAt != nil && !now.Before(*l.ExpiresAt)
}

// Visit представляет одно посещение ссылки. Журнал посещений append-only:
// записи не обновляются и удаляются только каскадно вместе со ссылкой.
type Visit struct {
	ID        int64
	LinkID    int64
	VisitedAt time.Time
	UserAgent string
	IPAddress string
	Referrer  string
}

// VisitInfo — контекст вызова при переходе по ссылке. Все поля необязательны,
// пустая строка фиксируется как отсутствие значения.
type VisitInfo struct {
	UserAgent string
	IPAddress string
	Referrer  string
}

// LinkStats — агрегированная статистика посещений ссылки.
// VisitCount всегда вычисляется по журналу посещений.
type LinkStats struct {
	ShortCode     string
	OriginalURL   string
	CreatedAt     time.Time
	VisitCount    int64
	LastVisitedAt *time.Time
}

// CachedLink — то, что кладётся в кеш резолва: достаточно для редиректа
// и для записи посещения без похода в основное хранилище.
type CachedLink struct {
	ID          int64  `json:"id"`
	OriginalURL string `json:"original_url"`
}
