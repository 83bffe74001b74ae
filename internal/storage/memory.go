package storage

import (
	"context"
	"sync"
	"time"

	"github.com/Totarae/ShortLinks/internal/model"
)

// MemoryStore — потокобезопасное хранилище ссылок в памяти. Реализует тот же
// контракт, что и repositories.LinkRepository, и используется, когда DSN базы
// данных не задан, а также в тестах.
type MemoryStore struct {
	mutex      sync.RWMutex
	links      map[int64]*model.Link
	byCode     map[string]int64
	visits     map[int64][]model.Visit
	nextLinkID int64
	nextVisit  int64
}

// NewMemoryStore initializes an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		links:  make(map[int64]*model.Link),
		byCode: make(map[string]int64),
		visits: make(map[int64][]model.Visit),
	}
}

// SaveLink сохраняет ссылку, назначая ID и CreatedAt.
// Занятый короткий код даёт model.ErrDuplicateAlias, как и уникальный
// индекс в PostgreSQL.
func (s *MemoryStore) SaveLink(_ context.Context, link *model.Link) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.byCode[link.ShortCode]; exists {
		return model.ErrDuplicateAlias
	}

	s.nextLinkID++
	link.ID = s.nextLinkID
	link.CreatedAt = time.Now()

	stored := *link
	s.links[link.ID] = &stored
	s.byCode[link.ShortCode] = link.ID
	return nil
}

// GetLinkByCode возвращает ссылку по короткому коду.
func (s *MemoryStore) GetLinkByCode(_ context.Context, shortCode string) (*model.Link, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	id, ok := s.byCode[shortCode]
	if !ok {
		return nil, model.ErrLinkNotFound
	}
	link := *s.links[id]
	return &link, nil
}

// ExistsByCode проверяет занятость короткого кода.
func (s *MemoryStore) ExistsByCode(_ context.Context, shortCode string) (bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	_, ok := s.byCode[shortCode]
	return ok, nil
}

// DeleteLink удаляет ссылку и каскадно её журнал посещений.
func (s *MemoryStore) DeleteLink(_ context.Context, id int64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	link, ok := s.links[id]
	if !ok {
		return model.ErrLinkNotFound
	}
	delete(s.byCode, link.ShortCode)
	delete(s.links, id)
	delete(s.visits, id)
	return nil
}

// UpdateLink перезаписывает original_url и expires_at, остальные поля неизменны.
func (s *MemoryStore) UpdateLink(_ context.Context, id int64, originalURL string, expiresAt *time.Time) (*model.Link, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	link, ok := s.links[id]
	if !ok {
		return nil, model.ErrLinkNotFound
	}
	link.OriginalURL = originalURL
	link.ExpiresAt = expiresAt

	updated := *link
	return &updated, nil
}

// SaveVisit добавляет запись о посещении, назначая момент посещения.
func (s *MemoryStore) SaveVisit(_ context.Context, visit *model.Visit) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.links[visit.LinkID]; !ok {
		return model.ErrLinkNotFound
	}

	s.nextVisit++
	visit.ID = s.nextVisit
	visit.VisitedAt = time.Now()
	s.visits[visit.LinkID] = append(s.visits[visit.LinkID], *visit)
	return nil
}

// CountVisits возвращает число посещений ссылки.
func (s *MemoryStore) CountVisits(_ context.Context, linkID int64) (int64, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return int64(len(s.visits[linkID])), nil
}

// LastVisit возвращает момент последнего посещения или nil.
func (s *MemoryStore) LastVisit(_ context.Context, linkID int64) (*time.Time, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	visits := s.visits[linkID]
	if len(visits) == 0 {
		return nil, nil
	}
	last := visits[len(visits)-1].VisitedAt
	return &last, nil
}

// FindByOriginalURL возвращает все ссылки с точным совпадением URL
// в порядке создания.
func (s *MemoryStore) FindByOriginalURL(_ context.Context, originalURL string) ([]*model.Link, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var results []*model.Link
	for id := int64(1); id <= s.nextLinkID; id++ {
		link, ok := s.links[id]
		if !ok || link.OriginalURL != originalURL {
			continue
		}
		found := *link
		results = append(results, &found)
	}
	return results, nil
}

// Ping всегда успешен: хранилище живёт в памяти процесса.
func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}
