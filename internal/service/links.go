package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Totarae/ShortLinks/internal/model"
	"github.com/Totarae/ShortLinks/internal/util"
	"go.uber.org/zap"
)

// Repository — контракт хранилища, который нужен сервису. Каждый вызов
// фиксируется хранилищем самостоятельно, межвызовной атомарности нет.
type Repository interface {
	SaveLink(ctx context.Context, link *model.Link) error
	GetLinkByCode(ctx context.Context, shortCode string) (*model.Link, error)
	ExistsByCode(ctx context.Context, shortCode string) (bool, error)
	DeleteLink(ctx context.Context, id int64) error
	UpdateLink(ctx context.Context, id int64, originalURL string, expiresAt *time.Time) (*model.Link, error)
	SaveVisit(ctx context.Context, visit *model.Visit) error
	CountVisits(ctx context.Context, linkID int64) (int64, error)
	LastVisit(ctx context.Context, linkID int64) (*time.Time, error)
	FindByOriginalURL(ctx context.Context, originalURL string) ([]*model.Link, error)
	Ping(ctx context.Context) error
}

// Cache — необязательный кеш резолва. nil означает работу напрямую с хранилищем.
type Cache interface {
	GetLink(ctx context.Context, shortCode string) (*model.CachedLink, error)
	SetLink(ctx context.Context, shortCode string, entry *model.CachedLink, ttl time.Duration) error
	DeleteLink(ctx context.Context, shortCode string) error
}

// maxCodeAttempts ограничивает цикл подбора свободного сгенерированного кода.
const maxCodeAttempts = 5

// cacheTTL — базовое время жизни записи кеша резолва; для ссылок со сроком
// действия TTL урезается до момента истечения.
const cacheTTL = 10 * time.Minute

// LinkService — движок жизненного цикла ссылок: создание с контролем
// коллизий, резолв с ленивым истечением, обновление, удаление, статистика
// и поиск. Сервис не хранит состояния и безопасен для конкурентных вызовов.
type LinkService struct {
	Repo       Repository
	Cache      Cache
	Logger     *zap.Logger
	CodeLength int
}

// NewLinkService создаёт LinkService. cache может быть nil.
func NewLinkService(repo Repository, cache Cache, logger *zap.Logger, codeLength int) *LinkService {
	if codeLength <= 0 {
		codeLength = util.DefaultCodeLength
	}
	return &LinkService{
		Repo:       repo,
		Cache:      cache,
		Logger:     logger,
		CodeLength: codeLength,
	}
}

// CreateLink создаёт короткую ссылку. Пустой customAlias означает
// сгенерированный код; занятый алиас даёт model.ErrDuplicateAlias.
func (s *LinkService) CreateLink(ctx context.Context, originalURL, customAlias string, expiresAt *time.Time) (*model.Link, error) {
	if err := validateExpiry(expiresAt); err != nil {
		return nil, err
	}

	var shortCode string
	if customAlias == "" {
		code, err := s.pickFreeCode(ctx)
		if err != nil {
			return nil, err
		}
		shortCode = code
	} else {
		// Формат алиаса проверен до сервиса; здесь только занятость.
		// Проверка — быстрый путь: последнее слово за уникальным индексом
		// хранилища при вставке.
		exists, err := s.Repo.ExistsByCode(ctx, customAlias)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, model.ErrDuplicateAlias
		}
		shortCode = customAlias
	}

	link := &model.Link{
		ShortCode:   shortCode,
		OriginalURL: originalURL,
		CustomAlias: customAlias != "",
		ExpiresAt:   expiresAt,
	}
	if err := s.Repo.SaveLink(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

// pickFreeCode генерирует код и повторяет при коллизии.
func (s *LinkService) pickFreeCode(ctx context.Context) (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code := util.GenerateCode(s.CodeLength)
		exists, err := s.Repo.ExistsByCode(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
		s.Logger.Warn("Коллизия сгенерированного кода, повтор",
			zap.String("short_code", code), zap.Int("attempt", i+1))
	}
	return "", fmt.Errorf("could not allocate a free short code after %d attempts", maxCodeAttempts)
}

// ResolveLink возвращает оригинальный URL по короткому коду и фиксирует
// посещение. Истечение срока применяется лениво: просроченная ссылка
// удаляется при обращении, ответ — model.ErrLinkNotFound.
// Ошибка записи посещения не мешает редиректу.
func (s *LinkService) ResolveLink(ctx context.Context, shortCode string, info *model.VisitInfo) (string, error) {
	if s.Cache != nil {
		if entry, err := s.Cache.GetLink(ctx, shortCode); err == nil {
			s.recordVisit(ctx, entry.ID, info)
			return entry.OriginalURL, nil
		}
	}

	link, err := s.Repo.GetLinkByCode(ctx, shortCode)
	if err != nil {
		return "", err
	}

	if link.Expired(time.Now()) {
		// Проигранная гонка с конкурентным резолвом того же кода тоже
		// сходится к "не найдено".
		if err := s.Repo.DeleteLink(ctx, link.ID); err != nil && !errors.Is(err, model.ErrLinkNotFound) {
			s.Logger.Error("Не удалось удалить просроченную ссылку",
				zap.String("short_code", shortCode), zap.Error(err))
		}
		s.invalidate(ctx, shortCode)
		return "", model.ErrLinkNotFound
	}

	s.recordVisit(ctx, link.ID, info)
	s.cacheLink(ctx, link)
	return link.OriginalURL, nil
}

// recordVisit пишет посещение best-effort.
func (s *LinkService) recordVisit(ctx context.Context, linkID int64, info *model.VisitInfo) {
	visit := &model.Visit{LinkID: linkID}
	if info != nil {
		visit.UserAgent = info.UserAgent
		visit.IPAddress = info.IPAddress
		visit.Referrer = info.Referrer
	}
	if err := s.Repo.SaveVisit(ctx, visit); err != nil {
		s.Logger.Error("Не удалось записать посещение", zap.Int64("link_id", linkID), zap.Error(err))
	}
}

// cacheLink кладёт ссылку в кеш; TTL не переживает момент истечения.
func (s *LinkService) cacheLink(ctx context.Context, link *model.Link) {
	if s.Cache == nil {
		return
	}
	ttl := cacheTTL
	if link.ExpiresAt != nil {
		if until := time.Until(*link.ExpiresAt); until < ttl {
			ttl = until
		}
	}
	if ttl <= 0 {
		return
	}
	entry := &model.CachedLink{ID: link.ID, OriginalURL: link.OriginalURL}
	if err := s.Cache.SetLink(ctx, link.ShortCode, entry, ttl); err != nil {
		s.Logger.Warn("Не удалось положить ссылку в кеш", zap.String("short_code", link.ShortCode), zap.Error(err))
	}
}

func (s *LinkService) invalidate(ctx context.Context, shortCode string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.DeleteLink(ctx, shortCode); err != nil {
		s.Logger.Warn("Не удалось инвалидировать кеш", zap.String("short_code", shortCode), zap.Error(err))
	}
}

// GetLink возвращает ссылку без записи посещения и без проверки истечения.
func (s *LinkService) GetLink(ctx context.Context, shortCode string) (*model.Link, error) {
	return s.Repo.GetLinkByCode(ctx, shortCode)
}

// DeleteLink удаляет ссылку и её журнал посещений. Истечение не проверяется:
// удаление просроченной, но не вычищенной ссылки — обычное удаление.
func (s *LinkService) DeleteLink(ctx context.Context, shortCode string) error {
	link, err := s.Repo.GetLinkByCode(ctx, shortCode)
	if err != nil {
		return err
	}
	if err := s.Repo.DeleteLink(ctx, link.ID); err != nil {
		return err
	}
	s.invalidate(ctx, shortCode)
	return nil
}

// UpdateLink перезаписывает URL и срок действия ссылки. Валидация срока
// выполняется до проверки существования: на этом пути ошибка валидации
// важнее, чем "не найдено".
func (s *LinkService) UpdateLink(ctx context.Context, shortCode, originalURL string, expiresAt *time.Time) (*model.Link, error) {
	if err := validateExpiry(expiresAt); err != nil {
		return nil, err
	}

	link, err := s.Repo.GetLinkByCode(ctx, shortCode)
	if err != nil {
		return nil, err
	}

	updated, err := s.Repo.UpdateLink(ctx, link.ID, originalURL, expiresAt)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, shortCode)
	return updated, nil
}

// GetStats возвращает статистику посещений. Истечение не проверяется:
// статистика просроченной, но ещё не вычищенной ссылки доступна.
func (s *LinkService) GetStats(ctx context.Context, shortCode string) (*model.LinkStats, error) {
	link, err := s.Repo.GetLinkByCode(ctx, shortCode)
	if err != nil {
		return nil, err
	}

	count, err := s.Repo.CountVisits(ctx, link.ID)
	if err != nil {
		return nil, err
	}
	last, err := s.Repo.LastVisit(ctx, link.ID)
	if err != nil {
		return nil, err
	}

	return &model.LinkStats{
		ShortCode:     link.ShortCode,
		OriginalURL:   link.OriginalURL,
		CreatedAt:     link.CreatedAt,
		VisitCount:    count,
		LastVisitedAt: last,
	}, nil
}

// SearchByOriginalURL возвращает все живые ссылки с точным совпадением
// оригинального URL, включая просроченные. Пустой список — не ошибка.
func (s *LinkService) SearchByOriginalURL(ctx context.Context, originalURL string) ([]*model.Link, error) {
	return s.Repo.FindByOriginalURL(ctx, originalURL)
}

// Ping проверяет доступность хранилища.
func (s *LinkService) Ping(ctx context.Context) error {
	return s.Repo.Ping(ctx)
}

// validateExpiry требует, чтобы заданный срок был строго в будущем.
func validateExpiry(expiresAt *time.Time) error {
	if expiresAt != nil && !expiresAt.After(time.Now()) {
		return model.NewValidationError("expiration must be in the future")
	}
	return nil
}
