package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Totarae/ShortLinks/internal/mocks"
	"github.com/Totarae/ShortLinks/internal/model"
	"github.com/Totarae/ShortLinks/internal/service"
	"github.com/Totarae/ShortLinks/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (*service.LinkService, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	logger := zap.NewNop()
	return service.NewLinkService(store, nil, logger, 6), store
}

func future(d time.Duration) *time.Time {
	ts := time.Now().Add(d)
	return &ts
}

// Создание без алиаса: код сгенерирован, custom_alias = false
func TestCreateLink_Generated(t *testing.T) {
	svc, _ := newTestService(t)

	link, err := svc.CreateLink(context.Background(), "https://example.com/", "", nil)
	require.NoError(t, err)

	assert.Len(t, link.ShortCode, 6)
	assert.False(t, link.CustomAlias)
	assert.Equal(t, "https://example.com/", link.OriginalURL)
	assert.NotZero(t, link.ID)
	assert.False(t, link.CreatedAt.IsZero())
	assert.Nil(t, link.ExpiresAt)
}

// Создание с алиасом: код равен алиасу, custom_alias = true
func TestCreateLink_CustomAlias(t *testing.T) {
	svc, _ := newTestService(t)

	link, err := svc.CreateLink(context.Background(), "https://example.com/", "mylink", nil)
	require.NoError(t, err)

	assert.Equal(t, "mylink", link.ShortCode)
	assert.True(t, link.CustomAlias)
}

// Повторный алиас при живой первой ссылке — конфликт
func TestCreateLink_DuplicateAlias(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateLink(ctx, "https://a.example", "taken", nil)
	require.NoError(t, err)

	_, err = svc.CreateLink(ctx, "https://b.example", "taken", nil)
	assert.ErrorIs(t, err, model.ErrDuplicateAlias)
}

// После удаления алиас снова свободен, у новой ссылки новый ID
func TestCreateLink_AliasReusableAfterDelete(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.CreateLink(ctx, "https://a.example", "reuse", nil)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteLink(ctx, "reuse"))

	second, err := svc.CreateLink(ctx, "https://a.example", "reuse", nil)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

// Срок действия в прошлом отклоняется до похода в хранилище
func TestCreateLink_PastExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLinkRepositoryInterface(ctrl)
	// никаких вызовов хранилища не ожидается
	svc := service.NewLinkService(repo, nil, zap.NewNop(), 6)

	past := time.Now().Add(-time.Hour)
	_, err := svc.CreateLink(context.Background(), "https://example.com/", "", &past)

	require.Error(t, err)
	assert.True(t, model.IsValidation(err))
}

// Коллизия сгенерированного кода приводит к повтору генерации
func TestCreateLink_CollisionRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLinkRepositoryInterface(ctrl)
	svc := service.NewLinkService(repo, nil, zap.NewNop(), 6)

	gomock.InOrder(
		repo.EXPECT().ExistsByCode(gomock.Any(), gomock.Any()).Return(true, nil),
		repo.EXPECT().ExistsByCode(gomock.Any(), gomock.Any()).Return(false, nil),
	)
	repo.EXPECT().SaveLink(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, link *model.Link) error {
			link.ID = 1
			link.CreatedAt = time.Now()
			return nil
		})

	link, err := svc.CreateLink(context.Background(), "https://example.com/", "", nil)
	require.NoError(t, err)
	assert.Len(t, link.ShortCode, 6)
}

// Гонка по алиасу: проверка прошла, но вставка упёрлась в уникальный индекс
func TestCreateLink_RaceLostAtInsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLinkRepositoryInterface(ctrl)
	svc := service.NewLinkService(repo, nil, zap.NewNop(), 6)

	repo.EXPECT().ExistsByCode(gomock.Any(), "race").Return(false, nil)
	repo.EXPECT().SaveLink(gomock.Any(), gomock.Any()).Return(model.ErrDuplicateAlias)

	_, err := svc.CreateLink(context.Background(), "https://example.com/", "race", nil)
	assert.ErrorIs(t, err, model.ErrDuplicateAlias)
}

func TestResolveLink(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateLink(ctx, "https://example.com/", "mylink", nil)
	require.NoError(t, err)

	url, err := svc.ResolveLink(ctx, "mylink", &model.VisitInfo{UserAgent: "test-agent"})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/", url)

	stats, err := svc.GetStats(ctx, "mylink")
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.VisitCount)
	require.NotNil(t, stats.LastVisitedAt)
}

func TestResolveLink_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ResolveLink(context.Background(), "missing", nil)
	assert.ErrorIs(t, err, model.ErrLinkNotFound)
}

// Ленивое истечение: просроченная ссылка удаляется при обращении,
// повторный резолв тоже даёт "не найдено"
func TestResolveLink_LazyExpiry(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	// кладём просроченную ссылку напрямую в хранилище, минуя валидацию
	past := time.Now().Add(-time.Minute)
	link := &model.Link{ShortCode: "expired", OriginalURL: "https://example.com/", ExpiresAt: &past}
	require.NoError(t, store.SaveLink(ctx, link))

	_, err := svc.ResolveLink(ctx, "expired", nil)
	assert.ErrorIs(t, err, model.ErrLinkNotFound)

	// идемпотентность отсутствия после ленивого удаления
	_, err = svc.ResolveLink(ctx, "expired", nil)
	assert.ErrorIs(t, err, model.ErrLinkNotFound)

	exists, err := store.ExistsByCode(ctx, "expired")
	require.NoError(t, err)
	assert.False(t, exists)
}

// Ссылка со сроком в будущем резолвится как обычно
func TestResolveLink_NotYetExpired(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateLink(ctx, "https://example.com/", "soon", future(time.Hour))
	require.NoError(t, err)

	url, err := svc.ResolveLink(ctx, "soon", nil)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/", url)
}

// Ошибка записи посещения не мешает редиректу
func TestResolveLink_VisitFailureIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLinkRepositoryInterface(ctrl)
	svc := service.NewLinkService(repo, nil, zap.NewNop(), 6)

	repo.EXPECT().GetLinkByCode(gomock.Any(), "ok").Return(&model.Link{
		ID: 7, ShortCode: "ok", OriginalURL: "https://example.com/", CreatedAt: time.Now(),
	}, nil)
	repo.EXPECT().SaveVisit(gomock.Any(), gomock.Any()).Return(errors.New("visit log down"))

	url, err := svc.ResolveLink(context.Background(), "ok", &model.VisitInfo{})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/", url)
}

func TestDeleteLink(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateLink(ctx, "https://example.com/", "todelete", nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteLink(ctx, "todelete"))
	assert.ErrorIs(t, svc.DeleteLink(ctx, "todelete"), model.ErrLinkNotFound)
}

func TestUpdateLink(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateLink(ctx, "https://old.example", "upd", nil)
	require.NoError(t, err)

	updated, err := svc.UpdateLink(ctx, "upd", "https://new.example", future(time.Hour))
	require.NoError(t, err)

	assert.Equal(t, "https://new.example", updated.OriginalURL)
	assert.Equal(t, created.ShortCode, updated.ShortCode)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.CustomAlias)
	require.NotNil(t, updated.ExpiresAt)
}

// Ошибка валидации срока важнее, чем "не найдено"
func TestUpdateLink_ValidationBeforeLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLinkRepositoryInterface(ctrl)
	// GetLinkByCode не должен вызываться
	svc := service.NewLinkService(repo, nil, zap.NewNop(), 6)

	past := time.Now().Add(-time.Hour)
	_, err := svc.UpdateLink(context.Background(), "whatever", "https://example.com/", &past)

	require.Error(t, err)
	assert.True(t, model.IsValidation(err))
}

func TestUpdateLink_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateLink(context.Background(), "missing", "https://example.com/", nil)
	assert.ErrorIs(t, err, model.ErrLinkNotFound)
}

func TestGetStats(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateLink(ctx, "https://example.com/", "stat", nil)
	require.NoError(t, err)

	stats, err := svc.GetStats(ctx, "stat")
	require.NoError(t, err)
	assert.Zero(t, stats.VisitCount)
	assert.Nil(t, stats.LastVisitedAt)

	for i := 0; i < 3; i++ {
		_, err = svc.ResolveLink(ctx, "stat", nil)
		require.NoError(t, err)
	}

	stats, err = svc.GetStats(ctx, "stat")
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.VisitCount)
	require.NotNil(t, stats.LastVisitedAt)
	assert.WithinDuration(t, time.Now(), *stats.LastVisitedAt, time.Second)
}

// Статистика просроченной, но ещё не вычищенной ссылки доступна
func TestGetStats_ExpiredStillQueryable(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	past := time.Now().Add(-time.Minute)
	link := &model.Link{ShortCode: "old", OriginalURL: "https://example.com/", ExpiresAt: &past}
	require.NoError(t, store.SaveLink(ctx, link))

	stats, err := svc.GetStats(ctx, "old")
	require.NoError(t, err)
	assert.Equal(t, "old", stats.ShortCode)
}

func TestSearchByOriginalURL(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateLink(ctx, "https://example.com/", "srch1", nil)
	require.NoError(t, err)
	_, err = svc.CreateLink(ctx, "https://example.com/", "srch2", future(time.Hour))
	require.NoError(t, err)

	links, err := svc.SearchByOriginalURL(ctx, "https://example.com/")
	require.NoError(t, err)
	assert.Len(t, links, 2)

	// пустой результат — не ошибка
	links, err = svc.SearchByOriginalURL(ctx, "https://nothing.example")
	require.NoError(t, err)
	assert.Empty(t, links)
}

// Ошибки хранилища, не относящиеся к таксономии, проходят наверх как есть
func TestStoreErrorPropagation(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLinkRepositoryInterface(ctrl)
	svc := service.NewLinkService(repo, nil, zap.NewNop(), 6)

	storeErr := errors.New("connection refused")
	repo.EXPECT().GetLinkByCode(gomock.Any(), "any").Return(nil, storeErr)

	_, err := svc.ResolveLink(context.Background(), "any", nil)
	assert.ErrorIs(t, err, storeErr)
}
