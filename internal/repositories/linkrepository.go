package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Totarae/ShortLinks/internal/database"
	"github.com/Totarae/ShortLinks/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// LinkRepositoryInterface определяет методы репозитория ссылок и журнала посещений.
// Каждый вызов — самостоятельная единица работы: репозиторий не предоставляет
// транзакций, охватывающих несколько вызовов.
type LinkRepositoryInterface interface {
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

// LinkRepository реализует LinkRepositoryInterface поверх PostgreSQL.
type LinkRepository struct {
	DB *database.DB
}

// NewLinkRepository создаёт новый экземпляр LinkRepository.
func NewLinkRepository(db *database.DB) *LinkRepository {
	return &LinkRepository{DB: db}
}

// uniqueViolation — код ошибки PostgreSQL для нарушения уникального индекса.
const uniqueViolation = "23505"

// SaveLink сохраняет ссылку в базу данных и заполняет ID и CreatedAt.
// Конфликт по short_code транслируется в model.ErrDuplicateAlias: уникальный
// индекс в БД — авторитетный источник этой ошибки, проверка существования
// в сервисе лишь быстрый путь.
func (r *LinkRepository) SaveLink(ctx context.Context, link *model.Link) error {
	query := `INSERT INTO links (short_code, original_url, custom_alias, expires_at)
              VALUES ($1, $2, $3, $4)
              RETURNING id, created_at`

	err := r.DB.Pool.QueryRow(ctx, query,
		link.ShortCode, link.OriginalURL, link.CustomAlias, link.ExpiresAt,
	).Scan(&link.ID, &link.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.ErrDuplicateAlias
		}
		return fmt.Errorf("database insert error: %w", err)
	}
	return nil
}

// GetLinkByCode извлекает ссылку по короткому коду.
func (r *LinkRepository) GetLinkByCode(ctx context.Context, shortCode string) (*model.Link, error) {
	query := `SELECT id, short_code, original_url, custom_alias, created_at, expires_at
              FROM links WHERE short_code = $1`

	link := &model.Link{}
	err := r.DB.Pool.QueryRow(ctx, query, shortCode).Scan(
		&link.ID, &link.ShortCode, &link.OriginalURL, &link.CustomAlias, &link.CreatedAt, &link.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrLinkNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return link, nil
}

// ExistsByCode проверяет занятость короткого кода.
func (r *LinkRepository) ExistsByCode(ctx context.Context, shortCode string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM links WHERE short_code = $1)`
	if err := r.DB.Pool.QueryRow(ctx, query, shortCode).Scan(&exists); err != nil {
		return false, fmt.Errorf("database query error: %w", err)
	}
	return exists, nil
}

// DeleteLink удаляет ссылку по идентификатору. Журнал посещений удаляется
// каскадно на уровне БД (FK ON DELETE CASCADE).
func (r *LinkRepository) DeleteLink(ctx context.Context, id int64) error {
	tag, err := r.DB.Pool.Exec(ctx, `DELETE FROM links WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("database delete error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrLinkNotFound
	}
	return nil
}

// UpdateLink перезаписывает original_url и expires_at ссылки.
// nil expiresAt сбрасывает срок действия. Остальные поля неизменяемы.
func (r *LinkRepository) UpdateLink(ctx context.Context, id int64, originalURL string, expiresAt *time.Time) (*model.Link, error) {
	query := `UPDATE links
              SET original_url = $2, expires_at = $3
              WHERE id = $1
              RETURNING id, short_code, original_url, custom_alias, created_at, expires_at`

	link := &model.Link{}
	err := r.DB.Pool.QueryRow(ctx, query, id, originalURL, expiresAt).Scan(
		&link.ID, &link.ShortCode, &link.OriginalURL, &link.CustomAlias, &link.CreatedAt, &link.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrLinkNotFound
		}
		return nil, fmt.Errorf("database update error: %w", err)
	}
	return link, nil
}

// SaveVisit добавляет запись о посещении. Момент посещения назначает БД.
func (r *LinkRepository) SaveVisit(ctx context.Context, visit *model.Visit) error {
	query := `INSERT INTO link_visits (link_id, user_agent, ip_address, referrer)
              VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''))
              RETURNING id, visited_at`

	err := r.DB.Pool.QueryRow(ctx, query,
		visit.LinkID, visit.UserAgent, visit.IPAddress, visit.Referrer,
	).Scan(&visit.ID, &visit.VisitedAt)
	if err != nil {
		return fmt.Errorf("database insert error: %w", err)
	}
	return nil
}

// CountVisits возвращает число посещений ссылки.
func (r *LinkRepository) CountVisits(ctx context.Context, linkID int64) (int64, error) {
	var count int64
	err := r.DB.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM link_visits WHERE link_id = $1`, linkID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("database query error: %w", err)
	}
	return count, nil
}

// LastVisit возвращает момент последнего посещения или nil, если посещений не было.
func (r *LinkRepository) LastVisit(ctx context.Context, linkID int64) (*time.Time, error) {
	query := `SELECT visited_at FROM link_visits
              WHERE link_id = $1
              ORDER BY visited_at DESC
              LIMIT 1`

	var visited time.Time
	err := r.DB.Pool.QueryRow(ctx, query, linkID).Scan(&visited)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("database query error: %w", err)
	}
	return &visited, nil
}

// FindByOriginalURL возвращает все ссылки с точным совпадением оригинального URL.
func (r *LinkRepository) FindByOriginalURL(ctx context.Context, originalURL string) ([]*model.Link, error) {
	query := `SELECT id, short_code, original_url, custom_alias, created_at, expires_at
              FROM links WHERE original_url = $1
              ORDER BY id`

	rows, err := r.DB.Pool.Query(ctx, query, originalURL)
	if err != nil {
		return nil, fmt.Errorf("database query error: %w", err)
	}
	defer rows.Close()

	var results []*model.Link
	for rows.Next() {
		link := &model.Link{}
		if err := rows.Scan(&link.ID, &link.ShortCode, &link.OriginalURL, &link.CustomAlias, &link.CreatedAt, &link.ExpiresAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		results = append(results, link)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database rows error: %w", err)
	}

	return results, nil
}

// Ping проверяет доступность базы данных.
func (r *LinkRepository) Ping(ctx context.Context) error {
	_, err := r.DB.Pool.Exec(ctx, "SELECT 1")
	return err
}
