package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/weiheng-lim/gamehub-be/internal/models"
	"github.com/weiheng-lim/gamehub-be/internal/storage"
	"github.com/weiheng-lim/gamehub-be/internal/storage/migrations"
)

// Ensure Store satisfies the storage.Store interface at compile time.
var _ storage.Store = (*Store)(nil)

// uniqueViolation is the Postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

// Store provides Postgres-backed persistence.
type Store struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// New connects a pool, applies migrations, and returns a ready store.
// timeout bounds every individual query.
func New(ctx context.Context, databaseURL string, timeout time.Duration) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := runMigrations(ctx, databaseURL); err != nil {
		pool.Close()
		return nil, err
	}

	return &Store{pool: pool, timeout: timeout}, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func runMigrations(ctx context.Context, databaseURL string) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	fsys, err := migrations.ForDialect("postgres")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	goose.SetBaseFS(fsys)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

func (s *Store) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return storage.ErrNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return storage.ErrTimeout
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return storage.ErrAlreadyExists
	}
	return err
}

// CreateUser inserts a new account row. A duplicate email surfaces as
// storage.ErrAlreadyExists via the unique constraint.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	const query = `
	INSERT INTO users (email, password_hash)
	VALUES ($1, $2)
	RETURNING id, email, password_hash, created_at;
	`
	row := s.pool.QueryRow(ctx, query, user.Email, user.PasswordHash)
	var created models.User
	if err := row.Scan(&created.ID, &created.Email, &created.PasswordHash, &created.CreatedAt); err != nil {
		return models.User{}, mapErr(err)
	}
	return created, nil
}

// FindByEmail fetches an account by email address.
func (s *Store) FindByEmail(ctx context.Context, email string) (models.User, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	const query = `
	SELECT id, email, password_hash, created_at
	FROM users
	WHERE email = $1;
	`
	row := s.pool.QueryRow(ctx, query, email)
	var user models.User
	if err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt); err != nil {
		return models.User{}, mapErr(err)
	}
	return user, nil
}

const newsColumns = `news_id, title, subtitle, short_description, long_description,
	header_img, thumbnail_img, scheduled_date, is_live, is_scheduled, is_trashed,
	slug, keywords, tags, created_by, category_uid, created_at`

// CreateNews inserts a news row.
func (s *Store) CreateNews(ctx context.Context, item models.News) (models.News, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	const query = `
	INSERT INTO news (title, subtitle, short_description, long_description,
		header_img, thumbnail_img, scheduled_date, is_live, is_scheduled, is_trashed,
		slug, keywords, tags, created_by, category_uid)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	RETURNING ` + newsColumns + `;
	`
	row := s.pool.QueryRow(ctx, query,
		item.Title, item.Subtitle, item.ShortDescription, item.LongDescription,
		item.HeaderImg, item.ThumbnailImg, item.ScheduledDate, item.IsLive,
		item.IsScheduled, item.IsTrashed, item.Slug, item.Keywords, item.Tags,
		item.CreatedBy, item.CategoryUID)
	created, err := scanNews(row)
	if err != nil {
		return models.News{}, mapErr(err)
	}
	return created, nil
}

// ListNews returns all news rows.
func (s *Store) ListNews(ctx context.Context) ([]models.News, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	rows, err := s.pool.Query(ctx, `SELECT `+newsColumns+` FROM news;`)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	items := []models.News{}
	for rows.Next() {
		item, err := scanNews(rows)
		if err != nil {
			return nil, mapErr(err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr(err)
	}
	return items, nil
}

// GetNews fetches a single news row by id.
func (s *Store) GetNews(ctx context.Context, id int64) (models.News, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	row := s.pool.QueryRow(ctx, `SELECT `+newsColumns+` FROM news WHERE news_id = $1;`, id)
	item, err := scanNews(row)
	if err != nil {
		return models.News{}, mapErr(err)
	}
	return item, nil
}

func scanNews(row pgx.Row) (models.News, error) {
	var item models.News
	err := row.Scan(&item.ID, &item.Title, &item.Subtitle, &item.ShortDescription,
		&item.LongDescription, &item.HeaderImg, &item.ThumbnailImg, &item.ScheduledDate,
		&item.IsLive, &item.IsScheduled, &item.IsTrashed, &item.Slug, &item.Keywords,
		&item.Tags, &item.CreatedBy, &item.CategoryUID, &item.CreatedAt)
	if err != nil {
		return models.News{}, err
	}
	return item, nil
}

const studioColumns = `studio_uid, name, description, website, created_by, created_at`

// CreateStudio inserts a studio row. The caller supplies the UID.
func (s *Store) CreateStudio(ctx context.Context, studio models.Studio) (models.Studio, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	const query = `
	INSERT INTO studios (studio_uid, name, description, website, created_by)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING ` + studioColumns + `;
	`
	row := s.pool.QueryRow(ctx, query,
		studio.UID, studio.Name, studio.Description, studio.Website, studio.CreatedBy)
	created, err := scanStudio(row)
	if err != nil {
		return models.Studio{}, mapErr(err)
	}
	return created, nil
}

// ListStudios returns all studio rows.
func (s *Store) ListStudios(ctx context.Context) ([]models.Studio, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	rows, err := s.pool.Query(ctx, `SELECT `+studioColumns+` FROM studios;`)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	studios := []models.Studio{}
	for rows.Next() {
		studio, err := scanStudio(rows)
		if err != nil {
			return nil, mapErr(err)
		}
		studios = append(studios, studio)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr(err)
	}
	return studios, nil
}

// GetStudio fetches a single studio row by uid.
func (s *Store) GetStudio(ctx context.Context, uid string) (models.Studio, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	row := s.pool.QueryRow(ctx, `SELECT `+studioColumns+` FROM studios WHERE studio_uid = $1;`, uid)
	studio, err := scanStudio(row)
	if err != nil {
		return models.Studio{}, mapErr(err)
	}
	return studio, nil
}

func scanStudio(row pgx.Row) (models.Studio, error) {
	var studio models.Studio
	err := row.Scan(&studio.UID, &studio.Name, &studio.Description,
		&studio.Website, &studio.CreatedBy, &studio.CreatedAt)
	if err != nil {
		return models.Studio{}, err
	}
	return studio, nil
}
