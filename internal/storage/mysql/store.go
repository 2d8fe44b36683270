package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/pressly/goose/v3"

	"github.com/weiheng-lim/gamehub-be/internal/models"
	"github.com/weiheng-lim/gamehub-be/internal/storage"
	"github.com/weiheng-lim/gamehub-be/internal/storage/migrations"
)

// Ensure Store satisfies the storage.Store interface at compile time.
var _ storage.Store = (*Store)(nil)

// duplicateEntry is the MySQL errno for a unique key violation.
const duplicateEntry = 1062

// Store provides MySQL-backed persistence. The DSN must include
// parseTime=true so DATETIME columns scan into time.Time.
type Store struct {
	db      *sql.DB
	timeout time.Duration
}

// New opens a connection pool, applies migrations, and returns a ready
// store. timeout bounds every individual query.
func New(ctx context.Context, dsn string, timeout time.Duration) (*Store, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, timeout: timeout}, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.db != nil {
		s.db.Close()
	}
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	fsys, err := migrations.ForDialect("mysql")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	goose.SetBaseFS(fsys)
	if err := goose.SetDialect("mysql"); err != nil {
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
	case errors.Is(err, sql.ErrNoRows):
		return storage.ErrNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return storage.ErrTimeout
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == duplicateEntry {
		return storage.ErrAlreadyExists
	}
	return err
}

// CreateUser inserts a new account row. MySQL has no RETURNING, so the row
// is re-read by its generated id.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (email, password_hash) VALUES (?, ?)`,
		user.Email, user.PasswordHash)
	if err != nil {
		return models.User{}, mapErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, mapErr(err)
	}
	return s.findUserByID(ctx, id)
}

func (s *Store) findUserByID(ctx context.Context, id int64) (models.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, created_at FROM users WHERE id = ?`, id)
	var user models.User
	if err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt); err != nil {
		return models.User{}, mapErr(err)
	}
	return user, nil
}

// FindByEmail fetches an account by email address.
func (s *Store) FindByEmail(ctx context.Context, email string) (models.User, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	row := s.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, created_at FROM users WHERE email = ?`, email)
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

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO news (title, subtitle, short_description, long_description,
			header_img, thumbnail_img, scheduled_date, is_live, is_scheduled, is_trashed,
			slug, keywords, tags, created_by, category_uid)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.Title, item.Subtitle, item.ShortDescription, item.LongDescription,
		item.HeaderImg, item.ThumbnailImg, item.ScheduledDate, item.IsLive,
		item.IsScheduled, item.IsTrashed, item.Slug, item.Keywords, item.Tags,
		item.CreatedBy, item.CategoryUID)
	if err != nil {
		return models.News{}, mapErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.News{}, mapErr(err)
	}
	return s.getNews(ctx, id)
}

// ListNews returns all news rows.
func (s *Store) ListNews(ctx context.Context) ([]models.News, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `SELECT `+newsColumns+` FROM news`)
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
	return s.getNews(ctx, id)
}

func (s *Store) getNews(ctx context.Context, id int64) (models.News, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+newsColumns+` FROM news WHERE news_id = ?`, id)
	item, err := scanNews(row)
	if err != nil {
		return models.News{}, mapErr(err)
	}
	return item, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanNews(row scanner) (models.News, error) {
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

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO studios (studio_uid, name, description, website, created_by)
		VALUES (?, ?, ?, ?, ?)`,
		studio.UID, studio.Name, studio.Description, studio.Website, studio.CreatedBy)
	if err != nil {
		return models.Studio{}, mapErr(err)
	}
	return s.getStudio(ctx, studio.UID)
}

// ListStudios returns all studio rows.
func (s *Store) ListStudios(ctx context.Context) ([]models.Studio, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `SELECT `+studioColumns+` FROM studios`)
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
	return s.getStudio(ctx, uid)
}

func (s *Store) getStudio(ctx context.Context, uid string) (models.Studio, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+studioColumns+` FROM studios WHERE studio_uid = ?`, uid)
	studio, err := scanStudio(row)
	if err != nil {
		return models.Studio{}, mapErr(err)
	}
	return studio, nil
}

func scanStudio(row scanner) (models.Studio, error) {
	var studio models.Studio
	err := row.Scan(&studio.UID, &studio.Name, &studio.Description,
		&studio.Website, &studio.CreatedBy, &studio.CreatedAt)
	if err != nil {
		return models.Studio{}, err
	}
	return studio, nil
}
