package storage

import (
	"context"
	"errors"

	"github.com/weiheng-lim/gamehub-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// ErrTimeout indicates the per-query deadline elapsed before the store
// answered.
var ErrTimeout = errors.New("storage operation timed out")

// UserStore captures account persistence. Uniqueness of email is enforced
// by the store's insert constraint, which is the only guard against two
// concurrent registrations with the same address.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
}

// NewsStore captures news persistence.
type NewsStore interface {
	CreateNews(ctx context.Context, item models.News) (models.News, error)
	ListNews(ctx context.Context) ([]models.News, error)
	GetNews(ctx context.Context, id int64) (models.News, error)
}

// StudioStore captures studio persistence.
type StudioStore interface {
	CreateStudio(ctx context.Context, studio models.Studio) (models.Studio, error)
	ListStudios(ctx context.Context) ([]models.Studio, error)
	GetStudio(ctx context.Context, uid string) (models.Studio, error)
}

// Store is the full persistence surface, implemented once per backend and
// selected by configuration.
type Store interface {
	UserStore
	NewsStore
	StudioStore
	Close()
}
