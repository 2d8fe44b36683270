package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/weiheng-lim/gamehub-be/internal/auth"
	"github.com/weiheng-lim/gamehub-be/internal/logging"
	"github.com/weiheng-lim/gamehub-be/internal/models"
	"github.com/weiheng-lim/gamehub-be/internal/storage"
)

// fakeStore is an in-memory storage.Store for handler tests. Setting err
// makes every call fail with it, to exercise the error mapping paths.
type fakeStore struct {
	mu         sync.Mutex
	users      map[string]models.User
	news       map[int64]models.News
	studios    map[string]models.Studio
	nextUserID int64
	nextNewsID int64
	err        error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:   map[string]models.User{},
		news:    map[int64]models.News{},
		studios: map[string]models.Studio{},
	}
}

func (f *fakeStore) CreateUser(_ context.Context, user models.User) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return models.User{}, f.err
	}
	if _, exists := f.users[user.Email]; exists {
		return models.User{}, storage.ErrAlreadyExists
	}
	f.nextUserID++
	user.ID = f.nextUserID
	user.CreatedAt = time.Now()
	f.users[user.Email] = user
	return user, nil
}

func (f *fakeStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return models.User{}, f.err
	}
	user, ok := f.users[email]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return user, nil
}

func (f *fakeStore) CreateNews(_ context.Context, item models.News) (models.News, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return models.News{}, f.err
	}
	f.nextNewsID++
	item.ID = f.nextNewsID
	item.CreatedAt = time.Now()
	f.news[item.ID] = item
	return item, nil
}

func (f *fakeStore) ListNews(_ context.Context) ([]models.News, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	items := []models.News{}
	for _, item := range f.news {
		items = append(items, item)
	}
	return items, nil
}

func (f *fakeStore) GetNews(_ context.Context, id int64) (models.News, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return models.News{}, f.err
	}
	item, ok := f.news[id]
	if !ok {
		return models.News{}, storage.ErrNotFound
	}
	return item, nil
}

func (f *fakeStore) CreateStudio(_ context.Context, studio models.Studio) (models.Studio, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return models.Studio{}, f.err
	}
	if _, exists := f.studios[studio.UID]; exists {
		return models.Studio{}, storage.ErrAlreadyExists
	}
	studio.CreatedAt = time.Now()
	f.studios[studio.UID] = studio
	return studio, nil
}

func (f *fakeStore) ListStudios(_ context.Context) ([]models.Studio, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	studios := []models.Studio{}
	for _, studio := range f.studios {
		studios = append(studios, studio)
	}
	return studios, nil
}

func (f *fakeStore) GetStudio(_ context.Context, uid string) (models.Studio, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return models.Studio{}, f.err
	}
	studio, ok := f.studios[uid]
	if !ok {
		return models.Studio{}, storage.ErrNotFound
	}
	return studio, nil
}

func (f *fakeStore) Close() {}

// nopLogger discards everything.
type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (nopLogger) With(...any) logging.Logger            { return nopLogger{} }

const testSecret = "handler-test-secret"

// newTestMux wires every handler against the given fake store the same way
// the server package does.
func newTestMux(store *fakeStore) (*http.ServeMux, *auth.TokenManager) {
	tokens := auth.NewTokenManager(testSecret, "gamehub-test", time.Hour, 0)
	mux := http.NewServeMux()
	log := nopLogger{}
	NewAuthHandler(store, tokens, log).Register(mux)
	NewNewsHandler(store, tokens, log).Register(mux)
	NewStudioHandler(store, tokens, log).Register(mux)
	NewHealthHandler(time.Now()).Register(mux)
	return mux, tokens
}
