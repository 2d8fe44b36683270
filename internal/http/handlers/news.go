package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/weiheng-lim/gamehub-be/internal/auth"
	"github.com/weiheng-lim/gamehub-be/internal/http/respond"
	"github.com/weiheng-lim/gamehub-be/internal/logging"
	"github.com/weiheng-lim/gamehub-be/internal/middleware"
	"github.com/weiheng-lim/gamehub-be/internal/models"
	"github.com/weiheng-lim/gamehub-be/internal/models/dto"
	"github.com/weiheng-lim/gamehub-be/internal/storage"
)

// NewsHandler owns the news endpoints. Listing and posting are public;
// fetching a single article requires a bearer token.
type NewsHandler struct {
	store  storage.NewsStore
	tokens *auth.TokenManager
	log    logging.Logger
}

// NewNewsHandler constructs the handler.
func NewNewsHandler(store storage.NewsStore, tokens *auth.TokenManager, log logging.Logger) *NewsHandler {
	return &NewsHandler{store: store, tokens: tokens, log: log}
}

// Register attaches news routes to the mux.
func (h *NewsHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/news", h.handleCollection)
	mux.Handle("/news/", middleware.RequireAuth(h.tokens, http.HandlerFunc(h.handleGet)))
}

func (h *NewsHandler) handleCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r)
	case http.MethodPost:
		h.handleCreate(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *NewsHandler) handleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.ListNews(r.Context())
	if err != nil {
		if errors.Is(err, storage.ErrTimeout) {
			respond.Error(w, http.StatusGatewayTimeout, "Storage timeout")
			return
		}
		h.log.Error(r.Context(), "list news failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Error retrieving news")
		return
	}
	respond.JSON(w, http.StatusOK, items)
}

func (h *NewsHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateNewsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := req.Validate(); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	item := models.News{
		Title:            req.Title,
		Subtitle:         req.Subtitle,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
		HeaderImg:        req.HeaderImg,
		ThumbnailImg:     req.ThumbnailImg,
		ScheduledDate:    req.ScheduledDate,
		IsLive:           req.IsLive,
		IsScheduled:      req.IsScheduled,
		IsTrashed:        req.IsTrashed,
		Slug:             req.Slug,
		Keywords:         req.Keywords,
		Tags:             req.Tags,
		CreatedBy:        req.CreatedBy,
		CategoryUID:      req.CategoryUID,
	}
	if _, err := h.store.CreateNews(r.Context(), item); err != nil {
		if errors.Is(err, storage.ErrTimeout) {
			respond.Error(w, http.StatusGatewayTimeout, "Storage timeout")
			return
		}
		h.log.Error(r.Context(), "create news failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Error posting news")
		return
	}

	respond.Message(w, http.StatusCreated, "News posted successfully")
}

func (h *NewsHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/news/"), 10, 64)
	if err != nil {
		respond.Error(w, http.StatusNotFound, "News not found")
		return
	}

	item, err := h.store.GetNews(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "News not found")
		case errors.Is(err, storage.ErrTimeout):
			respond.Error(w, http.StatusGatewayTimeout, "Storage timeout")
		default:
			h.log.Error(r.Context(), "get news failed", "id", id, "error", err)
			respond.Error(w, http.StatusInternalServerError, "Error retrieving news")
		}
		return
	}

	respond.JSON(w, http.StatusOK, item)
}
