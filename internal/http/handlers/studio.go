package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/weiheng-lim/gamehub-be/internal/auth"
	"github.com/weiheng-lim/gamehub-be/internal/http/respond"
	"github.com/weiheng-lim/gamehub-be/internal/logging"
	"github.com/weiheng-lim/gamehub-be/internal/middleware"
	"github.com/weiheng-lim/gamehub-be/internal/models"
	"github.com/weiheng-lim/gamehub-be/internal/models/dto"
	"github.com/weiheng-lim/gamehub-be/internal/storage"
)

// StudioHandler owns the studio endpoints. Listing is public; creating and
// fetching a single studio require a bearer token.
type StudioHandler struct {
	store  storage.StudioStore
	tokens *auth.TokenManager
	log    logging.Logger
}

// NewStudioHandler constructs the handler.
func NewStudioHandler(store storage.StudioStore, tokens *auth.TokenManager, log logging.Logger) *StudioHandler {
	return &StudioHandler{store: store, tokens: tokens, log: log}
}

// Register attaches studio routes to the mux.
func (h *StudioHandler) Register(mux *http.ServeMux) {
	createGuard := middleware.RequireAuth(h.tokens, http.HandlerFunc(h.handleCreate))
	mux.HandleFunc("/studios", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.handleList(w, r)
		case http.MethodPost:
			createGuard.ServeHTTP(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.Handle("/studios/", middleware.RequireAuth(h.tokens, http.HandlerFunc(h.handleGet)))
}

func (h *StudioHandler) handleList(w http.ResponseWriter, r *http.Request) {
	studios, err := h.store.ListStudios(r.Context())
	if err != nil {
		if errors.Is(err, storage.ErrTimeout) {
			respond.Error(w, http.StatusGatewayTimeout, "Storage timeout")
			return
		}
		h.log.Error(r.Context(), "list studios failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Error retrieving studios")
		return
	}
	respond.JSON(w, http.StatusOK, studios)
}

func (h *StudioHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateStudioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := req.Validate(); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	identity, _ := auth.IdentityFrom(r.Context())
	studio := models.Studio{
		UID:         uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		CreatedBy:   identity.Email,
	}
	created, err := h.store.CreateStudio(r.Context(), studio)
	if err != nil {
		if errors.Is(err, storage.ErrTimeout) {
			respond.Error(w, http.StatusGatewayTimeout, "Storage timeout")
			return
		}
		h.log.Error(r.Context(), "create studio failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Error creating studio")
		return
	}

	respond.JSON(w, http.StatusCreated, created)
}

func (h *StudioHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	uid := strings.TrimPrefix(r.URL.Path, "/studios/")

	studio, err := h.store.GetStudio(r.Context(), uid)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "Studio not found")
		case errors.Is(err, storage.ErrTimeout):
			respond.Error(w, http.StatusGatewayTimeout, "Storage timeout")
		default:
			h.log.Error(r.Context(), "get studio failed", "uid", uid, "error", err)
			respond.Error(w, http.StatusInternalServerError, "Error retrieving studio")
		}
		return
	}

	respond.JSON(w, http.StatusOK, studio)
}
