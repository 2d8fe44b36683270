package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/weiheng-lim/gamehub-be/internal/auth"
	"github.com/weiheng-lim/gamehub-be/internal/http/respond"
	"github.com/weiheng-lim/gamehub-be/internal/logging"
	"github.com/weiheng-lim/gamehub-be/internal/models"
	"github.com/weiheng-lim/gamehub-be/internal/models/dto"
	"github.com/weiheng-lim/gamehub-be/internal/storage"
)

// AuthHandler owns the register/login/logout endpoints.
type AuthHandler struct {
	store  storage.UserStore
	tokens *auth.TokenManager
	log    logging.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(store storage.UserStore, tokens *auth.TokenManager, log logging.Logger) *AuthHandler {
	return &AuthHandler{store: store, tokens: tokens, log: log}
}

// Register attaches auth routes to the mux.
func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/register", h.handleRegister)
	mux.HandleFunc("/login", h.handleLogin)
	mux.HandleFunc("/logout", h.handleLogout)
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := req.Validate(); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.log.Error(r.Context(), "hash password failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Error hashing password")
		return
	}

	user := models.User{
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: passwordHash,
	}
	if _, err := h.store.CreateUser(r.Context(), user); err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyExists):
			respond.Error(w, http.StatusConflict, "Email already registered")
		case errors.Is(err, storage.ErrTimeout):
			respond.Error(w, http.StatusGatewayTimeout, "Storage timeout")
		default:
			h.log.Error(r.Context(), "create user failed", "error", err)
			respond.Error(w, http.StatusInternalServerError, "Error registering user")
		}
		return
	}

	respond.Message(w, http.StatusCreated, "User registered successfully")
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := req.Validate(); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.store.FindByEmail(r.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "User not found")
		case errors.Is(err, storage.ErrTimeout):
			respond.Error(w, http.StatusGatewayTimeout, "Storage timeout")
		default:
			h.log.Error(r.Context(), "fetch user failed", "error", err)
			respond.Error(w, http.StatusInternalServerError, "Error retrieving user")
		}
		return
	}

	ok, err := auth.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		// Only a corrupt stored hash lands here, never a wrong password.
		h.log.Error(r.Context(), "verify password failed", "email", user.Email, "error", err)
		respond.Error(w, http.StatusInternalServerError, "Error comparing passwords")
		return
	}
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Incorrect password")
		return
	}

	token, err := h.tokens.Mint(user.Email)
	if err != nil {
		h.log.Error(r.Context(), "mint token failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	respond.JSON(w, http.StatusOK, dto.LoginResponse{Message: "Login successful", Token: token})
}

// handleLogout inspects the Authorization header without verifying it.
// Tokens are stateless, so there is nothing to revoke server-side; a token
// stays usable until its natural expiry.
func (h *AuthHandler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if r.Header.Get("Authorization") == "" {
		respond.Error(w, http.StatusBadRequest, "Token not provided")
		return
	}
	respond.Message(w, http.StatusOK, "Logout successful")
}
