package interfaces

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/mublin/mublin-web/pkg/domain"
)

// SessionHandler exposes sign-in and sign-out over HTTP. The session itself
// lives in the hosted auth service; this handler only brokers tokens.
type SessionHandler struct {
	sessions domain.SessionProvider
}

func NewSessionHandler(sessions domain.SessionProvider) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

func (h *SessionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/session", h.SignIn).Methods("POST")
	router.HandleFunc("/api/session", h.SignOut).Methods("DELETE")
	router.HandleFunc("/api/session", h.CurrentSession).Methods("GET")
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *SessionHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var creds credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		h.respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.sessions.SignIn(ctx, creds.Email, creds.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRequest):
			h.respondWithError(w, http.StatusBadRequest, "email e senha são obrigatórios")
		case errors.Is(err, domain.ErrSessionNotFound):
			h.respondWithError(w, http.StatusUnauthorized, "credenciais inválidas")
		default:
			h.respondWithError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	h.respondWithJSON(w, http.StatusOK, session)
}

func (h *SessionHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	token := bearerToken(r)
	if err := h.sessions.SignOut(ctx, token); err != nil {
		switch {
		case errors.Is(err, domain.ErrSessionNotFound):
			h.respondWithError(w, http.StatusUnauthorized, "sessão não encontrada")
		default:
			h.respondWithError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) CurrentSession(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	session, err := h.sessions.CurrentSession(ctx, bearerToken(r))
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			h.respondWithError(w, http.StatusUnauthorized, "sessão não encontrada")
			return
		}
		h.respondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.respondWithJSON(w, http.StatusOK, session)
}

func (h *SessionHandler) respondWithError(w http.ResponseWriter, code int, message string) {
	h.respondWithJSON(w, code, map[string]string{"error": message})
}

func (h *SessionHandler) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
