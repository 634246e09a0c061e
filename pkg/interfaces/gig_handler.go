package interfaces

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/mublin/mublin-web/pkg/domain"
)

// Apology copy shown when a gig page cannot render. The two situations carry
// distinguishable messages so users know whether to retry.
const (
	apologyTitle    = "Ops..."
	gigNotFoundCopy = "Não encontramos esta gig. Talvez ela tenha sido encerrada ou você tenha digitado o endereço incorreto"
	gigErrorCopy    = "Ocorreu um erro ao carregar as informações desta gig. Tente novamente mais tarde"
)

const trendingLimit = 3

// GigHandler serves the four marketplace views: the landing page, the
// authenticated home feed, the public browse feed and the gig page.
type GigHandler struct {
	service  domain.GigService
	sessions domain.SessionProvider
	builder  *ViewModelBuilder
	logger   *log.Logger

	pageSize     int
	createdSince time.Time
}

func NewGigHandler(service domain.GigService, sessions domain.SessionProvider, builder *ViewModelBuilder, logger *log.Logger, pageSize int, createdSince time.Time) *GigHandler {
	if logger == nil {
		logger = log.Default()
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &GigHandler{
		service:      service,
		sessions:     sessions,
		builder:      builder,
		logger:       logger,
		pageSize:     pageSize,
		createdSince: createdSince,
	}
}

func (h *GigHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/", h.Landing).Methods("GET")
	router.HandleFunc("/home", h.Home).Methods("GET")
	router.HandleFunc("/browse/gigs", h.Browse).Methods("GET")
	router.HandleFunc("/gig/{slug}", h.GigPage).Methods("GET")
}

// Landing serves the public landing page: the "Sou ..." role options plus a
// trending-musician sample. Authenticated visitors are pointed at /home.
func (h *GigHandler) Landing(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if session := h.currentSession(ctx, r); session != nil {
		h.respondWithJSON(w, http.StatusOK, map[string]string{"redirect": "/home"})
		return
	}

	options, err := h.service.ProjectRoleOptions(ctx)
	if err != nil {
		h.logger.Printf("landing: role options fetch failed: %v", err)
		options = []domain.RoleOption{}
	}

	musicians, err := h.service.TrendingMusicians(ctx, trendingLimit)
	if err != nil {
		h.logger.Printf("landing: trending fetch failed: %v", err)
		musicians = []domain.Musician{}
	}

	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"role_options": options,
		"trending":     h.builder.Musicians(musicians),
	})
}

// Home serves the authenticated feed. Guests get 401 and should sign in.
func (h *GigHandler) Home(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	session := h.currentSession(ctx, r)
	if session == nil {
		h.respondWithError(w, http.StatusUnauthorized, "faça login para acessar o seu feed")
		return
	}

	list, err := h.service.ListGigs(ctx, h.listRequest())
	if err != nil {
		h.respondWithError(w, http.StatusBadGateway, gigErrorCopy)
		return
	}

	musicians, err := h.service.TrendingMusicians(ctx, trendingLimit)
	if err != nil {
		h.logger.Printf("home: trending fetch failed: %v", err)
		musicians = []domain.Musician{}
	}

	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"gigs":         h.builder.GigCards(list.Gigs),
		"total":        list.Total,
		"trending":     h.builder.Musicians(musicians),
		"capabilities": CapabilitiesFor(session),
	})
}

// Browse serves the public gig feed. Authenticated visitors are redirected to
// their home feed instead.
func (h *GigHandler) Browse(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	if session := h.currentSession(ctx, r); session != nil {
		h.respondWithJSON(w, http.StatusOK, map[string]string{"redirect": "/home"})
		return
	}

	list, err := h.service.ListGigs(ctx, h.listRequest())
	if err != nil {
		h.respondWithError(w, http.StatusBadGateway, gigErrorCopy)
		return
	}

	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"gigs":         h.builder.GigCards(list.Gigs),
		"total":        list.Total,
		"capabilities": CapabilitiesFor(nil),
	})
}

// GigPage serves one gig by slug. Both failure modes answer with an apology
// payload; only the wording and status code differ.
func (h *GigHandler) GigPage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	slug := mux.Vars(r)["slug"]
	session := h.currentSession(ctx, r)

	detail, err := h.service.GigDetail(ctx, slug)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrGigNotFound):
			h.respondWithApology(w, http.StatusNotFound, gigNotFoundCopy)
		case errors.Is(err, domain.ErrInvalidRequest):
			h.respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			h.respondWithApology(w, http.StatusBadGateway, gigErrorCopy)
		}
		return
	}

	h.respondWithJSON(w, http.StatusOK, h.builder.GigPage(detail, CapabilitiesFor(session)))
}

func (h *GigHandler) listRequest() domain.GigListRequest {
	return domain.GigListRequest{
		ActiveOnly:   true,
		CreatedSince: h.createdSince,
		Limit:        h.pageSize,
	}
}

// currentSession resolves the bearer token, if any, to a session. Any
// validation failure degrades to guest.
func (h *GigHandler) currentSession(ctx context.Context, r *http.Request) *domain.Session {
	token := bearerToken(r)
	if token == "" {
		return nil
	}
	session, err := h.sessions.CurrentSession(ctx, token)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			h.logger.Printf("session lookup failed: %v", err)
		}
		return nil
	}
	return session
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func (h *GigHandler) respondWithApology(w http.ResponseWriter, code int, message string) {
	h.respondWithJSON(w, code, map[string]string{
		"title":   apologyTitle,
		"message": message,
	})
}

func (h *GigHandler) respondWithError(w http.ResponseWriter, code int, message string) {
	h.respondWithJSON(w, code, map[string]string{"error": message})
}

func (h *GigHandler) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
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
