package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	supabase "github.com/nedpals/supabase-go"

	"github.com/mublin/mublin-web/pkg/config"
	"github.com/mublin/mublin-web/pkg/domain"
	"github.com/mublin/mublin-web/pkg/format"
	"github.com/mublin/mublin-web/pkg/integrations"
	"github.com/mublin/mublin-web/pkg/interfaces"
)

func main() {
	log.Println("Starting Mublin web...")

	// Local .env is optional; production uses real environment variables
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env: %v", err)
	}

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.json"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	createdSince, err := cfg.Feed.CreatedSinceTime()
	if err != nil {
		log.Fatalf("Invalid feed cutoff: %v", err)
	}

	// Hosted backend clients: the SDK for auth and simple reads, the REST
	// client for the composite feed queries
	sdk := supabase.CreateClient(cfg.Supabase.URL, cfg.Supabase.AnonKey)
	rest, err := integrations.NewRestClient(integrations.RestConfig{
		BaseURL: cfg.Supabase.URL,
		APIKey:  cfg.Supabase.AnonKey,
	})
	if err != nil {
		log.Fatalf("Failed to create REST client: %v", err)
	}

	gateway := integrations.NewSupabaseGateway(rest, sdk)
	sessions := integrations.NewSupabaseSessionProvider(sdk)

	// Audit session changes for the whole process lifetime
	unsubscribe := sessions.OnSessionChange(func(s *domain.Session) {
		if s == nil {
			log.Println("session ended")
			return
		}
		log.Printf("session started for user %s", s.UserID)
	})
	defer unsubscribe()

	// Initialize services
	gigService := interfaces.NewGigFeedService(gateway, log.Default())

	// Initialize HTTP handlers
	builder := interfaces.NewViewModelBuilder(format.MediaResolver{BaseURL: cfg.CDN.BaseURL})
	gigHandler := interfaces.NewGigHandler(gigService, sessions, builder, log.Default(), cfg.Feed.PageSize, createdSince)
	sessionHandler := interfaces.NewSessionHandler(sessions)

	// Setup router
	router := mux.NewRouter()
	gigHandler.RegisterRoutes(router)
	sessionHandler.RegisterRoutes(router)

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Log available routes
	log.Println("Available routes:")
	router.Walk(func(route *mux.Route, router *mux.Router, ancestors []*mux.Route) error {
		path, _ := route.GetPathTemplate()
		methods, _ := route.GetMethods()
		log.Printf("  %v %s", methods, path)
		return nil
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server listening on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped. Até a próxima gig.")
}
