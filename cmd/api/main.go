package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Arvs013/CSIT327-G2-MentalEase/cmd/app"
	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/config"
	handlers "github.com/Arvs013/CSIT327-G2-MentalEase/internal/handler"
	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set in the .env file")
	}

	db, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)

	router.HandleFunc("/api/auth/signup", handler.Signup).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/login", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/refresh-token", handler.RefreshToken).Methods(http.MethodPost)

	router.HandleFunc("/api/me", handler.GetCurrentStudent).Methods(http.MethodGet)
	router.HandleFunc("/api/me", handler.UpdateProfile).Methods(http.MethodPut)
	router.HandleFunc("/api/me/password", handler.ChangePassword).Methods(http.MethodPost)
	router.HandleFunc("/api/me/avatar", handler.UploadAvatar).Methods(http.MethodPost)

	router.HandleFunc("/api/feed", handler.GetFeed).Methods(http.MethodGet)
	router.HandleFunc("/api/posts", handler.CreatePost).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/{id}/like", handler.ToggleLike).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/{id}/comments", handler.GetComments).Methods(http.MethodGet)
	router.HandleFunc("/api/posts/{id}/comments", handler.CreateComment).Methods(http.MethodPost)

	router.HandleFunc("/api/journals", handler.GetJournals).Methods(http.MethodGet)
	router.HandleFunc("/api/journals", handler.CreateJournal).Methods(http.MethodPost)
	router.HandleFunc("/api/journals/{id}", handler.UpdateJournal).Methods(http.MethodPut)
	router.HandleFunc("/api/journals/{id}", handler.DeleteJournal).Methods(http.MethodDelete)

	router.HandleFunc("/api/moods", handler.GetMoodHistory).Methods(http.MethodGet)
	router.HandleFunc("/api/moods", handler.RecordMood).Methods(http.MethodPost)

	router.HandleFunc("/api/resources", handler.GetResources).Methods(http.MethodGet)

	// admin console
	admin := router.PathPrefix("/api/admin").Subrouter()
	admin.Use(middleware.AdminOnlyMiddleware)
	admin.HandleFunc("/posts", handler.AdminListPosts).Methods(http.MethodGet)
	admin.HandleFunc("/posts/{id}/status", handler.UpdatePostStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/posts/{id}", handler.AdminDeletePost).Methods(http.MethodDelete)
	admin.HandleFunc("/stats", handler.AdminStats).Methods(http.MethodGet)
	admin.HandleFunc("/users", handler.AdminListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}/promote", handler.PromoteUser).Methods(http.MethodPost)
	admin.HandleFunc("/users/{id}", handler.AdminDeleteUser).Methods(http.MethodDelete)
	admin.HandleFunc("/resources", handler.CreateResource).Methods(http.MethodPost)
	admin.HandleFunc("/resources/{id}", handler.UpdateResource).Methods(http.MethodPut)
	admin.HandleFunc("/resources/{id}", handler.DeleteResource).Methods(http.MethodDelete)

	handlerChain := middleware.Chain(
		router,
		middleware.AuthMiddleware(cfg),
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Server listening on %s", addr)
	log.Printf("Database: %s", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
