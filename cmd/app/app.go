package app

import (
	"log"

	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/config"
	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/database"
	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/repository"
	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/service"
	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize MinIO: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, minioClient)

	return db, services
}
