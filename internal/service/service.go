package service

import (
	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/config"
	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/repository"
	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/storage"
)

// Actor is the authenticated caller of a service operation, extracted from
// the JWT by the auth middleware.
type Actor struct {
	StudentID string
	IsAdmin   bool
}

type Service struct {
	Auth       AuthService
	Moderation ModerationService
	Feed       FeedService
	Community  CommunityService
	Journal    JournalService
	Mood       MoodService
	Resource   ResourceService
	Profile    ProfileService
	Admin      AdminService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:       NewAuthService(rep.Student, cfg),
		Moderation: NewModerationService(rep.Post),
		Feed:       NewFeedService(rep.Post, rep.Like, rep.Student),
		Community:  NewCommunityService(rep.Post, rep.Comment, rep.Like),
		Journal:    NewJournalService(rep.Journal),
		Mood:       NewMoodService(rep.Mood),
		Resource:   NewResourceService(rep.Resource),
		Profile:    NewProfileService(rep.Student, storage, cfg),
		Admin:      NewAdminService(rep.Student),
	}
}
