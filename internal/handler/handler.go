package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/config"
	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/service"
)

type Handlers struct {
	AuthService       service.AuthService
	ModerationService service.ModerationService
	FeedService       service.FeedService
	CommunityService  service.CommunityService
	JournalService    service.JournalService
	MoodService       service.MoodService
	ResourceService   service.ResourceService
	ProfileService    service.ProfileService
	AdminService      service.AdminService
	Cfg               *config.Config
	Validate          *validator.Validate
}

func NewHandlers(services *service.Service, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthService:       services.Auth,
		ModerationService: services.Moderation,
		FeedService:       services.Feed,
		CommunityService:  services.Community,
		JournalService:    services.Journal,
		MoodService:       services.Mood,
		ResourceService:   services.Resource,
		ProfileService:    services.Profile,
		AdminService:      services.Admin,
		Cfg:               cfg,
		Validate:          validator.New(),
	}
}

// actorFromRequest reads the identity the auth middleware stored in the
// request context. Missing values yield a zero Actor, which every gated
// service operation rejects.
func actorFromRequest(r *http.Request) service.Actor {
	studentID, _ := r.Context().Value("studentID").(string)
	isAdmin, _ := r.Context().Value("isAdmin").(bool)
	return service.Actor{StudentID: studentID, IsAdmin: isAdmin}
}
