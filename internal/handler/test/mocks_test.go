package test

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"

	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/models"
	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/repository"
	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, req repository.CreateStudentRequest) (*models.Student, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.Student, string, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.String(2), args.Error(3)
	}
	return args.Get(0).(*models.Student), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) RefreshTokens(ctx context.Context, refreshToken string) (*models.Student, string, string, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.String(2), args.Error(3)
	}
	return args.Get(0).(*models.Student), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*jwt.Token, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jwt.Token), args.Error(1)
}

type MockModerationService struct {
	mock.Mock
}

func (m *MockModerationService) ListPosts(ctx context.Context, actor service.Actor, status, search string) ([]models.Post, error) {
	args := m.Called(ctx, actor, status, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockModerationService) TransitionStatus(ctx context.Context, actor service.Actor, postID, action string) (*models.Post, error) {
	args := m.Called(ctx, actor, postID, action)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockModerationService) DeletePost(ctx context.Context, actor service.Actor, postID string) error {
	args := m.Called(ctx, actor, postID)
	return args.Error(0)
}

func (m *MockModerationService) ComputeCounts(ctx context.Context, actor service.Actor) (*models.ModerationCounts, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ModerationCounts), args.Error(1)
}

type MockCommunityService struct {
	mock.Mock
}

func (m *MockCommunityService) CreatePost(ctx context.Context, authorID, content string, isAnonymous bool) (*models.Post, error) {
	args := m.Called(ctx, authorID, content, isAnonymous)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockCommunityService) ToggleLike(ctx context.Context, studentID, postID string) (bool, int, error) {
	args := m.Called(ctx, studentID, postID)
	return args.Bool(0), args.Int(1), args.Error(2)
}

func (m *MockCommunityService) CreateComment(ctx context.Context, authorID, postID, content string) (*models.Comment, error) {
	args := m.Called(ctx, authorID, postID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommunityService) GetComments(ctx context.Context, postID string) ([]models.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

type MockFeedService struct {
	mock.Mock
}

func (m *MockFeedService) ProjectPublicFeed(ctx context.Context, viewerID string) ([]models.FeedPost, error) {
	args := m.Called(ctx, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FeedPost), args.Error(1)
}

type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) ListStudents(ctx context.Context, actor service.Actor) ([]models.StudentWithStats, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StudentWithStats), args.Error(1)
}

func (m *MockAdminService) PromoteStudent(ctx context.Context, actor service.Actor, studentID string) error {
	args := m.Called(ctx, actor, studentID)
	return args.Error(0)
}

func (m *MockAdminService) DeleteStudent(ctx context.Context, actor service.Actor, studentID string) error {
	args := m.Called(ctx, actor, studentID)
	return args.Error(0)
}
