package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/config"
	handlers "github.com/Arvs013/CSIT327-G2-MentalEase/internal/handler"
	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/models"
	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/service"
)

func newTestHandlers(moderation *MockModerationService, admin *MockAdminService) *handlers.Handlers {
	return &handlers.Handlers{
		ModerationService: moderation,
		AdminService:      admin,
		Cfg:               &config.Config{},
		Validate:          validator.New(),
	}
}

func withIdentity(r *http.Request, studentID string, isAdmin bool) *http.Request {
	ctx := context.WithValue(r.Context(), "studentID", studentID)
	ctx = context.WithValue(ctx, "isAdmin", isAdmin)
	return r.WithContext(ctx)
}

var adminActor = service.Actor{StudentID: "admin-1", IsAdmin: true}

func TestAdminListPostsHandler(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		mockSetup      func(*MockModerationService)
		expectedStatus int
	}{
		{
			name:  "returns pending posts for the moderation queue",
			query: "?status=pending",
			mockSetup: func(svc *MockModerationService) {
				svc.On("ListPosts", mock.Anything, adminActor, "pending", "").
					Return([]models.Post{
						{
							PostID:    "post1",
							AuthorID:  "student1",
							Content:   "waiting for review",
							Status:    models.StatusPending,
							CreatedAt: time.Now(),
						},
					}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "passes the search filter through",
			query: "?status=approved&search=exam",
			mockSetup: func(svc *MockModerationService) {
				svc.On("ListPosts", mock.Anything, adminActor, "approved", "exam").
					Return([]models.Post{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "invalid status filter is a bad request",
			query: "?status=archived",
			mockSetup: func(svc *MockModerationService) {
				svc.On("ListPosts", mock.Anything, adminActor, "archived", "").
					Return(nil, fmt.Errorf("unknown status archived: %w", models.ErrValidation))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockModeration := new(MockModerationService)
			tt.mockSetup(mockModeration)
			handler := newTestHandlers(mockModeration, nil)

			req := httptest.NewRequest(http.MethodGet, "/api/admin/posts"+tt.query, nil)
			req = withIdentity(req, "admin-1", true)

			rr := httptest.NewRecorder()
			handler.AdminListPosts(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedStatus == http.StatusOK {
				var response map[string]interface{}
				json.Unmarshal(rr.Body.Bytes(), &response)
				assert.Contains(t, response, "posts")
			}

			mockModeration.AssertExpectations(t)
		})
	}
}

func TestUpdatePostStatusHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockSetup      func(*MockModerationService)
		expectedStatus int
	}{
		{
			name: "approve succeeds",
			body: `{"action":"approve"}`,
			mockSetup: func(svc *MockModerationService) {
				svc.On("TransitionStatus", mock.Anything, adminActor, "post1", "approve").
					Return(&models.Post{
						PostID: "post1",
						Status: models.StatusApproved,
					}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "revert to pending succeeds",
			body: `{"action":"pending"}`,
			mockSetup: func(svc *MockModerationService) {
				svc.On("TransitionStatus", mock.Anything, adminActor, "post1", "pending").
					Return(&models.Post{
						PostID: "post1",
						Status: models.StatusPending,
					}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown action is rejected before the service",
			body:           `{"action":"publish"}`,
			mockSetup:      func(svc *MockModerationService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body is a bad request",
			body:           `{"action":`,
			mockSetup:      func(svc *MockModerationService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing post maps to not found",
			body: `{"action":"decline"}`,
			mockSetup: func(svc *MockModerationService) {
				svc.On("TransitionStatus", mock.Anything, adminActor, "post1", "decline").
					Return(nil, fmt.Errorf("post post1: %w", models.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockModeration := new(MockModerationService)
			tt.mockSetup(mockModeration)
			handler := newTestHandlers(mockModeration, nil)

			req := httptest.NewRequest(http.MethodPatch, "/api/admin/posts/post1/status", bytes.NewBufferString(tt.body))
			req = mux.SetURLVars(req, map[string]string{"id": "post1"})
			req = withIdentity(req, "admin-1", true)

			rr := httptest.NewRecorder()
			handler.UpdatePostStatus(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedStatus == http.StatusOK {
				var post models.Post
				json.Unmarshal(rr.Body.Bytes(), &post)
				assert.Equal(t, "post1", post.PostID)
			}

			mockModeration.AssertExpectations(t)
		})
	}
}

func TestAdminDeletePostHandler(t *testing.T) {
	t.Run("delete succeeds", func(t *testing.T) {
		mockModeration := new(MockModerationService)
		mockModeration.On("DeletePost", mock.Anything, adminActor, "post1").Return(nil)
		handler := newTestHandlers(mockModeration, nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/admin/posts/post1", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "post1"})
		req = withIdentity(req, "admin-1", true)

		rr := httptest.NewRecorder()
		handler.AdminDeletePost(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockModeration.AssertExpectations(t)
	})

	t.Run("non-admin is forbidden", func(t *testing.T) {
		mockModeration := new(MockModerationService)
		mockModeration.On("DeletePost", mock.Anything, service.Actor{StudentID: "student-1"}, "post1").
			Return(fmt.Errorf("moderation requires admin: %w", models.ErrUnauthorized))
		handler := newTestHandlers(mockModeration, nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/admin/posts/post1", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "post1"})
		req = withIdentity(req, "student-1", false)

		rr := httptest.NewRecorder()
		handler.AdminDeletePost(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		mockModeration.AssertExpectations(t)
	})
}

func TestAdminStatsHandler(t *testing.T) {
	mockModeration := new(MockModerationService)
	mockModeration.On("ComputeCounts", mock.Anything, adminActor).
		Return(&models.ModerationCounts{Pending: 2, Approved: 5, Declined: 1, Total: 8}, nil)
	handler := newTestHandlers(mockModeration, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req = withIdentity(req, "admin-1", true)

	rr := httptest.NewRecorder()
	handler.AdminStats(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var counts models.ModerationCounts
	json.Unmarshal(rr.Body.Bytes(), &counts)
	assert.Equal(t, 8, counts.Total)
	assert.Equal(t, counts.Total, counts.Pending+counts.Approved+counts.Declined)

	mockModeration.AssertExpectations(t)
}

func TestAdminUserHandlers(t *testing.T) {
	t.Run("list users with post counts", func(t *testing.T) {
		mockAdmin := new(MockAdminService)
		mockAdmin.On("ListStudents", mock.Anything, adminActor).
			Return([]models.StudentWithStats{
				{Student: models.Student{StudentID: "s1", FullName: "Alex Reyes"}, PostCount: 3},
			}, nil)
		handler := newTestHandlers(nil, mockAdmin)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
		req = withIdentity(req, "admin-1", true)

		rr := httptest.NewRecorder()
		handler.AdminListUsers(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var response map[string]interface{}
		json.Unmarshal(rr.Body.Bytes(), &response)
		assert.Contains(t, response, "users")

		mockAdmin.AssertExpectations(t)
	})

	t.Run("self delete is rejected", func(t *testing.T) {
		mockAdmin := new(MockAdminService)
		mockAdmin.On("DeleteStudent", mock.Anything, adminActor, "admin-1").
			Return(fmt.Errorf("cannot delete yourself: %w", models.ErrValidation))
		handler := newTestHandlers(nil, mockAdmin)

		req := httptest.NewRequest(http.MethodDelete, "/api/admin/users/admin-1", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "admin-1"})
		req = withIdentity(req, "admin-1", true)

		rr := httptest.NewRecorder()
		handler.AdminDeleteUser(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockAdmin.AssertExpectations(t)
	})
}
