package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/empowerhub/empowerhub-api/internal/domain"
	"github.com/empowerhub/empowerhub-api/internal/service"
	"github.com/empowerhub/empowerhub-api/internal/store"
)

// newDashboardRouter mounts the handler on a chi router so URL parameters
// resolve the same way they do in production.
func newDashboardRouter(handler *DashboardHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/dashboard", handler.Dashboard)
	r.Get("/api/history/{category}", handler.History)
	return r
}

func TestDashboard(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("successful dashboard", func(t *testing.T) {
		handler := NewDashboardHandler(&stubDashboardService{
			dashboardFn: func(ctx context.Context, uid uuid.UUID) (*service.DashboardView, error) {
				require.Equal(t, userID, uid)
				return &service.DashboardView{
					UserInfo:      service.UserProfile{Email: "ivy@example.com"},
					WellnessScore: 66.67,
					ActivityCounts: service.ActivityCounts{
						LearningActivities: 2,
						HealthTracking:     3,
					},
				}, nil
			},
		})

		req := asUser(httptest.NewRequest(http.MethodGet, "/api/dashboard", nil), userID)
		rr := httptest.NewRecorder()
		newDashboardRouter(handler).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		body := decodeBody(t, rr)
		assert.Equal(t, true, body["success"])

		dashboard, ok := body["dashboard"].(map[string]interface{})
		require.True(t, ok, "dashboard should be an object")
		assert.InDelta(t, 66.67, dashboard["wellness_score"], 0.001)

		userInfo, ok := dashboard["user_info"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "ivy@example.com", userInfo["email"])

		counts, ok := dashboard["activity_counts"].(map[string]interface{})
		require.True(t, ok)
		assert.InDelta(t, 2.0, counts["learning_activities"], 0.001)
		assert.InDelta(t, 3.0, counts["health_tracking"], 0.001)
	})

	t.Run("unknown user", func(t *testing.T) {
		handler := NewDashboardHandler(&stubDashboardService{
			dashboardFn: func(ctx context.Context, uid uuid.UUID) (*service.DashboardView, error) {
				return nil, store.ErrUserNotFound
			},
		})

		req := asUser(httptest.NewRequest(http.MethodGet, "/api/dashboard", nil), userID)
		rr := httptest.NewRecorder()
		newDashboardRouter(handler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		body := decodeBody(t, rr)
		assert.Equal(t, "User not found", body["error"])
	})

	t.Run("unauthenticated", func(t *testing.T) {
		handler := NewDashboardHandler(&stubDashboardService{})

		req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
		rr := httptest.NewRecorder()
		newDashboardRouter(handler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestHistory(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("valid category", func(t *testing.T) {
		handler := NewDashboardHandler(&stubDashboardService{
			historyFn: func(ctx context.Context, uid uuid.UUID, category domain.Category) ([]service.HistoryEntry, error) {
				require.Equal(t, domain.CategoryEducation, category)
				return []service.HistoryEntry{
					{Question: "q1", Answer: "a1", Confidence: 0.85},
				}, nil
			},
		})

		req := asUser(httptest.NewRequest(http.MethodGet, "/api/history/education", nil), userID)
		rr := httptest.NewRecorder()
		newDashboardRouter(handler).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		body := decodeBody(t, rr)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "education", body["category"])

		history, ok := body["history"].([]interface{})
		require.True(t, ok, "history should be a list")
		assert.Len(t, history, 1)
	})

	t.Run("unknown category", func(t *testing.T) {
		handler := NewDashboardHandler(&stubDashboardService{})

		req := asUser(httptest.NewRequest(http.MethodGet, "/api/history/finance", nil), userID)
		rr := httptest.NewRecorder()
		newDashboardRouter(handler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		body := decodeBody(t, rr)
		assert.Equal(t, "Invalid category", body["error"])
	})

	t.Run("empty history stays a list", func(t *testing.T) {
		handler := NewDashboardHandler(&stubDashboardService{
			historyFn: func(ctx context.Context, uid uuid.UUID, category domain.Category) ([]service.HistoryEntry, error) {
				return []service.HistoryEntry{}, nil
			},
		})

		req := asUser(httptest.NewRequest(http.MethodGet, "/api/history/health", nil), userID)
		rr := httptest.NewRecorder()
		newDashboardRouter(handler).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		body := decodeBody(t, rr)
		_, ok := body["history"].([]interface{})
		assert.True(t, ok, "history should serialize as a list, not null")
	})
}

func TestStatusEndpoints(t *testing.T) {
	t.Parallel()

	handler := NewStatusHandler()

	t.Run("status banner", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
		rr := httptest.NewRecorder()
		handler.Status(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		body := decodeBody(t, rr)
		assert.Equal(t, "online", body["status"])
		assert.Equal(t, "EmpowerHub API is running", body["message"])
		assert.Equal(t, "1.0", body["version"])
	})

	t.Run("healthz", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rr := httptest.NewRecorder()
		handler.Healthz(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "ok", rr.Body.String())
	})
}
