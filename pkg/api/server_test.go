package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sourcehut/todosrht-core/pkg/config"
	"github.com/sourcehut/todosrht-core/pkg/database"
	"github.com/sourcehut/todosrht-core/pkg/models"
	"github.com/sourcehut/todosrht-core/pkg/queue"
	"github.com/sourcehut/todosrht-core/pkg/services"
	"github.com/sourcehut/todosrht-core/test/util"
)

func newTestServer(t *testing.T) *Server {
	gin.SetMode(gin.TestMode)

	entClient, db := util.SetupTestDatabase(t)
	cfg := &config.Config{
		Origin:        "https://todo.example.org",
		PostingDomain: "todo.example.org",
		NotifyFrom:    "notify@todo.example.org",
		HTTPPort:      "0",
	}
	enqueuer := queue.NewOutboxEnqueuer(entClient)
	mentions := services.NewMentionService(entClient, cfg.Origin)

	svc := Services{
		Users:         services.NewUserService(entClient),
		Participants:  services.NewParticipantService(entClient),
		Access:        services.NewAccessService(),
		Trackers:      services.NewTrackerService(entClient, cfg, enqueuer),
		Labels:        services.NewLabelService(entClient, enqueuer),
		Lifecycle:     services.NewLifecycleService(entClient, cfg, mentions, enqueuer, enqueuer),
		Subscriptions: services.NewSubscriptionService(entClient),
		Notifications: services.NewNotificationService(entClient),
		WebhookSubs:   services.NewWebhookService(entClient),
		ImportExport:  services.NewImportExportService(entClient, cfg),
	}
	return NewServer(cfg, database.NewClientFromEnt(entClient, db), nil, svc)
}

func doRequest(s *Server, method, path, user, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if user != "" {
		req.Header.Set("X-Forwarded-User", "u-"+user)
		req.Header.Set("X-Forwarded-Preferred-Username", user)
		req.Header.Set("X-Forwarded-Email", user+"@example.org")
	}
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func TestPrivateTrackerHiddenFromOutsiders(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	owner, err := s.users.GetOrCreate(ctx, "u-owner", "owner", "owner@example.org")
	require.NoError(t, err)
	_, err = s.trackers.Create(ctx, owner, models.CreateTrackerRequest{
		Name:       "secret",
		Visibility: models.TrackerVisibilityPrivate,
	})
	require.NoError(t, err)

	t.Run("anonymous sees 404, not 403", func(t *testing.T) {
		w := doRequest(s, http.MethodGet, "/api/v1/trackers/~owner/secret", "", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("a stranger sees 404 too", func(t *testing.T) {
		w := doRequest(s, http.MethodGet, "/api/v1/trackers/~owner/secret", "stranger", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("the owner sees the tracker", func(t *testing.T) {
		w := doRequest(s, http.MethodGet, "/api/v1/trackers/~owner/secret", "owner", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestCapabilityGates(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	owner, err := s.users.GetOrCreate(ctx, "u-owner", "owner", "owner@example.org")
	require.NoError(t, err)
	_, err = s.trackers.Create(ctx, owner, models.CreateTrackerRequest{Name: "bar"})
	require.NoError(t, err)

	t.Run("submitting needs authentication", func(t *testing.T) {
		w := doRequest(s, http.MethodPost, "/api/v1/trackers/~owner/bar/tickets", "",
			`{"title": "I have a problem"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("a member with default access can submit", func(t *testing.T) {
		w := doRequest(s, http.MethodPost, "/api/v1/trackers/~owner/bar/tickets", "member",
			`{"title": "I have a problem"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		var resp struct {
			ScopedID int `json:"scoped_id"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.ScopedID)
	})

	t.Run("but cannot create labels without triage", func(t *testing.T) {
		w := doRequest(s, http.MethodPost, "/api/v1/trackers/~owner/bar/labels", "member",
			`{"name": "bug", "color": "#cc0000"}`)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("the owner can", func(t *testing.T) {
		w := doRequest(s, http.MethodPost, "/api/v1/trackers/~owner/bar/labels", "owner",
			`{"name": "bug", "color": "#cc0000"}`)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("search rejects invalid terms", func(t *testing.T) {
		w := doRequest(s, http.MethodGet, "/api/v1/trackers/~owner/bar/tickets?q=bogus:value", "member", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
