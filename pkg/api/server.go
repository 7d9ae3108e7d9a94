// Package api provides the HTTP/JSON API for the tracker core.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sourcehut/todosrht-core/pkg/config"
	"github.com/sourcehut/todosrht-core/pkg/database"
	"github.com/sourcehut/todosrht-core/pkg/queue"
	"github.com/sourcehut/todosrht-core/pkg/services"
	"github.com/sourcehut/todosrht-core/pkg/version"
)

// Server is the HTTP API server.
type Server struct {
	router        *gin.Engine
	httpServer    *http.Server
	cfg           *config.Config
	dbClient      *database.Client
	workerPool    *queue.WorkerPool
	users         *services.UserService
	participants  *services.ParticipantService
	access        *services.AccessService
	trackers      *services.TrackerService
	labels        *services.LabelService
	lifecycle     *services.LifecycleService
	subscriptions *services.SubscriptionService
	notifications *services.NotificationService
	webhookSubs   *services.WebhookService
	importExport  *services.ImportExportService
}

// Services bundles the service layer for NewServer, so wiring in
// cmd/trackerd stays readable.
type Services struct {
	Users         *services.UserService
	Participants  *services.ParticipantService
	Access        *services.AccessService
	Trackers      *services.TrackerService
	Labels        *services.LabelService
	Lifecycle     *services.LifecycleService
	Subscriptions *services.SubscriptionService
	Notifications *services.NotificationService
	WebhookSubs   *services.WebhookService
	ImportExport  *services.ImportExportService
}

// NewServer creates the API server and registers all routes.
func NewServer(cfg *config.Config, dbClient *database.Client, pool *queue.WorkerPool, svc Services) *Server {
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		router:        router,
		cfg:           cfg,
		dbClient:      dbClient,
		workerPool:    pool,
		users:         svc.Users,
		participants:  svc.Participants,
		access:        svc.Access,
		trackers:      svc.Trackers,
		labels:        svc.Labels,
		lifecycle:     svc.Lifecycle,
		subscriptions: svc.Subscriptions,
		notifications: svc.Notifications,
		webhookSubs:   svc.WebhookSubs,
		importExport:  svc.ImportExport,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthHandler)
	s.router.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": version.Full()})
	})

	api := s.router.Group("/api/v1")
	api.Use(s.identity())

	api.GET("/trackers", s.listTrackersHandler)
	api.POST("/trackers", s.createTrackerHandler)

	tracker := api.Group("/trackers/:owner/:name")
	tracker.GET("", s.getTrackerHandler)
	tracker.PUT("", s.updateTrackerHandler)
	tracker.DELETE("", s.deleteTrackerHandler)
	tracker.PUT("/access/:username", s.grantAccessHandler)
	tracker.DELETE("/access/:username", s.revokeAccessHandler)
	tracker.GET("/export", s.exportTrackerHandler)
	tracker.POST("/import", s.importTrackerHandler)
	tracker.POST("/subscribe", s.subscribeTrackerHandler)

	tracker.GET("/labels", s.listLabelsHandler)
	tracker.POST("/labels", s.createLabelHandler)
	tracker.PUT("/labels/:label", s.updateLabelHandler)
	tracker.DELETE("/labels/:label", s.deleteLabelHandler)

	tracker.GET("/tickets", s.listTicketsHandler)
	tracker.POST("/tickets", s.submitTicketHandler)

	ticket := tracker.Group("/tickets/:id")
	ticket.GET("", s.getTicketHandler)
	ticket.PUT("", s.updateTicketHandler)
	ticket.GET("/events", s.ticketEventsHandler)
	ticket.PUT("/assignees/:username", s.assignHandler)
	ticket.DELETE("/assignees/:username", s.unassignHandler)
	ticket.POST("/subscribe", s.subscribeTicketHandler)

	api.PUT("/comments/:id", s.updateCommentHandler)
	api.DELETE("/subscriptions/:id", s.unsubscribeHandler)

	api.GET("/notifications", s.listNotificationsHandler)
	api.PUT("/notifications/:id/read", s.markNotificationReadHandler)
	api.PUT("/notifications", s.markAllNotificationsReadHandler)

	api.GET("/user/webhooks", s.listUserWebhooksHandler)
	api.POST("/user/webhooks", s.createUserWebhookHandler)
	tracker.GET("/webhooks", s.listTrackerWebhooksHandler)
	tracker.POST("/webhooks", s.createTrackerWebhookHandler)
	ticket.GET("/webhooks", s.listTicketWebhooksHandler)
	ticket.POST("/webhooks", s.createTicketWebhookHandler)
	api.DELETE("/webhooks/:id", s.deleteWebhookHandler)
}

func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.dbClient.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}

	resp := gin.H{
		"status":   "healthy",
		"database": dbHealth,
	}
	if s.workerPool != nil {
		resp["queue"] = s.workerPool.Health()
	}
	c.JSON(http.StatusOK, resp)
}

// Start runs the HTTP server until ctx is canceled.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              ":" + s.cfg.HTTPPort,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}

// Router exposes the underlying gin engine, for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
