// Package api exposes the HTTP surface: deliberation CRUD, follow-up chat,
// config presets, WebSocket streaming, and health.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/plenumhq/plenum/pkg/config"
	"github.com/plenumhq/plenum/pkg/database"
	"github.com/plenumhq/plenum/pkg/events"
	"github.com/plenumhq/plenum/pkg/queue"
	"github.com/plenumhq/plenum/pkg/services"
)

// Server holds the handler dependencies. The required services are supplied
// at construction; runtime components (worker pool, chat executor, event
// streaming) are attached with setters during startup wiring.
type Server struct {
	cfg           *config.Config
	dbClient      *database.Client
	deliberations *services.DeliberationService
	scores        *services.ScoreService
	chats         *services.ChatService

	publisher    *events.EventPublisher
	connManager  *events.ConnectionManager
	workerPool   *queue.WorkerPool
	chatExecutor *queue.ChatExecutor
	keyStash     *queue.APIKeyStash
}

// NewServer creates an API server with the required service dependencies.
func NewServer(cfg *config.Config, dbClient *database.Client,
	deliberations *services.DeliberationService, scores *services.ScoreService,
	chats *services.ChatService) *Server {
	return &Server{
		cfg:           cfg,
		dbClient:      dbClient,
		deliberations: deliberations,
		scores:        scores,
		chats:         chats,
	}
}

// SetEventPublisher attaches the event publisher used for chat events.
func (s *Server) SetEventPublisher(p *events.EventPublisher) {
	s.publisher = p
}

// SetConnectionManager attaches the WebSocket connection manager.
func (s *Server) SetConnectionManager(m *events.ConnectionManager) {
	s.connManager = m
}

// SetWorkerPool attaches the worker pool for health reporting and
// cancellation fan-out.
func (s *Server) SetWorkerPool(p *queue.WorkerPool) {
	s.workerPool = p
}

// SetChatExecutor attaches the chat executor for follow-up turns.
func (s *Server) SetChatExecutor(e *queue.ChatExecutor) {
	s.chatExecutor = e
}

// SetKeyStash attaches the per-deliberation API key stash.
func (s *Server) SetKeyStash(ks *queue.APIKeyStash) {
	s.keyStash = ks
}

// Router builds the gin engine with middleware and all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), corsHeaders(), securityHeaders())

	r.GET("/health", s.healthHandler)

	v1 := r.Group("/api/v1")
	v1.POST("/deliberations", s.createDeliberationHandler)
	v1.GET("/deliberations", s.listDeliberationsHandler)
	v1.GET("/deliberations/active", s.activeDeliberationsHandler)
	v1.GET("/deliberations/:id", s.getDeliberationHandler)
	v1.GET("/deliberations/:id/scores", s.getScoresHandler)
	v1.GET("/deliberations/:id/output", s.getOutputHandler)
	v1.POST("/deliberations/:id/cancel", s.cancelDeliberationHandler)
	v1.POST("/deliberations/:id/chat", s.sendChatMessageHandler)
	v1.GET("/deliberations/:id/chat", s.getChatHandler)
	v1.GET("/config/councils", s.listCouncilsHandler)
	v1.GET("/config/roles", s.listRolesHandler)
	v1.GET("/ws", s.wsHandler)

	return r
}
