package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/efecagatay/CrestaStream-TestAutomation/internal/agent"
	"github.com/efecagatay/CrestaStream-TestAutomation/internal/conversation"
	"github.com/efecagatay/CrestaStream-TestAutomation/internal/identity"
	"github.com/efecagatay/CrestaStream-TestAutomation/internal/metrics"
	"github.com/efecagatay/CrestaStream-TestAutomation/internal/session"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// AppState holds all application services. State is owned here and injected
// into handlers; nothing in the service is a package-level global.
type AppState struct {
	Logger        *zap.Logger
	Identities    *identity.Store
	Sessions      *session.Registry
	Conversations *conversation.InMemoryStore
	Agents        *agent.Store
	Metrics       *metrics.Aggregator
	StartedAt     time.Time
}

// NewAppState wires the stores and services for one server instance.
func NewAppState(logger *zap.Logger) *AppState {
	convStore := conversation.NewInMemoryStore()
	return &AppState{
		Logger:        logger,
		Identities:    identity.NewStore(),
		Sessions:      session.NewRegistry(),
		Conversations: convStore,
		Agents:        agent.NewStore(),
		Metrics:       metrics.NewAggregator(convStore),
		StartedAt:     time.Now(),
	}
}

// NewRouter builds the gin engine with all routes registered. The browser
// test harness runs cross-origin, so CORS stays wide open.
func NewRouter(as *AppState) *gin.Engine {
	router := gin.New()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AddAllowHeaders("Authorization")
	router.Use(cors.New(corsCfg))
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.GET("/health", getHealth(as))

	auth := router.Group("/auth")
	{
		auth.POST("/login", login(as))
		auth.POST("/refresh", refresh(as))
		auth.POST("/logout", logout(as))
	}

	conversations := router.Group("/conversations")
	{
		conversations.GET("", listConversations(as))
		conversations.POST("", createConversation(as))
		conversations.GET("/:id", getConversation(as))
		conversations.PUT("/:id", updateConversation(as))
		conversations.DELETE("/:id", deleteConversation(as))
		conversations.POST("/:id/messages", appendMessage(as))
	}

	router.GET("/metrics", getMetrics(as))
	router.GET("/agents", listAgents(as))

	return router
}
