package server

import (
	"fmt"
	"strings"
	"sync"

	"solar-observer/src/logger"
	"solar-observer/src/models"
	"solar-observer/src/utils"

	"github.com/gin-gonic/gin"
)

// -----------------------------------------------------------------------------
// StatsServer exposes the latest worst-case snapshot over REST and pushes
// recomputed snapshots to websocket subscribers. Serving is presentation
// only: the aggregation pipeline never depends on it.
// -----------------------------------------------------------------------------

type StatsServer struct {
	Config *models.MConfig
	Logger *logger.Logger
	engine *gin.Engine

	// WebSocket clients
	clients    map[*Client]struct{}
	broadcast  chan *models.MLatestData // Strongly typed and Buffered Queue
	register   chan *Client
	unregister chan *Client

	// Local cache
	latestState *models.MLatestData
	stateMutex  sync.RWMutex
}

// -----------------------------------------------------------------------------
// Constructor
// -----------------------------------------------------------------------------

func NewStatsServer(cfg *models.MConfig, logger *logger.Logger) *StatsServer {
	// Set Gin mode
	if cfg.LogLevel != "DEBUG" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &StatsServer{
		Config:  cfg,
		Logger:  logger,
		engine:  gin.Default(),
		clients: make(map[*Client]struct{}),
		// Buffered channel so a rescan burst never blocks the pipeline
		broadcast:  make(chan *models.MLatestData, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		latestState: &models.MLatestData{
			Type: "INITIAL",
		},
	}

	// Add CORS Middleware
	s.engine.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if strings.HasPrefix(origin, "http://127.0.0.1:") {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// setup web routes
	s.setupRoutes()
	return s
}

// -----------------------------------------------------------------------------
// Route Setup
// -----------------------------------------------------------------------------

func (s *StatsServer) setupRoutes() {
	// REST API endpoints
	s.engine.GET("/api/stats", s.getStats)
	s.engine.GET("/api/windows", s.getWindows)
	s.engine.GET("/api/metrics", s.getMetrics)
	s.engine.GET("/api/config", s.getConfig)
	s.engine.GET("/api/health", s.getHealth)

	// WebSocket endpoint
	s.engine.GET("/ws", s.handleWebSocket)
}

// -----------------------------------------------------------------------------
// Server Lifecycle
// -----------------------------------------------------------------------------

func (s *StatsServer) Start() error {
	addr := fmt.Sprintf("%s:%d", s.Config.Host, s.Config.Port)
	s.Logger.Info("Starting server on %s", addr)

	go s.handleWebsockets()

	return s.engine.Run(addr)
}

// -----------------------------------------------------------------------------

func (s *StatsServer) Stop() error {
	// Clean shutdown
	close(s.broadcast)
	close(s.register)
	close(s.unregister)
	return nil
}

// -----------------------------------------------------------------------------
// Route Handlers
// -----------------------------------------------------------------------------

func (s *StatsServer) getStats(c *gin.Context) {
	s.stateMutex.RLock()
	defer s.stateMutex.RUnlock()

	if s.latestState.Stats == nil {
		c.JSON(503, gin.H{"error": "no snapshot computed yet"})
		return
	}
	c.JSON(200, s.latestState.Stats)
}

// -----------------------------------------------------------------------------

func (s *StatsServer) getWindows(c *gin.Context) {
	s.stateMutex.RLock()
	defer s.stateMutex.RUnlock()

	c.JSON(200, s.latestState.Windows)
}

// -----------------------------------------------------------------------------

func (s *StatsServer) getMetrics(c *gin.Context) {
	s.stateMutex.RLock()
	defer s.stateMutex.RUnlock()

	c.JSON(200, s.latestState.ProcessingMetrics)
}

// -----------------------------------------------------------------------------

func (s *StatsServer) getConfig(c *gin.Context) {
	labels := make([]string, 0, len(utils.WindowDays))
	for _, days := range utils.WindowDays {
		labels = append(labels, utils.WindowLabel(days))
	}

	c.JSON(200, gin.H{
		"windows":            labels,
		"data_directory":     s.Config.DataSource.DataDirectory,
		"ignore_stated_year": s.Config.DataSource.IgnoreStatedYear,
	})
}

// -----------------------------------------------------------------------------

func (s *StatsServer) getHealth(c *gin.Context) {
	s.stateMutex.RLock()
	connections := len(s.clients)
	timestamp := s.latestState.Timestamp
	s.stateMutex.RUnlock()

	c.JSON(200, gin.H{
		"status":        "ok",
		"connections":   connections,
		"latest_update": timestamp,
	})
}
