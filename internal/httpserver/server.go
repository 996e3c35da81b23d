// Package httpserver exposes the dashboard query API over HTTP. It serves
// JSON views of the loaded datasets, CSV downloads of the current view,
// and the BI board registry; all querying is delegated to the pure query
// package over the store's current snapshots.
package httpserver

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/opsboard/opsboard/internal/boards"
	"github.com/opsboard/opsboard/internal/store"
)

// Server provides the HTTP API for the dashboards.
type Server struct {
	addr     string
	store    *store.Store
	boards   *boards.Registry
	sessions *sessionGate

	server    *http.Server
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
}

// NewServer creates a new HTTP API server. An empty sessionSecret disables
// the session gate, mirroring a deployment without the auth provider
// configured.
func NewServer(addr string, st *store.Store, reg *boards.Registry, sessionSecret string) *Server {
	if addr == "" {
		addr = "0.0.0.0:3000"
	}
	if reg == nil {
		reg = &boards.Registry{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:     addr,
		store:    st,
		boards:   reg,
		sessions: newSessionGate(sessionSecret),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	s.register(r)

	s.server = &http.Server{
		Handler:           r,
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	s.startTime = time.Now()

	go s.server.Serve(listener)
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	s.cancel()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// register wires all routes. Session creation and health stay outside the
// gate so a signed-out client can still authenticate and probes still
// work.
func (s *Server) register(r *gin.Engine) {
	api := r.Group("/api")
	api.GET("/health", s.handleHealth)
	api.POST("/session", s.handleSignIn)
	api.DELETE("/session", s.handleSignOut)

	protected := api.Group("", s.sessions.require())
	protected.GET("/boards", s.handleBoards)
	protected.POST("/refresh", s.handleRefresh)

	protected.GET("/quotations", s.handleQuotations)
	protected.GET("/quotations/facets", s.handleQuotationFacets)
	protected.GET("/quotations/stats", s.handleQuotationStats)
	protected.GET("/quotations/export", s.handleQuotationExport)

	protected.GET("/events", s.handleEvents)
	protected.GET("/events/facets", s.handleEventFacets)
	protected.GET("/events/stats", s.handleEventStats)
	protected.GET("/events/export", s.handleEventExport)
}

func (s *Server) handleHealth(c *gin.Context) {
	pipelines := gin.H{}
	for name, p := range map[string]*store.Pipeline{
		"quotations": s.store.Quotations,
		"events":     s.store.Events,
	} {
		snap := p.Snapshot()
		if snap == nil {
			pipelines[name] = gin.H{"loaded": false}
			continue
		}
		pipelines[name] = gin.H{
			"loaded":    true,
			"id":        snap.Dataset.ID.String(),
			"source":    snap.Dataset.Source,
			"loaded_at": snap.Dataset.LoadedAt,
			"rows":      len(snap.Dataset.Table.Records),
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"uptime":    time.Since(s.startTime).String(),
		"auth":      s.sessions.configured(),
		"pipelines": pipelines,
	})
}

func (s *Server) handleBoards(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"boards": s.boards.Boards})
}

func (s *Server) handleRefresh(c *gin.Context) {
	if err := s.store.LoadAll(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "reload failed"})
		return
	}

	result := gin.H{}
	for name, p := range map[string]*store.Pipeline{
		"quotations": s.store.Quotations,
		"events":     s.store.Events,
	} {
		snap := p.Snapshot()
		result[name] = gin.H{
			"source": snap.Dataset.Source,
			"rows":   len(snap.Dataset.Table.Records),
		}
	}
	c.JSON(http.StatusOK, result)
}
