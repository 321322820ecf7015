// Package server exposes the fiscal client as a localhost REST bridge
// for merchant backends that prefer one HTTP call per receipt over
// linking the library. Each request assembles its own document, so
// concurrent submissions never share builder state.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rezonia/orangedata-go/internal/builder"
	"github.com/rezonia/orangedata-go/internal/model"
	"github.com/rezonia/orangedata-go/internal/signature"
	"github.com/rezonia/orangedata-go/internal/transport"
)

// Config holds server configuration
type Config struct {
	Address      string
	INN          string
	Group        string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

// Server represents the HTTP bridge server
type Server struct {
	config    *Config
	router    *gin.Engine
	signer    signature.Signer
	registrar *transport.Client
}

// NewServer creates a new bridge server
func NewServer(config *Config, signer signature.Signer, registrar *transport.Client) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if config.Debug {
		router.Use(gin.Logger())
	}

	s := &Server{
		config:    config,
		router:    router,
		signer:    signer,
		registrar: registrar,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", s.handleHealth)

	// API v1
	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/orders", s.handleSendOrder)
		v1.GET("/orders/:id/status", s.handleOrderStatus)
		v1.POST("/corrections", s.handleSendCorrection)
		v1.GET("/corrections/:id/status", s.handleCorrectionStatus)
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleSendOrder(c *gin.Context) {
	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	b := builder.New(s.config.INN, builder.WithDefaultGroup(s.config.Group))
	if err := buildOrder(b, &req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "document validation failed", Details: err.Error()})
		return
	}

	doc, err := b.CloseOrder()
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "document validation failed", Details: err.Error()})
		return
	}
	canonical, err := doc.Canonical()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to encode document", Details: err.Error()})
		return
	}
	sig, err := s.signer.Sign(canonical)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to sign document", Details: err.Error()})
		return
	}

	resp, err := s.registrar.SendOrder(c.Request.Context(), canonical, sig)
	s.writeSubmitResult(c, req.ID, resp, err)
}

func (s *Server) handleOrderStatus(c *gin.Context) {
	resp, err := s.registrar.OrderStatus(c.Request.Context(), c.Param("id"))
	s.writeStatusResult(c, resp, err)
}

func (s *Server) handleSendCorrection(c *gin.Context) {
	var req CorrectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	b := builder.New(s.config.INN, builder.WithDefaultGroup(s.config.Group))
	rev := model.Revision(req.FFDVersion)
	if err := buildCorrection(b, &req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "document validation failed", Details: err.Error()})
		return
	}

	doc, err := b.CloseCorrection()
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "document validation failed", Details: err.Error()})
		return
	}
	canonical, err := doc.Canonical()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to encode document", Details: err.Error()})
		return
	}
	sig, err := s.signer.Sign(canonical)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to sign document", Details: err.Error()})
		return
	}

	resp, err := s.registrar.SendCorrection(c.Request.Context(), rev, canonical, sig)
	s.writeSubmitResult(c, req.ID, resp, err)
}

func (s *Server) handleCorrectionStatus(c *gin.Context) {
	rev := model.Revision(c.DefaultQuery("ffdVersion", string(model.Revision105)))
	resp, err := s.registrar.CorrectionStatus(c.Request.Context(), rev, c.Param("id"))
	s.writeStatusResult(c, resp, err)
}

func (s *Server) writeSubmitResult(c *gin.Context, id string, resp *transport.Response, err error) {
	if resp == nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "registrar unreachable", Details: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "registrar rejected document", Details: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, SubmitResponse{
		ID:         id,
		Accepted:   true,
		StatusCode: resp.StatusCode,
	})
}

func (s *Server) writeStatusResult(c *gin.Context, resp *transport.Response, err error) {
	if resp == nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "registrar unreachable", Details: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "status check failed", Details: err.Error()})
		return
	}
	if resp.Processing() {
		c.Data(http.StatusAccepted, "text/plain", resp.Body)
		return
	}
	c.Data(http.StatusOK, "application/json", resp.Body)
}
