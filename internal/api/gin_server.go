package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"translate-bridge/internal/history"
	"translate-bridge/internal/languages"
	"translate-bridge/internal/services"
	"translate-bridge/internal/translation_engine"
	"translate-bridge/pkg/types"
)

const (
	serviceName     = "translate-bridge"
	requestIDHeader = "X-Request-ID"
)

// Translator is the part of the translation service the HTTP layer needs
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (*translation_engine.Result, error)
}

// HistoryReader lists recently served translations
type HistoryReader interface {
	Recent(ctx context.Context, limit int) ([]history.Record, error)
}

type GinServer struct {
	router     *gin.Engine
	logger     *zap.Logger
	translator Translator
	history    HistoryReader
}

func NewGinServer(logger *zap.Logger, svc *services.Services) *GinServer {
	var historyReader HistoryReader
	if svc.History != nil {
		historyReader = svc.History
	}
	return newGinServer(logger, svc.TranslationService, historyReader)
}

func newGinServer(logger *zap.Logger, translator Translator, historyReader HistoryReader) *GinServer {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), GinLogger(logger))
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", requestIDHeader},
		ExposeHeaders:   []string{requestIDHeader},
		MaxAge:          12 * time.Hour,
	}))

	server := &GinServer{
		router:     router,
		logger:     logger,
		translator: translator,
		history:    historyReader,
	}
	server.SetupRoutes()
	return server
}

// GetRouter returns the Gin router
func (s *GinServer) GetRouter() *gin.Engine {
	return s.router
}

func (s *GinServer) SetupRoutes() {
	s.router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	s.router.GET("/", s.Index)
	s.router.GET("/health", s.HealthCheck)
	s.router.GET("/languages", s.Languages)
	s.router.GET("/history", s.History)
	s.router.POST("/translate", s.Translate)
}

// RequestID tags every request with an id, reusing the caller's when sent
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// GinLogger returns a gin middleware for logging using zap
func GinLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", c.GetString("request_id")),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// HealthCheck godoc
// @Summary Health check endpoint
// @Description Check if the API server is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (s *GinServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": serviceName,
	})
}

// Index describes the API and its endpoints
func (s *GinServer) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": serviceName,
		"status":  "active",
		"endpoints": []gin.H{
			{"method": http.MethodPost, "path": "/translate", "body": types.TranslateRequest{Text: "Merhaba", SourceLang: "tr", TargetLang: "de"}},
			{"method": http.MethodGet, "path": "/languages"},
			{"method": http.MethodGet, "path": "/history"},
			{"method": http.MethodGet, "path": "/health"},
		},
	})
}

// Languages lists supported languages and every routable pair
// @Summary Supported languages
// @Tags translation
// @Produce json
// @Router /languages [get]
func (s *GinServer) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"languages": languages.Supported(),
		"pairs":     languages.Pairs(),
	})
}

// Translate handles text translation requests
// @Summary Translate text from one language to another
// @Tags translation
// @Accept json
// @Produce json
// @Param request body types.TranslateRequest true "Translation request"
// @Success 200 {object} types.TranslateResponse
// @Failure 400 {object} types.ErrorResponse
// @Failure 500 {object} types.ErrorResponse
// @Router /translate [post]
func (s *GinServer) Translate(c *gin.Context) {
	var req types.TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	s.logger.Info("translation request",
		zap.String("request_id", c.GetString("request_id")),
		zap.String("source_language", req.SourceLang),
		zap.String("target_language", req.TargetLang),
		zap.Int("text_length", len(req.Text)),
	)

	result, err := s.translator.Translate(c.Request.Context(), req.Text, req.SourceLang, req.TargetLang)
	if err != nil {
		var ve *translation_engine.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: ve.Message})
			return
		}
		s.logger.Error("translation error",
			zap.String("request_id", c.GetString("request_id")),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "translation failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, types.TranslateResponse{
		Input:          result.Input,
		Translated:     result.Translated,
		Error:          nil,
		Method:         string(result.Method),
		SourceLanguage: result.SourceLanguage.Descriptor(),
		TargetLanguage: result.TargetLanguage.Descriptor(),
	})
}

// History returns the most recent translations
// @Summary Recent translations
// @Tags history
// @Produce json
// @Param limit query int false "Number of records (1-100)"
// @Router /history [get]
func (s *GinServer) History(c *gin.Context) {
	if s.history == nil {
		c.JSON(http.StatusServiceUnavailable, types.ErrorResponse{Error: "history is not enabled"})
		return
	}

	limit := history.DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = history.ClampLimit(n)
	}

	records, err := s.history.Recent(c.Request.Context(), limit)
	if err != nil {
		s.logger.Error("history error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to load history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"translations": records})
}
