package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Skufu/symptomcheck/internal/analyzer"
	"github.com/Skufu/symptomcheck/internal/catalog"
	"github.com/Skufu/symptomcheck/internal/store"
)

const defaultMaxBodyBytes = 1 << 20

// Dependencies wires the router. DB may be nil when the database is
// disabled.
type Dependencies struct {
	Matcher      analyzer.Matcher
	Detector     *analyzer.Detector
	Catalog      *catalog.Catalog
	DB           store.HealthChecker
	Logger       *zap.Logger
	MaxBodyBytes int64
}

type symptomsRequest struct {
	Symptoms []string `json:"symptoms" binding:"required,max=50,dive,max=200"`
}

type analyzeResponse struct {
	Result           *analyzer.MatchResult `json:"result"`
	EmergencyWarning *string               `json:"emergencyWarning"`
	Indicators       []string              `json:"indicators"`
}

type emergencyResponse struct {
	Warning    *string  `json:"warning"`
	Indicators []string `json:"indicators"`
}

type conditionSummary struct {
	Name       string           `json:"name"`
	Category   string           `json:"category"`
	Severity   catalog.Severity `json:"severity"`
	DoctorType string           `json:"doctorType"`
	Symptoms   []string         `json:"symptoms"`
}

type handler struct {
	Dependencies
}

func NewRouter(deps Dependencies) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Detector == nil {
		deps.Detector = analyzer.DefaultDetector()
	}
	if deps.MaxBodyBytes <= 0 {
		deps.MaxBodyBytes = defaultMaxBodyBytes
	}
	h := &handler{Dependencies: deps}

	router := gin.New()
	router.Use(
		requestID(),
		requestLogger(deps.Logger),
		gin.Recovery(),
		limitBodySize(deps.MaxBodyBytes),
		cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization", requestIDHeader},
			MaxAge:       12 * time.Hour,
		}),
	)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/readyz", h.ready)

	api := router.Group("/api")
	api.GET("/conditions", h.conditions)
	api.POST("/symptoms/analyze", h.analyze)
	api.POST("/symptoms/emergency", h.emergency)
	api.POST("/symptoms/rank", h.rank)

	return router
}

func (h *handler) ready(c *gin.Context) {
	if h.DB == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "disabled"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.DB.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "degraded",
			"db":     fmt.Sprintf("unhealthy: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "ok"})
}

func (h *handler) conditions(c *gin.Context) {
	records := h.Catalog.Records()
	out := make([]conditionSummary, 0, len(records))
	for _, r := range records {
		out = append(out, conditionSummary{
			Name:       r.Name,
			Category:   r.Category,
			Severity:   r.Severity,
			DoctorType: r.DoctorType,
			Symptoms:   r.Symptoms,
		})
	}
	c.JSON(http.StatusOK, gin.H{"conditions": out})
}

func (h *handler) analyze(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	resp := analyzeResponse{Indicators: h.indicators(req.Symptoms)}
	if result, found := h.Matcher.Match(req.Symptoms); found {
		resp.Result = &result
	}
	if warning, flagged := h.Detector.Check(req.Symptoms); flagged {
		resp.EmergencyWarning = &warning
		h.Logger.Warn("emergency indicators reported",
			zap.Strings("indicators", resp.Indicators),
			zap.String("request_id", c.GetString("requestID")))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) emergency(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	resp := emergencyResponse{Indicators: h.indicators(req.Symptoms)}
	if warning, flagged := h.Detector.Check(req.Symptoms); flagged {
		resp.Warning = &warning
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) rank(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	candidates := h.Matcher.Rank(req.Symptoms)
	if candidates == nil {
		candidates = []analyzer.MatchResult{}
	}
	c.JSON(http.StatusOK, gin.H{"candidates": candidates})
}

func (h *handler) bind(c *gin.Context) (symptomsRequest, bool) {
	var req symptomsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
			return req, false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return req, false
	}
	return req, true
}

func (h *handler) indicators(symptoms []string) []string {
	found := h.Detector.Indicators(symptoms)
	if found == nil {
		return []string{}
	}
	return found
}
