// Package ui serves an evaluation session over HTTP: comparison tables
// as JSON, learning-curve figures for a plotly-style client, and rendered
// reports. It stands in for the notebook widgets the engine's output was
// originally consumed with.
package ui

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"curveval/adapters/plot"
	"curveval/adapters/report"
	"curveval/domain/core"
	"curveval/domain/eval"
	"curveval/internal"
	"curveval/internal/config"
)

// Server exposes one evaluation session.
type Server struct {
	router   *gin.Engine
	results  *eval.Results
	renderer *report.MarkdownRenderer
	session  core.SessionID
	log      *internal.Logger

	// Baseline switches and table computation mutate aggregator state;
	// the handlers serialize access to the session.
	mu sync.Mutex
}

// NewServer creates a viewer for the given results.
func NewServer(cfg config.ServerConfig, results *eval.Results) *Server {
	gin.SetMode(cfg.GinMode)

	s := &Server{
		router:   gin.Default(),
		results:  results,
		renderer: report.NewMarkdownRenderer(),
		session:  core.NewSessionID(),
		log:      internal.NewDefaultLogger(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/session", s.handleSession)
		api.GET("/metrics", s.handleMetrics)
		api.GET("/metrics/:metric/comparison", s.handleComparison)
		api.GET("/metrics/:metric/cases/:case/curves", s.handleCaseCurves)
		api.GET("/metrics/:metric/cases/:case/fit", s.handleFitQuality)
		api.GET("/metrics/:metric/folds/:fold/curves", s.handleFoldCurves)
		api.POST("/baseline", s.handleSetBaseline)
	}
	s.router.GET("/report.md", s.handleMarkdownReport)
	s.router.GET("/report.html", s.handleHTMLReport)
}

// Run starts the server on the given address.
func (s *Server) Run(addr string) error {
	s.log.Info("results viewer listening on %s (session %s)", addr, s.session)
	return s.router.Run(addr)
}

// Router exposes the handler for tests.
func (s *Server) Router() http.Handler { return s.router }

func (s *Server) handleSession(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"session": s.session.String(),
		"metrics": s.results.MetricNames(),
	})
}

func (s *Server) handleMetrics(c *gin.Context) {
	type metricInfo struct {
		Name     string   `json:"name"`
		Baseline string   `json:"baseline"`
		Cases    []string `json:"cases"`
		Folds    []string `json:"folds"`
		EvalStep int      `json:"eval_step"`
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	infos := make([]metricInfo, 0, len(s.results.MetricNames()))
	for _, name := range s.results.MetricNames() {
		result, err := s.results.MetricResult(name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		info := metricInfo{
			Name:     name,
			Baseline: result.BaselineCase().String(),
			EvalStep: result.EvalStep(),
		}
		for _, cs := range result.Cases() {
			info.Cases = append(info.Cases, cs.String())
		}
		for _, fold := range result.FoldIDs() {
			info.Folds = append(info.Folds, fold.String())
		}
		infos = append(infos, info)
	}
	c.JSON(http.StatusOK, gin.H{"metrics": infos})
}

func (s *Server) handleComparison(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.results.MetricResult(c.Param("metric"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	table, err := result.BaselineComparison()
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, table)
}

func (s *Server) handleSetBaseline(c *gin.Context) {
	var body struct {
		Case string `json:"case" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.results.SetBaselineCase(core.ExecutionCase(body.Case)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"baseline": body.Case})
}

func (s *Server) handleCaseCurves(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	caseResult, ok := s.lookupCase(c)
	if !ok {
		return
	}
	fig, err := plot.CaseLearningCurves(caseResult, offsetParam(c))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, fig)
}

func (s *Server) handleFitQuality(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	caseResult, ok := s.lookupCase(c)
	if !ok {
		return
	}
	overfitting, underfitting := caseResult.CountUnderAndOverFits(eval.DefaultOverfitBorder, eval.DefaultUnderfitBorder)
	c.JSON(http.StatusOK, gin.H{
		"quality":            caseResult.EstimateFitQuality(),
		"count_overfitting":  overfitting,
		"count_underfitting": underfitting,
	})
}

func (s *Server) handleFoldCurves(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.results.MetricResult(c.Param("metric"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	fig, err := plot.FoldLearningCurves(result, core.FoldID(c.Param("fold")), offsetParam(c))
	if err != nil {
		status := http.StatusUnprocessableEntity
		if core.IsLookupError(err) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, fig)
}

func (s *Server) handleMarkdownReport(c *gin.Context) {
	md, ok := s.renderReport(c)
	if !ok {
		return
	}
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(md))
}

func (s *Server) handleHTMLReport(c *gin.Context) {
	md, ok := s.renderReport(c)
	if !ok {
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", s.renderer.HTML(md))
}

func (s *Server) renderReport(c *gin.Context) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tables, err := s.results.ComputeAllComparisons(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return "", false
	}
	return s.renderer.Session(s.results.MetricNames(), tables), true
}

// lookupCase resolves the :metric/:case route pair, writing the error
// response itself on a miss.
func (s *Server) lookupCase(c *gin.Context) (*eval.CaseEvaluationResult, bool) {
	result, err := s.results.MetricResult(c.Param("metric"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return nil, false
	}
	caseResult, err := result.CaseResult(core.ExecutionCase(c.Param("case")))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return nil, false
	}
	return caseResult, true
}

func offsetParam(c *gin.Context) int {
	// Negative means "use the renderer default".
	if raw := c.Query("offset"); raw != "" {
		if offset, err := strconv.Atoi(raw); err == nil && offset >= 0 {
			return offset
		}
	}
	return -1
}
