package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlplan/snapshot"
	"github.com/katalvlaran/lvlplan/validate"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the validation engine over HTTP",
	Long: `Starts an HTTP server with three endpoints: POST /validate takes a
snapshot JSON body and returns the report, GET /healthz answers
liveness probes and GET /metrics exposes prometheus counters. An
integrity failure answers 422; the report itself is always 200, the
caller reads the severity counts.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

var (
	mValidations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lvlplan_validations_total",
		Help: "Validation runs by outcome: clean, findings, integrity, bad_request.",
	}, []string{"outcome"})
	mValidateSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lvlplan_validate_seconds",
		Help:    "Wall time of one validation run.",
		Buckets: prometheus.DefBuckets,
	})
	mIssues = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lvlplan_issues_total",
		Help: "Issues reported, by severity.",
	}, []string{"severity"})
)

// requestID answers with the caller's X-Request-ID or mints one, and
// stashes it for the request log.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-ID", id)
		c.Set("request_id", id)
		c.Next()
	}
}

func requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("request",
			"request_id", c.GetString("request_id"),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

func handleValidate(c *gin.Context) {
	b, err := snapshot.Decode(c.Request.Body, snapshot.FormatJSON)
	if err != nil {
		mValidations.WithLabelValues("bad_request").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	rep, err := validate.Validate(b)
	if err != nil {
		mValidations.WithLabelValues("integrity").Inc()
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	mValidateSeconds.Observe(time.Since(start).Seconds())

	for _, is := range rep.Issues {
		mIssues.WithLabelValues(is.Severity.String()).Inc()
	}
	outcome := "clean"
	if len(rep.Issues) > 0 {
		outcome = "findings"
	}
	mValidations.WithLabelValues(outcome).Inc()

	c.JSON(http.StatusOK, reportToJSON(rep))
}

func runServe(cmd *cobra.Command, args []string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), requestLog())

	r.POST("/validate", handleValidate)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": version})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	slog.Info("listening", "addr", serveAddr)
	return r.Run(serveAddr)
}
