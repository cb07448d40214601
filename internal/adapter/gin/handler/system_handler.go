package handler

import (
	"net/http"
	"unicode/utf8"

	"saas-landing-api/internal/config"
	redisclient "saas-landing-api/pkg/redis"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// maxDiagnosticTables caps the table listing in the diagnostics payload.
const maxDiagnosticTables = 10

// SystemHandler serves the liveness, health, and diagnostics endpoints.
// Both db and rdb may be nil when the service runs degraded.
type SystemHandler struct {
	db  *gorm.DB
	rdb *redisclient.Client
	cfg *config.Config
	log *zap.Logger
}

// NewSystemHandler creates a new SystemHandler instance
func NewSystemHandler(db *gorm.DB, rdb *redisclient.Client, cfg *config.Config, log *zap.Logger) *SystemHandler {
	return &SystemHandler{
		db:  db,
		rdb: rdb,
		cfg: cfg,
		log: log,
	}
}

// DiagnosticsResponse reports store and environment status for GET /test
type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURLSet   bool     `json:"database_url_set"`
	DatabaseNameSet  bool     `json:"database_name_set"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
	Cache            string   `json:"cache"`
}

// Root handles GET /
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "SaaS Landing Backend Running",
	})
}

// Health handles GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": h.cfg.Logger.ServiceName,
	})
}

// Diagnostics handles GET /test. It always answers 200; the payload carries
// the degraded-mode details.
func (h *SystemHandler) Diagnostics(c *gin.Context) {
	resp := DiagnosticsResponse{
		Backend:          "running",
		Database:         "not_available",
		DatabaseURLSet:   h.cfg.DB.URL != "",
		DatabaseNameSet:  h.cfg.DB.Name != "",
		ConnectionStatus: "not_connected",
		Collections:      []string{},
		Cache:            "disabled",
	}

	if h.db != nil {
		if err := h.pingDatabase(c); err != nil {
			h.log.Warn("diagnostics database ping failed", zap.Error(err))
			resp.Database = "error: " + truncate(err.Error(), 60)
		} else {
			resp.Database = "available"
			resp.ConnectionStatus = "connected"
			resp.Collections = h.listTables()
		}
	}

	if h.rdb != nil {
		if err := h.rdb.Ping(c.Request.Context()); err != nil {
			resp.Cache = "not_available"
		} else {
			resp.Cache = "available"
		}
	}

	c.JSON(http.StatusOK, resp)
}

// pingDatabase checks connectivity on the underlying sql.DB.
func (h *SystemHandler) pingDatabase(c *gin.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(c.Request.Context())
}

// listTables returns up to maxDiagnosticTables table names.
func (h *SystemHandler) listTables() []string {
	tables, err := h.db.Migrator().GetTables()
	if err != nil {
		h.log.Warn("diagnostics table listing failed", zap.Error(err))
		return []string{}
	}
	if len(tables) > maxDiagnosticTables {
		tables = tables[:maxDiagnosticTables]
	}
	return tables
}

// truncate shortens s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
