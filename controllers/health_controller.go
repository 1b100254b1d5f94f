package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthController reports process uptime and hosted-store reachability.
type HealthController struct {
	db        *gorm.DB
	startedAt time.Time
}

// NewHealthController returns a health check over the (possibly nil) database
// handle.
func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db, startedAt: time.Now()}
}

// Check handles GET /health
func (ctl *HealthController) Check(c *gin.Context) {
	database := "unconfigured"
	if ctl.db != nil {
		database = "connected"
		sqlDB, err := ctl.db.DB()
		if err != nil || sqlDB.Ping() != nil {
			database = "unreachable"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(ctl.startedAt).Seconds(),
		"database":  database,
	})
}
