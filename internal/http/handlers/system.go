package handlers

import (
	"net/http"

	intconfig "fleetops/internal/config"
	"fleetops/utils"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "fleet billing backend running"})
}

// DBCheck verifies connectivity, reconnecting if the pool was never opened,
// and reports which optional tables exist.
func DBCheck(env intconfig.Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := intconfig.EnsureDB(env); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database unreachable: " + err.Error()})
			return
		}
		dbCheckReport(c)
	}
}

func dbCheckReport(c *gin.Context) {
	var count int
	if err := intconfig.DB.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database query failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "database connection OK",
		"users_in_db": count,
		"tables": gin.H{
			"vehicles":     utils.HasTable(intconfig.DB, "vehicles"),
			"rentals":      utils.HasTable(intconfig.DB, "rentals"),
			"invoices":     utils.HasTable(intconfig.DB, "invoices"),
			"transactions": utils.HasTable(intconfig.DB, "transactions"),
		},
		// Legacy dumps predate the remaining_amount column.
		"invoices_schema_current": utils.HasColumn(intconfig.DB, "invoices", "remaining_amount"),
	})
}
