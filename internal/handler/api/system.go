package api

import (
	"net/http"

	"ecommerce-backend/internal/infra/db"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SystemHandler struct {
	pool *pgxpool.Pool
}

func NewSystemHandler(pool *pgxpool.Pool) *SystemHandler {
	return &SystemHandler{pool: pool}
}

// @Summary Database health check
// @Description Check database connectivity
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /db/ping [get]
func (h *SystemHandler) DBPing(c *gin.Context) {
	if err := db.Ping(c.Request.Context(), h.pool); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"error":  "database unreachable",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
