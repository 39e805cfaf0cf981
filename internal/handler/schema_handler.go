package handler

import (
	"net/http"

	"wedding-rsvp/internal/database"
	"wedding-rsvp/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// SchemaHandler exposes the idempotent schema initializer as an
// operator endpoint. Normal startup already runs the initializer, so
// this is a recovery path, not part of request handling.
type SchemaHandler struct {
	pool *pgxpool.Pool
}

func NewSchemaHandler(pool *pgxpool.Pool) *SchemaHandler {
	return &SchemaHandler{pool: pool}
}

func (h *SchemaHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/init-db", h.InitDB)
}

func (h *SchemaHandler) InitDB(c *gin.Context) {
	if err := database.EnsureSchema(c, h.pool); err != nil {
		logger.WithComponent("handler").Error("Failed to initialize database", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to initialize database",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Database initialized successfully"})
}
