package api

import (
	"context"
	"fmt"
	"fundreport/internal/logger"
	"fundreport/internal/service"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApiHandler struct {
	AggregationService service.AggregationService
}

func (m ApiHandler) StartApi(port int) error {
	router := m.Router()
	return router.Run(fmt.Sprintf(":%d", port))
}

func (m ApiHandler) Router() *gin.Engine {
	log := logger.New()

	router := gin.Default()
	router.Use(cors.Default())
	router.Use(logRequestMiddleware(log))

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to fundreport"})
	})
	router.POST("/aggregate", m.aggregate)

	return router
}

func returnErrorJson(err error, c *gin.Context) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// logRequestMiddleware tags each request with a run id, threads the
// logger into the request context for downstream services, and logs
// route/status/duration once the handler finishes.
func logRequestMiddleware(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		runID := uuid.New()
		start := time.Now().UTC()

		reqCtx := context.WithValue(ctx.Request.Context(), logger.ContextKey, log)
		ctx.Request = ctx.Request.WithContext(reqCtx)

		ctx.Next()

		log.Infow("handled request",
			"runID", runID.String(),
			"method", ctx.Request.Method,
			"route", ctx.Request.URL.Path,
			"status", ctx.Writer.Status(),
			"durationMs", time.Since(start).Milliseconds(),
		)
	}
}
