package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/paintover/inpaint-proxy-api/pkg/config"
	"github.com/paintover/inpaint-proxy-api/pkg/handler"
	"github.com/paintover/inpaint-proxy-api/pkg/models"
	"github.com/sirupsen/logrus"
)

// RequestIdMiddleware tag every request with an id for log correlation
func RequestIdMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := uuid.NewString()
		c.Set(handler.RequestIdKey, requestId)
		c.Writer.Header().Set("X-Request-Id", requestId)
		c.Next()
	}
}

// BodySizeLimit cap the request body, embedded base64 images are large
func BodySizeLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}

// recoveryHandler catch-all for failures escaping the route handler
func recoveryHandler(c *gin.Context, err interface{}) {
	logrus.Errorf("panic recovered: %v", err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, models.InpaintResponse{
		Success: false,
		Error:   config.INTERNALERROR,
	})
}
