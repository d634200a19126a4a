package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/paintover/inpaint-proxy-api/pkg/models"
)

const (
	RequestIdKey = "requestId"
)

func getBindResult(c *gin.Context, in interface{}) error {
	if err := binding.JSON.Bind(c.Request, in); err != nil {
		return err
	}
	return nil
}

func handleFailure(c *gin.Context, code int, message string, details interface{}) {
	c.JSON(code, models.InpaintResponse{
		Success: false,
		Error:   message,
		Details: details,
	})
}
