package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paintover/inpaint-proxy-api/pkg/client"
	"github.com/paintover/inpaint-proxy-api/pkg/config"
	"github.com/paintover/inpaint-proxy-api/pkg/models"
	"github.com/paintover/inpaint-proxy-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

type ProxyHandler struct {
	generator client.Generator
}

func NewProxyHandler(generator client.Generator) *ProxyHandler {
	return &ProxyHandler{
		generator: generator,
	}
}

// GetLiveness liveness probe
// (GET /)
func (p *ProxyHandler) GetLiveness(c *gin.Context) {
	c.JSON(http.StatusOK, models.LivenessResponse{
		Status:    "ok",
		Timestamp: utils.TimestampISO(),
	})
}

// ProcessImage inpaint predict
// (POST /api/process-image)
func (p *ProxyHandler) ProcessImage(c *gin.Context) {
	requestId := c.GetString(RequestIdKey)
	request := new(models.InpaintRequest)
	if err := getBindResult(c, request); err != nil {
		logrus.WithFields(logrus.Fields{"requestId": requestId}).Errorf("bind err=%s", err.Error())
		handleFailure(c, http.StatusBadRequest, config.MISSINGPARAMS, err.Error())
		return
	}
	if !request.Validate() {
		logrus.WithFields(logrus.Fields{"requestId": requestId}).Error("uploadedImage or prompt missing")
		handleFailure(c, http.StatusBadRequest, config.MISSINGPARAMS,
			"uploadedImage and prompt are required")
		return
	}
	request.ApplyDefaults()

	image, err := p.generator.GenerateImage(c.Request.Context(), request)
	if err != nil {
		logrus.WithFields(logrus.Fields{"requestId": requestId}).Errorf("generate err=%s", err.Error())
		handleFailure(c, http.StatusInternalServerError, err.Error(), err.Error())
		return
	}
	c.JSON(http.StatusOK, models.InpaintResponse{
		Success:        true,
		GeneratedImage: image,
	})
}

// RegisterHandlers attach routes to router
func RegisterHandlers(router *gin.Engine, h *ProxyHandler) {
	router.GET("/", h.GetLiveness)
	router.POST("/api/process-image", h.ProcessImage)
}
