package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/paintover/inpaint-proxy-api/pkg/client"
	"github.com/paintover/inpaint-proxy-api/pkg/config"
	"github.com/paintover/inpaint-proxy-api/pkg/handler"
	"github.com/sirupsen/logrus"
)

type ProxyServer struct {
	srv *http.Server
}

func NewProxyServer(port string, mode string) (*ProxyServer, error) {
	// the generator is constructed once here and injected, the underlying
	// connection is still established lazily on the first request
	generator := client.NewInpaintGenerator(config.ConfigGlobal.SdEndpoint)
	proxyHandler := handler.NewProxyHandler(generator)

	// init router
	if mode == gin.DebugMode {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(CORSMiddleware())
	router.Use(gin.Logger(), gin.CustomRecovery(recoveryHandler))
	router.Use(RequestIdMiddleware())
	router.Use(BodySizeLimit(config.ConfigGlobal.MaxBodySize))
	handler.RegisterHandlers(router, proxyHandler)

	return &ProxyServer{
		srv: &http.Server{
			Addr:    net.JoinHostPort("0.0.0.0", port),
			Handler: router,
		},
	}, nil
}

// Start proxy server
func (p *ProxyServer) Start() error {
	if err := p.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logrus.Fatalf("listen: %s\n", err)
		return err
	}
	return nil
}

// Close shutdown proxy server, timeout=shutdownTimeout
func (p *ProxyServer) Close(shutdownTimeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := p.srv.Shutdown(ctx); err != nil {
		logrus.Fatal("Server forced to shutdown: ", err)
		return err
	}
	return nil
}

func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
	})
}
