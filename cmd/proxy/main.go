package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/paintover/inpaint-proxy-api/pkg/config"
	"github.com/paintover/inpaint-proxy-api/pkg/server"
	"github.com/sirupsen/logrus"
)

const (
	shutdownTimeout = 5 * time.Second // 5s
)

func handleSignal() {
	// Wait for interrupt signal to gracefully shutdown the server with
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")
}

func logInit(mode string) {
	switch mode {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
		// include function and file
		logrus.SetReportCaller(true)
	case "dev":
		logrus.SetLevel(logrus.InfoLevel)
	default:
		logrus.SetLevel(logrus.WarnLevel)
	}
}

func main() {
	mode := flag.String("mode", "dev", "service work mode debug|dev|product")
	flag.Parse()
	// init log
	logInit(*mode)
	logrus.Info("proxy start")

	// init config, PORT from env
	_ = godotenv.Load()
	if err := config.InitConfig(); err != nil {
		logrus.Fatal(err.Error())
	}

	// init server and start
	proxy, err := server.NewProxyServer(config.ConfigGlobal.Port, *mode)
	if err != nil {
		logrus.Fatal("proxy server init fail")
	}
	go proxy.Start()

	// wait shutdown signal
	handleSignal()

	if err := proxy.Close(shutdownTimeout); err != nil {
		logrus.Fatal("Shutdown server fail")
	}

	logrus.Info("Server exited")
}
