package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/web/server"
	"go.uber.org/zap"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error")
	flag.Parse()

	logger, err := core.NewLogger(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Create and start web server
	webServer := server.NewServer(*port, logger)

	logger.Info("Ray Caster Web Server", zap.String("url", fmt.Sprintf("http://localhost:%d/api/scenes", *port)))

	if err := webServer.Start(); err != nil {
		logger.Error("Error starting server", zap.Error(err))
		os.Exit(1)
	}
}
