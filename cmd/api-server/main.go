package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chainsafe/lime-api/pkg/app"
	"github.com/chainsafe/lime-api/pkg/app/api"
	"github.com/chainsafe/lime-api/pkg/config"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file (optional, env overrides apply)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	var runner app.Runner = api.NewServer(cfg)
	if err := runner.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "API server stopped with error: %v\n", err)
		os.Exit(1)
	}
}
