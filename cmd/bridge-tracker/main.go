package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chainsafe/bridge-tracker/pkg/app"
	"github.com/chainsafe/bridge-tracker/pkg/app/tracker"
	"github.com/chainsafe/bridge-tracker/pkg/config"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	var runner app.Runner = tracker.NewServer(cfg)
	if err := runner.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Bridge tracker stopped: %v\n", err)
		os.Exit(1)
	}
}
