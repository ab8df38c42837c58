package main

import (
	"fmt"
	"os"

	"github.com/poly-layer/snarkVM/log"
	"github.com/poly-layer/snarkVM/service"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	log.Init(cfg.Log.Level, cfg.Log.Output)
	log.Infow("starting snarkvm-params", "datadir", cfg.Datadir, "verifierOnly", cfg.VerifierOnly)

	params, err := service.New(cfg.Datadir)
	if err != nil {
		log.Fatalf("failed to initialize parameter service: %v", err)
	}

	if cfg.VerifierOnly {
		err = params.PrefetchVerifierOnly(cfg.Timeout)
	} else {
		err = params.Prefetch(cfg.Timeout)
	}
	if err != nil {
		log.Fatalf("failed to download parameters: %v", err)
	}

	log.Infow("all parameters downloaded and verified", "datadir", cfg.Datadir)
}
