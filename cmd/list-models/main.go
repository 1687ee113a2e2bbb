// Command list-models prints the Gemini models visible to GEMINI_API_KEY,
// one name per line. Useful for checking a key and picking GEMINI_MODEL.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/stemsi/aptify-backend/internal/config"
	"github.com/stemsi/aptify-backend/internal/generator"
	"github.com/stemsi/aptify-backend/internal/logger"
)

func main() {
	timeout := flag.Duration("timeout", 30*time.Second, "request timeout")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	genCfg := cfg.Generator()
	genCfg.Timeout = *timeout

	ctx := context.Background()
	fetcher, err := generator.NewFetcher(ctx, genCfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create Gemini client")
	}

	names, err := fetcher.ListModels(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list models")
		os.Exit(1)
	}

	for _, name := range names {
		fmt.Println(name)
	}
}
