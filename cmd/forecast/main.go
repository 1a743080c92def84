package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"stockforecast/internal/config"
	"stockforecast/internal/forecast"
	"stockforecast/internal/httpx"
)

// selfCheck is swapped in tests.
var selfCheck = forecast.SelfCheck

func main() {
	_ = godotenv.Load()
	os.Exit(realMain(os.Args[1:], os.Stdout, os.Stderr))
}

// realMain runs the CLI and returns the process exit code: 0 on success,
// 1 when the config or the lookup fails, 2 on a usage error.
func realMain(args []string, stdout, stderr io.Writer) int {
	logger := log.New()
	logger.SetOutput(stderr)
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if len(args) > 1 {
		fmt.Fprintln(stderr, "usage: forecast [SYMBOL]")
		return 2
	}

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		logger.Errorf("config: %v", err)
		return 1
	}
	setLevel(logger, cfg.Log.Level)

	ctx := context.Background()

	symbol := cfg.Forecast.DefaultSymbol
	if len(args) == 1 {
		symbol = args[0]
	} else {
		logger.Info("running self-check")
		if err := selfCheck(ctx); err != nil {
			// Reported, not fatal: the default lookup still runs.
			logger.Warnf("self-check failed: %v", err)
		} else {
			logger.Info("self-check passed")
		}
	}

	fmt.Fprintf(stdout, "Getting %s stock forecast\n", strings.ToUpper(symbol))

	quote, err := run(ctx, cfg, symbol)
	if err != nil {
		logger.WithFields(log.Fields{
			"symbol": strings.ToUpper(symbol),
			"kind":   forecast.KindOf(err).String(),
		}).Error(err)
		return 1
	}

	b, err := json.MarshalIndent(quote, "", "  ")
	if err != nil {
		logger.Errorf("encode quote: %v", err)
		return 1
	}
	fmt.Fprintln(stdout, string(b))
	return 0
}

func run(ctx context.Context, cfg config.Config, symbol string) (forecast.PriceQuote, error) {
	httpClient := httpx.New(time.Duration(cfg.HTTP.RequestTimeoutSec) * time.Second)
	httpClient.UserAgent = cfg.HTTP.UserAgent

	client := forecast.NewClient(
		forecast.WithHTTPClient(httpClient),
		forecast.WithBaseURL(cfg.Forecast.BaseURL),
	)
	scraper := forecast.NewScraper(client, forecast.Matcher{ScanAll: cfg.Forecast.ScanAllFragments})
	return scraper.Lookup(ctx, symbol)
}

func setLevel(logger *log.Logger, level string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.Warnf("unknown log level %q, using info", level)
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
}
