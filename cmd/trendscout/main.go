// Trendscout dev harness: runs the trend intelligence pipeline once over a
// raw-signal fixture and prints the resulting report as JSON. The pipeline
// itself is a library; this binary exists for local runs and debugging,
// not as a product surface.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ternarybob/trendscout/internal/common"
	"github.com/ternarybob/trendscout/internal/models"
	"github.com/ternarybob/trendscout/internal/pipeline"
)

var (
	configPath  = flag.String("config", "", "Configuration file path (default: auto-discover trendscout.toml)")
	inputPath   = flag.String("input", "", "Raw signal batch fixture (JSON array of raw video signals)")
	keyword     = flag.String("keyword", "ai tools", "Focus keyword (2-100 chars)")
	region      = flag.String("region", "US", "2-letter region code")
	category    = flag.String("category", "28", "Platform category id")
	daysBack    = flag.Int("days", 7, "Lookback window in days (1-30)")
	agents      = flag.String("agents", "algorithmic-eye,creator-whisperer", "Comma-separated persona ids")
	showVersion = flag.Bool("version", false, "Print version information")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("Trendscout version %s\n", common.GetVersion())
		os.Exit(0)
	}

	// Auto-discover config file if not specified
	path := *configPath
	if path == "" {
		if _, err := os.Stat("trendscout.toml"); err == nil {
			path = "trendscout.toml"
		}
	}

	var (
		config *common.Config
		err    error
	)
	if path != "" {
		config, err = common.LoadFromFile(path)
	} else {
		config = common.NewDefaultConfig()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := common.InitLogger(config)
	common.PrintBanner(common.GetVersion())

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: trendscout -input <batch.json> [-keyword K] [-region R] [-category C] [-days N] [-agents a,b]")
		os.Exit(1)
	}

	data, err := os.ReadFile(*inputPath)
	if err != nil {
		logger.Error().Err(err).Str("path", *inputPath).Msg("Failed to read signal batch")
		os.Exit(1)
	}

	var batch []models.RawVideoSignal
	if err := json.Unmarshal(data, &batch); err != nil {
		logger.Error().Err(err).Str("path", *inputPath).Msg("Failed to parse signal batch")
		os.Exit(1)
	}

	req := models.RequestContext{
		Keyword:    *keyword,
		Region:     strings.ToUpper(*region),
		CategoryID: *category,
		DaysBack:   *daysBack,
		Agents:     splitAgents(*agents),
	}

	report, err := pipeline.New(config, logger).Run(context.Background(), req, batch)
	if err != nil {
		logger.Error().Err(err).Msg("Pipeline run failed")
		os.Exit(1)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		logger.Error().Err(err).Msg("Failed to encode report")
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func splitAgents(list string) []string {
	parts := strings.Split(list, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}
