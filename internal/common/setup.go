package common

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/blog-analyzer/models"
	"github.com/dtnitsch/blog-analyzer/pkg/analyzer"
	"github.com/dtnitsch/blog-analyzer/pkg/vocab"
)

// NewLogger builds the stderr JSON logger shared by all commands. Stdout is
// reserved for report output so it stays pipeable.
func NewLogger(quiet bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if quiet {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// BuildAnalyzer assembles an Analyzer from the shared command flags,
// applying the optional YAML config file to the vocabulary tables.
func BuildAnalyzer(c *cli.Context) (*analyzer.Analyzer, error) {
	cfg, err := models.LoadAnalyzerConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return analyzer.New(analyzer.Options{
		FastReadability: c.Bool("fast"),
		DegradedMarkup:  c.Bool("degraded-markup"),
		Tables:          vocab.TablesFromConfig(cfg),
		DetectLanguage:  c.Bool("detect-language"),
	}), nil
}

// WriteOutput sends a rendered report to --output when set, stdout otherwise.
func WriteOutput(c *cli.Context, output string) error {
	outPath := c.String("output")
	if outPath == "" {
		fmt.Println(output)
		return nil
	}
	if err := os.WriteFile(outPath, []byte(output), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Report saved to %s\n", outPath)
	return nil
}
