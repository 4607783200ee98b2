package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/blog-analyzer/internal/analyze"
	"github.com/dtnitsch/blog-analyzer/internal/batch"
	"github.com/dtnitsch/blog-analyzer/internal/history"
)

var version = "1.0.0"

func main() {
	app := &cli.App{
		Name:    "blog-analyzer",
		Usage:   "Blog content quality analyzer with a 5-category, 100-point scoring system",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:      "analyze",
				Usage:     "Analyze a single blog file",
				ArgsUsage: "<file>",
				Action:    analyze.AnalyzeAction,
				Flags: append(sharedFlags(),
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "json",
						Usage:   "Output format: json, yaml, markdown, table",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write the report to a file instead of stdout",
					},
					&cli.StringFlag{
						Name:    "category",
						Aliases: []string{"c"},
						Usage:   "Show detailed breakdown for a single category (content, seo, eeat, technical, ai)",
					},
					&cli.BoolFlag{
						Name:  "fix",
						Usage: "Output prioritized list of specific fixes",
					},
					&cli.StringFlag{
						Name:  "fields",
						Usage: "Comma-separated result fields to include in json/yaml output",
					},
				),
			},
			{
				Name:      "batch",
				Usage:     "Analyze all .md/.mdx/.html files in a directory",
				ArgsUsage: "<directory>",
				Action:    batch.BatchAction,
				Flags: append(sharedFlags(),
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "json",
						Usage:   "Output format: json, yaml, markdown, table",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write the report to a file instead of stdout",
					},
					&cli.StringFlag{
						Name:  "sort",
						Value: "score",
						Usage: "Sort order: score, name, words",
					},
					&cli.IntFlag{
						Name:  "workers",
						Value: 4,
						Usage: "Number of concurrent analysis workers",
					},
				),
			},
			{
				Name:   "history",
				Usage:  "List past analysis runs from the history database",
				Action: history.HistoryAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "db",
						Usage: "Path to the run-history SQLite database",
					},
					&cli.StringFlag{
						Name:  "file",
						Usage: "Only show runs for this file path",
					},
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "Maximum number of runs to show (0 = all)",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "table",
						Usage:   "Output format: table, json, yaml",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// sharedFlags are the analysis flags common to analyze and batch.
func sharedFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "quiet",
			Usage: "Only log errors",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "YAML config file extending tier domains and word-count benchmarks",
		},
		&cli.StringFlag{
			Name:  "db",
			Usage: "Record results in a run-history SQLite database at this path",
		},
		&cli.BoolFlag{
			Name:  "fast",
			Usage: "Skip syllable counting; use estimated readability metrics",
		},
		&cli.BoolFlag{
			Name:  "degraded-markup",
			Usage: "Use the regex markup parser instead of the HTML parser",
		},
		&cli.BoolFlag{
			Name:  "detect-language",
			Usage: "Run language detection on the document body",
		},
	}
}
