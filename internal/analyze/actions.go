package analyze

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/blog-analyzer/internal/common"
	"github.com/dtnitsch/blog-analyzer/pkg/db"
	"github.com/dtnitsch/blog-analyzer/pkg/render"
)

// AnalyzeAction scores a single document and renders it in the requested
// output format.
func AnalyzeAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("no input file provided")
	}

	a, err := common.BuildAnalyzer(c)
	if err != nil {
		return err
	}

	logger.Info("Analyzing file", "file", path)
	result := a.AnalyzeFile(path)
	if result.Failed() {
		logger.Error("Analysis failed", "file", path, "error", result.Error, "error_type", result.ErrorType)
	} else {
		logger.Info("Analysis complete", "file", path,
			"total", result.Score.Total, "rating", result.Score.Rating)
	}

	if dbPath := c.String("db"); dbPath != "" && !result.Failed() {
		database, err := db.Open(dbPath)
		if err != nil {
			logger.Warn("Failed to open history database", "path", dbPath, "error", err)
		} else {
			defer database.Close()
			if _, err := database.SaveRun(result); err != nil {
				logger.Warn("Failed to record run", "file", path, "error", err)
			}
		}
	}

	// Category and fix modes short-circuit the format selection.
	if category := c.String("category"); category != "" {
		fmt.Println(render.CategoryDetail(result, category))
		return exitCode(result)
	}
	if c.Bool("fix") {
		fmt.Println(render.FixList(result))
		return exitCode(result)
	}

	var output string
	switch c.String("format") {
	case "markdown":
		output = render.Markdown(result)
	case "table":
		output = render.Table(result)
	case "yaml":
		output, err = render.YAML(common.FilterResultFields(result, c.String("fields")))
	default:
		output, err = render.JSON(common.FilterResultFields(result, c.String("fields")))
	}
	if err != nil {
		return err
	}

	if err := common.WriteOutput(c, output); err != nil {
		return err
	}
	return exitCode(result)
}

// exitCode keeps the rendered error visible but still fails the process for
// scripting callers.
func exitCode(result interface{ Failed() bool }) error {
	if result.Failed() {
		return cli.Exit("", 1)
	}
	return nil
}
