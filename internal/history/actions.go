// Package history lists past analysis runs from the SQLite store.
package history

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/blog-analyzer/pkg/db"
	"github.com/dtnitsch/blog-analyzer/pkg/render"
)

// HistoryAction prints recorded runs, newest first.
func HistoryAction(c *cli.Context) error {
	dbPath := c.String("db")
	if dbPath == "" {
		return fmt.Errorf("no database path provided via --db flag")
	}

	database, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runs, err := database.ListRuns(c.String("file"), c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs found")
		return nil
	}

	switch c.String("format") {
	case "json":
		output, err := render.JSON(runs)
		if err != nil {
			return err
		}
		fmt.Println(output)
	case "yaml":
		output, err := render.YAML(runs)
		if err != nil {
			return err
		}
		fmt.Print(output)
	default:
		printRunTable(runs)
	}

	return nil
}

func printRunTable(runs []db.Run) {
	fmt.Printf("%-6s %-20s %-6s %-15s %-8s %-12s %-40s\n",
		"ID", "Created", "Score", "Rating", "Words", "Type", "File")
	fmt.Println(strings.Repeat("-", 110))

	for _, r := range runs {
		fmt.Printf("%-6d %-20s %-6d %-15s %-8d %-12s %-40s\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.Total,
			r.Rating,
			r.WordCount,
			r.ContentType,
			r.File,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
}
