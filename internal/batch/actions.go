// Package batch analyzes every supported document in a directory with a
// worker pool and renders the sorted result set.
package batch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/blog-analyzer/internal/common"
	"github.com/dtnitsch/blog-analyzer/models"
	"github.com/dtnitsch/blog-analyzer/pkg/analyzer"
	"github.com/dtnitsch/blog-analyzer/pkg/db"
	"github.com/dtnitsch/blog-analyzer/pkg/render"
)

// Job defines a single document for a worker to analyze.
type Job struct {
	Path string
}

var supportedExtensions = map[string]bool{
	".md":   true,
	".mdx":  true,
	".html": true,
}

// BatchAction analyzes all .md/.mdx/.html files in a directory.
func BatchAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	dir := c.Args().First()
	if dir == "" {
		return fmt.Errorf("no input directory provided")
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("path not found or not a directory: %s", dir)
	}

	a, err := common.BuildAnalyzer(c)
	if err != nil {
		return err
	}

	paths, err := collectFiles(dir)
	if err != nil {
		return fmt.Errorf("failed to scan directory: %w", err)
	}
	logger.Info("Starting batch analysis", "dir", dir, "files", len(paths))

	workers := c.Int("workers")
	if workers < 1 {
		workers = 4
	}
	results := runPool(logger, a, paths, workers)

	sortResults(results, c.String("sort"))
	batch := &models.BatchResult{Batch: true, Count: len(results), Results: results}

	if dbPath := c.String("db"); dbPath != "" {
		if err := saveHistory(logger, dbPath, results); err != nil {
			logger.Warn("Failed to record batch history", "error", err)
		}
	}

	switch c.String("format") {
	case "markdown":
		var parts []string
		for _, r := range results {
			parts = append(parts, render.Markdown(r), "---\n")
		}
		fmt.Println(strings.Join(parts, "\n"))
	case "table":
		for _, r := range results {
			fmt.Println(render.Table(r))
		}
		fmt.Printf("\nTotal: %d files\n", batch.Count)
	case "yaml":
		output, err := render.YAML(batch)
		if err != nil {
			return err
		}
		if err := common.WriteOutput(c, output); err != nil {
			return err
		}
	default:
		output, err := render.JSON(batch)
		if err != nil {
			return err
		}
		if err := common.WriteOutput(c, output); err != nil {
			return err
		}
	}

	logger.Info("Batch analysis complete", "files", batch.Count)
	return nil
}

// collectFiles lists supported documents directly inside dir, sorted by name
// so job order is deterministic.
func collectFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if supportedExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// runPool fans the paths out to a fixed worker pool and gathers every result.
func runPool(logger *slog.Logger, a *analyzer.Analyzer, paths []string, workers int) []*models.AnalysisResult {
	jobs := make(chan Job, len(paths))
	resultsCh := make(chan *models.AnalysisResult, len(paths))

	var wg sync.WaitGroup
	for i := 1; i <= workers; i++ {
		wg.Add(1)
		go worker(i, logger, a, &wg, jobs, resultsCh)
	}

	for _, p := range paths {
		jobs <- Job{Path: p}
	}
	close(jobs)
	wg.Wait()
	close(resultsCh)

	results := make([]*models.AnalysisResult, 0, len(paths))
	for r := range resultsCh {
		results = append(results, r)
	}
	return results
}

// worker processes jobs from the jobs channel and sends results to the
// results channel. Per-file failures land in the result record so one bad
// file never aborts the batch.
func worker(id int, logger *slog.Logger, a *analyzer.Analyzer, wg *sync.WaitGroup, jobs <-chan Job, results chan<- *models.AnalysisResult) {
	defer wg.Done()
	for job := range jobs {
		logger.Info("Worker started job", "worker_id", id, "file", job.Path)
		result := a.AnalyzeFile(job.Path)
		if result.Failed() {
			logger.Error("Worker analysis failed", "worker_id", id, "file", job.Path,
				"error", result.Error, "error_type", result.ErrorType)
		} else {
			logger.Info("Worker finished job", "worker_id", id, "file", job.Path,
				"total", result.Score.Total)
		}
		results <- result
	}
}

// sortResults orders a batch: score and words descending, name ascending.
func sortResults(results []*models.AnalysisResult, key string) {
	switch key {
	case "name":
		sort.Slice(results, func(i, j int) bool {
			return results[i].File < results[j].File
		})
	case "words":
		sort.Slice(results, func(i, j int) bool {
			return results[i].WordCount() > results[j].WordCount()
		})
	default:
		sort.Slice(results, func(i, j int) bool {
			return results[i].TotalScore() > results[j].TotalScore()
		})
	}
}

func saveHistory(logger *slog.Logger, dbPath string, results []*models.AnalysisResult) error {
	database, err := db.Open(dbPath)
	if err != nil {
		return err
	}
	defer database.Close()

	for _, r := range results {
		if _, err := database.SaveRun(r); err != nil {
			logger.Warn("Failed to record run", "file", r.File, "error", err)
		}
	}
	return nil
}
