package db

import (
	"fmt"
	"time"

	"github.com/dtnitsch/blog-analyzer/models"
)

// Run is one recorded analysis.
type Run struct {
	RunID               int64
	File                string
	Total               int
	Rating              string
	ContentQuality      int
	SEOOptimization     int
	EEATSignals         int
	TechnicalElements   int
	AICitationReadiness int
	WordCount           int
	ContentType         string
	CreatedAt           time.Time
}

// SaveRun appends one scored result to the history. Error-only results are
// skipped; they carry nothing worth tracking.
func (db *DB) SaveRun(res *models.AnalysisResult) (int64, error) {
	if res.Failed() || res.Score == nil {
		return 0, nil
	}

	cats := res.Score.Categories
	result, err := db.Exec(`
		INSERT INTO runs (
			file, total, rating,
			content_quality, seo_optimization, eeat_signals,
			technical_elements, ai_citation_readiness,
			word_count, content_type
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.File, res.Score.Total, res.Score.Rating,
		cats.ContentQuality, cats.SEOOptimization, cats.EEATSignals,
		cats.TechnicalElements, cats.AICitationReadiness,
		res.WordCount(), res.Score.ContentType,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save run: %w", err)
	}

	return result.LastInsertId()
}

// ListRuns returns the most recent runs, newest first. A non-empty file
// filters to that path; limit <= 0 means no limit.
func (db *DB) ListRuns(file string, limit int) ([]Run, error) {
	query := `
		SELECT run_id, file, total, rating,
		       content_quality, seo_optimization, eeat_signals,
		       technical_elements, ai_citation_readiness,
		       word_count, content_type, created_at
		FROM runs`
	var args []any
	if file != "" {
		query += " WHERE file = ?"
		args = append(args, file)
	}
	query += " ORDER BY run_id DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		err := rows.Scan(
			&r.RunID, &r.File, &r.Total, &r.Rating,
			&r.ContentQuality, &r.SEOOptimization, &r.EEATSignals,
			&r.TechnicalElements, &r.AICitationReadiness,
			&r.WordCount, &r.ContentType, &r.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
