package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Runs table: one row per scored analysis
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    file TEXT NOT NULL,
    total INTEGER NOT NULL,
    rating TEXT NOT NULL,
    content_quality INTEGER NOT NULL,
    seo_optimization INTEGER NOT NULL,
    eeat_signals INTEGER NOT NULL,
    technical_elements INTEGER NOT NULL,
    ai_citation_readiness INTEGER NOT NULL,
    word_count INTEGER NOT NULL,
    content_type TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_runs_file ON runs(file);
CREATE INDEX IF NOT EXISTS idx_runs_total ON runs(total);
CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
`
