package db

import "database/sql"

// MigrateUp creates the schema. Every statement is idempotent so the function
// can run on each startup.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS admins (
    id            TEXT PRIMARY KEY,
    username      TEXT NOT NULL UNIQUE,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS users (
    id            TEXT PRIMARY KEY,
    username      TEXT NOT NULL UNIQUE,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    id                TEXT PRIMARY KEY,
    author_id         TEXT NOT NULL REFERENCES users(id),
    cover_image       TEXT NOT NULL DEFAULT '',
    title             TEXT NOT NULL,
    short_description TEXT NOT NULL DEFAULT '',
    full_description  TEXT NOT NULL DEFAULT '',
    categories        TEXT[] NOT NULL DEFAULT '{}',
    status            VARCHAR(16) NOT NULL DEFAULT 'pending',
    reject_reason     TEXT NOT NULL DEFAULT '',
    published_at      TIMESTAMPTZ,
    created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		// status filter used by every moderation listing
		`CREATE INDEX IF NOT EXISTS idx_articles_status ON articles(status)`,
		// owner-scoped listings
		`CREATE INDEX IF NOT EXISTS idx_articles_author_id ON articles(author_id)`,
		// public feed ordering
		`CREATE INDEX IF NOT EXISTS idx_articles_published_at ON articles(published_at DESC)`,
		// admin and owner view ordering
		`CREATE INDEX IF NOT EXISTS idx_articles_created_at ON articles(created_at DESC)`,
		// exact category membership via = ANY(categories)
		`CREATE INDEX IF NOT EXISTS idx_articles_categories ON articles USING gin(categories)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	// pg_trgm speeds up the ILIKE search; skip silently when the extension
	// cannot be installed (no superuser on managed databases).
	_, _ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pg_trgm`)
	searchIndexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_articles_title_gin ON articles USING gin(title gin_trgm_ops)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_short_desc_gin ON articles USING gin(short_description gin_trgm_ops)`,
	}
	for _, idx := range searchIndexes {
		_, _ = db.Exec(idx)
	}

	// Lifecycle enum guard. Added separately because the CHECK list may
	// change between releases.
	_, _ = db.Exec(`
DO $$
BEGIN
    IF NOT EXISTS (
        SELECT 1 FROM pg_constraint
        WHERE conname = 'chk_article_status'
    ) THEN
        ALTER TABLE articles ADD CONSTRAINT chk_article_status
        CHECK (status IN ('pending', 'published', 'rejected'));
    END IF;
END $$;
`)

	return nil
}

// MigrateDown removes the schema in reverse dependency order.
// Use with caution: this deletes all data.
func MigrateDown(db *sql.DB) error {
	dropStatements := []string{
		`DROP TABLE IF EXISTS articles CASCADE`,
		`DROP TABLE IF EXISTS users CASCADE`,
		`DROP TABLE IF EXISTS admins CASCADE`,
	}
	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
