package postgres

import (
	"context"
	"fmt"
	"time"

	"pressroom/internal/repository"
)

// AnalyticsRepo computes the dashboard aggregates directly in SQL so the
// application never loads full article sets into memory.
type AnalyticsRepo struct {
	db DBTX
}

func NewAnalyticsRepo(db DBTX) repository.AnalyticsRepository {
	return &AnalyticsRepo{db: db}
}

func (repo *AnalyticsRepo) CountArticlesCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	const query = `SELECT COUNT(*) FROM articles WHERE created_at >= $1`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountArticlesCreatedSince: %w", err)
	}
	return count, nil
}

func (repo *AnalyticsRepo) CountArticlesPublishedSince(ctx context.Context, since time.Time) (int64, error) {
	const query = `
SELECT COUNT(*)
FROM articles
WHERE status = 'published'
  AND published_at >= $1`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountArticlesPublishedSince: %w", err)
	}
	return count, nil
}

func (repo *AnalyticsRepo) TopAuthors(ctx context.Context, since time.Time, limit int) ([]repository.AuthorRank, error) {
	const query = `
SELECT a.author_id, u.username, COUNT(*) AS published_count
FROM articles a
INNER JOIN users u ON a.author_id = u.id
WHERE a.status = 'published'
  AND a.published_at >= $1
GROUP BY a.author_id, u.username
ORDER BY published_count DESC, a.author_id
LIMIT $2`
	rows, err := repo.db.QueryContext(ctx, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("TopAuthors: %w", err)
	}
	defer func() { _ = rows.Close() }()

	ranks := make([]repository.AuthorRank, 0, limit)
	for rows.Next() {
		var rank repository.AuthorRank
		if err := rows.Scan(&rank.AuthorID, &rank.Username, &rank.PublishedCount); err != nil {
			return nil, fmt.Errorf("TopAuthors: Scan: %w", err)
		}
		ranks = append(ranks, rank)
	}
	return ranks, rows.Err()
}

func (repo *AnalyticsRepo) TopCategories(ctx context.Context, since time.Time, limit int) ([]repository.CategoryRank, error) {
	const query = `
SELECT c.category, COUNT(*) AS published_count
FROM articles a, unnest(a.categories) AS c(category)
WHERE a.status = 'published'
  AND a.published_at >= $1
GROUP BY c.category
ORDER BY published_count DESC, c.category
LIMIT $2`
	rows, err := repo.db.QueryContext(ctx, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("TopCategories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	ranks := make([]repository.CategoryRank, 0, limit)
	for rows.Next() {
		var rank repository.CategoryRank
		if err := rows.Scan(&rank.Category, &rank.PublishedCount); err != nil {
			return nil, fmt.Errorf("TopCategories: Scan: %w", err)
		}
		ranks = append(ranks, rank)
	}
	return ranks, rows.Err()
}
