package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"pressroom/internal/domain/entity"
	"pressroom/internal/repository"
)

const articleColumns = `id, author_id, cover_image, title, short_description, full_description, categories, status, reject_reason, published_at, created_at, updated_at`

type ArticleRepo struct {
	db           DBTX
	queryBuilder articleQueryBuilder
}

func NewArticleRepo(db DBTX) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

func scanArticle(row interface{ Scan(...interface{}) error }) (*entity.Article, error) {
	var article entity.Article
	var categories pq.StringArray
	var status string
	err := row.Scan(&article.ID, &article.AuthorID, &article.CoverImage,
		&article.Title, &article.ShortDescription, &article.FullDescription,
		&categories, &status, &article.RejectReason,
		&article.PublishedAt, &article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		return nil, err
	}
	article.Categories = []string(categories)
	article.Status = entity.Status(status)
	return &article, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id string) (*entity.Article, error) {
	query := fmt.Sprintf(`
SELECT %s
FROM articles
WHERE id = $1
LIMIT 1`, articleColumns)
	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return article, nil
}

func (repo *ArticleRepo) List(ctx context.Context, q repository.ArticleQuery) ([]*entity.Article, error) {
	whereClause, args := repo.queryBuilder.buildWhereClause(q)

	paramIndex := len(args) + 1
	args = append(args, q.Limit, q.Offset)

	query := fmt.Sprintf(`
SELECT %s
FROM articles
%s
%s
LIMIT $%d OFFSET $%d`, articleColumns, whereClause, repo.queryBuilder.orderBy(q.Order), paramIndex, paramIndex+1)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, q.Limit)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

func (repo *ArticleRepo) Count(ctx context.Context, q repository.ArticleQuery) (int64, error) {
	whereClause, args := repo.queryBuilder.buildWhereClause(q)
	query := "SELECT COUNT(*) FROM articles " + whereClause

	var count int64
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO articles
       (id, author_id, cover_image, title, short_description, full_description, categories, status, reject_reason, published_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := repo.db.ExecContext(ctx, query,
		article.ID, article.AuthorID, article.CoverImage, article.Title,
		article.ShortDescription, article.FullDescription,
		pq.Array(article.Categories), string(article.Status),
		article.RejectReason, article.PublishedAt,
		article.CreatedAt, article.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	const query = `
UPDATE articles SET
       cover_image       = $1,
       title             = $2,
       short_description = $3,
       full_description  = $4,
       categories        = $5,
       status            = $6,
       reject_reason     = $7,
       published_at      = $8,
       updated_at        = $9
WHERE id = $10`
	res, err := repo.db.ExecContext(ctx, query,
		article.CoverImage, article.Title, article.ShortDescription,
		article.FullDescription, pq.Array(article.Categories),
		string(article.Status), article.RejectReason,
		article.PublishedAt, article.UpdatedAt, article.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM articles WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", entity.ErrNotFound)
	}
	return nil
}
