package postgres

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	"pressroom/internal/repository"
)

// articleQueryBuilder builds WHERE and ORDER BY clauses for article listings.
// The clause is shared between the COUNT and SELECT queries so both always
// agree on the result set. PostgreSQL-specific: ILIKE, $N placeholders, and
// array operators on the categories column.
type articleQueryBuilder struct{}

// buildWhereClause renders q's filters into a WHERE clause and its arguments.
// Returns an empty clause when no filter is set.
func (articleQueryBuilder) buildWhereClause(q repository.ArticleQuery) (clause string, args []interface{}) {
	var conditions []string
	paramIndex := 1

	if len(q.Statuses) == 1 {
		conditions = append(conditions, fmt.Sprintf("status = $%d", paramIndex))
		args = append(args, string(q.Statuses[0]))
		paramIndex++
	} else if len(q.Statuses) > 1 {
		statuses := make([]string, len(q.Statuses))
		for i, s := range q.Statuses {
			statuses[i] = string(s)
		}
		conditions = append(conditions, fmt.Sprintf("status = ANY($%d)", paramIndex))
		args = append(args, pq.Array(statuses))
		paramIndex++
	}

	if q.AuthorID != "" {
		conditions = append(conditions, fmt.Sprintf("author_id = $%d", paramIndex))
		args = append(args, q.AuthorID)
		paramIndex++
	}

	if q.Search != "" {
		// Case-insensitive substring over title, short description, and
		// the category tags. One placeholder reused three times.
		pattern := "%" + escapeLike(q.Search) + "%"
		conditions = append(conditions, fmt.Sprintf(
			"(title ILIKE $%d OR short_description ILIKE $%d OR EXISTS (SELECT 1 FROM unnest(categories) AS c WHERE c ILIKE $%d))",
			paramIndex, paramIndex, paramIndex))
		args = append(args, pattern)
		paramIndex++
	}

	if q.Category != "" {
		conditions = append(conditions, fmt.Sprintf("$%d = ANY(categories)", paramIndex))
		args = append(args, q.Category)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// orderBy maps the query order onto a sort clause. Published ordering pushes
// never-published rows last so the public feed stays stable.
func (articleQueryBuilder) orderBy(order repository.Order) string {
	if order == repository.OrderPublishedDesc {
		return "ORDER BY published_at DESC NULLS LAST, id"
	}
	return "ORDER BY created_at DESC, id"
}

// escapeLike neutralizes LIKE metacharacters in user-supplied search input.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
