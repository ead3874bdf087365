package article

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pressroom/internal/common/pagination"
	"pressroom/internal/domain/entity"
	"pressroom/internal/observability/metrics"
	"pressroom/internal/repository"
)

// CreateInput represents the input parameters for submitting a new article.
// Status is not accepted from the caller: every new article starts pending.
type CreateInput struct {
	CoverImage       string
	Title            string
	ShortDescription string
	FullDescription  string
	Categories       []string
}

// EditInput represents the input parameters for editing an existing article.
// Fields with nil values will not be updated. Categories replaces the whole
// tag set when non-nil.
type EditInput struct {
	CoverImage       *string
	Title            *string
	ShortDescription *string
	FullDescription  *string
	Categories       []string
}

// Query carries listing parameters: pagination, an optional status filter
// (raw string; values outside the lifecycle enum are silently ignored), a
// case-insensitive search term, and an exact category filter.
type Query struct {
	Pagination pagination.Params
	Status     string
	Search     string
	Category   string
}

// PaginatedResult represents the result of a paginated listing.
type PaginatedResult struct {
	Data       []*entity.Article
	Pagination pagination.Metadata
}

// Service provides the article lifecycle use cases. It enforces ownership and
// transition rules and delegates persistence to the repository.
type Service struct {
	Repo repository.ArticleRepository
}

// Create submits a new article owned by the given user. The status is forced
// to pending regardless of input.
func (s *Service) Create(ctx context.Context, user *entity.User, in CreateInput) (*entity.Article, error) {
	if user == nil {
		return nil, entity.ErrForbidden
	}
	if err := entity.ValidateTitle(in.Title); err != nil {
		return nil, err
	}
	if err := entity.ValidateShortDescription(in.ShortDescription); err != nil {
		return nil, err
	}
	categories, err := entity.NormalizeCategories(in.Categories)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	art := &entity.Article{
		ID:               uuid.NewString(),
		AuthorID:         user.ID,
		CoverImage:       in.CoverImage,
		Title:            in.Title,
		ShortDescription: in.ShortDescription,
		FullDescription:  in.FullDescription,
		Categories:       categories,
		Status:           entity.StatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.Repo.Create(ctx, art); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	metrics.RecordArticleCreated()
	return art, nil
}

// Edit modifies an article's content on behalf of its owner.
// Returns entity.ErrForbidden if the caller does not own the article or the
// article is published (published articles are immutable to the author).
// Editing a rejected article resubmits it: status resets to pending, while
// the stored rejection reason persists until the next admin decision.
func (s *Service) Edit(ctx context.Context, user *entity.User, id string, in EditInput) (*entity.Article, error) {
	if user == nil {
		return nil, entity.ErrForbidden
	}
	art, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !art.IsOwnedBy(user.ID) {
		return nil, entity.ErrForbidden
	}
	if art.Status == entity.StatusPublished {
		return nil, entity.ErrForbidden
	}

	if in.Title != nil {
		if err := entity.ValidateTitle(*in.Title); err != nil {
			return nil, err
		}
		art.Title = *in.Title
	}
	if in.ShortDescription != nil {
		if err := entity.ValidateShortDescription(*in.ShortDescription); err != nil {
			return nil, err
		}
		art.ShortDescription = *in.ShortDescription
	}
	if in.FullDescription != nil {
		art.FullDescription = *in.FullDescription
	}
	if in.CoverImage != nil {
		art.CoverImage = *in.CoverImage
	}
	if in.Categories != nil {
		categories, err := entity.NormalizeCategories(in.Categories)
		if err != nil {
			return nil, err
		}
		art.Categories = categories
	}

	// Resubmission: owner edits return a rejected article to the review
	// queue. The transition table guarantees rejected -> pending.
	if art.Status == entity.StatusRejected {
		art.Status = entity.StatusPending
		metrics.RecordModeration("resubmit")
	}
	art.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, art); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return art, nil
}

// DeleteOwn removes an article on behalf of its owner, in any status.
func (s *Service) DeleteOwn(ctx context.Context, user *entity.User, id string) error {
	if user == nil {
		return entity.ErrForbidden
	}
	art, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if !art.IsOwnedBy(user.ID) {
		return entity.ErrForbidden
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

// DeleteAny removes any article on behalf of an admin, in any status.
func (s *Service) DeleteAny(ctx context.Context, admin *entity.Admin, id string) error {
	if admin == nil {
		return entity.ErrForbidden
	}
	art, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, art.ID); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

// Approve transitions a pending article to published and stamps the
// published date. Admin-only. Returns entity.ErrInvalidTransition unless the
// article is currently pending. Approval clears any stored rejection reason.
func (s *Service) Approve(ctx context.Context, admin *entity.Admin, id string) (*entity.Article, error) {
	if admin == nil {
		return nil, entity.ErrForbidden
	}
	art, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if art.Status != entity.StatusPending || !art.Status.CanTransition(entity.StatusPublished) {
		return nil, entity.ErrInvalidTransition
	}

	now := time.Now()
	art.Status = entity.StatusPublished
	art.PublishedAt = &now
	art.RejectReason = ""
	art.UpdatedAt = now

	if err := s.Repo.Update(ctx, art); err != nil {
		return nil, fmt.Errorf("approve article: %w", err)
	}
	metrics.RecordModeration("approve")
	return art, nil
}

// Reject transitions a pending article to rejected with an optional reason.
// Admin-only. Returns entity.ErrInvalidTransition unless the article is
// currently pending.
func (s *Service) Reject(ctx context.Context, admin *entity.Admin, id, reason string) (*entity.Article, error) {
	if admin == nil {
		return nil, entity.ErrForbidden
	}
	art, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if art.Status != entity.StatusPending || !art.Status.CanTransition(entity.StatusRejected) {
		return nil, entity.ErrInvalidTransition
	}

	art.Status = entity.StatusRejected
	art.RejectReason = reason
	art.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, art); err != nil {
		return nil, fmt.Errorf("reject article: %w", err)
	}
	metrics.RecordModeration("reject")
	return art, nil
}

// Unpublish takes a published article down into the rejected state with an
// optional reason. Admin-only. Returns entity.ErrInvalidTransition unless the
// article is currently published. The published date is kept: it records when
// the article was last published.
func (s *Service) Unpublish(ctx context.Context, admin *entity.Admin, id, reason string) (*entity.Article, error) {
	if admin == nil {
		return nil, entity.ErrForbidden
	}
	art, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if art.Status != entity.StatusPublished || !art.Status.CanTransition(entity.StatusRejected) {
		return nil, entity.ErrInvalidTransition
	}

	art.Status = entity.StatusRejected
	art.RejectReason = reason
	art.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, art); err != nil {
		return nil, fmt.Errorf("unpublish article: %w", err)
	}
	metrics.RecordModeration("unpublish")
	return art, nil
}

// GetPublished retrieves a single published article for the public view.
// Unpublished articles are reported as not found, never as forbidden, so the
// public surface does not leak their existence.
func (s *Service) GetPublished(ctx context.Context, id string) (*entity.Article, error) {
	art, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if art.Status != entity.StatusPublished {
		return nil, ErrArticleNotFound
	}
	return art, nil
}

// GetOwn retrieves one of the caller's own articles, in any status.
func (s *Service) GetOwn(ctx context.Context, user *entity.User, id string) (*entity.Article, error) {
	if user == nil {
		return nil, entity.ErrForbidden
	}
	art, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !art.IsOwnedBy(user.ID) {
		return nil, entity.ErrForbidden
	}
	return art, nil
}

// GetAny retrieves any article for the admin view.
func (s *Service) GetAny(ctx context.Context, admin *entity.Admin, id string) (*entity.Article, error) {
	if admin == nil {
		return nil, entity.ErrForbidden
	}
	return s.get(ctx, id)
}

// ListPublished returns one page of published articles for the public view,
// ordered by published date descending.
func (s *Service) ListPublished(ctx context.Context, q Query) (*PaginatedResult, error) {
	rq := s.buildRepoQuery(q)
	rq.Statuses = []entity.Status{entity.StatusPublished}
	rq.Order = repository.OrderPublishedDesc
	return s.list(ctx, rq, q.Pagination)
}

// ListOwn returns one page of the caller's own articles in all statuses,
// ordered by creation time descending. The status filter narrows the view.
func (s *Service) ListOwn(ctx context.Context, user *entity.User, q Query) (*PaginatedResult, error) {
	if user == nil {
		return nil, entity.ErrForbidden
	}
	rq := s.buildRepoQuery(q)
	rq.AuthorID = user.ID
	rq.Order = repository.OrderCreatedDesc
	return s.list(ctx, rq, q.Pagination)
}

// ListAll returns one page of all articles for the admin view, ordered by
// creation time descending, optionally filtered by status.
func (s *Service) ListAll(ctx context.Context, admin *entity.Admin, q Query) (*PaginatedResult, error) {
	if admin == nil {
		return nil, entity.ErrForbidden
	}
	rq := s.buildRepoQuery(q)
	rq.Order = repository.OrderCreatedDesc
	return s.list(ctx, rq, q.Pagination)
}

// get loads an article and normalizes the not-found cases.
func (s *Service) get(ctx context.Context, id string) (*entity.Article, error) {
	if id == "" {
		return nil, ErrInvalidArticleID
	}
	art, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}
	return art, nil
}

// buildRepoQuery maps the caller-facing query onto the repository query.
// A status value outside the lifecycle enum is silently dropped. The
// category filter is lowercased to match the normalized tag set in storage.
func (s *Service) buildRepoQuery(q Query) repository.ArticleQuery {
	rq := repository.ArticleQuery{
		Search:   q.Search,
		Category: strings.ToLower(strings.TrimSpace(q.Category)),
	}
	if status, ok := entity.ParseStatus(q.Status); ok {
		rq.Statuses = []entity.Status{status}
	}
	return rq
}

func (s *Service) list(ctx context.Context, rq repository.ArticleQuery, params pagination.Params) (*PaginatedResult, error) {
	total, err := s.Repo.Count(ctx, rq)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	rq.Offset = pagination.CalculateOffset(params.Page, params.Limit)
	rq.Limit = params.Limit

	articles, err := s.Repo.List(ctx, rq)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	return &PaginatedResult{
		Data: articles,
		Pagination: pagination.Metadata{
			Total:      total,
			Page:       params.Page,
			Limit:      params.Limit,
			TotalPages: pagination.CalculateTotalPages(total, params.Limit),
		},
	}, nil
}
