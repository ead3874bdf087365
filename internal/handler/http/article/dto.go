// Package article provides the HTTP handlers for the three article views:
// the public published catalogue, the owner's workspace, and the admin
// moderation queue.
package article

import (
	"time"

	"pressroom/internal/domain/entity"
)

// DTO is the full article representation used by single-item views.
type DTO struct {
	ID               string     `json:"id"`
	AuthorID         string     `json:"author_id"`
	CoverImage       string     `json:"cover_image,omitempty"`
	Title            string     `json:"title"`
	ShortDescription string     `json:"short_description"`
	FullDescription  string     `json:"full_description"`
	Categories       []string   `json:"categories"`
	Status           string     `json:"status"`
	RejectReason     string     `json:"reject_reason,omitempty"`
	PublishedAt      *time.Time `json:"published_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// ListItemDTO is the list-view representation. The full description is
// omitted to keep list payloads small.
type ListItemDTO struct {
	ID               string     `json:"id"`
	AuthorID         string     `json:"author_id"`
	CoverImage       string     `json:"cover_image,omitempty"`
	Title            string     `json:"title"`
	ShortDescription string     `json:"short_description"`
	Categories       []string   `json:"categories"`
	Status           string     `json:"status"`
	RejectReason     string     `json:"reject_reason,omitempty"`
	PublishedAt      *time.Time `json:"published_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func toDTO(a *entity.Article) DTO {
	return DTO{
		ID:               a.ID,
		AuthorID:         a.AuthorID,
		CoverImage:       a.CoverImage,
		Title:            a.Title,
		ShortDescription: a.ShortDescription,
		FullDescription:  a.FullDescription,
		Categories:       a.Categories,
		Status:           string(a.Status),
		RejectReason:     a.RejectReason,
		PublishedAt:      a.PublishedAt,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

func toListItems(articles []*entity.Article) []ListItemDTO {
	items := make([]ListItemDTO, 0, len(articles))
	for _, a := range articles {
		items = append(items, ListItemDTO{
			ID:               a.ID,
			AuthorID:         a.AuthorID,
			CoverImage:       a.CoverImage,
			Title:            a.Title,
			ShortDescription: a.ShortDescription,
			Categories:       a.Categories,
			Status:           string(a.Status),
			RejectReason:     a.RejectReason,
			PublishedAt:      a.PublishedAt,
			CreatedAt:        a.CreatedAt,
			UpdatedAt:        a.UpdatedAt,
		})
	}
	return items
}
