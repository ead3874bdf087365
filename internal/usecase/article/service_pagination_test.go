package article_test

import (
	"context"
	"fmt"
	"testing"

	"pressroom/internal/common/pagination"
	"pressroom/internal/domain/entity"
	artUC "pressroom/internal/usecase/article"
)

func seedMany(repo *stubRepo, status entity.Status, authorID string, n int) {
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("%s-%s-%d", status, authorID, i)
		repo.data[id] = &entity.Article{
			ID:       id,
			AuthorID: authorID,
			Title:    fmt.Sprintf("Article %d", i),
			Status:   status,
		}
	}
}

func TestListPublishedOnlyPublished(t *testing.T) {
	repo := newStub()
	svc := artUC.Service{Repo: repo}
	seedMany(repo, entity.StatusPublished, author.ID, 3)
	seedMany(repo, entity.StatusPending, author.ID, 4)
	seedMany(repo, entity.StatusRejected, author.ID, 5)

	res, err := svc.ListPublished(context.Background(), artUC.Query{
		Pagination: pagination.Params{Page: 1, Limit: 10},
	})
	if err != nil {
		t.Fatalf("ListPublished() error = %v", err)
	}
	if res.Pagination.Total != 3 {
		t.Errorf("total = %d, want 3", res.Pagination.Total)
	}
	for _, a := range res.Data {
		if a.Status != entity.StatusPublished {
			t.Errorf("public listing leaked a %s article", a.Status)
		}
	}
}

func TestListPublishedIgnoresStatusOverride(t *testing.T) {
	// The public listing pins the published status even when a caller
	// smuggles a status filter into the query.
	repo := newStub()
	svc := artUC.Service{Repo: repo}
	seedMany(repo, entity.StatusPublished, author.ID, 2)
	seedMany(repo, entity.StatusPending, author.ID, 2)

	res, err := svc.ListPublished(context.Background(), artUC.Query{
		Pagination: pagination.Params{Page: 1, Limit: 10},
		Status:     "pending",
	})
	if err != nil {
		t.Fatalf("ListPublished() error = %v", err)
	}
	if res.Pagination.Total != 2 {
		t.Errorf("total = %d, want only the 2 published articles", res.Pagination.Total)
	}
}

func TestListPaginationMetadata(t *testing.T) {
	repo := newStub()
	svc := artUC.Service{Repo: repo}
	seedMany(repo, entity.StatusPublished, author.ID, 25)

	tests := []struct {
		name       string
		page       int
		wantCount  int
		wantPages  int
		wantOnPage int
	}{
		{name: "first page", page: 1, wantOnPage: 10, wantPages: 3},
		{name: "last partial page", page: 3, wantOnPage: 5, wantPages: 3},
		{name: "page past the end", page: 4, wantOnPage: 0, wantPages: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.ListPublished(context.Background(), artUC.Query{
				Pagination: pagination.Params{Page: tt.page, Limit: 10},
			})
			if err != nil {
				t.Fatalf("ListPublished() error = %v", err)
			}
			if len(res.Data) != tt.wantOnPage {
				t.Errorf("len(Data) = %d, want %d", len(res.Data), tt.wantOnPage)
			}
			if res.Pagination.Total != 25 {
				t.Errorf("total = %d, want 25", res.Pagination.Total)
			}
			if res.Pagination.TotalPages != tt.wantPages {
				t.Errorf("totalPages = %d, want %d", res.Pagination.TotalPages, tt.wantPages)
			}
			if res.Pagination.Page != tt.page {
				t.Errorf("page = %d, want %d", res.Pagination.Page, tt.page)
			}
		})
	}
}

func TestListOwnScopedToCaller(t *testing.T) {
	repo := newStub()
	svc := artUC.Service{Repo: repo}
	seedMany(repo, entity.StatusPending, author.ID, 2)
	seedMany(repo, entity.StatusRejected, author.ID, 1)
	seedMany(repo, entity.StatusPending, other.ID, 4)

	res, err := svc.ListOwn(context.Background(), author, artUC.Query{
		Pagination: pagination.Params{Page: 1, Limit: 10},
	})
	if err != nil {
		t.Fatalf("ListOwn() error = %v", err)
	}
	if res.Pagination.Total != 3 {
		t.Errorf("total = %d, want the caller's 3 articles", res.Pagination.Total)
	}
	for _, a := range res.Data {
		if a.AuthorID != author.ID {
			t.Errorf("listing leaked article %s owned by %s", a.ID, a.AuthorID)
		}
	}
}

func TestListOwnStatusFilter(t *testing.T) {
	repo := newStub()
	svc := artUC.Service{Repo: repo}
	seedMany(repo, entity.StatusPending, author.ID, 2)
	seedMany(repo, entity.StatusRejected, author.ID, 3)

	res, err := svc.ListOwn(context.Background(), author, artUC.Query{
		Pagination: pagination.Params{Page: 1, Limit: 10},
		Status:     "rejected",
	})
	if err != nil {
		t.Fatalf("ListOwn() error = %v", err)
	}
	if res.Pagination.Total != 3 {
		t.Errorf("total = %d, want 3 rejected", res.Pagination.Total)
	}
}

func TestListAllUnknownStatusIgnored(t *testing.T) {
	repo := newStub()
	svc := artUC.Service{Repo: repo}
	seedMany(repo, entity.StatusPending, author.ID, 2)
	seedMany(repo, entity.StatusPublished, other.ID, 2)

	res, err := svc.ListAll(context.Background(), admin, artUC.Query{
		Pagination: pagination.Params{Page: 1, Limit: 10},
		Status:     "archived",
	})
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if res.Pagination.Total != 4 {
		t.Errorf("total = %d, want all 4 with unknown status ignored", res.Pagination.Total)
	}
}

func TestListSearchAndCategory(t *testing.T) {
	repo := newStub()
	svc := artUC.Service{Repo: repo}
	repo.data["a"] = &entity.Article{
		ID: "a", AuthorID: author.ID, Status: entity.StatusPublished,
		Title: "Profiling Go services", Categories: []string{"go", "performance"},
	}
	repo.data["b"] = &entity.Article{
		ID: "b", AuthorID: author.ID, Status: entity.StatusPublished,
		Title: "Kitchen notes", ShortDescription: "weeknight cooking", Categories: []string{"food"},
	}

	res, err := svc.ListPublished(context.Background(), artUC.Query{
		Pagination: pagination.Params{Page: 1, Limit: 10},
		Search:     "profiling",
	})
	if err != nil {
		t.Fatalf("ListPublished() error = %v", err)
	}
	if res.Pagination.Total != 1 || res.Data[0].ID != "a" {
		t.Errorf("search result = %+v, want article a only", res.Data)
	}

	res, err = svc.ListPublished(context.Background(), artUC.Query{
		Pagination: pagination.Params{Page: 1, Limit: 10},
		Category:   "food",
	})
	if err != nil {
		t.Fatalf("ListPublished() error = %v", err)
	}
	if res.Pagination.Total != 1 || res.Data[0].ID != "b" {
		t.Errorf("category result = %+v, want article b only", res.Data)
	}

	// Stored tags are normalized to lowercase; the filter must match them
	// regardless of the caller's casing and padding.
	res, err = svc.ListPublished(context.Background(), artUC.Query{
		Pagination: pagination.Params{Page: 1, Limit: 10},
		Category:   " Food ",
	})
	if err != nil {
		t.Fatalf("ListPublished() error = %v", err)
	}
	if res.Pagination.Total != 1 || res.Data[0].ID != "b" {
		t.Errorf("mixed-case category result = %+v, want article b only", res.Data)
	}
}

func TestListRequiresPrincipal(t *testing.T) {
	svc := artUC.Service{Repo: newStub()}
	q := artUC.Query{Pagination: pagination.Params{Page: 1, Limit: 10}}

	if _, err := svc.ListOwn(context.Background(), nil, q); err != entity.ErrForbidden {
		t.Errorf("ListOwn(nil user) error = %v, want ErrForbidden", err)
	}
	if _, err := svc.ListAll(context.Background(), nil, q); err != entity.ErrForbidden {
		t.Errorf("ListAll(nil admin) error = %v, want ErrForbidden", err)
	}
}
