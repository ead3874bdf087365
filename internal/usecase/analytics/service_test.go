package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pressroom/internal/domain/entity"
	"pressroom/internal/repository"
	"pressroom/internal/usecase/analytics"
)

type stubAnalytics struct {
	created    int64
	published  int64
	authors    []repository.AuthorRank
	categories []repository.CategoryRank
	gotSince   time.Time
	err        error
}

func (s *stubAnalytics) CountArticlesCreatedSince(_ context.Context, since time.Time) (int64, error) {
	s.gotSince = since
	return s.created, s.err
}

func (s *stubAnalytics) CountArticlesPublishedSince(_ context.Context, _ time.Time) (int64, error) {
	return s.published, s.err
}

func (s *stubAnalytics) TopAuthors(_ context.Context, _ time.Time, limit int) ([]repository.AuthorRank, error) {
	if s.err != nil {
		return nil, s.err
	}
	if limit < len(s.authors) {
		return s.authors[:limit], nil
	}
	return s.authors, nil
}

func (s *stubAnalytics) TopCategories(_ context.Context, _ time.Time, limit int) ([]repository.CategoryRank, error) {
	if s.err != nil {
		return nil, s.err
	}
	if limit < len(s.categories) {
		return s.categories[:limit], nil
	}
	return s.categories, nil
}

type stubUserCounts struct {
	count int64
	err   error
}

func (s *stubUserCounts) GetByID(_ context.Context, _ string) (*entity.User, error) { return nil, nil }
func (s *stubUserCounts) GetByEmail(_ context.Context, _ string) (*entity.User, error) {
	return nil, nil
}
func (s *stubUserCounts) Create(_ context.Context, _ *entity.User) error { return nil }
func (s *stubUserCounts) CountCreatedSince(_ context.Context, _ time.Time) (int64, error) {
	return s.count, s.err
}

var admin = &entity.Admin{ID: "adm-1", Username: "root"}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		raw     string
		want    analytics.Period
		wantErr bool
	}{
		{raw: "", want: analytics.PeriodMonth},
		{raw: "week", want: analytics.PeriodWeek},
		{raw: "month", want: analytics.PeriodMonth},
		{raw: "year", want: analytics.PeriodYear},
		{raw: "quarter", wantErr: true},
		{raw: "WEEK", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("raw="+tt.raw, func(t *testing.T) {
			got, err := analytics.ParsePeriod(tt.raw)
			if tt.wantErr {
				var verr *entity.ValidationError
				assert.ErrorAs(t, err, &verr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPeriodStart(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC), analytics.PeriodWeek.Start(now))
	assert.Equal(t, time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC), analytics.PeriodMonth.Start(now))
	assert.Equal(t, time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC), analytics.PeriodYear.Start(now))
}

func TestBuildReport(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	data := &stubAnalytics{
		created:   42,
		published: 17,
		authors: []repository.AuthorRank{
			{AuthorID: "u1", Username: "alice", PublishedCount: 9},
			{AuthorID: "u2", Username: "bob", PublishedCount: 5},
		},
		categories: []repository.CategoryRank{
			{Category: "go", PublishedCount: 12},
		},
	}
	svc := &analytics.Service{
		Analytics: data,
		Users:     &stubUserCounts{count: 7},
		Now:       func() time.Time { return now },
	}

	report, err := svc.BuildReport(context.Background(), admin, analytics.PeriodWeek)
	require.NoError(t, err)

	assert.Equal(t, analytics.PeriodWeek, report.Period)
	assert.Equal(t, now.AddDate(0, 0, -7), report.From)
	assert.Equal(t, now, report.To)
	assert.Equal(t, int64(42), report.NewArticles)
	assert.Equal(t, int64(17), report.PublishedArticles)
	assert.Equal(t, int64(7), report.NewUsers)
	assert.Len(t, report.TopAuthors, 2)
	assert.Len(t, report.TopCategories, 1)
	assert.Equal(t, now.AddDate(0, 0, -7), data.gotSince)
}

func TestBuildReportEmptyRankings(t *testing.T) {
	svc := &analytics.Service{
		Analytics: &stubAnalytics{},
		Users:     &stubUserCounts{},
	}

	report, err := svc.BuildReport(context.Background(), admin, analytics.PeriodMonth)
	require.NoError(t, err)
	assert.NotNil(t, report.TopAuthors)
	assert.NotNil(t, report.TopCategories)
	assert.Empty(t, report.TopAuthors)
	assert.Empty(t, report.TopCategories)
}

func TestBuildReportRequiresAdmin(t *testing.T) {
	svc := &analytics.Service{Analytics: &stubAnalytics{}, Users: &stubUserCounts{}}

	_, err := svc.BuildReport(context.Background(), nil, analytics.PeriodMonth)
	assert.ErrorIs(t, err, entity.ErrForbidden)
}

func TestBuildReportStorageFault(t *testing.T) {
	boom := errors.New("connection refused")
	svc := &analytics.Service{
		Analytics: &stubAnalytics{err: boom},
		Users:     &stubUserCounts{},
	}

	_, err := svc.BuildReport(context.Background(), admin, analytics.PeriodMonth)
	assert.ErrorIs(t, err, boom)
}
