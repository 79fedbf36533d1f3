package services

import (
	"context"
	"testing"

	"github.com/ahmetcoskunkizilkaya/studentsafe/internal/dto"
	"github.com/ahmetcoskunkizilkaya/studentsafe/internal/resources"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceCRUD(t *testing.T) {
	ctx := context.Background()
	svc := NewResourceService(setupTestDB(t))

	created, err := svc.Create(ctx, &dto.ResourceRequest{
		Title:    " Counselor hours ",
		URL:      "https://example.org/counselor",
		Category: "Counseling",
	})
	require.NoError(t, err)
	assert.Equal(t, "Counselor hours", created.Title)
	assert.NotEqual(t, uuid.Nil, created.ID)

	updated, err := svc.Update(ctx, created.ID, &dto.ResourceRequest{
		Title:       "Counselor office hours",
		Description: "Mon-Fri",
		URL:         "https://example.org/hours",
		Category:    "Counseling",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/hours", updated.URL)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), ErrResourceNotFound)

	_, err = svc.Update(ctx, uuid.New(), &dto.ResourceRequest{Title: "x", URL: "https://x.org", Category: "y"})
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestResourceValidation(t *testing.T) {
	svc := NewResourceService(setupTestDB(t))
	for _, req := range []dto.ResourceRequest{
		{Title: "", URL: "https://x.org", Category: "c"},
		{Title: "t", URL: "https://x.org", Category: " "},
		{Title: "t", URL: "javascript:alert(1)", Category: "c"},
		{Title: "t", URL: "not a url", Category: "c"},
	} {
		_, err := svc.Create(context.Background(), &req)
		assert.ErrorIs(t, err, ErrInvalidResource, req)
	}
}

func TestListOrdersByCategoryThenTitle(t *testing.T) {
	ctx := context.Background()
	svc := NewResourceService(setupTestDB(t))
	for _, r := range []dto.ResourceRequest{
		{Title: "Zine", URL: "https://z.org", Category: "Online Safety"},
		{Title: "Book", URL: "https://b.org", Category: "Counseling"},
		{Title: "Apply", URL: "https://a.org", Category: "Online Safety"},
	} {
		_, err := svc.Create(ctx, &r)
		require.NoError(t, err)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"Book", "Apply", "Zine"}, []string{list[0].Title, list[1].Title, list[2].Title})

	groups := resources.GroupByCategory(list)
	require.Len(t, groups, 2)
	assert.Equal(t, "Counseling", groups[0].Category)
}

func TestSeedIfEmpty(t *testing.T) {
	ctx := context.Background()
	svc := NewResourceService(setupTestDB(t))
	seeds := []resources.Seed{
		{Title: "StopBullying.gov", URL: "https://www.stopbullying.gov/", Category: "Bullying"},
		{Title: "988 Lifeline", URL: "https://988lifeline.org/", Category: "Crisis Support"},
	}

	n, err := svc.SeedIfEmpty(ctx, seeds)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = svc.SeedIfEmpty(ctx, seeds)
	require.NoError(t, err)
	assert.Zero(t, n)
}
