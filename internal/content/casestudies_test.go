package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-website/internal/content"
	"portfolio-website/internal/models"
	"portfolio-website/internal/store"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "alpha-deal", content.Slugify("Alpha Deal"))
	assert.Equal(t, "q3-2024-report", content.Slugify("Q3 2024 Report!"))
	assert.Equal(t, "a-b", content.Slugify("  a  &  b  "))
	assert.Equal(t, "", content.Slugify("!!!"))
}

func newCaseStudies(t *testing.T) *content.CaseStudies {
	t.Helper()
	return content.NewCaseStudies(store.New(t.TempDir()))
}

func TestCaseStudyCreateAndGetBySlug(t *testing.T) {
	repo := newCaseStudies(t)

	created, err := repo.Create(models.CaseStudy{
		Title:     "Platform Rebuild",
		Client:    "Acme",
		Challenge: "legacy stack",
	})
	require.NoError(t, err)
	assert.Equal(t, "platform-rebuild", created.Slug)

	found, err := repo.GetBySlug("platform-rebuild")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestCaseStudyCreateRejectsSlugCollision(t *testing.T) {
	repo := newCaseStudies(t)

	_, err := repo.Create(models.CaseStudy{Title: "Platform Rebuild"})
	require.NoError(t, err)

	_, err = repo.Create(models.CaseStudy{Title: "Platform Rebuild"})
	assert.ErrorIs(t, err, content.ErrSlugTaken)
}

func TestCaseStudySortTiesBreakOnCreatedAt(t *testing.T) {
	// Seed the collection directly so createdAt values are controlled.
	s := store.New(t.TempDir())
	repo := content.NewCaseStudies(s)
	require.NoError(t, store.WriteCollection(s, "case-studies.json", []models.CaseStudy{
		{ID: "1", Title: "older", OrderIndex: 1, CreatedAt: "2024-01-01T00:00:00Z"},
		{ID: "2", Title: "newer", OrderIndex: 1, CreatedAt: "2024-06-01T00:00:00Z"},
		{ID: "3", Title: "last", OrderIndex: 5, CreatedAt: "2024-12-01T00:00:00Z"},
	}))

	listed := repo.List(content.CaseStudyFilter{})
	require.Len(t, listed, 3)
	assert.Equal(t, "newer", listed[0].Title)
	assert.Equal(t, "older", listed[1].Title)
	assert.Equal(t, "last", listed[2].Title)
}

func TestCaseStudyFilter(t *testing.T) {
	repo := newCaseStudies(t)

	_, err := repo.Create(models.CaseStudy{Title: "one", Status: models.StatusPublished, Featured: true})
	require.NoError(t, err)
	_, err = repo.Create(models.CaseStudy{Title: "two", Status: models.StatusPublished, Featured: false})
	require.NoError(t, err)
	_, err = repo.Create(models.CaseStudy{Title: "three", Status: models.StatusDraft, Featured: true})
	require.NoError(t, err)

	featured := true
	listed := repo.List(content.CaseStudyFilter{Status: models.StatusPublished, Featured: &featured})

	require.Len(t, listed, 1)
	assert.Equal(t, "one", listed[0].Title)
}

func TestCaseStudyUpdateAndDelete(t *testing.T) {
	repo := newCaseStudies(t)

	created, err := repo.Create(models.CaseStudy{Title: "Platform Rebuild"})
	require.NoError(t, err)

	outcome := "shipped"
	updated, err := repo.Update(created.ID, content.CaseStudyPatch{Outcome: &outcome})
	require.NoError(t, err)
	assert.Equal(t, "shipped", updated.Outcome)
	assert.Equal(t, "Platform Rebuild", updated.Title)

	found, err := repo.Delete(created.ID)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repo.Delete(created.ID)
	require.NoError(t, err)
	assert.False(t, found)
}
