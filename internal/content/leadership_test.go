package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-website/internal/content"
	"portfolio-website/internal/models"
	"portfolio-website/internal/store"
)

func TestLeadershipSortIsOrderIndexOnly(t *testing.T) {
	s := store.New(t.TempDir())
	repo := content.NewLeadership(s)

	// Same orderIndex with very different creation dates: order must
	// stay as stored, with no date fallback.
	require.NoError(t, store.WriteCollection(s, "leadership.json", []models.LeadershipPosition{
		{ID: "1", Title: "first", OrderIndex: 0, CreatedAt: "2020-01-01T00:00:00Z"},
		{ID: "2", Title: "second", OrderIndex: 0, CreatedAt: "2024-01-01T00:00:00Z"},
		{ID: "3", Title: "third", OrderIndex: 2, CreatedAt: "2019-01-01T00:00:00Z"},
	}))

	listed := repo.List()
	require.Len(t, listed, 3)
	assert.Equal(t, "first", listed[0].Title)
	assert.Equal(t, "second", listed[1].Title)
	assert.Equal(t, "third", listed[2].Title)
}

func TestLeadershipCurrentVoidsEndDate(t *testing.T) {
	s := store.New(t.TempDir())
	repo := content.NewLeadership(s)

	require.NoError(t, store.WriteCollection(s, "leadership.json", []models.LeadershipPosition{
		{ID: "1", Title: "ongoing", Current: true, EndDate: "2023-05-01"},
		{ID: "2", Title: "finished", Current: false, EndDate: "2023-05-01"},
	}))

	listed := repo.List()
	require.Len(t, listed, 2)
	assert.Empty(t, listed[0].EndDate)
	assert.Equal(t, "2023-05-01", listed[1].EndDate)

	got, err := repo.GetByID("1")
	require.NoError(t, err)
	assert.Empty(t, got.EndDate)
}

func TestLeadershipCreatePrependsAtIndexZero(t *testing.T) {
	repo := content.NewLeadership(store.New(t.TempDir()))

	_, err := repo.Create(models.LeadershipPosition{Title: "old", Organization: "Org"})
	require.NoError(t, err)

	created, err := repo.Create(models.LeadershipPosition{Title: "new", Organization: "Org"})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 0, created.OrderIndex)
	assert.Equal(t, "Leadership", created.Type)
	assert.NotNil(t, created.Achievements)
	assert.NotEmpty(t, created.CreatedAt)

	listed := repo.List()
	require.Len(t, listed, 2)
	assert.Equal(t, "new", listed[0].Title)
}

func TestLeadershipUpdateAndDelete(t *testing.T) {
	repo := content.NewLeadership(store.New(t.TempDir()))

	created, err := repo.Create(models.LeadershipPosition{Title: "Chair", Organization: "Club"})
	require.NoError(t, err)

	current := true
	achievements := []models.Achievement{{Text: "grew membership", Metric: "2x"}}
	updated, err := repo.Update(created.ID, content.LeadershipPatch{
		Current:      &current,
		Achievements: achievements,
	})
	require.NoError(t, err)
	assert.True(t, updated.Current)
	assert.Equal(t, achievements, updated.Achievements)
	assert.Equal(t, "Chair", updated.Title)

	_, err = repo.Update("missing", content.LeadershipPatch{})
	assert.ErrorIs(t, err, content.ErrNotFound)

	found, err := repo.Delete(created.ID)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repo.Delete(created.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLeadershipSaveReplacesCollection(t *testing.T) {
	s := store.New(t.TempDir())
	repo := content.NewLeadership(s)

	_, err := repo.Create(models.LeadershipPosition{Title: "a", Organization: "Org"})
	require.NoError(t, err)

	reordered := []models.LeadershipPosition{
		{ID: "x", Title: "only", OrderIndex: 3, CreatedAt: "2024-01-01T00:00:00Z"},
	}
	require.NoError(t, repo.Save(reordered))

	listed := repo.List()
	require.Len(t, listed, 1)
	assert.Equal(t, "only", listed[0].Title)
}
