package content

import (
	"sort"

	"github.com/google/uuid"

	"portfolio-website/internal/models"
	"portfolio-website/internal/store"
)

type Leadership struct {
	store *store.Store
}

func NewLeadership(s *store.Store) *Leadership {
	return &Leadership{store: s}
}

// List returns all positions ordered strictly by orderIndex ascending.
// There is no date fallback here: the admin reorders positions
// explicitly and new entries are prepended at index zero, so ties are
// expected to be resolved by hand. A record marked current has its
// endDate cleared regardless of what was stored.
func (l *Leadership) List() []models.LeadershipPosition {
	positions := store.ReadCollection[models.LeadershipPosition](l.store, leadershipFile)

	for i := range positions {
		if positions[i].Current {
			positions[i].EndDate = ""
		}
	}

	sort.SliceStable(positions, func(i, j int) bool {
		return positions[i].OrderIndex < positions[j].OrderIndex
	})
	return positions
}

func (l *Leadership) GetByID(id string) (models.LeadershipPosition, error) {
	for _, position := range store.ReadCollection[models.LeadershipPosition](l.store, leadershipFile) {
		if position.ID == id {
			if position.Current {
				position.EndDate = ""
			}
			return position, nil
		}
	}
	return models.LeadershipPosition{}, ErrNotFound
}

// Create prepends the new position at orderIndex zero so it shows
// first until the admin reorders.
func (l *Leadership) Create(input models.LeadershipPosition) (models.LeadershipPosition, error) {
	positions := store.ReadCollection[models.LeadershipPosition](l.store, leadershipFile)

	input.ID = uuid.NewString()
	input.OrderIndex = 0
	input.CreatedAt = now()
	if input.Type == "" {
		input.Type = "Leadership"
	}
	if input.Achievements == nil {
		input.Achievements = []models.Achievement{}
	}

	positions = append([]models.LeadershipPosition{input}, positions...)
	if err := store.WriteCollection(l.store, leadershipFile, positions); err != nil {
		return models.LeadershipPosition{}, err
	}
	return input, nil
}

type LeadershipPatch struct {
	Title        *string              `json:"title"`
	Organization *string              `json:"organization"`
	Type         *string              `json:"type"`
	StartDate    *string              `json:"startDate"`
	EndDate      *string              `json:"endDate"`
	Current      *bool                `json:"current"`
	Description  *string              `json:"description"`
	Achievements []models.Achievement `json:"achievements"`
	OrderIndex   *int                 `json:"orderIndex"`
}

func (l *Leadership) Update(id string, patch LeadershipPatch) (models.LeadershipPosition, error) {
	positions := store.ReadCollection[models.LeadershipPosition](l.store, leadershipFile)

	index := -1
	for i, position := range positions {
		if position.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return models.LeadershipPosition{}, ErrNotFound
	}

	position := &positions[index]
	if patch.Title != nil {
		position.Title = *patch.Title
	}
	if patch.Organization != nil {
		position.Organization = *patch.Organization
	}
	if patch.Type != nil {
		position.Type = *patch.Type
	}
	if patch.StartDate != nil {
		position.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		position.EndDate = *patch.EndDate
	}
	if patch.Current != nil {
		position.Current = *patch.Current
	}
	if patch.Description != nil {
		position.Description = *patch.Description
	}
	if patch.Achievements != nil {
		position.Achievements = patch.Achievements
	}
	if patch.OrderIndex != nil {
		position.OrderIndex = *patch.OrderIndex
	}

	if err := store.WriteCollection(l.store, leadershipFile, positions); err != nil {
		return models.LeadershipPosition{}, err
	}
	return *position, nil
}

func (l *Leadership) Delete(id string) (bool, error) {
	positions := store.ReadCollection[models.LeadershipPosition](l.store, leadershipFile)

	remaining := make([]models.LeadershipPosition, 0, len(positions))
	for _, position := range positions {
		if position.ID != id {
			remaining = append(remaining, position)
		}
	}
	if len(remaining) == len(positions) {
		return false, nil
	}

	if err := store.WriteCollection(l.store, leadershipFile, remaining); err != nil {
		return false, err
	}
	return true, nil
}

// Save replaces the whole collection. The admin reorder flow rewrites
// every orderIndex in one shot.
func (l *Leadership) Save(positions []models.LeadershipPosition) error {
	return store.WriteCollection(l.store, leadershipFile, positions)
}
