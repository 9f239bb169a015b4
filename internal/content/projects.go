package content

import (
	"sort"

	"github.com/google/uuid"

	"portfolio-website/internal/models"
	"portfolio-website/internal/store"
)

type Projects struct {
	store *store.Store
}

func NewProjects(s *store.Store) *Projects {
	return &Projects{store: s}
}

// ProjectFilter criteria are conjunctive; a zero value means no filter
// on that field. Featured is a pointer so "filter on false" stays
// distinguishable from "no filter".
type ProjectFilter struct {
	Category string
	Status   string
	Featured *bool
}

// List returns projects matching the filter, ordered by orderIndex
// ascending with ties broken by date descending.
func (p *Projects) List(filter ProjectFilter) []models.Project {
	projects := store.ReadCollection[models.Project](p.store, projectsFile)

	filtered := make([]models.Project, 0, len(projects))
	for _, project := range projects {
		if filter.Category != "" && project.Category != filter.Category {
			continue
		}
		if filter.Status != "" && project.Status != filter.Status {
			continue
		}
		if filter.Featured != nil && project.Featured != *filter.Featured {
			continue
		}
		filtered = append(filtered, project)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].OrderIndex != filtered[j].OrderIndex {
			return filtered[i].OrderIndex < filtered[j].OrderIndex
		}
		return parseTime(filtered[i].Date).After(parseTime(filtered[j].Date))
	})
	return filtered
}

func (p *Projects) GetByID(id string) (models.Project, error) {
	for _, project := range store.ReadCollection[models.Project](p.store, projectsFile) {
		if project.ID == id {
			return project, nil
		}
	}
	return models.Project{}, ErrNotFound
}

// GetBySlug returns the first project with the given slug. Slugs are
// checked for collisions on create, but records written before that
// check existed may still collide; first match wins.
func (p *Projects) GetBySlug(slug string) (models.Project, error) {
	for _, project := range store.ReadCollection[models.Project](p.store, projectsFile) {
		if project.Slug == slug {
			return project, nil
		}
	}
	return models.Project{}, ErrNotFound
}

// Create assigns the id and timestamps, derives the slug from the title
// when absent, and appends the record. A colliding slug is rejected
// with ErrSlugTaken.
func (p *Projects) Create(input models.Project) (models.Project, error) {
	projects := store.ReadCollection[models.Project](p.store, projectsFile)

	if input.Slug == "" {
		input.Slug = Slugify(input.Title)
	}
	for _, existing := range projects {
		if existing.Slug == input.Slug {
			return models.Project{}, ErrSlugTaken
		}
	}

	input.ID = uuid.NewString()
	input.CreatedAt = now()
	input.UpdatedAt = input.CreatedAt

	projects = append(projects, input)
	if err := store.WriteCollection(p.store, projectsFile, projects); err != nil {
		return models.Project{}, err
	}
	return input, nil
}

// ProjectPatch carries the fields a partial update may change. Nil
// pointers and nil slices/maps are left untouched; the record id is
// never changed.
type ProjectPatch struct {
	Slug            *string           `json:"slug"`
	Title           *string           `json:"title"`
	Category        *string           `json:"category"`
	Description     *string           `json:"description"`
	LongDescription *string           `json:"longDescription"`
	ImageURL        *string           `json:"imageUrl"`
	Tags            []string          `json:"tags"`
	Metrics         map[string]string `json:"metrics"`
	Date            *string           `json:"date"`
	Featured        *bool             `json:"featured"`
	OrderIndex      *int              `json:"orderIndex"`
	Status          *string           `json:"status"`
}

func (p *Projects) Update(id string, patch ProjectPatch) (models.Project, error) {
	projects := store.ReadCollection[models.Project](p.store, projectsFile)

	index := -1
	for i, project := range projects {
		if project.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return models.Project{}, ErrNotFound
	}

	project := &projects[index]
	if patch.Slug != nil {
		project.Slug = *patch.Slug
	}
	if patch.Title != nil {
		project.Title = *patch.Title
	}
	if patch.Category != nil {
		project.Category = *patch.Category
	}
	if patch.Description != nil {
		project.Description = *patch.Description
	}
	if patch.LongDescription != nil {
		project.LongDescription = *patch.LongDescription
	}
	if patch.ImageURL != nil {
		project.ImageURL = *patch.ImageURL
	}
	if patch.Tags != nil {
		project.Tags = patch.Tags
	}
	if patch.Metrics != nil {
		project.Metrics = patch.Metrics
	}
	if patch.Date != nil {
		project.Date = *patch.Date
	}
	if patch.Featured != nil {
		project.Featured = *patch.Featured
	}
	if patch.OrderIndex != nil {
		project.OrderIndex = *patch.OrderIndex
	}
	if patch.Status != nil {
		project.Status = *patch.Status
	}
	project.UpdatedAt = now()

	if err := store.WriteCollection(p.store, projectsFile, projects); err != nil {
		return models.Project{}, err
	}
	return *project, nil
}

// Delete reports found=false when no record has the id; the collection
// is only rewritten when a record was actually removed.
func (p *Projects) Delete(id string) (bool, error) {
	projects := store.ReadCollection[models.Project](p.store, projectsFile)

	remaining := make([]models.Project, 0, len(projects))
	for _, project := range projects {
		if project.ID != id {
			remaining = append(remaining, project)
		}
	}
	if len(remaining) == len(projects) {
		return false, nil
	}

	if err := store.WriteCollection(p.store, projectsFile, remaining); err != nil {
		return false, err
	}
	return true, nil
}
