package content

import (
	"sort"

	"github.com/google/uuid"

	"portfolio-website/internal/models"
	"portfolio-website/internal/store"
)

type CaseStudies struct {
	store *store.Store
}

func NewCaseStudies(s *store.Store) *CaseStudies {
	return &CaseStudies{store: s}
}

type CaseStudyFilter struct {
	Status   string
	Featured *bool
}

// List returns case studies matching the filter, ordered by orderIndex
// ascending with ties broken by createdAt descending. Projects break
// ties on their display date instead; case studies have no such field.
func (c *CaseStudies) List(filter CaseStudyFilter) []models.CaseStudy {
	caseStudies := store.ReadCollection[models.CaseStudy](c.store, caseStudiesFile)

	filtered := make([]models.CaseStudy, 0, len(caseStudies))
	for _, cs := range caseStudies {
		if filter.Status != "" && cs.Status != filter.Status {
			continue
		}
		if filter.Featured != nil && cs.Featured != *filter.Featured {
			continue
		}
		filtered = append(filtered, cs)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].OrderIndex != filtered[j].OrderIndex {
			return filtered[i].OrderIndex < filtered[j].OrderIndex
		}
		return parseTime(filtered[i].CreatedAt).After(parseTime(filtered[j].CreatedAt))
	})
	return filtered
}

func (c *CaseStudies) GetByID(id string) (models.CaseStudy, error) {
	for _, cs := range store.ReadCollection[models.CaseStudy](c.store, caseStudiesFile) {
		if cs.ID == id {
			return cs, nil
		}
	}
	return models.CaseStudy{}, ErrNotFound
}

func (c *CaseStudies) GetBySlug(slug string) (models.CaseStudy, error) {
	for _, cs := range store.ReadCollection[models.CaseStudy](c.store, caseStudiesFile) {
		if cs.Slug == slug {
			return cs, nil
		}
	}
	return models.CaseStudy{}, ErrNotFound
}

func (c *CaseStudies) Create(input models.CaseStudy) (models.CaseStudy, error) {
	caseStudies := store.ReadCollection[models.CaseStudy](c.store, caseStudiesFile)

	if input.Slug == "" {
		input.Slug = Slugify(input.Title)
	}
	for _, existing := range caseStudies {
		if existing.Slug == input.Slug {
			return models.CaseStudy{}, ErrSlugTaken
		}
	}

	input.ID = uuid.NewString()
	input.CreatedAt = now()
	input.UpdatedAt = input.CreatedAt

	caseStudies = append(caseStudies, input)
	if err := store.WriteCollection(c.store, caseStudiesFile, caseStudies); err != nil {
		return models.CaseStudy{}, err
	}
	return input, nil
}

type CaseStudyPatch struct {
	Slug       *string           `json:"slug"`
	Title      *string           `json:"title"`
	Subtitle   *string           `json:"subtitle"`
	Client     *string           `json:"client"`
	Industry   *string           `json:"industry"`
	Role       *string           `json:"role"`
	CoverImage *string           `json:"coverImage"`
	Thumbnail  *string           `json:"thumbnail"`
	Context    *string           `json:"context"`
	Challenge  *string           `json:"challenge"`
	Approach   *string           `json:"approach"`
	Solution   *string           `json:"solution"`
	Outcome    *string           `json:"outcome"`
	Metrics    map[string]string `json:"metrics"`
	Timeline   *string           `json:"timeline"`
	Tools      []string          `json:"tools"`
	PDFURL     *string           `json:"pdfUrl"`
	Featured   *bool             `json:"featured"`
	OrderIndex *int              `json:"orderIndex"`
	Status     *string           `json:"status"`
}

func (c *CaseStudies) Update(id string, patch CaseStudyPatch) (models.CaseStudy, error) {
	caseStudies := store.ReadCollection[models.CaseStudy](c.store, caseStudiesFile)

	index := -1
	for i, cs := range caseStudies {
		if cs.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return models.CaseStudy{}, ErrNotFound
	}

	cs := &caseStudies[index]
	if patch.Slug != nil {
		cs.Slug = *patch.Slug
	}
	if patch.Title != nil {
		cs.Title = *patch.Title
	}
	if patch.Subtitle != nil {
		cs.Subtitle = *patch.Subtitle
	}
	if patch.Client != nil {
		cs.Client = *patch.Client
	}
	if patch.Industry != nil {
		cs.Industry = *patch.Industry
	}
	if patch.Role != nil {
		cs.Role = *patch.Role
	}
	if patch.CoverImage != nil {
		cs.CoverImage = *patch.CoverImage
	}
	if patch.Thumbnail != nil {
		cs.Thumbnail = *patch.Thumbnail
	}
	if patch.Context != nil {
		cs.Context = *patch.Context
	}
	if patch.Challenge != nil {
		cs.Challenge = *patch.Challenge
	}
	if patch.Approach != nil {
		cs.Approach = *patch.Approach
	}
	if patch.Solution != nil {
		cs.Solution = *patch.Solution
	}
	if patch.Outcome != nil {
		cs.Outcome = *patch.Outcome
	}
	if patch.Metrics != nil {
		cs.Metrics = patch.Metrics
	}
	if patch.Timeline != nil {
		cs.Timeline = *patch.Timeline
	}
	if patch.Tools != nil {
		cs.Tools = patch.Tools
	}
	if patch.PDFURL != nil {
		cs.PDFURL = *patch.PDFURL
	}
	if patch.Featured != nil {
		cs.Featured = *patch.Featured
	}
	if patch.OrderIndex != nil {
		cs.OrderIndex = *patch.OrderIndex
	}
	if patch.Status != nil {
		cs.Status = *patch.Status
	}
	cs.UpdatedAt = now()

	if err := store.WriteCollection(c.store, caseStudiesFile, caseStudies); err != nil {
		return models.CaseStudy{}, err
	}
	return *cs, nil
}

func (c *CaseStudies) Delete(id string) (bool, error) {
	caseStudies := store.ReadCollection[models.CaseStudy](c.store, caseStudiesFile)

	remaining := make([]models.CaseStudy, 0, len(caseStudies))
	for _, cs := range caseStudies {
		if cs.ID != id {
			remaining = append(remaining, cs)
		}
	}
	if len(remaining) == len(caseStudies) {
		return false, nil
	}

	if err := store.WriteCollection(c.store, caseStudiesFile, remaining); err != nil {
		return false, err
	}
	return true, nil
}
