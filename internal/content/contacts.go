package content

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"portfolio-website/internal/models"
	"portfolio-website/internal/store"
)

type Contacts struct {
	store *store.Store
}

func NewContacts(s *store.Store) *Contacts {
	return &Contacts{store: s}
}

// List returns submissions newest first.
func (c *Contacts) List() []models.ContactSubmission {
	contacts := store.ReadCollection[models.ContactSubmission](c.store, contactsFile)

	sort.SliceStable(contacts, func(i, j int) bool {
		return parseTime(contacts[i].CreatedAt).After(parseTime(contacts[j].CreatedAt))
	})
	return contacts
}

func (c *Contacts) Create(input models.ContactSubmission) (models.ContactSubmission, error) {
	contacts := store.ReadCollection[models.ContactSubmission](c.store, contactsFile)

	input.ID = uuid.NewString()
	input.Status = models.ContactStatusNew
	input.CreatedAt = now()

	contacts = append(contacts, input)
	if err := store.WriteCollection(c.store, contactsFile, contacts); err != nil {
		return models.ContactSubmission{}, err
	}
	return input, nil
}

// UpdateStatus moves a submission through new -> read -> responded.
// Any of the three statuses is accepted in any order; anything else is
// rejected before the collection is touched.
func (c *Contacts) UpdateStatus(id, status string) (models.ContactSubmission, error) {
	switch status {
	case models.ContactStatusNew, models.ContactStatusRead, models.ContactStatusResponded:
	default:
		return models.ContactSubmission{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	contacts := store.ReadCollection[models.ContactSubmission](c.store, contactsFile)

	index := -1
	for i, contact := range contacts {
		if contact.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return models.ContactSubmission{}, ErrNotFound
	}

	contacts[index].Status = status
	if err := store.WriteCollection(c.store, contactsFile, contacts); err != nil {
		return models.ContactSubmission{}, err
	}
	return contacts[index], nil
}

func (c *Contacts) Delete(id string) (bool, error) {
	contacts := store.ReadCollection[models.ContactSubmission](c.store, contactsFile)

	remaining := make([]models.ContactSubmission, 0, len(contacts))
	for _, contact := range contacts {
		if contact.ID != id {
			remaining = append(remaining, contact)
		}
	}
	if len(remaining) == len(contacts) {
		return false, nil
	}

	if err := store.WriteCollection(c.store, contactsFile, remaining); err != nil {
		return false, err
	}
	return true, nil
}
