package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sbo-seals/oilseal-api/models"
)

// contactsFile is the on-disk document: one array holding full contact
// records, newest first.
type contactsFile struct {
	Items []models.Contact `json:"items"`
}

// ContactFileStore is the local fallback for contacts, used when the hosted
// store is not configured or fails at runtime. Every write reads the whole
// document, mutates it in memory and rewrites it. The mutex serializes
// handlers within this process; concurrent writers from other processes are
// not coordinated, which is acceptable on this low-traffic fallback path.
type ContactFileStore struct {
	mu   sync.Mutex
	path string
}

// NewContactFileStore returns a file-backed contact store rooted at dataDir.
// The directory and an empty document are created on first use.
func NewContactFileStore(dataDir string) *ContactFileStore {
	return &ContactFileStore{path: filepath.Join(dataDir, "contacts.json")}
}

func (s *ContactFileStore) read() (*contactsFile, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return &contactsFile{Items: []models.Contact{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read contact store: %w", err)
	}
	var data contactsFile
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse contact store: %w", err)
	}
	if data.Items == nil {
		data.Items = []models.Contact{}
	}
	return &data, nil
}

func (s *ContactFileStore) write(data *contactsFile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create contact store dir: %w", err)
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode contact store: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write contact store: %w", err)
	}
	return nil
}

// AddContact prepends a new record so the list stays most-recent-first.
func (s *ContactFileStore) AddContact(in models.ContactInput) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	rec := models.Contact{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		Status:    models.StatusNew,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Company:   in.Company,
		Product:   in.Product,
		Quantity:  in.Quantity,
		Message:   in.Message,
	}
	data.Items = append([]models.Contact{rec}, data.Items...)
	if err := s.write(data); err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListContacts returns records in stored (insertion, newest-first) order,
// optionally filtered by status. A zero limit means unbounded.
func (s *ContactFileStore) ListContacts(status *models.ContactStatus, limit, offset int) ([]models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return nil, err
	}
	items := data.Items
	if status != nil {
		filtered := make([]models.Contact, 0, len(items))
		for _, c := range items {
			if c.Status == *status {
				filtered = append(filtered, c)
			}
		}
		items = filtered
	}
	if offset > 0 {
		if offset >= len(items) {
			return []models.Contact{}, nil
		}
		items = items[offset:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items, nil
}

// GetContact returns the contact with the given id, or ErrNotFound.
func (s *ContactFileStore) GetContact(id string) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return nil, err
	}
	for _, c := range data.Items {
		if c.ID == id {
			rec := c
			return &rec, nil
		}
	}
	return nil, ErrNotFound
}

// UpdateContact applies a partial patch in place. Setting a reply forces the
// status to "replied"; the update timestamp is always refreshed.
func (s *ContactFileStore) UpdateContact(id string, patch models.ContactPatch) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return nil, err
	}
	for i := range data.Items {
		if data.Items[i].ID != id {
			continue
		}
		rec := &data.Items[i]
		if patch.Status != nil {
			rec.Status = *patch.Status
		}
		if patch.Reply != nil {
			rec.Status = models.StatusReplied
			reply := *patch.Reply
			rec.Reply = &reply
		}
		if patch.Notes != nil {
			rec.Notes = *patch.Notes
		}
		rec.UpdatedAt = time.Now().UTC()
		if err := s.write(data); err != nil {
			return nil, err
		}
		out := *rec
		return &out, nil
	}
	return nil, ErrNotFound
}
