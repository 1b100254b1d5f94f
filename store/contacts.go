package store

import (
	"errors"
	"log/slog"

	"github.com/sbo-seals/oilseal-api/models"
)

// ContactStore is the contract shared by the hosted-store adapter, the file
// fallback and the facade in front of them.
type ContactStore interface {
	AddContact(in models.ContactInput) (*models.Contact, error)
	ListContacts(status *models.ContactStatus, limit, offset int) ([]models.Contact, error)
	GetContact(id string) (*models.Contact, error)
	UpdateContact(id string, patch models.ContactPatch) (*models.Contact, error)
}

var (
	_ ContactStore = (*ContactDBStore)(nil)
	_ ContactStore = (*ContactFileStore)(nil)
	_ ContactStore = (*ContactFacade)(nil)
)

// ContactFacade routes contact operations to the hosted store when one is
// configured and retries exactly once against the file store when a hosted
// call fails for opaque reasons. NotFound and Conflict are normal results and
// never trigger the fallback. Contacts are the only entity family with this
// recovery path; they predate the hosted store and must keep working when it
// is unreachable.
type ContactFacade struct {
	primary  ContactStore // nil when the hosted store is not configured
	fallback ContactStore
	log      *slog.Logger
}

// NewContactFacade wires the facade. primary may be nil, in which case every
// call goes straight to fallback.
func NewContactFacade(primary, fallback ContactStore, log *slog.Logger) *ContactFacade {
	if log == nil {
		log = slog.Default()
	}
	return &ContactFacade{primary: primary, fallback: fallback, log: log}
}

// shouldFallback reports whether a primary-store error warrants retrying the
// operation on the file store.
func shouldFallback(err error) bool {
	return err != nil && !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrConflict)
}

func (f *ContactFacade) AddContact(in models.ContactInput) (*models.Contact, error) {
	if f.primary != nil {
		rec, err := f.primary.AddContact(in)
		if !shouldFallback(err) {
			return rec, err
		}
		f.log.Error("primary contact store failed, falling back to file store", "op", "add", "error", err)
	}
	return f.fallback.AddContact(in)
}

func (f *ContactFacade) ListContacts(status *models.ContactStatus, limit, offset int) ([]models.Contact, error) {
	if f.primary != nil {
		items, err := f.primary.ListContacts(status, limit, offset)
		if !shouldFallback(err) {
			return items, err
		}
		f.log.Error("primary contact store failed, falling back to file store", "op", "list", "error", err)
	}
	return f.fallback.ListContacts(status, limit, offset)
}

func (f *ContactFacade) GetContact(id string) (*models.Contact, error) {
	if f.primary != nil {
		rec, err := f.primary.GetContact(id)
		if !shouldFallback(err) {
			return rec, err
		}
		f.log.Error("primary contact store failed, falling back to file store", "op", "get", "error", err)
	}
	return f.fallback.GetContact(id)
}

func (f *ContactFacade) UpdateContact(id string, patch models.ContactPatch) (*models.Contact, error) {
	if f.primary != nil {
		rec, err := f.primary.UpdateContact(id, patch)
		if !shouldFallback(err) {
			return rec, err
		}
		f.log.Error("primary contact store failed, falling back to file store", "op", "update", "error", err)
	}
	return f.fallback.UpdateContact(id, patch)
}
