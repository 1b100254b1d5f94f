package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbo-seals/oilseal-api/store"
)

func setupContactRouter(t *testing.T) (*gin.Engine, store.ContactStore) {
	t.Helper()

	contacts := store.NewContactFileStore(t.TempDir())
	ctl := NewContactController(contacts, testLogger())

	router := gin.New()
	router.POST("/api/contact", ctl.Create)
	return router, contacts
}

func TestContactCreate(t *testing.T) {
	router, contacts := setupContactRouter(t)

	w, body := performRequest(t, router, http.MethodPost, "/api/contact", map[string]interface{}{
		"name":    "Jane Doe",
		"email":   "jane@x.com",
		"message": "Need 500 units of 30x42x11 seals",
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["ok"])

	items, err := contacts.ListContacts(nil, 0, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Jane Doe", items[0].Name)
	assert.Equal(t, "Need 500 units of 30x42x11 seals", items[0].Message)
	assert.Equal(t, "new", string(items[0].Status))
	assert.Equal(t, items[0].CreatedAt, items[0].UpdatedAt)
}

func TestContactCreateValidation(t *testing.T) {
	tests := []struct {
		name      string
		body      map[string]interface{}
		wantField string
	}{
		{
			name:      "missing name",
			body:      map[string]interface{}{"email": "jane@x.com", "message": "Need 500 units of seals"},
			wantField: "name",
		},
		{
			name:      "name too short",
			body:      map[string]interface{}{"name": "J", "email": "jane@x.com", "message": "Need 500 units of seals"},
			wantField: "name",
		},
		{
			name:      "invalid email",
			body:      map[string]interface{}{"name": "Jane", "email": "not-an-email", "message": "Need 500 units of seals"},
			wantField: "email",
		},
		{
			name:      "message too short",
			body:      map[string]interface{}{"name": "Jane", "email": "jane@x.com", "message": "short"},
			wantField: "message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, contacts := setupContactRouter(t)

			w, body := performRequest(t, router, http.MethodPost, "/api/contact", tt.body, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, false, body["ok"])
			errs, ok := body["errors"].(map[string]interface{})
			require.True(t, ok, "expected field-level errors, got %v", body)
			assert.Contains(t, errs, tt.wantField)

			// Nothing was persisted
			items, err := contacts.ListContacts(nil, 0, 0)
			require.NoError(t, err)
			assert.Empty(t, items)
		})
	}
}

func TestContactCreateAcceptsOptionalFields(t *testing.T) {
	router, contacts := setupContactRouter(t)

	w, _ := performRequest(t, router, http.MethodPost, "/api/contact", map[string]interface{}{
		"name":     "Jane Doe",
		"email":    "jane@x.com",
		"phone":    "+491701234567",
		"company":  "Doe GmbH",
		"product":  "30x42x11 NBR",
		"quantity": 500,
		"message":  "Need 500 units of 30x42x11 seals",
	}, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	items, err := contacts.ListContacts(nil, 0, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Doe GmbH", items[0].Company)
	require.NotNil(t, items[0].Quantity)
	assert.Equal(t, "500", items[0].Quantity.String())
	assert.True(t, items[0].Quantity.IsNumber())
}

func TestContactCreateQuantityAsText(t *testing.T) {
	router, contacts := setupContactRouter(t)

	w, _ := performRequest(t, router, http.MethodPost, "/api/contact", map[string]interface{}{
		"name":     "Jane Doe",
		"email":    "jane@x.com",
		"quantity": "500-1000 pcs",
		"message":  "Need 500 units of 30x42x11 seals",
	}, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	items, err := contacts.ListContacts(nil, 0, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Quantity)
	assert.Equal(t, "500-1000 pcs", items[0].Quantity.String())
}
