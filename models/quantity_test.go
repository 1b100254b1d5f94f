package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantityUnmarshal(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantRaw    string
		wantNumber bool
	}{
		{name: "integer", input: `500`, wantRaw: "500", wantNumber: true},
		{name: "float", input: `12.5`, wantRaw: "12.5", wantNumber: true},
		{name: "numeric string", input: `"500"`, wantRaw: "500", wantNumber: false},
		{name: "free text", input: `"500-1000 pcs"`, wantRaw: "500-1000 pcs", wantNumber: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var q Quantity
			require.NoError(t, json.Unmarshal([]byte(tt.input), &q))
			assert.Equal(t, tt.wantRaw, q.String())
			assert.Equal(t, tt.wantNumber, q.IsNumber())
		})
	}
}

func TestQuantityUnmarshalRejectsOtherTypes(t *testing.T) {
	var q Quantity
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &q))
	assert.Error(t, json.Unmarshal([]byte(`{"n":1}`), &q))
}

func TestQuantityMarshalRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "number stays a number", input: `500`},
		{name: "text stays a string", input: `"about 200"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var q Quantity
			require.NoError(t, json.Unmarshal([]byte(tt.input), &q))
			out, err := json.Marshal(q)
			require.NoError(t, err)
			assert.Equal(t, tt.input, string(out))
		})
	}
}

func TestQuantityFromString(t *testing.T) {
	assert.True(t, QuantityFromString("500").IsNumber())
	assert.False(t, QuantityFromString("500 pcs").IsNumber())
	assert.False(t, QuantityFromString("Inf").IsNumber())
}

func TestContactStatusValid(t *testing.T) {
	for _, s := range []ContactStatus{StatusNew, StatusInProgress, StatusClosed, StatusReplied} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, ContactStatus("archived").Valid())
	assert.False(t, ContactStatus("").Valid())
}
