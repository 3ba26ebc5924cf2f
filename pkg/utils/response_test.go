package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithError(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondWithError(rec, http.StatusForbidden, "forbidden")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "forbidden", resp.Message)
}

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		payload  interface{}
		expected string
	}{
		{
			name:     "Object",
			code:     http.StatusCreated,
			payload:  map[string]int{"count": 2},
			expected: `{"count":2}`,
		},
		{
			name:     "Empty list",
			code:     http.StatusOK,
			payload:  []string{},
			expected: `[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			RespondWithJSON(rec, tt.code, tt.payload)

			assert.Equal(t, tt.code, rec.Code)
			assert.JSONEq(t, tt.expected, rec.Body.String())
		})
	}
}
