package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHolidaysTrimDates(t *testing.T) {
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"leaves":[{"id":"h1","user":"","date":"2026-12-25T00:00:00Z","description":"Christmas"}]}`))
	}))

	leaves, err := api.Holidays(context.Background())
	require.NoError(t, err)
	require.Len(t, leaves, 1)
	assert.Equal(t, "2026-12-25", leaves[0].Date)
}

func TestCreateHoliday(t *testing.T) {
	var gotBody map[string]string
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/leaves/create", r.URL.Path)
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"leave":{"id":"h1","user":"","date":"2026-12-25T00:00:00Z","description":"Christmas"}}`))
	}))

	leave, err := api.CreateHoliday(context.Background(), "", "2026-12-25", "Christmas")
	require.NoError(t, err)
	assert.Equal(t, "", gotBody["user"])
	assert.Equal(t, "2026-12-25", gotBody["date"])
	assert.Equal(t, "2026-12-25", leave.Date)
}

func TestDatePrefix(t *testing.T) {
	assert.Equal(t, "2026-12-25", datePrefix("2026-12-25T00:00:00Z"))
	assert.Equal(t, "2026-12-25", datePrefix("2026-12-25"))
	assert.Equal(t, "", datePrefix(""))
}
