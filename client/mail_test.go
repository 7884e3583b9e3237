package client

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmationMailto(t *testing.T) {
	b := Booking{
		CustomerName:    "Sarah Johnson",
		CustomerEmail:   "sarah@example.com",
		AppointmentDate: "2026-09-01",
		AppointmentTime: "10:00 AM",
		Services: []BookingService{
			{Name: "Haircut"},
			{Name: "Color"},
		},
	}

	link := ConfirmationMailto(b)

	require.True(t, strings.HasPrefix(link, "mailto:sarah@example.com?"))
	assert.NotContains(t, link, "+", "spaces must be %20, not +")

	query, err := url.ParseQuery(strings.SplitN(link, "?", 2)[1])
	require.NoError(t, err)
	assert.Equal(t, "Your booking is confirmed", query.Get("subject"))
	assert.Contains(t, query.Get("body"), "Hi Sarah Johnson")
	assert.Contains(t, query.Get("body"), "Haircut, Color")
	assert.Contains(t, query.Get("body"), "2026-09-01 at 10:00 AM")
}
