package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingUnmarshalFlattensCustomerDetails(t *testing.T) {
	payload := `{
		"id": "b1",
		"customerDetails": {"name": "Sarah Johnson", "phone": "+447911123456", "email": "sarah@example.com"},
		"services": [{"id": "s1", "name": "Haircut", "price": 45, "duration": 60}],
		"appointmentDate": "2026-09-01",
		"appointmentTime": "10:00 AM",
		"total": 45,
		"status": "pending",
		"paymentStatus": "unpaid"
	}`

	var b Booking
	require.NoError(t, json.Unmarshal([]byte(payload), &b))

	assert.Equal(t, "Sarah Johnson", b.CustomerName)
	assert.Equal(t, "+447911123456", b.CustomerPhone)
	assert.Equal(t, "sarah@example.com", b.CustomerEmail)
	assert.Equal(t, "unpaid", b.PaymentStatus)
	require.Len(t, b.Services, 1)
	assert.Equal(t, "Haircut", b.Services[0].Name)
}

func TestBookingUnmarshalLegacyPaymentStatus(t *testing.T) {
	var b Booking
	require.NoError(t, json.Unmarshal([]byte(`{"id":"b1","payment_status":"paid"}`), &b))
	assert.Equal(t, "paid", b.PaymentStatus)

	// the current key wins when both are present
	var b2 Booking
	require.NoError(t, json.Unmarshal([]byte(`{"id":"b2","paymentStatus":"unpaid","payment_status":"paid"}`), &b2))
	assert.Equal(t, "unpaid", b2.PaymentStatus)
}

func TestBookingsFetchUnwraps(t *testing.T) {
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"bookings":[{"id":"b1","status":"pending"},{"id":"b2","status":"confirmed"}]}`))
	}))
	bookings := NewBookings(api)

	require.NoError(t, bookings.Fetch(context.Background()))
	require.Len(t, bookings.Items, 2)
	assert.Equal(t, "b1", bookings.Items[0].ID)
}

func TestUpdateStatusPatchesOnlyMatching(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"message":"Booking updated"}`))
	}))

	bookings := NewBookings(api)
	bookings.Items = []Booking{
		{ID: "b1", Status: "pending"},
		{ID: "b2", Status: "pending"},
	}

	require.NoError(t, bookings.UpdateStatus(context.Background(), "b1", "confirmed"))

	assert.Equal(t, "/api/bookings/b1", gotPath)
	assert.Equal(t, map[string]string{"status": "confirmed"}, gotBody)
	assert.Equal(t, "confirmed", bookings.Items[0].Status)
	assert.Equal(t, "pending", bookings.Items[1].Status)
}

func TestUpdateStatusRepeatSendsRepeatRequests(t *testing.T) {
	calls := 0
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"message":"Booking updated"}`))
	}))

	bookings := NewBookings(api)
	bookings.Items = []Booking{{ID: "b1", Status: "pending"}}

	require.NoError(t, bookings.UpdateStatus(context.Background(), "b1", "confirmed"))
	require.NoError(t, bookings.UpdateStatus(context.Background(), "b1", "confirmed"))

	assert.Equal(t, 2, calls)
}

func TestUpdateStatusFailureLeavesItems(t *testing.T) {
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Booking not found"}`))
	}))

	bookings := NewBookings(api)
	bookings.Items = []Booking{{ID: "b1", Status: "pending"}}

	err := bookings.UpdateStatus(context.Background(), "b1", "confirmed")
	require.Error(t, err)
	assert.Equal(t, "pending", bookings.Items[0].Status)
}

func TestAvailability(t *testing.T) {
	var gotDate string
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDate = r.URL.Query().Get("date")
		w.Write([]byte(`["10:00 AM","10:30 AM"]`))
	}))

	slots, err := api.Availability(context.Background(), "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", gotDate)
	assert.Equal(t, []string{"10:00 AM", "10:30 AM"}, slots)
}

func TestDraftToggleAndTotal(t *testing.T) {
	haircut := BookingService{ID: "s1", Name: "Haircut", Price: 25}
	color := BookingService{ID: "s2", Name: "Color", Price: 40}

	var d BookingDraft
	d.Toggle(haircut)
	d.Toggle(color)
	assert.Equal(t, 65.0, d.Total())

	d.Toggle(haircut)
	assert.Equal(t, 40.0, d.Total())
	require.Len(t, d.Selected, 1)
	assert.Equal(t, "s2", d.Selected[0].ID)
}

func TestCreateManualRefetches(t *testing.T) {
	var posted manualBookingBody
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			json.NewDecoder(r.Body).Decode(&posted)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"message":"Booking created"}`))
		case http.MethodGet:
			w.Write([]byte(`{"bookings":[{"id":"b1","status":"pending","total":65}]}`))
		}
	}))

	bookings := NewBookings(api)
	draft := BookingDraft{
		CustomerName:  "Sarah Johnson",
		CustomerPhone: "+447911123456",
		Date:          "2026-09-01",
		Time:          "10:00 AM",
		Selected: []BookingService{
			{ID: "s1", Name: "Haircut", Price: 25},
			{ID: "s2", Name: "Color", Price: 40},
		},
	}

	require.NoError(t, bookings.CreateManual(context.Background(), draft))

	assert.Equal(t, "Sarah Johnson", posted.CustomerDetails.Name)
	assert.Equal(t, 65.0, posted.Total)
	assert.Len(t, posted.Services, 2)

	// items come from the re-fetch, not a local append
	require.Len(t, bookings.Items, 1)
	assert.Equal(t, "b1", bookings.Items[0].ID)
}
