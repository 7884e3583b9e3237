package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// BookingService is the snapshot of a service carried inside a booking:
// name, price and duration as they were when the booking was made.
type BookingService struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
}

// Booking as the API returns it. Total is kept as json.Number because
// older records have been seen with non-numeric totals; the dashboard
// skips those rather than treating them as zero.
type Booking struct {
	ID              string           `json:"id"`
	CustomerName    string           `json:"-"`
	CustomerPhone   string           `json:"-"`
	CustomerEmail   string           `json:"-"`
	Services        []BookingService `json:"services"`
	AppointmentDate string           `json:"appointmentDate"`
	AppointmentTime string           `json:"appointmentTime"`
	Total           json.Number      `json:"total"`
	DepositPaid     json.Number      `json:"depositPaid"`
	Status          string           `json:"status"`
	PaymentStatus   string           `json:"paymentStatus"`
	Note            string           `json:"note"`
	Address         string           `json:"address"`
}

func (b Booking) RecordID() string { return b.ID }

// UnmarshalJSON flattens the nested customerDetails object and accepts the
// legacy payment_status key still present in older payloads.
func (b *Booking) UnmarshalJSON(data []byte) error {
	type alias Booking
	aux := struct {
		*alias
		CustomerDetails struct {
			Name  string `json:"name"`
			Phone string `json:"phone"`
			Email string `json:"email"`
		} `json:"customerDetails"`
		LegacyPaymentStatus string `json:"payment_status"`
	}{alias: (*alias)(b)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	b.CustomerName = aux.CustomerDetails.Name
	b.CustomerPhone = aux.CustomerDetails.Phone
	b.CustomerEmail = aux.CustomerDetails.Email
	if b.PaymentStatus == "" {
		b.PaymentStatus = aux.LegacyPaymentStatus
	}
	return nil
}

// Bookings is the bookings screen's collection. It is not a plain
// Collection because the list endpoint wraps its payload and mutations are
// status patches rather than whole-record updates.
type Bookings struct {
	client *Client
	Items  []Booking
}

func NewBookings(c *Client) *Bookings {
	return &Bookings{client: c}
}

// Fetch replaces Items with the server's full list.
func (b *Bookings) Fetch(ctx context.Context) error {
	var resp struct {
		Bookings []Booking `json:"bookings"`
	}
	if err := b.client.do(ctx, http.MethodGet, "/api/bookings", nil, &resp); err != nil {
		return err
	}
	b.Items = resp.Bookings
	return nil
}

// UpdateStatus sends the transition and, on success, patches only the
// matching record's status locally. Repeated calls send repeated requests;
// nothing is deduplicated here — the server owns transition legality.
func (b *Bookings) UpdateStatus(ctx context.Context, id, status string) error {
	body := map[string]string{"status": status}
	if err := b.client.do(ctx, http.MethodPut, "/api/bookings/"+id, body, nil); err != nil {
		return err
	}
	for i := range b.Items {
		if b.Items[i].ID == id {
			b.Items[i].Status = status
			break
		}
	}
	return nil
}

// Availability fetches the open slot strings for a date (YYYY-MM-DD).
func (c *Client) Availability(ctx context.Context, date string) ([]string, error) {
	var slots []string
	path := "/api/availability?date=" + url.QueryEscape(date)
	if err := c.do(ctx, http.MethodGet, path, nil, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// BookingDraft is the manual-booking dialog's state: customer details plus
// a running multi-select of services.
type BookingDraft struct {
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Note          string
	Address       string
	Date          string // YYYY-MM-DD
	Time          string // slot string from Availability

	Selected []BookingService
}

// Toggle adds the service to the selection, or removes it when already
// selected. The displayed total should be re-read after every toggle.
func (d *BookingDraft) Toggle(s BookingService) {
	for i, sel := range d.Selected {
		if sel.ID == s.ID {
			d.Selected = append(d.Selected[:i], d.Selected[i+1:]...)
			return
		}
	}
	d.Selected = append(d.Selected, s)
}

// Total sums the selected services' snapshotted prices. This is the figure
// the dialog displays and submits; the server re-verifies it.
func (d *BookingDraft) Total() float64 {
	var total float64
	for _, s := range d.Selected {
		total += s.Price
	}
	return total
}

type manualBookingBody struct {
	CustomerDetails struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
		Email string `json:"email"`
	} `json:"customerDetails"`
	Services        []BookingService `json:"services"`
	AppointmentDate string           `json:"appointmentDate"`
	AppointmentTime string           `json:"appointmentTime"`
	Total           float64          `json:"total"`
	Note            string           `json:"note"`
	Address         string           `json:"address"`
}

// CreateManual submits the draft with an initial "pending" status implied
// server-side, then re-fetches the whole collection so Items reflects the
// server's canonical view rather than a local append.
func (b *Bookings) CreateManual(ctx context.Context, draft BookingDraft) error {
	var body manualBookingBody
	body.CustomerDetails.Name = draft.CustomerName
	body.CustomerDetails.Phone = draft.CustomerPhone
	body.CustomerDetails.Email = draft.CustomerEmail
	body.Services = draft.Selected
	body.AppointmentDate = draft.Date
	body.AppointmentTime = draft.Time
	body.Total = draft.Total()
	body.Note = draft.Note
	body.Address = draft.Address

	if err := b.client.do(ctx, http.MethodPost, "/api/bookings/manual", body, nil); err != nil {
		return err
	}
	return b.Fetch(ctx)
}
